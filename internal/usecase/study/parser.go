package study

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/aistudybuddy/study-buddy/internal/domain/entities"
)

// extractJSON extracts JSON content from markdown code blocks or plain text.
// Model replies frequently wrap the requested JSON in a code fence.
func extractJSON(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	}

	return strings.TrimSpace(content)
}

// validateQuiz normalizes a model-produced quiz into the typed shape: nil
// slices become empty, questions that break the four-option contract are
// dropped, and the question count is recomputed.
func validateQuiz(quiz *entities.Quiz) error {
	if quiz == nil {
		return fmt.Errorf("quiz is nil")
	}
	if strings.TrimSpace(quiz.Title) == "" {
		return fmt.Errorf("missing quiz title")
	}

	valid := make([]entities.QuizQuestion, 0, len(quiz.Questions))
	for _, q := range quiz.Questions {
		if strings.TrimSpace(q.Question) == "" || len(q.Options) != 4 {
			continue
		}
		if !containsTrimmed(q.Options, q.CorrectAnswer) {
			continue
		}
		switch q.Difficulty {
		case "easy", "medium", "hard":
		default:
			q.Difficulty = "medium"
		}
		valid = append(valid, q)
	}
	if len(valid) == 0 {
		return fmt.Errorf("no valid questions")
	}

	quiz.Questions = valid
	quiz.TotalQuestions = len(valid)
	if quiz.EstimatedTime <= 0 {
		quiz.EstimatedTime = 2 * len(valid)
	}
	return nil
}

func containsTrimmed(options []string, answer string) bool {
	answer = strings.TrimSpace(answer)
	for _, opt := range options {
		if strings.TrimSpace(opt) == answer {
			return true
		}
	}
	return false
}

// truncate bounds a transcript slice embedded in a prompt so it respects the
// model's input-size limits. The cut backs up to a rune boundary so the
// prompt never ends in invalid UTF-8.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return s[:max]
}

// splitSentences breaks prose into at most max trimmed sentences.
func splitSentences(text string, max int) []string {
	parts := strings.Split(text, ". ")
	sentences := make([]string, 0, max)
	for _, part := range parts {
		part = strings.TrimSpace(strings.TrimSuffix(part, "."))
		if part == "" {
			continue
		}
		sentences = append(sentences, part)
		if len(sentences) == max {
			break
		}
	}
	return sentences
}

var (
	capitalizedPhraseRe = regexp.MustCompile(`\b[A-Z][a-zA-Z]+(?: [A-Z][a-zA-Z]+)*\b`)
	quotedPhraseRe      = regexp.MustCompile(`"([^"]{2,60})"`)
)

// extractKeyTerms pulls candidate terms out of raw text: capitalized phrases
// and quoted phrases, ranked by frequency with first appearance breaking
// ties.
func extractKeyTerms(text string, max int) []string {
	type termStat struct {
		display string
		count   int
		first   int
	}
	stats := make(map[string]*termStat)

	record := func(term string, pos int) {
		term = strings.TrimSpace(term)
		if len(term) < 3 {
			return
		}
		key := strings.ToLower(term)
		if st, ok := stats[key]; ok {
			st.count++
			return
		}
		stats[key] = &termStat{display: term, count: 1, first: pos}
	}

	for _, loc := range capitalizedPhraseRe.FindAllStringIndex(text, -1) {
		record(text[loc[0]:loc[1]], loc[0])
	}
	for _, loc := range quotedPhraseRe.FindAllStringSubmatchIndex(text, -1) {
		record(text[loc[2]:loc[3]], loc[2])
	}

	ranked := make([]*termStat, 0, len(stats))
	for _, st := range stats {
		ranked = append(ranked, st)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].first < ranked[j].first
	})

	if len(ranked) > max {
		ranked = ranked[:max]
	}
	terms := make([]string, 0, len(ranked))
	for _, st := range ranked {
		terms = append(terms, st.display)
	}
	return terms
}

// firstSentenceContaining returns the first sentence of text mentioning term,
// or empty when none does.
func firstSentenceContaining(text, term string) string {
	lower := strings.ToLower(term)
	for _, sentence := range strings.Split(text, ". ") {
		if strings.Contains(strings.ToLower(sentence), lower) {
			return strings.TrimSpace(strings.TrimSuffix(sentence, ".")) + "."
		}
	}
	return ""
}
