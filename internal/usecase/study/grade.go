package study

import (
	"strings"

	"github.com/aistudybuddy/study-buddy/errors"
	"github.com/aistudybuddy/study-buddy/internal/domain/entities"
)

// GradeQuiz scores submitted answers against a quiz. Matching is exact after
// trimming surrounding whitespace; a missing answer counts as wrong.
func GradeQuiz(quiz *entities.Quiz, answers map[int]string) (*entities.QuizGrade, error) {
	if quiz == nil || len(quiz.Questions) == 0 {
		return nil, errors.ErrQuizValidationFailed("quiz has no questions")
	}

	feedback := make([]entities.QuestionFeedback, 0, len(quiz.Questions))
	correct := 0
	for i, question := range quiz.Questions {
		userAnswer := strings.TrimSpace(answers[i])
		isCorrect := userAnswer != "" && userAnswer == strings.TrimSpace(question.CorrectAnswer)
		if isCorrect {
			correct++
		}
		feedback = append(feedback, entities.QuestionFeedback{
			QuestionIndex: i,
			UserAnswer:    userAnswer,
			CorrectAnswer: question.CorrectAnswer,
			IsCorrect:     isCorrect,
			Explanation:   question.Explanation,
		})
	}

	total := len(quiz.Questions)
	return &entities.QuizGrade{
		TotalQuestions:  total,
		CorrectAnswers:  correct,
		ScorePercentage: 100 * float64(correct) / float64(total),
		Feedback:        feedback,
	}, nil
}
