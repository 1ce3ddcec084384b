package entities

// Analysis status values reported to the caller. A request that had to fall
// back anywhere still succeeds; the status communicates degraded quality.
const (
	StatusCompleted     = "completed"
	StatusUsingMockData = "using_mock_data"
)

// Difficulty levels for summaries.
const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

// Summary of the video content.
type Summary struct {
	Overview             string   `json:"overview"`
	KeyPoints            []string `json:"key_points"`
	MainTopics           []string `json:"main_topics"`
	DifficultyLevel      string   `json:"difficulty_level"`
	EstimatedReadingTime int      `json:"estimated_reading_time"`
}

// Timestamp marks where a topic begins in the video.
type Timestamp struct {
	Time        string   `json:"time"` // "MM:SS"
	Seconds     int      `json:"seconds"`
	Topic       string   `json:"topic"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
}

// QuizQuestion is a single multiple-choice question.
type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
	Difficulty    string   `json:"difficulty"` // easy, medium, hard
	Topic         string   `json:"topic"`
}

// Quiz groups questions with presentation metadata.
type Quiz struct {
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	Questions      []QuizQuestion `json:"questions"`
	TotalQuestions int            `json:"total_questions"`
	EstimatedTime  int            `json:"estimated_time"` // minutes
}

// Flashcard is a front/back revision card.
type Flashcard struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

// VideoAnalysis is the aggregate result of one analysis request.
type VideoAnalysis struct {
	VideoID    string      `json:"video_id"`
	Title      string      `json:"title"`
	Duration   int         `json:"duration"` // seconds
	Summary    *Summary    `json:"summary"`
	Timestamps []Timestamp `json:"timestamps"`
	Quizzes    []Quiz      `json:"quizzes"`
	Flashcards []Flashcard `json:"flashcards"`
	Notes      string      `json:"notes"`
	Status     string      `json:"status"`
	// FallbackUsed reports that at least one generator substituted its
	// deterministic fallback for the model reply.
	FallbackUsed bool `json:"fallback_used"`
}

// QuestionFeedback is the per-question grading detail.
type QuestionFeedback struct {
	QuestionIndex int    `json:"question_index"`
	UserAnswer    string `json:"user_answer"`
	CorrectAnswer string `json:"correct_answer"`
	IsCorrect     bool   `json:"is_correct"`
	Explanation   string `json:"explanation"`
}

// QuizGrade is the result of validating submitted answers against a quiz.
type QuizGrade struct {
	TotalQuestions  int                `json:"total_questions"`
	CorrectAnswers  int                `json:"correct_answers"`
	ScorePercentage float64            `json:"score_percentage"`
	Feedback        []QuestionFeedback `json:"feedback"`
}
