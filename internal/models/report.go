package models

// Submission is one answer of a quiz batch as sent by the client. It is not
// persisted; scoring turns it into a UserAnswer.
type Submission struct {
	QuestionID     string `json:"questionId"`
	SelectedOption string `json:"selectedOption"`
}

// CategoryTally counts the valid submissions of one batch that belong to a
// single category.
type CategoryTally struct {
	CategoryID string `json:"category_id"`
	ModuleID   string `json:"module_id"`
	Correct    int    `json:"correct"`
	Attempted  int    `json:"attempted"`
}

// ScoreReport is the result of evaluating one quiz batch. Total counts only
// the submissions that resolved to a known question.
type ScoreReport struct {
	Score      int             `json:"score"`
	Total      int             `json:"total"`
	Percentage int             `json:"percentage"`
	Feedback   string          `json:"feedback"`
	Categories []CategoryTally `json:"categories,omitempty"`
}
