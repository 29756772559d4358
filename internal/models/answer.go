package models

import "time"

// UserAnswer is the append-only record of a scored submission. Rows are never
// updated after insert.
type UserAnswer struct {
	ID         string    `bson:"_id,omitempty" json:"id"`
	UserID     string    `bson:"user_id" json:"user_id"`
	QuestionID string    `bson:"question_id" json:"question_id"`
	Answer     string    `bson:"answer" json:"answer"`
	IsCorrect  bool      `bson:"is_correct" json:"is_correct"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
}

// AnswerStats summarizes a user's answer history against the whole question
// catalog: Total is the catalog size, Correct the user's correct answers.
type AnswerStats struct {
	Total   int `json:"total"`
	Correct int `json:"correct"`
}
