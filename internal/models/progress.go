package models

import "time"

// UserProgress holds a user's rolling mastery for one (module, category) key.
// A nil CategoryID is the module-level rollup row. Progress is an integer
// percentage in [0, 100] and TotalQuizzes only ever increases.
type UserProgress struct {
	ID           string    `bson:"_id,omitempty" json:"-"`
	UserID       string    `bson:"user_id" json:"user_id"`
	ModuleID     string    `bson:"module_id" json:"module_id"`
	CategoryID   *string   `bson:"category_id,omitempty" json:"category_id,omitempty"`
	Progress     int       `bson:"progress" json:"progress"`
	TotalQuizzes int       `bson:"total_quizzes" json:"total_quizzes"`
	LastUpdated  time.Time `bson:"last_updated" json:"last_updated"`
}
