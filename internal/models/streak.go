package models

import "time"

// UserStreak tracks consecutive study days for one user.
//
// WeeklyProgress is a rolling 7-slot mask indexed by day of week with Monday
// at index 0. Slots are never cleared at week boundaries; a slot set last
// Monday stays set until overwritten the following Monday.
type UserStreak struct {
	ID             string     `bson:"_id,omitempty" json:"-"`
	UserID         string     `bson:"user_id" json:"user_id"`
	CurrentStreak  int        `bson:"current_streak" json:"current_streak"`
	RecordStreak   int        `bson:"record_streak" json:"record_streak"`
	LastActivity   *time.Time `bson:"last_activity,omitempty" json:"last_activity,omitempty"`
	WeeklyProgress [7]bool    `bson:"weekly_progress" json:"weekly_progress"`
}

// StreakSnapshot is the shape returned to callers.
type StreakSnapshot struct {
	CurrentStreak  int     `json:"current_streak"`
	RecordStreak   int     `json:"record_streak"`
	WeeklyProgress [7]bool `json:"weekly_progress"`
}

// Snapshot copies the exported streak state.
func (s *UserStreak) Snapshot() *StreakSnapshot {
	return &StreakSnapshot{
		CurrentStreak:  s.CurrentStreak,
		RecordStreak:   s.RecordStreak,
		WeeklyProgress: s.WeeklyProgress,
	}
}
