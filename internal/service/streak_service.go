package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"learning-service/internal/lock"
	"learning-service/internal/models"
	"learning-service/internal/repository"

	"github.com/redis/go-redis/v9"
)

const (
	streakLockTTL  = 10 * time.Second
	streakCacheTTL = 24 * time.Hour
)

// StreakService maintains per-user daily study streaks. Updates of the same
// user are serialized on a per-user lock; different users are independent.
type StreakService struct {
	streaks StreakStore
	locks   lock.Locker
	cache   *redis.Client // optional snapshot cache, nil disables it
}

func NewStreakService(streaks StreakStore, locks lock.Locker, cache *redis.Client) *StreakService {
	return &StreakService{streaks: streaks, locks: locks, cache: cache}
}

// RecordActivity registers one qualifying activity (a submitted quiz) at the
// given time and applies the day-granularity state machine:
//
//	no prior record        -> streak starts at 1
//	same calendar day      -> streak unchanged
//	next calendar day      -> streak + 1
//	gap or clock skew      -> streak resets to 1
//
// Afterwards the record streak is raised if beaten, the weekly slot for the
// activity's day of week is set, and last_activity moves to now.
func (s *StreakService) RecordActivity(ctx context.Context, userID string, now time.Time) (*models.StreakSnapshot, error) {
	release, err := s.locks.Acquire(ctx, "lock:streak:"+userID, streakLockTTL)
	if err != nil {
		return nil, err
	}
	defer release()

	streak, err := s.streaks.Find(ctx, userID)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		streak = &models.UserStreak{UserID: userID, CurrentStreak: 1}
	case err != nil:
		return nil, fmt.Errorf("failed to load streak: %w", err)
	case streak.LastActivity == nil:
		streak.CurrentStreak = 1
	default:
		switch delta := calendarDays(*streak.LastActivity, now); {
		case delta == 0:
			// Repeat activity on the same day, streak unchanged.
		case delta == 1:
			streak.CurrentStreak++
		default:
			// A gap of more than one day, or a clock that moved
			// backwards, both break the streak.
			streak.CurrentStreak = 1
		}
	}

	if streak.CurrentStreak > streak.RecordStreak {
		streak.RecordStreak = streak.CurrentStreak
	}
	streak.WeeklyProgress[dayIndex(now)] = true
	activity := now
	streak.LastActivity = &activity

	if err := s.streaks.Upsert(ctx, streak); err != nil {
		return nil, fmt.Errorf("failed to save streak: %w", err)
	}

	snapshot := streak.Snapshot()
	s.cacheSnapshot(ctx, userID, snapshot)
	return snapshot, nil
}

// GetStreak returns the user's streak. A user without a record gets a
// persisted zero record so reads and writes share the same storage shape.
func (s *StreakService) GetStreak(ctx context.Context, userID string) (*models.StreakSnapshot, error) {
	if snapshot := s.cachedSnapshot(ctx, userID); snapshot != nil {
		return snapshot, nil
	}

	streak, err := s.streaks.Find(ctx, userID)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		streak, err = s.initStreak(ctx, userID)
		if err != nil {
			return nil, err
		}
	case err != nil:
		return nil, fmt.Errorf("failed to load streak: %w", err)
	}

	snapshot := streak.Snapshot()
	s.cacheSnapshot(ctx, userID, snapshot)
	return snapshot, nil
}

// initStreak persists the zero record for a user seen for the first time. It
// takes the same per-user lock as RecordActivity and re-reads under it, so a
// first activity committing concurrently is never overwritten with zeros.
func (s *StreakService) initStreak(ctx context.Context, userID string) (*models.UserStreak, error) {
	release, err := s.locks.Acquire(ctx, "lock:streak:"+userID, streakLockTTL)
	if err != nil {
		return nil, err
	}
	defer release()

	streak, err := s.streaks.Find(ctx, userID)
	if err == nil {
		return streak, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to load streak: %w", err)
	}

	streak = &models.UserStreak{UserID: userID}
	if err := s.streaks.Upsert(ctx, streak); err != nil {
		return nil, fmt.Errorf("failed to initialize streak: %w", err)
	}
	return streak, nil
}

func (s *StreakService) cacheSnapshot(ctx context.Context, userID string, snapshot *models.StreakSnapshot) {
	if s.cache == nil {
		return
	}
	val, err := json.Marshal(snapshot)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, streakCacheKey(userID), val, streakCacheTTL).Err(); err != nil {
		log.Printf("error caching streak snapshot for %s: %v", userID, err)
	}
}

func (s *StreakService) cachedSnapshot(ctx context.Context, userID string) *models.StreakSnapshot {
	if s.cache == nil {
		return nil
	}
	val, err := s.cache.Get(ctx, streakCacheKey(userID)).Bytes()
	if err != nil {
		return nil
	}
	var snapshot models.StreakSnapshot
	if err := json.Unmarshal(val, &snapshot); err != nil {
		return nil
	}
	return &snapshot
}

func streakCacheKey(userID string) string {
	return "streak:" + userID
}

// calendarDays is the difference in calendar dates, ignoring time of day.
// Negative when to precedes from.
func calendarDays(from, to time.Time) int {
	f, t := from.UTC(), to.UTC()
	fromDate := time.Date(f.Year(), f.Month(), f.Day(), 0, 0, 0, 0, time.UTC)
	toDate := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return int(toDate.Sub(fromDate).Hours() / 24)
}

// dayIndex maps a time to the weekly vector slot, with Monday at index 0.
func dayIndex(t time.Time) int {
	return (int(t.UTC().Weekday()) + 6) % 7
}
