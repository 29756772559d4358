package selection

import (
	"math/rand"
	"time"

	"learning-service/internal/models"
)

// Difficulty levels span 1 (easiest) to 5 (hardest).
const (
	MinLevel = 1
	MaxLevel = 5
)

// LevelSampler draws a bounded, difficulty-balanced subset of questions from
// a pool. The random source is injected so selection is deterministic under
// a seeded source in tests.
type LevelSampler struct {
	rand *rand.Rand
}

// NewLevelSampler creates a sampler. A nil source falls back to a
// time-seeded one.
func NewLevelSampler(r *rand.Rand) *LevelSampler {
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &LevelSampler{rand: r}
}

// Select partitions the pool by difficulty level after dropping excluded
// ids, draws quantity/L questions per non-empty level (L = count of
// non-empty levels) uniformly without replacement, then fills the remaining
// quantity%L slots from the not-yet-selected candidates across all levels.
//
// The result never exceeds quantity nor the available supply; an
// under-stocked pool simply yields fewer questions.
func (s *LevelSampler) Select(pool []models.Question, excluded map[string]bool, quantity int) []models.Question {
	if quantity <= 0 {
		return nil
	}

	levels := make(map[int][]models.Question)
	nonEmpty := 0
	for _, q := range pool {
		if excluded[q.ID] {
			continue
		}
		if q.Level < MinLevel || q.Level > MaxLevel {
			continue
		}
		if len(levels[q.Level]) == 0 {
			nonEmpty++
		}
		levels[q.Level] = append(levels[q.Level], q)
	}
	if nonEmpty == 0 {
		return nil
	}

	perLevel := quantity / nonEmpty
	remainder := quantity % nonEmpty

	selected := make([]models.Question, 0, quantity)
	var leftover []models.Question
	for level := MinLevel; level <= MaxLevel; level++ {
		candidates := levels[level]
		if len(candidates) == 0 {
			continue
		}
		s.rand.Shuffle(len(candidates), func(i, j int) {
			candidates[i], candidates[j] = candidates[j], candidates[i]
		})
		take := min(perLevel, len(candidates))
		selected = append(selected, candidates[:take]...)
		leftover = append(leftover, candidates[take:]...)
	}

	if remainder > 0 && len(leftover) > 0 {
		s.rand.Shuffle(len(leftover), func(i, j int) {
			leftover[i], leftover[j] = leftover[j], leftover[i]
		})
		selected = append(selected, leftover[:min(remainder, len(leftover))]...)
	}

	return selected
}
