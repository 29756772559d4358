package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"learning-service/internal/db"
	"learning-service/internal/lock"
	"learning-service/internal/models"
	"learning-service/internal/repository"
)

const batchLockTTL = 30 * time.Second

// Feedback tiers keyed by overall percentage.
const (
	masteredThreshold   = 80
	proficientThreshold = 60
)

// QuizService scores submitted answer batches. One batch is one unit of
// work: the answer records and every cascading progress write commit
// together or not at all.
type QuizService struct {
	questions  QuestionFinder
	categories CategoryStore
	answers    AnswerStore
	progress   *ProgressService
	tx         db.TxRunner
	locks      lock.Locker
}

func NewQuizService(
	questions QuestionFinder,
	categories CategoryStore,
	answers AnswerStore,
	progress *ProgressService,
	tx db.TxRunner,
	locks lock.Locker,
) *QuizService {
	return &QuizService{
		questions:  questions,
		categories: categories,
		answers:    answers,
		progress:   progress,
		tx:         tx,
		locks:      locks,
	}
}

// EvaluateQuiz scores a batch of submissions for one user. moduleID and
// categoryID describe what the client was quizzed on; scoring itself groups
// by each question's own category. Malformed or unresolvable submissions are
// skipped and excluded from both the score and the total.
//
// Concurrent batches of the same user are serialized on a per-user lock so
// the running-average progress updates never race.
func (s *QuizService) EvaluateQuiz(ctx context.Context, userID, moduleID, categoryID string, submissions []models.Submission) (*models.ScoreReport, error) {
	release, err := s.locks.Acquire(ctx, "lock:progress:"+userID, batchLockTTL)
	if err != nil {
		return nil, err
	}
	defer release()

	log.Printf("evaluating quiz batch: user=%s module=%s category=%s submissions=%d",
		userID, moduleID, categoryID, len(submissions))

	var report *models.ScoreReport
	err = s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		r, err := s.evaluate(txCtx, userID, submissions)
		if err != nil {
			return err
		}
		report = r
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("quiz batch failed: %w", err)
	}
	return report, nil
}

func (s *QuizService) evaluate(ctx context.Context, userID string, submissions []models.Submission) (*models.ScoreReport, error) {
	score, total := 0, 0
	tallies := make(map[string]*models.CategoryTally)
	var tallyOrder []string
	moduleOf := make(map[string]string)
	now := time.Now().UTC()

	for _, sub := range submissions {
		if sub.QuestionID == "" || sub.SelectedOption == "" {
			log.Printf("skipping malformed submission: %+v", sub)
			continue
		}

		question, err := s.questions.FindByID(ctx, sub.QuestionID)
		if errors.Is(err, repository.ErrNotFound) {
			log.Printf("skipping unknown question: %s", sub.QuestionID)
			continue
		}
		if err != nil {
			return nil, err
		}

		correct := question.CorrectOption(sub.SelectedOption)
		total++
		if correct {
			score++
		}

		if err := s.answers.Create(ctx, &models.UserAnswer{
			UserID:     userID,
			QuestionID: question.ID,
			Answer:     sub.SelectedOption,
			IsCorrect:  correct,
			CreatedAt:  now,
		}); err != nil {
			return nil, err
		}

		// Uncategorized questions count toward the score but carry no
		// category tally.
		if question.CategoryID == nil {
			continue
		}
		catID := *question.CategoryID
		tally, ok := tallies[catID]
		if !ok {
			moduleID, err := s.moduleOfCategory(ctx, catID, moduleOf)
			if errors.Is(err, repository.ErrNotFound) {
				log.Printf("question %s references unknown category %s, no tally recorded", question.ID, catID)
				continue
			}
			if err != nil {
				return nil, err
			}
			tally = &models.CategoryTally{CategoryID: catID, ModuleID: moduleID}
			tallies[catID] = tally
			tallyOrder = append(tallyOrder, catID)
		}
		tally.Attempted++
		if correct {
			tally.Correct++
		}
	}

	if total == 0 {
		return &models.ScoreReport{Feedback: "No answers provided"}, nil
	}

	report := &models.ScoreReport{
		Score:      score,
		Total:      total,
		Percentage: percent(score, total),
	}
	report.Feedback = feedbackFor(report.Percentage)

	for _, catID := range tallyOrder {
		tally := tallies[catID]
		report.Categories = append(report.Categories, *tally)
		if _, err := s.progress.UpdateCategoryProgress(ctx, userID, tally.ModuleID, tally.CategoryID, percent(tally.Correct, tally.Attempted)); err != nil {
			return nil, err
		}
	}
	return report, nil
}

// moduleOfCategory resolves a tally's module from the category, caching per
// batch so each category is looked up once.
func (s *QuizService) moduleOfCategory(ctx context.Context, categoryID string, cache map[string]string) (string, error) {
	if moduleID, ok := cache[categoryID]; ok {
		return moduleID, nil
	}
	category, err := s.categories.FindByID(ctx, categoryID)
	if err != nil {
		return "", err
	}
	cache[categoryID] = category.ModuleID
	return category.ModuleID, nil
}

func percent(part, whole int) int {
	return int(math.Round(float64(part) / float64(whole) * 100))
}

func feedbackFor(percentage int) string {
	switch {
	case percentage >= masteredThreshold:
		return "Excellent! You've mastered this content."
	case percentage >= proficientThreshold:
		return "Good job! You're on the right track."
	default:
		return "Keep practicing. Practice makes perfect."
	}
}
