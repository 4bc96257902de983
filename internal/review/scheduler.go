package review

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/oleksandr-serhiienko/SimpleTestApp/internal/flashcard"
)

var ErrNilCard = errors.New("card is nil")

//go:generate mockgen -source=scheduler.go -destination=../mocks/review/mock_review_store.go -package=mock_review

// ReviewStore is the part of flashcard.Store the scheduler writes through.
type ReviewStore interface {
	RecordReview(ctx context.Context, card *flashcard.Card, entry *flashcard.HistoryEntry) error
	AppendHistory(ctx context.Context, entry *flashcard.HistoryEntry) (int64, error)
}

// Scheduler applies review outcomes to cards and persists them.
type Scheduler struct {
	store    ReviewStore
	interval time.Duration
	now      func() time.Time
}

func NewScheduler(store ReviewStore, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Scheduler{
		store:    store,
		interval: interval,
		now:      time.Now,
	}
}

// Interval returns the duration of one level.
func (s *Scheduler) Interval() time.Duration {
	return s.interval
}

// Success advances the card to the next level.
func (s *Scheduler) Success(ctx context.Context, card *flashcard.Card) error {
	if card == nil {
		return ErrNilCard
	}
	return s.apply(ctx, card, NextLevel(card.Level), true)
}

// Failure resets the card to level 0.
func (s *Scheduler) Failure(ctx context.Context, card *flashcard.Card) error {
	if card == nil {
		return ErrNilCard
	}
	return s.apply(ctx, card, 0, false)
}

// card is only modified once the outcome is stored
func (s *Scheduler) apply(ctx context.Context, card *flashcard.Card, level int, success bool) error {
	now := s.now().UTC().Truncate(time.Millisecond)
	updated := *card
	updated.Level = level
	updated.LastRepeat = now

	entry := &flashcard.HistoryEntry{
		Date:    now,
		CardID:  card.ID,
		Success: success,
		Type:    flashcard.HistoryTypeCard,
	}
	if err := s.store.RecordReview(ctx, &updated, entry); err != nil {
		return fmt.Errorf("store.RecordReview(%d) > %w", card.ID, err)
	}

	slog.Default().Debug("card reviewed",
		"id", card.ID,
		"word", card.Word,
		"success", success,
		"from_level", card.Level,
		"to_level", level,
	)
	*card = updated
	return nil
}

// ContextOutcome records the result of a context exercise. The card's level is not changed.
func (s *Scheduler) ContextOutcome(ctx context.Context, card *flashcard.Card, contextID int64, success bool) error {
	if card == nil {
		return ErrNilCard
	}
	entry := &flashcard.HistoryEntry{
		Date:      s.now().UTC().Truncate(time.Millisecond),
		CardID:    card.ID,
		ContextID: &contextID,
		Success:   success,
		Type:      flashcard.HistoryTypeContext,
	}
	if _, err := s.store.AppendHistory(ctx, entry); err != nil {
		return fmt.Errorf("store.AppendHistory(%d) > %w", card.ID, err)
	}
	return nil
}
