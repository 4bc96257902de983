package review

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/oleksandr-serhiienko/SimpleTestApp/internal/flashcard"
)

var ErrSessionDone = errors.New("review session is done")

// Session walks through the cards due at its start.
// A failed card goes back to the end of the queue; a successful one leaves it.
type Session struct {
	scheduler *Scheduler
	queue     []flashcard.Card
	correct   int
	incorrect int
}

func NewSession(scheduler *Scheduler, cards []flashcard.Card, now time.Time) *Session {
	queue := SelectReviewQueue(cards, now, scheduler.Interval())
	slog.Default().Info("review session started", "cards", len(cards), "due", len(queue))
	return &Session{
		scheduler: scheduler,
		queue:     queue,
	}
}

// Current returns the card under review, or false when the session is done.
func (s *Session) Current() (*flashcard.Card, bool) {
	if s.Done() {
		return nil, false
	}
	return &s.queue[0], true
}

// Answer stores the outcome for the current card and moves on.
// On error the card stays current.
func (s *Session) Answer(ctx context.Context, success bool) error {
	card, ok := s.Current()
	if !ok {
		return ErrSessionDone
	}

	if success {
		if err := s.scheduler.Success(ctx, card); err != nil {
			return err
		}
		s.correct++
		s.queue = s.queue[1:]
		return nil
	}

	if err := s.scheduler.Failure(ctx, card); err != nil {
		return err
	}
	s.incorrect++
	failed := *card
	s.queue = append(s.queue[1:], failed)
	return nil
}

func (s *Session) Done() bool {
	return len(s.queue) == 0
}

func (s *Session) Remaining() int {
	return len(s.queue)
}

// Stats returns the number of correct and incorrect answers so far.
func (s *Session) Stats() (correct, incorrect int) {
	return s.correct, s.incorrect
}
