package review

import (
	"math"
	"slices"
	"time"

	"github.com/oleksandr-serhiienko/SimpleTestApp/internal/flashcard"
)

const DefaultInterval = 24 * time.Hour

const maxWait = time.Duration(math.MaxInt64)

// DueAt is the time from which card is due again.
// The wait saturates at maxWait instead of overflowing for very high levels.
func DueAt(card flashcard.Card, interval time.Duration) time.Time {
	if interval <= 0 {
		interval = DefaultInterval
	}
	level := time.Duration(card.Level)
	if level > maxWait/interval {
		return card.LastRepeat.Add(maxWait)
	}
	return card.LastRepeat.Add(level * interval)
}

// IsDue reports whether card should be reviewed at now. Level 0 cards are always due.
func IsDue(card flashcard.Card, now time.Time, interval time.Duration) bool {
	if card.Level == 0 {
		return true
	}
	return !now.Before(DueAt(card, interval))
}

// SelectReviewQueue returns the due cards, the most overdue first.
// Ties are broken by the oldest LastRepeat and then by id.
func SelectReviewQueue(cards []flashcard.Card, now time.Time, interval time.Duration) []flashcard.Card {
	queue := make([]flashcard.Card, 0, len(cards))
	for _, card := range cards {
		if IsDue(card, now, interval) {
			queue = append(queue, card)
		}
	}

	slices.SortStableFunc(queue, func(a, b flashcard.Card) int {
		if c := DueAt(a, interval).Compare(DueAt(b, interval)); c != 0 {
			return c
		}
		if c := a.LastRepeat.Compare(b.LastRepeat); c != 0 {
			return c
		}
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})
	return queue
}
