package review

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oleksandr-serhiienko/SimpleTestApp/internal/flashcard"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func cardAt(id int64, level int, sinceLastRepeat time.Duration) flashcard.Card {
	return flashcard.Card{
		ID:         id,
		Word:       "w",
		Level:      level,
		LastRepeat: testNow.Add(-sinceLastRepeat),
	}
}

func cardIDs(cards []flashcard.Card) []int64 {
	ids := make([]int64, 0, len(cards))
	for _, card := range cards {
		ids = append(ids, card.ID)
	}
	return ids
}

func TestIsDue(t *testing.T) {
	tests := []struct {
		name     string
		card     flashcard.Card
		interval time.Duration
		want     bool
	}{
		{name: "level 0 reviewed just now", card: cardAt(1, 0, 0), want: true},
		{name: "level 0 in the future", card: cardAt(1, 0, -time.Hour), want: true},
		{name: "level 1 after a day", card: cardAt(1, 1, 24*time.Hour), want: true},
		{name: "level 1 before a day", card: cardAt(1, 1, 23*time.Hour), want: false},
		{name: "level 3 after two days", card: cardAt(1, 3, 48*time.Hour), want: false},
		{name: "level 3 after three days", card: cardAt(1, 3, 72*time.Hour), want: true},
		{name: "custom interval", card: cardAt(1, 2, 2*time.Hour), interval: time.Hour, want: true},
		{name: "very high level reviewed just now", card: cardAt(1, 121393, 0), want: false},
		{name: "imported maximum level long ago", card: cardAt(1, math.MaxInt, 24*365*time.Hour), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsDue(tt.card, testNow, tt.interval))
		})
	}
}

func TestDueAt_Saturates(t *testing.T) {
	card := cardAt(1, 121393, 0)

	got := DueAt(card, DefaultInterval)
	assert.True(t, got.After(testNow), "got %s", got)
	assert.Equal(t, testNow.Add(time.Duration(math.MaxInt64)), got)

	next := card
	next.Level = NextLevel(card.Level)
	assert.False(t, DueAt(next, DefaultInterval).Before(got))

	queue := SelectReviewQueue([]flashcard.Card{card, cardAt(2, 0, 0)}, testNow, DefaultInterval)
	require.Len(t, queue, 1)
	assert.Equal(t, int64(2), queue[0].ID)
}

func TestSelectReviewQueue(t *testing.T) {
	tests := []struct {
		name  string
		cards []flashcard.Card
		want  []int64
	}{
		{
			name:  "empty",
			cards: nil,
			want:  []int64{},
		},
		{
			name: "orders by due time then last repeat then id",
			cards: []flashcard.Card{
				cardAt(1, 0, time.Hour),
				cardAt(2, 1, 48*time.Hour),
				cardAt(3, 2, 24*time.Hour),
				cardAt(4, 1, 24*time.Hour),
				cardAt(5, 0, time.Hour),
				cardAt(6, 0, 24*time.Hour),
			},
			want: []int64{2, 6, 1, 5, 4},
		},
		{
			name: "nothing due",
			cards: []flashcard.Card{
				cardAt(1, 5, time.Hour),
				cardAt(2, 8, 24*time.Hour),
			},
			want: []int64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SelectReviewQueue(tt.cards, testNow, DefaultInterval)
			assert.Equal(t, tt.want, cardIDs(got))
		})
	}
}
