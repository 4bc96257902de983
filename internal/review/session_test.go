package review

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/oleksandr-serhiienko/SimpleTestApp/internal/flashcard"
	mock_review "github.com/oleksandr-serhiienko/SimpleTestApp/internal/mocks/review"
)

func TestSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mock_review.NewMockReviewStore(ctrl)
	store.EXPECT().RecordReview(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(3)
	scheduler := newTestScheduler(store)

	cards := []flashcard.Card{
		cardAt(1, 0, 2*time.Hour),
		cardAt(2, 0, time.Hour),
		cardAt(3, 5, time.Hour),
	}
	session := NewSession(scheduler, cards, testNow)
	ctx := context.Background()

	require.Equal(t, 2, session.Remaining())
	current, ok := session.Current()
	require.True(t, ok)
	assert.Equal(t, int64(1), current.ID)

	// failing requeues the card at the end
	require.NoError(t, session.Answer(ctx, false))
	assert.Equal(t, 2, session.Remaining())
	current, _ = session.Current()
	assert.Equal(t, int64(2), current.ID)

	require.NoError(t, session.Answer(ctx, true))
	assert.Equal(t, 1, session.Remaining())
	current, _ = session.Current()
	assert.Equal(t, int64(1), current.ID)
	assert.Equal(t, 0, current.Level)
	assert.Equal(t, testNow, current.LastRepeat)

	require.NoError(t, session.Answer(ctx, true))
	assert.True(t, session.Done())
	_, ok = session.Current()
	assert.False(t, ok)

	correct, incorrect := session.Stats()
	assert.Equal(t, 2, correct)
	assert.Equal(t, 1, incorrect)

	assert.ErrorIs(t, session.Answer(ctx, true), ErrSessionDone)

	// the original slice is not touched
	assert.Equal(t, 0, cards[0].Level)

	// a store failure keeps the card current
	failing := NewSession(scheduler, []flashcard.Card{cardAt(7, 0, 0)}, testNow)
	store.EXPECT().RecordReview(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("boom"))
	assert.Error(t, failing.Answer(ctx, true))
	assert.Equal(t, 1, failing.Remaining())
}

func TestSession_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	session := NewSession(newTestScheduler(mock_review.NewMockReviewStore(ctrl)), nil, testNow)

	assert.True(t, session.Done())
	assert.Zero(t, session.Remaining())
	assert.ErrorIs(t, session.Answer(context.Background(), false), ErrSessionDone)
}
