package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/oleksandr-serhiienko/SimpleTestApp/internal/flashcard"
	mock_review "github.com/oleksandr-serhiienko/SimpleTestApp/internal/mocks/review"
	"github.com/oleksandr-serhiienko/SimpleTestApp/internal/review"
)

func reviewCards() []flashcard.Card {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	return []flashcard.Card{
		{
			ID: 1, Word: "Haus", Translations: []string{"дом", "здание"}, LastRepeat: base,
			Context: []flashcard.ContextExample{
				{Original: "Das ist <em>schlecht</em>", IsBad: true},
				{Original: "Das <em>Haus</em> ist alt.", Translation: "<em>Дом</em> старый."},
			},
		},
		{ID: 2, Word: "Baum", Translations: []string{"дерево"}, LastRepeat: base.Add(time.Hour)},
	}
}

func TestReviewCLI_Run(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		recordCalls int
		wantOutput  []string
		wantLevels  map[int64]int
	}{
		{
			name:        "correct, wrong and quit",
			input:       "Дом\nwrong\nq\n",
			recordCalls: 2,
			wantOutput: []string{
				"[2 left] Haus (level 0)",
				"Das Haus ist alt.",
				`It's correct. Haus means "дом, здание"`,
				"Дом старый.",
				`It's wrong. Baum means "дерево"`,
				"[1 left] Baum (level 0)",
			},
		},
		{
			name:        "all cards answered",
			input:       "здание\nдерево\n",
			recordCalls: 2,
			wantOutput: []string{
				"No more cards to review!",
				"Correct: 2, wrong: 0",
			},
		},
		{
			name:        "end of input",
			input:       "",
			recordCalls: 0,
			wantOutput:  []string{"Translation (q to quit): "},
		},
		{
			name:        "empty answer is wrong",
			input:       "\nq\n",
			recordCalls: 1,
			wantOutput:  []string{`It's wrong. Haus means "дом, здание"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			color.NoColor = true
			defer func() { color.NoColor = false }()

			ctrl := gomock.NewController(t)
			store := mock_review.NewMockReviewStore(ctrl)
			store.EXPECT().RecordReview(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(tt.recordCalls)

			scheduler := review.NewScheduler(store, 0)
			session := review.NewSession(scheduler, reviewCards(), time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC))

			var out bytes.Buffer
			reviewCLI := NewReviewCLI(session, strings.NewReader(tt.input), &out)
			require.NoError(t, Run(context.Background(), reviewCLI))

			for _, want := range tt.wantOutput {
				assert.Contains(t, out.String(), want)
			}
			assert.NotContains(t, out.String(), "schlecht")
		})
	}
}

func TestReviewCLI_StoreError(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	ctrl := gomock.NewController(t)
	store := mock_review.NewMockReviewStore(ctrl)
	store.EXPECT().RecordReview(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("database is locked"))

	session := review.NewSession(review.NewScheduler(store, 0), reviewCards(), time.Now())
	var out bytes.Buffer
	err := Run(context.Background(), NewReviewCLI(session, strings.NewReader("дом\n"), &out))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database is locked")
	assert.Equal(t, 2, session.Remaining())
}

func TestRun_CancelledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	session := review.NewSession(review.NewScheduler(mock_review.NewMockReviewStore(ctrl), 0), reviewCards(), time.Now())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	require.NoError(t, Run(ctx, NewReviewCLI(session, strings.NewReader("дом\n"), &out)))
	assert.Empty(t, out.String())
}
