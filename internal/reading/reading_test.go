package reading

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_reverso "github.com/oleksandr-serhiienko/SimpleTestApp/internal/mocks/reverso"
	"github.com/oleksandr-serhiienko/SimpleTestApp/internal/reverso"
	"github.com/oleksandr-serhiienko/SimpleTestApp/internal/segment"
)

func TestDocument_Select(t *testing.T) {
	doc := NewDocument("Kapitel 1", "Das Haus ist alt. Der Baum ist grün!", nil)

	tests := []struct {
		name     string
		kind     SelectionKind
		index    int
		wantText string
		wantSpan segment.Span
		wantErr  error
	}{
		{name: "word", kind: SelectWord, index: 2, wantText: "Haus", wantSpan: segment.Span{Start: 2, End: 3}},
		{name: "first sentence", kind: SelectSentence, index: 4, wantText: "Das Haus ist alt.", wantSpan: segment.Span{Start: 0, End: 8}},
		{name: "second sentence", kind: SelectSentence, index: 11, wantText: "Der Baum ist grün!", wantSpan: segment.Span{Start: 9, End: 17}},
		{name: "word on boundary", kind: SelectWord, index: 1, wantErr: segment.ErrNotAWord},
		{name: "out of range", kind: SelectSentence, index: 99, wantErr: segment.ErrIndexOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := doc.Select(tt.kind, tt.index)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.kind, got.Kind)
			assert.Equal(t, tt.wantSpan, got.Span)
			assert.Equal(t, tt.wantText, got.Text)
		})
	}

	assert.Equal(t, []int{0, 2, 4, 6, 9, 11, 13, 15}, doc.WordIndexes())
}

func TestLookup_LookupWord(t *testing.T) {
	want := reverso.WordResult{
		Translations: []reverso.Translation{{Word: "дом", PartOfSpeech: "n"}},
	}

	tests := []struct {
		name    string
		setup   func(m *mock_reverso.MockTranslator)
		want    reverso.WordResult
		wantErr error
	}{
		{
			name: "returns the result",
			setup: func(m *mock_reverso.MockTranslator) {
				m.EXPECT().LookupWord(gomock.Any(), "Haus", reverso.German, reverso.Russian).Return(want, nil)
			},
			want: want,
		},
		{
			name: "wraps translator errors",
			setup: func(m *mock_reverso.MockTranslator) {
				m.EXPECT().LookupWord(gomock.Any(), "Haus", reverso.German, reverso.Russian).
					Return(reverso.WordResult{}, &reverso.FetchError{URL: "/translation", StatusCode: 503})
			},
			wantErr: &reverso.FetchError{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			translator := mock_reverso.NewMockTranslator(ctrl)
			tt.setup(translator)

			got, err := NewLookup(translator, reverso.German, reverso.Russian).LookupWord(context.Background(), "Haus")
			if tt.wantErr != nil {
				var fetchErr *reverso.FetchError
				require.True(t, errors.As(err, &fetchErr))
				assert.Equal(t, 503, fetchErr.StatusCode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLookup_LatestRequestWins(t *testing.T) {
	t.Run("superseded request is cancelled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		translator := mock_reverso.NewMockTranslator(ctrl)
		lookup := NewLookup(translator, reverso.German, reverso.Russian)

		started := make(chan struct{})
		translator.EXPECT().LookupWord(gomock.Any(), "alt", gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, _ string, _, _ reverso.Language) (reverso.WordResult, error) {
				close(started)
				<-ctx.Done()
				return reverso.WordResult{}, ctx.Err()
			})
		translator.EXPECT().LookupWord(gomock.Any(), "neu", gomock.Any(), gomock.Any()).
			Return(reverso.WordResult{Translations: []reverso.Translation{{Word: "новый"}}}, nil)

		errCh := make(chan error, 1)
		go func() {
			_, err := lookup.LookupWord(context.Background(), "alt")
			errCh <- err
		}()
		<-started

		got, err := lookup.LookupWord(context.Background(), "neu")
		require.NoError(t, err)
		assert.Equal(t, "новый", got.Translations[0].Word)

		select {
		case err := <-errCh:
			assert.ErrorIs(t, err, ErrStale)
		case <-time.After(5 * time.Second):
			t.Fatal("superseded lookup did not return")
		}
	})

	t.Run("late result of a superseded request is discarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		translator := mock_reverso.NewMockTranslator(ctrl)
		lookup := NewLookup(translator, reverso.German, reverso.Russian)

		started := make(chan struct{})
		release := make(chan struct{})
		translator.EXPECT().TranslateSentence(gomock.Any(), "Das Haus ist alt.", gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _, _ reverso.Language) (string, error) {
				close(started)
				<-release
				return "Дом старый.", nil
			})
		translator.EXPECT().TranslateSentence(gomock.Any(), "Der Baum ist grün.", gomock.Any(), gomock.Any()).
			Return("Дерево зелёное.", nil)

		type outcome struct {
			translation string
			err         error
		}
		resultCh := make(chan outcome, 1)
		go func() {
			translation, err := lookup.LookupSentence(context.Background(), "Das Haus ist alt.")
			resultCh <- outcome{translation, err}
		}()
		<-started

		translation, err := lookup.LookupSentence(context.Background(), "Der Baum ist grün.")
		require.NoError(t, err)
		assert.Equal(t, "Дерево зелёное.", translation)

		close(release)
		select {
		case got := <-resultCh:
			assert.ErrorIs(t, got.err, ErrStale)
			assert.Empty(t, got.translation)
		case <-time.After(5 * time.Second):
			t.Fatal("superseded lookup did not return")
		}
	})
}

func TestLookup_TokenLifecycle(t *testing.T) {
	lookup := NewLookup(nil, reverso.German, reverso.Russian)

	first, firstCtx := lookup.Begin(context.Background())
	assert.True(t, lookup.Accept(first))

	second, secondCtx := lookup.Begin(context.Background())
	assert.False(t, lookup.Accept(first))
	assert.True(t, lookup.Accept(second))
	assert.ErrorIs(t, firstCtx.Err(), context.Canceled)
	assert.NoError(t, secondCtx.Err())

	lookup.Cancel()
	assert.False(t, lookup.Accept(second))
	assert.ErrorIs(t, secondCtx.Err(), context.Canceled)
}

func TestNewCard(t *testing.T) {
	now := time.Date(2025, 4, 1, 8, 0, 0, 123456789, time.UTC)
	result := reverso.WordResult{
		Translations: []reverso.Translation{
			{Word: "дом", PartOfSpeech: "n"},
			{Word: " здание "},
			{Word: "дом"},
			{Word: ""},
		},
		Examples: []reverso.Example{
			{Original: "Das <em>Haus</em> ist alt.", Translation: "<em>Дом</em> старый."},
			{Original: "Im <em>Haus</em>", Translation: "В <em>доме</em>"},
			{Original: "Ein <em>Haus</em>", Translation: "<em>Дом</em>"},
		},
	}
	meta := CardMeta{
		UserID:         "user-1",
		Source:         "Kapitel 1",
		SourceLanguage: reverso.German,
		TargetLanguage: reverso.Russian,
		MaxContexts:    2,
	}

	card := NewCard(" Haus ", result, meta, now)

	assert.Equal(t, "Haus", card.Word)
	assert.Equal(t, []string{"дом", "здание"}, card.Translations)
	assert.Equal(t, "дом", card.PrimaryTranslation())
	assert.Equal(t, "german", card.SourceLanguage)
	assert.Equal(t, "russian", card.TargetLanguage)
	assert.Equal(t, "Kapitel 1", card.Source)
	assert.Equal(t, "user-1", card.UserID)
	assert.Zero(t, card.Level)
	assert.Equal(t, time.Date(2025, 4, 1, 8, 0, 0, 123000000, time.UTC), card.LastRepeat)
	require.Len(t, card.Context, 2)
	assert.Equal(t, "Im <em>Haus</em>", card.Context[1].Original)
	assert.Equal(t, "В <em>доме</em>", card.Context[1].Translation)

	empty := NewCard("Haus", reverso.WordResult{}, CardMeta{}, now)
	assert.Empty(t, empty.Translations)
	assert.Empty(t, empty.Context)
}
