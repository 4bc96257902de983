package flashcard

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// timestampLayout matches the ISO-8601 strings written by the mobile app.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

func parseTimestamp(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

type cardRow struct {
	ID             int64  `db:"id"`
	Word           string `db:"word"`
	Translations   string `db:"translations"`
	LastRepeat     string `db:"lastRepeat"`
	Level          int    `db:"level"`
	UserID         string `db:"userId"`
	Source         string `db:"source"`
	SourceLanguage string `db:"sourceLanguage"`
	TargetLanguage string `db:"targetLanguage"`
}

type cardContextRow struct {
	cardRow
	ContextID          sql.NullInt64  `db:"contextId"`
	Sentence           sql.NullString `db:"sentence"`
	ContextTranslation sql.NullString `db:"contextTranslation"`
	IsBad              sql.NullBool   `db:"isBad"`
}

type historyRow struct {
	ID        int64         `db:"id"`
	Date      string        `db:"date"`
	CardID    int64         `db:"cardId"`
	ContextID sql.NullInt64 `db:"contextId"`
	Success   bool          `db:"success"`
	Type      string        `db:"type"`
}

func newCardRow(card *Card) (cardRow, error) {
	translations := card.Translations
	if translations == nil {
		translations = []string{}
	}
	encoded, err := json.Marshal(translations)
	if err != nil {
		return cardRow{}, fmt.Errorf("json.Marshal(translations) > %w", err)
	}
	return cardRow{
		ID:             card.ID,
		Word:           card.Word,
		Translations:   string(encoded),
		LastRepeat:     formatTimestamp(card.LastRepeat),
		Level:          card.Level,
		UserID:         card.UserID,
		Source:         card.Source,
		SourceLanguage: card.SourceLanguage,
		TargetLanguage: card.TargetLanguage,
	}, nil
}

func (r cardRow) toCard() (Card, error) {
	var translations []string
	if err := json.Unmarshal([]byte(r.Translations), &translations); err != nil {
		return Card{}, &StorageError{
			Op:  fmt.Sprintf("decode card %d", r.ID),
			Err: fmt.Errorf("%w: translations: %v", ErrCorruptRow, err),
		}
	}
	if translations == nil {
		translations = []string{}
	}
	lastRepeat, err := parseTimestamp(r.LastRepeat)
	if err != nil {
		return Card{}, &StorageError{
			Op:  fmt.Sprintf("decode card %d", r.ID),
			Err: fmt.Errorf("%w: lastRepeat: %v", ErrCorruptRow, err),
		}
	}
	return Card{
		ID:             r.ID,
		Word:           r.Word,
		Translations:   translations,
		SourceLanguage: r.SourceLanguage,
		TargetLanguage: r.TargetLanguage,
		Source:         r.Source,
		UserID:         r.UserID,
		Level:          r.Level,
		LastRepeat:     lastRepeat,
		Context:        []ContextExample{},
	}, nil
}

// groupCards folds joined rows into one card per id, keeping row order.
func groupCards(rows []cardContextRow) ([]Card, error) {
	cards := make([]Card, 0, len(rows))
	positions := make(map[int64]int, len(rows))
	for _, row := range rows {
		pos, ok := positions[row.ID]
		if !ok {
			card, err := row.toCard()
			if err != nil {
				return nil, err
			}
			cards = append(cards, card)
			pos = len(cards) - 1
			positions[row.ID] = pos
		}
		if !row.ContextID.Valid {
			continue
		}
		if !row.Sentence.Valid {
			return nil, &StorageError{
				Op:  fmt.Sprintf("decode context %d", row.ContextID.Int64),
				Err: fmt.Errorf("%w: missing sentence", ErrCorruptRow),
			}
		}
		cards[pos].Context = append(cards[pos].Context, ContextExample{
			ID:          row.ContextID.Int64,
			CardID:      row.ID,
			Original:    row.Sentence.String,
			Translation: row.ContextTranslation.String,
			IsBad:       row.IsBad.Valid && row.IsBad.Bool,
		})
	}
	return cards, nil
}

func (r historyRow) toEntry() (HistoryEntry, error) {
	date, err := parseTimestamp(r.Date)
	if err != nil {
		return HistoryEntry{}, &StorageError{
			Op:  fmt.Sprintf("decode history %d", r.ID),
			Err: fmt.Errorf("%w: date: %v", ErrCorruptRow, err),
		}
	}
	entry := HistoryEntry{
		ID:      r.ID,
		Date:    date,
		CardID:  r.CardID,
		Success: r.Success,
		Type:    HistoryType(r.Type),
	}
	if r.ContextID.Valid {
		contextID := r.ContextID.Int64
		entry.ContextID = &contextID
	}
	return entry, nil
}

func nullableID(id *int64) sql.NullInt64 {
	if id == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *id, Valid: true}
}
