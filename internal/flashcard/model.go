// Package flashcard persists cards, their example contexts and review history.
package flashcard

import "time"

type HistoryType string

const (
	HistoryTypeCard    HistoryType = "card"
	HistoryTypeContext HistoryType = "context"
)

// ContextExample is a usage example attached to a card. Both texts may
// contain <em>…</em> around the card's word.
type ContextExample struct {
	ID          int64  `yaml:"id"`
	CardID      int64  `yaml:"card_id"`
	Original    string `yaml:"sentence" validate:"required"`
	Translation string `yaml:"translation"`
	IsBad       bool   `yaml:"is_bad"`
}

// Card is a vocabulary item under review.
type Card struct {
	ID             int64            `yaml:"id"`
	Word           string           `yaml:"word" validate:"required"`
	Translations   []string         `yaml:"translations"`
	SourceLanguage string           `yaml:"source_language" validate:"required"`
	TargetLanguage string           `yaml:"target_language" validate:"required"`
	Source         string           `yaml:"source"`
	UserID         string           `yaml:"user_id" validate:"required"`
	Level          int              `yaml:"level" validate:"gte=0"`
	LastRepeat     time.Time        `yaml:"last_repeat"`
	Context        []ContextExample `yaml:"context" validate:"dive"`
}

// PrimaryTranslation returns the most relevant translation, if any.
func (c Card) PrimaryTranslation() string {
	if len(c.Translations) == 0 {
		return ""
	}
	return c.Translations[0]
}

// HistoryEntry records one review attempt. Entries are never updated.
type HistoryEntry struct {
	ID        int64       `yaml:"id"`
	Date      time.Time   `yaml:"date"`
	CardID    int64       `yaml:"card_id" validate:"gt=0"`
	ContextID *int64      `yaml:"context_id,omitempty"`
	Success   bool        `yaml:"success"`
	Type      HistoryType `yaml:"type" validate:"oneof=card context"`
}
