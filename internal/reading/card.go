package reading

import (
	"strings"
	"time"

	"github.com/oleksandr-serhiienko/SimpleTestApp/internal/flashcard"
	"github.com/oleksandr-serhiienko/SimpleTestApp/internal/reverso"
)

// CardMeta carries what a card needs beyond the lookup result.
type CardMeta struct {
	UserID         string
	Source         string
	SourceLanguage reverso.Language
	TargetLanguage reverso.Language
	// MaxContexts limits the number of examples kept; 0 keeps all of them.
	MaxContexts int
}

// NewCard builds a new level 0 card for word. Translations keep their
// relevance order without duplicates; examples become contexts.
func NewCard(word string, result reverso.WordResult, meta CardMeta, now time.Time) *flashcard.Card {
	translations := make([]string, 0, len(result.Translations))
	seen := make(map[string]struct{}, len(result.Translations))
	for _, t := range result.Translations {
		w := strings.TrimSpace(t.Word)
		if w == "" {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		translations = append(translations, w)
	}

	contexts := make([]flashcard.ContextExample, 0, len(result.Examples))
	for _, example := range result.Examples {
		if meta.MaxContexts > 0 && len(contexts) == meta.MaxContexts {
			break
		}
		contexts = append(contexts, flashcard.ContextExample{
			Original:    example.Original,
			Translation: example.Translation,
		})
	}

	return &flashcard.Card{
		Word:           strings.TrimSpace(word),
		Translations:   translations,
		SourceLanguage: meta.SourceLanguage.String(),
		TargetLanguage: meta.TargetLanguage.String(),
		Source:         meta.Source,
		UserID:         meta.UserID,
		Level:          0,
		LastRepeat:     now.UTC().Truncate(time.Millisecond),
		Context:        contexts,
	}
}
