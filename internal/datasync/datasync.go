// Package datasync provides import/export orchestration between YAML files and the flashcard store.
package datasync

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/oleksandr-serhiienko/SimpleTestApp/internal/flashcard"
)

// CardReader is what the exporter reads from.
type CardReader interface {
	GetAllCards(ctx context.Context) ([]flashcard.Card, error)
	GetAllHistory(ctx context.Context) ([]flashcard.HistoryEntry, error)
}

// CardWriter is what the importer writes to.
type CardWriter interface {
	GetAllCards(ctx context.Context) ([]flashcard.Card, error)
	InsertCard(ctx context.Context, card *flashcard.Card) (int64, error)
	AppendHistory(ctx context.Context, entry *flashcard.HistoryEntry) (int64, error)
}

// ImportResult tracks counts for each import operation.
type ImportResult struct {
	CardsNew        int
	CardsSkipped    int
	HistoryNew      int
	HistoryWarnings int
}

// ImportOptions controls import behavior.
type ImportOptions struct {
	DryRun bool
}

// ExportData holds all exported data from the store.
type ExportData struct {
	Cards   []flashcard.Card
	History []flashcard.HistoryEntry
}

// Exporter reads the store and returns domain structs.
type Exporter struct {
	store CardReader
}

func NewExporter(store CardReader) *Exporter {
	return &Exporter{store: store}
}

// Export reads all cards and the whole review history.
func (e *Exporter) Export(ctx context.Context) (*ExportData, error) {
	cards, err := e.store.GetAllCards(ctx)
	if err != nil {
		return nil, fmt.Errorf("store.GetAllCards() > %w", err)
	}
	history, err := e.store.GetAllHistory(ctx)
	if err != nil {
		return nil, fmt.Errorf("store.GetAllHistory() > %w", err)
	}
	return &ExportData{
		Cards:   cards,
		History: history,
	}, nil
}

// Importer writes exported cards and history into a store. Ids are reassigned.
type Importer struct {
	store  CardWriter
	writer io.Writer
}

func NewImporter(store CardWriter, writer io.Writer) *Importer {
	return &Importer{
		store:  store,
		writer: writer,
	}
}

// cardKey identifies a card across stores.
func cardKey(card flashcard.Card) string {
	return strings.Join([]string{card.UserID, card.SourceLanguage, card.TargetLanguage, card.Word}, "\x00")
}

// idMap maps exported ids to the ids assigned on import.
type idMap struct {
	cards    map[int64]int64
	contexts map[int64]int64
}

// Import inserts the cards that are not in the store yet and then the history
// of the cards it inserted. History of skipped or unknown cards is reported
// as a warning.
func (imp *Importer) Import(ctx context.Context, data *ExportData, opts ImportOptions) (*ImportResult, error) {
	var result ImportResult

	existing, err := imp.store.GetAllCards(ctx)
	if err != nil {
		return nil, fmt.Errorf("store.GetAllCards() > %w", err)
	}
	known := make(map[string]struct{}, len(existing))
	for _, card := range existing {
		known[cardKey(card)] = struct{}{}
	}

	ids := idMap{
		cards:    make(map[int64]int64, len(data.Cards)),
		contexts: make(map[int64]int64),
	}
	for _, card := range data.Cards {
		key := cardKey(card)
		if _, ok := known[key]; ok {
			fmt.Fprintf(imp.writer, "  [SKIP]  %q (%s)\n", card.Word, card.Source)
			result.CardsSkipped++
			continue
		}
		known[key] = struct{}{}

		if err := imp.importCard(ctx, card, opts, ids); err != nil {
			return nil, fmt.Errorf("importCard(%s) > %w", card.Word, err)
		}
		fmt.Fprintf(imp.writer, "  [NEW]  %q (%s)\n", card.Word, card.Source)
		result.CardsNew++
	}

	for _, entry := range data.History {
		cardID, ok := ids.cards[entry.CardID]
		if !ok {
			result.HistoryWarnings++
			continue
		}
		if opts.DryRun {
			result.HistoryNew++
			continue
		}

		imported := entry
		imported.ID = 0
		imported.CardID = cardID
		if entry.ContextID != nil {
			contextID, ok := ids.contexts[*entry.ContextID]
			if !ok {
				fmt.Fprintf(imp.writer, "  [WARN]  context %d not found for history %d\n", *entry.ContextID, entry.ID)
				result.HistoryWarnings++
				continue
			}
			imported.ContextID = &contextID
		}
		if _, err := imp.store.AppendHistory(ctx, &imported); err != nil {
			return nil, fmt.Errorf("store.AppendHistory() > %w", err)
		}
		result.HistoryNew++
	}
	if result.HistoryWarnings > 0 {
		fmt.Fprintf(imp.writer, "  [WARN]  %d history entries skipped\n", result.HistoryWarnings)
	}

	return &result, nil
}

func (imp *Importer) importCard(ctx context.Context, card flashcard.Card, opts ImportOptions, ids idMap) error {
	if opts.DryRun {
		// history of a card that would be inserted still counts
		ids.cards[card.ID] = card.ID
		for _, c := range card.Context {
			ids.contexts[c.ID] = c.ID
		}
		return nil
	}

	oldID := card.ID
	oldContextIDs := make([]int64, len(card.Context))
	contexts := make([]flashcard.ContextExample, len(card.Context))
	for i, c := range card.Context {
		oldContextIDs[i] = c.ID
		c.ID = 0
		c.CardID = 0
		contexts[i] = c
	}
	card.ID = 0
	card.Context = contexts

	newID, err := imp.store.InsertCard(ctx, &card)
	if err != nil {
		return fmt.Errorf("store.InsertCard() > %w", err)
	}
	ids.cards[oldID] = newID
	for i, c := range card.Context {
		ids.contexts[oldContextIDs[i]] = c.ID
	}
	return nil
}
