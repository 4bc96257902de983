package review

import (
	"sort"
	"time"

	"github.com/oleksandr-serhiienko/SimpleTestApp/internal/flashcard"
)

// DeckSummary counts the cards that share a source label.
type DeckSummary struct {
	Source string
	Total  int
	Due    int
}

// GroupBySource groups cards by their source label, keeping card order within a deck.
func GroupBySource(cards []flashcard.Card) map[string][]flashcard.Card {
	decks := make(map[string][]flashcard.Card)
	for _, card := range cards {
		decks[card.Source] = append(decks[card.Source], card)
	}
	return decks
}

// SummarizeDecks returns one summary per source, sorted by source.
func SummarizeDecks(cards []flashcard.Card, now time.Time, interval time.Duration) []DeckSummary {
	decks := GroupBySource(cards)
	summaries := make([]DeckSummary, 0, len(decks))
	for source, deck := range decks {
		summary := DeckSummary{Source: source, Total: len(deck)}
		for _, card := range deck {
			if IsDue(card, now, interval) {
				summary.Due++
			}
		}
		summaries = append(summaries, summary)
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Source < summaries[j].Source
	})
	return summaries
}
