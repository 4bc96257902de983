package reading

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/oleksandr-serhiienko/SimpleTestApp/internal/reverso"
)

// ErrStale is returned for a lookup that was superseded by a newer one.
var ErrStale = errors.New("lookup superseded by a newer request")

// Lookup sends selections to a Translator. Only the latest request wins:
// starting a new one cancels the previous request and discards its result.
type Lookup struct {
	translator reverso.Translator
	source     reverso.Language
	target     reverso.Language

	mu     sync.Mutex
	latest uint64
	cancel context.CancelFunc
}

func NewLookup(translator reverso.Translator, source, target reverso.Language) *Lookup {
	return &Lookup{
		translator: translator,
		source:     source,
		target:     target,
	}
}

// Begin starts a request and cancels the one in flight, if any.
func (l *Lookup) Begin(ctx context.Context) (uint64, context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.cancel != nil {
		l.cancel()
	}
	reqCtx, cancel := context.WithCancel(ctx)
	l.latest++
	l.cancel = cancel
	return l.latest, reqCtx
}

// Accept reports whether token still belongs to the latest request.
func (l *Lookup) Accept(token uint64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return token == l.latest
}

// End releases the request's context once its result has been handled.
func (l *Lookup) End(token uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if token == l.latest && l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
}

// Cancel aborts the request in flight.
func (l *Lookup) Cancel() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	l.latest++
}

// LookupWord fetches translations and examples for word.
func (l *Lookup) LookupWord(ctx context.Context, word string) (reverso.WordResult, error) {
	token, reqCtx := l.Begin(ctx)
	defer l.End(token)

	result, err := l.translator.LookupWord(reqCtx, word, l.source, l.target)
	if !l.Accept(token) {
		slog.Default().Debug("discarding stale word lookup", "word", word)
		return reverso.WordResult{}, ErrStale
	}
	if err != nil {
		return reverso.WordResult{}, fmt.Errorf("translator.LookupWord(%s) > %w", word, err)
	}
	return result, nil
}

// LookupSentence translates a whole sentence.
func (l *Lookup) LookupSentence(ctx context.Context, sentence string) (string, error) {
	token, reqCtx := l.Begin(ctx)
	defer l.End(token)

	translation, err := l.translator.TranslateSentence(reqCtx, sentence, l.source, l.target)
	if !l.Accept(token) {
		slog.Default().Debug("discarding stale sentence translation")
		return "", ErrStale
	}
	if err != nil {
		return "", fmt.Errorf("translator.TranslateSentence() > %w", err)
	}
	return translation, nil
}

// LookupSelection dispatches on the selection kind. A word selection returns
// its WordResult, a sentence selection its translation.
func (l *Lookup) LookupSelection(ctx context.Context, selection Selection) (reverso.WordResult, string, error) {
	if selection.Kind == SelectSentence {
		translation, err := l.LookupSentence(ctx, selection.Text)
		return reverso.WordResult{}, translation, err
	}
	result, err := l.LookupWord(ctx, selection.Text)
	return result, "", err
}
