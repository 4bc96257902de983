// Package reading connects a segmented text, the word or sentence a reader
// selects in it, translation lookups and the cards filed from them.
package reading

import (
	"fmt"

	"github.com/oleksandr-serhiienko/SimpleTestApp/internal/segment"
)

// Document is a text prepared for selection.
type Document struct {
	Title    string
	Text     string
	Segments []segment.Segment
}

func NewDocument(title, text string, segmenter segment.Segmenter) *Document {
	if segmenter == nil {
		segmenter = segment.RegexpSegmenter{}
	}
	return &Document{
		Title:    title,
		Text:     text,
		Segments: segmenter.Segment(text),
	}
}

type SelectionKind int

const (
	SelectWord SelectionKind = iota
	SelectSentence
)

func (k SelectionKind) String() string {
	switch k {
	case SelectWord:
		return "word"
	case SelectSentence:
		return "sentence"
	default:
		return fmt.Sprintf("SelectionKind(%d)", int(k))
	}
}

// Selection is the span a reader picked and the text it covers.
type Selection struct {
	Kind SelectionKind
	Span segment.Span
	Text string
}

// Select resolves the segment at index to a word or to its sentence.
func (d *Document) Select(kind SelectionKind, index int) (Selection, error) {
	var (
		span segment.Span
		err  error
	)
	switch kind {
	case SelectWord:
		span, err = segment.WordSpan(d.Segments, index)
	case SelectSentence:
		span, err = segment.ResolveSentence(d.Segments, index)
	default:
		return Selection{}, fmt.Errorf("unknown selection kind %v", kind)
	}
	if err != nil {
		return Selection{}, err
	}
	return Selection{
		Kind: kind,
		Span: span,
		Text: segment.Text(d.Segments, span),
	}, nil
}

// WordIndexes returns the indexes of all word segments.
func (d *Document) WordIndexes() []int {
	var indexes []int
	for i, s := range d.Segments {
		if s.IsWord {
			indexes = append(indexes, i)
		}
	}
	return indexes
}
