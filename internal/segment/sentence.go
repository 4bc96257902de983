package segment

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrIndexOutOfRange = errors.New("segment index out of range")
	ErrNotAWord        = errors.New("segment is not a word")
)

// SegmentationError is returned for an invalid index into a segment sequence.
type SegmentationError struct {
	Index  int
	Length int
	Err    error
}

func (e *SegmentationError) Error() string {
	return fmt.Sprintf("segment %d of %d: %v", e.Index, e.Length, e.Err)
}

func (e *SegmentationError) Unwrap() error {
	return e.Err
}

// Span is a half-open range [Start, End) of segment indices.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

func (s Span) Len() int {
	return s.End - s.Start
}

// sentenceTerminals end a sentence. A whitespace segment ends one when it
// contains a newline.
const sentenceTerminals = ".!?。！？"

func isTerminal(s Segment) bool {
	if s.IsWord {
		return false
	}
	if strings.Contains(s.Text, "\n") {
		return true
	}
	return len(s.Text) > 0 && strings.Contains(sentenceTerminals, s.Text)
}

func isSpace(s Segment) bool {
	return !s.IsWord && spacePattern.MatchString(s.Text)
}

// ResolveSentence returns the sentence that contains the segment at index.
//
// The start is found by scanning backward to the previous terminal and then
// skipping leading boundaries. The end is found by scanning forward to the
// next terminal, which is included, and only then trimming trailing
// whitespace. Neither bound moves past index, so index 0 starts at 0 and
// the last index ends at len(segments). A boundary segment selected inside a
// sentence therefore starts the span itself: index 2 of "Hello. World here"
// resolves to " World here".
func ResolveSentence(segments []Segment, index int) (Span, error) {
	if index < 0 || index >= len(segments) {
		return Span{}, &SegmentationError{Index: index, Length: len(segments), Err: ErrIndexOutOfRange}
	}

	start := 0
	for i := index - 1; i >= 0; i-- {
		if isTerminal(segments[i]) {
			start = i + 1
			break
		}
	}
	for start < index && !segments[start].IsWord {
		start++
	}

	end := len(segments)
	for i := index; i < len(segments); i++ {
		if isTerminal(segments[i]) {
			end = i + 1
			break
		}
	}
	for end > index+1 && isSpace(segments[end-1]) {
		end--
	}

	return Span{Start: start, End: end}, nil
}

// WordSpan returns the single-segment span of the word at index.
func WordSpan(segments []Segment, index int) (Span, error) {
	if index < 0 || index >= len(segments) {
		return Span{}, &SegmentationError{Index: index, Length: len(segments), Err: ErrIndexOutOfRange}
	}
	if !segments[index].IsWord {
		return Span{}, &SegmentationError{Index: index, Length: len(segments), Err: ErrNotAWord}
	}
	return Span{Start: index, End: index + 1}, nil
}

// Text returns the source text covered by span.
func Text(segments []Segment, span Span) string {
	if span.Start < 0 || span.End > len(segments) || span.Start >= span.End {
		return ""
	}
	return Join(segments[span.Start:span.End])
}
