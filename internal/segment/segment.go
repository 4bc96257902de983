// Package segment splits text into addressable word and boundary segments
// and resolves word and sentence spans over them.
package segment

import (
	"regexp"
	"strings"
)

// Segment is one piece of the source text. Start and End are byte offsets,
// End exclusive.
type Segment struct {
	Text   string `json:"text"`
	IsWord bool   `json:"is_word"`
	Start  int    `json:"start"`
	End    int    `json:"end"`
}

// Segmenter splits text so that concatenating the segment texts in order
// reproduces the input exactly.
type Segmenter interface {
	Segment(text string) []Segment
}

// spaceClass covers ASCII whitespace and Unicode space separators such as
// U+00A0 and U+3000.
const spaceClass = `[\s\p{Zs}]`

// boundaryPattern matches whitespace runs (newlines included) and single
// punctuation marks.
var boundaryPattern = regexp.MustCompile(spaceClass + `+|[.,!?:;]`)

var spacePattern = regexp.MustCompile(`^` + spaceClass + `+$`)

// RegexpSegmenter is the default segmenter for space-delimited languages.
type RegexpSegmenter struct{}

var _ Segmenter = RegexpSegmenter{}

func (RegexpSegmenter) Segment(text string) []Segment {
	return Split(text)
}

// Split partitions text into word and boundary segments. Empty input yields nil.
func Split(text string) []Segment {
	return appendSplit(nil, text, 0)
}

func appendSplit(segments []Segment, text string, offset int) []Segment {
	cursor := 0
	for _, loc := range boundaryPattern.FindAllStringIndex(text, -1) {
		if loc[0] > cursor {
			segments = append(segments, newSegment(text[cursor:loc[0]], true, offset+cursor))
		}
		segments = append(segments, newSegment(text[loc[0]:loc[1]], false, offset+loc[0]))
		cursor = loc[1]
	}
	if cursor < len(text) {
		segments = append(segments, newSegment(text[cursor:], true, offset+cursor))
	}
	return segments
}

func newSegment(text string, isWord bool, start int) Segment {
	return Segment{
		Text:   text,
		IsWord: isWord,
		Start:  start,
		End:    start + len(text),
	}
}

// Join concatenates segment texts in order.
func Join(segments []Segment) string {
	var sb strings.Builder
	for _, s := range segments {
		sb.WriteString(s.Text)
	}
	return sb.String()
}

// ForLanguage returns the segmenter for a language name or code.
// Japanese needs a dictionary tokenizer, everything else splits on boundaries.
func ForLanguage(language string) (Segmenter, error) {
	switch strings.ToLower(language) {
	case "japanese", "jpn", "ja":
		return NewJapaneseSegmenter()
	default:
		return RegexpSegmenter{}, nil
	}
}
