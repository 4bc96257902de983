package segment

import (
	"fmt"
	"strings"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// JapaneseSegmenter splits unspaced Japanese text into morphemes with kagome.
// Text between morphemes and symbol morphemes become boundary segments.
type JapaneseSegmenter struct {
	t *tokenizer.Tokenizer
}

var _ Segmenter = (*JapaneseSegmenter)(nil)

func NewJapaneseSegmenter() (*JapaneseSegmenter, error) {
	t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, fmt.Errorf("tokenizer.New > %w", err)
	}
	return &JapaneseSegmenter{t: t}, nil
}

func (s *JapaneseSegmenter) Segment(text string) []Segment {
	var segments []Segment
	cursor := 0
	for _, token := range s.t.Tokenize(text) {
		if token.Class == tokenizer.DUMMY || token.Surface == "" {
			continue
		}
		pos := strings.Index(text[cursor:], token.Surface)
		if pos < 0 {
			continue
		}
		if pos > 0 {
			segments = appendSplit(segments, text[cursor:cursor+pos], cursor)
		}
		start := cursor + pos
		segments = append(segments, newSegment(token.Surface, isMorphemeWord(token), start))
		cursor = start + len(token.Surface)
	}
	if cursor < len(text) {
		segments = appendSplit(segments, text[cursor:], cursor)
	}
	return segments
}

// isMorphemeWord treats symbols (記号) and blank surfaces as boundaries.
func isMorphemeWord(token tokenizer.Token) bool {
	if strings.TrimSpace(token.Surface) == "" {
		return false
	}
	if boundaryPattern.MatchString(token.Surface) && boundaryPattern.FindString(token.Surface) == token.Surface {
		return false
	}
	features := token.Features()
	return len(features) == 0 || features[0] != "記号"
}
