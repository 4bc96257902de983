package cli

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/fatih/color"

	"github.com/oleksandr-serhiienko/SimpleTestApp/internal/reverso"
	"github.com/oleksandr-serhiienko/SimpleTestApp/internal/segment"
)

var emphasisPattern = regexp.MustCompile(`<em>(.*?)</em>`)

// Emphasize renders <em> markers with style.
func Emphasize(text string, style *color.Color) string {
	return emphasisPattern.ReplaceAllStringFunc(text, func(match string) string {
		inner := emphasisPattern.FindStringSubmatch(match)[1]
		return style.Sprint(inner)
	})
}

// PrintWordResult writes the translations and examples of a lookup.
func PrintWordResult(w io.Writer, word string, result reverso.WordResult) {
	bold := color.New(color.Bold)
	italic := color.New(color.Italic)

	_, _ = bold.Fprintf(w, "%s\n", word)
	if len(result.Translations) == 0 {
		fmt.Fprintln(w, "  no translations found")
	}
	for i, t := range result.Translations {
		if t.PartOfSpeech != "" {
			fmt.Fprintf(w, "  %d. %s %s\n", i+1, t.Word, italic.Sprintf("(%s)", t.PartOfSpeech))
			continue
		}
		fmt.Fprintf(w, "  %d. %s\n", i+1, t.Word)
	}

	if len(result.Examples) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Examples:")
	}
	for _, e := range result.Examples {
		fmt.Fprintf(w, "  - %s\n", Emphasize(e.Original, bold))
		fmt.Fprintf(w, "    %s\n", Emphasize(e.Translation, italic))
	}
}

// PrintSegments writes one line per segment with its index, marking words.
func PrintSegments(w io.Writer, segments []segment.Segment) {
	for i, s := range segments {
		kind := " "
		if s.IsWord {
			kind = "w"
		}
		fmt.Fprintf(w, "%4d %s %q\n", i, kind, s.Text)
	}
}

// Truncate shortens text to at most n runes.
func Truncate(text string, n int) string {
	text = strings.Join(strings.Fields(text), " ")
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return string(runes[:n]) + "…"
}
