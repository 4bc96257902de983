package reverso

import (
	"fmt"
	"io"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

var (
	translationSelector = cascadia.MustCompile(`[class*="translation"]`)
	displayTermSelector = cascadia.MustCompile(`.display-term`)
	posSelector         = cascadia.MustCompile(`.pos-mark span[title]`)
	exampleSelector     = cascadia.MustCompile(`[class*="example"]`)
	sourceSideSelector  = cascadia.MustCompile(`.src`)
	targetSideSelector  = cascadia.MustCompile(`.trg`)
	textSelector        = cascadia.MustCompile(`span.text`)
	highlightSelector   = cascadia.MustCompile(`em`)
)

func parseWordPage(r io.Reader) (WordResult, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return WordResult{}, fmt.Errorf("html.Parse > %w", err)
	}
	return WordResult{
		Translations: parseTranslations(doc),
		Examples:     parseExamples(doc),
	}, nil
}

// parseTranslations drops entries without a headword.
func parseTranslations(doc *html.Node) []Translation {
	var result []Translation
	for _, entry := range innermost(doc, translationSelector) {
		term := cascadia.Query(entry, displayTermSelector)
		if term == nil {
			continue
		}
		word := strings.TrimSpace(textContent(term))
		if word == "" {
			continue
		}

		var pos string
		if posNode := cascadia.Query(entry, posSelector); posNode != nil {
			pos = strings.TrimSpace(attr(posNode, "title"))
		}
		result = append(result, Translation{Word: word, PartOfSpeech: pos})
	}
	return result
}

// parseExamples drops entries that lack either side.
func parseExamples(doc *html.Node) []Example {
	var result []Example
	for _, entry := range innermost(doc, exampleSelector) {
		original := sideText(entry, sourceSideSelector)
		translation := sideText(entry, targetSideSelector)
		if original == "" || translation == "" {
			continue
		}
		result = append(result, Example{Original: original, Translation: translation})
	}
	return result
}

func sideText(entry *html.Node, side cascadia.Matcher) string {
	sideNode := cascadia.Query(entry, side)
	if sideNode == nil {
		return ""
	}
	text := cascadia.Query(sideNode, textSelector)
	if text == nil {
		return ""
	}
	return emphasizedText(text)
}

// emphasizedText keeps the direct text of n and rewrites highlighted children
// as <em>…</em>. Any other element is skipped.
func emphasizedText(n *html.Node) string {
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch {
		case c.Type == html.TextNode:
			sb.WriteString(c.Data)
		case c.Type == html.ElementNode && c.Data == "em":
			sb.WriteString("<em>" + textContent(c) + "</em>")
		case c.Type == html.ElementNode && c.Data == "a" && hasClass(c, "link_highlighted"):
			if em := cascadia.Query(c, highlightSelector); em != nil {
				sb.WriteString("<em>" + textContent(em) + "</em>")
			}
		}
	}
	return strings.TrimSpace(sb.String())
}

// innermost returns the matches that do not contain another match, so wrapper
// containers such as "translations-content" are not read as entries.
func innermost(doc *html.Node, m cascadia.Matcher) []*html.Node {
	var result []*html.Node
	for _, n := range cascadia.QueryAll(doc, m) {
		if cascadia.Query(n, m) != nil {
			continue
		}
		result = append(result, n)
	}
	return result
}

func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(textContent(c))
	}
	return sb.String()
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}
