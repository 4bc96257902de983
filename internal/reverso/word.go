package reverso

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
)

// LookupWord fetches the context page for word and parses its translations and examples.
func (client *Client) LookupWord(ctx context.Context, word string, source, target Language) (WordResult, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return WordResult{}, fmt.Errorf("lookup word: empty word")
	}
	path := fmt.Sprintf("/translation/%s-%s/%s", source, target, url.PathEscape(word))

	res, err := client.pageClient.R().
		EnableTrace().
		SetContext(ctx).
		SetHeader("User-Agent", client.userAgent()).
		Get(path)
	if err != nil {
		return WordResult{}, &FetchError{URL: path, Err: err}
	}
	if res.IsError() || res.StatusCode() < 200 || res.StatusCode() > 299 {
		return WordResult{}, &FetchError{URL: res.Request.URL, StatusCode: res.StatusCode()}
	}
	slog.Default().Debug("reverso context page fetched",
		"word", word,
		"status", res.StatusCode(),
		"totalTime", res.Request.TraceInfo().TotalTime,
	)

	result, err := parseWordPage(bytes.NewReader(res.Body()))
	if err != nil {
		return WordResult{}, &ParseError{Source: res.Request.URL, Err: err}
	}
	if len(result.Translations) == 0 {
		slog.Default().Warn("no translations found on context page", "word", word, "source", source, "target", target)
	}
	return result, nil
}
