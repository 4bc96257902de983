// Package document loads the text a reader works on, from a local file or a web page.
package document

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-resty/resty/v2"
	"github.com/go-shiori/go-readability"
)

// MaxBodySize limits the size of a fetched page.
const MaxBodySize = 10 * 1024 * 1024

var ErrNotUTF8 = errors.New("text is not valid UTF-8")

// Source is a loaded text with its title and where it came from.
type Source struct {
	Title    string
	Text     string
	Location string
}

// FromFile reads a UTF-8 text file. The title is the file name without extension.
func FromFile(path string) (Source, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Source{}, fmt.Errorf("os.ReadFile(%s) > %w", path, err)
	}
	content = bytes.TrimPrefix(content, []byte("\xef\xbb\xbf"))
	if !utf8.Valid(content) {
		return Source{}, fmt.Errorf("%s: %w", path, ErrNotUTF8)
	}

	name := filepath.Base(path)
	return Source{
		Title:    strings.TrimSuffix(name, filepath.Ext(name)),
		Text:     string(content),
		Location: path,
	}, nil
}

// Loader fetches web pages and extracts their readable text.
type Loader struct {
	client *resty.Client
}

func NewLoader(timeout time.Duration, userAgent string) *Loader {
	client := resty.New()
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	if userAgent != "" {
		client.SetHeader("User-Agent", userAgent)
	}
	return &Loader{client: client}
}

// FromURL fetches rawURL and returns the article text found in it.
func (l *Loader) FromURL(ctx context.Context, rawURL string) (Source, error) {
	pageURL, err := url.Parse(rawURL)
	if err != nil {
		return Source{}, fmt.Errorf("url.Parse(%s) > %w", rawURL, err)
	}

	res, err := l.client.R().
		EnableTrace().
		SetContext(ctx).
		Get(rawURL)
	if err != nil {
		return Source{}, fmt.Errorf("client.Get(%s) > %w", rawURL, err)
	}
	if res.IsError() {
		return Source{}, fmt.Errorf("client.Get(%s): unexpected status %d", rawURL, res.StatusCode())
	}
	body := res.Body()
	if len(body) > MaxBodySize {
		return Source{}, fmt.Errorf("page %s exceeds %d bytes", rawURL, MaxBodySize)
	}
	slog.Default().Debug("page fetched",
		"url", rawURL,
		"status", res.StatusCode(),
		"bytes", len(body),
		"totalTime", res.Request.TraceInfo().TotalTime,
	)

	article, err := readability.FromReader(bytes.NewReader(body), pageURL)
	if err != nil {
		return Source{}, fmt.Errorf("readability.FromReader(%s) > %w", rawURL, err)
	}

	title := strings.TrimSpace(article.Title)
	if title == "" {
		title = pageURL.Host
	}
	return Source{
		Title:    title,
		Text:     strings.TrimSpace(article.TextContent),
		Location: rawURL,
	}, nil
}

// Load reads location as a URL when it has an http or https scheme, and as a file otherwise.
func (l *Loader) Load(ctx context.Context, location string) (Source, error) {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return l.FromURL(ctx, location)
	}
	return FromFile(location)
}
