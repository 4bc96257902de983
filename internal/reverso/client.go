// Package reverso fetches word translations, usage examples and sentence
// translations from the Reverso services.
package reverso

import (
	"context"
	"math/rand/v2"
	"time"

	restyv2 "github.com/go-resty/resty/v2"
	"resty.dev/v3"
)

const (
	DefaultContextBaseURL = "https://context.reverso.net"
	DefaultTranslateURL   = "https://api.reverso.net/translate/v1/translation"
	DefaultOrigin         = "reversomobile"
)

// DefaultUserAgents is used when Config.UserAgents is empty.
var DefaultUserAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 14_5) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.5 Safari/605.1.15",
	"Mozilla/5.0 (X11; Linux x86_64; rv:127.0) Gecko/20100101 Firefox/127.0",
	"Mozilla/5.0 (iPhone; CPU iPhone OS 17_5 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.5 Mobile/15E148 Safari/604.1",
}

// Translation is one candidate gloss of a looked-up word.
type Translation struct {
	Word         string `json:"word" yaml:"word"`
	PartOfSpeech string `json:"pos" yaml:"pos"`
}

// Example is a bilingual usage example. Both sides may contain <em>…</em>
// around the looked-up term.
type Example struct {
	Original    string `json:"original" yaml:"original"`
	Translation string `json:"translation" yaml:"translation"`
}

// WordResult is the parsed content of a word page, in relevance order.
type WordResult struct {
	Translations []Translation
	Examples     []Example
}

//go:generate mockgen -source=client.go -destination=../mocks/reverso/mock_translator.go -package=mock_reverso

// Translator looks up words and sentences.
type Translator interface {
	LookupWord(ctx context.Context, word string, source, target Language) (WordResult, error)
	TranslateSentence(ctx context.Context, text string, source, target Language) (string, error)
}

type Config struct {
	ContextBaseURL   string
	TranslateURL     string
	Origin           string
	UserAgents       []string
	Timeout          time.Duration
	MaxRetryAttempts uint
}

// Client talks to both Reverso endpoints. Nothing is cached.
type Client struct {
	pageClient       *restyv2.Client
	apiClient        *resty.Client
	translateURL     string
	origin           string
	userAgents       []string
	maxRetryAttempts uint
}

var _ Translator = (*Client)(nil)

func NewClient(config Config) *Client {
	if config.ContextBaseURL == "" {
		config.ContextBaseURL = DefaultContextBaseURL
	}
	if config.TranslateURL == "" {
		config.TranslateURL = DefaultTranslateURL
	}
	if config.Origin == "" {
		config.Origin = DefaultOrigin
	}
	if len(config.UserAgents) == 0 {
		config.UserAgents = DefaultUserAgents
	}

	pageClient := restyv2.New().
		SetBaseURL(config.ContextBaseURL).
		SetHeader("Accept", "*/*")
	apiClient := resty.New()
	apiClient.SetHeader("Accept", "*/*")
	apiClient.SetHeader("Content-Type", "application/json")
	if config.Timeout > 0 {
		pageClient.SetTimeout(config.Timeout)
		apiClient.SetTimeout(config.Timeout)
	}

	return &Client{
		pageClient:       pageClient,
		apiClient:        apiClient,
		translateURL:     config.TranslateURL,
		origin:           config.Origin,
		userAgents:       config.UserAgents,
		maxRetryAttempts: config.MaxRetryAttempts,
	}
}

func (client *Client) Close() error {
	return client.apiClient.Close()
}

func (client *Client) userAgent() string {
	return client.userAgents[rand.IntN(len(client.userAgents))]
}
