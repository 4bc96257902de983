package reverso

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/avast/retry-go"
)

type translateRequest struct {
	Format  string           `json:"format"`
	From    string           `json:"from"`
	Input   string           `json:"input"`
	Options translateOptions `json:"options"`
	To      string           `json:"to"`
}

type translateOptions struct {
	ContextResults    bool   `json:"contextResults"`
	LanguageDetection bool   `json:"languageDetection"`
	Origin            string `json:"origin"`
	SentenceSplitter  bool   `json:"sentenceSplitter"`
}

type translateResponse struct {
	Translation []string `json:"translation"`
}

// TranslateSentence translates free text and returns the first translated line.
// Failed attempts are retried only when MaxRetryAttempts is set.
func (client *Client) TranslateSentence(ctx context.Context, text string, source, target Language) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("translate sentence: empty text")
	}
	if source.Code() == "" || target.Code() == "" {
		return "", fmt.Errorf("translate sentence: unsupported language pair %s-%s", source, target)
	}

	var result string
	var lastErr error
	err := retry.Do(
		func() error {
			translated, err := client.translate(ctx, text, source, target)
			if err != nil {
				lastErr = err
				if !isRetryableError(err) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			result = translated
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(client.maxRetryAttempts+1),
		retry.Delay(200*time.Millisecond),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
		retry.OnRetry(func(n uint, err error) {
			slog.Default().Info("Retrying sentence translation", "attempt", n+1, "error", err)
		}),
	)
	if err != nil {
		if lastErr != nil {
			return "", lastErr
		}
		return "", err
	}
	return result, nil
}

func (client *Client) translate(ctx context.Context, text string, source, target Language) (string, error) {
	requestBody := translateRequest{
		Format: "text",
		From:   source.Code(),
		Input:  text,
		Options: translateOptions{
			ContextResults:    true,
			LanguageDetection: true,
			Origin:            client.origin,
			SentenceSplitter:  false,
		},
		To: target.Code(),
	}

	response, err := client.apiClient.R().
		SetContext(ctx).
		SetHeader("User-Agent", client.userAgent()).
		SetBody(requestBody).
		Post(client.translateURL)
	if err != nil {
		return "", &FetchError{URL: client.translateURL, Err: err}
	}
	if response.IsError() {
		return "", &FetchError{URL: client.translateURL, StatusCode: response.StatusCode()}
	}

	body := response.String()
	slog.Default().Debug("reverso translate response",
		"request", requestBody,
		"status", response.StatusCode(),
		"body", body,
	)

	var decoded translateResponse
	if err := json.Unmarshal([]byte(body), &decoded); err != nil {
		return "", &ParseError{Source: client.translateURL, Err: err}
	}
	if len(decoded.Translation) == 0 || strings.TrimSpace(decoded.Translation[0]) == "" {
		return "", &ParseError{Source: client.translateURL, Err: ErrEmptyResult}
	}
	return decoded.Translation[0], nil
}

func isRetryableError(err error) bool {
	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		return fetchErr.retryable()
	}
	return false
}
