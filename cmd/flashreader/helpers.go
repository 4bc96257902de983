package main

import (
	"context"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/oleksandr-serhiienko/SimpleTestApp/internal/bootstrap"
	"github.com/oleksandr-serhiienko/SimpleTestApp/internal/config"
	"github.com/oleksandr-serhiienko/SimpleTestApp/internal/database"
	"github.com/oleksandr-serhiienko/SimpleTestApp/internal/flashcard"
	"github.com/oleksandr-serhiienko/SimpleTestApp/internal/reverso"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}

func newTranslator(cfg config.ReversoConfig) *reverso.Client {
	return reverso.NewClient(reverso.Config{
		ContextBaseURL:   cfg.ContextBaseURL,
		TranslateURL:     cfg.TranslateURL,
		Origin:           cfg.Origin,
		UserAgents:       cfg.UserAgents,
		Timeout:          cfg.Timeout(),
		MaxRetryAttempts: cfg.MaxRetryAttempts,
	})
}

// runWithStore opens and initializes the card store, then calls fn inside a
// bootstrap.App that closes the store when fn returns or on interrupt.
func runWithStore(ctx context.Context, cfg *config.Config, fn func(ctx context.Context, store *flashcard.DBStore) error) error {
	db, err := database.Open(cfg.Database)
	if err != nil {
		return fmt.Errorf("database.Open() > %w", err)
	}
	store := flashcard.NewDBStore(db)

	app := bootstrap.New()
	app.AddCloser("card store", store)
	return app.Run(ctx, func(ctx context.Context) error {
		if err := store.Initialize(ctx); err != nil {
			return fmt.Errorf("store.Initialize() > %w", err)
		}
		return fn(ctx, store)
	})
}

// languageValue is a pflag.Value accepting a language name or its API code.
type languageValue struct {
	language reverso.Language
}

var _ pflag.Value = (*languageValue)(nil)

func (v *languageValue) String() string {
	return v.language.String()
}

func (v *languageValue) Set(value string) error {
	language, err := reverso.ParseLanguage(value)
	if err != nil {
		return err
	}
	v.language = language
	return nil
}

func (v *languageValue) Type() string {
	return "language"
}

// languagePair returns the languages set on the flags, falling back to the
// reader's configured ones.
func languagePair(cfg config.ReaderConfig, source, target *languageValue) (reverso.Language, reverso.Language, error) {
	defaultSource, defaultTarget, err := cfg.Languages()
	if err != nil {
		return "", "", err
	}
	if source.language != "" {
		defaultSource = source.language
	}
	if target.language != "" {
		defaultTarget = target.language
	}
	if defaultSource == defaultTarget {
		return "", "", fmt.Errorf("source and target language are both %s", defaultSource)
	}
	return defaultSource, defaultTarget, nil
}
