package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oleksandr-serhiienko/SimpleTestApp/internal/cli"
	"github.com/oleksandr-serhiienko/SimpleTestApp/internal/config"
	"github.com/oleksandr-serhiienko/SimpleTestApp/internal/document"
	"github.com/oleksandr-serhiienko/SimpleTestApp/internal/reading"
	"github.com/oleksandr-serhiienko/SimpleTestApp/internal/reverso"
	"github.com/oleksandr-serhiienko/SimpleTestApp/internal/segment"
)

const documentUserAgent = "flashreader"

// loadDocument reads a file or web page and segments it for language.
func loadDocument(ctx context.Context, cfg *config.Config, location string, language reverso.Language) (*reading.Document, error) {
	loader := document.NewLoader(cfg.Reverso.Timeout(), documentUserAgent)
	source, err := loader.Load(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("loader.Load(%s) > %w", location, err)
	}
	segmenter, err := segment.ForLanguage(language.String())
	if err != nil {
		return nil, fmt.Errorf("segment.ForLanguage(%s) > %w", language, err)
	}
	return reading.NewDocument(source.Title, source.Text, segmenter), nil
}

func newSegmentCommand() *cobra.Command {
	var (
		language      languageValue
		wordIndex     int
		sentenceIndex int
	)

	cmd := &cobra.Command{
		Use:   "segment <file|url>",
		Short: "Split a text into word and non-word segments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if language.language == "" {
				if language.language, _, err = cfg.Reader.Languages(); err != nil {
					return err
				}
			}

			doc, err := loadDocument(cmd.Context(), cfg, args[0], language.language)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch {
			case cmd.Flags().Changed("sentence"):
				selection, err := doc.Select(reading.SelectSentence, sentenceIndex)
				if err != nil {
					return fmt.Errorf("document.Select(sentence, %d) > %w", sentenceIndex, err)
				}
				fmt.Fprintf(out, "%d-%d %s\n", selection.Span.Start, selection.Span.End, selection.Text)
			case cmd.Flags().Changed("word"):
				selection, err := doc.Select(reading.SelectWord, wordIndex)
				if err != nil {
					return fmt.Errorf("document.Select(word, %d) > %w", wordIndex, err)
				}
				fmt.Fprintf(out, "%d-%d %s\n", selection.Span.Start, selection.Span.End, selection.Text)
			default:
				fmt.Fprintf(out, "%s (%d segments, %d words)\n", doc.Title, len(doc.Segments), len(doc.WordIndexes()))
				cli.PrintSegments(out, doc.Segments)
			}
			return nil
		},
	}

	cmd.Flags().Var(&language, "language", "Language of the text (defaults to reader.source_language)")
	cmd.Flags().IntVar(&wordIndex, "word", 0, "Print the word at this segment index")
	cmd.Flags().IntVar(&sentenceIndex, "sentence", 0, "Print the sentence containing this segment index")
	cmd.MarkFlagsMutuallyExclusive("word", "sentence")
	return cmd
}
