package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/oleksandr-serhiienko/SimpleTestApp/internal/cli"
	"github.com/oleksandr-serhiienko/SimpleTestApp/internal/flashcard"
	"github.com/oleksandr-serhiienko/SimpleTestApp/internal/reading"
)

// selectionFlags pick a word or sentence out of a document instead of taking it from the arguments.
type selectionFlags struct {
	document string
	index    int
}

func (f *selectionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.document, "document", "", "File or URL to select the text from")
	cmd.Flags().IntVar(&f.index, "index", 0, "Segment index of the selection in --document")
}

func newLookupCommand() *cobra.Command {
	var (
		source, target languageValue
		selection      selectionFlags
		save           bool
		deck           string
		maxContexts    int
	)

	cmd := &cobra.Command{
		Use:   "lookup [word]",
		Short: "Look up translations and usage examples of a word",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			sourceLanguage, targetLanguage, err := languagePair(cfg.Reader, &source, &target)
			if err != nil {
				return err
			}

			word, title, err := resolveSelection(ctx, cmd, args, selection, reading.SelectWord, func(location string) (*reading.Document, error) {
				return loadDocument(ctx, cfg, location, sourceLanguage)
			})
			if err != nil {
				return err
			}
			if deck == "" {
				deck = title
			}

			translator := newTranslator(cfg.Reverso)
			defer func() {
				_ = translator.Close()
			}()
			lookup := reading.NewLookup(translator, sourceLanguage, targetLanguage)
			result, err := lookup.LookupWord(ctx, word)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			cli.PrintWordResult(out, word, result)
			if !save {
				return nil
			}
			if len(result.Translations) == 0 {
				return fmt.Errorf("no translations found for %q, nothing to save", word)
			}

			card := reading.NewCard(word, result, reading.CardMeta{
				UserID:         cfg.Reader.UserID,
				Source:         deck,
				SourceLanguage: sourceLanguage,
				TargetLanguage: targetLanguage,
				MaxContexts:    maxContexts,
			}, time.Now())
			return runWithStore(ctx, cfg, func(ctx context.Context, store *flashcard.DBStore) error {
				id, err := store.InsertCard(ctx, card)
				if err != nil {
					return fmt.Errorf("store.InsertCard(%s) > %w", card.Word, err)
				}
				fmt.Fprintf(out, "Saved card %d: %s (%d contexts)\n", id, card.Word, len(card.Context))
				return nil
			})
		},
	}

	cmd.Flags().Var(&source, "from", "Language of the word (defaults to reader.source_language)")
	cmd.Flags().Var(&target, "to", "Language to translate into (defaults to reader.target_language)")
	selection.register(cmd)
	cmd.Flags().BoolVar(&save, "save", false, "Save the word as a new card")
	cmd.Flags().StringVar(&deck, "deck", "", "Source label of the saved card (defaults to the document title)")
	cmd.Flags().IntVar(&maxContexts, "max-contexts", 5, "Maximum number of examples kept on a saved card, 0 keeps all")
	return cmd
}

func newTranslateCommand() *cobra.Command {
	var (
		source, target languageValue
		selection      selectionFlags
	)

	cmd := &cobra.Command{
		Use:   "translate [text...]",
		Short: "Translate a sentence",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			sourceLanguage, targetLanguage, err := languagePair(cfg.Reader, &source, &target)
			if err != nil {
				return err
			}

			text := strings.Join(args, " ")
			if len(args) > 0 {
				args = []string{text}
			}
			sentence, _, err := resolveSelection(ctx, cmd, args, selection, reading.SelectSentence, func(location string) (*reading.Document, error) {
				return loadDocument(ctx, cfg, location, sourceLanguage)
			})
			if err != nil {
				return err
			}

			translator := newTranslator(cfg.Reverso)
			defer func() {
				_ = translator.Close()
			}()
			lookup := reading.NewLookup(translator, sourceLanguage, targetLanguage)
			translation, err := lookup.LookupSentence(ctx, sentence)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, sentence)
			fmt.Fprintf(out, "  %s\n", translation)
			return nil
		},
	}

	cmd.Flags().Var(&source, "from", "Language of the text (defaults to reader.source_language)")
	cmd.Flags().Var(&target, "to", "Language to translate into (defaults to reader.target_language)")
	selection.register(cmd)
	return cmd
}

// resolveSelection returns the text given as the only argument, or the
// selection of kind at --index in --document together with the document title.
func resolveSelection(
	ctx context.Context,
	cmd *cobra.Command,
	args []string,
	flags selectionFlags,
	kind reading.SelectionKind,
	load func(location string) (*reading.Document, error),
) (string, string, error) {
	if flags.document == "" {
		if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
			return "", "", errors.New("either an argument or --document is required")
		}
		return strings.TrimSpace(args[0]), "", nil
	}
	if len(args) > 0 {
		return "", "", errors.New("an argument and --document cannot be used together")
	}
	if !cmd.Flags().Changed("index") {
		return "", "", errors.New("--index is required with --document")
	}
	if err := ctx.Err(); err != nil {
		return "", "", err
	}

	doc, err := load(flags.document)
	if err != nil {
		return "", "", err
	}
	selection, err := doc.Select(kind, flags.index)
	if err != nil {
		return "", "", fmt.Errorf("document.Select(%s, %d) > %w", kind, flags.index, err)
	}
	return selection.Text, doc.Title, nil
}
