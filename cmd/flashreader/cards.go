package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/oleksandr-serhiienko/SimpleTestApp/internal/cli"
	"github.com/oleksandr-serhiienko/SimpleTestApp/internal/flashcard"
	"github.com/oleksandr-serhiienko/SimpleTestApp/internal/review"
)

func newCardsCommand() *cobra.Command {
	cardsCommand := &cobra.Command{
		Use:   "cards",
		Short: "Manage saved flashcards",
	}

	cardsCommand.AddCommand(
		newCardsAddCommand(),
		newCardsListCommand(),
		newCardsShowCommand(),
		newCardsDeleteCommand(),
		newCardsHistoryCommand(),
		newCardsMarkBadCommand(),
	)
	return cardsCommand
}

func parseID(value string) (int64, error) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", value)
	}
	return id, nil
}

// parseContext splits "original|translation".
func parseContext(value string) (flashcard.ContextExample, error) {
	original, translation, _ := strings.Cut(value, "|")
	original = strings.TrimSpace(original)
	if original == "" {
		return flashcard.ContextExample{}, fmt.Errorf("context %q has no sentence", value)
	}
	return flashcard.ContextExample{
		Original:    original,
		Translation: strings.TrimSpace(translation),
	}, nil
}

func newCardsAddCommand() *cobra.Command {
	var (
		source, target languageValue
		translations   []string
		contexts       []string
		deck           string
	)

	cmd := &cobra.Command{
		Use:   "add <word>",
		Short: "Add a card without looking it up",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			sourceLanguage, targetLanguage, err := languagePair(cfg.Reader, &source, &target)
			if err != nil {
				return err
			}

			card := &flashcard.Card{
				Word:           strings.TrimSpace(args[0]),
				Translations:   translations,
				SourceLanguage: sourceLanguage.String(),
				TargetLanguage: targetLanguage.String(),
				Source:         deck,
				UserID:         cfg.Reader.UserID,
				LastRepeat:     time.Now().UTC().Truncate(time.Millisecond),
			}
			for _, value := range contexts {
				example, err := parseContext(value)
				if err != nil {
					return err
				}
				card.Context = append(card.Context, example)
			}

			return runWithStore(cmd.Context(), cfg, func(ctx context.Context, store *flashcard.DBStore) error {
				id, err := store.InsertCard(ctx, card)
				if err != nil {
					return fmt.Errorf("store.InsertCard(%s) > %w", card.Word, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Saved card %d: %s (%d contexts)\n", id, card.Word, len(card.Context))
				return nil
			})
		},
	}

	cmd.Flags().Var(&source, "from", "Language of the word (defaults to reader.source_language)")
	cmd.Flags().Var(&target, "to", "Language of the translations (defaults to reader.target_language)")
	cmd.Flags().StringSliceVarP(&translations, "translation", "t", nil, "Translation of the word, most relevant first")
	cmd.Flags().StringArrayVarP(&contexts, "context", "c", nil, `Usage example as "sentence|translation"`)
	cmd.Flags().StringVar(&deck, "deck", "", "Source label of the card")
	return cmd
}

func newCardsListCommand() *cobra.Command {
	var (
		deck     string
		allUsers bool
		dueOnly  bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the reader's cards",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			return runWithStore(cmd.Context(), cfg, func(ctx context.Context, store *flashcard.DBStore) error {
				var cards []flashcard.Card
				if allUsers {
					cards, err = store.GetAllCards(ctx)
				} else {
					cards, err = store.GetCardsByUser(ctx, cfg.Reader.UserID)
				}
				if err != nil {
					return fmt.Errorf("store.GetCards() > %w", err)
				}

				now := time.Now()
				out := cmd.OutOrStdout()
				var count int
				for _, card := range cards {
					if cmd.Flags().Changed("deck") && card.Source != deck {
						continue
					}
					if dueOnly && !review.IsDue(card, now, cfg.Review.Interval()) {
						continue
					}
					printCardLine(out, card)
					count++
				}
				fmt.Fprintf(out, "%d cards\n", count)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&deck, "deck", "", "Only list cards with this source label")
	cmd.Flags().BoolVar(&allUsers, "all-users", false, "List the cards of every user")
	cmd.Flags().BoolVar(&dueOnly, "due", false, "Only list cards that are due for review")
	return cmd
}

func printCardLine(w io.Writer, card flashcard.Card) {
	fmt.Fprintf(w, "%5d  %-20s  %-30s  level %-3d  %s\n",
		card.ID,
		cli.Truncate(card.Word, 20),
		cli.Truncate(strings.Join(card.Translations, ", "), 30),
		card.Level,
		card.Source,
	)
}

func newCardsShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a card with its contexts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			return runWithStore(cmd.Context(), cfg, func(ctx context.Context, store *flashcard.DBStore) error {
				card, err := store.GetCardByID(ctx, id)
				if err != nil {
					return fmt.Errorf("store.GetCardByID(%d) > %w", id, err)
				}

				out := cmd.OutOrStdout()
				bold := color.New(color.Bold)
				italic := color.New(color.Italic)
				_, _ = bold.Fprintf(out, "%s", card.Word)
				fmt.Fprintf(out, " (%s-%s)\n", card.SourceLanguage, card.TargetLanguage)
				fmt.Fprintf(out, "  translations: %s\n", strings.Join(card.Translations, ", "))
				fmt.Fprintf(out, "  deck: %s\n", card.Source)
				fmt.Fprintf(out, "  level: %d, last repeat: %s, due: %s\n",
					card.Level,
					card.LastRepeat.Format(time.RFC3339),
					review.DueAt(*card, cfg.Review.Interval()).Format(time.RFC3339),
				)
				for _, example := range card.Context {
					mark := ""
					if example.IsBad {
						mark = " [bad]"
					}
					fmt.Fprintf(out, "  #%d%s %s\n", example.ID, mark, cli.Emphasize(example.Original, bold))
					if example.Translation != "" {
						fmt.Fprintf(out, "      %s\n", cli.Emphasize(example.Translation, italic))
					}
				}
				return nil
			})
		},
	}
}

func newCardsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a card and its contexts; its review history is kept",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			return runWithStore(cmd.Context(), cfg, func(ctx context.Context, store *flashcard.DBStore) error {
				card, err := store.GetCardByID(ctx, id)
				if err != nil {
					return fmt.Errorf("store.GetCardByID(%d) > %w", id, err)
				}
				if err := store.DeleteCard(ctx, id); err != nil {
					return fmt.Errorf("store.DeleteCard(%d) > %w", id, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted card %d: %s\n", id, card.Word)
				return nil
			})
		},
	}
}

func newCardsHistoryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "history <id>",
		Short: "Show the review history of a card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			return runWithStore(cmd.Context(), cfg, func(ctx context.Context, store *flashcard.DBStore) error {
				history, err := store.GetCardHistory(ctx, id)
				if err != nil {
					return fmt.Errorf("store.GetCardHistory(%d) > %w", id, err)
				}

				out := cmd.OutOrStdout()
				if len(history) == 0 {
					fmt.Fprintf(out, "No history for card %d\n", id)
					return nil
				}
				for _, entry := range history {
					result := "wrong"
					if entry.Success {
						result = "correct"
					}
					line := fmt.Sprintf("%s  %-7s  %s", entry.Date.Format(time.RFC3339), entry.Type, result)
					if entry.ContextID != nil {
						line += fmt.Sprintf("  context #%d", *entry.ContextID)
					}
					fmt.Fprintln(out, line)
				}
				return nil
			})
		},
	}
}

func newCardsMarkBadCommand() *cobra.Command {
	var undo bool

	cmd := &cobra.Command{
		Use:   "mark-bad <context-id>",
		Short: "Hide a usage example from reviews",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			return runWithStore(cmd.Context(), cfg, func(ctx context.Context, store *flashcard.DBStore) error {
				found, err := store.SetContextBad(ctx, id, !undo)
				if err != nil {
					return fmt.Errorf("store.SetContextBad(%d) > %w", id, err)
				}
				if !found {
					return fmt.Errorf("context %d not found", id)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Context %d bad: %t\n", id, !undo)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&undo, "undo", false, "Use the example in reviews again")
	return cmd
}
