package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/oleksandr-serhiienko/SimpleTestApp/internal/cli"
	"github.com/oleksandr-serhiienko/SimpleTestApp/internal/flashcard"
	"github.com/oleksandr-serhiienko/SimpleTestApp/internal/review"
)

func newDecksCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "decks",
		Short: "Show the reader's cards grouped by source",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			return runWithStore(cmd.Context(), cfg, func(ctx context.Context, store *flashcard.DBStore) error {
				cards, err := store.GetCardsByUser(ctx, cfg.Reader.UserID)
				if err != nil {
					return fmt.Errorf("store.GetCardsByUser() > %w", err)
				}

				out := cmd.OutOrStdout()
				for _, deck := range review.SummarizeDecks(cards, time.Now(), cfg.Review.Interval()) {
					name := deck.Source
					if name == "" {
						name = "(no source)"
					}
					fmt.Fprintf(out, "%-30s %4d cards, %4d due\n", name, deck.Total, deck.Due)
				}
				return nil
			})
		},
	}
}

func newReviewCommand() *cobra.Command {
	var deck string

	cmd := &cobra.Command{
		Use:   "review",
		Short: "Review the cards that are due",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			return runWithStore(cmd.Context(), cfg, func(ctx context.Context, store *flashcard.DBStore) error {
				cards, err := store.GetCardsByUser(ctx, cfg.Reader.UserID)
				if err != nil {
					return fmt.Errorf("store.GetCardsByUser() > %w", err)
				}
				if cmd.Flags().Changed("deck") {
					cards = review.GroupBySource(cards)[deck]
				}

				scheduler := review.NewScheduler(store, cfg.Review.Interval())
				session := review.NewSession(scheduler, cards, time.Now())
				reviewCLI := cli.NewReviewCLI(session, cmd.InOrStdin(), cmd.OutOrStdout())
				return cli.Run(ctx, reviewCLI)
			})
		},
	}

	cmd.Flags().StringVar(&deck, "deck", "", "Only review cards with this source label")
	return cmd
}
