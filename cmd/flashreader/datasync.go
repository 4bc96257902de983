package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oleksandr-serhiienko/SimpleTestApp/internal/datasync"
	"github.com/oleksandr-serhiienko/SimpleTestApp/internal/flashcard"
)

func newExportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export <dir>",
		Short: "Export all cards and review history to YAML files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			outputDir := args[0]

			return runWithStore(cmd.Context(), cfg, func(ctx context.Context, store *flashcard.DBStore) error {
				data, err := datasync.NewExporter(store).Export(ctx)
				if err != nil {
					return fmt.Errorf("exporter.Export() > %w", err)
				}
				if err := datasync.NewYAMLSink(outputDir).WriteAll(data); err != nil {
					return fmt.Errorf("sink.WriteAll(%s) > %w", outputDir, err)
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Exported to %s:\n", outputDir)
				fmt.Fprintf(out, "  Cards:   %d\n", len(data.Cards))
				fmt.Fprintf(out, "  History: %d\n", len(data.History))
				return nil
			})
		},
	}
}

func newImportCommand() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import <dir>",
		Short: "Import cards and review history from YAML files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			data, err := datasync.ReadYAML(args[0])
			if err != nil {
				return fmt.Errorf("datasync.ReadYAML(%s) > %w", args[0], err)
			}

			return runWithStore(cmd.Context(), cfg, func(ctx context.Context, store *flashcard.DBStore) error {
				out := cmd.OutOrStdout()
				importer := datasync.NewImporter(store, out)
				result, err := importer.Import(ctx, data, datasync.ImportOptions{DryRun: dryRun})
				if err != nil {
					return fmt.Errorf("importer.Import() > %w", err)
				}

				fmt.Fprintln(out, "\nImport Summary:")
				if dryRun {
					fmt.Fprintln(out, "  (dry-run mode, no changes made)")
				}
				fmt.Fprintf(out, "  Cards:   %d new, %d skipped\n", result.CardsNew, result.CardsSkipped)
				fmt.Fprintf(out, "  History: %d new, %d warnings\n", result.HistoryNew, result.HistoryWarnings)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview changes without modifying the database")
	return cmd
}
