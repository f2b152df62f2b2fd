package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/iksnae/chatstat/internal"
	"github.com/iksnae/chatstat/internal/export"
	"github.com/spf13/cobra"
)

var (
	format     string
	outputDir  string
	exportOnly string
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export <transcript>",
	Short: "Export reports for every sender to files",
	Long: `Export one report per sender filter (Overall plus every participant)
to a directory, in jsonl, md, yaml, json or sqlite format.

Use --sender to export a single filter. Use 'chatstat senders' to see the
available names.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		exporter, err := export.NewExporter(format)
		if err != nil {
			return err
		}

		stop, err := loadStopWords()
		if err != nil {
			return err
		}
		set, err := loadTranscript(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		senders := internal.Senders(set.Records)
		if exportOnly != "" {
			senders = []string{exportOnly}
		}

		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}

		opts := analyzeOptions(stop)
		names := export.NewFileNamer()
		steps := make([]internal.ProgressStep, 0, len(senders))
		for _, sender := range senders {
			sender := sender
			path := filepath.Join(outputDir, names.Name(&internal.Report{Sender: sender}, exporter))
			steps = append(steps, internal.ProgressStep{
				Message: "Exporting " + sender,
				Fn: func() error {
					report, err := internal.Analyze(cmd.Context(), set, sender, opts)
					if err != nil {
						return err
					}
					return writeReport(nil, report, exporter, path)
				},
			})
		}
		if err := internal.ShowProgressWithSteps(cmd.Context(), steps); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d report(s) to %s\n", len(senders), outputDir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&format, "format", "f", "jsonl", "Export format (jsonl, md, yaml, json, sqlite)")
	exportCmd.Flags().StringVarP(&outputDir, "out", "o", "./exports", "Output directory")
	exportCmd.Flags().StringVarP(&exportOnly, "sender", "s", "", "Export a single sender filter")
}
