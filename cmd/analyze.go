package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/iksnae/chatstat/internal"
	"github.com/iksnae/chatstat/internal/export"
	"github.com/iksnae/chatstat/internal/render"
	"github.com/iksnae/chatstat/internal/tui"
	"github.com/spf13/cobra"
)

var (
	analyzeSender      string
	analyzeInteractive bool
	analyzeFormat      string
	analyzeOutput      string
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <transcript>",
	Short: "Compute statistics for a chat transcript",
	Long: `Parse a WhatsApp chat export and print its statistics.

By default the whole conversation ("Overall") is analyzed. Use --sender to
analyze one participant, or --interactive to pick one from a list.

Output formats:
  text    styled terminal report (default)
  json    full report as JSON
  yaml    full report as YAML
  md      Markdown tables
  jsonl   the analyzed messages, one per line
  sqlite  a SQLite database with one table per statistic (needs --output)`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if analyzeInteractive && analyzeSender != "" {
			return errSenderAndPicker
		}

		format := strings.ToLower(analyzeFormat)
		var exporter export.Exporter
		if format != "text" {
			var err error
			if exporter, err = export.NewExporter(format); err != nil {
				return err
			}
			if _, ok := exporter.(*export.SQLiteExporter); ok && analyzeOutput == "" {
				return errSQLiteNeedsFile
			}
		}

		stop, err := loadStopWords()
		if err != nil {
			return err
		}
		set, err := loadTranscript(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		sender := analyzeSender
		if analyzeInteractive {
			if !internal.IsTerminal(os.Stdin) || !internal.IsTerminal(os.Stdout) {
				return errNotInteractive
			}
			if sender, err = tui.PickSender(internal.Senders(set.Records)); err != nil {
				return err
			}
		}

		var report *internal.Report
		err = internal.ShowProgress(cmd.Context(), "Analyzing messages", func() error {
			var analyzeErr error
			report, analyzeErr = internal.Analyze(cmd.Context(), set, sender, analyzeOptions(stop))
			return analyzeErr
		})
		if err != nil {
			return err
		}

		if exporter == nil {
			return writeText(cmd.OutOrStdout(), report)
		}
		return writeReport(cmd.OutOrStdout(), report, exporter, analyzeOutput)
	},
}

func writeText(w io.Writer, report *internal.Report) error {
	if analyzeOutput == "" {
		return render.Report(w, report, render.Options{Width: terminalWidth()})
	}

	f, err := os.Create(analyzeOutput)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()
	if err := render.Report(f, report, render.Options{}); err != nil {
		return err
	}
	internal.PrintSuccess(fmt.Sprintf("Wrote %s", analyzeOutput))
	return nil
}

// writeReport writes report to path, or to w when path is empty
func writeReport(w io.Writer, report *internal.Report, exporter export.Exporter, path string) error {
	if path == "" {
		return exporter.Export(report, w)
	}

	if sqlite, ok := exporter.(*export.SQLiteExporter); ok {
		if err := sqlite.WriteFile(report, path); err != nil {
			return err
		}
	} else {
		f, err := os.Create(path)
		if err != nil {
			return &internal.ExportError{Format: exporter.Extension(), Path: path, Err: err}
		}
		defer f.Close()
		if err := exporter.Export(report, f); err != nil {
			return err
		}
	}

	internal.LogInfo("Exported %s report to %s", report.Sender, path)
	return nil
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().StringVarP(&analyzeSender, "sender", "s", "", "Analyze a single sender (default Overall)")
	analyzeCmd.Flags().BoolVarP(&analyzeInteractive, "interactive", "i", false, "Pick the sender from a list")
	analyzeCmd.Flags().StringVarP(&analyzeFormat, "format", "f", "text", "Output format (text, json, yaml, md, jsonl, sqlite)")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "output", "o", "", "Write to a file instead of stdout")
}
