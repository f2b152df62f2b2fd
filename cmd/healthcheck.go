package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/chatstat/internal"
	"github.com/spf13/cobra"
)

var (
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("62")).
			Bold(true).
			Underline(true)
)

// healthcheckCmd represents the healthcheck command
var healthcheckCmd = &cobra.Command{
	Use:   "healthcheck [transcript]",
	Short: "Check that chatstat is configured and can read a transcript",
	Long: `Check the health of chatstat by verifying:
  • Configuration loading and validation
  • Stop-word list availability (word analytics refuse to run without it)
  • Optionally, that a transcript parses and how many timestamps failed

This command is useful for debugging setup issues, especially in CI/CD environments.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		failed := false

		fmt.Fprintln(out, sectionStyle.Render("chatstat health check"))
		fmt.Fprintln(out)

		// Step 1: configuration (already loaded by the root command)
		fmt.Fprintln(out, infoStyle.Render("Step 1: Loading configuration..."))
		if cfg.ConfigFile != "" {
			fmt.Fprintln(out, successStyle.Render("✅ Config loaded from "+cfg.ConfigFile))
		} else {
			fmt.Fprintln(out, successStyle.Render("✅ Using built-in defaults (no config file)"))
		}
		if verbose {
			printConfig(out)
		}
		fmt.Fprintln(out)

		// Step 2: stop words
		fmt.Fprintln(out, infoStyle.Render("Step 2: Loading stop words..."))
		if stop, err := internal.LoadStopWords(cfg.StopWordsPath); err != nil {
			failed = true
			fmt.Fprintln(out, errorStyle.Render("❌ Stop words unavailable:"), err)
		} else {
			fmt.Fprintln(out, successStyle.Render(fmt.Sprintf("✅ %d stop words loaded from %s", stop.Len(), stop.Source())))
		}
		fmt.Fprintln(out)

		// Step 3: transcript
		if len(args) == 1 {
			fmt.Fprintln(out, infoStyle.Render("Step 3: Parsing transcript..."))
			set, err := loadTranscript(cmd.Context(), args[0])
			switch {
			case err != nil:
				failed = true
				fmt.Fprintln(out, errorStyle.Render("❌ Failed to read transcript:"), err)
			case set.Len() == 0:
				fmt.Fprintln(out, warningStyle.Render("⚠️  No messages found; is this a WhatsApp export?"))
			default:
				fmt.Fprintln(out, successStyle.Render(fmt.Sprintf("✅ %d messages from %d senders",
					set.Summary.Records, set.Summary.DistinctSenders)))
				if set.Summary.UnparsedDates > 0 {
					fmt.Fprintln(out, warningStyle.Render(fmt.Sprintf("⚠️  %d timestamps could not be parsed (try --month-first)",
						set.Summary.UnparsedDates)))
				}
			}
			fmt.Fprintln(out)
		}

		if failed {
			fmt.Fprintln(out, errorStyle.Render("❌ Health check failed"))
			return errHealthcheckFails
		}
		fmt.Fprintln(out, successStyle.Render("✅ Health check passed!"))
		return nil
	},
}

func printConfig(out io.Writer) {
	fmt.Fprintf(out, "   Stop words: %s\n", cfg.StopWordsPath)
	fmt.Fprintf(out, "   Day first: %v\n", cfg.DayFirst)
	fmt.Fprintf(out, "   Default year: %d\n", cfg.DefaultYear)
	fmt.Fprintf(out, "   Media placeholder: %s\n", cfg.MediaPlaceholder)
	fmt.Fprintf(out, "   Top words / senders: %d / %d\n", cfg.TopWords, cfg.TopSenders)
	fmt.Fprintf(out, "   Parallel: %v\n", cfg.Parallel)
	fmt.Fprintf(out, "   Log level: %s\n", internal.GetLogLevel())
}

func init() {
	rootCmd.AddCommand(healthcheckCmd)
}
