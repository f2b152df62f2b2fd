package cmd

import (
	"fmt"
	"os"

	"github.com/iksnae/chatstat/internal"
	"github.com/iksnae/chatstat/internal/config"
	"github.com/spf13/cobra"
)

var (
	verbose       bool
	configFile    string
	stopWordsPath string
	monthFirst    bool
	version       string = "dev"
	commit        string = "unknown"
	date          string = "unknown"

	// cfg is loaded before every command runs
	cfg *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "chatstat",
	Short: "Analyze exported WhatsApp chat transcripts",
	Long: `A CLI tool that turns an exported WhatsApp chat (.txt) into statistics.

It parses the transcript into timestamped messages and computes, for the whole
group or a single participant:
  • Message, word, media and link counts
  • Monthly and daily timelines
  • Busiest weekdays, months and a weekday by hour heatmap
  • Most active participants and their share of messages
  • Most common words (stop words removed) and word-cloud input
  • Emoji usage

Quick Start:
  chatstat senders chat.txt              # List participants
  chatstat analyze chat.txt              # Whole-group report
  chatstat analyze chat.txt -s Alice     # One participant
  chatstat export chat.txt -f md -o out  # One file per participant`,
	Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		internal.SetLogOutput(cmd.ErrOrStderr())

		v := config.New()
		if err := v.BindPFlag("stopwords_path", cmd.Flags().Lookup("stopwords")); err != nil {
			return err
		}
		loaded, err := config.Load(v, configFile)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("month-first") {
			loaded.DayFirst = !monthFirst
		}
		cfg = loaded

		if verbose {
			internal.SetVerbose(true)
		} else {
			level, err := internal.ParseLogLevel(cfg.LogLevel)
			if err != nil {
				return err
			}
			internal.SetLogLevel(level)
		}
		if cfg.ConfigFile != "" {
			internal.LogDebug("Loaded config from %s", cfg.ConfigFile)
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		internal.PrintError(fmt.Sprintf("Error: %v", err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default ./chatstat.yaml or ~/.config/chatstat/chatstat.yaml)")
	rootCmd.PersistentFlags().StringVar(&stopWordsPath, "stopwords", "", "Stop-word list, one word per line (default stopwords.txt)")
	rootCmd.PersistentFlags().BoolVar(&monthFirst, "month-first", false, "Read timestamps as month/day instead of day/month")

	// Set version template to ensure --version flag works
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}
