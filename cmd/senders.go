package cmd

import (
	"fmt"

	"github.com/iksnae/chatstat/internal"
	"github.com/spf13/cobra"
)

var sendersCounts bool

// sendersCmd represents the senders command
var sendersCmd = &cobra.Command{
	Use:   "senders <transcript>",
	Short: "List the participants of a chat transcript",
	Long: `List the sender filters available for a transcript: "Overall" first,
then every participant in alphabetical order. System messages are not listed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		set, err := loadTranscript(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		senders := internal.Senders(set.Records)
		if !sendersCounts {
			for _, s := range senders {
				fmt.Fprintln(out, s)
			}
			return nil
		}

		for _, s := range senders {
			fmt.Fprintf(out, "%s\t%d\n", s, len(internal.FilterBySender(set.Records, s)))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sendersCmd)
	sendersCmd.Flags().BoolVarP(&sendersCounts, "counts", "c", false, "Show message counts")
}
