package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/iksnae/chatstat/internal"
	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"
)

var schemaTarget string

// schemaCmd represents the schema command
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of exported reports",
	Long: `Print the JSON schema describing 'analyze --format json' output
(--target report, the default) or a single record as stored in exports
(--target record).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var v any
		switch schemaTarget {
		case "report":
			v = &internal.Report{}
		case "record":
			v = &internal.Record{}
		default:
			return fmt.Errorf("unknown schema target %q (supported: report, record)", schemaTarget)
		}

		reflector := jsonschema.Reflector{
			AllowAdditionalProperties: false,
			DoNotReference:            true,
		}
		schema := reflector.Reflect(v)

		out, err := json.MarshalIndent(schema, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode schema: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.Flags().StringVarP(&schemaTarget, "target", "t", "report", "Schema to print (report, record)")
}
