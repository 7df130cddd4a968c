package cmd

import (
	"encoding/json"

	"github.com/colorful-cli/colorful/schema"
	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.Flags().BoolP("scheme", "s", false, "Print the schema of scheme responses")
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema responses are checked against",
	Run: func(cmd *cobra.Command, args []string) {
		var s *jsonschema.Schema
		if lo.Must(cmd.Flags().GetBool("scheme")) {
			s = schema.JSONSchema(&schema.Scheme{})
		} else {
			s = schema.JSONSchema(&schema.Color{})
		}

		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		handleErr(encoder.Encode(s))
	},
}
