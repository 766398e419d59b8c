package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fanexid/addonlint/internal/schema"
)

func init() {
	rootCmd.AddCommand(schemaCmd)
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the manifest JSON Schema",
	Long: `Print the JSON Schema that manifests are validated against.

The output can be fed to editors or other tooling for manifest
completion and inline validation.`,
	Example: `  # Write the schema next to your manifests
  addonlint schema > manifest.schema.json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\n", schema.SchemaJSON())
		return err
	},
}
