package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"wpmcp/tools"
)

var asFunctions bool

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the tools advertised for the WordPress server",
	Long: `Lists the tools included in the "wordpress" server entry.

With --functions, prints them as LLM function-calling definitions (JSON) for
clients that take tool schemas directly.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runToolsWithIO(cmd.OutOrStdout(), asFunctions)
	},
}

func init() {
	toolsCmd.Flags().BoolVar(&asFunctions, "functions", false, "Print as LLM function definitions")
	rootCmd.AddCommand(toolsCmd)
}

func runToolsWithIO(output io.Writer, functions bool) error {
	if !functions {
		printTools(output)
		return nil
	}

	enc := json.NewEncoder(output)
	enc.SetIndent("", "  ")
	if err := enc.Encode(tools.Functions(tools.Definitions())); err != nil {
		return fmt.Errorf("failed to encode tools: %w", err)
	}
	return nil
}
