package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"wpmcp/config"
	"wpmcp/mcp"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the generated MCP configuration without writing it",
	Args:  cobra.NoArgs,
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	settings, err := config.Load(flagSettings)
	if err != nil {
		return err
	}
	return runShowWithIO(cmd.OutOrStdout(), settings)
}

func runShowWithIO(output io.Writer, settings *config.Settings) error {
	data, err := mcp.Standalone(mcp.ServerName, mcp.BuildFragment(settings.URL, settings.APIKey))
	if err != nil {
		return err
	}
	_, err = output.Write(data)
	return err
}
