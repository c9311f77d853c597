package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"wpmcp/config"
	"wpmcp/logger"
	"wpmcp/mcp"
	"wpmcp/tools"
)

var noPrint bool

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Merge the WordPress server entry into the MCP config file",
	Long: `Builds the "wordpress" MCP server entry from the site URL and API key and
writes it into the MCP config file. Other servers and settings in the file are
kept. An existing "wordpress" entry is replaced.

Fails without touching the file when the URL or key is still a placeholder,
or when the existing file is not valid JSON.`,
	Args: cobra.NoArgs,
	RunE: runSetup,
}

func init() {
	setupCmd.Flags().BoolVar(&noPrint, "no-print", false, "Do not print the generated configuration")
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, args []string) error {
	settings, err := config.Load(flagSettings)
	if err != nil {
		return err
	}
	return runSetupWithIO(cmd.OutOrStdout(), log, settings, !noPrint)
}

func runSetupWithIO(output io.Writer, log *logger.Logger, settings *config.Settings, printConfig bool) error {
	fmt.Fprintln(output, "WP LLM Connector - MCP Integration Setup")
	fmt.Fprintln(output)
	fmt.Fprintf(output, "WordPress URL: %s\n", settings.URL)
	fmt.Fprintf(output, "API Key: %s\n", settings.MaskedKey())
	fmt.Fprintln(output)

	fragment := mcp.BuildFragment(settings.URL, settings.APIKey)
	log.Debug().Str("url", fragment.URL).Str("path", settings.Out).Msg("merging server entry")

	res, err := mcp.MergeAndPersist(settings.Out, mcp.ServerName, fragment)
	if err != nil {
		return err
	}

	switch {
	case res.Created:
		log.Info().Str("path", res.Path).Msg("created MCP config file")
	case res.Replaced && res.Changed:
		log.Warn().Str("path", res.Path).Str("server", mcp.ServerName).Msg("replaced existing server entry")
	case res.Replaced:
		log.Info().Str("path", res.Path).Msg("server entry already up to date")
	}

	fmt.Fprintf(output, "MCP configuration saved to: %s\n", res.Path)

	if printConfig {
		data, err := mcp.Standalone(mcp.ServerName, fragment)
		if err != nil {
			return err
		}
		fmt.Fprintln(output)
		fmt.Fprintln(output, "Generated MCP Configuration:")
		fmt.Fprintln(output, "--------------------------------------------------")
		output.Write(data)
	}

	fmt.Fprintln(output)
	fmt.Fprintln(output, "Setup complete!")
	fmt.Fprintln(output)
	fmt.Fprintln(output, "Next steps:")
	fmt.Fprintln(output, "  1. Restart your MCP client to load the new configuration")
	fmt.Fprintln(output, "  2. Try: 'Run a WordPress security audit on my site'")
	fmt.Fprintln(output, "  3. Or:  'Check the system status of my WordPress site'")
	fmt.Fprintln(output)
	printTools(output)
	return nil
}

func printTools(output io.Writer) {
	fmt.Fprintln(output, "Available tools:")
	for _, t := range tools.Definitions() {
		fmt.Fprintf(output, "  - %s: %s\n", t.Name, t.Description)
	}
}
