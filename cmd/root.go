package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"wpmcp/config"
	"wpmcp/logger"
)

var (
	quietMode, debugMode  bool
	flagSettings          config.Settings
	version, commit, date string

	log = logger.Nop()
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "wpmcp",
	Short: "Register a WordPress LLM Connector site as an MCP server",
	Long: `wpmcp writes the "wordpress" entry of an MCP client configuration file
(~/.claude/mcp_config.json by default) so the client can reach a site running
the WP LLM Connector plugin.

The API key is the one generated in WordPress under Settings > LLM Connector,
not an Anthropic API key.

Settings come from flags, then environment variables (WORDPRESS_URL,
WP_LLM_API_KEY, MCP_CONFIG_PATH), then a .env file in the current directory.
Set WPMCP_LOG_FORMAT=json for machine-readable logs on stderr.`,
	Example: `  wpmcp setup --url https://example.com --key wpllm_xxx
  WORDPRESS_URL=https://example.com WP_LLM_API_KEY=wpllm_xxx wpmcp setup
  wpmcp show --url https://example.com --key wpllm_xxx   # print without writing
  wpmcp tools --functions                                # tool table as LLM functions`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initLogger)
	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&quietMode, "quiet", "q", false, "Only log warnings and errors")
	pf.BoolVar(&debugMode, "debug", false, "Enable debug logging")
	pf.StringVar(&flagSettings.URL, "url", "", "WordPress site URL (env WORDPRESS_URL)")
	pf.StringVar(&flagSettings.APIKey, "key", "", "LLM Connector API key (env WP_LLM_API_KEY)")
	pf.StringVar(&flagSettings.Out, "out", "", "MCP config file to update (env MCP_CONFIG_PATH, default ~/.claude/mcp_config.json)")

	rootCmd.CompletionOptions.HiddenDefaultCmd = true
}

func initLogger() {
	level := logger.Level(quietMode, debugMode)
	if os.Getenv("WPMCP_LOG_FORMAT") == "json" {
		log = logger.NewJSON(os.Stderr, level)
		return
	}
	log = logger.New(os.Stderr, level)
}

// Execute runs the root command
func Execute() error {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("wpmcp %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("wpmcp %s\n", version)
}
