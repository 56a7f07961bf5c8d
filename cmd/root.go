package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/avren/desktop-agent/internal/output"
	"github.com/avren/desktop-agent/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "desktop-agent",
	Short: "Read and interact with desktop UI elements",
	Long:  "A tool that lets agents read and interact with desktop UI elements via accessibility APIs, as a CLI or an MCP server.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("format", "yaml", "Output format: yaml, json, text")
	rootCmd.PersistentFlags().Bool("pretty", false, "Pretty-print JSON output")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// Use the root persistent flag directly to avoid conflicts with
		// subcommand local flags (e.g. screenshot --format png/jpg).
		format, _ := rootCmd.PersistentFlags().GetString("format")
		switch format {
		case "yaml":
			output.OutputFormat = output.FormatYAML
		case "json":
			output.OutputFormat = output.FormatJSON
		case "text":
			output.OutputFormat = output.FormatText
		default:
			return fmt.Errorf("unsupported format: %s (use yaml, json, or text)", format)
		}
		pretty, _ := rootCmd.PersistentFlags().GetBool("pretty")
		output.PrettyOutput = pretty
		return nil
	}
}
