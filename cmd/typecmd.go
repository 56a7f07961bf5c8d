package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avren/desktop-agent/internal/platform"
)

var typeCmd = &cobra.Command{
	Use:   "type <text>",
	Short: "Type text into the focused element",
	Long:  "Type text into the currently focused element, optionally clicking the first element matching --query first to focus it.",
	Args:  cobra.ExactArgs(1),
	RunE:  runType,
}

func init() {
	rootCmd.AddCommand(typeCmd)
	typeCmd.Flags().String("query", "", "Click the first element matching this substring before typing")
	typeCmd.Flags().String("window", "", "Target window (used with --query)")
}

func runType(cmd *cobra.Command, args []string) error {
	text := args[0]
	query, _ := cmd.Flags().GetString("query")
	window, _ := cmd.Flags().GetString("window")

	provider, r, err := newReader()
	if err != nil {
		return err
	}

	if query != "" {
		x, y, err := resolveQueryCenter(context.Background(), r, window, query, 0)
		if err != nil {
			return err
		}
		if err := provider.Inputter.Click(x, y, platform.MouseLeft, 1); err != nil {
			return err
		}
	}

	if err := provider.Inputter.TypeText(text); err != nil {
		return err
	}
	fmt.Printf("typed %d characters\n", len(text))
	return nil
}
