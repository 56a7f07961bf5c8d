package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avren/desktop-agent/internal/platform"
)

var clipboardCmd = &cobra.Command{
	Use:   "clipboard [text]",
	Short: "Read or write the system clipboard",
	Long:  "With no argument, prints the clipboard text. With an argument, replaces the clipboard text.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runClipboard,
}

func init() {
	rootCmd.AddCommand(clipboardCmd)
}

func runClipboard(cmd *cobra.Command, args []string) error {
	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		text, err := provider.Clipboard.ReadText()
		if err != nil {
			return err
		}
		fmt.Print(text)
		return nil
	}

	if err := provider.Clipboard.WriteText(args[0]); err != nil {
		return err
	}
	fmt.Printf("wrote %d characters to clipboard\n", len(args[0]))
	return nil
}
