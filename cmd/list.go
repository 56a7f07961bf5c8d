package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avren/desktop-agent/internal/output"
	"github.com/avren/desktop-agent/internal/platform"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List open windows",
	Long:  "List open windows with app name, PID, title, and focus state.",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}
	windows, err := provider.WindowManager.ListWindows()
	if err != nil {
		return err
	}

	if output.OutputFormat == output.FormatText {
		for _, w := range windows {
			marker := " "
			if w.Focused {
				marker = "*"
			}
			fmt.Printf("%s %s (pid %d) %q\n", marker, w.App, w.PID, w.Title)
		}
		return nil
	}
	return output.Print(windows)
}
