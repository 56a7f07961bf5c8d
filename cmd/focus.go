package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avren/desktop-agent/internal/platform"
)

var focusCmd = &cobra.Command{
	Use:   "focus",
	Short: "Bring a window or application to the foreground",
	RunE:  runFocus,
}

func init() {
	rootCmd.AddCommand(focusCmd)
	focusCmd.Flags().String("app", "", "Application/process name substring")
	focusCmd.Flags().String("window", "", "Window title substring")
}

func runFocus(cmd *cobra.Command, args []string) error {
	app, _ := cmd.Flags().GetString("app")
	window, _ := cmd.Flags().GetString("window")
	if app == "" && window == "" {
		return fmt.Errorf("--app or --window is required")
	}

	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}
	if err := provider.WindowManager.FocusWindow(platform.FocusOptions{App: app, Window: window}); err != nil {
		return err
	}
	fmt.Println("focused")
	return nil
}
