package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avren/desktop-agent/internal/platform"
)

var openCmd = &cobra.Command{
	Use:   "open [target]",
	Short: "Open an application, URL, or file",
	Long:  "Open an application (--app), a URL or file path (positional target), or a target with a specific application (both).",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runOpen,
}

func init() {
	rootCmd.AddCommand(openCmd)
	openCmd.Flags().String("app", "", "Application to open, or to open the target with")
}

func runOpen(cmd *cobra.Command, args []string) error {
	app, _ := cmd.Flags().GetString("app")
	var target string
	if len(args) > 0 {
		target = args[0]
	}
	if app == "" && target == "" {
		return fmt.Errorf("an --app or a target is required")
	}

	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}
	if err := provider.AppManager.Open(platform.OpenOptions{App: app, Target: target}); err != nil {
		return err
	}
	fmt.Println("opened")
	return nil
}
