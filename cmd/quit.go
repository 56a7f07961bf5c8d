package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avren/desktop-agent/internal/platform"
)

var quitCmd = &cobra.Command{
	Use:   "quit <app>",
	Short: "Quit an application gracefully",
	Args:  cobra.ExactArgs(1),
	RunE:  runQuit,
}

func init() {
	rootCmd.AddCommand(quitCmd)
}

func runQuit(cmd *cobra.Command, args []string) error {
	app := args[0]

	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}
	if err := provider.AppManager.Quit(app); err != nil {
		return err
	}
	fmt.Printf("quit %s\n", app)
	return nil
}
