package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/avren/desktop-agent/internal/platform"
)

var keyCmd = &cobra.Command{
	Use:   "key <combo>",
	Short: "Press a key or key combination",
	Long:  "Press a key or key combination, e.g. 'enter', 'cmd+s', 'ctrl+shift+t'. Tokens are joined by '+'.",
	Args:  cobra.ExactArgs(1),
	RunE:  runKey,
}

func init() {
	rootCmd.AddCommand(keyCmd)
}

func runKey(cmd *cobra.Command, args []string) error {
	combo := args[0]
	keys := strings.Split(combo, "+")
	for i := range keys {
		keys[i] = strings.TrimSpace(keys[i])
	}

	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}
	if err := provider.Inputter.KeyCombo(keys); err != nil {
		return err
	}
	fmt.Printf("pressed %s\n", combo)
	return nil
}
