package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avren/desktop-agent/internal/platform"
)

var clickCmd = &cobra.Command{
	Use:   "click",
	Short: "Click at coordinates or on the first element matching a query",
	Long:  "Click at absolute screen coordinates (--x/--y) or resolve --query against a fresh read of the UI tree and click the match's center.",
	RunE:  runClick,
}

func init() {
	rootCmd.AddCommand(clickCmd)
	clickCmd.Flags().Int("x", -1, "Absolute X screen coordinate")
	clickCmd.Flags().Int("y", -1, "Absolute Y screen coordinate")
	clickCmd.Flags().String("query", "", "Click the first element matching this substring")
	clickCmd.Flags().String("window", "", "Target window (used with --query)")
	clickCmd.Flags().String("button", "left", "Mouse button: left, right, middle")
	clickCmd.Flags().Bool("double", false, "Double-click")
}

func runClick(cmd *cobra.Command, args []string) error {
	x, _ := cmd.Flags().GetInt("x")
	y, _ := cmd.Flags().GetInt("y")
	query, _ := cmd.Flags().GetString("query")
	window, _ := cmd.Flags().GetString("window")
	buttonStr, _ := cmd.Flags().GetString("button")
	double, _ := cmd.Flags().GetBool("double")

	button, err := platform.ParseMouseButton(buttonStr)
	if err != nil {
		return err
	}

	provider, r, err := newReader()
	if err != nil {
		return err
	}

	if query != "" {
		x, y, err = resolveQueryCenter(context.Background(), r, window, query, 0)
		if err != nil {
			return err
		}
	} else if x < 0 || y < 0 {
		return fmt.Errorf("either --query or both --x and --y are required")
	}

	count := 1
	if double {
		count = 2
	}
	if err := provider.Inputter.Click(x, y, button, count); err != nil {
		return err
	}
	fmt.Printf("clicked at (%d, %d)\n", x, y)
	return nil
}
