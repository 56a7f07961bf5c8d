package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/avren/desktop-agent/internal/model"
	"github.com/avren/desktop-agent/internal/reader"
)

var waitCmd = &cobra.Command{
	Use:   "wait <query>",
	Short: "Wait for an element to appear or disappear",
	Long:  "Poll the UI tree until an element matching the query appears (or disappears with --gone), then exit. Exits non-zero on timeout.",
	Args:  cobra.ExactArgs(1),
	RunE:  runWait,
}

func init() {
	rootCmd.AddCommand(waitCmd)
	waitCmd.Flags().String("window", "", "Target window (see read)")
	waitCmd.Flags().Bool("gone", false, "Wait until the query no longer matches")
	waitCmd.Flags().Int("timeout", 30, "Max seconds to wait")
	waitCmd.Flags().Int("interval", 500, "Polling interval in milliseconds")
}

func runWait(cmd *cobra.Command, args []string) error {
	query := args[0]
	window, _ := cmd.Flags().GetString("window")
	gone, _ := cmd.Flags().GetBool("gone")
	timeoutSec, _ := cmd.Flags().GetInt("timeout")
	intervalMs, _ := cmd.Flags().GetInt("interval")

	_, r, err := newReader()
	if err != nil {
		return err
	}

	ctx := context.Background()
	deadline := time.Now().Add(time.Duration(timeoutSec) * time.Second)
	for {
		elements, err := r.ReadUI(ctx, reader.Options{WindowTitle: window})
		if err != nil {
			return err
		}
		matches := model.FindElements(elements, query)

		if gone && len(matches) == 0 {
			fmt.Printf("%q is gone\n", query)
			return nil
		}
		if !gone && len(matches) > 0 {
			fmt.Printf("%q appeared (%d matches)\n", query, len(matches))
			return nil
		}

		if time.Now().After(deadline) {
			state := "appear"
			if gone {
				state = "disappear"
			}
			return fmt.Errorf("timed out after %ds waiting for %q to %s", timeoutSec, query, state)
		}
		time.Sleep(time.Duration(intervalMs) * time.Millisecond)
	}
}
