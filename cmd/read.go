package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/avren/desktop-agent/internal/model"
	"github.com/avren/desktop-agent/internal/output"
	"github.com/avren/desktop-agent/internal/reader"
)

var readCmd = &cobra.Command{
	Use:   "read",
	Short: "Read the UI element tree of a window",
	Long:  "Read the UI element tree from the OS accessibility layer. With --format text the tree is printed indented; yaml/json include refs and bounds.",
	RunE:  runRead,
}

func init() {
	rootCmd.AddCommand(readCmd)
	readCmd.Flags().String("window", "", "Target window: app name match first, then title substring (empty = frontmost)")
	readCmd.Flags().Int("depth", 0, "Max depth to traverse (default 10)")
	readCmd.Flags().String("filter", "all", "Element filter: all, interactive")
}

func runRead(cmd *cobra.Command, args []string) error {
	window, _ := cmd.Flags().GetString("window")
	depth, _ := cmd.Flags().GetInt("depth")
	filterStr, _ := cmd.Flags().GetString("filter")

	filter, ok := model.ParseFilter(filterStr)
	if !ok {
		return fmt.Errorf("unsupported filter: %q (use all or interactive)", filterStr)
	}

	_, r, err := newReader()
	if err != nil {
		return err
	}
	elements, err := r.ReadUI(context.Background(), reader.Options{
		WindowTitle: window,
		Depth:       depth,
		Filter:      filter,
	})
	if err != nil {
		return err
	}

	if output.OutputFormat == output.FormatText {
		fmt.Print(model.FormatTree(elements))
		return nil
	}
	return output.Print(output.ReadResult{
		Window:   window,
		TS:       time.Now().Unix(),
		Elements: elements,
	})
}
