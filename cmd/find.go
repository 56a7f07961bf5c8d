package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avren/desktop-agent/internal/model"
	"github.com/avren/desktop-agent/internal/output"
	"github.com/avren/desktop-agent/internal/reader"
)

var findCmd = &cobra.Command{
	Use:   "find <query>",
	Short: "Search the UI tree for elements matching a substring",
	Long:  "Read the UI tree and return elements whose name, role, value, or description contains the query (case-insensitive).",
	Args:  cobra.ExactArgs(1),
	RunE:  runFind,
}

func init() {
	rootCmd.AddCommand(findCmd)
	findCmd.Flags().String("window", "", "Target window (see read)")
	findCmd.Flags().Int("depth", 0, "Max depth to traverse (default 10)")
}

func runFind(cmd *cobra.Command, args []string) error {
	query := args[0]
	window, _ := cmd.Flags().GetString("window")
	depth, _ := cmd.Flags().GetInt("depth")

	_, r, err := newReader()
	if err != nil {
		return err
	}
	elements, err := r.ReadUI(context.Background(), reader.Options{
		WindowTitle: window,
		Depth:       depth,
	})
	if err != nil {
		return err
	}

	matches := model.FindElements(elements, query)
	if output.OutputFormat == output.FormatText {
		if len(matches) == 0 {
			fmt.Printf("no elements match %q\n", query)
			return nil
		}
		fmt.Print(model.FormatTree(matches))
		return nil
	}
	if matches == nil {
		matches = []model.Element{}
	}
	return output.Print(output.FindResult{Query: query, Matches: matches})
}
