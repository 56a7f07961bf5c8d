package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/avren/desktop-agent/internal/platform"
)

var screenshotCmd = &cobra.Command{
	Use:   "screenshot",
	Short: "Capture a screenshot",
	Long:  "Capture a screenshot of the screen, optionally focusing a window first. The image is scaled down by default to keep payloads small.",
	RunE:  runScreenshot,
}

func init() {
	rootCmd.AddCommand(screenshotCmd)
	screenshotCmd.Flags().String("window", "", "Focus this window before capturing")
	screenshotCmd.Flags().StringP("output", "o", "", "Write image to this path (default: screenshot.<format> in the working directory)")
	screenshotCmd.Flags().String("image-format", "png", "Image format: png, jpg")
	screenshotCmd.Flags().Int("quality", 80, "JPEG quality 1-100")
	screenshotCmd.Flags().Float64("scale", 0.5, "Scale factor 0.1-1.0")
}

func runScreenshot(cmd *cobra.Command, args []string) error {
	window, _ := cmd.Flags().GetString("window")
	outPath, _ := cmd.Flags().GetString("output")
	format, _ := cmd.Flags().GetString("image-format")
	quality, _ := cmd.Flags().GetInt("quality")
	scale, _ := cmd.Flags().GetFloat64("scale")

	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}
	data, err := provider.Screenshotter.Capture(platform.ScreenshotOptions{
		Window:  window,
		Format:  format,
		Quality: quality,
		Scale:   scale,
	})
	if err != nil {
		return err
	}

	if outPath == "" {
		ext := format
		if ext == "jpeg" {
			ext = "jpg"
		}
		outPath = "screenshot." + ext
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fmt.Errorf("write screenshot: %w", err)
	}
	fmt.Printf("wrote %d bytes to %s\n", len(data), outPath)
	return nil
}
