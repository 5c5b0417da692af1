package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/gostl-dims/pkg/viewer"
	"github.com/spf13/cobra"
)

var outputPath string

var snapshotCmd = &cobra.Command{
	Use:   "snapshot [file]",
	Short: "Render the model with its dimensions to a PNG",
	Args:  cobra.ExactArgs(1),
	RunE:  runSnapshot,
}

func init() {
	snapshotCmd.Flags().StringVarP(&outputPath, "output", "o", "dimensions.png", "Output PNG file")
	rootCmd.AddCommand(snapshotCmd)
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	measurer, err := fontMeasurer(cfg)
	if err != nil {
		return err
	}

	s, err := newSession(args[0], cfg, measurer, true)
	if err != nil {
		return err
	}
	defer s.controller.Release()
	s.frame()

	img := viewer.NewSnapshot(cfg.Viewport.Width, cfg.Viewport.Height, measurer).
		Render(s.camera, s.model, s.root, s.layer)

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", outputPath, err)
	}
	if err := viewer.WritePNG(f, img); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputPath, err)
	}

	logger.Info("snapshot written", "path", outputPath, "width", cfg.Viewport.Width, "height", cfg.Viewport.Height)
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", outputPath)
	return nil
}
