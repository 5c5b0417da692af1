package main

import (
	"fmt"

	"github.com/philipparndt/gostl-dims/internal/dimension"
	"github.com/philipparndt/gostl-dims/pkg/analysis"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Print the dimensions of an STL file",
	Long: `Lay out the dimensions of an STL file for a single frame without opening a
window and print each annotation's size, label text and label placement.`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	filename := args[0]

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	measurer, err := fontMeasurer(cfg)
	if err != nil {
		return err
	}

	s, err := newSession(filename, cfg, measurer, true)
	if err != nil {
		return err
	}
	defer s.controller.Release()
	s.frame()

	stats := analysis.AnalyzeModel(s.model)
	bounds := s.controller.Bounds()
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "STL Dimensions")
	fmt.Fprintln(out, "==============")
	if s.model.Name != "" {
		fmt.Fprintf(out, "Name: %s\n", s.model.Name)
	}
	fmt.Fprintf(out, "File: %s\n\n", filename)

	fmt.Fprintln(out, "Model Statistics:")
	fmt.Fprintf(out, "  Triangles: %d\n", stats.TriangleCount)
	fmt.Fprintf(out, "  Surface Area: %.6f square units\n", stats.SurfaceArea)
	fmt.Fprintf(out, "  Edge Lengths: %.6f min, %.6f max, %.6f avg\n\n",
		stats.MinEdgeLength, stats.MaxEdgeLength, stats.AvgEdgeLength)

	fmt.Fprintln(out, "Bounding Box (centered):")
	fmt.Fprintf(out, "  Min: %s\n", analysis.FormatVector(bounds.Min))
	fmt.Fprintf(out, "  Max: %s\n", analysis.FormatVector(bounds.Max))
	fmt.Fprintf(out, "  Diagonal: %.6f units\n", bounds.Diagonal())
	fmt.Fprintf(out, "  Volume: %.6f cubic units\n\n", stats.BoxVolume)

	fmt.Fprintf(out, "Viewport: %dx%d, camera distance %.3f\n\n",
		cfg.Viewport.Width, cfg.Viewport.Height, s.camera.DistanceToTarget())

	fmt.Fprintf(out, "%-8s %12s %14s %10s %10s %10s %10s\n", "Axis", "Size", "Label", "Left", "Top", "Width", "Height")
	for _, a := range s.controller.Annotations() {
		left, top, width, height := labelPlacement(a)
		fmt.Fprintf(out, "%-8s %12.4f %14s %10.1f %10.1f %10.1f %10.1f\n",
			a.Axis(), a.Size(), a.Text(), left, top, width, height)
	}
	return nil
}

// labelPlacement returns the label box in pixels. In-scene labels report
// their projected point with an empty box.
func labelPlacement(a *dimension.Annotation) (left, top, width, height float64) {
	switch l := a.Label().(type) {
	case *dimension.OverlayLabel:
		box := l.Box()
		return box.X, box.Y, box.Width, box.Height
	default:
		p := a.Screen()
		return p.X, p.Y, 0, 0
	}
}
