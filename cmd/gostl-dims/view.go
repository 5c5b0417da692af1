package main

import (
	"github.com/philipparndt/gostl-dims/internal/app"
	"github.com/spf13/cobra"
)

var viewCmd = &cobra.Command{
	Use:   "view [file]",
	Short: "Open the interactive viewer",
	Long: `Open an STL file in the raylib viewer with width, height and depth
dimensions. Press D to toggle the dimensions and H for help.`,
	Args: cobra.ExactArgs(1),
	RunE: runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	return app.Run(cmd.Context(), app.Options{
		Path:   args[0],
		Config: cfg,
		Logger: logger,
	})
}
