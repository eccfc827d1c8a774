package commands

import (
	"github.com/spf13/cobra"

	"github.com/justyntemme/folderlike/internal/catalog"
	"github.com/justyntemme/folderlike/internal/tui"
)

func browseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse the shelf in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := cfgManager.Get()
			return tui.Run(catalog.Default(), cfg.Gesture.DismissThreshold, float32(cfg.Window.Height))
		},
	}
}
