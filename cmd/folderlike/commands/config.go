package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/justyntemme/folderlike/internal/config"
)

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the config file",
		// Skip the root hook, which would create the file before generate
		// gets to back it up.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "generate",
		Short: "Back up the config file and write the defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := configPath
			if path == "" {
				path = config.ConfigPath()
			}
			backup, err := config.GenerateConfig(path)
			if err != nil {
				return err
			}
			if backup != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "backed up %s to %s\n", path, backup)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote defaults to %s\n", path)
			return nil
		},
	})
	return cmd
}
