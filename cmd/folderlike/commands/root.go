package commands

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/justyntemme/folderlike/internal/app"
	"github.com/justyntemme/folderlike/internal/config"
	"github.com/justyntemme/folderlike/internal/debug"
)

var (
	debugMode  bool
	configPath string
	cfgManager *config.Manager
)

// Execute runs the CLI. console is called before the window opens so the
// platform can hide its console in release runs.
func Execute(console func(debug bool)) error {
	root := &cobra.Command{
		Use:          "folderlike",
		Short:        "A shelf of books that opens into a detail card",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if debugMode {
				debug.EnableAll()
			}
			cfgManager = config.NewManager(configPath)
			if err := cfgManager.Load(); err != nil {
				return err
			}
			if err := cfgManager.ParseError(); err != nil {
				log.Printf("Config: using defaults, %s is invalid: %v", cfgManager.Path(), err)
			}
			if err := cfgManager.ApplyEnv(); err != nil {
				log.Printf("Config: %v", err)
			}
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			console(debugMode)
			app.Main(debugMode, cfgManager.Get())
		},
	}

	root.PersistentFlags().BoolVar(&debugMode, "debug", false, "enable verbose debug logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/folderlike/config.json)")

	root.AddCommand(catalogCmd(), browseCmd(), coverCmd(), configCmd())
	return root.Execute()
}
