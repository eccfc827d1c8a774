package main

import (
	"os"

	"github.com/justyntemme/folderlike/cmd/folderlike/commands"
)

func main() {
	if err := commands.Execute(manageConsole); err != nil {
		os.Exit(1)
	}
}
