package main

import (
	"os"

	"toolboxmenu/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
