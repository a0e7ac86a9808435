package main

import (
	"os"

	"repolens/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
