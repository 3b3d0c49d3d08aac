package main

import (
	"os"

	"github.com/reoring/roman/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
