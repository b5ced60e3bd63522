package main

import (
	"os"

	"buyback-detector/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
