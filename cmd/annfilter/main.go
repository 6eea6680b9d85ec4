package main

import (
	"os"

	"github.com/hupe1980/annfilter/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
