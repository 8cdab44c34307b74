package main

import (
	"os"

	"github.com/tugapse/gitdiff/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
