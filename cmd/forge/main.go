package main

import (
	"os"

	"github.com/isaacphi/forge/internal/ui/cli"
)

func main() {
	os.Exit(cli.Execute())
}
