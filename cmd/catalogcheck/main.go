// catalogcheck - Structural and referential validation for the resource catalog
// Author: Ariel Frischer
// Source: https://github.com/ariel-frischer/catalogcheck

package main

import (
	"os"

	"github.com/ariel-frischer/catalogcheck/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
