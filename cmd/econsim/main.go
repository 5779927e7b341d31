// Command econsim runs the deterministic tick-driven economic simulation.
package main

import (
	"fmt"
	"os"

	"github.com/talgya/econsim/cmd/econsim/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
