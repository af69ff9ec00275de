// Command betsy is the CLI front-end for Betsy's two backends: the
// tree-walking simulator and the source-to-source C compiler.
package main

import (
	"fmt"
	"os"

	"github.com/LennysLounge/Betsy/cmd/betsy/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
