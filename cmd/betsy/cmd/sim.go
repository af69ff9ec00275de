package cmd

import (
	"fmt"
	"os"

	"github.com/LennysLounge/Betsy/internal/parser"
	"github.com/LennysLounge/Betsy/internal/sim"
	"github.com/spf13/cobra"
)

var simCmd = &cobra.Command{
	Use:   "sim <filename>",
	Short: "Simulate a Betsy program",
	Args:  cobra.ExactArgs(1),
	RunE:  runSim,
}

func init() {
	rootCmd.AddCommand(simCmd)
}

func runSim(_ *cobra.Command, args []string) error {
	filename := args[0]
	source, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	prog, perr := parser.Parse(filename, source)
	if perr != nil {
		fail(perr)
	}

	if serr := sim.New(os.Stdout).Run(prog); serr != nil {
		fail(serr)
	}
	return nil
}
