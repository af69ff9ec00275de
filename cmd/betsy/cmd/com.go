package cmd

import (
	"fmt"
	"os"

	"github.com/LennysLounge/Betsy/internal/compiler"
	"github.com/LennysLounge/Betsy/internal/parser"
	"github.com/spf13/cobra"
)

var outputFile string

var comCmd = &cobra.Command{
	Use:   "com <filename>",
	Short: "Compile a Betsy program to out.c",
	Args:  cobra.ExactArgs(1),
	RunE:  runCom,
}

func init() {
	rootCmd.AddCommand(comCmd)
	comCmd.Flags().StringVarP(&outputFile, "output", "o", "out.c", "output C file")
}

func runCom(_ *cobra.Command, args []string) error {
	filename := args[0]
	source, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	prog, perr := parser.Parse(filename, source)
	if perr != nil {
		fail(perr)
	}

	out, cerr := compiler.New().Compile(prog)
	if cerr != nil {
		fail(cerr)
	}

	if err := os.WriteFile(outputFile, []byte(out), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputFile, err)
	}
	return nil
}
