package cmd

import (
	"fmt"
	"os"

	"github.com/LennysLounge/Betsy/internal/errors"
	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags).
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "betsy",
	Short: "Betsy simulator and compiler",
	Long: `betsy is the toolchain for Betsy, a small stack-oriented,
statically-typed, prefix-notation language.

It shares one lexer, classifier and type-checking parser across two
backends: a tree-walking simulator (sim) and a source-to-source C
compiler (com).`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	// The diagnostic format is fixed; suppress cobra's own error/usage
	// printing so nothing else reaches stderr.
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

// fail prints a diagnostic in the mandated wire format and exits with
// status 1, the uniform non-zero exit code for any diagnostic.
func fail(err *errors.Error) {
	fmt.Fprintln(os.Stderr, err.Format())
	os.Exit(1)
}
