// Command vdbbench inspects the benchmark case catalog and stages the
// datasets cases run against.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:          "vdbbench",
	Short:        "Case catalog and dataset tooling for vector database benchmarks",
	SilenceUsage: true, // operational errors already explain themselves
	Long: `vdbbench resolves benchmark case identifiers into fully parameterized
case descriptors and stages the dataset slices they run against.`,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
