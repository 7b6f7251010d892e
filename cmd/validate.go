package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/dumptruck-sim/dumptruck-sim/sim"
)

// validateCmd checks distribution files and prints their cumulative tables
var validateCmd = &cobra.Command{
	Use:   "validate <distribution-file>...",
	Short: "Validate distribution files and print their cumulative tables",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		failed := false
		for _, path := range args {
			if err := validateDistributionFile(path, os.Stdout); err != nil {
				logrus.Errorf("%s: %v", path, err)
				failed = true
			}
		}
		if failed {
			os.Exit(1)
		}
	},
}

// validateDistributionFile parses and builds the distribution in path and
// writes its cumulative table to out.
func validateDistributionFile(path string, out io.Writer) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading distribution: %w", err)
	}
	cdf, err := sim.ParseCumulative(string(data))
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s: %d entries\n", path, len(cdf))
	fmt.Fprintf(out, "%10s %12s %12s\n", "value", "probability", "cumulative")
	for i, b := range cdf.Table() {
		fmt.Fprintf(out, "%10g %12.4f %12.4f\n", b.Value, b.Probability, cdf[i].Cumulative)
	}
	return nil
}
