package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/dumptruck-sim/dumptruck-sim/sim"
	"github.com/dumptruck-sim/dumptruck-sim/sim/scenario"
)

var (
	// CLI flags for the run command
	configPath   string  // Path to a YAML scenario file
	seed         int64   // Seed for the random source
	horizon      float64 // Simulation time limit
	logLevel     string  // Log verbosity level
	trucks       int     // Number of trucks
	loaders      int     // Number of loaders
	scales       int     // Number of scales
	rngKind      string  // Random source implementation
	initialState string  // auto, general or textbook
	loadingDist  string  // Path to loading-time distribution text file
	weighingDist string  // Path to weighing-time distribution text file
	travelDist   string  // Path to travel-time distribution text file
	quiet        bool    // Suppress the event log, print statistics only
	checkInvs    bool    // Verify resource invariants after every event
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "dumptruck-sim",
	Short: "Discrete-event simulator for a dump-truck loading/weighing network",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
}

// runCmd executes the simulation using the scenario file and CLI overrides
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the dump-truck simulation",
	Run: func(cmd *cobra.Command, args []string) {
		sc, err := buildScenario(cmd)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		logrus.Infof("Starting simulation %q: trucks=%d, loaders=%d, scales=%d, horizon=%.2f, seed=%d, rng=%s",
			sc.Name, sc.Trucks, sc.Loaders, sc.Scales, sc.Horizon, sc.Seed, sc.RNG)

		if _, err := runScenario(sc, os.Stdout, quiet, checkInvs); err != nil {
			logrus.Fatalf("%v", err)
		}
		logrus.Info("Simulation complete.")
	},
}

// buildScenario starts from the scenario file (or the built-in textbook
// scenario) and applies only the flags the user explicitly set.
func buildScenario(cmd *cobra.Command) (*scenario.Scenario, error) {
	sc := scenario.Default()
	if configPath != "" {
		loaded, err := scenario.LoadScenario(configPath)
		if err != nil {
			return nil, err
		}
		sc = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		sc.Seed = seed
	}
	if flags.Changed("horizon") {
		sc.Horizon = horizon
	}
	if flags.Changed("trucks") {
		sc.Trucks = trucks
	}
	if flags.Changed("loaders") {
		sc.Loaders = loaders
	}
	if flags.Changed("scales") {
		sc.Scales = scales
	}
	if flags.Changed("rng") {
		sc.RNG = rngKind
	}
	if flags.Changed("initial-state") {
		sc.InitialState = initialState
	}

	for _, f := range []struct {
		path string
		dst  *string
		name string
	}{
		{loadingDist, &sc.Distributions.Loading, "loading"},
		{weighingDist, &sc.Distributions.Weighing, "weighing"},
		{travelDist, &sc.Distributions.Travel, "travel"},
	} {
		if f.path == "" {
			continue
		}
		data, err := os.ReadFile(f.path)
		if err != nil {
			return nil, fmt.Errorf("reading %s distribution: %w", f.name, err)
		}
		*f.dst = string(data)
	}
	return sc, nil
}

// runScenario builds a fresh Simulator for sc, runs it, and writes the
// event log (unless quiet) and the final statistics to out.
func runScenario(sc *scenario.Scenario, out io.Writer, quiet, checkInvariants bool) (sim.Result, error) {
	cfg, err := sc.ToSimConfig()
	if err != nil {
		return sim.Result{}, err
	}
	cfg.CheckInvariants = checkInvariants

	rng, err := sim.NewRandomSource(sim.RNGKind(sc.RNG), sc.Seed)
	if err != nil {
		return sim.Result{}, err
	}
	s, err := sim.NewSimulator(cfg, rng)
	if err != nil {
		return sim.Result{}, err
	}
	res, err := s.Run()
	if err != nil {
		return sim.Result{}, err
	}

	if !quiet {
		fmt.Fprintln(out, "=== Event Log ===")
		if _, err := s.Log.WriteTo(out); err != nil {
			return sim.Result{}, fmt.Errorf("writing event log: %w", err)
		}
	}
	res.Print(out)
	return res, nil
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")

	runCmd.Flags().StringVar(&configPath, "config", "", "Path to a YAML scenario file (default: built-in textbook scenario)")
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for the random source")
	runCmd.Flags().Float64Var(&horizon, "horizon", 76, "Simulation time limit")
	runCmd.Flags().IntVar(&trucks, "trucks", scenario.TextbookTrucks, "Number of trucks")
	runCmd.Flags().IntVar(&loaders, "loaders", scenario.TextbookLoaders, "Number of loaders")
	runCmd.Flags().IntVar(&scales, "scales", scenario.TextbookScales, "Number of scales")
	runCmd.Flags().StringVar(&rngKind, "rng", string(sim.RNGMath), "Random source (math, mrg32k3a)")
	runCmd.Flags().StringVar(&initialState, "initial-state", string(sim.InitialStateAuto), "Initial truck placement (auto, general, textbook)")
	runCmd.Flags().StringVar(&loadingDist, "loading-dist", "", "Path to loading-time distribution (\"<value>, <probability>\" per line)")
	runCmd.Flags().StringVar(&weighingDist, "weighing-dist", "", "Path to weighing-time distribution")
	runCmd.Flags().StringVar(&travelDist, "travel-dist", "", "Path to travel-time distribution")
	runCmd.Flags().BoolVar(&quiet, "quiet", false, "Print statistics only, without the event log")
	runCmd.Flags().BoolVar(&checkInvs, "check-invariants", false, "Verify resource invariants after every event")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(validateCmd)
}
