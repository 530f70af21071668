package cmd

import (
	"math"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/stoch-sim/stoch-sim/stoch"
	"github.com/stoch-sim/stoch-sim/stoch/decay"
)

var (
	decaySeed      uint64 // Seed for the simulation's random source
	decayEvents    int    // Number of events to simulate
	decayAlgorithm string // Selection algorithm (reference, direct, next-reaction)
	decayScenario  string // Optional YAML scenario file
)

var decayCmd = &cobra.Command{
	Use:   "decay",
	Short: "Run the analytic first-order decay benchmark",
	Long: "Simulate a system of independent first-order decay processes and compare " +
		"final populations against the analytic expectation. The default scenario is " +
		"the 1003-process benchmark (1000 slow + 3 fast processes).",
	Run: func(cmd *cobra.Command, args []string) {
		scenario := DefaultScenario()
		if decayScenario != "" {
			loaded, err := LoadScenario(decayScenario)
			if err != nil {
				logrus.Fatalf("Failed to load scenario: %v", err)
			}
			scenario = loaded
		}

		pops, rates := scenario.Build()
		system := decay.NewSystem(pops, rates)
		random := stoch.NewRandom(decaySeed)

		algorithm := newAlgorithm(decayAlgorithm, random, system)

		logrus.Infof("Starting decay benchmark: %d processes, %d events, algorithm=%s, seed=%d",
			system.CountProcesses(), decayEvents, decayAlgorithm, decaySeed)

		started := time.Now()
		progress := decayEvents / 10

		for step := 0; step < decayEvents; step++ {
			algorithm.Advance()

			if progress > 0 && (step+1)%progress == 0 {
				logrus.Debugf("Completed %d / %d events at simulated time %g",
					step+1, decayEvents, float64(system.LastEventTime()))
			}
		}
		elapsed := time.Since(started)

		endTime := system.LastEventTime()
		worstError := 0.0

		for _, proc := range system.Procs() {
			expected := proc.ExpectedPopulation(endTime)
			if expected == 0 {
				continue
			}
			err := math.Abs(float64(proc.Population())/float64(expected) - 1.0)
			worstError = math.Max(worstError, err)
		}

		logrus.Infof("Simulated %d events in %s", decayEvents, elapsed)
		logrus.Infof("End time: %g", float64(endTime))
		logrus.Infof("Worst population error vs analytic expectation: %.4f", worstError)
	},
}

// newAlgorithm builds the selection algorithm named on the command line.
func newAlgorithm(name string, random *stoch.Random, system stoch.System) stoch.Algorithm {
	switch name {
	case "reference":
		return stoch.NewReferenceAlgo(random, system)
	case "direct":
		return stoch.NewDirectAlgo(random, system)
	case "next-reaction":
		return stoch.NewNextReactionAlgo(random, system)
	default:
		logrus.Fatalf("Unknown algorithm: %s (want reference, direct, or next-reaction)", name)
		return nil
	}
}

func init() {
	decayCmd.Flags().Uint64Var(&decaySeed, "seed", 20210501, "Random seed")
	decayCmd.Flags().IntVar(&decayEvents, "events", 500000, "Number of events to simulate")
	decayCmd.Flags().StringVar(&decayAlgorithm, "algorithm", "next-reaction", "Selection algorithm: reference, direct, next-reaction")
	decayCmd.Flags().StringVar(&decayScenario, "scenario", "", "Path to a YAML scenario file (defaults to the built-in benchmark)")

	rootCmd.AddCommand(decayCmd)
}
