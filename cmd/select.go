package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/stoch-sim/stoch-sim/stoch"
	"github.com/stoch-sim/stoch-sim/stoch/decay"
)

var (
	selectSeed   uint64 // Seed for the selection benchmark
	selectTrials int    // Number of selections to draw
)

var selectCmd = &cobra.Command{
	Use:   "select",
	Short: "Run the priority-list selection bias benchmark",
	Long: "Draw repeated rate-weighted selections from a priority list of 1000 slow " +
		"processes (rate 1) and three fast processes (rates 2000, 3000, 4000) and " +
		"report empirical versus expected frequencies.",
	Run: func(cmd *cobra.Command, args []string) {
		// Unit-population decay processes make fixed-rate selection
		// targets: rate = population * rateConst = rateConst.
		rates := make([]float64, 0, 1003)
		pops := make([]int, 0, 1003)

		for i := 0; i < 1000; i++ {
			rates = append(rates, 1.0)
			pops = append(pops, 1)
		}
		rates = append(rates, 2000.0, 3000.0, 4000.0)
		pops = append(pops, 1, 1, 1)

		system := decay.NewSystem(pops, rates)
		procs := system.Processes()
		list := stoch.NewPriorityListFromSystem(system)
		random := stoch.NewRandom(selectSeed)
		totalRate := stoch.TotalRate(procs)

		logrus.Infof("Drawing %d selections from %d processes (total rate %g), seed=%d",
			selectTrials, len(procs), float64(totalRate), selectSeed)

		counts := make(map[int]int, len(procs))
		for trial := 0; trial < selectTrials; trial++ {
			counts[list.Select(random, totalRate).Index()]++
		}

		for _, proc := range procs[len(procs)-3:] {
			observed := float64(counts[proc.Index()]) / float64(selectTrials)
			expected := float64(proc.Rate()) / float64(totalRate)
			logrus.Infof("Process [%d]: observed %.5f, expected %.5f", proc.Index(), observed, expected)
		}
	},
}

func init() {
	selectCmd.Flags().Uint64Var(&selectSeed, "seed", 20210501, "Random seed")
	selectCmd.Flags().IntVar(&selectTrials, "trials", 1000000, "Number of selections to draw")

	rootCmd.AddCommand(selectCmd)
}
