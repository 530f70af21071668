package agent

import (
	"fmt"

	"github.com/stoch-sim/stoch-sim/stoch"
)

// Proc is a stochastic process that transforms agent populations. In
// addition to the engine's Process contract, an agent process exposes
// its stoichiometry (reactants consumed and products produced, with
// multiplicity), a rate constant that may depend on system state, the
// population update it applies when it fires, and a rate refresh hook.
type Proc interface {
	stoch.Process

	// Reactants returns the agents consumed when this process fires,
	// with multiplicity.
	Reactants() []Agent

	// Products returns the agents produced when this process fires,
	// with multiplicity.
	Products() []Agent

	// RateConstant returns the rate constant of this process in the
	// current system state.
	RateConstant(system *System) float64

	// UpdatePopulation applies the population changes that occur when
	// this process fires.
	UpdatePopulation(population *Population)

	// UpdateRate recomputes and caches the instantaneous rate of this
	// process from the current system state.
	UpdateRate(system *System)
}

// baseProc carries the index and cached rate shared by every agent
// process. The cached rate is refreshed by UpdateRate as the system
// evolves; reading it before the first assignment is a fatal logic
// error.
type baseProc struct {
	index int
	rate  stoch.Rate
	rated bool
}

func newBaseProc(index int) baseProc {
	return baseProc{index: index}
}

// Index returns the ordinal index of this process.
func (p *baseProc) Index() int {
	return p.index
}

// Rate returns the cached instantaneous rate of this process.
func (p *baseProc) Rate() stoch.Rate {
	if !p.rated {
		panicf("process [%d] rate has not been assigned", p.index)
	}
	return p.rate
}

func (p *baseProc) setRate(rate stoch.Rate) {
	p.rate = rate
	p.rated = true
}

// ComputeRate evaluates the mass-action rate of proc in the current
// system state: the rate constant times the count of each reactant
// (with multiplicity).
func ComputeRate(system *System, proc Proc) stoch.Rate {
	rate := validateRateConstant(proc.RateConstant(system))

	for _, reactant := range proc.Reactants() {
		rate *= float64(system.CountAgent(reactant))
	}
	return stoch.NewRate(rate)
}

func validateRateConstant(rateConst float64) float64 {
	if rateConst < 0.0 {
		panicf("negative rate constant: [%g]", rateConst)
	}
	return rateConst
}

// updateByStoichiometry removes each reactant and adds each product,
// the default population update for mass-action stoichiometry.
func updateByStoichiometry(proc Proc, population *Population) {
	for _, reactant := range proc.Reactants() {
		population.Remove(reactant)
	}
	for _, product := range proc.Products() {
		population.Add(product)
	}
}

func panicf(format string, args ...any) {
	panic(fmt.Sprintf(format, args...))
}
