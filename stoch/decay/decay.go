// Package decay models systems of independent first-order decay
// processes. Each process carries an integer population that shrinks by
// one per firing, with rate population * rateConst; the analytic
// solution round(initPop * exp(-rateConst * t)) makes the package a
// natural end-to-end check for every selection algorithm.
package decay

import (
	"fmt"
	"math"

	"github.com/stoch-sim/stoch-sim/stoch"
)

// Proc is a first-order decay channel.
type Proc struct {
	index      int
	initPop    int
	rateConst  float64
	population int
}

// NewProc creates a decay process with the given index, initial
// population, and rate constant. Both the population and the rate
// constant must be positive.
func NewProc(index, initPop int, rateConst float64) *Proc {
	if initPop <= 0 {
		panicf("initial population must be positive: [%d]", initPop)
	}
	if rateConst <= 0.0 {
		panicf("decay rate constant must be positive: [%g]", rateConst)
	}
	return &Proc{
		index:      index,
		initPop:    initPop,
		rateConst:  rateConst,
		population: initPop,
	}
}

// Index returns the ordinal index of this process.
func (p *Proc) Index() int {
	return p.index
}

// Rate returns the instantaneous decay rate: population * rateConst.
func (p *Proc) Rate() stoch.Rate {
	return stoch.NewRate(float64(p.population) * p.rateConst)
}

// Population returns the current population.
func (p *Proc) Population() int {
	return p.population
}

// InitialPopulation returns the population at time zero.
func (p *Proc) InitialPopulation() int {
	return p.initPop
}

// RateConst returns the per-member decay rate constant.
func (p *Proc) RateConst() float64 {
	return p.rateConst
}

// ExpectedPopulation returns the analytic mean population at the given
// time, rounded to the nearest integer.
func (p *Proc) ExpectedPopulation(time stoch.Time) int {
	return int(math.Round(float64(p.initPop) * math.Exp(-p.rateConst*float64(time))))
}

func (p *Proc) decay() {
	if p.population <= 0 {
		panicf("population of process [%d] must remain non-negative", p.index)
	}
	p.population--
}

func (p *Proc) String() string {
	return fmt.Sprintf("DecayProc(%d, %d)", p.index, p.population)
}

// System is a stochastic system of independent decay processes. The
// processes share no reactants, so the dependency graph is empty and
// each event touches only the fired process.
type System struct {
	*stoch.CoreSystem
	procs []*Proc
}

// NewSystem creates a decay system from parallel slices of initial
// populations and rate constants.
func NewSystem(pops []int, rates []float64) *System {
	if len(pops) < 1 {
		panicf("at least one process must be defined")
	}
	if len(pops) != len(rates) {
		panicf("populations and rates are not consistent: [%d] vs [%d]", len(pops), len(rates))
	}

	indexer := stoch.NewIndexer()
	procs := make([]*Proc, len(pops))
	processes := make([]stoch.Process, len(pops))

	for i := range pops {
		procs[i] = NewProc(indexer.Next(), pops[i], rates[i])
		processes[i] = procs[i]
	}

	system := &System{procs: procs}
	system.CoreSystem = stoch.NewCoreSystem(processes, nil, system)
	return system
}

// Proc returns the decay process with the given index.
func (s *System) Proc(index int) *Proc {
	return s.Process(index).(*Proc)
}

// Procs returns the decay processes in insertion order. The returned
// slice is the system's internal storage and must not be modified by
// callers.
func (s *System) Procs() []*Proc {
	return s.procs
}

// ApplyEvent decrements the population of the fired process. All decay
// processes are independent, so no other rate changes.
func (s *System) ApplyEvent(event stoch.Event) {
	event.Proc().(*Proc).decay()
}

func panicf(format string, args ...any) {
	panic(fmt.Sprintf(format, args...))
}
