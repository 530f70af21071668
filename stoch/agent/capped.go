package agent

// CappedProc wraps a base process with a capacity constraint over a set
// of agents: while the combined population of the capped set stays
// below the capacity, the wrapper behaves exactly like its base
// process; at or above capacity its rate constant is zero and it can
// no longer fire. A population of capacity - 1 is still permitted.
type CappedProc struct {
	baseProc
	base     Proc
	capped   []Agent
	capacity int
}

// NewCappedProc creates a capacity-capped wrapper around the base
// process. The capacity must be positive.
func NewCappedProc(index int, base Proc, capped []Agent, capacity int) *CappedProc {
	if capacity < 1 {
		panicf("capacity must be positive: [%d]", capacity)
	}
	return &CappedProc{
		baseProc: newBaseProc(index),
		base:     base,
		capped:   capped,
		capacity: capacity,
	}
}

// Capped returns the agents whose combined population is capped. The
// returned slice must not be modified by callers.
func (p *CappedProc) Capped() []Agent { return p.capped }

// Capacity returns the population cap.
func (p *CappedProc) Capacity() int { return p.capacity }

// Reactants returns the base process reactants.
func (p *CappedProc) Reactants() []Agent { return p.base.Reactants() }

// Products returns the base process products.
func (p *CappedProc) Products() []Agent { return p.base.Products() }

// RateConstant returns the base rate constant while the capped
// population is below capacity, zero otherwise.
func (p *CappedProc) RateConstant(system *System) float64 {
	if system.CountAgents(p.capped) < p.capacity {
		return p.base.RateConstant(system)
	}
	return 0.0
}

// UpdatePopulation applies the base process population update.
func (p *CappedProc) UpdatePopulation(population *Population) {
	p.base.UpdatePopulation(population)
}

// UpdateRate recomputes and caches the capped rate.
func (p *CappedProc) UpdateRate(system *System) {
	p.setRate(ComputeRate(system, p))
}
