package agent

// BirthProc models replication: a parent agent produces a child agent
// (possibly of its own species) and survives, A -> A + A'. The rate is
// first order in the parent population.
type BirthProc struct {
	baseProc
	parent    Agent
	child     Agent
	rateConst float64
}

// NewFixedRateBirth creates a birth process whose child is the parent's
// own species, with a fixed rate constant.
func NewFixedRateBirth(index int, agent Agent, rateConst float64) *BirthProc {
	return NewFixedRateBirthInto(index, agent, agent, rateConst)
}

// NewFixedRateBirthInto creates a birth process producing a child of a
// possibly different species, with a fixed rate constant.
func NewFixedRateBirthInto(index int, parent, child Agent, rateConst float64) *BirthProc {
	validateRateConstant(rateConst)
	return &BirthProc{
		baseProc:  newBaseProc(index),
		parent:    parent,
		child:     child,
		rateConst: rateConst,
	}
}

// Parent returns the replicating agent.
func (p *BirthProc) Parent() Agent { return p.parent }

// Child returns the agent produced by each firing.
func (p *BirthProc) Child() Agent { return p.child }

// Reactants returns the parent agent.
func (p *BirthProc) Reactants() []Agent { return []Agent{p.parent} }

// Products returns the surviving parent and the new child.
func (p *BirthProc) Products() []Agent { return []Agent{p.parent, p.child} }

// RateConstant returns the fixed rate constant.
func (p *BirthProc) RateConstant(system *System) float64 { return p.rateConst }

// UpdatePopulation adds one child; the parent survives.
func (p *BirthProc) UpdatePopulation(population *Population) {
	population.Add(p.child)
}

// UpdateRate recomputes and caches the first-order rate.
func (p *BirthProc) UpdateRate(system *System) {
	p.setRate(ComputeRate(system, p))
}
