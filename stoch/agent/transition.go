package agent

// TransitionProc models conversion: one member of a species becomes a
// member of a distinct species, A -> B. The rate is first order in the
// reactant population.
type TransitionProc struct {
	baseProc
	reactant  Agent
	product   Agent
	rateConst float64
}

// NewFixedRateTransition creates a transition process with a fixed rate
// constant. Reactant and product must be distinct species.
func NewFixedRateTransition(index int, reactant, product Agent, rateConst float64) *TransitionProc {
	if reactant.AgentIndex() == product.AgentIndex() {
		panicf("reactant and product must be distinct: [%d]", reactant.AgentIndex())
	}
	validateRateConstant(rateConst)

	return &TransitionProc{
		baseProc:  newBaseProc(index),
		reactant:  reactant,
		product:   product,
		rateConst: rateConst,
	}
}

// Reactant returns the converting agent.
func (p *TransitionProc) Reactant() Agent { return p.reactant }

// Product returns the agent produced by each firing.
func (p *TransitionProc) Product() Agent { return p.product }

// Reactants returns the converting agent.
func (p *TransitionProc) Reactants() []Agent { return []Agent{p.reactant} }

// Products returns the produced agent.
func (p *TransitionProc) Products() []Agent { return []Agent{p.product} }

// RateConstant returns the fixed rate constant.
func (p *TransitionProc) RateConstant(system *System) float64 { return p.rateConst }

// UpdatePopulation converts one reactant into one product.
func (p *TransitionProc) UpdatePopulation(population *Population) {
	population.Remove(p.reactant)
	population.Add(p.product)
}

// UpdateRate recomputes and caches the first-order rate.
func (p *TransitionProc) UpdateRate(system *System) {
	p.setRate(ComputeRate(system, p))
}
