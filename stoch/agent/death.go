package agent

// DeathProc models removal: one member of a species leaves the system,
// A -> 0. The rate is first order in the agent population.
type DeathProc struct {
	baseProc
	agent     Agent
	rateConst float64
}

// NewFixedRateDeath creates a death process with a fixed rate constant.
func NewFixedRateDeath(index int, agent Agent, rateConst float64) *DeathProc {
	validateRateConstant(rateConst)
	return &DeathProc{
		baseProc:  newBaseProc(index),
		agent:     agent,
		rateConst: rateConst,
	}
}

// Reactant returns the dying agent.
func (p *DeathProc) Reactant() Agent { return p.agent }

// Reactants returns the dying agent.
func (p *DeathProc) Reactants() []Agent { return []Agent{p.agent} }

// Products returns nothing: death produces no agents.
func (p *DeathProc) Products() []Agent { return nil }

// RateConstant returns the fixed rate constant.
func (p *DeathProc) RateConstant(system *System) float64 { return p.rateConst }

// UpdatePopulation removes one member of the dying species.
func (p *DeathProc) UpdatePopulation(population *Population) {
	population.Remove(p.agent)
}

// UpdateRate recomputes and caches the first-order rate.
func (p *DeathProc) UpdateRate(system *System) {
	p.setRate(ComputeRate(system, p))
}
