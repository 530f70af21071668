package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stoch-sim/stoch-sim/stoch"
)

// pairProc is a second-order test process consuming two species.
type pairProc struct {
	baseProc
	first     Agent
	second    Agent
	rateConst float64
}

func (p *pairProc) Reactants() []Agent                  { return []Agent{p.first, p.second} }
func (p *pairProc) Products() []Agent                   { return nil }
func (p *pairProc) RateConstant(system *System) float64 { return p.rateConst }
func (p *pairProc) UpdatePopulation(population *Population) {
	updateByStoichiometry(p, population)
}
func (p *pairProc) UpdateRate(system *System) { p.setRate(ComputeRate(system, p)) }

func TestProc_UnassignedRate(t *testing.T) {
	a := NewNamedAgent(0, "A")
	proc := NewFixedRateDeath(0, a, 1.0)

	assert.Panics(t, func() { proc.Rate() })
}

func TestProc_NegativeRateConstant(t *testing.T) {
	a := NewNamedAgent(0, "A")

	assert.Panics(t, func() { NewFixedRateDeath(0, a, -1.0) })
	assert.Panics(t, func() { NewFixedRateBirth(0, a, -0.5) })
}

func TestComputeRate_MassAction(t *testing.T) {
	a := NewNamedAgent(0, "A")
	b := NewNamedAgent(1, "B")

	proc := &pairProc{baseProc: newBaseProc(0), first: a, second: b, rateConst: 0.5}
	system := NewSystem(
		[]AgentCount{{Agent: a, Count: 10}, {Agent: b, Count: 20}},
		[]Proc{proc},
		nil,
	)

	// rate = k * count(A) * count(B) = 0.5 * 10 * 20
	assert.Equal(t, stoch.NewRate(100.0), proc.Rate())

	system.pop.Set(b, 0)
	proc.UpdateRate(system)
	assert.True(t, proc.Rate().IsZero())
}

func TestTransition_RequiresDistinctSpecies(t *testing.T) {
	a := NewNamedAgent(0, "A")

	assert.Panics(t, func() { NewFixedRateTransition(0, a, a, 1.0) })
}
