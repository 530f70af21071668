package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stoch-sim/stoch-sim/stoch"
)

func TestSystem_Registry(t *testing.T) {
	a := NewNamedAgent(0, "A")
	b := NewNamedAgent(1, "B")

	system := NewSystem(
		[]AgentCount{{Agent: a, Count: 3}, {Agent: b, Count: 0}},
		[]Proc{NewFixedRateDeath(0, a, 1.0)},
		nil,
	)

	assert.Equal(t, a, system.Agent(0))
	assert.True(t, system.ContainsAgent(1))
	assert.False(t, system.ContainsAgent(9))
	assert.Equal(t, []Agent{a, b}, system.Agents())
	assert.Equal(t, 3, system.CountAgent(a))
	assert.Equal(t, 3, system.CountAgents([]Agent{a, b}))
	assert.Panics(t, func() { system.Agent(9) })
}

func TestSystem_DuplicateAgentRejected(t *testing.T) {
	a := NewNamedAgent(0, "A")
	clone := NewNamedAgent(0, "A2")

	assert.Panics(t, func() {
		NewSystem(
			[]AgentCount{{Agent: a, Count: 1}, {Agent: clone, Count: 1}},
			[]Proc{NewFixedRateDeath(0, a, 1.0)},
			nil,
		)
	})
}

func TestSystem_InitialRates(t *testing.T) {
	a := NewNamedAgent(0, "A")
	proc := NewFixedRateDeath(0, a, 2.0)

	system := NewSystem(
		[]AgentCount{{Agent: a, Count: 50}},
		[]Proc{proc},
		nil,
	)
	require.NotNil(t, system)

	// Every process rate is assigned at construction.
	assert.Equal(t, stoch.NewRate(100.0), proc.Rate())
}

// Population arithmetic: a transition, a death, and a birth applied in
// order with strictly increasing times.
func TestSystem_EventArithmetic(t *testing.T) {
	a := NewNamedAgent(0, "A")
	b := NewNamedAgent(1, "B")
	c := NewNamedAgent(2, "C")
	d := NewNamedAgent(3, "D")

	birth := NewFixedRateBirth(0, a, 1.0)
	death := NewFixedRateDeath(1, b, 2.0)
	transition := NewFixedRateTransition(2, c, d, 3.0)

	system := NewSystem(
		[]AgentCount{
			{Agent: a, Count: 1000},
			{Agent: b, Count: 2000},
			{Agent: c, Count: 3000},
			{Agent: d, Count: 0},
		},
		[]Proc{birth, death, transition},
		nil,
	)

	assert.Equal(t, stoch.NewRate(1000.0), birth.Rate())
	assert.Equal(t, stoch.NewRate(4000.0), death.Rate())
	assert.Equal(t, stoch.NewRate(9000.0), transition.Rate())

	system.UpdateState(stoch.Mark(transition, stoch.NewTime(0.1)))
	system.UpdateState(stoch.Mark(death, stoch.NewTime(0.2)))
	system.UpdateState(stoch.Mark(birth, stoch.NewTime(0.3)))

	assert.Equal(t, 1001, system.CountAgent(a))
	assert.Equal(t, 1999, system.CountAgent(b))
	assert.Equal(t, 2999, system.CountAgent(c))
	assert.Equal(t, 1, system.CountAgent(d))
	assert.Equal(t, int64(3), system.CountEvents())

	// The fired processes refreshed their own rates.
	assert.Equal(t, stoch.NewRate(1001.0), birth.Rate())
	assert.Equal(t, stoch.NewRate(3998.0), death.Rate())
	assert.Equal(t, stoch.NewRate(8997.0), transition.Rate())
}

// Dependent processes refresh their rates through the graph when a
// linked predecessor fires.
func TestSystem_DependentRateRefresh(t *testing.T) {
	a := NewNamedAgent(0, "A")
	b := NewNamedAgent(1, "B")

	transition := NewFixedRateTransition(0, a, b, 1.0)
	death := NewFixedRateDeath(1, b, 2.0)

	system := NewSystem(
		[]AgentCount{{Agent: a, Count: 10}, {Agent: b, Count: 0}},
		[]Proc{transition, death},
		[]stoch.Link{stoch.NewLink(transition, death)},
	)

	assert.True(t, death.Rate().IsZero())

	system.UpdateState(stoch.Mark(transition, stoch.NewTime(0.1)))

	// The transition produced one B, so the death rate woke up.
	assert.Equal(t, 1, system.CountAgent(b))
	assert.Equal(t, stoch.NewRate(2.0), death.Rate())
}
