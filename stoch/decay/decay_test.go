package decay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stoch-sim/stoch-sim/stoch"
)

func TestNewProc_Validation(t *testing.T) {
	assert.Panics(t, func() { NewProc(0, 0, 1.0) })
	assert.Panics(t, func() { NewProc(0, -5, 1.0) })
	assert.Panics(t, func() { NewProc(0, 10, 0.0) })
	assert.Panics(t, func() { NewProc(0, 10, -1.0) })
}

func TestProc_Rate(t *testing.T) {
	proc := NewProc(0, 100, 2.0)

	assert.Equal(t, stoch.NewRate(200.0), proc.Rate())
	assert.Equal(t, 100, proc.Population())
	assert.Equal(t, 100, proc.InitialPopulation())
	assert.Equal(t, 2.0, proc.RateConst())
}

func TestProc_ExpectedPopulation(t *testing.T) {
	proc := NewProc(0, 100000, 2.0)

	assert.Equal(t, 100000, proc.ExpectedPopulation(stoch.TimeZero))

	// 100000 * exp(-2 * 0.5) = 100000 / e = 36788
	assert.Equal(t, 36788, proc.ExpectedPopulation(stoch.NewTime(0.5)))
}

func TestNewSystem_Validation(t *testing.T) {
	assert.Panics(t, func() { NewSystem(nil, nil) })
	assert.Panics(t, func() { NewSystem([]int{10, 20}, []float64{1.0}) })
}

func TestSystem_EventArithmetic(t *testing.T) {
	system := NewSystem([]int{100, 200, 300}, []float64{1.0, 2.0, 3.0})

	procs := system.Procs()
	require.Len(t, procs, 3)

	assertPopulations := func(pops ...int) {
		for i, pop := range pops {
			assert.Equal(t, pop, procs[i].Population())
		}
	}
	assertRates := func(rates ...float64) {
		for i, rate := range rates {
			assert.Equal(t, stoch.NewRate(rate), procs[i].Rate())
		}
	}

	assertPopulations(100, 200, 300)
	assertRates(100.0, 400.0, 900.0)

	system.UpdateState(stoch.Mark(procs[0], stoch.NewTime(0.1)))
	system.UpdateState(stoch.Mark(procs[1], stoch.NewTime(0.2)))
	system.UpdateState(stoch.Mark(procs[1], stoch.NewTime(0.3)))
	system.UpdateState(stoch.Mark(procs[2], stoch.NewTime(0.4)))
	system.UpdateState(stoch.Mark(procs[2], stoch.NewTime(0.5)))
	system.UpdateState(stoch.Mark(procs[2], stoch.NewTime(0.6)))

	assertPopulations(99, 198, 297)
	assertRates(99.0, 396.0, 891.0)
	assert.Equal(t, int64(6), system.CountEvents())
}

func TestSystem_ProcLookup(t *testing.T) {
	system := NewSystem([]int{10, 20}, []float64{1.0, 2.0})

	assert.Equal(t, 20, system.Proc(1).Population())
	assert.Panics(t, func() { system.Proc(5) })
}
