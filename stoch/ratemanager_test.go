package stoch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exactTotal(system System) float64 {
	total := 0.0
	for _, proc := range system.Processes() {
		total += float64(proc.Rate())
	}
	return total
}

func TestRateManager_InitialTotal(t *testing.T) {
	system := NewCoreSystem(newTestProcs(1.0, 2.0, 3.0, 4.0), nil, nil)
	manager := NewRateManager(system)

	assert.InDelta(t, 10.0, float64(manager.TotalRate()), 1.0e-12)
}

func TestRateManager_PartialUpdate(t *testing.T) {
	procs := newTestProcs(1.0, 2.0, 3.0, 4.0, 5.0, 6.0, 7.0, 8.0, 9.0, 10.0)
	system := NewCoreSystem(procs, nil, nil)
	manager := NewRateManager(system)

	// Change the fired process and one dependent: well under the
	// process threshold, so the partial path applies.
	procs[0].(*testProc).rate = NewRate(11.0)
	procs[3].(*testProc).rate = NewRate(0.5)
	manager.UpdateTotalRate(procs[0], []Process{procs[3]})

	assert.InDelta(t, exactTotal(system), float64(manager.TotalRate()), 1.0e-9)
}

func TestRateManager_FullRefreshOnWideEvent(t *testing.T) {
	procs := newTestProcs(1.0, 2.0, 3.0, 4.0, 5.0, 6.0)
	system := NewCoreSystem(procs, nil, nil)
	manager := NewRateManager(system)

	// An event touching half the processes forces the full path. The
	// full refresh re-reads every rate, so even processes missing from
	// the dependents list are picked up.
	for _, proc := range procs {
		proc.(*testProc).rate = NewRate(20.0)
	}
	manager.UpdateTotalRate(procs[0], []Process{procs[1], procs[2], procs[3]})

	assert.InDelta(t, 120.0, float64(manager.TotalRate()), 1.0e-12)
}

func TestRateManager_DriftStaysBounded(t *testing.T) {
	const steps = 5000

	procs := newTestProcs(0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0)
	system := NewCoreSystem(procs, nil, nil)
	manager := NewRateManager(system)
	random := NewRandom(20210501)

	for step := 0; step < steps; step++ {
		target := procs[step%len(procs)].(*testProc)
		target.rate = NewRate(random.Float64() * 10.0)
		manager.UpdateTotalRate(target, nil)

		tolerance := rateTolerance * float64(len(procs)) * 1.0e6
		require.InDelta(t, exactTotal(system), float64(manager.TotalRate()), tolerance,
			"step %d", step)
	}
}

func TestRateManager_UnknownProcess(t *testing.T) {
	system := NewCoreSystem(newTestProcs(1.0, 2.0), nil, nil)
	manager := NewRateManager(system)

	assert.Panics(t, func() {
		manager.UpdateTotalRate(newTestProc(99, 1.0), nil)
	})
}
