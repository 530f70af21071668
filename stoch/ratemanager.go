package stoch

// RateManager maintains the total rate of a stochastic system
// incrementally for the optimized direct method. After each event the
// caller reports the fired process and its dependents; the manager
// either adjusts the cached total for just those processes (a partial
// update) or re-sums every rate from scratch (a full update).
//
// Partial updates accumulate floating-point drift, so a full update
// runs whenever the number of partial updates since the last full one
// reaches the age threshold, or when the fired process has at least half
// as many dependents as the system has processes.
//
// The manager assumes the system's process membership is fixed.
type RateManager struct {
	system  System
	rateMap map[int]Rate

	ageThreshold  int
	procThreshold int
	rateAge       int
	totalRate     float64
}

const maxAgeThreshold = 1000000

// NewRateManager creates a rate manager for the given system and
// performs the initial full summation.
func NewRateManager(system System) *RateManager {
	manager := &RateManager{
		system:        system,
		rateMap:       make(map[int]Rate, system.CountProcesses()),
		ageThreshold:  computeAgeThreshold(system),
		procThreshold: computeProcThreshold(system),
	}
	manager.updateFull()
	return manager
}

func computeAgeThreshold(system System) int {
	// Explicitly recompute the total rate once the number of partial
	// updates reaches the lesser of maxAgeThreshold or 100 times the
	// number of processes.
	return min(maxAgeThreshold, 100*system.CountProcesses())
}

func computeProcThreshold(system System) int {
	// Explicitly recompute the total rate if half or more of the
	// processes have new rates.
	return system.CountProcesses() / 2
}

// TotalRate returns the cached total rate of the system.
func (m *RateManager) TotalRate() Rate {
	return NewRate(m.totalRate)
}

// UpdateTotalRate refreshes the cached total after an event fired
// eventProc and possibly changed the rates of its dependents.
func (m *RateManager) UpdateTotalRate(eventProc Process, dependents []Process) {
	if m.allowPartialUpdate(dependents) {
		m.updatePartial(eventProc, dependents)
	} else {
		m.updateFull()
	}
}

func (m *RateManager) allowPartialUpdate(dependents []Process) bool {
	return m.rateAge < m.ageThreshold && len(dependents) < m.procThreshold
}

func (m *RateManager) updateFull() {
	m.rateAge = 0
	m.totalRate = 0.0

	for _, proc := range m.system.Processes() {
		rate := proc.Rate()
		m.rateMap[proc.Index()] = rate
		m.totalRate += float64(rate)
	}
}

func (m *RateManager) updatePartial(eventProc Process, dependents []Process) {
	m.rateAge++
	m.updateProc(eventProc)

	for _, dependent := range dependents {
		m.updateProc(dependent)
	}
}

func (m *RateManager) updateProc(proc Process) {
	oldRate, ok := m.rateMap[proc.Index()]
	if !ok {
		panicf("process [%d] has no cached rate", proc.Index())
	}

	newRate := proc.Rate()
	m.rateMap[proc.Index()] = newRate
	m.totalRate += float64(newRate) - float64(oldRate)
}
