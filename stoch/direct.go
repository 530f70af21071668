package stoch

// DirectAlgo is the optimized direct method: a RateManager maintains the
// total rate incrementally and a PriorityList performs rate-weighted
// selection with self-adjusting scan order.
type DirectAlgo struct {
	algoCore
	rateManager  *RateManager
	priorityList *PriorityList
}

// NewDirectAlgo creates a direct-method simulation of the system.
func NewDirectAlgo(random *Random, system System) *DirectAlgo {
	return &DirectAlgo{
		algoCore:     algoCore{random: random, system: system},
		rateManager:  NewRateManager(system),
		priorityList: NewPriorityListFromSystem(system),
	}
}

// Advance executes the next simulation step.
func (a *DirectAlgo) Advance() {
	a.advance(a)
}

func (a *DirectAlgo) nextEvent() Event {
	totalRate := a.rateManager.TotalRate()
	return Mark(a.nextProc(totalRate), a.nextTime(totalRate))
}

func (a *DirectAlgo) nextProc(totalRate Rate) Process {
	return a.priorityList.Select(a.random, totalRate)
}

func (a *DirectAlgo) nextTime(totalRate Rate) Time {
	return totalRate.SampleTime(a.system.LastEventTime(), a.random)
}

func (a *DirectAlgo) applyEvent(event Event, dependents []Process) {
	// The priority list adjusts itself during selection; only the
	// aggregated rate needs refreshing.
	a.rateManager.UpdateTotalRate(event.Proc(), dependents)
}
