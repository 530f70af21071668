package stoch

// ReferenceAlgo is the naive direct method of Gillespie: every step
// re-sums all process rates, selects the fired process by a linear scan,
// and samples the waiting time from the total rate. It keeps no state
// between steps, which makes it slow but trivially correct; the
// optimized algorithms are validated against it.
type ReferenceAlgo struct {
	algoCore
}

// NewReferenceAlgo creates a reference-method simulation of the system.
func NewReferenceAlgo(random *Random, system System) *ReferenceAlgo {
	return &ReferenceAlgo{algoCore{random: random, system: system}}
}

// Advance executes the next simulation step.
func (a *ReferenceAlgo) Advance() {
	a.advance(a)
}

func (a *ReferenceAlgo) nextEvent() Event {
	totalRate := TotalRate(a.system.Processes())
	return Mark(a.nextProc(totalRate), a.nextTime(totalRate))
}

func (a *ReferenceAlgo) nextProc(totalRate Rate) Process {
	// Accumulate the process rates until one reaches U * totalRate,
	// where U is a uniform deviate on [0, 1).
	cumRate := 0.0
	threshold := a.random.Float64() * float64(totalRate)

	for _, proc := range a.system.Processes() {
		cumRate += float64(proc.Rate())

		if tolerantGE(cumRate, threshold) {
			return proc
		}
	}

	// Unreachable with a freshly computed total: the final cumulative
	// sum equals the total within tolerance.
	panicf("next process selection failed")
	return nil
}

func (a *ReferenceAlgo) nextTime(totalRate Rate) Time {
	return totalRate.SampleTime(a.system.LastEventTime(), a.random)
}

func (a *ReferenceAlgo) applyEvent(event Event, dependents []Process) {
	// The total rate is recomputed at every step, so there is no
	// internal state to update.
}
