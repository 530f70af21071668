package stoch

// PriorityList selects processes at random with probability proportional
// to their rates, for the optimized direct method. Each selection walks
// the list accumulating rates until the cumulative sum reaches a random
// threshold, then swaps the selected entry one position toward the head.
// Frequently selected (higher-rate) processes migrate toward the front,
// shortening the expected scan.
//
// Membership never changes after construction; only the entry order does.
type PriorityList struct {
	procs []Process
}

// NewPriorityList creates a priority list over the given processes,
// initially in the given order. At least one process is required.
func NewPriorityList(procs []Process) *PriorityList {
	if len(procs) == 0 {
		panicf("priority list requires at least one process")
	}
	list := make([]Process, len(procs))
	copy(list, procs)
	return &PriorityList{procs: list}
}

// NewPriorityListFromSystem creates a priority list over the processes
// of the given system.
func NewPriorityListFromSystem(system System) *PriorityList {
	return NewPriorityList(system.Processes())
}

// Select draws the next process to fire: a uniform deviate scaled by the
// supplied total rate fixes a threshold, and the scan returns the first
// process whose cumulative rate reaches it (with the tolerant rate
// comparison). A non-positive total rate is a fatal logic error.
func (pl *PriorityList) Select(random *Random, totalRate Rate) Process {
	if !totalRate.IsPositive() {
		panicf("total transition rate must be positive: [%g]", float64(totalRate))
	}

	cumRate := 0.0
	threshold := random.Float64() * float64(totalRate)

	for position, proc := range pl.procs {
		cumRate += float64(proc.Rate())

		if tolerantGE(cumRate, threshold) {
			return pl.promote(position)
		}
	}

	// The supplied total can drift above the true rate sum, leaving the
	// threshold unreachable; settle on the last entry rather than fail.
	return pl.promote(len(pl.procs) - 1)
}

// promote moves the selected process one position toward the head,
// allowing rates that grow during the simulation to bubble up.
func (pl *PriorityList) promote(position int) Process {
	proc := pl.procs[position]
	if position > 0 {
		pl.procs[position], pl.procs[position-1] = pl.procs[position-1], pl.procs[position]
	}
	return proc
}
