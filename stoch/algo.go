package stoch

// Algorithm advances a stochastic simulation one event at a time. Each
// Advance call selects the next event, applies it to the system, and
// refreshes the algorithm's own indexes using the set of dependents
// returned by the system's graph.
//
// A caller controls termination externally, by bounding the event count
// or the simulated time.
type Algorithm interface {
	// Advance executes the next simulation step.
	Advance()

	// System returns the system being simulated.
	System() System

	// Random returns the deviate source driving the simulation.
	Random() *Random
}

// stepper is the per-algorithm half of the Advance template: event
// selection and internal index maintenance.
type stepper interface {
	nextEvent() Event
	applyEvent(event Event, dependents []Process)
}

// algoCore carries the state shared by every algorithm implementation.
type algoCore struct {
	random *Random
	system System
}

// System returns the system being simulated.
func (c *algoCore) System() System {
	return c.system
}

// Random returns the deviate source driving the simulation.
func (c *algoCore) Random() *Random {
	return c.random
}

// advance runs one simulation step: select the next event, let the
// system apply it, then update the algorithm's indexes with the fired
// process's dependents.
func (c *algoCore) advance(s stepper) {
	event := s.nextEvent()
	c.system.UpdateState(event)
	s.applyEvent(event, c.system.Dependents(event.Proc()))
}
