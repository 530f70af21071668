package stoch

// NextReactionAlgo is the next-reaction method of Gibson and Bruck: an
// indexed event queue holds one scheduled event per process, seeded with
// First(proc) for every process. Each step fires the root event, then
// resamples the fired process and retimes every dependent with the
// rate-ratio rule, reusing the unelapsed random quantile.
type NextReactionAlgo struct {
	algoCore
	eventQueue *EventQueue
}

// NewNextReactionAlgo creates a next-reaction simulation of the system.
func NewNextReactionAlgo(random *Random, system System) *NextReactionAlgo {
	return &NextReactionAlgo{
		algoCore:   algoCore{random: random, system: system},
		eventQueue: NewEventQueueFromEvents(FirstEvents(system, random)),
	}
}

// Advance executes the next simulation step.
func (a *NextReactionAlgo) Advance() {
	a.advance(a)
}

func (a *NextReactionAlgo) nextEvent() Event {
	// The root stays in place; applyEvent replaces it with the next
	// occurrence of the same process.
	return a.eventQueue.Peek()
}

func (a *NextReactionAlgo) applyEvent(event Event, dependents []Process) {
	a.eventQueue.Update(event.Next(a.random))

	for _, dependent := range dependents {
		prevEvent := a.eventQueue.Find(dependent)
		a.eventQueue.Update(prevEvent.UpdateAfter(event, a.random))
	}
}
