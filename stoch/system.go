package stoch

// System is the engine-facing view of a stochastic system: an ordered
// collection of processes, the dependency graph between them, and the
// record of the most recent event.
type System interface {
	// Process returns the process with the given index. An unknown
	// index is a fatal logic error.
	Process(index int) Process

	// CountProcesses returns the number of processes in the system.
	CountProcesses() int

	// ContainsProcess reports whether the system holds a process with
	// the given index.
	ContainsProcess(index int) bool

	// Processes returns the processes in insertion order. The returned
	// slice is the system's internal storage and must not be modified
	// by callers.
	Processes() []Process

	// Dependents returns the processes whose rates may change when
	// proc fires, excluding proc itself.
	Dependents(proc Process) []Process

	// CountEvents returns the number of events that have occurred.
	CountEvents() int64

	// LastEvent returns the most recent event, if any has occurred.
	LastEvent() (Event, bool)

	// LastEventTime returns the time of the most recent event, or
	// TimeZero before any event has occurred.
	LastEventTime() Time

	// UpdateState records an event and applies its semantics.
	UpdateState(event Event)
}

// StateUpdater is the client hook invoked after the system records an
// event. Implementations apply the event semantics: mutate populations,
// refresh the rate of the fired process and its dependents. The last
// event is already set when the hook runs.
type StateUpdater interface {
	ApplyEvent(event Event)
}

// CoreSystem is the concrete System carried by every simulated system.
// Clients embed a *CoreSystem and supply a StateUpdater for the domain
// semantics.
//
// The process set should be treated as fixed once simulation begins:
// RateManager and NextReactionAlgo assume stable membership.
type CoreSystem struct {
	graph   *ProcGraph
	procs   []Process
	byIndex map[int]Process
	updater StateUpdater

	eventCount int64
	lastEvent  Event
	hasEvent   bool
}

// NewCoreSystem creates a system holding the given processes (unique
// indexes required) and dependency links (both endpoints must belong to
// the process collection). The updater may be nil for systems with no
// client-side state.
func NewCoreSystem(procs []Process, links []Link, updater StateUpdater) *CoreSystem {
	system := &CoreSystem{
		graph:   NewProcGraph(),
		byIndex: make(map[int]Process, len(procs)),
		updater: updater,
	}

	for _, proc := range procs {
		system.AddProcess(proc)
	}
	for _, link := range links {
		system.AddLink(link.Predecessor, link.Successor)
	}
	return system
}

// AddProcess adds a process to the system. A duplicate index is a fatal
// logic error. Membership must not change after simulation begins.
func (s *CoreSystem) AddProcess(proc Process) {
	if s.ContainsProcess(proc.Index()) {
		panicf("duplicate process index: [%d]", proc.Index())
	}
	s.byIndex[proc.Index()] = proc
	s.procs = append(s.procs, proc)
}

// AddLink records a rate dependency between two member processes.
func (s *CoreSystem) AddLink(predecessor, successor Process) {
	s.RequireProcess(predecessor.Index())
	s.RequireProcess(successor.Index())
	s.graph.Link(predecessor, successor)
}

// RemoveProcess drops a process and every dependency edge touching it.
// Membership must not change after simulation begins.
func (s *CoreSystem) RemoveProcess(index int) {
	proc := s.Process(index)
	delete(s.byIndex, index)
	for i, member := range s.procs {
		if member.Index() == index {
			s.procs = append(s.procs[:i], s.procs[i+1:]...)
			break
		}
	}
	s.graph.Remove(proc)
}

// Process returns the process with the given index.
func (s *CoreSystem) Process(index int) Process {
	proc, ok := s.byIndex[index]
	if !ok {
		panicf("invalid process index: [%d]", index)
	}
	return proc
}

// CountProcesses returns the number of processes in the system.
func (s *CoreSystem) CountProcesses() int {
	return len(s.procs)
}

// ContainsProcess reports whether the system holds the given index.
func (s *CoreSystem) ContainsProcess(index int) bool {
	_, ok := s.byIndex[index]
	return ok
}

// ContainsProc reports whether the system holds the given process.
func (s *CoreSystem) ContainsProc(proc Process) bool {
	return s.ContainsProcess(proc.Index())
}

// ProcessRate returns the current rate of the process with the given
// index.
func (s *CoreSystem) ProcessRate(index int) Rate {
	return s.Process(index).Rate()
}

// RequireProcess panics unless the system holds the given index.
func (s *CoreSystem) RequireProcess(index int) {
	if !s.ContainsProcess(index) {
		panicf("invalid process index: [%d]", index)
	}
}

// Processes returns the processes in insertion order. The returned slice
// is the system's internal storage and must not be modified by callers.
func (s *CoreSystem) Processes() []Process {
	return s.procs
}

// Dependents returns the processes whose rates may change when proc
// fires, excluding proc itself.
func (s *CoreSystem) Dependents(proc Process) []Process {
	return s.graph.Successors(proc)
}

// CountEvents returns the number of events that have occurred.
func (s *CoreSystem) CountEvents() int64 {
	return s.eventCount
}

// LastEvent returns the most recent event, if any has occurred.
func (s *CoreSystem) LastEvent() (Event, bool) {
	return s.lastEvent, s.hasEvent
}

// LastEventTime returns the time of the most recent event, or TimeZero
// before any event has occurred.
func (s *CoreSystem) LastEventTime() Time {
	if s.hasEvent {
		return s.lastEvent.Time()
	}
	return TimeZero
}

// UpdateState validates the event, records it, and invokes the client
// hook to apply its semantics. The event must occur strictly after the
// previous event and must refer to a member process.
func (s *CoreSystem) UpdateState(event Event) {
	s.validateEvent(event)

	s.eventCount++
	s.lastEvent = event
	s.hasEvent = true

	if s.updater != nil {
		s.updater.ApplyEvent(event)
	}
}

func (s *CoreSystem) validateEvent(event Event) {
	if event.Time().Compare(s.LastEventTime()) <= 0 {
		panicf("event for process [%d] at %v does not follow the previous event at %v",
			event.ProcIndex(), event.Time(), s.LastEventTime())
	}
	if !s.ContainsProcess(event.ProcIndex()) {
		panicf("event occurred outside this system: process [%d]", event.ProcIndex())
	}
}
