package stoch

// Link is a directed rate dependency: when the predecessor fires, the
// rate of the successor may change. The two endpoints must be distinct;
// the algorithms handle the fired process itself separately from its
// dependents, so self-links are rejected.
type Link struct {
	Predecessor Process
	Successor   Process
}

// NewLink validates and returns a rate dependency link.
func NewLink(predecessor, successor Process) Link {
	validateLink(predecessor, successor)
	return Link{Predecessor: predecessor, Successor: successor}
}

func validateLink(predecessor, successor Process) {
	if SameProcess(predecessor, successor) {
		panicf("linked processes must be distinct: [%d]", predecessor.Index())
	}
}

// procSet is an insertion-ordered set of processes keyed by index.
// Iteration order is deterministic, which keeps the order of random
// draws during dependent retiming reproducible.
type procSet struct {
	ordered []Process
	members map[int]bool
}

func newProcSet() *procSet {
	return &procSet{members: make(map[int]bool)}
}

func (s *procSet) add(proc Process) {
	if !s.members[proc.Index()] {
		s.members[proc.Index()] = true
		s.ordered = append(s.ordered, proc)
	}
}

func (s *procSet) remove(proc Process) {
	if !s.members[proc.Index()] {
		return
	}
	delete(s.members, proc.Index())
	for i, member := range s.ordered {
		if SameProcess(member, proc) {
			s.ordered = append(s.ordered[:i], s.ordered[i+1:]...)
			break
		}
	}
}

// ProcGraph is the dependency graph between processes: two multivalued
// mappings (forward and reverse) kept in sync. The graph is consulted
// shallowly per event; no transitive closure is computed.
type ProcGraph struct {
	// forward maps a process index to the processes whose rates depend
	// on it; reverse maps a process index to the processes that
	// determine its rate.
	forward map[int]*procSet
	reverse map[int]*procSet
}

// NewProcGraph creates an empty dependency graph.
func NewProcGraph() *ProcGraph {
	return &ProcGraph{
		forward: make(map[int]*procSet),
		reverse: make(map[int]*procSet),
	}
}

// NewProcGraphFromLinks creates a dependency graph holding the given links.
func NewProcGraphFromLinks(links []Link) *ProcGraph {
	graph := NewProcGraph()
	for _, link := range links {
		graph.Link(link.Predecessor, link.Successor)
	}
	return graph
}

// Link records that the successor's rate depends on the predecessor.
// Self-links are a fatal logic error.
func (g *ProcGraph) Link(predecessor, successor Process) {
	validateLink(predecessor, successor)
	g.edges(g.forward, predecessor).add(successor)
	g.edges(g.reverse, successor).add(predecessor)
}

// Add records that every successor's rate depends on the predecessor.
func (g *ProcGraph) Add(predecessor Process, successors ...Process) {
	for _, successor := range successors {
		g.Link(predecessor, successor)
	}
}

// Successors returns the processes whose rates may change when proc
// fires, excluding proc itself. The returned slice is the graph's
// internal storage and must not be modified by callers.
func (g *ProcGraph) Successors(proc Process) []Process {
	if set, ok := g.forward[proc.Index()]; ok {
		return set.ordered
	}
	return nil
}

// Remove deletes every edge touching proc from both mappings.
func (g *ProcGraph) Remove(proc Process) {
	if set, ok := g.forward[proc.Index()]; ok {
		for _, successor := range set.ordered {
			g.edges(g.reverse, successor).remove(proc)
		}
		delete(g.forward, proc.Index())
	}
	if set, ok := g.reverse[proc.Index()]; ok {
		for _, predecessor := range set.ordered {
			g.edges(g.forward, predecessor).remove(proc)
		}
		delete(g.reverse, proc.Index())
	}
}

// RemoveLink deletes a single dependency edge from both mappings.
func (g *ProcGraph) RemoveLink(predecessor, successor Process) {
	g.edges(g.forward, predecessor).remove(successor)
	g.edges(g.reverse, successor).remove(predecessor)
}

func (g *ProcGraph) edges(edgeMap map[int]*procSet, proc Process) *procSet {
	set, ok := edgeMap[proc.Index()]
	if !ok {
		set = newProcSet()
		edgeMap[proc.Index()] = set
	}
	return set
}
