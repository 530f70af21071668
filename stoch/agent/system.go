package agent

import (
	"github.com/stoch-sim/stoch-sim/stoch"
)

// AgentCount pairs an agent with its initial population.
type AgentCount struct {
	Agent Agent
	Count int
}

// System is a stochastic system whose processes act on agent
// populations. It owns the agent registry and the population multiset;
// its event hook applies the fired process's population change, then
// refreshes the rate of the fired process and of every dependent.
type System struct {
	*stoch.CoreSystem

	agents  map[int]Agent
	ordered []Agent
	pop     *Population
}

// NewSystem creates an agent system with the given initial populations,
// processes, and rate dependency links, and assigns every process its
// initial rate.
func NewSystem(agents []AgentCount, procs []Proc, links []stoch.Link) *System {
	system := &System{
		agents: make(map[int]Agent, len(agents)),
		pop:    NewPopulation(),
	}

	for _, entry := range agents {
		system.AddAgent(entry.Agent, entry.Count)
	}
	system.CoreSystem = stoch.NewCoreSystem(asProcesses(procs), links, system)
	system.UpdateRates()

	return system
}

func asProcesses(procs []Proc) []stoch.Process {
	processes := make([]stoch.Process, len(procs))
	for i, proc := range procs {
		processes[i] = proc
	}
	return processes
}

// AddAgent registers a species with its initial population. The count
// must be non-negative.
func (s *System) AddAgent(agent Agent, count int) {
	if count < 0 {
		panicf("agent count must be non-negative: [%d]", count)
	}
	if _, ok := s.agents[agent.AgentIndex()]; ok {
		panicf("duplicate agent index: [%d]", agent.AgentIndex())
	}

	s.agents[agent.AgentIndex()] = agent
	s.ordered = append(s.ordered, agent)
	s.pop.AddN(agent, count)
}

// Agent returns the registered agent with the given index.
func (s *System) Agent(index int) Agent {
	agent, ok := s.agents[index]
	if !ok {
		panicf("invalid agent index: [%d]", index)
	}
	return agent
}

// ContainsAgent reports whether the system holds an agent with the
// given index.
func (s *System) ContainsAgent(index int) bool {
	_, ok := s.agents[index]
	return ok
}

// Agents returns the registered agents in insertion order. The returned
// slice is the system's internal storage and must not be modified by
// callers.
func (s *System) Agents() []Agent {
	return s.ordered
}

// CountAgent returns the current population of the given species.
func (s *System) CountAgent(agent Agent) int {
	return s.pop.Count(agent)
}

// CountAgents returns the combined population of the given species.
func (s *System) CountAgents(agents []Agent) int {
	total := 0
	for _, agent := range agents {
		total += s.pop.Count(agent)
	}
	return total
}

// UpdateRates refreshes the cached rate of every process from the
// current populations.
func (s *System) UpdateRates() {
	for _, proc := range s.Processes() {
		proc.(Proc).UpdateRate(s)
	}
}

// ApplyEvent applies the event semantics: the fired process updates the
// population, then the fired process and each of its dependents refresh
// their rates. Invoked by the engine with the last event already set.
func (s *System) ApplyEvent(event stoch.Event) {
	proc := event.Proc().(Proc)

	proc.UpdatePopulation(s.pop)
	proc.UpdateRate(s)

	for _, dependent := range s.Dependents(proc) {
		dependent.(Proc).UpdateRate(s)
	}
}
