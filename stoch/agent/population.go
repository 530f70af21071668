package agent

// Population is a multiset of agents: the number of members of each
// species currently present in a system. Counts are non-negative;
// driving a count negative is a fatal logic error.
type Population struct {
	counts map[Agent]int
}

// NewPopulation creates an empty population.
func NewPopulation() *Population {
	return &Population{counts: make(map[Agent]int)}
}

// Add adds one member of the given species.
func (p *Population) Add(agent Agent) {
	p.AddN(agent, 1)
}

// AddN adds count members of the given species.
func (p *Population) AddN(agent Agent, count int) {
	if count < 0 {
		panicf("agent count must be non-negative: [%d]", count)
	}
	p.counts[agent] += count
}

// Remove removes one member of the given species.
func (p *Population) Remove(agent Agent) {
	p.RemoveN(agent, 1)
}

// RemoveN removes count members of the given species. Removing more
// members than are present is a fatal logic error.
func (p *Population) RemoveN(agent Agent, count int) {
	if p.counts[agent] < count {
		panicf("agent [%d] count must remain non-negative", agent.AgentIndex())
	}
	p.counts[agent] -= count
}

// Set assigns the count of the given species directly.
func (p *Population) Set(agent Agent, count int) {
	if count < 0 {
		panicf("agent count must be non-negative: [%d]", count)
	}
	p.counts[agent] = count
}

// Count returns the number of members of the given species.
func (p *Population) Count(agent Agent) int {
	return p.counts[agent]
}
