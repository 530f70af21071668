package agent

import "fmt"

// Agent is a discrete species tracked by an agent-based stochastic
// system. Agents have a stable index, unique within their system.
// Populations key their counts by the Agent value itself, so
// implementations must be comparable (usable as map keys); two distinct
// *NamedAgent values with the same index count as different keys.
type Agent interface {
	AgentIndex() int
}

// NamedAgent is a minimal Agent carrying an index and a display name.
type NamedAgent struct {
	index int
	name  string
}

// NewNamedAgent creates an agent with the given index and name.
func NewNamedAgent(index int, name string) *NamedAgent {
	return &NamedAgent{index: index, name: name}
}

// AgentIndex returns the ordinal index of this agent.
func (a *NamedAgent) AgentIndex() int {
	return a.index
}

// Name returns the display name of this agent.
func (a *NamedAgent) Name() string {
	return a.name
}

func (a *NamedAgent) String() string {
	return fmt.Sprintf("Agent(%d, %s)", a.index, a.name)
}
