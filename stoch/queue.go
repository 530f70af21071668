package stoch

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// EventQueue holds one scheduled event per process in a binary min-heap
// keyed by the natural event order, augmented by a locator map from
// process index to heap position. The locator gives O(1) lookup by
// process and O(log n) rekeying, which is what the next-reaction method
// needs when it retimes dependents.
//
// Nodes occupy positions 1..size of the backing slice; position 0 is
// unused. The heap property and the locator stay consistent through
// every public mutation.
type EventQueue struct {
	// The number of events held in the queue (its logical size,
	// regardless of the length of the backing slice).
	size int

	// Positions 1 through size contain the nodes of the complete
	// binary heap; position 0 is unused.
	nodes []Event

	// locator maps each process index to the heap position of the
	// event for that process.
	locator map[int]int
}

const rootNode = 1

const defaultQueueCapacity = 10

// NewEventQueue creates an empty queue with the default capacity.
func NewEventQueue() *EventQueue {
	return NewEventQueueCap(defaultQueueCapacity)
}

// NewEventQueueCap creates an empty queue with the given initial capacity.
func NewEventQueueCap(capacity int) *EventQueue {
	return &EventQueue{
		nodes:   make([]Event, 1, capacity+1),
		locator: make(map[int]int, capacity),
	}
}

// NewEventQueueFromEvents creates a queue holding the given events.
func NewEventQueueFromEvents(events []Event) *EventQueue {
	queue := NewEventQueueCap(len(events))
	for _, event := range events {
		queue.Add(event)
	}
	return queue
}

// Add inserts the next event for a new process. A process already in
// the queue is a fatal logic error.
func (q *EventQueue) Add(event Event) {
	if q.Contains(event.Proc()) {
		panicf("event queue already contains process [%d]", event.ProcIndex())
	}

	// Grow the logical size, place the event in the last node, and
	// percolate upward to restore heap order.
	q.size++
	q.setNode(q.size, event)
	q.swim(q.size)
}

// Peek returns the next event to occur in the system (the heap root)
// without removing it.
func (q *EventQueue) Peek() Event {
	if q.size == 0 {
		panicf("event queue is empty")
	}
	return q.nodes[rootNode]
}

// Find returns the scheduled event for the given process (not
// necessarily the next event in the whole system) without removing it.
func (q *EventQueue) Find(proc Process) Event {
	return q.nodes[q.findNode(proc)]
}

// Contains reports whether the queue holds an event for proc.
func (q *EventQueue) Contains(proc Process) bool {
	_, ok := q.locator[proc.Index()]
	return ok
}

// Size returns the number of events in the queue.
func (q *EventQueue) Size() int {
	return q.size
}

// Update replaces the queued event for the process in the given event
// and re-sifts it. Only one direction will move the node, but sifting
// both is robust and cheap.
func (q *EventQueue) Update(event Event) {
	node := q.findNode(event.Proc())
	q.setNode(node, event)

	q.swim(node)
	q.sink(node)
}

// Remove drops the queued event for the given process: the node is
// swapped with the last node, discarded, and the vacated position is
// re-sifted in both directions. The backing slice is compacted when the
// used capacity falls below half.
func (q *EventQueue) Remove(proc Process) {
	node := q.findNode(proc)
	q.swap(node, q.size)

	q.nodes[q.size] = Event{}
	delete(q.locator, proc.Index())
	q.size--

	if node <= q.size {
		q.sink(node)
		q.swim(node)
	}

	if len(q.nodes) > 2*(q.size+1) {
		logrus.Debugf("Trimming event queue storage to %d nodes", q.size+1)
		trimmed := make([]Event, q.size+1)
		copy(trimmed, q.nodes[:q.size+1])
		q.nodes = trimmed
	}
}

// IsOrdered reports whether every parent node orders at or before both
// of its children. It always should, of course; this method supports
// unit tests and internal consistency checks.
func (q *EventQueue) IsOrdered() bool {
	for parent := rootNode; q.isParent(parent); parent++ {
		child1 := firstChild(parent)
		child2 := secondChild(parent)

		if !q.isOrdered(parent, child1) {
			return false
		}
		if q.isNode(child2) && !q.isOrdered(parent, child2) {
			return false
		}
	}
	return true
}

// ValidateOrder panics unless the underlying heap is properly ordered.
func (q *EventQueue) ValidateOrder() {
	if !q.IsOrdered() {
		panicf("heap order is violated")
	}
}

func (q *EventQueue) String() string {
	var sb strings.Builder
	for node := rootNode; node <= q.size; node++ {
		sb.WriteString(q.nodes[node].String())
		if node < q.size {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// ---------------
// Heap management
// ---------------

func parentNode(child int) int   { return child / 2 }
func firstChild(parent int) int  { return 2 * parent }
func secondChild(parent int) int { return 2*parent + 1 }

func (q *EventQueue) isNode(node int) bool {
	return rootNode <= node && node <= q.size
}

func (q *EventQueue) isParent(node int) bool {
	return q.isNode(firstChild(node))
}

func (q *EventQueue) compare(node1, node2 int) int {
	return q.nodes[node1].Compare(q.nodes[node2])
}

func (q *EventQueue) isOrdered(parent, child int) bool {
	return q.compare(parent, child) <= 0
}

// nextChild returns the smaller-ordered child of parent, or -1 for a leaf.
func (q *EventQueue) nextChild(parent int) int {
	child1 := firstChild(parent)
	child2 := secondChild(parent)

	if !q.isNode(child1) {
		return -1
	}
	if !q.isNode(child2) {
		return child1
	}
	if q.compare(child1, child2) <= 0 {
		return child1
	}
	return child2
}

func (q *EventQueue) sink(node int) {
	for q.isParent(node) {
		child := q.nextChild(node)

		if q.isOrdered(node, child) {
			break
		}
		q.swap(node, child)
		node = child
	}
}

func (q *EventQueue) swim(node int) {
	child := node
	parent := parentNode(child)

	for child > rootNode && !q.isOrdered(parent, child) {
		q.swap(parent, child)

		child = parent
		parent = parentNode(child)
	}
}

// swap exchanges two nodes, keeping the locator in sync at the same site.
func (q *EventQueue) swap(j, k int) {
	prevj := q.nodes[j]
	prevk := q.nodes[k]

	q.setNode(j, prevk)
	q.setNode(k, prevj)
}

func (q *EventQueue) setNode(node int, event Event) {
	for len(q.nodes) <= node {
		q.nodes = append(q.nodes, Event{})
	}
	q.nodes[node] = event
	q.locator[event.ProcIndex()] = node
}

func (q *EventQueue) findNode(proc Process) int {
	node, ok := q.locator[proc.Index()]
	if !ok {
		panicf("event queue does not contain process [%d]", proc.Index())
	}
	return node
}
