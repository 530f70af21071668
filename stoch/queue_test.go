package stoch

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedQueue(random *Random, rates ...float64) (*EventQueue, []Event) {
	events := make([]Event, len(rates))
	for i, rate := range rates {
		events[i] = First(newTestProc(i, rate), random)
	}
	return NewEventQueueFromEvents(events), events
}

func TestEventQueue_AddAndPeek(t *testing.T) {
	random := NewRandom(42)
	queue, events := seedQueue(random, 1.0, 2.0, 3.0, 4.0, 5.0)

	require.Equal(t, 5, queue.Size())
	require.True(t, queue.IsOrdered())

	sorted := append([]Event(nil), events...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Compare(sorted[j]) < 0 })

	assert.Equal(t, sorted[0].ProcIndex(), queue.Peek().ProcIndex())
}

func TestEventQueue_AddDuplicateProcess(t *testing.T) {
	random := NewRandom(42)
	queue, _ := seedQueue(random, 1.0, 2.0)

	assert.Panics(t, func() { queue.Add(First(newTestProc(0, 3.0), random)) })
}

func TestEventQueue_Find(t *testing.T) {
	random := NewRandom(42)
	queue, events := seedQueue(random, 1.0, 2.0, 3.0)

	for _, event := range events {
		found := queue.Find(event.Proc())
		assert.Equal(t, event.ProcIndex(), found.ProcIndex())
		assert.Equal(t, event.Time(), found.Time())
	}

	assert.False(t, queue.Contains(newTestProc(99, 1.0)))
	assert.Panics(t, func() { queue.Find(newTestProc(99, 1.0)) })
}

func TestEventQueue_PeekEmpty(t *testing.T) {
	assert.Panics(t, func() { NewEventQueue().Peek() })
}

func TestEventQueue_Remove(t *testing.T) {
	random := NewRandom(42)
	queue, events := seedQueue(random,
		1.0, 2.0, 3.0, 4.0, 5.0, 6.0, 7.0, 8.0, 9.0, 10.0)

	for _, event := range events {
		require.True(t, queue.Contains(event.Proc()))
		queue.Remove(event.Proc())

		assert.False(t, queue.Contains(event.Proc()))
		assert.True(t, queue.IsOrdered())
	}
	assert.Equal(t, 0, queue.Size())
}

// Replay check: 25 unit-rate processes, each seeded with its first
// event. At every step the queue root must agree with a ground-truth
// sorted list, and replacing the root with the next occurrence of its
// process must preserve heap order.
func TestEventQueue_Replay(t *testing.T) {
	const (
		procCount = 25
		stepCount = 1000
	)
	random := NewRandom(20210501)
	queue := NewEventQueueCap(procCount)
	truth := make([]Event, 0, procCount)

	for i := 0; i < procCount; i++ {
		event := First(newTestProc(i, 1.0), random)
		queue.Add(event)
		truth = append(truth, event)
	}
	require.Equal(t, procCount, queue.Size())

	for step := 0; step < stepCount; step++ {
		sorted := append([]Event(nil), truth...)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].Compare(sorted[j]) < 0 })

		root := queue.Peek()
		require.Equal(t, sorted[0].ProcIndex(), root.ProcIndex(), "step %d", step)

		next := root.Next(random)
		queue.Update(next)
		require.True(t, queue.IsOrdered(), "step %d", step)

		for i := range truth {
			if truth[i].ProcIndex() == next.ProcIndex() {
				truth[i] = next
				break
			}
		}
	}
}

func TestEventQueue_UpdateRekeysBothDirections(t *testing.T) {
	random := NewRandom(42)
	queue, events := seedQueue(random, 1.0, 2.0, 3.0, 4.0, 5.0, 6.0, 7.0, 8.0)

	// Push one event far into the future, pull another to the front.
	late := Event{proc: events[0].Proc(), rate: events[0].Rate(), time: NewTime(1.0e6)}
	queue.Update(late)
	require.True(t, queue.IsOrdered())
	assert.NotEqual(t, late.ProcIndex(), queue.Peek().ProcIndex())

	early := Event{proc: events[7].Proc(), rate: events[7].Rate(), time: NewTime(1.0e-9)}
	queue.Update(early)
	require.True(t, queue.IsOrdered())
	assert.Equal(t, early.ProcIndex(), queue.Peek().ProcIndex())

	queue.ValidateOrder()
}
