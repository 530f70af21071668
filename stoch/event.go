package stoch

import "fmt"

// Event is a scheduled (or historical) firing of a process at an absolute
// time. Events are immutable value types; rekeying produces a new Event.
//
// The rate field is a snapshot of the process rate at the instant the
// event was scheduled. The Gibson-Bruck retiming rule needs it, and it
// may differ from the process's current rate.
type Event struct {
	proc Process
	rate Rate
	time Time
}

// Mark creates an event recording that proc fired at the given time.
// The rate snapshot is the process's current rate.
func Mark(proc Process, time Time) Event {
	return Event{proc: proc, rate: proc.Rate(), time: time}
}

// First samples the first occurrence of proc: an exponential waiting
// interval from TimeZero with the process's current rate. A zero rate
// schedules the event at TimeInf.
func First(proc Process, random *Random) Event {
	rate := proc.Rate()
	return Event{proc: proc, rate: rate, time: rate.SampleTime(TimeZero, random)}
}

// FirstEvents samples the first occurrence of every process in the system,
// in process iteration order.
func FirstEvents(system System, random *Random) []Event {
	procs := system.Processes()
	events := make([]Event, 0, len(procs))

	for _, proc := range procs {
		events = append(events, First(proc, random))
	}
	return events
}

// Proc returns the underlying process.
func (e Event) Proc() Process { return e.proc }

// Rate returns the process rate at the instant this event was scheduled.
func (e Event) Rate() Rate { return e.rate }

// Time returns the absolute time when this event occurred or will occur.
func (e Event) Time() Time { return e.time }

// ProcIndex returns the index of the underlying process.
func (e Event) ProcIndex() int { return e.proc.Index() }

// Next samples the next occurrence of the underlying process after it has
// just fired: a fresh exponential waiting interval starting from this
// event's time, using the process's current rate.
func (e Event) Next(random *Random) Event {
	rate := e.proc.Rate()
	return Event{proc: e.proc, rate: rate, time: rate.SampleTime(e.time, random)}
}

// Update retimes this event after a different linked process fired at
// linkedTime, changing the rate of the underlying process. Following
// Gibson and Bruck [J. Phys. Chem. A (2000) 104, 1876]:
//
//   - new rate zero: the process will never fire, the new time is TimeInf;
//   - old rate zero: the previous time was TimeInf, so a fresh interval is
//     sampled from the new rate starting at linkedTime;
//   - both positive: the unelapsed waiting time is scaled by the ratio of
//     the old to new rates, preserving the random quantile.
//
// A linked time after this event's scheduled time is a fatal logic error.
func (e Event) Update(linkedTime Time, random *Random) Event {
	if linkedTime.After(e.time) {
		panicf("linked process occurred at %v, after process [%d] scheduled at %v",
			linkedTime, e.ProcIndex(), e.time)
	}

	oldRate := e.rate
	oldTime := e.time
	newRate := e.proc.Rate()

	var newTime Time
	switch {
	case newRate.IsZero():
		newTime = TimeInf
	case oldRate.IsZero():
		newTime = newRate.SampleTime(linkedTime, random)
	default:
		rateRatio := float64(oldRate) / float64(newRate)
		unelapsed := float64(oldTime) - float64(linkedTime)
		newTime = linkedTime.Plus(rateRatio * unelapsed)
	}

	return Event{proc: e.proc, rate: newRate, time: newTime}
}

// UpdateAfter retimes this event after the latest event in the system.
// If the latest event fired this event's own process, a fresh interval is
// sampled (Next); otherwise the linked-process retiming rule applies.
func (e Event) UpdateAfter(latest Event, random *Random) Event {
	if SameProcess(latest.proc, e.proc) {
		return e.Next(random)
	}
	return e.Update(latest.time, random)
}

// Compare defines the natural ordering of events: chronological by time,
// ties broken by higher rate first, then by lower process index first.
func (e Event) Compare(that Event) int {
	if cmp := e.time.Compare(that.time); cmp != 0 {
		return cmp
	}
	if cmp := e.rate.Compare(that.rate); cmp != 0 {
		return -cmp // Higher rate first...
	}
	switch {
	case e.ProcIndex() < that.ProcIndex():
		return -1
	case e.ProcIndex() > that.ProcIndex():
		return 1
	default:
		return 0
	}
}

func (e Event) String() string {
	return fmt.Sprintf("Event(%d, %g @ %g)", e.ProcIndex(), float64(e.rate), float64(e.time))
}
