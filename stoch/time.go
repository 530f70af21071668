package stoch

import "math"

// Time is an absolute simulation time. Times are non-negative and
// monotonically non-decreasing across a simulation; +Inf marks an event
// that will never occur. Time comparisons are strict (no tolerance).
type Time float64

// TimeZero is the start of the simulation clock.
const TimeZero Time = 0.0

// TimeInf is the scheduled time of an event that will never occur.
var TimeInf = Time(math.Inf(1))

// NewTime validates and returns an absolute time.
func NewTime(value float64) Time {
	if value < 0.0 {
		panicf("negative time: [%g]", value)
	}
	return Time(value)
}

// Plus returns this time advanced by the given interval.
func (t Time) Plus(interval float64) Time {
	return NewTime(float64(t) + interval)
}

// Before reports whether this time is strictly earlier than that.
func (t Time) Before(that Time) bool {
	return t < that
}

// After reports whether this time is strictly later than that.
func (t Time) After(that Time) bool {
	return t > that
}

// IsInf reports whether this time is the never-occurring sentinel.
func (t Time) IsInf() bool {
	return math.IsInf(float64(t), 1)
}

// Compare defines the natural (strict) ordering of times.
func (t Time) Compare(that Time) int {
	switch {
	case t < that:
		return -1
	case t > that:
		return 1
	default:
		return 0
	}
}
