package stoch

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Rate is the instantaneous transition rate of a stochastic process:
// the expected number of firings per unit time. Rates are non-negative;
// a zero rate means the process cannot fire.
type Rate float64

// ZeroRate is the rate of a process that can never fire.
const ZeroRate Rate = 0.0

// NewRate validates and returns a rate. Values negative beyond the
// comparison tolerance are a fatal logic error; tiny negative values
// from floating-point cancellation clamp to zero.
func NewRate(value float64) Rate {
	if value < 0.0 {
		if !tolerantIsZero(value) {
			panicf("negative rate: [%g]", value)
		}
		value = 0.0
	}
	return Rate(value)
}

// IsZero reports whether this rate is zero within the comparison tolerance.
func (r Rate) IsZero() bool {
	return tolerantIsZero(float64(r))
}

// IsPositive reports whether this rate is positive beyond the comparison
// tolerance.
func (r Rate) IsPositive() bool {
	return float64(r) > 0.0 && !r.IsZero()
}

// Compare defines the natural (tolerant) ordering of rates.
func (r Rate) Compare(that Rate) int {
	return tolerantCompare(float64(r), float64(that))
}

// SampleInterval draws an exponentially distributed waiting interval
// with this rate as the rate parameter. A zero rate yields +Inf.
func (r Rate) SampleInterval(random *Random) float64 {
	if r.IsZero() {
		return math.Inf(1)
	}
	dist := distuv.Exponential{Rate: float64(r), Src: random.Source()}
	return dist.Rand()
}

// SampleTime draws the absolute time of the next firing, starting from
// prev. A zero rate yields TimeInf without consuming a deviate.
func (r Rate) SampleTime(prev Time, random *Random) Time {
	if r.IsZero() {
		return TimeInf
	}
	return prev.Plus(r.SampleInterval(random))
}
