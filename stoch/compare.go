package stoch

import (
	"fmt"

	"gonum.org/v1/gonum/floats/scalar"
)

// rateTolerance is the relative/absolute epsilon used when comparing
// rates and cumulative rate sums. Time comparisons are strict.
const rateTolerance = 1.0e-12

func tolerantEQ(x, y float64) bool {
	return scalar.EqualWithinAbsOrRel(x, y, rateTolerance, rateTolerance)
}

func tolerantGE(x, y float64) bool {
	return x > y || tolerantEQ(x, y)
}

func tolerantIsZero(x float64) bool {
	return scalar.EqualWithinAbs(x, 0.0, rateTolerance)
}

func tolerantCompare(x, y float64) int {
	switch {
	case tolerantEQ(x, y):
		return 0
	case x < y:
		return -1
	default:
		return 1
	}
}

func panicf(format string, args ...any) {
	panic(fmt.Sprintf(format, args...))
}
