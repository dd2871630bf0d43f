package search

import "cmp"

// Step records one probe of the search loop.
type Step struct {
	Low  int `json:"low"`
	Mid  int `json:"mid"`
	High int `json:"high"`
	// Cmp is the sign of comparing s[Mid] with the target: -1, 0 or 1.
	Cmp int `json:"cmp"`
}

// Trace returns the same index as Index along with the probes taken, in
// order. A successful lookup ends with a step whose Cmp is 0.
func Trace[S ~[]E, E cmp.Ordered](s S, target E) (int, []Step) {
	return TraceFunc(s, target, cmp.Compare[E])
}

// TraceFunc is the IndexFunc counterpart of Trace.
func TraceFunc[S ~[]E, E, T any](s S, target T, cmp func(E, T) int) (int, []Step) {
	var steps []Step
	low, high := 0, len(s)-1
	for low <= high {
		mid := low + (high-low)/2
		c := sign(cmp(s[mid], target))
		steps = append(steps, Step{Low: low, Mid: mid, High: high, Cmp: c})
		switch {
		case c == 0:
			return mid, steps
		case c > 0:
			high = mid - 1
		default:
			low = mid + 1
		}
	}
	return NotFound, steps
}

// MaxSteps is the worst-case number of probes for a slice of length n.
func MaxSteps(n int) int {
	steps := 0
	for n > 0 {
		steps++
		n >>= 1
	}
	return steps
}

func sign(c int) int {
	switch {
	case c < 0:
		return -1
	case c > 0:
		return 1
	}
	return 0
}
