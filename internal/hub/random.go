package hub

import (
	"math"
	"math/rand"
)

// Random is the source of randomness for synthetic data and estimated
// comparisons. *rand.Rand satisfies it, but is not safe for concurrent use.
type Random interface {
	Intn(n int) int
	Float64() float64
}

// globalRandom uses the process-wide math/rand source, which is safe for
// concurrent use.
type globalRandom struct{}

func (globalRandom) Intn(n int) int   { return rand.Intn(n) }
func (globalRandom) Float64() float64 { return rand.Float64() }

// DefaultRandom is shared by services built without an explicit source.
var DefaultRandom Random = globalRandom{}

// between returns an integer in [lo, hi).
func between(r Random, lo, hi int) int64 {
	if hi <= lo {
		return int64(lo)
	}
	return int64(lo + r.Intn(hi-lo))
}

// ChangeEstimator produces period-over-period percentage changes. No
// historical baseline is stored, so every implementation here is an
// estimate and responses flag it as such.
type ChangeEstimator interface {
	Change(metric string) float64
}

// MaxEstimatedChange bounds the placeholder changes in percent.
const MaxEstimatedChange = 20.0

// RandomChangeEstimator returns a placeholder change uniformly drawn from
// [-MaxEstimatedChange, MaxEstimatedChange], rounded to one decimal.
type RandomChangeEstimator struct {
	Rand Random
}

func (e RandomChangeEstimator) Change(string) float64 {
	r := e.Rand
	if r == nil {
		r = DefaultRandom
	}
	v := (r.Float64()*2 - 1) * MaxEstimatedChange
	return math.Round(v*10) / 10
}

func estimateChanges(e ChangeEstimator, metrics ...string) map[string]float64 {
	out := make(map[string]float64, len(metrics))
	for _, m := range metrics {
		out[m] = e.Change(m)
	}
	return out
}
