package ga

// DefaultMaxDataPoints is the sample budget of a FitnessLog built with a
// non-positive limit.
const DefaultMaxDataPoints = 200

// Sample is one recorded (generation, best fitness) pair.
type Sample struct {
	Generation int     `json:"generation"`
	Fitness    float64 `json:"fitness"`
}

// FitnessLog is a generation-indexed series of best-fitness samples whose
// memory stays bounded however long the run.
//
// Invariants:
//   - sample generations are strictly increasing;
//   - every retained generation is a multiple of the current interval;
//   - Len() never exceeds maxDataPoints after a Push returns.
//
// When an insertion pushes the length past maxDataPoints the interval doubles
// and every sample whose generation is not a multiple of the new interval is
// dropped, so roughly half the samples survive each compaction.
type FitnessLog struct {
	samples    []Sample
	generation int // generation the next Push is attributed to
	interval   int // sampling stride; always a power of two
	maxPoints  int
}

// NewFitnessLog returns an empty log; maxDataPoints <= 0 selects DefaultMaxDataPoints.
func NewFitnessLog(maxDataPoints int) *FitnessLog {
	if maxDataPoints <= 0 {
		maxDataPoints = DefaultMaxDataPoints
	}

	return &FitnessLog{
		samples:   make([]Sample, 0, maxDataPoints+1),
		interval:  1,
		maxPoints: maxDataPoints,
	}
}

// Push records fitness for the current generation when it falls on the
// sampling stride, compacts on overflow, then advances the generation counter.
//
// Complexity: O(1) amortized; a compaction is O(Len()).
func (l *FitnessLog) Push(fitness float64) {
	if l.generation%l.interval == 0 {
		l.samples = append(l.samples, Sample{Generation: l.generation, Fitness: fitness})
		if len(l.samples) > l.maxPoints {
			l.interval *= 2
			l.compact()
		}
	}
	l.generation++
}

// compact keeps, in place, the samples whose generation is a multiple of the
// current interval. The filter runs over all samples, not only the newest.
func (l *FitnessLog) compact() {
	kept := l.samples[:0]
	for _, s := range l.samples {
		if s.Generation%l.interval == 0 {
			kept = append(kept, s)
		}
	}
	l.samples = kept
}

// Samples returns a copy of the log in generation order.
func (l *FitnessLog) Samples() []Sample {
	out := make([]Sample, len(l.samples))
	copy(out, l.samples)

	return out
}

// Len returns the number of retained samples.
func (l *FitnessLog) Len() int { return len(l.samples) }

// Interval returns the current sampling stride.
func (l *FitnessLog) Interval() int { return l.interval }

// Generation returns the generation the next Push will be attributed to.
func (l *FitnessLog) Generation() int { return l.generation }

// MaxDataPoints returns the sample budget.
func (l *FitnessLog) MaxDataPoints() int { return l.maxPoints }
