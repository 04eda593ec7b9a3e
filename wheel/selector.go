package wheel

import (
	"errors"
	"math"
)

// ErrEmptySelection reports a selection pool with no pickable weight
var ErrEmptySelection = errors.New("wheel: empty or zero-weight selection pool")

// WeightedIndex maps a uniform draw u in [0,1) to a bucket index,
// proportional to weight, via a cumulative-sum scan with half-open
// buckets. Equal weights degrade to a uniform pick. Deterministic for a
// fixed u, which is why the caller supplies the draw instead of this
// function consuming a generator
func WeightedIndex(weights []float64, u float64) (int, error) {
	var total float64
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return 0, ErrEmptySelection
	}

	if u < 0 {
		u = 0
	} else if u >= 1 {
		u = math.Nextafter(1, 0)
	}

	target := u * total
	cum := 0.0
	last := 0
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		cum += w
		last = i
		if target < cum {
			return i, nil
		}
	}
	// Float accumulation can leave target within a hair of total
	return last, nil
}
