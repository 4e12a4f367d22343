package blockfall

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
)

// DrawRange is the size of the uniform draw the factory partitions:
// one random byte per spawn.
const DrawRange = 256

// Weights assigns each kind its share of the DrawRange byte values.
// Every kind needs a positive share and the shares must sum to DrawRange.
type Weights map[Kind]int

// DefaultWeights favors the tromino and the bar, like the classic tuning,
// and keeps the extra variants rare.
func DefaultWeights() Weights {
	return Weights{
		KindBlock:   40,
		KindBar:     76,
		KindTromino: 100,
		KindTee:     20,
		KindSkew:    20,
	}
}

// Validate checks that every kind is reachable and the shares cover the draw.
func (w Weights) Validate() error {
	total := 0
	for _, k := range Kinds() {
		share, ok := w[k]
		if !ok || share <= 0 {
			return fmt.Errorf("blockfall: weight for %s must be positive", k)
		}
		if share > DrawRange {
			return fmt.Errorf("blockfall: weight for %s exceeds %d", k, DrawRange)
		}
		total += share
	}
	for k := range w {
		if k >= kindCount {
			return fmt.Errorf("%w: weight for %s", ErrUnknownKind, k)
		}
	}
	if total != DrawRange {
		return fmt.Errorf("blockfall: weights sum to %d, expected %d", total, DrawRange)
	}
	return nil
}

// String lists the sub-ranges in draw order, e.g. "block[0,40) bar[40,116) ...".
func (w Weights) String() string {
	parts := make([]string, 0, len(w))
	lo := 0
	for _, k := range Kinds() {
		hi := lo + w[k]
		parts = append(parts, fmt.Sprintf("%s[%d,%d)", k, lo, hi))
		lo = hi
	}
	return strings.Join(parts, " ")
}

// span is one contiguous sub-range of the draw, exclusive upper bound.
type span struct {
	kind Kind
	hi   int
}

// Factory produces pieces by drawing a uniform byte and mapping it onto
// the weighted sub-ranges. It is not safe for concurrent use; the Session
// owning it serializes access.
type Factory struct {
	rng   *rand.Rand
	spans []span
}

// NewFactory creates a factory seeded for reproducible sequences.
func NewFactory(seed int64, w Weights) (*Factory, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}

	spans := make([]span, 0, len(w))
	hi := 0
	for _, k := range Kinds() {
		hi += w[k]
		spans = append(spans, span{kind: k, hi: hi})
	}

	return &Factory{
		rng:   rand.New(rand.NewSource(seed)),
		spans: spans,
	}, nil
}

// Next draws the next piece variant. It never fails.
func (f *Factory) Next() Kind {
	return f.kindFor(f.rng.Intn(DrawRange))
}

// kindFor maps a byte value in [0, DrawRange) to its kind.
func (f *Factory) kindFor(b int) Kind {
	i := sort.Search(len(f.spans), func(i int) bool {
		return b < f.spans[i].hi
	})
	if i == len(f.spans) {
		i = len(f.spans) - 1
	}
	return f.spans[i].kind
}
