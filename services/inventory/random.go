package inventory

import (
	crand "crypto/rand"
	"encoding/binary"
	"math"
	"math/rand"
	"time"
)

// NewRand returns a generator seeded from crypto/rand. Each search gets its
// own instance so concurrent requests never share state.
func NewRand() *rand.Rand {
	var b [8]byte
	seed := time.Now().UnixNano()
	if _, err := crand.Read(b[:]); err == nil {
		seed = int64(binary.LittleEndian.Uint64(b[:]))
	}
	return rand.New(rand.NewSource(seed))
}

// between returns an integer in [min, max].
func between(r *rand.Rand, min, max int) int {
	if max <= min {
		return min
	}
	return min + r.Intn(max-min+1)
}

func pick(r *rand.Rand, pool []string) string {
	return pool[r.Intn(len(pool))]
}

// sample draws between min and max distinct entries from pool in random
// order.
func sample(r *rand.Rand, pool []string, min, max int) []string {
	if max > len(pool) {
		max = len(pool)
	}
	if min > max {
		min = max
	}
	n := between(r, min, max)
	out := make([]string, 0, n)
	for _, i := range r.Perm(len(pool))[:n] {
		out = append(out, pool[i])
	}
	return out
}

// rating is uniform in [3.5, 5.0] rounded to one decimal.
func rating(r *rand.Rand) float64 {
	v := 3.5 + r.Float64()*1.5
	return math.Round(v*10) / 10
}
