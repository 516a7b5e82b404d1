package life

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpliceHalo(t *testing.T) {
	// The east edge of the west neighbor lands in bit 0, the west edge of
	// the east neighbor in bit 63, and the payload passes through.
	center := uint64(0xDEAD) << 1 & cellMask
	west := uint64(1) << 62
	east := uint64(1) << 1

	spliced := spliceHalo(west, center, east)
	assert.Equal(t, uint64(1), spliced&1)
	assert.Equal(t, uint64(1), spliced>>63)
	assert.Equal(t, center, spliced&cellMask)

	// Stale halo bits on the inputs must not leak through.
	spliced = spliceHalo(0, center|1|1<<63, 0)
	assert.Equal(t, center, spliced)
}

// countNeighbors recomputes the Moore count for bit position k of the
// center word directly from the nine surrounding bits.
func countNeighbors(above, center, below uint64, k uint) int {
	n := 0
	for _, w := range []uint64{above, below} {
		for _, dk := range []uint{k - 1, k, k + 1} {
			n += int(w >> dk & 1)
		}
	}
	n += int(center >> (k - 1) & 1)
	n += int(center >> (k + 1) & 1)
	return n
}

func TestNeighborDigits(t *testing.T) {
	rng := rand.New(rand.NewPCG(99, 0))
	for trial := 0; trial < 200; trial++ {
		above := rng.Uint64()
		center := rng.Uint64()
		below := rng.Uint64()

		d1, d2, d4, d8 := neighborDigits(above, center, below)
		for k := uint(1); k <= ClusterCells; k++ {
			want := countNeighbors(above, center, below, k)
			got := int(d1>>k&1) + 2*int(d2>>k&1) + 4*int(d4>>k&1) + 8*int(d8>>k&1)
			require.Equal(t, want, got, "trial %d bit %d", trial, k)
		}
	}
}

func TestOnesOfCount(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 0))
	above, center, below := rng.Uint64(), rng.Uint64(), rng.Uint64()
	d1, d2, d4, d8 := neighborDigits(above, center, below)

	for k := 0; k <= 8; k++ {
		match := onesOfCount(k, d1, d2, d4, d8)
		for bit := uint(1); bit <= ClusterCells; bit++ {
			want := countNeighbors(above, center, below, bit) == k
			assert.Equal(t, want, match>>bit&1 == 1, "count %d bit %d", k, bit)
		}
	}
}

func TestCompileKernelMatchesGeneric(t *testing.T) {
	// The hand-fused kernels must agree with the generic digit-match
	// kernel on every payload bit.
	generic := func(r Rule) kernelFunc {
		return func(above, center, below uint64) uint64 {
			d1, d2, d4, d8 := neighborDigits(above, center, below)
			var next uint64
			for k := 1; k <= 8; k++ {
				m := onesOfCount(k, d1, d2, d4, d8)
				if r.Birth.Contains(k) {
					next |= m &^ center
				}
				if r.Survival.Contains(k) {
					next |= m & center
				}
			}
			return next
		}
	}

	rng := rand.New(rand.NewPCG(123, 0))
	for _, rule := range []Rule{Conway, HighLife, Seeds} {
		fused := compileKernel(rule)
		ref := generic(rule)
		for trial := 0; trial < 200; trial++ {
			above, center, below := rng.Uint64(), rng.Uint64(), rng.Uint64()
			require.Equal(t,
				ref(above, center, below)&cellMask,
				fused(above, center, below)&cellMask,
				"rule %s trial %d", rule, trial)
		}
	}
}
