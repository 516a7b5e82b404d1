package life

import (
	"time"

	"golang.org/x/sync/errgroup"
)

// fanOut decides whether this grid spreads chunk work over goroutines.
func (g *Grid) fanOut() bool {
	switch g.opts.parallel {
	case parallelOn:
		return true
	case parallelOff:
		return false
	}
	return g.rows > defaultParallelThreshold
}

// forEachChunk runs fn over the interior row range [1, rows+1), split into
// chunks of the configured length. When parallel is set the chunks run on
// a bounded pool and forEachChunk returns only after all of them finish,
// so consecutive calls act as a barrier.
func (g *Grid) forEachChunk(parallel bool, fn func(lo, hi int)) {
	if !parallel {
		fn(1, g.rows+1)
		return
	}
	var eg errgroup.Group
	eg.SetLimit(g.opts.workers)
	for lo := 1; lo <= g.rows; lo += g.opts.chunkLength {
		hi := lo + g.opts.chunkLength
		if hi > g.rows+1 {
			hi = g.rows + 1
		}
		lo := lo
		eg.Go(func() error {
			fn(lo, hi)
			return nil
		})
	}
	_ = eg.Wait()
}

// Step advances the grid one generation in place.
//
// The sweep walks cluster columns west to east with two rotating scratch
// columns. A holds the halo-spliced current column; the current column is
// overwritten from A, then B is filled with the halo-spliced next column,
// taking its west halo from A so the old west edge survives the in-place
// write. The final column is masked so the bits past the logical width
// stay dead.
func (g *Grid) Step() {
	start := time.Now()
	par := g.fanOut()
	a, b := g.scratchA, g.scratchB

	// Prime A with the first payload column.
	west := g.column(0)
	center := g.column(1)
	east := g.column(2)
	a[0], a[g.rows+1] = 0, 0
	b[0], b[g.rows+1] = 0, 0
	g.forEachChunk(par, func(lo, hi int) {
		for r := lo; r < hi; r++ {
			a[r] = spliceHalo(west[r], center[r], east[r])
		}
	})

	// Interior sweep. Overwrite the current column from A, rebuild B from
	// the untouched next column, then rotate. The old west edge of the
	// next column survives the in-place write inside A.
	for q := 1; q < g.clusterCols; q++ {
		cur := g.column(q)
		g.forEachChunk(par, func(lo, hi int) {
			for r := lo; r < hi; r++ {
				cur[r] = g.kernel(a[r-1], a[r], a[r+1]) & cellMask
			}
		})
		next := g.column(q + 1)
		next2 := g.column(q + 2)
		g.forEachChunk(par, func(lo, hi int) {
			for r := lo; r < hi; r++ {
				b[r] = spliceHalo(a[r], next[r], next2[r])
			}
		})
		a, b = b, a
	}

	// Finalize the last column under the tail mask.
	last := g.column(g.clusterCols)
	g.forEachChunk(par, func(lo, hi int) {
		for r := lo; r < hi; r++ {
			last[r] = g.kernel(a[r-1], a[r], a[r+1]) & g.tailMask
		}
	})

	g.scratchA, g.scratchB = a, b
	g.generation++

	chunks := 1
	if par {
		chunks = (g.rows + g.opts.chunkLength - 1) / g.opts.chunkLength
	}
	g.opts.logger.Debug("step complete",
		"generation", g.generation,
		"duration", time.Since(start),
		"chunks", chunks,
	)
}

// Advance runs n steps.
func (g *Grid) Advance(n int) {
	for i := 0; i < n; i++ {
		g.Step()
	}
}
