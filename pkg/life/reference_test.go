package life

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

// naiveGrid is a straightforward byte-per-cell implementation with the
// same dead-border semantics as Grid. It is deliberately slow and simple
// so the packed engine has an independent oracle to agree with.
type naiveGrid struct {
	rows, cols int
	cur, nxt   []uint8
}

func newNaiveGrid(rows, cols int) *naiveGrid {
	return &naiveGrid{
		rows: rows,
		cols: cols,
		cur:  make([]uint8, rows*cols),
		nxt:  make([]uint8, rows*cols),
	}
}

func (n *naiveGrid) set(i, j int, alive bool) {
	if alive {
		n.cur[i*n.cols+j] = 1
	} else {
		n.cur[i*n.cols+j] = 0
	}
}

func (n *naiveGrid) step(rule Rule) {
	for i := 0; i < n.rows; i++ {
		for j := 0; j < n.cols; j++ {
			neighbors := 0
			for di := -1; di <= 1; di++ {
				for dj := -1; dj <= 1; dj++ {
					if di == 0 && dj == 0 {
						continue
					}
					ni, nj := i+di, j+dj
					if ni < 0 || ni >= n.rows || nj < 0 || nj >= n.cols {
						continue
					}
					neighbors += int(n.cur[ni*n.cols+nj])
				}
			}
			idx := i*n.cols + j
			alive := n.cur[idx] == 1
			n.nxt[idx] = 0
			if (alive && rule.Survival.Contains(neighbors)) || (!alive && rule.Birth.Contains(neighbors)) {
				n.nxt[idx] = 1
			}
		}
	}
	n.cur, n.nxt = n.nxt, n.cur
}

// seedBoth fills a packed grid and its oracle with the same random cells.
func seedBoth(t *testing.T, g *Grid, n *naiveGrid, seed uint64, density float64) {
	t.Helper()
	rng := rand.New(rand.NewPCG(seed, 0))
	for i := 0; i < g.Height(); i++ {
		for j := 0; j < g.Width(); j++ {
			alive := rng.Float64() < density
			require.NoError(t, g.Set(i, j, alive))
			n.set(i, j, alive)
		}
	}
}

func requireAgreement(t *testing.T, g *Grid, n *naiveGrid) {
	t.Helper()
	cells := make([]uint8, g.Height()*g.Width())
	g.ReadCells(cells)
	for i := 0; i < g.Height(); i++ {
		for j := 0; j < g.Width(); j++ {
			idx := i*g.Width() + j
			if cells[idx] != n.cur[idx] {
				t.Fatalf("generation %d: cell (%d,%d) packed=%d naive=%d",
					g.Generation(), i, j, cells[idx], n.cur[idx])
			}
		}
	}
}

func TestAgreementWithNaiveReference(t *testing.T) {
	rules := map[string]Rule{
		"conway":   Conway,
		"highlife": HighLife,
		"seeds":    Seeds,
		"daynight": DayAndNight,
		"diamoeba": Diamoeba,
	}
	sizes := []struct{ rows, cols int }{
		{1, 1},
		{3, 3},
		{5, 62},
		{7, 63},
		{16, 61},
		{10, 124},
		{33, 200},
	}

	for name, rule := range rules {
		for _, size := range sizes {
			t.Run(fmt.Sprintf("%s_%dx%d", name, size.rows, size.cols), func(t *testing.T) {
				g, err := NewGrid(size.rows, size.cols, rule)
				require.NoError(t, err)
				n := newNaiveGrid(size.rows, size.cols)
				seedBoth(t, g, n, uint64(size.rows*1000+size.cols), 0.35)

				for gen := 0; gen < 8; gen++ {
					g.Step()
					n.step(rule)
					requireAgreement(t, g, n)
				}
			})
		}
	}
}

func TestAgreementAtWordBoundaries(t *testing.T) {
	// A vertical bar straddling the cluster seam forces every generation
	// through the halo splice.
	g, err := NewGrid(20, 130, Conway)
	require.NoError(t, err)
	n := newNaiveGrid(20, 130)
	for i := 5; i < 15; i++ {
		for j := 60; j < 66; j++ {
			require.NoError(t, g.Set(i, j, true))
			n.set(i, j, true)
		}
	}
	for gen := 0; gen < 20; gen++ {
		g.Step()
		n.step(Conway)
		requireAgreement(t, g, n)
	}
}

func TestDeterminismAcrossChunkAndParallelSettings(t *testing.T) {
	const rows, cols, gens = 96, 150, 12

	variants := []struct {
		name string
		opts []Option
	}{
		{"serial", []Option{WithParallel(false)}},
		{"parallel_chunk1", []Option{WithParallel(true), WithChunkLength(1)}},
		{"parallel_chunk7", []Option{WithParallel(true), WithChunkLength(7)}},
		{"parallel_chunk64", []Option{WithParallel(true), WithChunkLength(64)}},
		{"parallel_1worker", []Option{WithParallel(true), WithWorkers(1)}},
		{"parallel_8workers", []Option{WithParallel(true), WithWorkers(8), WithChunkLength(16)}},
	}

	run := func(opts []Option) []uint8 {
		g, err := NewGrid(rows, cols, Conway, opts...)
		require.NoError(t, err)
		g.Randomize(rand.New(rand.NewPCG(2024, 0)), 0.4)
		g.Advance(gens)
		cells := make([]uint8, rows*cols)
		g.ReadCells(cells)
		return cells
	}

	want := run(variants[0].opts)
	for _, v := range variants[1:] {
		t.Run(v.name, func(t *testing.T) {
			require.Equal(t, want, run(v.opts))
		})
	}
}
