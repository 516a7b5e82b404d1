package life

import (
	"math/bits"
	"math/rand/v2"
	"strings"
)

// Grid is a bit-packed two-state cell field with a fixed dead border.
// Cells outside the grid are permanently dead. Storage is column-major
// over cluster columns so that each column of words is contiguous and a
// vertical sweep walks memory linearly.
type Grid struct {
	rows, cols  int
	clusterCols int    // payload cluster columns, ceil(cols/62)
	stride      int    // words per cluster column, rows+2
	tailMask    uint64 // payload bits of the last cluster column

	// words holds (clusterCols+2) columns of stride words each. Columns 0
	// and clusterCols+1 and rows 0 and rows+1 are the zero border.
	words []uint64

	// scratchA and scratchB are the two rotating halo-spliced columns
	// used by Step. Owned by the grid and reused every generation.
	scratchA, scratchB []uint64

	rule       Rule
	kernel     kernelFunc
	generation uint64

	opts options
}

// NewGrid allocates a rows x cols grid governed by rule. All cells start
// dead and the generation counter starts at zero.
func NewGrid(rows, cols int, rule Rule, opts ...Option) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, &DimensionError{Rows: rows, Cols: cols}
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	p := (cols + ClusterCells - 1) / ClusterCells
	stride := rows + 2

	tail := cols % ClusterCells
	mask := uint64(cellMask)
	if tail != 0 {
		mask = (uint64(1)<<tail - 1) << 1
	}

	return &Grid{
		rows:        rows,
		cols:        cols,
		clusterCols: p,
		stride:      stride,
		tailMask:    mask,
		words:       make([]uint64, (p+2)*stride),
		scratchA:    make([]uint64, stride),
		scratchB:    make([]uint64, stride),
		rule:        rule,
		kernel:      compileKernel(rule),
		opts:        o,
	}, nil
}

// Height returns the number of rows.
func (g *Grid) Height() int { return g.rows }

// Width returns the number of columns.
func (g *Grid) Width() int { return g.cols }

// Rule returns the rule the grid was built with.
func (g *Grid) Rule() Rule { return g.rule }

// Generation returns the number of completed steps.
func (g *Grid) Generation() uint64 { return g.generation }

// column returns the word slice of physical cluster column q.
func (g *Grid) column(q int) []uint64 {
	return g.words[q*g.stride : (q+1)*g.stride]
}

// locate maps cell (i,j) to its physical column, word index and bit.
func (g *Grid) locate(i, j int) (q, r int, bit uint) {
	return j/ClusterCells + 1, i + 1, uint(j%ClusterCells + 1)
}

func (g *Grid) checkBounds(i, j int) error {
	if i < 0 || i >= g.rows || j < 0 || j >= g.cols {
		return &BoundsError{Row: i, Col: j, Rows: g.rows, Cols: g.cols}
	}
	return nil
}

// Get reports whether cell (i,j) is alive. Indices are 0-based.
func (g *Grid) Get(i, j int) (bool, error) {
	if err := g.checkBounds(i, j); err != nil {
		return false, err
	}
	q, r, bit := g.locate(i, j)
	return g.column(q)[r]>>bit&1 == 1, nil
}

// Set assigns cell (i,j). Indices are 0-based.
func (g *Grid) Set(i, j int, alive bool) error {
	if err := g.checkBounds(i, j); err != nil {
		return err
	}
	q, r, bit := g.locate(i, j)
	col := g.column(q)
	if alive {
		col[r] |= 1 << bit
	} else {
		col[r] &^= 1 << bit
	}
	return nil
}

// Population counts the live cells.
func (g *Grid) Population() int {
	n := 0
	for q := 1; q <= g.clusterCols; q++ {
		col := g.column(q)
		for r := 1; r <= g.rows; r++ {
			n += bits.OnesCount64(col[r] & cellMask)
		}
	}
	return n
}

// Clear kills every cell and resets the generation counter.
func (g *Grid) Clear() {
	for i := range g.words {
		g.words[i] = 0
	}
	g.generation = 0
}

// Randomize clears the grid and sets each cell alive with the given
// probability, drawing from rng.
func (g *Grid) Randomize(rng *rand.Rand, density float64) {
	g.Clear()
	for q := 1; q <= g.clusterCols; q++ {
		col := g.column(q)
		mask := uint64(cellMask)
		if q == g.clusterCols {
			mask = g.tailMask
		}
		for r := 1; r <= g.rows; r++ {
			var w uint64
			for bit := uint(1); bit <= ClusterCells; bit++ {
				if rng.Float64() < density {
					w |= 1 << bit
				}
			}
			col[r] = w & mask
		}
	}
}

// ReadCells unpacks the grid row-major into dst, one byte per cell, 1 for
// alive. dst must have length Height*Width; a short dst is left untouched.
func (g *Grid) ReadCells(dst []uint8) {
	if len(dst) != g.rows*g.cols {
		return
	}
	for j := 0; j < g.cols; j++ {
		q, _, bit := g.locate(0, j)
		col := g.column(q)
		for i := 0; i < g.rows; i++ {
			dst[i*g.cols+j] = uint8(col[i+1] >> bit & 1)
		}
	}
}

// String renders the grid as rows of 'O' and '.' characters.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.cols + 1) * g.rows)
	for i := 0; i < g.rows; i++ {
		for j := 0; j < g.cols; j++ {
			alive, _ := g.Get(i, j)
			if alive {
				b.WriteByte('O')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
