package life

import "strings"

// Pattern is a small rectangular cell bitmap meant to be placed onto a
// grid. Rows may have different lengths; short rows are padded dead.
type Pattern struct {
	name string
	rows []string
}

// NewPattern builds a pattern from row strings. 'O' marks a live cell,
// any other character a dead one.
func NewPattern(name string, rows ...string) Pattern {
	return Pattern{name: name, rows: rows}
}

// Name returns the pattern's display name.
func (p Pattern) Name() string { return p.name }

// Size returns the bounding-box height and width of the pattern.
func (p Pattern) Size() (rows, cols int) {
	for _, row := range p.rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	return len(p.rows), cols
}

// Place blits the pattern onto the grid with its top-left corner at
// (i,j). The whole bounding box must fit inside the grid.
func (g *Grid) Place(p Pattern, i, j int) error {
	ph, pw := p.Size()
	if err := g.checkBounds(i, j); err != nil {
		return err
	}
	if err := g.checkBounds(i+ph-1, j+pw-1); err != nil {
		return err
	}
	for di, row := range p.rows {
		for dj := 0; dj < len(row); dj++ {
			if row[dj] == 'O' {
				if err := g.Set(i+di, j+dj, true); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// The classic Conway menagerie.
var (
	Block = NewPattern("block",
		"OO",
		"OO")
	Beehive = NewPattern("beehive",
		".OO.",
		"O..O",
		".OO.")
	Loaf = NewPattern("loaf",
		".OO.",
		"O..O",
		".O.O",
		"..O.")
	Blinker = NewPattern("blinker",
		"OOO")
	Toad = NewPattern("toad",
		".OOO",
		"OOO.")
	Beacon = NewPattern("beacon",
		"OO..",
		"OO..",
		"..OO",
		"..OO")
	Pulsar = NewPattern("pulsar",
		"..OOO...OOO..",
		".............",
		"O....O.O....O",
		"O....O.O....O",
		"O....O.O....O",
		"..OOO...OOO..",
		".............",
		"..OOO...OOO..",
		"O....O.O....O",
		"O....O.O....O",
		"O....O.O....O",
		".............",
		"..OOO...OOO..")
	Glider = NewPattern("glider",
		".O.",
		"..O",
		"OOO")
	LWSS = NewPattern("lwss",
		"O..O.",
		"....O",
		"O...O",
		".OOOO")
	RPentomino = NewPattern("r-pentomino",
		".OO",
		"OO.",
		".O.")
	GosperGliderGun = NewPattern("gosper glider gun",
		"........................O...........",
		"......................O.O...........",
		"............OO......OO............OO",
		"...........O...O....OO............OO",
		"OO........O.....O...OO..............",
		"OO........O...O.OO....O.O...........",
		"..........O.....O.......O...........",
		"...........O...O....................",
		"............OO......................")
)

// Patterns maps lowercase names to the built-in patterns.
var Patterns = map[string]Pattern{}

func init() {
	for _, p := range []Pattern{
		Block, Beehive, Loaf, Blinker, Toad, Beacon, Pulsar,
		Glider, LWSS, RPentomino, GosperGliderGun,
	} {
		Patterns[strings.ToLower(p.name)] = p
	}
}
