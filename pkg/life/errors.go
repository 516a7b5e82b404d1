package life

import "fmt"

// DimensionError reports an invalid grid size.
type DimensionError struct {
	Rows, Cols int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("life: invalid grid dimensions %dx%d, both must be positive", e.Rows, e.Cols)
}

// BoundsError reports a cell access outside the grid.
type BoundsError struct {
	Row, Col   int
	Rows, Cols int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("life: cell (%d,%d) out of bounds for %dx%d grid", e.Row, e.Col, e.Rows, e.Cols)
}

// RuleError reports an unparseable rule string.
type RuleError struct {
	Input  string
	Reason string
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("life: invalid rule %q: %s", e.Input, e.Reason)
}
