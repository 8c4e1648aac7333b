package iterative

import "bigoh/internal/costir"

// LineCost is one source line's contribution to the program's cost
// (spec.md §4.4 "Line emission").
type LineCost struct {
	Line       int
	Kind       string
	Multiplier costir.Value
	Worst      costir.Value
	Best       costir.Value
	Avg        costir.Value
}
