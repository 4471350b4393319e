package cellref

import "iter"

// Lookup returns the formatted text of the cell at addr and whether a cell exists there.
type Lookup func(addr Address) (string, bool)

// Visit is one coordinate produced by Walk.
type Visit struct {
	Addr    Address
	Value   string
	Present bool
}

// Walk yields every coordinate of r in row-major order, top row first and
// left to right within a row, whether or not a cell exists there. The
// returned sequence holds no state and can be ranged over repeatedly.
func Walk(r Range, lookup Lookup) iter.Seq[Visit] {
	return func(yield func(Visit) bool) {
		for row := r.Start.Row; row <= r.End.Row; row++ {
			for col := r.Start.Col; col <= r.End.Col; col++ {
				addr := Address{Col: col, Row: row}
				value, ok := lookup(addr)
				if !yield(Visit{Addr: addr, Value: value, Present: ok}) {
					return
				}
			}
		}
	}
}
