package combat

import "golang.org/x/exp/constraints"

// Pos is a grid coordinate. Positions order row first, then column.
type Pos struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (a Pos) Add(b Pos) Pos      { return Pos{a.Row + b.Row, a.Col + b.Col} }
func (a Pos) Less(b Pos) bool    { return a.Row < b.Row || (a.Row == b.Row && a.Col < b.Col) }
func (a Pos) Manhattan(b Pos) int { return abs(a.Row-b.Row) + abs(a.Col-b.Col) }

// offsets in reading order: up, left, right, down.
var offsets = [4]Pos{{-1, 0}, {0, -1}, {0, 1}, {1, 0}}

func abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}
