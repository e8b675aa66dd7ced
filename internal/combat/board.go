package combat

import (
	"fmt"
	"sort"
	"strings"
)

type cell struct {
	wall bool
	unit *Unit
}

// Board holds the walls and living units of one battle attempt.
type Board struct {
	Width, Height int
	cells         []cell
	units         []*Unit
}

type Neighbor struct {
	Pos  Pos
	Unit *Unit
}

func Parse(input string, rules Rules) (*Board, error) {
	input = strings.ReplaceAll(input, "\r", "")
	lines := strings.Split(strings.TrimRight(input, "\n"), "\n")
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, fmt.Errorf("%w: empty arena", ErrBadInput)
	}
	b := &Board{Width: len(lines[0]), Height: len(lines)}
	b.cells = make([]cell, b.Width*b.Height)
	for row, line := range lines {
		if len(line) != b.Width {
			return nil, fmt.Errorf("%w: row %d has width %d, want %d", ErrBadInput, row, len(line), b.Width)
		}
		for col := 0; col < len(line); col++ {
			c := &b.cells[row*b.Width+col]
			switch ch := line[col]; ch {
			case '#':
				c.wall = true
			case '.':
			case 'E', 'G':
				sp := Elf
				if ch == 'G' {
					sp = Goblin
				}
				u := &Unit{ID: len(b.units), Species: sp, Pos: Pos{row, col}, HP: rules.HitPoints, AttackPower: rules.AttackPower[sp]}
				c.unit = u
				b.units = append(b.units, u)
			default:
				return nil, fmt.Errorf("%w: unexpected %q at row %d col %d", ErrBadInput, ch, row, col)
			}
		}
	}
	return b, nil
}

func (b *Board) inBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < b.Height && p.Col >= 0 && p.Col < b.Width
}

func (b *Board) at(p Pos) *cell { return &b.cells[p.Row*b.Width+p.Col] }

func (b *Board) Unit(p Pos) *Unit {
	if !b.inBounds(p) {
		return nil
	}
	return b.at(p).unit
}

func (b *Board) Wall(p Pos) bool { return !b.inBounds(p) || b.at(p).wall }

// Open reports whether a unit could step onto p.
func (b *Board) Open(p Pos) bool {
	if !b.inBounds(p) {
		return false
	}
	c := b.at(p)
	return !c.wall && c.unit == nil
}

func (b *Board) Neighbors(p Pos) []Neighbor {
	out := make([]Neighbor, 0, len(offsets))
	for _, d := range offsets {
		np := p.Add(d)
		out = append(out, Neighbor{Pos: np, Unit: b.Unit(np)})
	}
	return out
}

func (b *Board) Move(from, to Pos) error {
	u := b.Unit(from)
	if u == nil {
		return fmt.Errorf("%w: move from empty %v", ErrInconsistent, from)
	}
	if from.Manhattan(to) != 1 {
		return fmt.Errorf("%w: move %v to non-adjacent %v", ErrInconsistent, from, to)
	}
	if !b.Open(to) {
		return fmt.Errorf("%w: move %v onto blocked %v", ErrInconsistent, from, to)
	}
	b.at(from).unit = nil
	b.at(to).unit = u
	u.Pos = to
	return nil
}

func (b *Board) Remove(p Pos) error {
	u := b.Unit(p)
	if u == nil {
		return fmt.Errorf("%w: remove from empty %v", ErrInconsistent, p)
	}
	b.at(p).unit = nil
	for i, v := range b.units {
		if v == u {
			b.units = append(b.units[:i], b.units[i+1:]...)
			break
		}
	}
	return nil
}

func (b *Board) LivingUnits() []*Unit {
	out := make([]*Unit, len(b.units))
	copy(out, b.units)
	return out
}

// SortedUnits returns the living units in reading order of their positions.
func (b *Board) SortedUnits() []*Unit {
	out := b.LivingUnits()
	sort.Slice(out, func(i, j int) bool { return out[i].Pos.Less(out[j].Pos) })
	return out
}

func (b *Board) Count(s Species) int {
	n := 0
	for _, u := range b.units {
		if u.Species == s {
			n++
		}
	}
	return n
}

func (b *Board) HasLiving(s Species) bool { return b.Count(s) > 0 }

func (b *Board) HPLeft() int {
	sum := 0
	for _, u := range b.units {
		sum += u.HP
	}
	return sum
}

func (b *Board) Outcome(rounds int) int { return rounds * b.HPLeft() }

// Clone deep-copies the board; units keep their IDs.
func (b *Board) Clone() *Board {
	nb := &Board{Width: b.Width, Height: b.Height, cells: make([]cell, len(b.cells))}
	copy(nb.cells, b.cells)
	for _, u := range b.units {
		cu := *u
		nb.units = append(nb.units, &cu)
		nb.at(cu.Pos).unit = &cu
	}
	return nb
}

// Equal compares two boards cell by cell, including unit stats.
func (b *Board) Equal(o *Board) bool {
	if b.Width != o.Width || b.Height != o.Height {
		return false
	}
	for i := range b.cells {
		x, y := b.cells[i], o.cells[i]
		if x.wall != y.wall || (x.unit == nil) != (y.unit == nil) {
			return false
		}
		if x.unit != nil && *x.unit != *y.unit {
			return false
		}
	}
	return true
}

// String renders the grid with each row's units annotated by hit points.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < b.Height; row++ {
		var annot []string
		for col := 0; col < b.Width; col++ {
			c := b.at(Pos{row, col})
			switch {
			case c.wall:
				sb.WriteByte('#')
			case c.unit != nil:
				sb.WriteByte(c.unit.Species.Glyph())
				annot = append(annot, c.unit.String())
			default:
				sb.WriteByte('.')
			}
		}
		if len(annot) > 0 {
			sb.WriteString("   ")
			sb.WriteString(strings.Join(annot, ", "))
		}
		if row < b.Height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Grid renders the bare layout, the same format Parse accepts.
func (b *Board) Grid() string {
	var sb strings.Builder
	for row := 0; row < b.Height; row++ {
		for col := 0; col < b.Width; col++ {
			c := b.at(Pos{row, col})
			switch {
			case c.wall:
				sb.WriteByte('#')
			case c.unit != nil:
				sb.WriteByte(c.unit.Species.Glyph())
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
