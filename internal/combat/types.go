package combat

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrBadInput     = errors.New("bad arena input")
	ErrInconsistent = errors.New("board inconsistency")
	ErrNoBoost      = errors.New("no attack power keeps every unit alive")
	ErrRoundLimit   = errors.New("round limit exceeded")
	ErrStalemate    = errors.New("stalemate: a full round passed without a move or attack")
)

type Event struct {
	Round   int            `json:"round"`
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload,omitempty"`
}

type Species uint8

const (
	Elf Species = iota
	Goblin
)

func (s Species) Enemy() Species {
	if s == Elf {
		return Goblin
	}
	return Elf
}

func (s Species) Glyph() byte {
	if s == Elf {
		return 'E'
	}
	return 'G'
}

func (s Species) String() string {
	if s == Elf {
		return "elf"
	}
	return "goblin"
}

func (s Species) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func ParseSpecies(name string) (Species, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "elf", "e":
		return Elf, nil
	case "goblin", "g":
		return Goblin, nil
	}
	return 0, fmt.Errorf("unknown species %q", name)
}

type Unit struct {
	ID          int
	Species     Species
	Pos         Pos
	HP          int
	AttackPower int
}

func (u *Unit) Alive() bool    { return u.HP > 0 }
func (u *Unit) String() string { return fmt.Sprintf("%c(%d)", u.Species.Glyph(), u.HP) }

// Rules are the per-attempt parameters a board is built with.
type Rules struct {
	HitPoints   int
	AttackPower [2]int // indexed by Species
}

func DefaultRules() Rules {
	return Rules{HitPoints: 200, AttackPower: [2]int{3, 3}}
}

// WithPower returns a copy of r with one species' attack power overridden.
func (r Rules) WithPower(s Species, power int) Rules {
	r.AttackPower[s] = power
	return r
}
