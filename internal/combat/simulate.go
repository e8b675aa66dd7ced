package combat

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/exp/maps"
)

// Battle drives rounds over a single board. It is not safe for concurrent use.
type Battle struct {
	Board      *Board
	Rounds     int
	Casualties [2]int // indexed by Species
	Emit       func(Event)
	Trace      bool
	// Halt is checked after every completed round; returning true stops Run early.
	Halt func(*Battle) bool

	acted bool
}

type Options struct {
	MaxRounds int
	Record    bool
	Trace     bool
}

type Result struct {
	Rounds     int            `json:"rounds"`
	HPLeft     int            `json:"hp_left"`
	Outcome    int            `json:"outcome"`
	Winner     string         `json:"winner,omitempty"`
	Halted     bool           `json:"halted,omitempty"`
	Survivors  map[string]int `json:"survivors"`
	Casualties map[string]int `json:"casualties"`
	Final      []string       `json:"final"`
	Events     []Event        `json:"events,omitempty"`
}

func NewBattle(b *Board, emit func(Event)) *Battle {
	return &Battle{Board: b, Emit: emit}
}

func (bt *Battle) emit(typ string, payload map[string]any) {
	if bt.Emit == nil {
		return
	}
	bt.Emit(Event{Round: bt.Rounds + 1, Type: typ, Payload: payload})
}

// Round plays one full round and reports whether combat is over. The round in
// which a unit finds no enemies left is not added to Rounds.
func (bt *Battle) Round() (bool, error) {
	order := bt.Board.SortedUnits()
	if len(order) == 0 {
		return true, nil
	}
	bt.acted = false
	if bt.Trace {
		ids := make([]int, len(order))
		for i, u := range order {
			ids[i] = u.ID
		}
		bt.emit("RoundStart", map[string]any{"order": ids})
	}
	for _, u := range order {
		done, err := bt.takeTurn(u)
		if err != nil {
			return false, fmt.Errorf("round %d, unit %d: %w", bt.Rounds+1, u.ID, err)
		}
		if done {
			bt.emit("CombatEnd", map[string]any{"rounds": bt.Rounds, "hp_left": bt.Board.HPLeft()})
			return true, nil
		}
	}
	if !bt.acted {
		return false, fmt.Errorf("%w after %d rounds", ErrStalemate, bt.Rounds)
	}
	bt.Rounds++
	if bt.Trace && bt.Emit != nil {
		bt.Emit(Event{Round: bt.Rounds, Type: "RoundEnd", Payload: map[string]any{"board": bt.Board.String()}})
	}
	return false, nil
}

// Run plays rounds until combat ends. maxRounds of 0 means no limit.
func (bt *Battle) Run(maxRounds int) (Result, error) {
	halted := false
	for {
		if maxRounds > 0 && bt.Rounds >= maxRounds {
			return Result{}, fmt.Errorf("%w: %d rounds", ErrRoundLimit, maxRounds)
		}
		done, err := bt.Round()
		if err != nil {
			return Result{}, err
		}
		if done {
			break
		}
		if bt.Halt != nil && bt.Halt(bt) {
			halted = true
			break
		}
	}
	return bt.result(halted), nil
}

func (bt *Battle) result(halted bool) Result {
	res := Result{
		Rounds:     bt.Rounds,
		HPLeft:     bt.Board.HPLeft(),
		Outcome:    bt.Board.Outcome(bt.Rounds),
		Halted:     halted,
		Survivors:  map[string]int{},
		Casualties: map[string]int{},
		Final:      strings.Split(bt.Board.String(), "\n"),
	}
	for _, s := range []Species{Elf, Goblin} {
		res.Survivors[s.String()] = bt.Board.Count(s)
		res.Casualties[s.String()] = bt.Casualties[s]
	}
	if !halted {
		elves, goblins := res.Survivors[Elf.String()], res.Survivors[Goblin.String()]
		switch {
		case elves == 0 && goblins > 0:
			res.Winner = Goblin.String()
		case goblins == 0 && elves > 0:
			res.Winner = Elf.String()
		}
	}
	return res
}

// Summary is a one-line description of the survivors, species sorted by name.
func (r Result) Summary() string {
	keys := maps.Keys(r.Survivors)
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%d(-%d)", k, r.Survivors[k], r.Casualties[k]))
	}
	return strings.Join(parts, " ")
}

// Simulate parses input and plays the battle to the end.
func Simulate(input string, rules Rules, opts Options) (Result, error) {
	b, err := Parse(input, rules)
	if err != nil {
		return Result{}, err
	}
	var events []Event
	var emit func(Event)
	if opts.Record || opts.Trace {
		emit = func(ev Event) { events = append(events, ev) }
	}
	bt := NewBattle(b, emit)
	bt.Trace = opts.Trace
	res, err := bt.Run(opts.MaxRounds)
	if err != nil {
		return Result{}, err
	}
	res.Events = events
	return res, nil
}

func MarshalPretty(v any) []byte {
	b, _ := json.MarshalIndent(v, "", "  ")
	return b
}
