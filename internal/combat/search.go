package combat

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Search looks for the smallest attack power for one species that lets the
// battle finish without that species losing a single unit.
type Search struct {
	Input   string
	Rules   Rules
	Species Species
	// MinPower is the first power tried; 0 means the species' base power + 1.
	MinPower int
	// MaxPower bounds the search when positive.
	MaxPower       int
	MaxRounds      int
	StopOnCasualty bool
	Log            logrus.FieldLogger
}

type SearchResult struct {
	Species  Species `json:"species"`
	Power    int     `json:"power"`
	Attempts int     `json:"attempts"`
	Result   Result  `json:"result"`
}

func (s Search) Run() (SearchResult, error) {
	log := s.Log
	if log == nil {
		log = logrus.StandardLogger()
	}
	start := s.MinPower
	if start <= 0 {
		start = s.Rules.AttackPower[s.Species] + 1
	}
	attempts := 0
	for power := start; ; power++ {
		// Past the enemies' starting hit points every hit already kills, so
		// more power cannot change the battle.
		if power > start && power > s.Rules.HitPoints {
			return SearchResult{}, fmt.Errorf("%w: tried %d..%d", ErrNoBoost, start, power-1)
		}
		if s.MaxPower > 0 && power > s.MaxPower {
			return SearchResult{}, fmt.Errorf("%w: tried %d..%d", ErrNoBoost, start, s.MaxPower)
		}
		attempts++
		b, err := Parse(s.Input, s.Rules.WithPower(s.Species, power))
		if err != nil {
			return SearchResult{}, err
		}
		bt := NewBattle(b, nil)
		if s.StopOnCasualty {
			bt.Halt = func(bt *Battle) bool { return bt.Casualties[s.Species] > 0 }
		}
		res, err := bt.Run(s.MaxRounds)
		if err != nil {
			return SearchResult{}, fmt.Errorf("power %d: %w", power, err)
		}
		lost := bt.Casualties[s.Species]
		log.WithFields(logrus.Fields{
			"species": s.Species, "power": power, "rounds": res.Rounds,
			"lost": lost, "halted": res.Halted,
		}).Debug("search attempt")
		if lost == 0 {
			return SearchResult{Species: s.Species, Power: power, Attempts: attempts, Result: res}, nil
		}
	}
}
