package combat

import (
	"github.com/sirupsen/logrus"

	"gridbattle/internal/config"
)

func RulesFromConfig(cfg *config.BattleConfig) Rules {
	r := DefaultRules()
	if cfg == nil {
		return r
	}
	if cfg.HitPoints > 0 {
		r.HitPoints = cfg.HitPoints
	}
	if cfg.Elf.AttackPower > 0 {
		r.AttackPower[Elf] = cfg.Elf.AttackPower
	}
	if cfg.Goblin.AttackPower > 0 {
		r.AttackPower[Goblin] = cfg.Goblin.AttackPower
	}
	return r
}

// SearchFromConfig prepares the attack power search for input.
func SearchFromConfig(cfg *config.BattleConfig, input string, log logrus.FieldLogger) (Search, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	sp, err := ParseSpecies(cfg.Search.Species)
	if err != nil {
		return Search{}, err
	}
	return Search{
		Input:          input,
		Rules:          RulesFromConfig(cfg),
		Species:        sp,
		MinPower:       cfg.Search.MinPower,
		MaxPower:       cfg.Search.MaxPower,
		MaxRounds:      cfg.MaxRounds,
		StopOnCasualty: cfg.Search.StopOnCasualty,
		Log:            log,
	}, nil
}
