package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

func loadYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, out)
}

func Default() *BattleConfig {
	return &BattleConfig{
		HitPoints: 200,
		Elf:       SpeciesDef{AttackPower: 3},
		Goblin:    SpeciesDef{AttackPower: 3},
		Search:    SearchConfig{Species: "elf"},
	}
}

// Load reads a battle config. An empty path yields the defaults; fields left
// at zero in the file keep their default values.
func Load(path string) (*BattleConfig, error) {
	cfg := Default()
	if path != "" {
		if err := loadYAML(path, cfg); err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
	}
	cfg.fill()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c *BattleConfig) fill() {
	d := Default()
	if c.HitPoints == 0 {
		c.HitPoints = d.HitPoints
	}
	if c.Elf.AttackPower == 0 {
		c.Elf.AttackPower = d.Elf.AttackPower
	}
	if c.Goblin.AttackPower == 0 {
		c.Goblin.AttackPower = d.Goblin.AttackPower
	}
	if c.Search.Species == "" {
		c.Search.Species = d.Search.Species
	}
}

func (c *BattleConfig) Validate() error {
	var errs []error
	if c.HitPoints <= 0 {
		errs = append(errs, fmt.Errorf("hit_points must be positive, got %d", c.HitPoints))
	}
	if c.Elf.AttackPower <= 0 || c.Goblin.AttackPower <= 0 {
		errs = append(errs, fmt.Errorf("attack_power must be positive, got elf=%d goblin=%d", c.Elf.AttackPower, c.Goblin.AttackPower))
	}
	if c.MaxRounds < 0 {
		errs = append(errs, fmt.Errorf("max_rounds must not be negative, got %d", c.MaxRounds))
	}
	switch strings.ToLower(c.Search.Species) {
	case "elf", "goblin", "e", "g":
	default:
		errs = append(errs, fmt.Errorf("search.species %q is not elf or goblin", c.Search.Species))
	}
	if c.Search.MaxPower > 0 && c.Search.MinPower > c.Search.MaxPower {
		errs = append(errs, fmt.Errorf("search.min_power %d exceeds max_power %d", c.Search.MinPower, c.Search.MaxPower))
	}
	return errors.Join(errs...)
}
