package config

type BattleConfig struct {
	HitPoints int          `yaml:"hit_points"`
	MaxRounds int          `yaml:"max_rounds"`
	Elf       SpeciesDef   `yaml:"elf"`
	Goblin    SpeciesDef   `yaml:"goblin"`
	Search    SearchConfig `yaml:"search"`
}

type SpeciesDef struct {
	AttackPower int    `yaml:"attack_power"`
	Note        string `yaml:"note"`
}

type SearchConfig struct {
	Species        string `yaml:"species"`
	MinPower       int    `yaml:"min_power"`
	MaxPower       int    `yaml:"max_power"`
	StopOnCasualty bool   `yaml:"stop_on_casualty"`
}
