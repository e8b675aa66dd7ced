package combat

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridbattle/internal/config"
)

func quietLogger() logrus.FieldLogger {
	l, _ := test.NewNullLogger()
	return l
}

func TestSearchSamples(t *testing.T) {
	tests := []struct {
		name    string
		arena   string
		power   int
		rounds  int
		outcome int
	}{
		{"first", sampleArena, 15, 29, 4988},
		{"third", battleSamples[2].arena, 4, 33, 31284},
		{"fourth", battleSamples[3].arena, 15, 37, 3478},
		{"fifth", battleSamples[4].arena, 12, 39, 6474},
		{"sixth", battleSamples[5].arena, 34, 30, 1140},
	}
	for _, tc := range tests {
		for _, stop := range []bool{false, true} {
			s := Search{Input: tc.arena, Rules: DefaultRules(), Species: Elf, StopOnCasualty: stop, Log: quietLogger()}
			sr, err := s.Run()
			require.NoError(t, err, tc.name)
			assert.Equal(t, tc.power, sr.Power, tc.name)
			assert.Equal(t, tc.power-3, sr.Attempts, tc.name)
			assert.Equal(t, tc.rounds, sr.Result.Rounds, tc.name)
			assert.Equal(t, tc.outcome, sr.Result.Outcome, tc.name)
			assert.Equal(t, 0, sr.Result.Casualties["elf"], tc.name)
			assert.Equal(t, "elf", sr.Result.Winner, tc.name)
		}
	}
}

func TestSearchLogsEveryAttempt(t *testing.T) {
	l, hook := test.NewNullLogger()
	l.SetLevel(logrus.DebugLevel)
	sr, err := Search{Input: sampleArena, Rules: DefaultRules(), Species: Elf, Log: l}.Run()
	require.NoError(t, err)
	require.Len(t, hook.AllEntries(), sr.Attempts)
	last := hook.LastEntry()
	assert.Equal(t, 15, last.Data["power"])
	assert.Equal(t, 0, last.Data["lost"])
}

func TestSearchNoBoost(t *testing.T) {
	// Both goblins hit the elf before it can act; with 3 hit points the
	// first hit kills no matter how strong the elf is.
	rules := Rules{HitPoints: 3, AttackPower: [2]int{3, 3}}
	_, err := Search{Input: "#####\n#GEG#\n#####", Rules: rules, Species: Elf, Log: quietLogger()}.Run()
	assert.ErrorIs(t, err, ErrNoBoost)
}

func TestSearchMaxPower(t *testing.T) {
	_, err := Search{Input: sampleArena, Rules: DefaultRules(), Species: Elf, MaxPower: 10, Log: quietLogger()}.Run()
	assert.ErrorIs(t, err, ErrNoBoost)
}

func TestSearchMinPower(t *testing.T) {
	sr, err := Search{Input: sampleArena, Rules: DefaultRules(), Species: Elf, MinPower: 20, Log: quietLogger()}.Run()
	require.NoError(t, err)
	assert.Equal(t, 20, sr.Power)
	assert.Equal(t, 1, sr.Attempts)
}

func TestSearchBadInput(t *testing.T) {
	_, err := Search{Input: "#?#", Rules: DefaultRules(), Species: Elf, Log: quietLogger()}.Run()
	assert.ErrorIs(t, err, ErrBadInput)
}

func TestSearchFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Search.StopOnCasualty = true
	s, err := SearchFromConfig(cfg, sampleArena, quietLogger())
	require.NoError(t, err)
	assert.Equal(t, Elf, s.Species)
	assert.True(t, s.StopOnCasualty)
	sr, err := s.Run()
	require.NoError(t, err)
	assert.Equal(t, 4988, sr.Result.Outcome)

	cfg.Search.Species = "orc"
	_, err = SearchFromConfig(cfg, sampleArena, quietLogger())
	assert.Error(t, err)
}

func TestRulesFromConfig(t *testing.T) {
	assert.Equal(t, DefaultRules(), RulesFromConfig(nil))
	cfg := config.Default()
	cfg.HitPoints = 50
	cfg.Goblin.AttackPower = 7
	r := RulesFromConfig(cfg)
	assert.Equal(t, 50, r.HitPoints)
	assert.Equal(t, [2]int{3, 7}, r.AttackPower)
}
