package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "battle.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := Load(writeFile(t, `
hit_points: 120
elf:
  attack_power: 5
search:
  species: goblin
  max_power: 40
  stop_on_casualty: true
`))
	require.NoError(t, err)
	assert.Equal(t, 120, cfg.HitPoints)
	assert.Equal(t, 5, cfg.Elf.AttackPower)
	assert.Equal(t, 3, cfg.Goblin.AttackPower, "unset fields keep defaults")
	assert.Equal(t, "goblin", cfg.Search.Species)
	assert.Equal(t, 40, cfg.Search.MaxPower)
	assert.True(t, cfg.Search.StopOnCasualty)
}

func TestLoadShippedAsset(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "assets", "battle.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 200, cfg.HitPoints)
	assert.Equal(t, "elf", cfg.Search.Species)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "hit_points: [1, 2"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "hit_points: -4\nsearch:\n  species: orc\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hit_points")
	assert.Contains(t, err.Error(), "orc")
}

func TestValidatePowerRange(t *testing.T) {
	cfg := Default()
	cfg.Search.MinPower, cfg.Search.MaxPower = 30, 10
	assert.ErrorContains(t, cfg.Validate(), "min_power")
	cfg.Search.MaxPower = 0
	assert.NoError(t, cfg.Validate())
}
