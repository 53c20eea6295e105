package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/tourneyclock/internal/chips"
	"github.com/lox/tourneyclock/internal/schedule"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "Home Game", cfg.Tournament.Name)
	assert.Equal(t, 15, cfg.Tournament.BlindMinutes)
	assert.Equal(t, 10000, cfg.Tournament.StartingStack)
	assert.Equal(t, 4, cfg.Tournament.Players)
	assert.Equal(t, chips.DefaultPerColor, cfg.Inventory.PerColor)

	sched, err := cfg.Schedule()
	require.NoError(t, err)
	assert.Equal(t, schedule.Default().Levels(), sched.Levels())

	assert.Equal(t, chips.DefaultSet(), cfg.ChipSet())
	assert.Equal(t, chips.DefaultDistributions(), cfg.ChipDistributions())
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadHCL(t *testing.T) {
	path := writeFile(t, "tourney.hcl", `
tournament {
  name           = "Friday Night"
  blind_minutes  = 20
  starting_stack = 20000
  players        = 8
}

level "blind" {
  small_blind = 50
  big_blind   = 100
}

level "blind" {
  small_blind = 100
  big_blind   = 200
}

level "break" {
  label    = "DINNER"
  note     = "Pizza"
  duration = "30 min"
}

level "blind" {
  small_blind = 200
  big_blind   = 400
}

inventory {
  per_color = 150
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "Friday Night", cfg.Tournament.Name)
	assert.Equal(t, 20, cfg.Tournament.BlindMinutes)
	assert.Equal(t, 20000, cfg.Tournament.StartingStack)
	assert.Equal(t, 8, cfg.Tournament.Players)
	assert.Equal(t, 150, cfg.Inventory.PerColor)

	sched, err := cfg.Schedule()
	require.NoError(t, err)
	assert.Equal(t, []schedule.Level{
		schedule.NewBlind(1, 50, 100),
		schedule.NewBlind(2, 100, 200),
		schedule.NewBreak("DINNER", "Pizza", 30),
		schedule.NewBlind(3, 200, 400),
	}, sched.Levels())

	// chips fall back to the home set
	assert.Equal(t, chips.DefaultSet(), cfg.ChipSet())
}

func TestLoadHCLCustomChips(t *testing.T) {
	path := writeFile(t, "tourney.hcl", `
chip "Red" {
  value = 5
  color = "#DC2626"
}

chip "Green" {
  value = 25
}

distribution {
  stack  = 500
  counts = [20, 16]
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	set := cfg.ChipSet()
	require.Len(t, set, 2)
	assert.Equal(t, 25, set[0].Value)
	assert.Equal(t, 5, set[1].Value)

	dists := cfg.ChipDistributions()
	require.Contains(t, dists, 500)
	assert.Equal(t, map[int]int{5: 20, 25: 16}, dists[500].Counts)
	assert.Equal(t, 500, dists[500].Value())
}

func TestLoadHCLParseError(t *testing.T) {
	path := writeFile(t, "broken.hcl", `tournament {`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse HCL file")
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "tourney.yaml", `
tournament:
  name: Sunday Deep Stack
  blind_minutes: 30
  players: 6
levels:
  - kind: blind
    small_blind: 25
    big_blind: 50
  - kind: break
    minutes: 10
  - kind: blind
    number: 7
    small_blind: 50
    big_blind: 100
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "Sunday Deep Stack", cfg.Tournament.Name)
	assert.Equal(t, 30, cfg.Tournament.BlindMinutes)
	assert.Equal(t, 10000, cfg.Tournament.StartingStack)
	assert.Equal(t, 6, cfg.Tournament.Players)

	sched, err := cfg.Schedule()
	require.NoError(t, err)
	assert.Equal(t, []schedule.Level{
		schedule.NewBlind(1, 25, 50),
		schedule.NewBreak("BREAK", "", 10),
		schedule.NewBlind(7, 50, 100),
	}, sched.Levels())
}

func TestLoadYAMLDecodeError(t *testing.T) {
	path := writeFile(t, "broken.yml", "tournament: [")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode YAML")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"too few players", func(c *Config) { c.Tournament.Players = 1 }, "players must be between"},
		{"too many players", func(c *Config) { c.Tournament.Players = 21 }, "players must be between"},
		{"negative minutes", func(c *Config) { c.Tournament.BlindMinutes = -5 }, "blind_minutes"},
		{"negative stack", func(c *Config) { c.Tournament.StartingStack = -1 }, "starting_stack"},
		{"unknown level kind", func(c *Config) { c.Levels[0].Kind = "ante" }, "unknown kind"},
		{"bad break duration", func(c *Config) {
			c.Levels = []LevelConfig{{Kind: "break", Duration: "soon"}}
		}, "level 1"},
		{"duplicate chip values", func(c *Config) {
			c.Chips = append(c.Chips, ChipConfig{Name: "Pink", Value: 100})
		}, "descending"},
		{"short distribution row", func(c *Config) {
			c.Distributions[0].Counts = []int{1, 2}
		}, "counts"},
		{"negative inventory", func(c *Config) { c.Inventory.PerColor = -1 }, "per_color"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.ErrorIs(t, err, ErrInvalid)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestNextDuration(t *testing.T) {
	assert.Equal(t, 20, NextDuration(15))
	assert.Equal(t, 5, NextDuration(30))
	// unknown values restart the cycle
	assert.Equal(t, 5, NextDuration(17))
}

func TestClampPlayers(t *testing.T) {
	assert.Equal(t, MinPlayers, ClampPlayers(0))
	assert.Equal(t, 9, ClampPlayers(9))
	assert.Equal(t, MaxPlayers, ClampPlayers(99))
}
