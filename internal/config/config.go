package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"gopkg.in/yaml.v3"

	"github.com/lox/tourneyclock/internal/chips"
	"github.com/lox/tourneyclock/internal/schedule"
)

const (
	MinPlayers = 2
	MaxPlayers = 20

	defaultName         = "Home Game"
	defaultBlindMinutes = 15
	defaultStack        = 10000
	defaultPlayers      = 4
)

// DurationOptions are the blind durations the overview cycles through
var DurationOptions = []int{5, 10, 15, 20, 25, 30}

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid tournament config")

// Config is the complete tournament configuration
type Config struct {
	Tournament    *TournamentSettings  `hcl:"tournament,block" yaml:"tournament"`
	Levels        []LevelConfig        `hcl:"level,block" yaml:"levels"`
	Chips         []ChipConfig         `hcl:"chip,block" yaml:"chips"`
	Distributions []DistributionConfig `hcl:"distribution,block" yaml:"distributions"`
	Inventory     *InventoryConfig     `hcl:"inventory,block" yaml:"inventory"`
}

// TournamentSettings are the three numbers the clock is run with
type TournamentSettings struct {
	Name          string `hcl:"name,optional" yaml:"name"`
	BlindMinutes  int    `hcl:"blind_minutes,optional" yaml:"blind_minutes"`
	StartingStack int    `hcl:"starting_stack,optional" yaml:"starting_stack"`
	Players       int    `hcl:"players,optional" yaml:"players"`
}

// LevelConfig is a blind level or a break, in play order
type LevelConfig struct {
	Kind       string `hcl:"kind,label" yaml:"kind"`
	Number     int    `hcl:"number,optional" yaml:"number,omitempty"`
	SmallBlind int    `hcl:"small_blind,optional" yaml:"small_blind,omitempty"`
	BigBlind   int    `hcl:"big_blind,optional" yaml:"big_blind,omitempty"`
	Label      string `hcl:"label,optional" yaml:"label,omitempty"`
	Note       string `hcl:"note,optional" yaml:"note,omitempty"`
	Minutes    int    `hcl:"minutes,optional" yaml:"minutes,omitempty"`
	// Duration is an alternative to Minutes, e.g. "15 min"
	Duration string `hcl:"duration,optional" yaml:"duration,omitempty"`
}

// ChipConfig is one denomination of the chip set
type ChipConfig struct {
	Name  string `hcl:"name,label" yaml:"name"`
	Value int    `hcl:"value" yaml:"value"`
	Color string `hcl:"color,optional" yaml:"color,omitempty"`
}

// DistributionConfig lists per-player chip counts for a starting stack,
// smallest denomination first
type DistributionConfig struct {
	Stack  int   `hcl:"stack" yaml:"stack"`
	Counts []int `hcl:"counts" yaml:"counts"`
}

// InventoryConfig describes the chip case
type InventoryConfig struct {
	PerColor int `hcl:"per_color,optional" yaml:"per_color"`
}

// Default returns the built-in home-game configuration
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads configuration from an HCL or YAML file. A missing file yields
// the defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	var (
		cfg Config
		err error
	)
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		err = loadYAML(filename, &cfg)
	default:
		err = loadHCL(filename, &cfg)
	}
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func loadHCL(filename string, cfg *Config) error {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	diags = gohcl.DecodeBody(file.Body, nil, cfg)
	if diags.HasErrors() {
		return fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}
	return nil
}

func loadYAML(filename string, cfg *Config) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", filename, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to decode YAML: %w", err)
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Tournament == nil {
		c.Tournament = &TournamentSettings{}
	}
	if c.Tournament.Name == "" {
		c.Tournament.Name = defaultName
	}
	if c.Tournament.BlindMinutes == 0 {
		c.Tournament.BlindMinutes = defaultBlindMinutes
	}
	if c.Tournament.StartingStack == 0 {
		c.Tournament.StartingStack = defaultStack
	}
	if c.Tournament.Players == 0 {
		c.Tournament.Players = defaultPlayers
	}

	if len(c.Levels) == 0 {
		c.Levels = levelConfigs(schedule.Default())
	}
	if len(c.Chips) == 0 {
		for _, d := range chips.DefaultSet() {
			c.Chips = append(c.Chips, ChipConfig{Name: d.Name, Value: d.Value, Color: d.Color})
		}
	}
	if len(c.Distributions) == 0 && sameValues(c.ChipSet(), chips.DefaultSet()) {
		ds := chips.DefaultDistributions()
		set := chips.DefaultSet()
		for _, stack := range ds.Stacks() {
			dc := DistributionConfig{Stack: stack}
			for i := len(set) - 1; i >= 0; i-- {
				dc.Counts = append(dc.Counts, ds[stack].Counts[set[i].Value])
			}
			c.Distributions = append(c.Distributions, dc)
		}
	}
	if c.Inventory == nil {
		c.Inventory = &InventoryConfig{}
	}
	if c.Inventory.PerColor == 0 {
		c.Inventory.PerColor = chips.DefaultPerColor
	}
}

func levelConfigs(s *schedule.Schedule) []LevelConfig {
	var out []LevelConfig
	for _, l := range s.Levels() {
		if l.IsBreak() {
			out = append(out, LevelConfig{Kind: "break", Label: l.Label, Note: l.Note, Minutes: l.FixedMinutes})
			continue
		}
		out = append(out, LevelConfig{Kind: "blind", Number: l.Number, SmallBlind: l.SmallBlind, BigBlind: l.BigBlind})
	}
	return out
}

func sameValues(a, b chips.Set) bool {
	return slices.EqualFunc(a, b, func(x, y chips.Denomination) bool { return x.Value == y.Value })
}

// Validate validates the configuration
func (c *Config) Validate() error {
	t := c.Tournament
	if t.BlindMinutes <= 0 {
		return fmt.Errorf("%w: blind_minutes must be positive, got %d", ErrInvalid, t.BlindMinutes)
	}
	if t.StartingStack <= 0 {
		return fmt.Errorf("%w: starting_stack must be positive, got %d", ErrInvalid, t.StartingStack)
	}
	if t.Players < MinPlayers || t.Players > MaxPlayers {
		return fmt.Errorf("%w: players must be between %d and %d, got %d", ErrInvalid, MinPlayers, MaxPlayers, t.Players)
	}

	sched, err := c.Schedule()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if err := sched.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	set := c.ChipSet()
	if err := set.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	for _, d := range c.Distributions {
		if len(d.Counts) != len(set) {
			return fmt.Errorf("%w: distribution for stack %d has %d counts, want %d", ErrInvalid, d.Stack, len(d.Counts), len(set))
		}
		for _, n := range d.Counts {
			if n < 0 {
				return fmt.Errorf("%w: distribution for stack %d has a negative count", ErrInvalid, d.Stack)
			}
		}
	}
	if c.Inventory.PerColor < 0 {
		return fmt.Errorf("%w: inventory per_color must not be negative", ErrInvalid)
	}
	return nil
}

// Schedule builds the level schedule. Blind levels without a number are
// numbered in play order.
func (c *Config) Schedule() (*schedule.Schedule, error) {
	levels := make([]schedule.Level, 0, len(c.Levels))
	blinds := 0
	for i, lc := range c.Levels {
		switch strings.ToLower(lc.Kind) {
		case "blind":
			blinds++
			number := lc.Number
			if number == 0 {
				number = blinds
			}
			levels = append(levels, schedule.NewBlind(number, lc.SmallBlind, lc.BigBlind))
		case "break":
			minutes := lc.Minutes
			if minutes == 0 && lc.Duration != "" {
				m, err := schedule.ParseBreakMinutes(lc.Duration)
				if err != nil {
					return nil, fmt.Errorf("level %d: %w", i+1, err)
				}
				minutes = m
			}
			label := lc.Label
			if label == "" {
				label = "BREAK"
			}
			levels = append(levels, schedule.NewBreak(label, lc.Note, minutes))
		default:
			return nil, fmt.Errorf("level %d: unknown kind %q (want blind or break)", i+1, lc.Kind)
		}
	}
	return schedule.New(levels...)
}

// ChipSet returns the configured denominations, largest first
func (c *Config) ChipSet() chips.Set {
	set := make(chips.Set, 0, len(c.Chips))
	for _, cc := range c.Chips {
		set = append(set, chips.Denomination{Value: cc.Value, Name: cc.Name, Color: cc.Color})
	}
	slices.SortStableFunc(set, func(a, b chips.Denomination) int { return b.Value - a.Value })
	return set
}

// ChipDistributions returns the per-stack chip distributions
func (c *Config) ChipDistributions() chips.Distributions {
	set := c.ChipSet()
	out := make(chips.Distributions, len(c.Distributions))
	for _, dc := range c.Distributions {
		d := chips.Distribution{Stack: dc.Stack, Counts: make(map[int]int, len(set))}
		for i, n := range dc.Counts {
			if i >= len(set) {
				break
			}
			d.Counts[set[len(set)-1-i].Value] = n
		}
		out[dc.Stack] = d
	}
	return out
}

// NextDuration cycles to the blind duration after current
func NextDuration(current int) int {
	i := slices.Index(DurationOptions, current)
	return DurationOptions[(i+1)%len(DurationOptions)]
}

// ClampPlayers keeps a player count within the supported range
func ClampPlayers(n int) int {
	return max(MinPlayers, min(MaxPlayers, n))
}
