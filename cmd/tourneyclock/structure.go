package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/lox/tourneyclock/internal/chips"
	"github.com/lox/tourneyclock/internal/stats"
	"github.com/lox/tourneyclock/internal/tui"
)

type StructureCmd struct {
	Overrides

	Format string `short:"f" help:"Output format" enum:"table,yaml,json" default:"table"`
}

// structureReport is the machine readable form of the overview
type structureReport struct {
	Name         string      `json:"name" yaml:"name"`
	BlindMinutes int         `json:"blind_minutes" yaml:"blind_minutes"`
	Stack        int         `json:"starting_stack" yaml:"starting_stack"`
	Players      int         `json:"players" yaml:"players"`
	Levels       []stats.Row `json:"levels" yaml:"levels"`
	Chips        chips.Plan  `json:"chips" yaml:"chips"`
}

func (c *StructureCmd) Run(g *Globals) error {
	return c.run(g, os.Stdout)
}

func (c *StructureCmd) run(g *Globals, w io.Writer) error {
	cfg, err := g.loadConfig(c.Overrides)
	if err != nil {
		return err
	}
	s, err := tui.SettingsFromConfig(cfg)
	if err != nil {
		return err
	}

	report := structureReport{
		Name:         s.Name,
		BlindMinutes: s.BlindMinutes,
		Stack:        s.Stack,
		Players:      s.Players,
		Levels:       stats.ProjectAll(s.Schedule, s.Stack, s.BlindMinutes),
		Chips:        chips.NewPlan(s.Chips, s.Distributions.For(s.Stack), s.Players, s.PerColor),
	}

	switch c.Format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	default:
		_, err := fmt.Fprintln(w, lipgloss.JoinVertical(lipgloss.Left,
			tui.HeaderStyle.Render(report.Name),
			tui.InfoStyle.Render(fmt.Sprintf("%d players · %d stack · %d min blinds",
				report.Players, report.Stack, report.BlindMinutes)),
			tui.StructureTable(report.Levels, -1).String(),
			tui.PlanTable(report.Chips).String(),
			fmt.Sprintf("%d per player · %d in play", report.Chips.PlayerValue(), report.Chips.InPlay()),
		))
		return err
	}
}
