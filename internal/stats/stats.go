// Package stats derives per-level figures from the blinds and the starting
// stack. Nothing here is stored; callers recompute on every render.
package stats

import "github.com/lox/tourneyclock/internal/schedule"

// LowStackBigBlinds is the stack depth below which a level is flagged
const LowStackBigBlinds = 20

// Stats are the derived figures for a blind level
type Stats struct {
	BigBlinds int `json:"big_blinds" yaml:"big_blinds"`
	MinPot    int `json:"min_pot" yaml:"min_pot"`
	MinRaise  int `json:"min_raise" yaml:"min_raise"`
}

// LowStack reports whether a starting stack is under twenty big blinds
func (s Stats) LowStack() bool {
	return s.BigBlinds < LowStackBigBlinds
}

// Project computes the stats for level with the given starting stack.
// Breaks have no blinds, so ok is false for them.
func Project(level schedule.Level, startingStack int) (s Stats, ok bool) {
	if level.IsBreak() {
		return Stats{}, false
	}
	return Stats{
		BigBlinds: startingStack / level.BigBlind,
		MinPot:    level.SmallBlind + level.BigBlind,
		MinRaise:  level.BigBlind * 2,
	}, true
}

// Row pairs a level with its projected stats and duration
type Row struct {
	Index   int            `json:"index" yaml:"index"`
	Level   schedule.Level `json:"level" yaml:"level"`
	Minutes int            `json:"minutes" yaml:"minutes"`
	Stats   *Stats         `json:"stats,omitempty" yaml:"stats,omitempty"`
	Low     bool           `json:"low_stack,omitempty" yaml:"low_stack,omitempty"`
}

// ProjectAll builds one row per level of the schedule
func ProjectAll(s *schedule.Schedule, startingStack, blindMinutes int) []Row {
	rows := make([]Row, 0, s.Len())
	for i, l := range s.Levels() {
		row := Row{
			Index:   i,
			Level:   l,
			Minutes: schedule.Seconds(l, blindMinutes) / 60,
		}
		if st, ok := Project(l, startingStack); ok {
			row.Stats = &st
			row.Low = st.LowStack()
		}
		rows = append(rows, row)
	}
	return rows
}
