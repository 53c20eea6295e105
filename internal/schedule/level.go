// Package schedule holds the ordered list of blind levels and breaks that a
// tournament clock plays through.
package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Kind discriminates blind levels from breaks
type Kind int

const (
	Blind Kind = iota
	Break
)

func (k Kind) String() string {
	switch k {
	case Blind:
		return "blind"
	case Break:
		return "break"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// MarshalText lets YAML and JSON output use the kind name
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Level is one entry of the schedule
type Level struct {
	Kind Kind `json:"kind" yaml:"kind"`

	// Blind levels
	Number     int `json:"number,omitempty" yaml:"number,omitempty"`
	SmallBlind int `json:"small_blind,omitempty" yaml:"small_blind,omitempty"`
	BigBlind   int `json:"big_blind,omitempty" yaml:"big_blind,omitempty"`

	// Breaks
	Label        string `json:"label,omitempty" yaml:"label,omitempty"`
	Note         string `json:"note,omitempty" yaml:"note,omitempty"`
	FixedMinutes int    `json:"minutes,omitempty" yaml:"minutes,omitempty"`
}

// NewBlind creates a blind level
func NewBlind(number, smallBlind, bigBlind int) Level {
	return Level{Kind: Blind, Number: number, SmallBlind: smallBlind, BigBlind: bigBlind}
}

// NewBreak creates a break that lasts minutes regardless of the blind duration
func NewBreak(label, note string, minutes int) Level {
	return Level{Kind: Break, Label: label, Note: note, FixedMinutes: minutes}
}

// IsBreak reports whether the level is a break
func (l Level) IsBreak() bool {
	return l.Kind == Break
}

// Title is the short heading shown for the level
func (l Level) Title() string {
	if l.IsBreak() {
		if l.Label != "" {
			return l.Label
		}
		return "BREAK"
	}
	return fmt.Sprintf("LEVEL %d", l.Number)
}

// Blinds formats the blinds as "sb / bb"
func (l Level) Blinds() string {
	if l.IsBreak() {
		return ""
	}
	return fmt.Sprintf("%d / %d", l.SmallBlind, l.BigBlind)
}

func (l Level) String() string {
	if l.IsBreak() {
		return fmt.Sprintf("%s (%d min)", l.Title(), l.FixedMinutes)
	}
	return fmt.Sprintf("%s %s", l.Title(), l.Blinds())
}

// Duration resolves how long the level lasts. Breaks carry their own
// duration; blind levels use the global blind duration.
func Duration(l Level, blindMinutes int) time.Duration {
	if l.IsBreak() {
		return time.Duration(l.FixedMinutes) * time.Minute
	}
	return time.Duration(blindMinutes) * time.Minute
}

// Seconds is Duration in whole seconds
func Seconds(l Level, blindMinutes int) int {
	return int(Duration(l, blindMinutes) / time.Second)
}

// ParseBreakMinutes parses a break duration such as "15 min", "15m",
// "15 minutes" or "15"
func ParseBreakMinutes(s string) (int, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return 0, fmt.Errorf("empty break duration")
	}

	if d, err := time.ParseDuration(s); err == nil {
		if d <= 0 || d%time.Minute != 0 {
			return 0, fmt.Errorf("break duration %q must be a positive number of minutes", s)
		}
		return int(d / time.Minute), nil
	}

	fields := strings.Fields(s)
	switch {
	case len(fields) == 1:
	case len(fields) == 2 && (fields[1] == "min" || fields[1] == "mins" || fields[1] == "minute" || fields[1] == "minutes"):
	default:
		return 0, fmt.Errorf("invalid break duration %q", s)
	}

	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, fmt.Errorf("invalid break duration %q: %w", s, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("break duration %q must be positive", s)
	}
	return n, nil
}
