package clock

import (
	"fmt"

	"github.com/lox/tourneyclock/internal/schedule"
)

// LowTimeSeconds is the remaining time under which a running clock warns
const LowTimeSeconds = 60

// Phase is the coarse state of the clock
type Phase int

const (
	Idle Phase = iota
	Ready
	Running
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Ready:
		return "ready"
	case Running:
		return "running"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Snapshot is a point-in-time copy of the clock state. Everything derived
// from it is computed on demand.
type Snapshot struct {
	SessionID    string
	Phase        Phase
	Index        int
	Levels       int
	Level        schedule.Level
	NextLevel    schedule.Level
	HasNext      bool
	Remaining    int // seconds
	Duration     int // seconds, full length of the current level
	BlindMinutes int
}

// Open reports whether a session is in progress
func (s Snapshot) Open() bool {
	return s.Phase != Idle
}

// Running reports whether the countdown is ticking
func (s Snapshot) Running() bool {
	return s.Phase == Running
}

// CanRetreat reports whether there is a previous level
func (s Snapshot) CanRetreat() bool {
	return s.Open() && s.Index > 0
}

// CanAdvance reports whether there is a next level
func (s Snapshot) CanAdvance() bool {
	return s.Open() && s.Index < s.Levels-1
}

// CanToggle reports whether start/pause has any effect
func (s Snapshot) CanToggle() bool {
	return s.Open() && s.Remaining > 0
}

// LowTime is set in the final minute of a running level
func (s Snapshot) LowTime() bool {
	return s.Running() && s.Remaining < LowTimeSeconds
}

// Expired reports whether the level has run down to zero
func (s Snapshot) Expired() bool {
	return s.Open() && s.Remaining == 0
}

// Progress is the elapsed fraction of the current level, from 0 to 1
func (s Snapshot) Progress() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.Duration-s.Remaining) / float64(s.Duration)
}

// Clock formats the remaining time as MM:SS
func (s Snapshot) Clock() string {
	return FormatSeconds(s.Remaining)
}

// FormatSeconds formats seconds as zero-padded MM:SS. Minutes are not
// capped at 59.
func FormatSeconds(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
