package schedule

import (
	"errors"
	"fmt"
)

// ErrEmpty is returned when a schedule has no levels
var ErrEmpty = errors.New("schedule must contain at least one level")

// Schedule is an immutable, ordered list of levels in play order
type Schedule struct {
	levels []Level
}

// New creates a schedule from levels. The slice is copied.
func New(levels ...Level) (*Schedule, error) {
	if len(levels) == 0 {
		return nil, ErrEmpty
	}
	return &Schedule{levels: append([]Level(nil), levels...)}, nil
}

// MustNew is New for static schedules; it panics on an empty list
func MustNew(levels ...Level) *Schedule {
	s, err := New(levels...)
	if err != nil {
		panic(err)
	}
	return s
}

// Default is the home-game structure: ten blind levels with a colour-up
// break after level five
func Default() *Schedule {
	return MustNew(
		NewBlind(1, 50, 100),
		NewBlind(2, 75, 150),
		NewBlind(3, 100, 200),
		NewBlind(4, 150, 300),
		NewBlind(5, 200, 400),
		NewBreak("BREAK", "Colour up (25 & 100 out)", 15),
		NewBlind(6, 300, 600),
		NewBlind(7, 500, 1000),
		NewBlind(8, 800, 1600),
		NewBlind(9, 1000, 2000),
		NewBlind(10, 1500, 3000),
	)
}

// Len returns the number of levels
func (s *Schedule) Len() int {
	return len(s.levels)
}

// At returns the level at index i
func (s *Schedule) At(i int) Level {
	return s.levels[i]
}

// Next returns the level after index i, if any
func (s *Schedule) Next(i int) (Level, bool) {
	if i+1 >= len(s.levels) || i+1 < 0 {
		return Level{}, false
	}
	return s.levels[i+1], true
}

// Levels returns a copy of the levels
func (s *Schedule) Levels() []Level {
	return append([]Level(nil), s.levels...)
}

// Validate checks that every level is well formed
func (s *Schedule) Validate() error {
	if len(s.levels) == 0 {
		return ErrEmpty
	}
	for i, l := range s.levels {
		switch l.Kind {
		case Blind:
			if l.SmallBlind <= 0 || l.BigBlind <= 0 {
				return fmt.Errorf("level %d: blinds must be positive, got %d/%d", i+1, l.SmallBlind, l.BigBlind)
			}
			if l.BigBlind < l.SmallBlind {
				return fmt.Errorf("level %d: big blind %d is below small blind %d", i+1, l.BigBlind, l.SmallBlind)
			}
		case Break:
			if l.FixedMinutes <= 0 {
				return fmt.Errorf("level %d: break %q needs a positive duration", i+1, l.Label)
			}
		default:
			return fmt.Errorf("level %d: unknown kind %v", i+1, l.Kind)
		}
	}
	return nil
}
