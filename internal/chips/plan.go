package chips

import (
	"fmt"
	"slices"
	"sort"
)

const (
	// DefaultPerColor is how many chips of each colour the case holds
	DefaultPerColor = 100

	// lowThreshold marks a colour as running low once fewer chips remain
	lowThreshold = 20

	fallbackStack = 10000
)

// Distribution is what each player starts with for one starting stack,
// keyed by face value
type Distribution struct {
	Stack  int
	Counts map[int]int
}

// Value returns the chip value handed to one player
func (d Distribution) Value() int {
	total := 0
	for value, n := range d.Counts {
		total += value * n
	}
	return total
}

// Distributions indexes starting stacks to their chip distribution
type Distributions map[int]Distribution

// DefaultDistributions returns the stacks offered for the home game
func DefaultDistributions() Distributions {
	rows := map[int][5]int{
		// white, red, green, blue, black
		5000:  {8, 8, 8, 0, 0},
		10000: {8, 8, 4, 2, 1},
		15000: {8, 8, 8, 5, 1},
		20000: {8, 8, 8, 5, 2},
		25000: {8, 8, 8, 10, 2},
		30000: {8, 8, 8, 15, 2},
		50000: {8, 8, 8, 10, 7},
	}
	values := [5]int{25, 100, 500, 1000, 5000}

	out := make(Distributions, len(rows))
	for stack, counts := range rows {
		d := Distribution{Stack: stack, Counts: make(map[int]int, len(values))}
		for i, v := range values {
			d.Counts[v] = counts[i]
		}
		out[stack] = d
	}
	return out
}

// Stacks returns the available starting stacks in ascending order
func (ds Distributions) Stacks() []int {
	stacks := make([]int, 0, len(ds))
	for s := range ds {
		stacks = append(stacks, s)
	}
	sort.Ints(stacks)
	return stacks
}

// For returns the distribution for stack, falling back to the 10000 row
// (or the smallest configured stack) when the stack is unknown
func (ds Distributions) For(stack int) Distribution {
	if d, ok := ds[stack]; ok {
		return d
	}
	if d, ok := ds[fallbackStack]; ok {
		return d
	}
	if stacks := ds.Stacks(); len(stacks) > 0 {
		return ds[stacks[0]]
	}
	return Distribution{Stack: stack}
}

// NextStack cycles to the stack after current
func (ds Distributions) NextStack(current int) int {
	stacks := ds.Stacks()
	if len(stacks) == 0 {
		return current
	}
	i := slices.Index(stacks, current)
	return stacks[(i+1)%len(stacks)]
}

// Status of one colour in the chip case
type Status int

const (
	StatusOK Status = iota
	StatusLow
	StatusShort
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusLow:
		return "low"
	case StatusShort:
		return "short"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// MarshalText renders the status by name in YAML and JSON output
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// PlanRow is one colour of the chip plan
type PlanRow struct {
	Denomination Denomination `json:"denomination" yaml:"denomination"`
	PerPlayer    int          `json:"per_player" yaml:"per_player"`
	PlayerValue  int          `json:"player_value" yaml:"player_value"`
	Needed       int          `json:"needed" yaml:"needed"`
	Remaining    int          `json:"remaining" yaml:"remaining"`
	Status       Status       `json:"status" yaml:"status"`
}

// Plan is the chip split for a given number of players, smallest chip first
type Plan struct {
	Stack   int       `json:"stack" yaml:"stack"`
	Players int       `json:"players" yaml:"players"`
	Rows    []PlanRow `json:"rows" yaml:"rows"`
}

// NewPlan works out how many chips of each colour the table needs and what
// is left in a case holding perColor chips of each colour
func NewPlan(set Set, dist Distribution, players, perColor int) Plan {
	p := Plan{Stack: dist.Stack, Players: players}
	for i := len(set) - 1; i >= 0; i-- {
		d := set[i]
		n := dist.Counts[d.Value]
		row := PlanRow{
			Denomination: d,
			PerPlayer:    n,
			PlayerValue:  n * d.Value,
			Needed:       n * players,
		}
		row.Remaining = perColor - row.Needed
		switch {
		case row.Remaining < 0:
			row.Status = StatusShort
		case row.Remaining < lowThreshold:
			row.Status = StatusLow
		}
		p.Rows = append(p.Rows, row)
	}
	return p
}

// Short reports whether any colour runs out
func (p Plan) Short() bool {
	for _, r := range p.Rows {
		if r.Status == StatusShort {
			return true
		}
	}
	return false
}

// PlayerValue is the total chip value handed to each player
func (p Plan) PlayerValue() int {
	total := 0
	for _, r := range p.Rows {
		total += r.PlayerValue
	}
	return total
}

// InPlay is the chip value on the table across all players
func (p Plan) InPlay() int {
	return p.PlayerValue() * p.Players
}
