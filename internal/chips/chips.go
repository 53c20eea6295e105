// Package chips models the physical chip set: denominations, the greedy
// breakdown used to visualise blinds and the starting-stack plan.
package chips

import (
	"errors"
	"fmt"
)

// ErrNotDescending is returned when a set is not strictly descending by value
var ErrNotDescending = errors.New("denominations must be strictly descending")

// Denomination is a chip of fixed face value
type Denomination struct {
	Value int    `json:"value" yaml:"value"`
	Name  string `json:"name" yaml:"name"`
	Color string `json:"color,omitempty" yaml:"color,omitempty"` // hex, used by the renderers
}

func (d Denomination) String() string {
	return fmt.Sprintf("%d", d.Value)
}

// Set is an ordered list of denominations, largest first
type Set []Denomination

// DefaultSet returns the home-game chip set
func DefaultSet() Set {
	return Set{
		{Value: 5000, Name: "Black", Color: "#1F2937"},
		{Value: 1000, Name: "Blue", Color: "#2563EB"},
		{Value: 500, Name: "Green", Color: "#16A34A"},
		{Value: 100, Name: "Red", Color: "#DC2626"},
		{Value: 25, Name: "White", Color: "#E5E7EB"},
	}
}

// Validate checks that every value is positive and the set is strictly descending
func (s Set) Validate() error {
	if len(s) == 0 {
		return errors.New("chip set is empty")
	}
	for i, d := range s {
		if d.Value <= 0 {
			return fmt.Errorf("chip %q: value must be positive, got %d", d.Name, d.Value)
		}
		if i > 0 && d.Value >= s[i-1].Value {
			return fmt.Errorf("%w: %d follows %d", ErrNotDescending, d.Value, s[i-1].Value)
		}
	}
	return nil
}

// Find returns the denomination with the given face value
func (s Set) Find(value int) (Denomination, bool) {
	for _, d := range s {
		if d.Value == value {
			return d, true
		}
	}
	return Denomination{}, false
}

// Breakdown splits amount into the fewest chips of the set, largest first.
// One entry is returned per physical chip. Any remainder smaller than the
// smallest denomination is dropped.
func Breakdown(amount int, set Set) []Denomination {
	var out []Denomination
	for _, c := range Counts(amount, set) {
		for range c.Count {
			out = append(out, c.Denomination)
		}
	}
	return out
}

// Count is a run of identical chips in a breakdown
type Count struct {
	Denomination Denomination
	Count        int
}

// Counts is Breakdown grouped by denomination. Denominations that are not
// used are omitted.
func Counts(amount int, set Set) []Count {
	var out []Count
	remaining := amount
	for _, d := range set {
		if remaining <= 0 {
			break
		}
		n := remaining / d.Value
		if n == 0 {
			continue
		}
		out = append(out, Count{Denomination: d, Count: n})
		remaining %= d.Value
	}
	return out
}
