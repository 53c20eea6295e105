package main

import (
	"fmt"
	"io"
	"os"

	"github.com/lox/tourneyclock/internal/chips"
	"github.com/lox/tourneyclock/internal/tui"
)

type ChipsCmd struct {
	Amount int `arg:"" help:"Amount to make up from chips"`
}

func (c *ChipsCmd) Run(g *Globals) error {
	return c.run(g, os.Stdout)
}

func (c *ChipsCmd) run(g *Globals, w io.Writer) error {
	if c.Amount < 0 {
		return fmt.Errorf("amount must not be negative, got %d", c.Amount)
	}
	cfg, err := g.loadConfig(Overrides{})
	if err != nil {
		return err
	}

	counts := chips.Counts(c.Amount, cfg.ChipSet())
	made := 0
	for _, n := range counts {
		made += n.Count * n.Denomination.Value
		if _, err := fmt.Fprintf(w, "%3d × %5d  %s\n", n.Count, n.Denomination.Value, n.Denomination.Name); err != nil {
			return err
		}
	}
	if made != c.Amount {
		_, err = fmt.Fprintln(w, tui.WarningStyle.Render(fmt.Sprintf("%d cannot be made exactly, %d left over", c.Amount, c.Amount-made)))
	}
	return err
}
