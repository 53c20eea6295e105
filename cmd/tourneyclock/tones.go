package main

import (
	"fmt"
	"io"
	"os"

	"github.com/lox/tourneyclock/internal/sound"
)

type TonesCmd struct {
	Dir string `short:"d" help:"Directory to write the WAV files to" default:"." type:"path"`
}

func (c *TonesCmd) Run() error {
	return c.run(os.Stdout)
}

func (c *TonesCmd) run(w io.Writer) error {
	paths, err := sound.WriteClips(c.Dir)
	if err != nil {
		return err
	}
	for _, p := range paths {
		if _, err := fmt.Fprintln(w, p); err != nil {
			return err
		}
	}
	return nil
}
