package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"
	"github.com/muesli/termenv"

	"github.com/lox/tourneyclock/internal/config"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command
type Globals struct {
	Config  string `short:"c" help:"Tournament config file (.hcl, .yaml)" default:"tourneyclock.hcl" type:"path" env:"TOURNEYCLOCK_CONFIG"`
	Debug   bool   `help:"Enable debug logging" env:"TOURNEYCLOCK_DEBUG"`
	NoColor bool   `help:"Disable colour output" env:"TOURNEYCLOCK_NO_COLOR"`
}

// Overrides are config values that can be set from the command line
type Overrides struct {
	BlindMinutes int `short:"m" help:"Minutes per blind level" env:"TOURNEYCLOCK_BLIND_MINUTES"`
	Stack        int `short:"s" help:"Starting stack" env:"TOURNEYCLOCK_STACK"`
	Players      int `short:"p" help:"Number of players" env:"TOURNEYCLOCK_PLAYERS"`
}

type CLI struct {
	Globals

	Version   kong.VersionFlag `short:"v" help:"Show version"`
	Run       RunCmd           `cmd:"" default:"withargs" help:"Run the tournament clock (default)"`
	Structure StructureCmd     `cmd:"" help:"Print the blind structure and chip plan"`
	Chips     ChipsCmd         `cmd:"" help:"Break an amount down into chips"`
	Tones     TonesCmd         `cmd:"" help:"Write the notification sounds as WAV files"`
}

func main() {
	// A .env file is optional; real environment variables win
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "warning: failed to load .env: %v\n", err)
	}

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("tourneyclock"),
		kong.Description("Blind clock and chip planner for home poker tournaments"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
		kong.Bind(&cli.Globals),
	)
	if cli.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

// loadConfig reads the config file, applies command line overrides and
// validates the result
func (g *Globals) loadConfig(o Overrides) (*config.Config, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, err
	}
	if o.BlindMinutes != 0 {
		cfg.Tournament.BlindMinutes = o.BlindMinutes
	}
	if o.Stack != 0 {
		cfg.Tournament.StartingStack = o.Stack
	}
	if o.Players != 0 {
		cfg.Tournament.Players = o.Players
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
