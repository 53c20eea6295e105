package sound

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// ErrNoPlayer is returned when no audio player command is installed
var ErrNoPlayer = errors.New("no audio player found")

// Player plays a WAV clip, returning once playback is done or ctx ends
type Player interface {
	Play(ctx context.Context, wav []byte) error
}

// CommandPlayer plays clips with an external program such as aplay
type CommandPlayer struct {
	Path string
	Args []string
	// Stdin pipes the clip to the program; otherwise it gets a temp file path
	Stdin bool
}

// candidates are tried in order by LookupPlayer
var candidates = []struct {
	name  string
	args  []string
	stdin bool
}{
	{"paplay", nil, true},
	{"aplay", []string{"-q", "-"}, true},
	{"afplay", nil, false},
}

// LookupPlayer finds the first supported player program on PATH
func LookupPlayer() (*CommandPlayer, error) {
	for _, c := range candidates {
		if path, err := exec.LookPath(c.name); err == nil {
			return &CommandPlayer{Path: path, Args: c.args, Stdin: c.stdin}, nil
		}
	}
	return nil, ErrNoPlayer
}

// Play implements Player
func (p *CommandPlayer) Play(ctx context.Context, wav []byte) error {
	args := append([]string(nil), p.Args...)

	var stdin io.Reader
	if p.Stdin {
		stdin = bytes.NewReader(wav)
	} else {
		f, err := os.CreateTemp("", "tourneyclock-*.wav")
		if err != nil {
			return fmt.Errorf("create temp clip: %w", err)
		}
		defer func() { _ = os.Remove(f.Name()) }()
		if _, err := f.Write(wav); err != nil {
			_ = f.Close()
			return fmt.Errorf("write temp clip: %w", err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("close temp clip: %w", err)
		}
		args = append(args, f.Name())
	}

	cmd := exec.CommandContext(ctx, p.Path, args...)
	cmd.Stdin = stdin
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s: %w: %s", p.Path, err, bytes.TrimSpace(out))
	}
	return nil
}

// BellPlayer rings the terminal bell instead of playing the clip
type BellPlayer struct {
	Out io.Writer
}

// Play implements Player
func (b BellPlayer) Play(_ context.Context, _ []byte) error {
	if _, err := io.WriteString(b.Out, "\a"); err != nil {
		return fmt.Errorf("ring bell: %w", err)
	}
	return nil
}
