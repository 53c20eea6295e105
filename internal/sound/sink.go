package sound

import (
	"context"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/log"
)

// Sink announces clock events by playing the chime and the alarm. Playback
// runs in the background; failures are logged and otherwise ignored.
type Sink struct {
	player Player
	logger *log.Logger
	chime  []byte
	alarm  []byte

	mu     sync.Mutex
	ctx    context.Context
	cancel context.CancelFunc
	closed bool
	wg     sync.WaitGroup
}

// NewSink renders both clips up front and plays them through player
func NewSink(player Player, logger *log.Logger) *Sink {
	ctx, cancel := context.WithCancel(context.Background())
	return &Sink{
		player: player,
		logger: logger.WithPrefix("sound"),
		chime:  Clip(Chime()),
		alarm:  Clip(Alarm()),
		ctx:    ctx,
		cancel: cancel,
	}
}

// NewHostSink uses the first audio player found on the host, falling back
// to the terminal bell
func NewHostSink(logger *log.Logger) *Sink {
	var player Player
	if p, err := LookupPlayer(); err == nil {
		logger.Debug("Using audio player", "path", p.Path)
		player = p
	} else {
		logger.Info("No audio player found, using the terminal bell")
		player = BellPlayer{Out: os.Stderr}
	}
	return NewSink(player, logger)
}

func (s *Sink) AnnounceLevelChange() {
	s.play("level-change", s.chime)
}

func (s *Sink) AnnounceExpiry() {
	s.play("timer-expired", s.alarm)
}

func (s *Sink) play(name string, clip []byte) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	ctx := s.ctx
	s.wg.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				s.logger.Error("Audio playback panicked", "clip", name, "panic", r)
			}
		}()
		if err := s.player.Play(ctx, clip); err != nil && ctx.Err() == nil {
			s.logger.Warn("Audio playback failed", "clip", name, "error", err)
		}
	}()
}

// Release stops any clip that is still playing. The sink stays usable.
func (s *Sink) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancel()
	if !s.closed {
		s.ctx, s.cancel = context.WithCancel(context.Background())
	}
}

// Close stops playback and waits for the players to exit
func (s *Sink) Close() error {
	s.mu.Lock()
	s.closed = true
	s.cancel()
	s.mu.Unlock()

	s.wg.Wait()
	return nil
}

var _ io.Closer = (*Sink)(nil)
