// Package clock runs the tournament countdown: the current level, the time
// left in it and whether it is ticking. Ticks come from a periodic task on a
// quartz clock which is started when the clock runs and cancelled on every
// transition out of the running state.
package clock

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/google/uuid"

	"github.com/lox/tourneyclock/internal/schedule"
)

// TickInterval is the length of one countdown step
const TickInterval = time.Second

var (
	// errStale stops a ticker that was superseded by a later transition
	errStale = errors.New("stale ticker")
	// errExpired stops the ticker once the level has run out
	errExpired = errors.New("level expired")
)

// Event is a notification raised by a transition
type Event int

const (
	EventNone Event = iota
	EventLevelChanged
	EventExpired
)

func (e Event) String() string {
	switch e {
	case EventNone:
		return "none"
	case EventLevelChanged:
		return "level-changed"
	case EventExpired:
		return "expired"
	default:
		return fmt.Sprintf("Event(%d)", int(e))
	}
}

// Option configures a Clock
type Option func(*Clock)

// WithClock sets the time source used to drive ticks
func WithClock(c quartz.Clock) Option {
	return func(cl *Clock) { cl.clock = c }
}

// WithSink sets where level changes and expiries are announced
func WithSink(s NotificationSink) Option {
	return func(cl *Clock) { cl.sink = s }
}

// WithLogger sets the logger
func WithLogger(l *log.Logger) Option {
	return func(cl *Clock) { cl.logger = l }
}

// WithListener registers fn to receive a snapshot after every state change.
// fn runs outside the clock's lock and must not block.
func WithListener(fn func(Snapshot)) Option {
	return func(cl *Clock) { cl.listener = fn }
}

// Clock is the tournament clock state machine. It is safe for concurrent
// use; the tick driver runs on its own goroutine.
type Clock struct {
	clock    quartz.Clock
	sink     NotificationSink
	logger   *log.Logger
	listener func(Snapshot)

	mu           sync.Mutex
	open         bool
	sessionID    string
	sched        *schedule.Schedule
	blindMinutes int
	index        int
	remaining    int
	running      bool

	// gen identifies the active ticker; ticks from older tickers are dropped
	gen        uint64
	stopTicker context.CancelFunc
	sessionLog *log.Logger
}

// New creates a closed clock
func New(opts ...Option) *Clock {
	c := &Clock{
		clock:  quartz.NewReal(),
		sink:   NopSink{},
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.WithPrefix("clock")
	c.sessionLog = c.logger
	return c
}

// Open starts a session on level 0 with the full duration, paused. Opening
// an already open clock starts over.
func (c *Clock) Open(sched *schedule.Schedule, blindMinutes int) {
	c.update(func() Event {
		c.stopTickerLocked()
		c.open = true
		c.sessionID = uuid.NewString()
		c.sched = sched
		c.blindMinutes = blindMinutes
		c.index = 0
		c.sessionLog = c.logger.With("session", c.sessionID)
		c.loadLevelLocked()

		c.sessionLog.Info("Clock opened",
			"levels", sched.Len(),
			"blindMinutes", blindMinutes,
			"remaining", c.remaining)
		return EventNone
	})
}

// SetBlindMinutes changes the duration of blind levels. While open, the
// current level restarts with its new full duration and the clock pauses;
// elapsed time is not carried over.
func (c *Clock) SetBlindMinutes(minutes int) {
	if minutes <= 0 {
		c.logger.Warn("Ignoring non-positive blind duration", "minutes", minutes)
		return
	}
	c.update(func() Event {
		c.blindMinutes = minutes
		if !c.open {
			return EventNone
		}
		c.loadLevelLocked()
		c.sessionLog.Info("Blind duration changed, level restarted", "blindMinutes", minutes, "remaining", c.remaining)
		return EventNone
	})
}

// ToggleRunning starts or pauses the countdown. It does nothing once the
// level has run out or when the clock is closed.
func (c *Clock) ToggleRunning() {
	c.update(func() Event {
		if !c.open || c.remaining == 0 {
			return EventNone
		}
		if c.running {
			c.running = false
			c.stopTickerLocked()
			c.sessionLog.Debug("Clock paused", "remaining", c.remaining)
		} else {
			c.running = true
			c.startTickerLocked()
			c.sessionLog.Debug("Clock started", "remaining", c.remaining)
		}
		return EventNone
	})
}

// Tick counts down one second. It only applies while running.
func (c *Clock) Tick() {
	c.update(func() Event {
		ev, _ := c.tickLocked()
		return ev
	})
}

// Advance moves to the next level, paused with the full duration. It is a
// no-op on the last level.
func (c *Clock) Advance() {
	c.update(func() Event {
		if !c.open || c.index >= c.sched.Len()-1 {
			return EventNone
		}
		c.index++
		c.loadLevelLocked()
		c.sessionLog.Info("Advanced level", "index", c.index, "level", c.sched.At(c.index))
		return EventLevelChanged
	})
}

// Retreat moves to the previous level, paused with the full duration. It is
// a no-op on the first level.
func (c *Clock) Retreat() {
	c.update(func() Event {
		if !c.open || c.index == 0 {
			return EventNone
		}
		c.index--
		c.loadLevelLocked()
		c.sessionLog.Info("Went back a level", "index", c.index, "level", c.sched.At(c.index))
		return EventLevelChanged
	})
}

// ResetLevel restarts the current level from its full duration, paused
func (c *Clock) ResetLevel() {
	c.update(func() Event {
		if !c.open {
			return EventNone
		}
		c.loadLevelLocked()
		c.sessionLog.Debug("Level reset", "index", c.index, "remaining", c.remaining)
		return EventNone
	})
}

// Close stops the ticker, releases the sink and discards the session
func (c *Clock) Close() {
	c.update(func() Event {
		c.stopTickerLocked()
		if c.open {
			c.sessionLog.Info("Clock closed", "index", c.index, "remaining", c.remaining)
		}
		c.open = false
		c.sessionID = ""
		c.sched = nil
		c.index = 0
		c.remaining = 0
		c.running = false
		c.sessionLog = c.logger
		return EventNone
	})

	if r, ok := c.sink.(Releaser); ok {
		r.Release()
	}
}

// Snapshot returns the current state
func (c *Clock) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// update applies fn under the lock, then announces the resulting event and
// publishes a snapshot once the lock is released
func (c *Clock) update(fn func() Event) {
	c.mu.Lock()
	ev := fn()
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.announce(ev)
	if c.listener != nil {
		c.listener(snap)
	}
}

func (c *Clock) announce(ev Event) {
	if ev == EventNone {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("Notification failed", "event", ev, "panic", r)
		}
	}()
	switch ev {
	case EventLevelChanged:
		c.sink.AnnounceLevelChange()
	case EventExpired:
		c.sink.AnnounceExpiry()
	}
}

// loadLevelLocked resets the remaining time to the current level's full
// duration and pauses
func (c *Clock) loadLevelLocked() {
	c.running = false
	c.stopTickerLocked()
	c.remaining = schedule.Seconds(c.sched.At(c.index), c.blindMinutes)
}

func (c *Clock) tickLocked() (Event, error) {
	if !c.open || !c.running || c.remaining <= 0 {
		return EventNone, errStale
	}
	c.remaining--
	if c.remaining > 0 {
		return EventNone, nil
	}
	c.running = false
	c.stopTickerLocked()
	c.sessionLog.Info("Level expired", "index", c.index)
	return EventExpired, errExpired
}

func (c *Clock) onTick(gen uint64) error {
	var err error
	c.update(func() Event {
		if gen != c.gen {
			err = errStale
			return EventNone
		}
		var ev Event
		ev, err = c.tickLocked()
		return ev
	})
	return err
}

func (c *Clock) startTickerLocked() {
	c.stopTickerLocked()
	gen := c.gen
	ctx, cancel := context.WithCancel(context.Background())
	c.stopTicker = cancel
	c.clock.TickerFunc(ctx, TickInterval, func() error {
		return c.onTick(gen)
	}, "clock", "tick")
}

// stopTickerLocked cancels the active ticker, if any, and invalidates any
// tick already in flight
func (c *Clock) stopTickerLocked() {
	if c.stopTicker != nil {
		c.stopTicker()
		c.stopTicker = nil
	}
	c.gen++
}

func (c *Clock) snapshotLocked() Snapshot {
	if !c.open {
		return Snapshot{Phase: Idle, BlindMinutes: c.blindMinutes}
	}
	s := Snapshot{
		SessionID:    c.sessionID,
		Phase:        Ready,
		Index:        c.index,
		Levels:       c.sched.Len(),
		Level:        c.sched.At(c.index),
		Remaining:    c.remaining,
		Duration:     schedule.Seconds(c.sched.At(c.index), c.blindMinutes),
		BlindMinutes: c.blindMinutes,
	}
	if c.running {
		s.Phase = Running
	}
	s.NextLevel, s.HasNext = c.sched.Next(c.index)
	return s
}
