package clock

import "sync"

// NotificationSink announces clock events to the room. Implementations must
// not block; the clock calls them after its state change is committed.
type NotificationSink interface {
	AnnounceLevelChange()
	AnnounceExpiry()
}

// Releaser is implemented by sinks that hold resources (audio players in
// flight) which should be let go when the clock closes
type Releaser interface {
	Release()
}

// NopSink discards every notification
type NopSink struct{}

func (NopSink) AnnounceLevelChange() {}
func (NopSink) AnnounceExpiry()      {}

// Recorder counts notifications. It is safe for concurrent use.
type Recorder struct {
	mu           sync.Mutex
	levelChanges int
	expiries     int
	releases     int
}

func (r *Recorder) AnnounceLevelChange() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.levelChanges++
}

func (r *Recorder) AnnounceExpiry() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.expiries++
}

func (r *Recorder) Release() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.releases++
}

// LevelChanges returns how many level changes were announced
func (r *Recorder) LevelChanges() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.levelChanges
}

// Expiries returns how many expiries were announced
func (r *Recorder) Expiries() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.expiries
}

// Releases returns how many times the sink was released
func (r *Recorder) Releases() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.releases
}
