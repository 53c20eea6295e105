package sound

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

func TestRender(t *testing.T) {
	t.Parallel()

	t.Run("chime", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, 1500*time.Millisecond, Length(Chime()))
		samples := Render(Chime())
		assert.Len(t, samples, 66150)

		peak := 0
		for _, s := range samples {
			peak = max(peak, abs(int(s)))
		}
		assert.LessOrEqual(t, peak, int(0.2*32767)+1)
		assert.Greater(t, peak, 0)
	})

	t.Run("alarm is four beeps with gaps", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, 1500*time.Millisecond, Length(Alarm()))
		samples := Render(Alarm())

		for _, beep := range []float64{0.05, 0.45, 0.85, 1.25} {
			assert.NotZero(t, samples[int(beep*SampleRate)], "beep at %.2fs", beep)
		}
		for _, gap := range []float64{0.35, 0.75, 1.15} {
			assert.Zero(t, samples[int(gap*SampleRate)], "gap at %.2fs", gap)
		}
	})
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func TestRamp(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 880, ramp(880, 440, 0, 0.1), 1e-9)
	assert.InDelta(t, 440, ramp(880, 440, 0.1, 0.1), 1e-9)
	assert.InDelta(t, 440, ramp(880, 440, 5, 0.1), 1e-9)
	assert.InDelta(t, 622.25, ramp(880, 440, 0.05, 0.1), 0.01)
}

func TestEncodeWAV(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, EncodeWAV(&buf, []int16{0, 1, -1, 32767}, 8000))

	b := buf.Bytes()
	require.Len(t, b, 44+8)
	assert.Equal(t, "RIFF", string(b[0:4]))
	assert.Equal(t, uint32(36+8), binary.LittleEndian.Uint32(b[4:8]))
	assert.Equal(t, "WAVE", string(b[8:12]))
	assert.Equal(t, "fmt ", string(b[12:16]))
	assert.Equal(t, uint16(1), binary.LittleEndian.Uint16(b[20:22]))
	assert.Equal(t, uint16(1), binary.LittleEndian.Uint16(b[22:24]))
	assert.Equal(t, uint32(8000), binary.LittleEndian.Uint32(b[24:28]))
	assert.Equal(t, uint32(16000), binary.LittleEndian.Uint32(b[28:32]))
	assert.Equal(t, uint16(16), binary.LittleEndian.Uint16(b[34:36]))
	assert.Equal(t, "data", string(b[36:40]))
	assert.Equal(t, uint32(8), binary.LittleEndian.Uint32(b[40:44]))
	assert.Equal(t, int16(-1), int16(binary.LittleEndian.Uint16(b[48:50])))
}

type errWriter struct{}

func (errWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestEncodeWAVError(t *testing.T) {
	t.Parallel()
	assert.ErrorContains(t, EncodeWAV(errWriter{}, []int16{1}, 8000), "disk full")
}

func TestWriteClips(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "tones")
	paths, err := WriteClips(dir)
	require.NoError(t, err)
	require.Len(t, paths, 2)
	assert.Equal(t, filepath.Join(dir, "level-change.wav"), paths[0])

	b, err := os.ReadFile(paths[1])
	require.NoError(t, err)
	assert.Equal(t, "RIFF", string(b[:4]))
}

type fakePlayer struct {
	mu    sync.Mutex
	clips [][]byte
	err   error
	block bool
}

func (p *fakePlayer) Play(ctx context.Context, wav []byte) error {
	p.mu.Lock()
	p.clips = append(p.clips, wav)
	p.mu.Unlock()
	if p.block {
		<-ctx.Done()
		return ctx.Err()
	}
	return p.err
}

func (p *fakePlayer) played() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.clips)
}

func TestSinkPlaysClips(t *testing.T) {
	t.Parallel()

	player := &fakePlayer{}
	sink := NewSink(player, quietLogger())

	sink.AnnounceLevelChange()
	sink.AnnounceExpiry()
	require.NoError(t, sink.Close())

	assert.Equal(t, 2, player.played())
	assert.Contains(t, [][]byte{sink.chime, sink.alarm}, player.clips[0])

	sink.AnnounceExpiry()
	assert.Equal(t, 2, player.played(), "closed sink stays quiet")
}

func TestSinkSwallowsErrors(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	logger := log.NewWithOptions(&logs, log.Options{Level: log.DebugLevel})
	sink := NewSink(&fakePlayer{err: errors.New("device busy")}, logger)

	assert.NotPanics(t, sink.AnnounceExpiry)
	require.NoError(t, sink.Close())
	assert.Contains(t, logs.String(), "device busy")
}

func TestSinkReleaseStopsPlayback(t *testing.T) {
	t.Parallel()

	player := &fakePlayer{block: true}
	sink := NewSink(player, quietLogger())

	sink.AnnounceExpiry()
	require.Eventually(t, func() bool { return player.played() == 1 }, time.Second, time.Millisecond)

	sink.Release()

	done := make(chan struct{})
	go func() {
		_ = sink.Close()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("playback was not cancelled")
	}
}

func TestBellPlayer(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	require.NoError(t, BellPlayer{Out: &out}.Play(context.Background(), nil))
	assert.Equal(t, "\a", out.String())

	assert.Error(t, BellPlayer{Out: errWriter{}}.Play(context.Background(), nil))
}
