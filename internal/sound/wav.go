package sound

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/lox/tourneyclock/internal/fileutil"
)

const (
	bitsPerSample = 16
	channels      = 1
)

// EncodeWAV writes samples as a mono 16-bit PCM RIFF/WAVE stream
func EncodeWAV(w io.Writer, samples []int16, rate int) error {
	dataLen := uint32(len(samples) * bitsPerSample / 8)
	blockAlign := uint16(channels * bitsPerSample / 8)

	header := []any{
		[4]byte{'R', 'I', 'F', 'F'},
		36 + dataLen,
		[4]byte{'W', 'A', 'V', 'E'},
		[4]byte{'f', 'm', 't', ' '},
		uint32(16), // fmt chunk size
		uint16(1),  // PCM
		uint16(channels),
		uint32(rate),
		uint32(rate) * uint32(blockAlign),
		blockAlign,
		uint16(bitsPerSample),
		[4]byte{'d', 'a', 't', 'a'},
		dataLen,
	}
	for _, field := range header {
		if err := binary.Write(w, binary.LittleEndian, field); err != nil {
			return fmt.Errorf("write wav header: %w", err)
		}
	}
	if err := binary.Write(w, binary.LittleEndian, samples); err != nil {
		return fmt.Errorf("write wav samples: %w", err)
	}
	return nil
}

// Clip renders tones straight to WAV bytes
func Clip(tones []Tone) []byte {
	var buf bytes.Buffer
	// Writes to a bytes.Buffer cannot fail
	_ = EncodeWAV(&buf, Render(tones), SampleRate)
	return buf.Bytes()
}

// Clips are the named notification sounds, in the order they are listed
var Clips = []struct {
	Name  string
	Tones func() []Tone
}{
	{"level-change", Chime},
	{"timer-expired", Alarm},
}

// WriteClips writes every clip into dir as <name>.wav and returns the paths
func WriteClips(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", dir, err)
	}
	var paths []string
	for _, c := range Clips {
		path := filepath.Join(dir, c.Name+".wav")
		samples := Render(c.Tones())
		err := fileutil.WriteAtomic(path, 0o644, func(w io.Writer) error {
			return EncodeWAV(w, samples, SampleRate)
		})
		if err != nil {
			return paths, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
