// Package sound synthesises the clock's notification tones and plays them
// through whatever audio player the host has.
package sound

import (
	"math"
	"time"
)

// SampleRate of every rendered clip, in Hz
const SampleRate = 44100

// Waveform selects the oscillator shape
type Waveform int

const (
	Sine Waveform = iota
	Square
)

// Tone is one oscillator note. Frequency sweeps exponentially from FromHz
// to ToHz over Sweep, and gain decays exponentially from FromGain to ToGain
// over Length, after which the note stops.
type Tone struct {
	Wave     Waveform
	Start    time.Duration
	Length   time.Duration
	FromHz   float64
	ToHz     float64
	Sweep    time.Duration
	FromGain float64
	ToGain   float64
}

// Chime is the ascending C5 to C6 sine played on a level change
func Chime() []Tone {
	return []Tone{{
		Wave:     Sine,
		Length:   1500 * time.Millisecond,
		FromHz:   523.25,
		ToHz:     1046.5,
		Sweep:    200 * time.Millisecond,
		FromGain: 0.2,
		ToGain:   0.01,
	}}
}

// Alarm is four falling square-wave beeps played when a level runs out
func Alarm() []Tone {
	var tones []Tone
	for _, start := range []time.Duration{0, 400, 800, 1200} {
		tones = append(tones, Tone{
			Wave:     Square,
			Start:    start * time.Millisecond,
			Length:   300 * time.Millisecond,
			FromHz:   880,
			ToHz:     440,
			Sweep:    100 * time.Millisecond,
			FromGain: 0.1,
			ToGain:   0.01,
		})
	}
	return tones
}

// Length is the time from the start of the clip to the end of its last tone
func Length(tones []Tone) time.Duration {
	var end time.Duration
	for _, t := range tones {
		end = max(end, t.Start+t.Length)
	}
	return end
}

// Render mixes tones into signed 16-bit mono samples at SampleRate
func Render(tones []Tone) []int16 {
	n := samplesFor(Length(tones))
	mix := make([]float64, n)

	for _, t := range tones {
		first := samplesFor(t.Start)
		count := samplesFor(t.Length)
		phase := 0.0
		for i := 0; i < count && first+i < n; i++ {
			at := float64(i) / SampleRate
			hz := ramp(t.FromHz, t.ToHz, at, t.Sweep.Seconds())
			gain := ramp(t.FromGain, t.ToGain, at, t.Length.Seconds())
			mix[first+i] += gain * oscillate(t.Wave, phase)
			phase += 2 * math.Pi * hz / SampleRate
			if phase >= 2*math.Pi {
				phase -= 2 * math.Pi
			}
		}
	}

	out := make([]int16, n)
	for i, v := range mix {
		v = math.Max(-1, math.Min(1, v))
		out[i] = int16(math.Round(v * math.MaxInt16))
	}
	return out
}

func samplesFor(d time.Duration) int {
	return int(d.Seconds() * SampleRate)
}

// ramp moves exponentially from a to b over span seconds and holds b after
func ramp(a, b, at, span float64) float64 {
	if span <= 0 || at >= span {
		return b
	}
	return a * math.Pow(b/a, at/span)
}

func oscillate(w Waveform, phase float64) float64 {
	if w == Square {
		if phase < math.Pi {
			return 1
		}
		return -1
	}
	return math.Sin(phase)
}
