package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDuration(t *testing.T) {
	t.Parallel()

	brk := NewBreak("BREAK", "Colour up", 15)
	blind := NewBlind(1, 50, 100)

	assert.Equal(t, 15*time.Minute, Duration(brk, 20))
	assert.Equal(t, 900, Seconds(brk, 20), "breaks ignore the blind duration")
	assert.Equal(t, 900, Seconds(brk, 5))
	assert.Equal(t, 1200, Seconds(blind, 20))
	assert.Equal(t, 300, Seconds(blind, 5))
}

func TestParseBreakMinutes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "15 min", want: 15},
		{in: "15 MIN", want: 15},
		{in: " 20 minutes ", want: 20},
		{in: "15m", want: 15},
		{in: "1h", want: 60},
		{in: "10", want: 10},
		{in: "", wantErr: true},
		{in: "0 min", wantErr: true},
		{in: "-5", wantErr: true},
		{in: "90s", wantErr: true},
		{in: "fifteen min", wantErr: true},
		{in: "15 hours", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := ParseBreakMinutes(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLevelFormatting(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "LEVEL 3", NewBlind(3, 100, 200).Title())
	assert.Equal(t, "100 / 200", NewBlind(3, 100, 200).Blinds())
	assert.Equal(t, "LEVEL 3 100 / 200", NewBlind(3, 100, 200).String())

	assert.Equal(t, "DINNER", NewBreak("DINNER", "", 30).Title())
	assert.Equal(t, "BREAK", NewBreak("", "", 30).Title())
	assert.Empty(t, NewBreak("", "", 30).Blinds())
	assert.Equal(t, "DINNER (30 min)", NewBreak("DINNER", "", 30).String())
}

func TestNew(t *testing.T) {
	t.Parallel()

	_, err := New()
	require.ErrorIs(t, err, ErrEmpty)

	levels := []Level{NewBlind(1, 50, 100), NewBlind(2, 75, 150)}
	s, err := New(levels...)
	require.NoError(t, err)

	levels[0] = NewBlind(9, 1, 2)
	assert.Equal(t, 50, s.At(0).SmallBlind, "schedule copies its input")

	out := s.Levels()
	out[1] = NewBlind(9, 1, 2)
	assert.Equal(t, 75, s.At(1).SmallBlind, "Levels returns a copy")
}

func TestNext(t *testing.T) {
	t.Parallel()

	s := MustNew(NewBlind(1, 50, 100), NewBreak("BREAK", "", 15))

	next, ok := s.Next(0)
	require.True(t, ok)
	assert.True(t, next.IsBreak())

	_, ok = s.Next(1)
	assert.False(t, ok)
}

func TestDefault(t *testing.T) {
	t.Parallel()

	s := Default()
	require.NoError(t, s.Validate())
	assert.Equal(t, 11, s.Len())
	assert.True(t, s.At(5).IsBreak())
	assert.Equal(t, 15, s.At(5).FixedMinutes)
	assert.Equal(t, 1500, s.At(10).SmallBlind)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		level Level
	}{
		{"zero blinds", NewBlind(1, 0, 0)},
		{"inverted blinds", NewBlind(1, 200, 100)},
		{"break without duration", NewBreak("BREAK", "", 0)},
		{"unknown kind", Level{Kind: Kind(7)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Error(t, MustNew(tt.level).Validate())
		})
	}
}
