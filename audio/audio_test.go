package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/require"
)

func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	peak := 0.0
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			if v := buf[i][0]; v > peak {
				peak = v
			} else if -v > peak {
				peak = -v
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
}

func TestBounceToneLength(t *testing.T) {
	sr := beep.SampleRate(44100)
	tone, err := newBounceTone(sr, 880, 50*time.Millisecond, 1)
	require.NoError(t, err)

	n, peak := drain(t, tone)
	require.Equal(t, sr.N(50*time.Millisecond), n)
	require.LessOrEqual(t, peak, 1.0)
	require.Greater(t, peak, 0.5)
}

func TestBounceToneVolume(t *testing.T) {
	sr := beep.SampleRate(44100)
	tone, err := newBounceTone(sr, 440, 20*time.Millisecond, 0.25)
	require.NoError(t, err)

	_, peak := drain(t, tone)
	require.LessOrEqual(t, peak, 0.25+1e-9)
	require.Greater(t, peak, 0.1)
}

func TestBounceToneMuted(t *testing.T) {
	sr := beep.SampleRate(44100)
	tone, err := newBounceTone(sr, 440, 10*time.Millisecond, 0)
	require.NoError(t, err)

	n, peak := drain(t, tone)
	require.Equal(t, sr.N(10*time.Millisecond), n)
	require.Zero(t, peak)
}

func TestBounceToneInvalidFrequency(t *testing.T) {
	_, err := newBounceTone(beep.SampleRate(44100), 30000, 10*time.Millisecond, 1)
	require.Error(t, err)
}

func TestDisabledPlayer(t *testing.T) {
	p := NewPlayer(Config{Enabled: false, Frequency: 880}, nil)
	require.NoError(t, p.Init())
	require.False(t, p.Active())

	// Without an initialized speaker these are no-ops.
	p.PlayBounce()
	p.Close()
	require.False(t, p.Active())
}
