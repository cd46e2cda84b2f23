package main

import (
	"testing"

	"github.com/milk9111/garden/system"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func streamedLen(t *testing.T, kind system.EventKind) int {
	t.Helper()
	s := cueStreamer(kind)
	require.NotNil(t, s)

	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total
		}
	}
}

func TestCueLengths(t *testing.T) {
	cases := []struct {
		kind system.EventKind
		want int
	}{
		{system.EventPerfectDodge, sampleRate.N(150e6)},
		{system.EventWallBounce, sampleRate.N(70e6)},
		{system.EventDied, sampleRate.N(450e6)},
	}
	for _, c := range cases {
		t.Run(string(c.kind), func(t *testing.T) {
			assert.InDelta(t, c.want, streamedLen(t, c.kind), 2)
		})
	}
}

func TestSilentEvents(t *testing.T) {
	for _, kind := range []system.EventKind{system.EventStateChanged, system.EventHealthChanged, system.EventTeleported} {
		assert.Nil(t, cueStreamer(kind), kind)
	}
}

func TestNewVolume(t *testing.T) {
	v := newVolume(nil, 0)
	assert.True(t, v.Silent)

	v = newVolume(nil, 0.5)
	assert.False(t, v.Silent)
	assert.Equal(t, -1.0, v.Volume)
}
