package curve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyframes(t *testing.T) {
	k, err := NewKeyframes([]Key{{1, 1}, {0, 0}, {0.5, 0.8}}, false)
	require.NoError(t, err)

	cases := []struct {
		name string
		t    float64
		want float64
	}{
		{"before_first", -1, 0},
		{"first", 0, 0},
		{"mid_first_segment", 0.25, 0.4},
		{"key", 0.5, 0.8},
		{"mid_second_segment", 0.75, 0.9},
		{"after_last", 2, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.InDelta(t, c.want, k.Eval(c.t), 1e-12)
		})
	}
	assert.Equal(t, 0.0, k.Keys()[0].Time)
}

func TestKeyframesSmooth(t *testing.T) {
	k, err := NewKeyframes([]Key{{0, 0}, {1, 1}}, true)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, k.Eval(0.5), 1e-12)
	assert.Less(t, k.Eval(0.1), 0.1)
	assert.Greater(t, k.Eval(0.9), 0.9)
}

func TestNewKeyframesEmpty(t *testing.T) {
	_, err := NewKeyframes(nil, false)
	require.ErrorIs(t, err, ErrNoKeys)
}

func TestAlphaClamps(t *testing.T) {
	over := Func(func(t float64) float64 { return t * 2 })
	assert.Equal(t, 1.0, Alpha(over, 0.75))
	assert.Equal(t, 0.0, Alpha(Linear{}, -3))
	assert.Equal(t, 1.0, Alpha(nil, 4))
	assert.Equal(t, 0.25, Alpha(nil, 0.25))
}

func TestScript(t *testing.T) {
	s, err := CompileScript("square", []byte(`alpha = t * t`))
	require.NoError(t, err)
	assert.Equal(t, "square", s.Name())
	assert.InDelta(t, 0.25, s.Eval(0.5), 1e-12)
	assert.InDelta(t, 1, s.Eval(1), 1e-12)
}

func TestScriptMathImport(t *testing.T) {
	src := []byte(`
math := import("math")
alpha = math.sin(t * math.pi / 2)
`)
	s, err := CompileScript("sine", src)
	require.NoError(t, err)
	assert.InDelta(t, 1, s.Eval(1), 1e-9)
}

func TestScriptCompileError(t *testing.T) {
	_, err := CompileScript("broken", []byte(`alpha = (`))
	require.Error(t, err)
}
