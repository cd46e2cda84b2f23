// Package curve evaluates easing curves that map normalized time to an alpha.
package curve

import (
	"errors"
	"sort"

	"github.com/milk9111/garden/common"
)

var ErrNoKeys = errors.New("curve: keyframe curve needs at least one key")

// Curve maps a normalized time to a value, usually in [0, 1].
type Curve interface {
	Eval(t float64) float64
}

// Linear is the identity curve.
type Linear struct{}

func (Linear) Eval(t float64) float64 { return t }

// Func adapts a plain function to Curve.
type Func func(t float64) float64

func (f Func) Eval(t float64) float64 { return f(t) }

// Key is a single keyframe of a Keyframes curve.
type Key struct {
	Time  float64
	Value float64
}

// Keyframes interpolates between sorted keys. Outside the key range the
// nearest key's value is held.
type Keyframes struct {
	keys   []Key
	smooth bool
}

// NewKeyframes sorts the keys by time. When smooth is set each segment is
// eased with smoothstep instead of interpolated linearly.
func NewKeyframes(keys []Key, smooth bool) (*Keyframes, error) {
	if len(keys) == 0 {
		return nil, ErrNoKeys
	}
	sorted := make([]Key, len(keys))
	copy(sorted, keys)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Time < sorted[j].Time })
	return &Keyframes{keys: sorted, smooth: smooth}, nil
}

func (k *Keyframes) Eval(t float64) float64 {
	if k == nil || len(k.keys) == 0 {
		return t
	}
	first := k.keys[0]
	if t <= first.Time {
		return first.Value
	}
	last := k.keys[len(k.keys)-1]
	if t >= last.Time {
		return last.Value
	}

	i := sort.Search(len(k.keys), func(i int) bool { return k.keys[i].Time > t })
	a, b := k.keys[i-1], k.keys[i]
	span := b.Time - a.Time
	if span <= 0 {
		return b.Value
	}
	u := (t - a.Time) / span
	if k.smooth {
		u = u * u * (3 - 2*u)
	}
	return common.Lerp(a.Value, b.Value, u)
}

// Keys returns a copy of the keyframes.
func (k *Keyframes) Keys() []Key {
	if k == nil {
		return nil
	}
	out := make([]Key, len(k.keys))
	copy(out, k.keys)
	return out
}

// Alpha evaluates c at t with both input and output clamped to [0, 1]. A nil
// curve behaves as Linear.
func Alpha(c Curve, t float64) float64 {
	t = common.Clamp01(t)
	if c == nil {
		return t
	}
	return common.Clamp01(c.Eval(t))
}
