package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthRestoreToMax(t *testing.T) {
	cases := []struct {
		name  string
		base  float64
		bonus float64
		want  float64
	}{
		{"no_bonus", 5, 0, 5},
		{"with_bonus", 5, 2, 7},
		{"negative_bonus", 5, -1, 4},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			h := NewHealth(c.base)
			h.SetBonus(c.bonus)
			h.ApplyDamage(3)
			h.RestoreToMax()
			assert.Equal(t, c.want, h.Current)
			assert.Equal(t, c.want, h.Max())
			assert.LessOrEqual(t, h.Current, h.Max())
		})
	}
}

func TestHealthDamageAndDeath(t *testing.T) {
	h := NewHealth(3)
	var got []HealthChange
	cancel := h.Observe(func(evt HealthChange) { got = append(got, evt) })

	require.False(t, h.ApplyDamage(1))
	require.True(t, h.ApplyDamage(2))
	require.True(t, h.Dead)
	require.False(t, h.IsAlive())

	// damage after death is ignored
	require.False(t, h.ApplyDamage(1))
	require.Equal(t, 0.0, h.Current)

	require.Len(t, got, 2)
	assert.Equal(t, -1.0, got[0].Delta)
	assert.True(t, got[1].Dead)

	cancel()
	h.RestoreToMax()
	assert.Len(t, got, 2)
	assert.True(t, h.IsAlive())
}

func TestHealthBonusDecreaseKeepsCurrent(t *testing.T) {
	h := NewHealth(4)
	h.SetBonus(2)
	h.RestoreToMax()

	var got []HealthChange
	h.Observe(func(evt HealthChange) { got = append(got, evt) })
	h.SetBonus(0)

	assert.Equal(t, 6.0, h.Current)
	assert.Equal(t, 4.0, h.Max())
	require.Len(t, got, 1)
	assert.Equal(t, 0.0, got[0].Delta)
	assert.Equal(t, 6.0, got[0].Current)
	assert.Equal(t, 4.0, got[0].Max)

	h.RestoreToMax()
	assert.Equal(t, 4.0, h.Current)

	h.SetBonus(3)
	assert.Equal(t, 4.0, h.Current, "a larger bonus does not heal")
	assert.Equal(t, 7.0, h.Max())
}

func TestHealthObserverOrder(t *testing.T) {
	h := NewHealth(2)
	var order []string
	h.Observe(func(HealthChange) { order = append(order, "a") })
	cancelB := h.Observe(func(HealthChange) { order = append(order, "b") })
	h.Observe(func(HealthChange) { order = append(order, "c") })
	cancelB()
	h.SetBonus(1)
	assert.Equal(t, []string{"a", "c"}, order)
}
