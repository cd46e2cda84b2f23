package main

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/garden/component"
	"github.com/stretchr/testify/assert"
)

var _ component.CameraRig = (*sandboxCamera)(nil)

func TestCameraFollowsPlayer(t *testing.T) {
	c := newSandboxCamera()
	c.snap(mgl64.Vec3{0, 0, 0})

	c.update(1.0/60, mgl64.Vec3{600, 0, 0})
	assert.InDelta(t, 60, c.center.X(), 1e-9)

	for range 600 {
		c.update(1.0/60, mgl64.Vec3{600, 0, 0})
	}
	assert.InDelta(t, 600, c.center.X(), 1e-3)
}

func TestCameraFocus(t *testing.T) {
	c := newSandboxCamera()
	c.snap(mgl64.Vec3{})

	c.Focus(mgl64.Vec3{100, 5, 200}, mgl64.Vec3{1, 0, 0}, 60)
	c.update(1, mgl64.Vec3{})
	assert.Equal(t, mgl64.Vec2{100, 200}, c.center)

	c.ReturnToPlayer(0.5)
	assert.False(t, c.focused)
	assert.Equal(t, 2.0, c.rate)
	c.update(0.25, mgl64.Vec3{})
	assert.InDelta(t, 50, c.center.X(), 1e-9)
}

func TestCameraToScreen(t *testing.T) {
	c := newSandboxCamera()
	c.snap(mgl64.Vec3{100, 0, 100})

	x, y := c.toScreen(100, 100)
	assert.Equal(t, float64(baseWidth/2), x)
	assert.Equal(t, float64(baseHeight/2), y)

	_, above := c.toScreen(100, 200)
	assert.Less(t, above, y)
}
