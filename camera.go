package main

import (
	"github.com/go-gl/mathgl/mgl64"
)

const (
	cameraFollowRate = 6.0
	cameraZoom       = 0.35
)

// sandboxCamera follows the character on the X/Z slice. While focused it
// eases toward a fixed location instead.
type sandboxCamera struct {
	center mgl64.Vec2
	zoom   float64

	focused bool
	target  mgl64.Vec2
	rate    float64
}

func newSandboxCamera() *sandboxCamera {
	return &sandboxCamera{zoom: cameraZoom, rate: cameraFollowRate}
}

func (c *sandboxCamera) Focus(location, forward mgl64.Vec3, speed float64) {
	c.focused = true
	c.target = mgl64.Vec2{location.X(), location.Z()}
	if speed > 0 {
		c.rate = speed
	}
}

func (c *sandboxCamera) ReturnToPlayer(blend float64) {
	c.focused = false
	c.rate = cameraFollowRate
	if blend > 0 {
		c.rate = 1 / blend
	}
}

func (c *sandboxCamera) snap(player mgl64.Vec3) {
	c.center = mgl64.Vec2{player.X(), player.Z()}
	c.focused = false
	c.rate = cameraFollowRate
}

func (c *sandboxCamera) update(dt float64, player mgl64.Vec3) {
	target := mgl64.Vec2{player.X(), player.Z()}
	if c.focused {
		target = c.target
	}
	t := mgl64.Clamp(c.rate*dt, 0, 1)
	c.center = c.center.Add(target.Sub(c.center).Mul(t))
}

// toScreen maps a slice point to screen pixels with Z pointing up.
func (c *sandboxCamera) toScreen(x, z float64) (float64, float64) {
	mid := screenCenter()
	return mid.X() + (x-c.center.X())*c.zoom, mid.Y() - (z-c.center.Y())*c.zoom
}
