package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	Up   = mgl64.Vec3{0, 0, 1}
	Down = mgl64.Vec3{0, 0, -1}
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func LerpVec3(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

func Clamp01(v float64) float64 {
	return mgl64.Clamp(v, 0, 1)
}

// MoveTowards advances current toward target by at most maxStep. When the
// remaining distance is within maxStep the target is returned exactly.
func MoveTowards(current, target mgl64.Vec3, maxStep float64) mgl64.Vec3 {
	delta := target.Sub(current)
	dist := delta.Len()
	if dist <= maxStep || dist == 0 {
		return target
	}
	return current.Add(delta.Mul(maxStep / dist))
}

// PlaneProject removes the component of v along the plane normal n.
func PlaneProject(v, n mgl64.Vec3) mgl64.Vec3 {
	lenSq := n.LenSqr()
	if lenSq == 0 {
		return v
	}
	return v.Sub(n.Mul(v.Dot(n) / lenSq))
}

// ClampMagnitude limits the length of v to maxLen.
func ClampMagnitude(v mgl64.Vec3, maxLen float64) mgl64.Vec3 {
	if maxLen <= 0 {
		return mgl64.Vec3{}
	}
	l := v.Len()
	if l <= maxLen {
		return v
	}
	return v.Mul(maxLen / l)
}

// SafeNormalize returns the unit vector of v, or zero for a zero vector.
func SafeNormalize(v mgl64.Vec3) mgl64.Vec3 {
	l := v.Len()
	if l == 0 {
		return mgl64.Vec3{}
	}
	return v.Mul(1 / l)
}

// AngleBetweenDeg returns the angle between two unit vectors in degrees.
func AngleBetweenDeg(a, b mgl64.Vec3) float64 {
	return mgl64.RadToDeg(math.Acos(mgl64.Clamp(a.Dot(b), -1, 1)))
}

func Horizontal(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X(), v.Y(), 0}
}

// YawForward is the flat forward vector for a yaw in degrees (0 faces +X).
func YawForward(yaw float64) mgl64.Vec3 {
	r := mgl64.DegToRad(yaw)
	return mgl64.Vec3{math.Cos(r), math.Sin(r), 0}
}

// YawRight is the flat right vector for a yaw in degrees.
func YawRight(yaw float64) mgl64.Vec3 {
	r := mgl64.DegToRad(yaw)
	return mgl64.Vec3{-math.Sin(r), math.Cos(r), 0}
}

// RotationForward is the forward vector for a yaw and pitch in degrees,
// positive pitch looking up.
func RotationForward(yaw, pitch float64) mgl64.Vec3 {
	y := mgl64.DegToRad(yaw)
	p := mgl64.DegToRad(pitch)
	return mgl64.Vec3{math.Cos(p) * math.Cos(y), math.Cos(p) * math.Sin(y), math.Sin(p)}
}

// YawOf returns the yaw in degrees of the horizontal part of v.
func YawOf(v mgl64.Vec3) float64 {
	return mgl64.RadToDeg(math.Atan2(v.Y(), v.X()))
}
