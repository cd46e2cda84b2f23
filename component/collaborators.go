package component

import "github.com/go-gl/mathgl/mgl64"

// ColliderID identifies a collider owned by the collision collaborator.
type ColliderID uint64

// Contact is a single result of a ground probe or overlap query.
type Contact struct {
	Point    mgl64.Vec3
	Normal   mgl64.Vec3
	Distance float64
	Collider ColliderID
	// Blocking is false for query-only colliders such as trigger volumes.
	Blocking bool
	// Enemy is set when the contact belongs to a defeatable enemy.
	Enemy Enemy
}

// AsEnemy narrows the contact to an enemy without a type assertion.
func (c Contact) AsEnemy() (Enemy, bool) {
	return c.Enemy, c.Enemy != nil
}

// Enemy is something the attack can defeat. Defeat must be idempotent.
type Enemy interface {
	Defeat()
}

// ObjectFilter selects which object classes an overlap query returns.
type ObjectFilter uint8

const (
	FilterStatic ObjectFilter = 1 << iota
	FilterDynamic

	FilterAll = FilterStatic | FilterDynamic
)

// GroundSensor sweeps a sphere downward from origin. Colliders listed in
// ignore are skipped.
type GroundSensor interface {
	Probe(origin mgl64.Vec3, radius, maxDistance float64, ignore []ColliderID) (Contact, bool)
}

// OverlapQuery returns every contact overlapping a sphere.
type OverlapQuery interface {
	SphereOverlap(center mgl64.Vec3, radius float64, filter ObjectFilter) []Contact
}

// Body is the host-owned physical representation the controller drives.
type Body interface {
	Position() mgl64.Vec3
	SetPosition(p mgl64.Vec3)
	Velocity() mgl64.Vec3
	SetVelocity(v mgl64.Vec3)
}

// EffectKind names a visual the controller spawns.
type EffectKind string

const (
	EffectThrowTarget EffectKind = "throw_target"
	EffectCheerItem   EffectKind = "cheer_item"
)

// EffectHandle identifies a spawned effect.
type EffectHandle uint64

// Spawner creates and destroys effect actors on behalf of the controller.
type Spawner interface {
	Spawn(kind EffectKind, pos mgl64.Vec3, yaw float64) EffectHandle
	Move(h EffectHandle, pos mgl64.Vec3)
	Destroy(h EffectHandle)
}

// TimeDilator controls the global game speed.
type TimeDilator interface {
	SetTimeDilation(factor float64)
}

// CameraRig is the camera collaborator.
type CameraRig interface {
	Focus(location, forward mgl64.Vec3, speed float64)
	ReturnToPlayer(blend float64)
}

// KinematicBody is a plain Body that integrates position from velocity.
type KinematicBody struct {
	Pos mgl64.Vec3
	Vel mgl64.Vec3
}

func (b *KinematicBody) Position() mgl64.Vec3     { return b.Pos }
func (b *KinematicBody) SetPosition(p mgl64.Vec3) { b.Pos = p }
func (b *KinematicBody) Velocity() mgl64.Vec3     { return b.Vel }
func (b *KinematicBody) SetVelocity(v mgl64.Vec3) { b.Vel = v }

// Step moves the body by its velocity over dt.
func (b *KinematicBody) Step(dt float64) {
	b.Pos = b.Pos.Add(b.Vel.Mul(dt))
}
