package system

import (
	"github.com/milk9111/garden/common"
	"github.com/milk9111/garden/component"
)

// upper bound on re-casts through query-only colliders
const maxGroundPasses = 16

// probeGround sweeps the capsule's bottom sphere down by GroundingDistance,
// re-casting past non-blocking colliders until a blocking one is found.
func (c *Character) probeGround() (component.Contact, bool) {
	s := c.stats
	origin := c.body.Position().Add(common.Down.Mul(s.CapsuleHalfHeight - s.CapsuleRadius))

	c.ignore = c.ignore[:0]
	if c.deps.Self != 0 {
		c.ignore = append(c.ignore, c.deps.Self)
	}
	for range maxGroundPasses {
		contact, ok := c.deps.Ground.Probe(origin, s.CapsuleRadius, s.GroundingDistance, c.ignore)
		if !ok {
			return component.Contact{}, false
		}
		if c.deps.Self != 0 && contact.Collider == c.deps.Self {
			return component.Contact{}, false
		}
		if contact.Blocking {
			return contact, true
		}
		c.ignore = append(c.ignore, contact.Collider)
	}
	return component.Contact{}, false
}

// isValidSlope reports whether the contact is walkable.
func (c *Character) isValidSlope(contact component.Contact) bool {
	n := common.SafeNormalize(contact.Normal)
	if n.Len() == 0 {
		return false
	}
	return common.AngleBetweenDeg(n, common.Up) <= c.stats.MaxGroundSlopeAngle
}

// validGround returns the ground contact only when it is walkable.
func (c *Character) validGround() (component.Contact, bool) {
	contact, ok := c.probeGround()
	if !ok || !c.isValidSlope(contact) {
		return component.Contact{}, false
	}
	return contact, true
}

// stickToGround snaps the body height onto the contact without touching its
// horizontal position.
func (c *Character) stickToGround(contact component.Contact) {
	if contact.Distance <= 0 {
		return
	}
	pos := c.body.Position()
	pos[2] = contact.Point.Z() + c.stats.CapsuleHalfHeight
	c.body.SetPosition(pos)
}
