package system

import (
	"log"

	"github.com/milk9111/garden/common"
	"github.com/milk9111/garden/component"
)

// minimum time between two wall bounces
const wallBounceCooldown = 0.2

// resolveEnemies defeats every enemy inside the attack range. Repeated
// contacts with one collider in the same query are resolved once.
func (c *Character) resolveEnemies() {
	contacts := c.deps.Overlap.SphereOverlap(c.body.Position(), c.stats.AttackRange, component.FilterDynamic)
	if len(contacts) == 0 {
		return
	}

	seen := make(map[component.ColliderID]struct{}, len(contacts))
	for _, contact := range contacts {
		enemy, ok := contact.AsEnemy()
		if !ok {
			continue
		}
		if _, dup := seen[contact.Collider]; dup {
			continue
		}
		seen[contact.Collider] = struct{}{}

		enemy.Defeat()
		c.events.Push(Event{Kind: EventEnemyDefeated, Data: enemy})
	}
}

// handleWallBounce pushes the character off the first near-vertical static
// surface in reach. Floors and ceilings never bounce.
func (c *Character) handleWallBounce() {
	s := c.stats
	if !c.combat.BounceReady(c.dt, wallBounceCooldown) {
		return
	}

	pos := c.body.Position()
	contacts := c.deps.Overlap.SphereOverlap(pos, s.WallBounceCheckDistance, component.FilterStatic)
	for _, contact := range contacts {
		if !contact.Blocking {
			continue
		}
		dir := common.SafeNormalize(contact.Point.Sub(pos))
		if dir.Len() == 0 {
			continue
		}
		down := common.AngleBetweenDeg(dir, common.Down)
		up := common.AngleBetweenDeg(dir, common.Up)
		if down <= s.WallBounceAngle || up <= s.WallBounceAngle {
			continue
		}

		impulse := contact.Normal.Mul(s.WallBounceForce)
		c.motion.Velocity = c.motion.Velocity.Add(impulse)
		c.combat.ResetBounce()
		c.combat.ScaleSpin(s.WallBounceSpeedReductionFactor)
		c.events.Push(Event{Kind: EventWallBounce, Data: WallBounce{
			Point:   contact.Point,
			Normal:  contact.Normal,
			Impulse: impulse,
		}})
		if c.deps.Debug {
			log.Printf("character: wall bounce normal=%v", contact.Normal)
		}
		return
	}
}
