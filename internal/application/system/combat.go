package system

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/younwookim/ironknight/internal/domain/entity"
)

// CombatSystem resolves damage between actors, projectiles and hazards
type CombatSystem struct {
	arrow entity.ProjectileSpec
	rng   *rand.Rand
	log   logrus.FieldLogger
}

// NewCombatSystem creates a new combat system
func NewCombatSystem(arrow entity.ProjectileSpec, rng *rand.Rand, log logrus.FieldLogger) *CombatSystem {
	return &CombatSystem{
		arrow: arrow,
		rng:   rng,
		log:   log,
	}
}

// Strike deals damage to target and emits a damage number at its center.
// With spark set a hit spark is drawn as well. Returns false if the target
// was already dead.
func (s *CombatSystem) Strike(w *World, target entity.CombatActor, damage float64, spark bool) bool {
	if !target.TakeHit(damage) {
		return false
	}
	cx, cy := target.HitRect().Center()
	w.AddEffect(entity.NewDamageText(cx, cy, damage, s.rng))
	if spark {
		w.AddEffect(entity.NewSpark(cx, cy))
	}
	return true
}

// UpdateProjectiles moves every arrow: a live player in the way takes the
// hit and removes the arrow, geometry stops it for good.
func (s *CombatSystem) UpdateProjectiles(w *World) {
	for _, p := range w.Projectiles {
		if p.Stopped || p.Removed {
			continue
		}
		if player := w.LivePlayer(); player != nil && p.DamageRect().Overlaps(player.HitRect()) {
			s.Strike(w, player, p.DamageAmount(), true)
			p.Remove()
			continue
		}
		if w.Stage.IsSolidRect(p.DamageRect()) {
			p.Stop()
			continue
		}
		p.Advance()
	}
}

// ApplyHazards animates hazards and charges their rate to every live actor
// standing in them. Each charge draws a damage number but no spark.
func (s *CombatSystem) ApplyHazards(w *World) {
	for _, h := range w.Hazards {
		h.Anim.Tick()
		for _, a := range w.Opponents(entity.FactionEnvironment) {
			if h.DamageRect().Overlaps(a.HitRect()) {
				s.Strike(w, a, h.DamageAmount(), false)
			}
		}
	}
}

// ResolvePlayerSwing hits every live enemy in reach at the swing's hit instant.
// It returns the number of enemies struck.
func (s *CombatSystem) ResolvePlayerSwing(w *World, damage float64) int {
	player := w.LivePlayer()
	if player == nil || player.TakingHit || !player.Swing.Fire(&player.Anim) {
		return 0
	}
	struck := 0
	reach := player.ReachRect()
	for _, target := range w.Opponents(player.Faction()) {
		if reach.Overlaps(target.HitRect()) && s.Strike(w, target, damage, false) {
			struck++
		}
	}
	return struck
}

// StrikePlayer delivers an enemy melee hit to the live player
func (s *CombatSystem) StrikePlayer(w *World, e *entity.Enemy) {
	if player := w.LivePlayer(); player != nil {
		s.Strike(w, player, e.Damage, true)
	}
}

// SpawnArrow releases an arrow from the shooter's facing mid-edge
func (s *CombatSystem) SpawnArrow(w *World, e *entity.Enemy) *entity.Projectile {
	x := e.Real.Right()
	if e.Direction < 0 {
		x = e.Real.Left()
	}
	_, y := e.Real.Center()
	p := entity.NewProjectile(w.NextID(), x, y, e.Direction, e.Damage, s.arrow)
	w.Projectiles = append(w.Projectiles, p)
	s.log.WithFields(logrus.Fields{
		"enemy_id": e.ID,
		"enemy":    e.Name,
		"dir":      e.Direction,
	}).Debug("arrow released")
	return p
}
