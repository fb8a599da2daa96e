package system

import "github.com/younwookim/ironknight/internal/domain/entity"

// AISystem drives enemy patrol, pursuit and attack decisions
type AISystem struct{}

// NewAISystem creates a new AI system
func NewAISystem() *AISystem {
	return &AISystem{}
}

// Think runs one tick of enemy AI against the live player (nil if none).
// It returns true when a melee swing lands on the player this tick.
func (s *AISystem) Think(e *entity.Enemy, player *entity.Player) bool {
	if !e.IsAlive {
		return false
	}
	if e.TakingHit {
		e.MoveX(0)
		return false
	}

	s.patrol(e)

	if player == nil || !e.Search.Overlaps(player.HitRect()) {
		return false
	}
	if !e.AttackZone().Overlaps(player.HitRect()) {
		s.chase(e, player)
		return false
	}
	if !e.IsAttacking() {
		e.Attack()
		return false
	}
	return e.MeleeInstant()
}

// patrol walks the enemy back and forth on its own clock
func (s *AISystem) patrol(e *entity.Enemy) {
	if e.Patrol.Step(&e.Direction) {
		e.MoveX(e.PatrolSpeed * float64(e.Direction))
		return
	}
	e.MoveX(0)
}

// chase moves toward the player at chase speed
func (s *AISystem) chase(e *entity.Enemy, player *entity.Player) {
	px, _ := player.HitRect().Center()
	sx, _ := e.Search.Center()
	dir := -1.0
	if px > sx {
		dir = 1
	}
	e.MoveX(e.ChaseSpeed * dir)
}
