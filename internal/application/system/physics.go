package system

import (
	"github.com/younwookim/ironknight/internal/domain/entity"
	"github.com/younwookim/ironknight/internal/infrastructure/config"
)

const defaultGroundProbe = 2

// PhysicsSystem moves kinematic bodies through the static stage geometry
type PhysicsSystem struct {
	config config.PhysicsConfig
}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem(cfg config.PhysicsConfig) *PhysicsSystem {
	if cfg.GroundProbe <= 0 {
		cfg.GroundProbe = defaultGroundProbe
	}
	return &PhysicsSystem{config: cfg}
}

// Integrate advances one body by one tick and returns whether it rests on
// the ground afterwards. Horizontal resolution always precedes vertical.
func (s *PhysicsSystem) Integrate(body *entity.Body, stage *entity.Stage) bool {
	s.applyGravity(body)
	moveX(body, stage)
	moveY(body, stage)
	body.Recenter()

	body.OnGround = stage.IsSolidRect(body.Real.Moved(0, s.config.GroundProbe))
	return body.OnGround
}

// applyGravity accelerates bodies that are not supported
func (s *PhysicsSystem) applyGravity(body *entity.Body) {
	if body.OnGround {
		return
	}
	body.VY += body.Gravity
	if s.config.MaxFallSpeed > 0 && body.VY > s.config.MaxFallSpeed {
		body.VY = s.config.MaxFallSpeed
	}
}

// moveX moves the body horizontally and snaps it out of walls
func moveX(body *entity.Body, stage *entity.Stage) {
	body.Real.X += body.VX
	for _, solid := range stage.SolidRects(body.Real) {
		if !solid.Overlaps(body.Real) {
			continue
		}
		if body.VX > 0 {
			body.Real.X = solid.Left() - body.Real.W
		} else if body.VX < 0 {
			body.Real.X = solid.Right()
		}
		body.VX = 0
	}
}

// moveY moves the body vertically, landing on floors and bumping ceilings
func moveY(body *entity.Body, stage *entity.Stage) {
	body.Real.Y += body.VY
	for _, solid := range stage.SolidRects(body.Real) {
		if !solid.Overlaps(body.Real) {
			continue
		}
		if body.VY > 0 {
			body.Real.Y = solid.Top() - body.Real.H
			body.OnGround = true
		} else if body.VY < 0 {
			body.Real.Y = solid.Bottom()
		}
		body.VY = 0
	}
}
