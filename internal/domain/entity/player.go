package entity

import "math/rand"

// PlayerSpec holds the tuning values a player is built from
type PlayerSpec struct {
	Width, Height                     float64 // real rect
	SilhouetteWidth, SilhouetteHeight float64
	Gravity                           float64
	MaxHealth                         float64
	MaxEndurance                      float64
	EnduranceRegen                    float64
	MoveSpeed                         float64
	JumpVelocity                      float64
	JumpCost                          float64
	AttackCost                        float64
	HitFrameFromEnd                   int
	HitTimer                          int
	Frames                            FrameSet
}

// Player represents the player entity
type Player struct {
	Actor

	Endurance      float64
	MaxEndurance   float64
	EnduranceRegen float64

	MoveSpeed    float64
	JumpVelocity float64
	JumpCost     float64
	AttackCost   float64
}

// NewPlayer creates a player standing in the tile whose top-left pixel is (x, y)
func NewPlayer(x, y float64, spec PlayerSpec) *Player {
	rect := Rect{
		X: x + (TileSize-spec.Width)/2,
		Y: y + TileSize - spec.Height,
		W: spec.Width,
		H: spec.Height,
	}
	return &Player{
		Actor: Actor{
			Body:      NewBody(rect, spec.SilhouetteWidth, spec.SilhouetteHeight, spec.Gravity),
			Vitals:    NewVitals(spec.MaxHealth),
			Anim:      NewAnimator("knight", spec.Frames, 1),
			Side:      FactionPlayer,
			Direction: 1,
			Swing:     Swing{FromEnd: spec.HitFrameFromEnd, Timer: spec.HitTimer},
		},
		Endurance:      spec.MaxEndurance,
		MaxEndurance:   spec.MaxEndurance,
		EnduranceRegen: spec.EnduranceRegen,
		MoveSpeed:      spec.MoveSpeed,
		JumpVelocity:   spec.JumpVelocity,
		JumpCost:       spec.JumpCost,
		AttackCost:     spec.AttackCost,
	}
}

// MoveX sets the horizontal velocity; dir is -1, 0 or 1
func (p *Player) MoveX(dir int) {
	if !p.IsAlive {
		return
	}
	p.VX = float64(dir) * p.MoveSpeed
}

// Jump starts a jump. Returns false if the player is not eligible.
func (p *Player) Jump() bool {
	if !p.OnGround || p.Anim.Attacking || !p.IsAlive || p.Endurance < p.JumpCost {
		return false
	}
	p.VY = p.JumpVelocity
	p.OnGround = false
	p.Endurance -= p.JumpCost
	return true
}

// Attack starts one of the two swing animations at random.
// Returns false if the player is not eligible.
func (p *Player) Attack(rng *rand.Rand) bool {
	if !p.OnGround || p.Anim.Attacking || p.TakingHit || !p.IsAlive || p.Endurance < p.AttackCost {
		return false
	}
	state := AnimAttack1
	if rng.Intn(2) == 1 {
		state = AnimAttack2
	}
	p.Endurance -= p.AttackCost
	p.Anim.Restart(state)
	p.Anim.Attacking = true
	p.Swing.Arm()
	return true
}

// ReachRect returns the area a swing can hit
func (p *Player) ReachRect() Rect {
	return p.Silhouette
}

// BeginTick runs the pre-physics part of the player update
func (p *Player) BeginTick() {
	p.CheckHealth()
	p.selectMotionAnim()
}

// EndTick runs the post-physics part of the player update
func (p *Player) EndTick() {
	p.FinishTick()
	if p.IsAlive && p.Endurance < p.MaxEndurance {
		p.Endurance += p.EnduranceRegen
		if p.Endurance > p.MaxEndurance {
			p.Endurance = p.MaxEndurance
		}
	}
}
