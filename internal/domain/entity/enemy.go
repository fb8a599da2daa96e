package entity

import "math/rand"

// AttackStyle defines how an enemy delivers damage
type AttackStyle int

const (
	StyleMelee AttackStyle = iota
	StyleRanged
)

// String returns the style name used in config files
func (s AttackStyle) String() string {
	if s == StyleRanged {
		return "ranged"
	}
	return "melee"
}

// EnemySpec holds the tuning values an enemy kind is built from
type EnemySpec struct {
	Name                              string
	Style                             AttackStyle
	Width, Height                     float64 // real rect
	SilhouetteWidth, SilhouetteHeight float64
	SearchWidth, SearchHeight         float64
	Gravity                           float64
	MaxHealth                         float64
	Damage                            float64
	PatrolSpeed                       float64
	ChaseSpeed                        float64
	PatrolDelayMin, PatrolDelayMax    int
	PatrolWalk                        int
	HitFrameFromEnd                   int
	HitTimer                          int
	ArrowFrameFromEnd                 int
	ExpireDelay                       int
	FadeStep                          int
	Frames                            FrameSet
}

// Patrol is the autonomous wander clock of an enemy.
// After Delay ticks the enemy walks for Walk ticks, then reverses.
type Patrol struct {
	Delay int
	Walk  int
	Timer int
}

// Step advances the clock and reports whether the enemy walks this tick.
// dir is reversed on the last walking tick.
func (p *Patrol) Step(dir *int) bool {
	p.Timer++
	d := p.Timer - p.Delay
	if d <= 0 || d >= p.Walk {
		return false
	}
	if d == p.Walk-1 {
		p.Timer = 0
		*dir = -*dir
	}
	return true
}

// Enemy represents an enemy entity
type Enemy struct {
	Actor

	ID     EntityID
	Name   string
	Style  AttackStyle
	Damage float64
	Search Rect

	PatrolSpeed float64
	ChaseSpeed  float64
	Patrol      Patrol

	// Two-stage death: dying until ExpireDelay elapses, then fading
	Expired     bool
	ExpireTimer int
	ExpireDelay int
	Alpha       int
	FadeStep    int

	arrowFromEnd int
	arrowPending bool
}

// NewEnemy creates an enemy standing in the tile whose top-left pixel is (x, y).
// rng draws the patrol delay and starting direction once.
func NewEnemy(id EntityID, x, y float64, spec EnemySpec, rng *rand.Rand) *Enemy {
	rect := Rect{
		X: x + (TileSize-spec.Width)/2,
		Y: y + TileSize - spec.Height,
		W: spec.Width,
		H: spec.Height,
	}

	delay := spec.PatrolDelayMin
	if spec.PatrolDelayMax > spec.PatrolDelayMin {
		delay += rng.Intn(spec.PatrolDelayMax - spec.PatrolDelayMin + 1)
	}
	dir := 1
	if rng.Intn(2) == 0 {
		dir = -1
	}

	e := &Enemy{
		Actor: Actor{
			Body:      NewBody(rect, spec.SilhouetteWidth, spec.SilhouetteHeight, spec.Gravity),
			Vitals:    NewVitals(spec.MaxHealth),
			Anim:      NewAnimator(spec.Name, spec.Frames, 1),
			Side:      FactionEnemy,
			Direction: dir,
			Swing:     Swing{FromEnd: spec.HitFrameFromEnd, Timer: spec.HitTimer},
		},
		ID:           id,
		Name:         spec.Name,
		Style:        spec.Style,
		Damage:       spec.Damage,
		Search:       Rect{W: spec.SearchWidth, H: spec.SearchHeight},
		PatrolSpeed:  spec.PatrolSpeed,
		ChaseSpeed:   spec.ChaseSpeed,
		Patrol:       Patrol{Delay: delay, Walk: spec.PatrolWalk},
		ExpireDelay:  spec.ExpireDelay,
		Alpha:        255,
		FadeStep:     spec.FadeStep,
		arrowFromEnd: spec.ArrowFrameFromEnd,
	}
	e.Recenter()
	return e
}

// Recenter moves silhouette and search rect onto the real rect
func (e *Enemy) Recenter() {
	e.Body.Recenter()
	e.Search = e.Search.CenteredOn(e.Real)
}

// AttackZone returns the rect a target must overlap to trigger an attack
func (e *Enemy) AttackZone() Rect {
	if e.Style == StyleRanged {
		return e.Silhouette
	}
	return e.Real
}

// MoveX sets the horizontal velocity while alive
func (e *Enemy) MoveX(vx float64) {
	if e.IsAlive {
		e.VX = vx
	}
}

// Attack starts an attack cycle. Returns false if not eligible.
func (e *Enemy) Attack() bool {
	if !e.OnGround || e.Anim.Attacking || e.TakingHit || !e.IsAlive {
		return false
	}
	e.Anim.Restart(AnimAttack)
	e.Anim.Attacking = true
	e.Swing.Arm()
	e.arrowPending = e.Style == StyleRanged
	return true
}

// MeleeInstant returns true once per melee attack cycle at the hit frame
func (e *Enemy) MeleeInstant() bool {
	if e.Style != StyleMelee || !e.IsAlive || e.TakingHit {
		return false
	}
	return e.Swing.Fire(&e.Anim)
}

// ArrowInstant returns true once per ranged attack cycle at the release frame
func (e *Enemy) ArrowInstant() bool {
	if !e.arrowPending || !e.IsAlive || !e.Anim.Attacking {
		return false
	}
	if e.Anim.Index != e.Anim.Len()-e.arrowFromEnd {
		return false
	}
	e.arrowPending = false
	return true
}

// BeginTick checks health and advances the death sequence.
// It returns true while the enemy is alive and may think.
func (e *Enemy) BeginTick() bool {
	if e.CheckHealth() {
		return false
	}
	if !e.IsAlive {
		e.advanceExpiry()
		return false
	}
	return true
}

func (e *Enemy) advanceExpiry() {
	if e.Expired {
		return
	}
	if e.ExpireTimer < e.ExpireDelay {
		e.ExpireTimer++
		return
	}
	e.Alpha -= e.FadeStep
	if e.Alpha <= 0 {
		e.Alpha = 0
		e.Expired = true
	}
}

// SelectAnim picks the motion animation after the AI has acted
func (e *Enemy) SelectAnim() {
	e.selectMotionAnim()
}

// EndTick runs the post-physics part of the enemy update
func (e *Enemy) EndTick() {
	e.Recenter()
	e.FinishTick()
}
