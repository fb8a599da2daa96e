package entity

// Faction identifies which side an actor fights for
type Faction int

const (
	FactionNeutral Faction = iota
	FactionPlayer
	FactionEnemy
	FactionEnvironment
)

// String returns the faction name
func (f Faction) String() string {
	switch f {
	case FactionNeutral:
		return "Neutral"
	case FactionPlayer:
		return "Player"
	case FactionEnemy:
		return "Enemy"
	case FactionEnvironment:
		return "Environment"
	default:
		return "Unknown"
	}
}

// Opposes reports whether actors of faction f may damage actors of o
func (f Faction) Opposes(o Faction) bool {
	return (f == FactionPlayer && o == FactionEnemy) ||
		(f == FactionEnemy && o == FactionPlayer) ||
		f == FactionEnvironment
}

// CombatActor is anything that can receive hits (player and enemies)
type CombatActor interface {
	Faction() Faction
	HitRect() Rect
	Alive() bool
	TakeHit(damage float64) bool
}

// DamageSource is a non-actor that deals damage on contact (hazards, arrows)
type DamageSource interface {
	DamageRect() Rect
	DamageAmount() float64
}

// Vitals holds health and hit-reaction state
type Vitals struct {
	Health    float64
	MaxHealth float64
	IsAlive   bool
	TakingHit bool
}

// NewVitals creates full-health vitals
func NewVitals(maxHealth float64) Vitals {
	return Vitals{
		Health:    maxHealth,
		MaxHealth: maxHealth,
		IsAlive:   true,
	}
}

// SetMaxHealth changes the maximum and scales current health proportionally
func (v *Vitals) SetMaxHealth(maxHealth float64) {
	if maxHealth <= 0 || maxHealth == v.MaxHealth {
		return
	}
	if v.MaxHealth > 0 {
		v.Health *= maxHealth / v.MaxHealth
	}
	v.MaxHealth = maxHealth
	v.clamp()
}

func (v *Vitals) clamp() {
	if v.Health < 0 {
		v.Health = 0
	}
	if v.Health > v.MaxHealth {
		v.Health = v.MaxHealth
	}
}

// Swing tracks the single hit instant of one attack cycle.
// The instant is frame FromEnd counted back from the end of the attack
// sequence, once the sub-frame timer reaches Timer.
type Swing struct {
	FromEnd int
	Timer   int
	fired   bool
}

// Arm resets the latch at attack start
func (s *Swing) Arm() {
	s.fired = false
}

// Fire returns true exactly once per armed cycle, at the hit instant
func (s *Swing) Fire(a *Animator) bool {
	if s.fired || !a.Attacking || s.FromEnd <= 0 {
		return false
	}
	if a.Index != a.Len()-s.FromEnd || a.Timer < s.Timer {
		return false
	}
	s.fired = true
	return true
}

// Fired reports whether the current cycle already delivered its hit
func (s *Swing) Fired() bool {
	return s.fired
}

// Actor is the state shared by the player and enemies
type Actor struct {
	Body
	Vitals
	Anim      Animator
	Side      Faction
	Direction int
	Swing     Swing

	// died is set by a killing blow until CheckHealth reports it
	died bool
}

// Faction returns the actor's side
func (a *Actor) Faction() Faction {
	return a.Side
}

// HitRect returns the rect that receives hits
func (a *Actor) HitRect() Rect {
	return a.Real
}

// Alive returns true until health reaches zero
func (a *Actor) Alive() bool {
	return a.IsAlive
}

// IsAttacking returns true while an attack animation runs
func (a *Actor) IsAttacking() bool {
	return a.Anim.Attacking
}

// TakeHit applies damage and enters the hit reaction.
// The reaction sequence restarts only on the first hit of a streak.
// A killing blow ends the actor at once. Returns false if the actor is
// already dead.
func (a *Actor) TakeHit(damage float64) bool {
	if !a.IsAlive {
		return false
	}
	a.Anim.Attacking = false
	if !a.TakingHit {
		a.Anim.Restart(AnimTakeHit)
		a.TakingHit = true
	} else {
		a.Anim.State = AnimTakeHit
	}
	a.Health -= damage
	if a.Health <= 0 {
		a.die()
	}
	return true
}

// CheckHealth clamps health and returns true on the tick the actor dies.
// Death switches to the clamped death animation and is irreversible.
func (a *Actor) CheckHealth() bool {
	a.clamp()
	if a.Health <= 0 && a.IsAlive {
		a.die()
	}
	died := a.died
	a.died = false
	return died
}

func (a *Actor) die() {
	a.Health = 0
	a.IsAlive = false
	a.Anim.Attacking = false
	a.Anim.Dead = true
	a.Anim.Restart(AnimDeath)
	a.died = true
}

// selectMotionAnim picks idle/run/jump/fall from the body state.
// It returns false when the actor is locked in an attack or hit reaction.
func (a *Actor) selectMotionAnim() bool {
	if !a.IsAlive {
		a.VX = 0
		return false
	}
	if a.TakingHit {
		if a.Anim.State == AnimTakeHit && a.Anim.AtLastFrame() {
			a.TakingHit = false
		}
		return false
	}
	if a.Anim.Attacking {
		return false
	}
	switch {
	case !a.OnGround && a.VY > 0:
		a.Anim.Play(AnimFall)
	case !a.OnGround:
		a.Anim.Play(AnimJump)
	case a.VX != 0:
		a.Anim.Play(AnimRun)
	default:
		a.Anim.Play(AnimIdle)
	}
	return true
}

// faceVelocity turns the actor toward its horizontal motion
func (a *Actor) faceVelocity() {
	if a.VX < 0 {
		a.Direction = -1
	} else if a.VX > 0 {
		a.Direction = 1
	}
}

// FinishTick advances the animation and updates facing.
// Call after physics integration.
func (a *Actor) FinishTick() {
	a.Anim.Tick()
	a.faceVelocity()
}
