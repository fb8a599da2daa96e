package entity

import "math"

// ProjectileSpec holds arrow tuning values
type ProjectileSpec struct {
	Width, Height float64
	Speed         float64
	Drag          float64 // speed lost per tick
	DropDivisor   float64 // downward drift is |distance| / DropDivisor per tick
}

// Projectile represents an arrow shot by a ranged enemy
type Projectile struct {
	ID       EntityID
	Rect     Rect
	Speed    float64 // signed by direction
	Distance float64 // signed distance travelled
	Damage   float64
	Drag     float64
	Drop     float64

	// Stopped arrows hit geometry; they stay visible but never move again
	Stopped bool
	// Removed arrows hit the player and leave the roster
	Removed bool
}

// NewProjectile creates an arrow whose leading edge starts at (x, y)
func NewProjectile(id EntityID, x, y float64, direction int, damage float64, spec ProjectileSpec) *Projectile {
	dir := float64(direction)
	if dir == 0 {
		dir = 1
	}
	r := Rect{X: x, Y: y - spec.Height/2, W: spec.Width, H: spec.Height}
	if dir < 0 {
		r.X = x - spec.Width
	}
	return &Projectile{
		ID:     id,
		Rect:   r,
		Speed:  spec.Speed * dir,
		Damage: damage,
		Drag:   spec.Drag,
		Drop:   spec.DropDivisor,
	}
}

// Advance moves the arrow one tick along its path
func (p *Projectile) Advance() {
	if p.Stopped || p.Removed {
		return
	}
	if p.Drop > 0 {
		p.Rect.Y += math.Abs(p.Distance / p.Drop)
	}
	p.Rect.X += p.Speed
	p.Distance += p.Speed
	p.Speed -= p.Drag
}

// Stop freezes the arrow in place
func (p *Projectile) Stop() {
	p.Stopped = true
}

// Remove marks the arrow for eviction
func (p *Projectile) Remove() {
	p.Removed = true
}

// Facing returns the travel direction used for rendering
func (p *Projectile) Facing() int {
	if p.Distance < 0 || (p.Distance == 0 && p.Speed < 0) {
		return -1
	}
	return 1
}

// DamageRect implements DamageSource
func (p *Projectile) DamageRect() Rect {
	return p.Rect
}

// DamageAmount implements DamageSource
func (p *Projectile) DamageAmount() float64 {
	return p.Damage
}
