package entity

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRand() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func TestNewPlayer(t *testing.T) {
	p := NewPlayer(128, 256, createTestPlayerSpec())

	require.NotNil(t, p)
	assert.Equal(t, Rect{X: 130, Y: 206, W: 60, H: 114}, p.Real)
	assert.Equal(t, 100.0, p.Health)
	assert.Equal(t, 500.0, p.Endurance)
	assert.Equal(t, FactionPlayer, p.Faction())
	assert.Equal(t, 1, p.Direction)
	assert.True(t, p.Alive())
	assert.Equal(t, AnimIdle, p.Anim.State)
}

func TestPlayer_Jump(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(p *Player)
		wantOK bool
	}{
		{"eligible", func(p *Player) {}, true},
		{"airborne", func(p *Player) { p.OnGround = false }, false},
		{"attacking", func(p *Player) { p.Anim.Attacking = true }, false},
		{"dead", func(p *Player) { p.IsAlive = false }, false},
		{"tired", func(p *Player) { p.Endurance = 99 }, false},
		{"exact cost", func(p *Player) { p.Endurance = 100 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer(0, 0, createTestPlayerSpec())
			tt.setup(p)
			before := p.Endurance

			ok := p.Jump()
			assert.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, -10.0, p.VY)
				assert.False(t, p.OnGround)
				assert.Equal(t, before-100, p.Endurance)
			} else {
				assert.Equal(t, 0.0, p.VY)
				assert.Equal(t, before, p.Endurance)
			}
		})
	}
}

func TestPlayer_Attack(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(p *Player)
		wantOK bool
	}{
		{"eligible", func(p *Player) {}, true},
		{"airborne", func(p *Player) { p.OnGround = false }, false},
		{"already attacking", func(p *Player) { p.Anim.Attacking = true }, false},
		{"hit reaction", func(p *Player) { p.TakingHit = true }, false},
		{"dead", func(p *Player) { p.IsAlive = false }, false},
		{"tired", func(p *Player) { p.Endurance = 79 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer(0, 0, createTestPlayerSpec())
			tt.setup(p)
			before := p.Endurance
			state := p.Anim.State

			ok := p.Attack(newTestRand())
			assert.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Contains(t, []string{AnimAttack1, AnimAttack2}, p.Anim.State)
				assert.True(t, p.IsAttacking())
				assert.Equal(t, before-80, p.Endurance)
			} else {
				assert.Equal(t, state, p.Anim.State)
				assert.Equal(t, before, p.Endurance)
			}
		})
	}
}

func TestPlayer_Attack_UsesBothSwings(t *testing.T) {
	rng := newTestRand()
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		p := NewPlayer(0, 0, createTestPlayerSpec())
		require.True(t, p.Attack(rng))
		seen[p.Anim.State] = true
	}
	assert.True(t, seen[AnimAttack1])
	assert.True(t, seen[AnimAttack2])
}

func TestPlayer_MoveX(t *testing.T) {
	p := NewPlayer(0, 0, createTestPlayerSpec())

	p.MoveX(-1)
	assert.Equal(t, -5.0, p.VX)

	p.IsAlive = false
	p.MoveX(1)
	assert.Equal(t, -5.0, p.VX, "dead player ignores movement")
}

func TestPlayer_BeginTick_SelectsMotion(t *testing.T) {
	tests := []struct {
		name     string
		onGround bool
		vx, vy   float64
		want     string
	}{
		{"idle", true, 0, 0, AnimIdle},
		{"run", true, 5, 0, AnimRun},
		{"rising", false, 0, -5, AnimJump},
		{"falling", false, 0, 3, AnimFall},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer(0, 0, createTestPlayerSpec())
			p.OnGround = tt.onGround
			p.VX, p.VY = tt.vx, tt.vy

			p.BeginTick()
			assert.Equal(t, tt.want, p.Anim.State)
		})
	}
}

func TestPlayer_HitReactionEndsAtLastFrame(t *testing.T) {
	p := NewPlayer(0, 0, createTestPlayerSpec())
	p.TakeHit(10)

	for i := 0; i < 2*FrameDivisor; i++ {
		p.BeginTick()
		p.EndTick()
	}
	assert.True(t, p.TakingHit)
	assert.Equal(t, 2, p.Anim.Index)

	p.BeginTick()
	assert.False(t, p.TakingHit)
}

func TestPlayer_EndTick_RegeneratesEndurance(t *testing.T) {
	p := NewPlayer(0, 0, createTestPlayerSpec())
	p.Endurance = 499.8

	p.EndTick()
	assert.Equal(t, 500.0, p.Endurance, "regen clamps at max")

	p.Endurance = 100
	p.IsAlive = false
	p.EndTick()
	assert.Equal(t, 100.0, p.Endurance, "dead players do not regenerate")
}

func TestPlayer_EndTick_FacesVelocity(t *testing.T) {
	p := NewPlayer(0, 0, createTestPlayerSpec())
	p.VX = -5
	p.EndTick()
	assert.Equal(t, -1, p.Direction)

	p.VX = 0
	p.EndTick()
	assert.Equal(t, -1, p.Direction, "standing still keeps the facing")
}

func TestPlayer_DeathStopsMotion(t *testing.T) {
	p := NewPlayer(0, 0, createTestPlayerSpec())
	p.VX = 5
	p.TakeHit(200)

	p.BeginTick()
	assert.False(t, p.IsAlive)
	assert.Equal(t, AnimDeath, p.Anim.State)

	p.BeginTick()
	assert.Equal(t, 0.0, p.VX)
}

func TestPlayer_ReachRect_CoversSilhouette(t *testing.T) {
	p := NewPlayer(0, 0, createTestPlayerSpec())
	target := Rect{X: p.Real.Right() + 10, Y: p.Real.Y, W: 20, H: 20}

	assert.Equal(t, p.Silhouette, p.ReachRect())
	assert.False(t, p.Real.Overlaps(target))
	assert.True(t, p.ReachRect().Overlaps(target), "the blade reaches past the body")
}
