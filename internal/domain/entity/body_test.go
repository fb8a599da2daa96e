package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func createTestPlayerSpec() PlayerSpec {
	return PlayerSpec{
		Width:            60,
		Height:           114,
		SilhouetteWidth:  180,
		SilhouetteHeight: 114,
		Gravity:          0.5,
		MaxHealth:        100,
		MaxEndurance:     500,
		EnduranceRegen:   0.5,
		MoveSpeed:        5,
		JumpVelocity:     -10,
		JumpCost:         100,
		AttackCost:       80,
		HitFrameFromEnd:  2,
		HitTimer:         2,
		Frames: FrameSet{
			AnimIdle: 10, AnimRun: 10, AnimJump: 3, AnimFall: 3,
			AnimAttack1: 4, AnimAttack2: 6, AnimTakeHit: 3, AnimDeath: 10,
		},
	}
}

func createTestEnemySpec(style AttackStyle) EnemySpec {
	spec := EnemySpec{
		Name:             "skeleton",
		Style:            style,
		Width:            60,
		Height:           110,
		SilhouetteWidth:  180,
		SilhouetteHeight: 110,
		SearchWidth:      720,
		SearchHeight:     110,
		Gravity:          0.5,
		MaxHealth:        100,
		Damage:           20,
		PatrolSpeed:      5,
		ChaseSpeed:       4,
		PatrolDelayMin:   300,
		PatrolDelayMax:   800,
		PatrolWalk:       60,
		HitFrameFromEnd:  3,
		HitTimer:         2,
		ExpireDelay:      600,
		FadeStep:         5,
		Frames: FrameSet{
			AnimIdle: 4, AnimRun: 4, AnimAttack: 8, AnimTakeHit: 4, AnimDeath: 4,
		},
	}
	if style == StyleRanged {
		spec.Name = "archer"
		spec.SilhouetteWidth = 900
		spec.SearchWidth = 1080
		spec.ArrowFrameFromEnd = 2
		spec.Damage = 25
		spec.Frames = FrameSet{
			AnimIdle: 5, AnimRun: 8, AnimAttack: 11, AnimTakeHit: 5, AnimDeath: 6,
		}
	}
	return spec
}

func TestRect_Overlaps(t *testing.T) {
	base := Rect{X: 0, Y: 0, W: 10, H: 10}

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"identical", base, true},
		{"partial overlap", Rect{X: 5, Y: 5, W: 10, H: 10}, true},
		{"contained", Rect{X: 2, Y: 2, W: 2, H: 2}, true},
		{"touching right edge", Rect{X: 10, Y: 0, W: 10, H: 10}, false},
		{"touching bottom edge", Rect{X: 0, Y: 10, W: 10, H: 10}, false},
		{"far away", Rect{X: 100, Y: 100, W: 5, H: 5}, false},
		{"fractional overlap", Rect{X: 9.5, Y: 0, W: 1, H: 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Overlaps(tt.other))
			assert.Equal(t, tt.want, tt.other.Overlaps(base))
		})
	}
}

func TestRect_CenteredOn(t *testing.T) {
	inner := Rect{X: 100, Y: 100, W: 60, H: 114}
	outer := Rect{W: 180, H: 114}.CenteredOn(inner)

	cx, cy := inner.Center()
	ox, oy := outer.Center()
	assert.Equal(t, cx, ox)
	assert.Equal(t, cy, oy)
	assert.Equal(t, 40.0, outer.X)
	assert.Equal(t, 180.0, outer.W)
}

func TestRect_Edges(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 30, H: 40}

	assert.Equal(t, 10.0, r.Left())
	assert.Equal(t, 40.0, r.Right())
	assert.Equal(t, 20.0, r.Top())
	assert.Equal(t, 60.0, r.Bottom())

	m := r.Moved(5, -5)
	assert.Equal(t, 15.0, m.X)
	assert.Equal(t, 15.0, m.Y)
	assert.Equal(t, 10.0, r.X, "Moved must not mutate the receiver")
}

func TestNewBody(t *testing.T) {
	b := NewBody(Rect{X: 0, Y: 0, W: 60, H: 114}, 180, 114, 0.5)

	assert.Equal(t, 0.5, b.Gravity)
	assert.True(t, b.OnGround)
	assert.Equal(t, -60.0, b.Silhouette.X)
	assert.Equal(t, 0.0, b.Silhouette.Y)

	b.Real.X = 100
	b.Recenter()
	assert.Equal(t, 40.0, b.Silhouette.X)

	x, y := b.Center()
	assert.Equal(t, 130.0, x)
	assert.Equal(t, 57.0, y)
}
