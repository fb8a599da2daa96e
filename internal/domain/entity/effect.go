package entity

import (
	"math/rand"
	"strconv"
)

// EffectKind enumerates short-lived visual effects
type EffectKind int

const (
	EffectDamageText EffectKind = iota
	EffectMoneyText
	EffectSpark
)

// Floating text timing
const (
	textDuration  = 100
	textFadeTicks = 60
	textFadeStep  = 10
	sparkFrames   = 20
	sparkSize     = 150
	textBoxW      = 60
	textBoxH      = 30
)

// Effect is a floating number or a one-shot particle.
// Effects never influence the simulation.
type Effect struct {
	Kind      EffectKind
	X, Y      float64 // center
	Text      string
	RiseSpeed float64
	Timer     int
	Duration  int
	Alpha     int
	Anim      Animator
	Done      bool
}

// NewDamageText creates a rising damage number near (x, y)
func NewDamageText(x, y, damage float64, rng *rand.Rand) *Effect {
	return &Effect{
		Kind:      EffectDamageText,
		X:         x + float64(rng.Intn(41)-20),
		Y:         y + float64(rng.Intn(21)-10),
		Text:      strconv.FormatFloat(damage, 'f', -1, 64),
		RiseSpeed: 1,
		Duration:  textDuration,
		Alpha:     255,
	}
}

// NewMoneyText creates a rising coin counter near (x, y)
func NewMoneyText(x, y float64, coins int, rng *rand.Rand) *Effect {
	return &Effect{
		Kind:      EffectMoneyText,
		X:         x + float64(rng.Intn(41)-20),
		Y:         y + float64(rng.Intn(21)-10),
		Text:      strconv.Itoa(coins) + "$",
		RiseSpeed: 0.7,
		Duration:  150,
		Alpha:     255,
	}
}

// NewSpark creates a hit spark centered on (x, y)
func NewSpark(x, y float64) *Effect {
	return &Effect{
		Kind:  EffectSpark,
		X:     x,
		Y:     y,
		Alpha: 255,
		Anim:  NewAnimator("spark1", FrameSet{AnimIdle: sparkFrames}, FrameDivisor),
	}
}

// Rect returns the effect's placement rect
func (e *Effect) Rect() Rect {
	if e.Kind == EffectSpark {
		return NewRectCentered(e.X, e.Y, sparkSize, sparkSize)
	}
	return NewRectCentered(e.X, e.Y, textBoxW, textBoxH)
}

// Update advances the effect and marks it done when it expires
func (e *Effect) Update() {
	if e.Done {
		return
	}
	if e.Kind == EffectSpark {
		e.Anim.Tick()
		if e.Anim.Index == e.Anim.Len()-1 {
			e.Done = true
		}
		return
	}

	e.Y -= e.RiseSpeed
	e.Timer++
	if e.Timer >= e.Duration {
		e.Alpha -= textFadeStep
		if e.Alpha < 0 {
			e.Alpha = 0
		}
		if e.Timer >= e.Duration+textFadeTicks {
			e.Done = true
		}
	}
}
