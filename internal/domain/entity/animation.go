package entity

import "strconv"

// Animation state names
const (
	AnimIdle    = "idle"
	AnimRun     = "run"
	AnimJump    = "jump"
	AnimFall    = "fall"
	AnimAttack  = "attack"
	AnimAttack1 = "attack1"
	AnimAttack2 = "attack2"
	AnimTakeHit = "take_hit"
	AnimDeath   = "death"
)

// FrameDivisor is the number of timer steps per animation frame
const FrameDivisor = 10

// FrameSet maps an animation state to its frame count
type FrameSet map[string]int

// Animator is the frame clock of a sprite sheet.
// Sheet names the sprite sheet used for render handles.
type Animator struct {
	Sheet  string
	Frames FrameSet
	State  string
	Index  int
	Timer  int
	Speed  int // timer increment per tick, 1 for actors

	// Attacking makes the next wrap return to idle
	Attacking bool
	// Dead clamps the death animation at its last frame
	Dead bool
}

// NewAnimator creates an animator starting in idle
func NewAnimator(sheet string, frames FrameSet, speed int) Animator {
	if speed <= 0 {
		speed = 1
	}
	return Animator{
		Sheet:  sheet,
		Frames: frames,
		State:  AnimIdle,
		Speed:  speed,
	}
}

// Len returns the frame count of the current state (at least 1)
func (a *Animator) Len() int {
	return a.FramesOf(a.State)
}

// FramesOf returns the frame count of a state (at least 1)
func (a *Animator) FramesOf(state string) int {
	if n := a.Frames[state]; n > 0 {
		return n
	}
	return 1
}

// Play switches to state, restarting the sequence only when the state changes
func (a *Animator) Play(state string) {
	if a.State == state {
		return
	}
	a.State = state
	a.Index = 0
}

// Restart switches to state and rewinds both index and timer
func (a *Animator) Restart(state string) {
	a.State = state
	a.Index = 0
	a.Timer = 0
}

// Tick advances the timer and returns true when a frame step happened
func (a *Animator) Tick() bool {
	a.Timer += a.Speed
	if a.Timer < FrameDivisor {
		return false
	}
	a.Timer = 0

	if a.Dead {
		if a.Index < a.FramesOf(AnimDeath)-1 {
			a.Index++
		}
		return true
	}

	a.Index++
	if a.Index >= a.Len() {
		if a.Attacking {
			a.Attacking = false
			a.State = AnimIdle
		}
		a.Index = 0
	}
	return true
}

// AtLastFrame reports whether the current state shows its final frame
func (a *Animator) AtLastFrame() bool {
	return a.Index == a.Len()-1
}

// Handle returns the render handle "<sheet>/<state>/<frame>"
func (a *Animator) Handle() string {
	return a.Sheet + "/" + a.State + "/" + strconv.Itoa(a.Index)
}
