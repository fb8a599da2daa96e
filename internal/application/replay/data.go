package replay

import (
	"github.com/younwookim/ironknight/internal/application/system"
	"github.com/younwookim/ironknight/internal/infrastructure/save"
)

// Version is the replay file format version
const Version = "2.0"

// FrameInput records input state for a single tick
type FrameInput struct {
	F  int  `json:"f"`            // Frame number
	L  bool `json:"l,omitempty"`  // Left
	R  bool `json:"r,omitempty"`  // Right
	J  bool `json:"j,omitempty"`  // Jump
	A  bool `json:"a,omitempty"`  // Attack
	E  bool `json:"e,omitempty"`  // Interact
	B1 bool `json:"b1,omitempty"` // BuyDamage
	B2 bool `json:"b2,omitempty"` // BuyArmor
	B3 bool `json:"b3,omitempty"` // BuyStamina
}

// ReplayData contains everything needed to reproduce a run.
// Save is the stored progress when the run began; Continue tells whether
// the run was resumed from it or started fresh.
type ReplayData struct {
	Version   string       `json:"version"`
	RunID     string       `json:"runId"`
	Seed      int64        `json:"seed"`
	Continue  bool         `json:"continue,omitempty"`
	Save      *save.State  `json:"save,omitempty"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

// NewFrameInput captures one tick of input
func NewFrameInput(frame int, in system.InputState) FrameInput {
	return FrameInput{
		F:  frame,
		L:  in.Left,
		R:  in.Right,
		J:  in.Jump,
		A:  in.Attack,
		E:  in.Interact,
		B1: in.BuyDamage,
		B2: in.BuyArmor,
		B3: in.BuyStamina,
	}
}

// Input converts the recorded frame back to input state
func (f FrameInput) Input() system.InputState {
	return system.InputState{
		Left:       f.L,
		Right:      f.R,
		Jump:       f.J,
		Attack:     f.A,
		Interact:   f.E,
		BuyDamage:  f.B1,
		BuyArmor:   f.B2,
		BuyStamina: f.B3,
	}
}
