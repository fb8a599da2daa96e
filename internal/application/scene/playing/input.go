package playing

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/ironknight/internal/application/system"
)

// InputSource supplies one tick of player input plus the scene keys
type InputSource interface {
	Poll() system.InputState
	// Back requests leaving the level for the main menu
	Back() bool
	// Confirm acknowledges the end screen
	Confirm() bool
}

// KeyboardInput polls ebiten keyboard and mouse state
type KeyboardInput struct{}

// NewKeyboardInput creates a new keyboard input source
func NewKeyboardInput() *KeyboardInput {
	return &KeyboardInput{}
}

// Poll implements InputSource. Movement and jump are held keys; attack,
// interact and purchases fire once per press.
func (k *KeyboardInput) Poll() system.InputState {
	return system.InputState{
		Left:  ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Jump:  ebiten.IsKeyPressed(ebiten.KeySpace),
		Attack: inpututil.IsKeyJustPressed(ebiten.KeyZ) ||
			inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Interact:   inpututil.IsKeyJustPressed(ebiten.KeyE),
		BuyDamage:  inpututil.IsKeyJustPressed(ebiten.Key1),
		BuyArmor:   inpututil.IsKeyJustPressed(ebiten.Key2),
		BuyStamina: inpututil.IsKeyJustPressed(ebiten.Key3),
	}
}

// Back implements InputSource
func (k *KeyboardInput) Back() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

// Confirm implements InputSource
func (k *KeyboardInput) Confirm() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace)
}
