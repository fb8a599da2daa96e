// Package menu provides the main menu scene.
package menu

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/colornames"

	"github.com/younwookim/ironknight/internal/application/game"
	"github.com/younwookim/ironknight/internal/application/scene"
)

// Item is a main menu entry
type Item int

const (
	ItemContinue Item = iota
	ItemNewGame
	ItemQuit
)

// Items lists the entries in display order
var Items = []Item{ItemContinue, ItemNewGame, ItemQuit}

// String returns the button label
func (i Item) String() string {
	switch i {
	case ItemContinue:
		return "Continue"
	case ItemNewGame:
		return "New Game"
	case ItemQuit:
		return "Quit"
	default:
		return "?"
	}
}

// Launcher starts a run and returns its scene
type Launcher interface {
	Start(continueGame bool) (scene.Scene, error)
}

// Input is the menu navigation state for one tick
type Input interface {
	Up() bool
	Down() bool
	Confirm() bool
}

// Menu is the main menu: Continue, New Game, Quit
type Menu struct {
	launcher Launcher
	input    Input
	title    string
	selected int
	screenW  int
	screenH  int
}

// New creates a new main menu
func New(launcher Launcher, input Input, title string, screenW, screenH int) *Menu {
	return &Menu{
		launcher: launcher,
		input:    input,
		title:    title,
		screenW:  screenW,
		screenH:  screenH,
	}
}

// Selected returns the highlighted item
func (m *Menu) Selected() Item {
	return Items[m.selected]
}

// Update moves the highlight and runs the chosen item (implements scene.Scene)
func (m *Menu) Update(_ float64) (scene.Scene, error) {
	switch {
	case m.input.Up():
		m.selected = (m.selected + len(Items) - 1) % len(Items)
	case m.input.Down():
		m.selected = (m.selected + 1) % len(Items)
	case m.input.Confirm():
		return m.choose(m.Selected())
	}
	return nil, nil
}

func (m *Menu) choose(item Item) (scene.Scene, error) {
	switch item {
	case ItemContinue, ItemNewGame:
		next, err := m.launcher.Start(item == ItemContinue)
		if err != nil {
			return nil, fmt.Errorf("failed to start %s: %w", item, err)
		}
		return next, nil
	default:
		return nil, game.ErrQuit
	}
}

// Draw renders the menu (implements scene.Scene)
func (m *Menu) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Black)

	cx, cy := m.screenW/2, m.screenH/2
	ebitenutil.DebugPrintAt(screen, m.title, cx-len(m.title)*3, cy-80)

	for i, item := range Items {
		y := float64(cy - 20 + i*40)
		bg := colornames.Dimgray
		if i == m.selected {
			bg = colornames.Darkred
		}
		ebitenutil.DrawRect(screen, float64(cx-80), y-8, 160, 28, bg)
		ebitenutil.DebugPrintAt(screen, item.String(), cx-len(item.String())*3, int(y))
	}
	ebitenutil.DebugPrintAt(screen, "W/S: Select | Enter: Confirm", cx-84, cy+120)
}

// OnEnter resets the highlight to Continue
func (m *Menu) OnEnter() {
	m.selected = 0
}

// OnExit is called when leaving this scene
func (m *Menu) OnExit() {}

// KeyboardInput polls ebiten keys for menu navigation
type KeyboardInput struct{}

// Up implements Input
func (KeyboardInput) Up() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyW) || inpututil.IsKeyJustPressed(ebiten.KeyArrowUp)
}

// Down implements Input
func (KeyboardInput) Down() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyS) || inpututil.IsKeyJustPressed(ebiten.KeyArrowDown)
}

// Confirm implements Input
func (KeyboardInput) Confirm() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace)
}
