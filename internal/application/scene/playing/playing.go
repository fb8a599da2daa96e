// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/colornames"

	"github.com/younwookim/ironknight/internal/application/scene"
	"github.com/younwookim/ironknight/internal/application/state"
	"github.com/younwookim/ironknight/internal/application/system"
)

// Colors for rendering, keyed by sprite sheet
var (
	colorBG       = colornames.Midnightblue
	colorOverlay  = color.NRGBA{0, 0, 0, 160}
	colorDead     = color.NRGBA{100, 0, 0, 180}
	colorHealthBG = colornames.Dimgray
	colorHealthFG = colornames.Limegreen
	colorStamina  = colornames.Gold
	colorUnknown  = colornames.Magenta

	sheetColors = map[string]color.RGBA{
		"tiles":          colornames.Sienna,
		"knight":         colornames.Lightsteelblue,
		"skeleton":       colornames.Ivory,
		"mushroom":       colornames.Orchid,
		"archer":         colornames.Olivedrab,
		"arrow":          colornames.Burlywood,
		"fire":           colornames.Orangered,
		"electric_field": colornames.Deepskyblue,
		"poison_cloud":   colornames.Yellowgreen,
		"shop":           colornames.Peru,
		"tree":           colornames.Forestgreen,
		"chest":          colornames.Goldenrod,
		"tombstone":      colornames.Slategray,
		"portal":         colornames.Mediumpurple,
		"spark1":         colornames.Khaki,
	}

	// grass tiles get their own top color
	colorGrass = colornames.Seagreen
)

// facingMark is the width of the stripe marking an actor's facing side
const facingMark = 8

// Options configures optional parts of the scene
type Options struct {
	// Recorder captures every simulated tick when set
	Recorder *Recorder
	// RecordPath is where the recording is written on exit
	RecordPath string
	// Back builds the scene shown when the player leaves the level
	Back func() scene.Scene
	// Reloads delivers edited level sets in watch mode
	Reloads <-chan system.LevelSource
	Log     logrus.FieldLogger
}

// Playing is the main gameplay scene. It feeds input to a Session once per
// tick and draws the session's render commands as colored boxes.
type Playing struct {
	session    *system.Session
	input      InputSource
	recorder   *Recorder
	recordPath string
	back       func() scene.Scene
	reloads    <-chan system.LevelSource
	log        logrus.FieldLogger
	screenW    int
	screenH    int
}

// New creates a new Playing scene over a started session
func New(session *system.Session, input InputSource, screenW, screenH int, opts Options) *Playing {
	log := opts.Log
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Playing{
		session:    session,
		input:      input,
		recorder:   opts.Recorder,
		recordPath: opts.RecordPath,
		back:       opts.Back,
		reloads:    opts.Reloads,
		log:        log,
		screenW:    screenW,
		screenH:    screenH,
	}
}

// Session returns the running session
func (p *Playing) Session() *system.Session {
	return p.session
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(_ float64) (scene.Scene, error) {
	if p.input.Back() {
		return p.leave(), nil
	}
	p.applyReload()

	if p.session.State() == state.StateWon {
		if p.recorder != nil {
			p.recorder.Stop()
		}
		if p.input.Confirm() {
			return p.leave(), nil
		}
		return nil, nil
	}

	in := p.input.Poll()
	if p.recorder != nil {
		p.recorder.RecordFrame(in)
	}
	if err := p.session.Tick(in); err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}
	return nil, nil // nil = stay on this scene
}

// applyReload rebuilds the level when edited maps arrive. A broken map is
// logged and the current level keeps running.
func (p *Playing) applyReload() {
	select {
	case src := <-p.reloads:
		if err := p.session.ReloadLevels(src); err != nil {
			p.log.WithError(err).Error("failed to reload level")
		}
	default:
	}
}

func (p *Playing) leave() scene.Scene {
	if p.back == nil {
		return nil
	}
	return p.back()
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil || p.recorder.FrameCount() == 0 {
		return
	}

	filename := p.recordPath
	if filename == "" {
		filename = GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		p.log.WithError(err).Error("failed to save recording")
		return
	}
	p.log.WithFields(logrus.Fields{
		"file":   filename,
		"frames": p.recorder.FrameCount(),
	}).Info("recording saved")
}

// Draw renders the scene (implements scene.Scene)
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	for _, cmd := range p.session.Render() {
		p.drawCommand(screen, cmd)
	}

	hud := p.session.HUD()
	p.drawHUD(screen, hud)
	if hud.ShopOpen {
		p.drawShop(screen)
	}

	switch p.session.State() {
	case state.StatePlayerDead:
		p.drawOverlay(screen, colorDead, "YOU DIED")
	case state.StateLevelClear, state.StateTransitioning:
		p.drawOverlay(screen, colorOverlay, fmt.Sprintf("LEVEL %d", hud.Level))
	case state.StateWon:
		p.drawOverlay(screen, colorOverlay, fmt.Sprintf("You Won!\n\nScore: %d\n\nPress Enter", hud.Score))
	}
}

func (p *Playing) drawCommand(screen *ebiten.Image, cmd system.DrawCommand) {
	if cmd.Text != "" {
		ebitenutil.DebugPrintAt(screen, cmd.Text, int(cmd.X), int(cmd.Y))
		return
	}

	c := colorFor(cmd.Image, cmd.Alpha)
	ebitenutil.DrawRect(screen, cmd.X, cmd.Y, cmd.W, cmd.H, c)
	if cmd.Image == "tiles/grass/0" {
		ebitenutil.DrawRect(screen, cmd.X, cmd.Y, cmd.W, cmd.H/4, withAlpha(colorGrass, cmd.Alpha))
	}

	if !isActor(sheetOf(cmd.Image)) {
		return
	}
	markX := cmd.X + cmd.W - facingMark
	if cmd.FlipX {
		markX = cmd.X
	}
	ebitenutil.DrawRect(screen, markX, cmd.Y, facingMark, cmd.H, withAlpha(colornames.White, cmd.Alpha/2))
}

func (p *Playing) drawHUD(screen *ebiten.Image, h system.HUD) {
	barX, barY := 20.0, 20.0
	barW, barH := 300.0, 16.0

	ebitenutil.DrawRect(screen, barX, barY, barW, barH, colorHealthBG)
	ebitenutil.DrawRect(screen, barX, barY, barW*ratio(h.Health, h.MaxHealth), barH, colorHealthFG)

	ebitenutil.DrawRect(screen, barX, barY+barH+6, barW, barH/2, colorHealthBG)
	ebitenutil.DrawRect(screen, barX, barY+barH+6, barW*ratio(h.Endurance, h.MaxEndurance), barH/2, colorStamina)

	ebitenutil.DebugPrintAt(screen, hudText(h), int(barX), int(barY+barH*2+10))

	// Controls
	ebitenutil.DebugPrint(screen, "A/D: Move | Space: Jump | Z/LClick: Attack | E: Shop | 1-3: Buy | ESC: Menu")
}

func (p *Playing) drawShop(screen *ebiten.Image) {
	lines := shopLines(p.session.Shop(), p.session.Money())
	w, h := 420.0, float64(len(lines)*16+20)
	x, y := float64(p.screenW)/2-w/2, float64(p.screenH)/2-h/2

	ebitenutil.DrawRect(screen, x, y, w, h, colorOverlay)
	ebitenutil.DebugPrintAt(screen, strings.Join(lines, "\n"), int(x)+10, int(y)+10)
}

func (p *Playing) drawOverlay(screen *ebiten.Image, c color.Color, text string) {
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), c)
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-40, p.screenH/2-30)
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	p.log.WithField("level", p.session.Level()).Debug("playing scene entered")
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
}

// sheetOf returns the sprite sheet part of a render handle
func sheetOf(handle string) string {
	sheet, _, _ := strings.Cut(handle, "/")
	return sheet
}

func isActor(sheet string) bool {
	switch sheet {
	case "knight", "skeleton", "mushroom", "archer":
		return true
	}
	return false
}

// colorFor picks the fill color of a render handle
func colorFor(handle string, alpha uint8) color.NRGBA {
	c, ok := sheetColors[sheetOf(handle)]
	if !ok {
		c = colorUnknown
	}
	return withAlpha(c, alpha)
}

func withAlpha(c color.RGBA, alpha uint8) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: alpha}
}

func ratio(v, limit float64) float64 {
	if limit <= 0 || v <= 0 {
		return 0
	}
	if v >= limit {
		return 1
	}
	return v / limit
}

func hudText(h system.HUD) string {
	text := fmt.Sprintf("Level %d  HP %.0f/%.0f  Money %d  Score %d",
		h.Level, h.Health, h.MaxHealth, h.Money, h.Score)
	if h.ShopInRange && !h.ShopOpen {
		text += "\nPress E to open the shop"
	}
	return text
}

// shopLines lists the upgrade offers with their current tiers
func shopLines(shop *system.Shop, money int) []string {
	lines := []string{fmt.Sprintf("SHOP   money %d   price %d", money, shop.Price)}
	for i, attr := range system.Attributes {
		offer := fmt.Sprintf("%d  %-8s tier %d/%d  value %g", i+1, attr.String(), shop.Tier(attr), shop.MaxTier, shop.Value(attr))
		if shop.Tier(attr) >= shop.MaxTier {
			offer += "  (max)"
		}
		lines = append(lines, offer)
	}
	return append(lines, "E  close")
}
