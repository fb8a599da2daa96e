package system

import (
	"math"

	"github.com/younwookim/ironknight/internal/domain/entity"
	"github.com/younwookim/ironknight/internal/infrastructure/config"
)

// DrawCommand is one sprite or text the frontend draws this frame.
// Image is a handle of the form <sheet>/<state>/<frame>; text effects leave
// it empty and set Text instead. X and Y are screen coordinates.
type DrawCommand struct {
	Image string
	X, Y  float64
	W, H  float64
	FlipX bool
	Alpha uint8
	Text  string
}

// Camera converts world coordinates to screen coordinates.
// X and Y are the offset added to world positions.
type Camera struct {
	X, Y float64

	screenW, screenH float64
	cfg              config.CameraConfig
}

// NewCamera creates a camera for a screen of the given size
func NewCamera(screenW, screenH int, cfg config.CameraConfig) *Camera {
	if cfg.Smoothing <= 0 || cfg.Smoothing > 1 {
		cfg.Smoothing = 1
	}
	return &Camera{
		screenW: float64(screenW),
		screenH: float64(screenH),
		cfg:     cfg,
	}
}

// ScreenSize returns the viewport size
func (c *Camera) ScreenSize() (w, h float64) {
	return c.screenW, c.screenH
}

// target returns the clamped offset that puts r at the camera anchor
func (c *Camera) target(r entity.Rect, stage *entity.Stage) (x, y float64) {
	cx, cy := r.Center()
	x = c.screenW*c.cfg.AnchorX - cx
	y = c.screenH*c.cfg.AnchorY - cy
	return clampAxis(x, c.screenW, stage.PixelWidth()), clampAxis(y, c.screenH, stage.PixelHeight())
}

// clampAxis keeps the view inside [0, level]; a level smaller than the
// screen is pinned to the origin.
func clampAxis(offset, screen, level float64) float64 {
	if level <= screen {
		return 0
	}
	return math.Max(screen-level, math.Min(0, offset))
}

// Snap centers the camera on r immediately
func (c *Camera) Snap(r entity.Rect, stage *entity.Stage) {
	c.X, c.Y = c.target(r, stage)
}

// Follow eases the camera toward r
func (c *Camera) Follow(r entity.Rect, stage *entity.Stage) {
	tx, ty := c.target(r, stage)
	c.X += (tx - c.X) * c.cfg.Smoothing
	c.Y += (ty - c.Y) * c.cfg.Smoothing
}

// Apply moves a world rect into screen space
func (c *Camera) Apply(r entity.Rect) entity.Rect {
	return r.Moved(c.X, c.Y)
}

// Visible reports whether a world rect intersects the viewport
func (c *Camera) Visible(r entity.Rect) bool {
	return c.Apply(r).Overlaps(entity.Rect{W: c.screenW, H: c.screenH})
}

// Render lists draw commands for every visible entity, back to front:
// tiles, hazards, props, enemies, player, arrows, effects.
func Render(w *World, cam *Camera) []DrawCommand {
	cmds := make([]DrawCommand, 0, 256)
	push := func(image string, r entity.Rect, flip bool, alpha int, text string) {
		if !cam.Visible(r) {
			return
		}
		s := cam.Apply(r)
		cmds = append(cmds, DrawCommand{
			Image: image,
			X:     s.X,
			Y:     s.Y,
			W:     s.W,
			H:     s.H,
			FlipX: flip,
			Alpha: clampAlpha(alpha),
			Text:  text,
		})
	}

	renderTiles(w.Stage, cam, push)
	for _, h := range w.Hazards {
		push(h.Anim.Handle(), h.Rect, false, 255, "")
	}
	for _, p := range w.Props {
		push(p.Anim.Handle(), p.Rect, false, 255, "")
	}
	for _, e := range w.Enemies {
		push(e.Anim.Handle(), e.Silhouette, e.Direction < 0, e.Alpha, "")
	}
	if p := w.Player; p != nil {
		push(p.Anim.Handle(), p.Silhouette, p.Direction < 0, 255, "")
	}
	for _, a := range w.Projectiles {
		push("arrow/idle/0", a.Rect, a.Facing() < 0, 255, "")
	}
	for _, fx := range w.Effects {
		if fx.Kind == entity.EffectSpark {
			push(fx.Anim.Handle(), fx.Rect(), false, fx.Alpha, "")
			continue
		}
		push("", fx.Rect(), false, fx.Alpha, fx.Text)
	}
	return cmds
}

// renderTiles emits only the tiles inside the viewport
func renderTiles(stage *entity.Stage, cam *Camera, push func(string, entity.Rect, bool, int, string)) {
	if stage == nil || stage.TileSize <= 0 {
		return
	}
	ts := float64(stage.TileSize)
	sw, sh := cam.ScreenSize()
	x0 := int(math.Floor(-cam.X / ts))
	y0 := int(math.Floor(-cam.Y / ts))
	x1 := int(math.Floor((sw - cam.X) / ts))
	y1 := int(math.Floor((sh - cam.Y) / ts))

	for ty := y0; ty <= y1; ty++ {
		for tx := x0; tx <= x1; tx++ {
			tile := stage.GetTile(tx, ty)
			if !tile.Solid {
				continue
			}
			push(tileHandle(tile.Type), stage.TileRect(tx, ty), false, 255, "")
		}
	}
}

func tileHandle(t entity.TileType) string {
	if t == entity.TileEarth {
		return "tiles/earth/0"
	}
	return "tiles/grass/0"
}

func clampAlpha(a int) uint8 {
	if a < 0 {
		return 0
	}
	if a > 255 {
		return 255
	}
	return uint8(a)
}

// HUD is the player status shown over the level
type HUD struct {
	Level        int
	Health       float64
	MaxHealth    float64
	Endurance    float64
	MaxEndurance float64
	Money        int
	Score        int
	ShopInRange  bool
	ShopOpen     bool
}
