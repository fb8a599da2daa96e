package entity

import "math"

// EntityID is a unique identifier for an entity within one level
type EntityID uint32

// TileSize is the edge length of a level tile in pixels
const TileSize = 64

// TileType represents the type of a tile
type TileType int

const (
	TileEmpty TileType = iota
	TileGrass
	TileEarth
)

// Tile represents a single tile in the stage
type Tile struct {
	Type  TileType
	Solid bool
}

// Stage holds the static level geometry on a tile grid
type Stage struct {
	Width    int
	Height   int
	TileSize int
	Tiles    [][]Tile
}

// NewStage creates an empty stage of the given size in tiles
func NewStage(width, height, tileSize int) *Stage {
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
	}
	return &Stage{
		Width:    width,
		Height:   height,
		TileSize: tileSize,
		Tiles:    tiles,
	}
}

// GetTile returns the tile at the given tile coordinates.
// Cells outside the grid are empty so bodies can fall out of the level.
func (s *Stage) GetTile(tx, ty int) Tile {
	if tx < 0 || tx >= s.Width || ty < 0 || ty >= s.Height {
		return Tile{Type: TileEmpty}
	}
	return s.Tiles[ty][tx]
}

// SetTile places a tile; out of range coordinates are ignored
func (s *Stage) SetTile(tx, ty int, t Tile) {
	if tx < 0 || tx >= s.Width || ty < 0 || ty >= s.Height {
		return
	}
	s.Tiles[ty][tx] = t
}

// TileRect returns the world rect of a tile cell
func (s *Stage) TileRect(tx, ty int) Rect {
	ts := float64(s.TileSize)
	return Rect{X: float64(tx) * ts, Y: float64(ty) * ts, W: ts, H: ts}
}

// PixelWidth returns the stage width in pixels
func (s *Stage) PixelWidth() float64 {
	return float64(s.Width * s.TileSize)
}

// PixelHeight returns the stage height in pixels
func (s *Stage) PixelHeight() float64 {
	return float64(s.Height * s.TileSize)
}

// SolidRects returns the rects of all solid tiles overlapping r, row by row
func (s *Stage) SolidRects(r Rect) []Rect {
	if s.TileSize <= 0 {
		return nil
	}
	ts := float64(s.TileSize)
	startTX := int(math.Floor(r.Left() / ts))
	endTX := int(math.Floor(r.Right() / ts))
	startTY := int(math.Floor(r.Top() / ts))
	endTY := int(math.Floor(r.Bottom() / ts))

	var out []Rect
	for ty := startTY; ty <= endTY; ty++ {
		for tx := startTX; tx <= endTX; tx++ {
			if !s.GetTile(tx, ty).Solid {
				continue
			}
			tr := s.TileRect(tx, ty)
			if tr.Overlaps(r) {
				out = append(out, tr)
			}
		}
	}
	return out
}

// IsSolidRect reports whether r overlaps any solid tile
func (s *Stage) IsSolidRect(r Rect) bool {
	return len(s.SolidRects(r)) > 0
}
