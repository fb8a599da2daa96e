package entity

// Body is the kinematic part of an actor.
// Real is the tight collision rect and is the only rect tested against
// geometry; Silhouette is the sprite placement rect and follows Real.
type Body struct {
	Real       Rect
	Silhouette Rect

	VX, VY  float64
	Gravity float64

	OnGround bool
}

// NewBody creates a body whose silhouette is centered on the real rect
func NewBody(real Rect, silhouetteW, silhouetteH, gravity float64) Body {
	b := Body{
		Real:       real,
		Silhouette: Rect{W: silhouetteW, H: silhouetteH},
		Gravity:    gravity,
		OnGround:   true,
	}
	b.Recenter()
	return b
}

// Recenter moves the silhouette onto the real rect's center
func (b *Body) Recenter() {
	b.Silhouette = b.Silhouette.CenteredOn(b.Real)
}

// Center returns the center of the real rect
func (b *Body) Center() (x, y float64) {
	return b.Real.Center()
}
