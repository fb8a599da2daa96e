package entity

// HazardKind enumerates damage-over-time zones
type HazardKind int

const (
	HazardFire HazardKind = iota
	HazardElectricField
	HazardPoisonCloud
)

// String returns the kind name used in config files and render handles
func (k HazardKind) String() string {
	switch k {
	case HazardFire:
		return "fire"
	case HazardElectricField:
		return "electric_field"
	case HazardPoisonCloud:
		return "poison_cloud"
	default:
		return "unknown"
	}
}

// ObjectSpec holds the size and animation of a static object kind
type ObjectSpec struct {
	Width, Height float64
	Frames        int
	Rate          float64 // damage per tick, hazards only
}

// objectRect places a w x h rect on the floor of the tile at (x, y)
func objectRect(x, y float64, spec ObjectSpec) Rect {
	return Rect{X: x, Y: y + TileSize - spec.Height, W: spec.Width, H: spec.Height}
}

// objectAnimator builds the loop animator shared by hazards and props
func objectAnimator(sheet string, frames int) Animator {
	return NewAnimator(sheet, FrameSet{AnimIdle: frames}, 2)
}

// Hazard damages every live actor overlapping it, every tick
type Hazard struct {
	Kind HazardKind
	Rect Rect
	Rate float64
	Anim Animator
}

// NewHazard creates a hazard on the floor of the tile at (x, y)
func NewHazard(kind HazardKind, x, y float64, spec ObjectSpec) *Hazard {
	return &Hazard{
		Kind: kind,
		Rect: objectRect(x, y, spec),
		Rate: spec.Rate,
		Anim: objectAnimator(kind.String(), spec.Frames),
	}
}

// DamageRect implements DamageSource
func (h *Hazard) DamageRect() Rect {
	return h.Rect
}

// DamageAmount implements DamageSource
func (h *Hazard) DamageAmount() float64 {
	return h.Rate
}

// PropKind enumerates decorations and interactive objects
type PropKind int

const (
	PropShop PropKind = iota
	PropTree
	PropChest
	PropTombstone
	PropPortal
)

// String returns the kind name used in config files and render handles
func (k PropKind) String() string {
	switch k {
	case PropShop:
		return "shop"
	case PropTree:
		return "tree"
	case PropChest:
		return "chest"
	case PropTombstone:
		return "tombstone"
	case PropPortal:
		return "portal"
	default:
		return "unknown"
	}
}

// ChestState is the open/close sub-state of a chest
type ChestState int

const (
	ChestClosed ChestState = iota
	ChestOpening
	ChestOpened
)

// PropEvent reports what a prop did during one tick
type PropEvent struct {
	Coins       int  // chest finished opening and paid out
	Opened      bool // chest started opening
	Teleport    bool // player stands in a portal
	ShopInRange bool // player may open the shop
}

// Prop is a decoration or interactive object
type Prop struct {
	Kind  PropKind
	Rect  Rect
	Anim  Animator
	Chest ChestState
	Coins int
}

// NewProp creates a prop on the floor of the tile at (x, y).
// variant selects a static frame for single-image props like tombstones.
func NewProp(kind PropKind, x, y float64, spec ObjectSpec, coins, variant int) *Prop {
	p := &Prop{
		Kind:  kind,
		Rect:  objectRect(x, y, spec),
		Anim:  objectAnimator(kind.String(), spec.Frames),
		Coins: coins,
	}
	if kind == PropTombstone && spec.Frames > 0 {
		p.Anim.Index = variant % spec.Frames
	}
	return p
}

// Update advances the prop for one tick. player is the live player's hit
// rect, or nil when there is none.
func (p *Prop) Update(player *Rect) PropEvent {
	var ev PropEvent
	touching := player != nil && p.Rect.Overlaps(*player)

	switch p.Kind {
	case PropShop:
		p.Anim.Tick()
		ev.ShopInRange = touching
	case PropPortal:
		p.Anim.Tick()
		ev.Teleport = touching
	case PropChest:
		switch p.Chest {
		case ChestClosed:
			if touching {
				p.Chest = ChestOpening
				p.Anim.Restart(AnimIdle)
				ev.Opened = true
			}
		case ChestOpening:
			p.Anim.Tick()
			if p.Anim.AtLastFrame() {
				p.Chest = ChestOpened
				ev.Coins = p.Coins
			}
		}
	case PropTree, PropTombstone:
	}
	return ev
}
