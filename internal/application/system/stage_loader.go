package system

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/younwookim/ironknight/internal/domain/entity"
	"github.com/younwookim/ironknight/internal/infrastructure/config"
)

// ErrNoPlayerSpawn is returned for a level without a player marker
var ErrNoPlayerSpawn = errors.New("level has no player spawn")

// EntityKind names what a map cell spawns (tile, player, enemy, hazard or prop)
type EntityKind string

// Spawn is one non-empty map cell
type Spawn struct {
	Kind         EntityKind
	TileX, TileY int
}

// ParseSpawns converts level rows into a spawn stream in row-major order.
// Characters missing from the legend are empty cells.
func ParseSpawns(rows []string, levels config.LevelsConfig) []Spawn {
	var spawns []Spawn
	for y, row := range rows {
		for x, ch := range []rune(row) {
			kind := levels.KindOf(ch)
			if kind == "" {
				continue
			}
			spawns = append(spawns, Spawn{Kind: EntityKind(kind), TileX: x, TileY: y})
		}
	}
	return spawns
}

var hazardKinds = map[EntityKind]entity.HazardKind{
	"fire":           entity.HazardFire,
	"electric_field": entity.HazardElectricField,
	"poison_cloud":   entity.HazardPoisonCloud,
}

var propKinds = map[EntityKind]entity.PropKind{
	"shop":      entity.PropShop,
	"tree":      entity.PropTree,
	"chest":     entity.PropChest,
	"tombstone": entity.PropTombstone,
	"portal":    entity.PropPortal,
}

// LevelBuilder turns spawn streams into worlds
type LevelBuilder struct {
	cfg *config.GameConfig
}

// NewLevelBuilder creates a new level builder
func NewLevelBuilder(cfg *config.GameConfig) *LevelBuilder {
	return &LevelBuilder{cfg: cfg}
}

// Build creates the world for one level. tier selects the enemy damage row;
// rng draws chest coins, tombstone variants and each enemy's patrol seed.
func (b *LevelBuilder) Build(rows []string, tier int, rng *rand.Rand) (*World, error) {
	width := 0
	for _, row := range rows {
		if n := len([]rune(row)); n > width {
			width = n
		}
	}
	world := NewWorld(entity.NewStage(width, len(rows), entity.TileSize))

	for _, sp := range ParseSpawns(rows, b.cfg.Levels) {
		if err := b.place(world, sp, tier, rng); err != nil {
			return nil, err
		}
	}
	if world.Player == nil {
		return nil, ErrNoPlayerSpawn
	}
	return world, nil
}

// place adds the entity for one spawn to the world
func (b *LevelBuilder) place(w *World, sp Spawn, tier int, rng *rand.Rand) error {
	x := float64(sp.TileX * entity.TileSize)
	y := float64(sp.TileY * entity.TileSize)

	switch sp.Kind {
	case config.KindGrass:
		w.Stage.SetTile(sp.TileX, sp.TileY, entity.Tile{Type: entity.TileGrass, Solid: true})
		return nil
	case config.KindEarth:
		w.Stage.SetTile(sp.TileX, sp.TileY, entity.Tile{Type: entity.TileEarth, Solid: true})
		return nil
	case config.KindPlayer:
		if w.Player == nil {
			w.Player = entity.NewPlayer(x, y, PlayerSpec(b.cfg.Player))
		}
		return nil
	}

	name := string(sp.Kind)
	if ec, ok := b.cfg.Enemies[name]; ok {
		seed := rand.New(rand.NewSource(rng.Int63()))
		w.Enemies = append(w.Enemies, entity.NewEnemy(w.NextID(), x, y, EnemySpec(name, ec, tier), seed))
		return nil
	}
	if oc, ok := b.cfg.Hazards[name]; ok {
		kind, known := hazardKinds[sp.Kind]
		if !known {
			return fmt.Errorf("unknown hazard kind %q", name)
		}
		w.Hazards = append(w.Hazards, entity.NewHazard(kind, x, y, ObjectSpec(oc)))
		return nil
	}
	if oc, ok := b.cfg.Props[name]; ok {
		kind, known := propKinds[sp.Kind]
		if !known {
			return fmt.Errorf("unknown prop kind %q", name)
		}
		coins, variant := 0, 0
		switch kind {
		case entity.PropChest:
			coins = randRange(rng, b.cfg.Session.ChestCoins)
		case entity.PropTombstone:
			if oc.Frames > 0 {
				variant = rng.Intn(oc.Frames)
			}
		}
		w.Props = append(w.Props, entity.NewProp(kind, x, y, ObjectSpec(oc), coins, variant))
		return nil
	}
	return fmt.Errorf("no config for kind %q at (%d, %d)", name, sp.TileX, sp.TileY)
}

func randRange(rng *rand.Rand, r config.RangeConfig) int {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + rng.Intn(r.Max-r.Min+1)
}

// PlayerSpec converts player config into entity tuning
func PlayerSpec(c config.PlayerConfig) entity.PlayerSpec {
	return entity.PlayerSpec{
		Width:            c.Body.Width,
		Height:           c.Body.Height,
		SilhouetteWidth:  c.Silhouette.Width,
		SilhouetteHeight: c.Silhouette.Height,
		Gravity:          c.Gravity,
		MaxHealth:        c.MaxHealth,
		MaxEndurance:     c.MaxEndurance,
		EnduranceRegen:   c.EnduranceRegen,
		MoveSpeed:        c.MoveSpeed,
		JumpVelocity:     c.JumpVelocity,
		JumpCost:         c.JumpCost,
		AttackCost:       c.AttackCost,
		HitFrameFromEnd:  c.HitInstant.FromEnd,
		HitTimer:         c.HitInstant.Timer,
		Frames:           entity.FrameSet(c.Animations),
	}
}

// EnemySpec converts enemy config into entity tuning for a level tier
func EnemySpec(name string, c config.EnemyConfig, tier int) entity.EnemySpec {
	style := entity.StyleMelee
	if c.Style == entity.StyleRanged.String() {
		style = entity.StyleRanged
	}
	return entity.EnemySpec{
		Name:              name,
		Style:             style,
		Width:             c.Body.Width,
		Height:            c.Body.Height,
		SilhouetteWidth:   c.Silhouette.Width,
		SilhouetteHeight:  c.Silhouette.Height,
		SearchWidth:       c.Search.Width,
		SearchHeight:      c.Search.Height,
		Gravity:           c.Gravity,
		MaxHealth:         c.MaxHealth,
		Damage:            c.DamageForTier(tier),
		PatrolSpeed:       c.PatrolSpeed,
		ChaseSpeed:        c.ChaseSpeed,
		PatrolDelayMin:    c.PatrolDelay.Min,
		PatrolDelayMax:    c.PatrolDelay.Max,
		PatrolWalk:        c.PatrolWalk,
		HitFrameFromEnd:   c.HitInstant.FromEnd,
		HitTimer:          c.HitInstant.Timer,
		ArrowFrameFromEnd: c.ArrowFrom,
		ExpireDelay:       c.ExpireDelay,
		FadeStep:          c.FadeStep,
		Frames:            entity.FrameSet(c.Animations),
	}
}

// ObjectSpec converts hazard or prop config into entity tuning
func ObjectSpec(c config.ObjectConfig) entity.ObjectSpec {
	return entity.ObjectSpec{
		Width:  c.Size.Width,
		Height: c.Size.Height,
		Frames: c.Frames,
		Rate:   c.Rate,
	}
}

// ArrowSpec converts arrow config into entity tuning
func ArrowSpec(c config.ArrowConfig) entity.ProjectileSpec {
	return entity.ProjectileSpec{
		Width:       c.Size.Width,
		Height:      c.Size.Height,
		Speed:       c.Speed,
		Drag:        c.Drag,
		DropDivisor: c.DropDivisor,
	}
}
