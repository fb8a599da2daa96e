package config

import (
	"errors"
	"fmt"
)

// GameConfig is the root config for game.yaml
type GameConfig struct {
	Display DisplayConfig           `yaml:"display"`
	Physics PhysicsConfig           `yaml:"physics"`
	Player  PlayerConfig            `yaml:"player"`
	Enemies map[string]EnemyConfig  `yaml:"enemies"`
	Arrow   ArrowConfig             `yaml:"arrow"`
	Hazards map[string]ObjectConfig `yaml:"hazards"`
	Props   map[string]ObjectConfig `yaml:"props"`
	Shop    ShopConfig              `yaml:"shop"`
	Session SessionConfig           `yaml:"session"`
	Levels  LevelsConfig            `yaml:"levels"`
	Save    SaveConfig              `yaml:"save"`
}

type DisplayConfig struct {
	ScreenWidth  int     `yaml:"screenWidth"`
	ScreenHeight int     `yaml:"screenHeight"`
	Scale        float64 `yaml:"scale"`
	TPS          int     `yaml:"tps"`
	Title        string  `yaml:"title"`
}

// PhysicsConfig holds world-level physics settings
type PhysicsConfig struct {
	// MaxFallSpeed caps downward velocity; 0 leaves it unbounded
	MaxFallSpeed float64 `yaml:"maxFallSpeed"`
	// GroundProbe is how far below the body the ground check looks
	GroundProbe float64 `yaml:"groundProbe"`
}

type ShopConfig struct {
	Price   int       `yaml:"price"`
	MaxTier int       `yaml:"maxTier"`
	Damage  []float64 `yaml:"damage"`
	Armor   []float64 `yaml:"armor"`
	Stamina []float64 `yaml:"stamina"`
}

type SessionConfig struct {
	DeathTicks      int          `yaml:"deathTicks"`
	TransitionTicks int          `yaml:"transitionTicks"`
	ChestCoins      RangeConfig  `yaml:"chestCoins"`
	Camera          CameraConfig `yaml:"camera"`
}

type CameraConfig struct {
	Smoothing float64 `yaml:"smoothing"`
	// Target position of the player on screen, as a fraction of the screen size
	AnchorX float64 `yaml:"anchorX"`
	AnchorY float64 `yaml:"anchorY"`
}

type SaveConfig struct {
	Backend string `yaml:"backend"` // "file" or "badger"
	Path    string `yaml:"path"`
}

// Validate reports every structural problem in the config
func (c *GameConfig) Validate() error {
	var errs []error
	if c.Display.ScreenWidth <= 0 || c.Display.ScreenHeight <= 0 {
		errs = append(errs, fmt.Errorf("display: screen size must be positive"))
	}
	if c.Levels.Count <= 0 {
		errs = append(errs, fmt.Errorf("levels: count must be positive"))
	}
	if c.Player.MaxHealth <= 0 {
		errs = append(errs, fmt.Errorf("player: maxHealth must be positive"))
	}
	for char, kind := range c.Levels.Legend {
		if len([]rune(char)) != 1 {
			errs = append(errs, fmt.Errorf("levels: legend key %q must be one character", char))
		}
		if _, ok := c.Enemies[kind]; ok {
			continue
		}
		if _, ok := c.Hazards[kind]; ok {
			continue
		}
		if _, ok := c.Props[kind]; ok {
			continue
		}
		switch kind {
		case KindPlayer, KindGrass, KindEarth:
			continue
		}
		errs = append(errs, fmt.Errorf("levels: legend %q refers to unknown kind %q", char, kind))
	}
	for name, e := range c.Enemies {
		if e.Style != "melee" && e.Style != "ranged" {
			errs = append(errs, fmt.Errorf("enemies.%s: unknown style %q", name, e.Style))
		}
		if len(e.Damage) == 0 {
			errs = append(errs, fmt.Errorf("enemies.%s: damage table is empty", name))
		}
	}
	tiers := c.Shop.MaxTier + 1
	if len(c.Shop.Damage) < tiers || len(c.Shop.Armor) < tiers || len(c.Shop.Stamina) < tiers {
		errs = append(errs, fmt.Errorf("shop: every attribute needs %d tier values", tiers))
	}
	return errors.Join(errs...)
}
