package system

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/younwookim/ironknight/internal/application/state"
	"github.com/younwookim/ironknight/internal/domain/entity"
	"github.com/younwookim/ironknight/internal/infrastructure/config"
	"github.com/younwookim/ironknight/internal/infrastructure/save"
)

// LevelSource provides the text rows of a level
type LevelSource interface {
	Level(n int) ([]string, error)
}

// Session runs the level lifecycle: loading, the per-tick simulation,
// death and reload, portals, saving and the final win.
type Session struct {
	cfg    *config.GameConfig
	levels LevelSource
	store  save.Store
	rng    *rand.Rand
	log    logrus.FieldLogger

	input   *InputSystem
	physics *PhysicsSystem
	combat  *CombatSystem
	ai      *AISystem
	builder *LevelBuilder
	shop    *Shop
	camera  *Camera

	state state.GameState
	world *World
	level int
	money int
	score int
	ticks int

	deathTimer      int
	transitionTimer int
	shopInRange     bool
	shopOpen        bool
}

// NewSession creates a session waiting in the main menu
func NewSession(cfg *config.GameConfig, levels LevelSource, store save.Store, rng *rand.Rand, log logrus.FieldLogger) *Session {
	return &Session{
		cfg:     cfg,
		levels:  levels,
		store:   store,
		rng:     rng,
		log:     log,
		input:   NewInputSystem(),
		physics: NewPhysicsSystem(cfg.Physics),
		combat:  NewCombatSystem(ArrowSpec(cfg.Arrow), rng, log),
		ai:      NewAISystem(),
		builder: NewLevelBuilder(cfg),
		shop:    NewShop(cfg.Shop),
		camera:  NewCamera(cfg.Display.ScreenWidth, cfg.Display.ScreenHeight, cfg.Session.Camera),
		state:   state.StateMainMenu,
	}
}

// State returns the current game state
func (s *Session) State() state.GameState { return s.state }

// World returns the current level's entities, or nil before the first load
func (s *Session) World() *World { return s.world }

// Level returns the current level number
func (s *Session) Level() int { return s.level }

// Money returns the coins available to spend
func (s *Session) Money() int { return s.money }

// Score returns the accumulated score
func (s *Session) Score() int { return s.score }

// Shop returns the upgrade shop
func (s *Session) Shop() *Shop { return s.shop }

// Camera returns the view camera
func (s *Session) Camera() *Camera { return s.camera }

// Ticks returns the number of simulated ticks
func (s *Session) Ticks() int { return s.ticks }

// ShopOpen reports whether the shop menu is open
func (s *Session) ShopOpen() bool { return s.shopOpen }

// HUD returns the player status for the overlay
func (s *Session) HUD() HUD {
	h := HUD{
		Level:       s.level,
		Money:       s.money,
		Score:       s.score,
		ShopInRange: s.shopInRange,
		ShopOpen:    s.shopOpen,
	}
	if s.world != nil && s.world.Player != nil {
		p := s.world.Player
		h.Health, h.MaxHealth = p.Health, p.MaxHealth
		h.Endurance, h.MaxEndurance = p.Endurance, p.MaxEndurance
	}
	return h
}

// Render returns the draw commands of the current frame
func (s *Session) Render() []DrawCommand {
	if s.world == nil {
		return nil
	}
	return Render(s.world, s.camera)
}

func (s *Session) setState(next state.GameState) {
	if next == s.state {
		return
	}
	s.log.WithFields(logrus.Fields{
		"from":  s.state.String(),
		"to":    next.String(),
		"level": s.level,
	}).Info("state changed")
	s.state = next
}

// NewGame starts level 1 with no progress and no upgrades
func (s *Session) NewGame() error {
	s.level = 1
	s.money = 0
	s.score = 0
	s.shop.Reset()
	return s.loadLevel()
}

// Continue resumes from the save; a missing or corrupt save starts a new game
func (s *Session) Continue() error {
	st, err := s.store.Load()
	if err != nil {
		s.log.WithError(err).Warn("no usable save, starting a new game")
		return s.NewGame()
	}
	s.apply(st)
	if s.level > s.cfg.Levels.Count {
		s.setState(state.StateWon)
		return nil
	}
	return s.loadLevel()
}

// apply restores progress from a save
func (s *Session) apply(st save.State) {
	s.level = st.Level
	s.money = st.Money
	s.score = st.Score
	s.shop.SetTier(AttrDamage, st.Damage)
	s.shop.SetTier(AttrArmor, st.Health)
	s.shop.SetTier(AttrStamina, st.Stamina)
}

// snapshot captures progress for saving
func (s *Session) snapshot() save.State {
	return save.State{
		Level:   s.level,
		Money:   s.money,
		Score:   s.score,
		Damage:  s.shop.Tier(AttrDamage),
		Health:  s.shop.Tier(AttrArmor),
		Stamina: s.shop.Tier(AttrStamina),
	}
}

// persist writes the save. A failed write is logged, never fatal.
func (s *Session) persist() {
	st := s.snapshot()
	if err := s.store.Save(st); err != nil {
		s.log.WithError(err).Error("failed to save game")
		return
	}
	s.log.WithFields(logrus.Fields{
		"level": st.Level,
		"money": st.Money,
		"score": st.Score,
	}).Info("game saved")
}

// loadLevel rebuilds the world for the current level.
// A level beyond the last one wins the game.
func (s *Session) loadLevel() error {
	if s.level > s.cfg.Levels.Count {
		s.setState(state.StateWon)
		return nil
	}
	rows, err := s.levels.Level(s.level)
	if errors.Is(err, config.ErrLevelNotFound) {
		s.log.WithField("level", s.level).Warn("level not found, ending the game")
		s.setState(state.StateWon)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load level %d: %w", s.level, err)
	}

	world, err := s.builder.Build(rows, s.level, s.rng)
	if err != nil {
		return fmt.Errorf("failed to build level %d: %w", s.level, err)
	}
	s.world = world
	s.deathTimer = 0
	s.shopOpen = false
	s.shopInRange = false
	s.applyUpgrades()
	s.camera.Snap(world.Player.HitRect(), world.Stage)

	s.log.WithFields(logrus.Fields{
		"level":   s.level,
		"enemies": len(world.Enemies),
		"hazards": len(world.Hazards),
		"props":   len(world.Props),
	}).Info("level loaded")
	s.setState(state.StatePlaying)
	return nil
}

// ReloadLevels swaps the level source and rebuilds the level being played.
// Money, score and upgrades are kept. A dead player is left to the death
// timer, which rebuilds from the new source.
func (s *Session) ReloadLevels(src LevelSource) error {
	s.levels = src
	if s.state != state.StatePlaying {
		return nil
	}
	s.log.WithField("level", s.level).Info("reloading level")
	return s.loadLevel()
}

// applyUpgrades pushes the shop tiers onto the player
func (s *Session) applyUpgrades() {
	p := s.world.Player
	if p == nil {
		return
	}
	p.SetMaxHealth(s.shop.Value(AttrArmor))
	p.EnduranceRegen = s.shop.Value(AttrStamina)
}

// Tick advances the session by one fixed step
func (s *Session) Tick(in InputState) error {
	if s.state.Simulates() {
		return s.simulate(in)
	}
	switch s.state {
	case state.StateLevelClear:
		s.transitionTimer = s.cfg.Session.TransitionTicks
		s.setState(state.StateTransitioning)
	case state.StateTransitioning:
		s.transitionTimer--
		if s.transitionTimer <= 0 {
			return s.loadLevel()
		}
	}
	return nil
}

// simulate runs one world tick in the fixed order: intents, projectiles,
// hazards and props, player, enemies, effects, eviction.
func (s *Session) simulate(in InputState) error {
	w := s.world
	s.ticks++

	if s.state == state.StatePlaying {
		s.applyIntents(s.input.Intents(in))
	}

	s.combat.UpdateProjectiles(w)
	s.combat.ApplyHazards(w)
	if s.updateProps() {
		s.clearLevel()
		return nil
	}

	s.updatePlayer()
	s.updateEnemies()

	w.UpdateEffects()
	if n := w.Evict(); n > 0 {
		s.log.WithField("count", n).Debug("enemies evicted")
	}
	if w.Player != nil {
		s.camera.Follow(w.Player.HitRect(), w.Stage)
	}

	return s.checkDeath()
}

// applyIntents executes the player's intents for this tick
func (s *Session) applyIntents(intents []Intent) {
	p := s.world.LivePlayer()
	if p == nil {
		return
	}
	for _, intent := range intents {
		switch it := intent.(type) {
		case MoveIntent:
			p.MoveX(it.Dir)
		case JumpIntent:
			p.Jump()
		case AttackIntent:
			if !s.shopOpen {
				p.Attack(s.rng)
			}
		case InteractIntent:
			if s.shopInRange {
				s.shopOpen = !s.shopOpen
			}
		case PurchaseIntent:
			if s.shopOpen {
				s.purchase(it.Attr)
			}
		}
	}
}

// purchase buys one tier and applies it immediately
func (s *Session) purchase(attr Attribute) {
	if !s.shop.Purchase(attr, s.shop.Price, s.money) {
		s.log.WithFields(logrus.Fields{
			"attr":  attr.String(),
			"money": s.money,
			"tier":  s.shop.Tier(attr),
		}).Debug("purchase rejected")
		return
	}
	s.money -= s.shop.Price
	s.applyUpgrades()
	s.log.WithFields(logrus.Fields{
		"attr":  attr.String(),
		"tier":  s.shop.Tier(attr),
		"money": s.money,
	}).Info("upgrade purchased")
}

// updateProps ticks props and reports whether the player entered a portal
func (s *Session) updateProps() bool {
	var hit *entity.Rect
	if p := s.world.LivePlayer(); p != nil {
		r := p.HitRect()
		hit = &r
	}

	inRange := false
	teleport := false
	for _, prop := range s.world.Props {
		ev := prop.Update(hit)
		if ev.Coins > 0 {
			s.money += ev.Coins
			s.score += ev.Coins
			cx, cy := prop.Rect.Center()
			s.world.AddEffect(entity.NewMoneyText(cx, cy, ev.Coins, s.rng))
			s.log.WithField("coins", ev.Coins).Info("chest opened")
		}
		inRange = inRange || ev.ShopInRange
		teleport = teleport || ev.Teleport
	}
	s.shopInRange = inRange
	if !inRange {
		s.shopOpen = false
	}
	return teleport && s.state == state.StatePlaying
}

// updatePlayer runs the player's tick around physics and resolves its swing
func (s *Session) updatePlayer() {
	p := s.world.Player
	if p == nil {
		return
	}
	p.BeginTick()
	s.physics.Integrate(&p.Body, s.world.Stage)
	p.EndTick()
	s.combat.ResolvePlayerSwing(s.world, s.shop.Value(AttrDamage))
}

// updateEnemies runs AI, physics, combat and animation for every enemy
func (s *Session) updateEnemies() {
	w := s.world
	for _, e := range w.Enemies {
		if e.BeginTick() && s.ai.Think(e, w.LivePlayer()) {
			s.combat.StrikePlayer(w, e)
		}
		e.SelectAnim()
		s.physics.Integrate(&e.Body, w.Stage)
		e.EndTick()
		if e.ArrowInstant() {
			s.combat.SpawnArrow(w, e)
		}
	}
}

// checkDeath moves into PlayerDead and reloads once the death timer runs out
func (s *Session) checkDeath() error {
	p := s.world.Player
	switch s.state {
	case state.StatePlaying:
		if p != nil && !p.IsAlive {
			s.deathTimer = 0
			s.setState(state.StatePlayerDead)
		}
	case state.StatePlayerDead:
		s.deathTimer++
		if s.deathTimer >= s.cfg.Session.DeathTicks {
			s.money = 0
			s.score = 0
			return s.reloadFromSave()
		}
	}
	return nil
}

// reloadFromSave rebuilds the current level from the last save
func (s *Session) reloadFromSave() error {
	st, err := s.store.Load()
	if err != nil {
		s.log.WithError(err).Warn("no usable save, restarting")
		return s.NewGame()
	}
	s.apply(st)
	return s.loadLevel()
}

// clearLevel advances the level counter and persists progress
func (s *Session) clearLevel() {
	s.level++
	s.setState(state.StateLevelClear)
	s.persist()
}
