package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/ironknight/internal/application/state"
	"github.com/younwookim/ironknight/internal/domain/entity"
	"github.com/younwookim/ironknight/internal/infrastructure/save"
)

var openLevel = []string{
	"........................",
	"........................",
	".@.................!....",
	"------------------------",
}

var portalLevel = []string{
	".........",
	".........",
	".@G......",
	"---------",
}

var chestLevel = []string{
	".........",
	".........",
	".@C......",
	"---------",
}

var shopLevel = []string{
	".........",
	".........",
	".S@......",
	"---------",
}

func TestSession_StartsInMainMenu(t *testing.T) {
	s := newTestSession(t, sameLevels(openLevel...), &memStore{})

	assert.Equal(t, state.StateMainMenu, s.State())
	assert.Nil(t, s.World())
	assert.Nil(t, s.Render())
	require.NoError(t, s.Tick(InputState{Right: true}), "menu ticks are no-ops")
	assert.Equal(t, 0, s.Ticks())
}

func TestSession_NewGame(t *testing.T) {
	s := newTestSession(t, sameLevels(openLevel...), &memStore{})

	require.NoError(t, s.NewGame())

	assert.Equal(t, state.StatePlaying, s.State())
	assert.Equal(t, 1, s.Level())
	assert.Equal(t, 0, s.Money())
	require.NotNil(t, s.World().Player)
	assert.Len(t, s.World().Enemies, 1)
	assert.Equal(t, 100.0, s.World().Player.MaxHealth)
	assert.Equal(t, 20.0, s.World().Enemies[0].Damage, "tier 1 skeleton")
}

func TestSession_Continue(t *testing.T) {
	t.Run("no save starts a new game", func(t *testing.T) {
		store := &memStore{}
		s := newTestSession(t, sameLevels(openLevel...), store)

		require.NoError(t, s.Continue())
		assert.Equal(t, state.StatePlaying, s.State())
		assert.Equal(t, 1, s.Level())
		assert.Equal(t, 0, store.saves)
	})

	t.Run("restores progress and upgrades", func(t *testing.T) {
		store := &memStore{state: &save.State{Level: 2, Money: 350, Score: 900, Damage: 2, Health: 1, Stamina: 3}}
		s := newTestSession(t, sameLevels(openLevel...), store)

		require.NoError(t, s.Continue())
		assert.Equal(t, 2, s.Level())
		assert.Equal(t, 350, s.Money())
		assert.Equal(t, 900, s.Score())
		assert.Equal(t, 40.0, s.Shop().Value(AttrDamage))

		p := s.World().Player
		assert.Equal(t, 125.0, p.MaxHealth)
		assert.Equal(t, 125.0, p.Health)
		assert.Equal(t, 2.0, p.EnduranceRegen)
		assert.Equal(t, 55.0, s.World().Enemies[0].Damage, "tier 2 skeleton")
	})

	t.Run("saved level past the end wins", func(t *testing.T) {
		store := &memStore{state: &save.State{Level: 4}}
		s := newTestSession(t, sameLevels(openLevel...), store)

		require.NoError(t, s.Continue())
		assert.Equal(t, state.StateWon, s.State())
		assert.Nil(t, s.World())
	})

	t.Run("missing level map wins", func(t *testing.T) {
		store := &memStore{state: &save.State{Level: 2}}
		s := newTestSession(t, memLevels{1: openLevel}, store)

		require.NoError(t, s.Continue())
		assert.Equal(t, state.StateWon, s.State())
	})
}

func TestSession_LevelWithoutPlayerFails(t *testing.T) {
	s := newTestSession(t, sameLevels("....", "----"), &memStore{})

	err := s.NewGame()
	assert.ErrorIs(t, err, ErrNoPlayerSpawn)
}

func TestSession_DeathReloadsFromSave(t *testing.T) {
	store := &memStore{state: &save.State{Level: 1, Money: 100, Score: 100}}
	s := newTestSession(t, sameLevels(openLevel...), store)
	require.NoError(t, s.NewGame())
	s.money, s.score = 999, 999

	before := s.World()
	before.Player.TakeHit(1000)

	require.NoError(t, s.Tick(InputState{}))
	assert.Equal(t, state.StatePlayerDead, s.State())

	for i := 0; i < 239; i++ {
		require.NoError(t, s.Tick(InputState{Right: true}))
		require.Equal(t, state.StatePlayerDead, s.State(), "tick %d", i)
	}
	assert.Equal(t, 0.0, before.Player.VX, "dead players ignore input")

	require.NoError(t, s.Tick(InputState{}))
	assert.Equal(t, state.StatePlaying, s.State())
	assert.NotSame(t, before, s.World())
	assert.True(t, s.World().Player.IsAlive)
	assert.Equal(t, 100, s.Money())
	assert.Equal(t, 100, s.Score())
}

func TestSession_DeathWithoutSaveRestarts(t *testing.T) {
	s := newTestSession(t, sameLevels(openLevel...), &memStore{})
	require.NoError(t, s.NewGame())
	s.money = 500

	s.World().Player.TakeHit(1000)
	tickN(t, s, 241, InputState{})

	assert.Equal(t, state.StatePlaying, s.State())
	assert.Equal(t, 1, s.Level())
	assert.Equal(t, 0, s.Money())
}

func TestSession_DeadEnemyIsEvicted(t *testing.T) {
	s := newTestSession(t, sameLevels(openLevel...), &memStore{})
	require.NoError(t, s.NewGame())

	e := s.World().Enemies[0]
	e.TakeHit(120)

	tickN(t, s, 651, InputState{})
	require.Len(t, s.World().Enemies, 1)
	assert.False(t, e.IsAlive)
	assert.Equal(t, 5, e.Alpha)

	require.NoError(t, s.Tick(InputState{}))
	assert.Empty(t, s.World().Enemies)
	assert.True(t, e.Expired)
}

func TestSession_PortalSavesAndWins(t *testing.T) {
	store := &memStore{state: &save.State{Level: 2, Money: 50}}
	s := newTestSession(t, sameLevels(portalLevel...), store)
	require.NoError(t, s.Continue())

	walkIntoPortal := func() {
		for i := 0; i < 20 && s.State() == state.StatePlaying; i++ {
			require.NoError(t, s.Tick(InputState{Right: true}))
		}
		require.Equal(t, state.StateLevelClear, s.State())
	}

	walkIntoPortal()
	require.NotNil(t, store.state)
	assert.Equal(t, 3, store.state.Level)
	assert.Equal(t, 50, store.state.Money)
	assert.Equal(t, 1, store.saves)

	require.NoError(t, s.Tick(InputState{}))
	assert.Equal(t, state.StateTransitioning, s.State())
	tickN(t, s, 59, InputState{})
	assert.Equal(t, state.StateTransitioning, s.State())
	require.NoError(t, s.Tick(InputState{}))
	assert.Equal(t, state.StatePlaying, s.State())
	assert.Equal(t, 3, s.Level())

	walkIntoPortal()
	assert.Equal(t, 4, store.state.Level)
	tickN(t, s, 61, InputState{})
	assert.Equal(t, state.StateWon, s.State())
}

func TestSession_ChestPaysOnce(t *testing.T) {
	s := newTestSession(t, sameLevels(chestLevel...), &memStore{})
	require.NoError(t, s.NewGame())

	tickN(t, s, 3, InputState{Right: true})
	tickN(t, s, 60, InputState{})

	assert.GreaterOrEqual(t, s.Money(), 100)
	assert.LessOrEqual(t, s.Money(), 500)
	assert.Equal(t, s.Money(), s.Score())

	paid := s.Money()
	tickN(t, s, 100, InputState{})
	assert.Equal(t, paid, s.Money())
}

func TestSession_ShopPurchases(t *testing.T) {
	s := newTestSession(t, sameLevels(shopLevel...), &memStore{})
	require.NoError(t, s.NewGame())
	s.money = 600

	require.NoError(t, s.Tick(InputState{}))
	assert.True(t, s.HUD().ShopInRange)
	assert.False(t, s.ShopOpen())

	require.NoError(t, s.Tick(InputState{BuyArmor: true}))
	assert.Equal(t, 0, s.Shop().Tier(AttrArmor), "closed shop sells nothing")

	require.NoError(t, s.Tick(InputState{Interact: true}))
	require.True(t, s.ShopOpen())

	require.NoError(t, s.Tick(InputState{BuyArmor: true}))
	assert.Equal(t, 1, s.Shop().Tier(AttrArmor))
	assert.Equal(t, 350, s.Money())
	assert.Equal(t, 125.0, s.World().Player.MaxHealth)
	assert.Equal(t, 125.0, s.World().Player.Health)

	require.NoError(t, s.Tick(InputState{BuyArmor: true}))
	assert.Equal(t, 2, s.Shop().Tier(AttrArmor))
	assert.Equal(t, 100, s.Money())

	require.NoError(t, s.Tick(InputState{BuyStamina: true}))
	assert.Equal(t, 0, s.Shop().Tier(AttrStamina), "not enough money")
	assert.Equal(t, 100, s.Money())

	require.NoError(t, s.Tick(InputState{Attack: true}))
	assert.False(t, s.World().Player.IsAttacking(), "attacks are disabled while shopping")

	require.NoError(t, s.Tick(InputState{Interact: true}))
	assert.False(t, s.ShopOpen())
}

func TestSession_HUD(t *testing.T) {
	s := newTestSession(t, sameLevels(openLevel...), &memStore{})
	require.NoError(t, s.NewGame())

	h := s.HUD()
	assert.Equal(t, 1, h.Level)
	assert.Equal(t, 100.0, h.Health)
	assert.Equal(t, 500.0, h.MaxEndurance)
	assert.NotEmpty(t, s.Render())
}

func TestSession_SameSeedSameRun(t *testing.T) {
	run := func() []DrawCommand {
		s := newTestSession(t, sameLevels(openLevel...), &memStore{})
		require.NoError(t, s.NewGame())
		for i := 0; i < 300; i++ {
			in := InputState{Right: i%40 < 20, Attack: i%25 == 0, Jump: i%60 == 0}
			require.NoError(t, s.Tick(in))
		}
		return s.Render()
	}

	assert.Equal(t, run(), run())
}

func TestSession_ReloadLevels(t *testing.T) {
	s := newTestSession(t, sameLevels(openLevel...), &memStore{})
	require.NoError(t, s.ReloadLevels(sameLevels(chestLevel...)), "menu reloads only swap the source")
	assert.Equal(t, state.StateMainMenu, s.State())

	require.NoError(t, s.NewGame())
	assert.Len(t, s.World().Props, 1)
	s.money = 42

	require.NoError(t, s.ReloadLevels(sameLevels(openLevel...)))
	assert.Equal(t, state.StatePlaying, s.State())
	assert.Empty(t, s.World().Props)
	assert.Len(t, s.World().Enemies, 1)
	assert.Equal(t, 42, s.Money())
}

func TestSession_ReloadLevels_WhileDead(t *testing.T) {
	store := &memStore{state: &save.State{Level: 1, Money: 100, Score: 100}}
	s := newTestSession(t, sameLevels(openLevel...), store)
	require.NoError(t, s.NewGame())
	s.money, s.score = 700, 700

	dead := s.World().Player
	dead.TakeHit(1000)
	require.NoError(t, s.Tick(InputState{}))
	require.Equal(t, state.StatePlayerDead, s.State())

	require.NoError(t, s.ReloadLevels(sameLevels(chestLevel...)))
	assert.Equal(t, state.StatePlayerDead, s.State())
	assert.Same(t, dead, s.World().Player, "the corpse stays until the death timer runs out")
	assert.Equal(t, 700, s.Money())

	tickN(t, s, 240, InputState{})
	assert.Equal(t, state.StatePlaying, s.State())
	assert.Equal(t, 100, s.Money())
	assert.Len(t, s.World().Props, 1, "the rebuild uses the reloaded maps")
}

func TestSession_KilledPlayerCannotUsePortal(t *testing.T) {
	store := &memStore{}
	s := newTestSession(t, sameLevels(portalLevel...), store)
	require.NoError(t, s.NewGame())

	p := s.World().Player
	p.TakeHit(1000)
	assert.False(t, p.IsAlive, "a killing blow ends the player at once")

	portal := s.World().Props[0].Rect
	p.Real.X = portal.X
	p.Recenter()
	require.True(t, p.HitRect().Overlaps(portal))

	require.NoError(t, s.Tick(InputState{Right: true}))
	assert.Equal(t, state.StatePlayerDead, s.State())
	assert.Equal(t, 1, s.Level())
	assert.Equal(t, 0, store.saves)
}

func TestSession_KilledPlayerIgnoresInput(t *testing.T) {
	s := newTestSession(t, sameLevels(openLevel...), &memStore{})
	require.NoError(t, s.NewGame())

	p := s.World().Player
	require.True(t, p.OnGround)
	p.TakeHit(1000)

	require.NoError(t, s.Tick(InputState{Jump: true, Attack: true}))
	assert.Equal(t, state.StatePlayerDead, s.State())
	assert.Equal(t, 0.0, p.VY)
	assert.Equal(t, 500.0, p.Endurance)
	assert.Equal(t, entity.AnimDeath, p.Anim.State)
}
