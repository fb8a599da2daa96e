package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/ironknight/internal/domain/entity"
	"github.com/younwookim/ironknight/internal/infrastructure/config"
)

var buildLevel = []string{
	"..............",
	"...C.....*..G.",
	"@.F..!..?..R.S",
	"------####----",
}

func TestParseSpawns(t *testing.T) {
	levels := config.LevelsConfig{Legend: map[string]string{
		"-": config.KindGrass,
		"@": config.KindPlayer,
		"!": "skeleton",
	}}

	spawns := ParseSpawns([]string{".@x", "!--"}, levels)

	assert.Equal(t, []Spawn{
		{Kind: config.KindPlayer, TileX: 1, TileY: 0},
		{Kind: "skeleton", TileX: 0, TileY: 1},
		{Kind: config.KindGrass, TileX: 1, TileY: 1},
		{Kind: config.KindGrass, TileX: 2, TileY: 1},
	}, spawns, "row-major, unknown characters are empty")

	assert.Empty(t, ParseSpawns([]string{"....", ""}, levels))
}

func TestLevelBuilder_Build(t *testing.T) {
	cfg := loadTestConfig(t)

	t.Run("places every kind", func(t *testing.T) {
		w, err := NewLevelBuilder(cfg).Build(buildLevel, 1, newTestRand())
		require.NoError(t, err)

		assert.Equal(t, 14, w.Stage.Width)
		assert.Equal(t, 4, w.Stage.Height)
		assert.Equal(t, entity.TileGrass, w.Stage.GetTile(0, 3).Type)
		assert.Equal(t, entity.TileEarth, w.Stage.GetTile(6, 3).Type)
		assert.True(t, w.Stage.GetTile(6, 3).Solid)
		assert.False(t, w.Stage.GetTile(0, 2).Solid)

		require.NotNil(t, w.Player)
		assert.Equal(t, 3.0*entity.TileSize, w.Player.Real.Bottom(), "player stands on its tile's floor")

		require.Len(t, w.Enemies, 3)
		names := []string{w.Enemies[0].Name, w.Enemies[1].Name, w.Enemies[2].Name}
		assert.Equal(t, []string{"archer", "skeleton", "mushroom"}, names)
		assert.Equal(t, entity.StyleRanged, w.Enemies[0].Style)
		assert.NotEqual(t, w.Enemies[0].ID, w.Enemies[1].ID)

		require.Len(t, w.Hazards, 1)
		assert.Equal(t, entity.HazardFire, w.Hazards[0].Kind)
		assert.Equal(t, 0.5, w.Hazards[0].Rate)

		kinds := make([]entity.PropKind, 0, len(w.Props))
		for _, p := range w.Props {
			kinds = append(kinds, p.Kind)
		}
		assert.Equal(t, []entity.PropKind{entity.PropChest, entity.PropPortal, entity.PropTombstone, entity.PropShop}, kinds)
		assert.Empty(t, w.Projectiles)
		assert.Empty(t, w.Effects)
	})

	t.Run("first player marker wins", func(t *testing.T) {
		w, err := NewLevelBuilder(cfg).Build([]string{"@..@", "----"}, 1, newTestRand())
		require.NoError(t, err)
		assert.Less(t, w.Player.Real.X, float64(entity.TileSize))
	})

	t.Run("missing player", func(t *testing.T) {
		_, err := NewLevelBuilder(cfg).Build([]string{"..!.", "----"}, 1, newTestRand())
		assert.ErrorIs(t, err, ErrNoPlayerSpawn)
	})

	t.Run("legend kind without config", func(t *testing.T) {
		broken := *cfg
		broken.Levels.Legend = map[string]string{"@": config.KindPlayer, "Z": "zombie"}
		_, err := NewLevelBuilder(&broken).Build([]string{"@Z"}, 1, newTestRand())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "zombie")
	})
}

func TestLevelBuilder_EnemyDamageTier(t *testing.T) {
	cfg := loadTestConfig(t)
	rows := []string{"@!?*", "----"}

	tests := []struct {
		tier int
		want []float64
	}{
		{1, []float64{20, 15, 25}},
		{2, []float64{55, 40, 60}},
		{3, []float64{95, 70, 120}},
		{9, []float64{95, 70, 120}},
	}

	for _, tt := range tests {
		w, err := NewLevelBuilder(cfg).Build(rows, tt.tier, newTestRand())
		require.NoError(t, err)
		got := []float64{w.Enemies[0].Damage, w.Enemies[1].Damage, w.Enemies[2].Damage}
		assert.Equal(t, tt.want, got, "tier %d", tt.tier)
	}
}

func TestLevelBuilder_ChestCoins(t *testing.T) {
	cfg := loadTestConfig(t)
	w, err := NewLevelBuilder(cfg).Build([]string{"@CCCCCCCCCC", "-----------"}, 1, newTestRand())
	require.NoError(t, err)

	require.Len(t, w.Props, 10)
	for _, p := range w.Props {
		assert.GreaterOrEqual(t, p.Coins, cfg.Session.ChestCoins.Min)
		assert.LessOrEqual(t, p.Coins, cfg.Session.ChestCoins.Max)
		assert.Equal(t, entity.ChestClosed, p.Chest)
	}
}

func TestLevelBuilder_Deterministic(t *testing.T) {
	cfg := loadTestConfig(t)
	build := func() *World {
		w, err := NewLevelBuilder(cfg).Build(buildLevel, 2, newTestRand())
		require.NoError(t, err)
		return w
	}

	a, b := build(), build()
	for i := range a.Enemies {
		assert.Equal(t, a.Enemies[i].Patrol, b.Enemies[i].Patrol)
		assert.Equal(t, a.Enemies[i].Direction, b.Enemies[i].Direction)
	}
	for i := range a.Props {
		assert.Equal(t, a.Props[i].Coins, b.Props[i].Coins)
		assert.Equal(t, a.Props[i].Anim.Index, b.Props[i].Anim.Index)
	}
}

func TestRandRange(t *testing.T) {
	rng := newTestRand()

	assert.Equal(t, 7, randRange(rng, config.RangeConfig{Min: 7, Max: 7}))
	assert.Equal(t, 7, randRange(rng, config.RangeConfig{Min: 7, Max: 3}))
	for i := 0; i < 100; i++ {
		v := randRange(rng, config.RangeConfig{Min: 1, Max: 3})
		assert.True(t, v >= 1 && v <= 3)
	}
}
