package system

import "github.com/younwookim/ironknight/internal/domain/entity"

// World owns every entity of the current level, one roster per kind.
// It is rebuilt wholesale when a level is (re)loaded.
type World struct {
	Stage       *entity.Stage
	Player      *entity.Player
	Enemies     []*entity.Enemy
	Projectiles []*entity.Projectile
	Hazards     []*entity.Hazard
	Props       []*entity.Prop
	Effects     []*entity.Effect

	nextID entity.EntityID
}

// NewWorld creates an empty world over the given stage
func NewWorld(stage *entity.Stage) *World {
	return &World{
		Stage:       stage,
		Enemies:     make([]*entity.Enemy, 0, 16),
		Projectiles: make([]*entity.Projectile, 0, 16),
		Effects:     make([]*entity.Effect, 0, 32),
	}
}

// NextID returns a fresh entity id
func (w *World) NextID() entity.EntityID {
	w.nextID++
	return w.nextID
}

// LivePlayer returns the player while alive, or nil
func (w *World) LivePlayer() *entity.Player {
	if w.Player == nil || !w.Player.IsAlive {
		return nil
	}
	return w.Player
}

// LiveActors returns the live actors that belong to faction f
func (w *World) LiveActors(f entity.Faction) []entity.CombatActor {
	var out []entity.CombatActor
	if p := w.LivePlayer(); p != nil && p.Faction() == f {
		out = append(out, p)
	}
	for _, e := range w.Enemies {
		if e.IsAlive && e.Faction() == f {
			out = append(out, e)
		}
	}
	return out
}

// Opponents returns the live actors an attacker of faction f may damage
func (w *World) Opponents(f entity.Faction) []entity.CombatActor {
	var out []entity.CombatActor
	if p := w.LivePlayer(); p != nil && f.Opposes(p.Faction()) {
		out = append(out, p)
	}
	for _, e := range w.Enemies {
		if e.IsAlive && f.Opposes(e.Faction()) {
			out = append(out, e)
		}
	}
	return out
}

// AddEffect appends a visual effect
func (w *World) AddEffect(e *entity.Effect) {
	w.Effects = append(w.Effects, e)
}

// UpdateEffects advances every effect by one tick
func (w *World) UpdateEffects() {
	for _, e := range w.Effects {
		e.Update()
	}
}

// Evict drops expired enemies, finished effects and removed projectiles.
// It returns the number of enemies evicted.
func (w *World) Evict() int {
	evicted := 0
	enemies := w.Enemies[:0]
	for _, e := range w.Enemies {
		if e.Expired {
			evicted++
			continue
		}
		enemies = append(enemies, e)
	}
	clearTail(w.Enemies, len(enemies))
	w.Enemies = enemies

	effects := w.Effects[:0]
	for _, e := range w.Effects {
		if !e.Done {
			effects = append(effects, e)
		}
	}
	clearTail(w.Effects, len(effects))
	w.Effects = effects

	projectiles := w.Projectiles[:0]
	for _, p := range w.Projectiles {
		if !p.Removed {
			projectiles = append(projectiles, p)
		}
	}
	clearTail(w.Projectiles, len(projectiles))
	w.Projectiles = projectiles

	return evicted
}

// clearTail nils out the dropped pointers after in-place filtering
func clearTail[T any](s []*T, n int) {
	for i := n; i < len(s); i++ {
		s[i] = nil
	}
}
