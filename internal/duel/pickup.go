package duel

import (
	"sort"

	"github.com/vovakirdan/tui-duel/internal/core"
)

// PickupKind identifies a collectible type by name.
type PickupKind string

// Built-in pickup kinds.
const (
	PickupBoost  PickupKind = "speed_boost"  // Speeds up the collector
	PickupDebuff PickupKind = "speed_debuff" // Slows the collector's opponent
)

// PickupEffect applies a collected pickup's effect. collector picked the
// item up, opponent is the other player.
type PickupEffect func(collector, opponent *Player, now float64)

// Pickup is a collectible placed on the arena floor.
type Pickup struct {
	Kind   PickupKind
	X, Y   float64
	Size   float64
	effect PickupEffect
}

// Rect returns the pickup's collision box.
func (pk *Pickup) Rect() core.Rect {
	return core.NewRect(pk.X, pk.Y, pk.Size, pk.Size)
}

// Apply runs the pickup's effect on collection.
func (pk *Pickup) Apply(collector, opponent *Player, now float64) {
	if pk.effect != nil {
		pk.effect(collector, opponent, now)
	}
}

// PickupRegistry maps pickup kinds to their effects, letting level
// generation spawn pickups without hardcoding the available types.
type PickupRegistry struct {
	effects map[PickupKind]PickupEffect
}

// NewPickupRegistry creates an empty registry.
func NewPickupRegistry() *PickupRegistry {
	return &PickupRegistry{effects: make(map[PickupKind]PickupEffect)}
}

// Register adds a pickup kind. Registering an existing kind replaces it.
func (r *PickupRegistry) Register(kind PickupKind, effect PickupEffect) {
	r.effects[kind] = effect
}

// New creates a pickup of the given kind at the given position.
// Returns false if the kind is not registered.
func (r *PickupRegistry) New(kind PickupKind, x, y, size float64) (*Pickup, bool) {
	effect, ok := r.effects[kind]
	if !ok {
		return nil, false
	}
	return &Pickup{Kind: kind, X: x, Y: y, Size: size, effect: effect}, true
}

// Kinds returns all registered kinds in sorted order.
func (r *PickupRegistry) Kinds() []PickupKind {
	kinds := make([]PickupKind, 0, len(r.effects))
	for k := range r.effects {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// DefaultPickupRegistry returns a registry with the standard kinds.
//
// The boost compounds: collecting another boost while one is active
// extends the remaining time instead of restarting it. The debuff uses
// the plain slow path, so it does not refresh an active slow.
func DefaultPickupRegistry(boostDuration, debuffDuration float64) *PickupRegistry {
	r := NewPickupRegistry()
	r.Register(PickupBoost, func(collector, opponent *Player, now float64) {
		collector.Effects.ExtendSpeedup(now, boostDuration)
	})
	r.Register(PickupDebuff, func(collector, opponent *Player, now float64) {
		opponent.Effects.ApplySlow(now, debuffDuration)
	})
	return r
}
