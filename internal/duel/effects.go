// Package duel implements a two-player race across a shared arena.
// Each player tries to reach the centerline first while projectiles,
// shields and pickups shift both players' movement speed.
package duel

import "github.com/vovakirdan/tui-duel/internal/config"

// MaxSpeedMultiplier caps the combined speed multiplier a player can reach.
const MaxSpeedMultiplier = 1.5

// boost is one deflection reward: a speed bonus active until End.
type boost struct {
	End    float64
	Amount float64
}

// Effects tracks the timed speed modifiers on one player.
// All times are simulation-clock seconds.
type Effects struct {
	slowEnd    float64
	slowSpan   float64 // Duration the active slow was applied with
	speedupEnd float64
	boosts     []boost

	slowFactor      float64
	speedupFactor   float64
	speedupDuration float64
	boostMax        float64
}

// NewEffects creates an effect tracker with the game's tuning values.
func NewEffects(cfg config.DuelConfig) Effects {
	return Effects{
		slowFactor:      cfg.Shooting.SlowFactor,
		speedupFactor:   cfg.Shooting.SpeedupFactor,
		speedupDuration: cfg.Shooting.SpeedupDuration,
		boostMax:        cfg.Shield.BoostMax,
	}
}

// Reset clears all active effects.
func (e *Effects) Reset() {
	e.slowEnd = 0
	e.slowSpan = 0
	e.speedupEnd = 0
	e.boosts = e.boosts[:0]
}

// Slowed reports whether a slow effect is active at the given time.
func (e *Effects) Slowed(now float64) bool {
	return now < e.slowEnd
}

// SpedUp reports whether a speedup effect is active at the given time.
func (e *Effects) SpedUp(now float64) bool {
	return now < e.speedupEnd
}

// ApplySlow starts a slow effect. An already active slow is not refreshed,
// so repeated hits do not keep a player pinned at minimum speed. Recovery
// spans the applied duration, so a long debuff recovers over its own
// window rather than overshooting the combat slow's.
func (e *Effects) ApplySlow(now, duration float64) {
	if !e.Slowed(now) && duration > 0 {
		e.slowEnd = now + duration
		e.slowSpan = duration
	}
}

// ApplySpeedup starts a speedup effect unless one is already active.
func (e *Effects) ApplySpeedup(now, duration float64) {
	if !e.SpedUp(now) {
		e.speedupEnd = now + duration
	}
}

// ExtendSpeedup adds duration on top of any remaining speedup time.
// Collecting several boosts in a row compounds into one longer effect.
func (e *Effects) ExtendSpeedup(now, duration float64) {
	if e.SpedUp(now) {
		remaining := e.speedupEnd - now
		e.speedupEnd = now + remaining + duration
	} else {
		e.speedupEnd = now + duration
	}
}

// AddBoost records one deflection reward lasting the given duration.
// Boosts stack individually; the total is capped in Multiplier.
func (e *Effects) AddBoost(now, duration, amount float64) {
	e.boosts = append(e.boosts, boost{End: now + duration, Amount: amount})
}

// BoostCount returns the number of unexpired deflection boosts.
func (e *Effects) BoostCount(now float64) int {
	n := 0
	for _, b := range e.boosts {
		if now < b.End {
			n++
		}
	}
	return n
}

// Multiplier computes the total speed multiplier at the given time and
// prunes expired deflection boosts.
//
// Slows recover linearly from slowFactor back to 1.0 over their duration,
// speedups decay linearly from speedupFactor down to 1.0. Deflection
// boosts add on top of base speed, capped at boostMax. A slow applies
// multiplicatively so it also eats into boost gains; a speedup adds on
// top but the total never exceeds MaxSpeedMultiplier.
func (e *Effects) Multiplier(now float64) float64 {
	kept := e.boosts[:0]
	shieldBoost := 0.0
	for _, b := range e.boosts {
		if now < b.End {
			kept = append(kept, b)
			shieldBoost += b.Amount
		}
	}
	e.boosts = kept
	if shieldBoost > e.boostMax {
		shieldBoost = e.boostMax
	}

	temp := 1.0
	if e.Slowed(now) {
		remaining := e.slowEnd - now
		temp = e.slowFactor + (1.0-e.slowFactor)*(1.0-remaining/e.slowSpan)
	} else if e.SpedUp(now) {
		remaining := e.speedupEnd - now
		temp = 1.0 + (e.speedupFactor-1.0)*(remaining/e.speedupDuration)
	}

	total := 1.0 + shieldBoost
	if temp < 1.0 {
		total *= temp
	} else {
		total += temp - 1.0
		if total > MaxSpeedMultiplier {
			total = MaxSpeedMultiplier
		}
	}
	return total
}
