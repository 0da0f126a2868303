package duel

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-duel/internal/config"
)

func generateTestLevel(t *testing.T, seed int64) (*Level, config.DuelConfig) {
	t.Helper()
	cfg := config.DefaultDuelConfig()
	reg := DefaultPickupRegistry(cfg.Pickups.BoostDuration, cfg.Pickups.DebuffDuration)
	rng := rand.New(rand.NewSource(seed))
	return GenerateLevel(&cfg, reg, rng), cfg
}

func TestWallsComeInMirroredPairs(t *testing.T) {
	lvl, cfg := generateTestLevel(t, 42)

	if len(lvl.Walls)%2 != 0 {
		t.Fatalf("expected an even wall count, got %d", len(lvl.Walls))
	}
	if len(lvl.Walls) == 0 {
		t.Fatal("expected walls with default config")
	}

	boardW := float64(cfg.Board.Width)
	for i := 0; i < len(lvl.Walls); i += 2 {
		left := lvl.Walls[i]
		right := lvl.Walls[i+1]
		wantX := boardW - left.X - left.W
		if !almostEqual(right.X, wantX) {
			t.Errorf("pair %d not mirrored: left.X=%v right.X=%v want %v", i/2, left.X, right.X, wantX)
		}
		if !almostEqual(left.Y, right.Y) {
			t.Errorf("pair %d rows differ: %v vs %v", i/2, left.Y, right.Y)
		}
	}
}

func TestWallsStayInPlacementRange(t *testing.T) {
	lvl, cfg := generateTestLevel(t, 7)
	centerX := float64(cfg.Board.Width) / 2

	for i := 0; i < len(lvl.Walls); i += 2 {
		w := lvl.Walls[i]
		if w.X < 2 || w.X > centerX-cfg.Walls.Width-1 {
			t.Errorf("left wall x=%v outside placement range", w.X)
		}
		bottom := w.Bottom()
		if bottom < cfg.Walls.Height || bottom > float64(cfg.Board.Height)-0.5 {
			t.Errorf("wall bottom=%v outside placement range", bottom)
		}
	}
}

func TestWallsRespectMinDistance(t *testing.T) {
	lvl, cfg := generateTestLevel(t, 99)

	// The distance rule applies among left-half walls (the mirrored
	// right-half copies are checked against everything at placement
	// time, including cross-center pairs near the middle)
	for i := 0; i < len(lvl.Walls); i += 2 {
		for j := i + 2; j < len(lvl.Walls); j += 2 {
			ax, ay := lvl.Walls[i].Center()
			bx, by := lvl.Walls[j].Center()
			dist := math.Hypot(ax-bx, ay-by)
			if dist < cfg.Walls.MinDistance {
				t.Errorf("walls %d and %d too close: %v < %v", i, j, dist, cfg.Walls.MinDistance)
			}
		}
	}
}

func TestPickupsAvoidWallsAndSpawns(t *testing.T) {
	lvl, cfg := generateTestLevel(t, 5)

	if len(lvl.Pickups) == 0 {
		t.Fatal("expected pickups with default config")
	}

	p1x, p1y, p2x, p2y := StartPositions(&cfg)
	for _, pk := range lvl.Pickups {
		for _, w := range lvl.Walls {
			if pk.Rect().Intersects(w) {
				t.Errorf("pickup at (%v,%v) overlaps wall at (%v,%v)", pk.X, pk.Y, w.X, w.Y)
			}
		}
		if math.Abs(pk.X-p1x) < spawnBuffer && math.Abs(pk.Y-p1y) < spawnBuffer {
			t.Errorf("pickup at (%v,%v) inside p1 spawn zone", pk.X, pk.Y)
		}
		if math.Abs(pk.X-p2x) < spawnBuffer && math.Abs(pk.Y-p2y) < spawnBuffer {
			t.Errorf("pickup at (%v,%v) inside p2 spawn zone", pk.X, pk.Y)
		}
	}
}

func TestPickupsSplitAcrossSides(t *testing.T) {
	lvl, cfg := generateTestLevel(t, 5)
	centerX := float64(cfg.Board.Width) / 2

	var left, right int
	for _, pk := range lvl.Pickups {
		switch {
		case pk.X <= centerX-pickupCenterBuffer-pk.Size:
			left++
		case pk.X >= centerX+pickupCenterBuffer:
			right++
		default:
			t.Errorf("pickup at x=%v too close to the centerline", pk.X)
		}
	}
	if left != cfg.Pickups.Count/2 || right != cfg.Pickups.Count/2 {
		t.Errorf("uneven split: %d left, %d right, want %d each", left, right, cfg.Pickups.Count/2)
	}
}

func TestPickupsKeepSpacing(t *testing.T) {
	lvl, _ := generateTestLevel(t, 5)

	for i := 0; i < len(lvl.Pickups); i++ {
		for j := i + 1; j < len(lvl.Pickups); j++ {
			ax, ay := lvl.Pickups[i].Rect().Center()
			bx, by := lvl.Pickups[j].Rect().Center()
			if dist := math.Hypot(ax-bx, ay-by); dist < pickupSpacing {
				t.Errorf("pickups %d and %d too close: %v < %v", i, j, dist, pickupSpacing)
			}
		}
	}
}

func TestLevelGenerationIsDeterministic(t *testing.T) {
	a, _ := generateTestLevel(t, 1234)
	b, _ := generateTestLevel(t, 1234)

	if len(a.Walls) != len(b.Walls) || len(a.Pickups) != len(b.Pickups) {
		t.Fatalf("same seed produced different layouts: %d/%d walls, %d/%d pickups",
			len(a.Walls), len(b.Walls), len(a.Pickups), len(b.Pickups))
	}
	for i := range a.Walls {
		if a.Walls[i] != b.Walls[i] {
			t.Errorf("wall %d differs: %+v vs %+v", i, a.Walls[i], b.Walls[i])
		}
	}
	for i := range a.Pickups {
		if a.Pickups[i].Kind != b.Pickups[i].Kind ||
			!almostEqual(a.Pickups[i].X, b.Pickups[i].X) ||
			!almostEqual(a.Pickups[i].Y, b.Pickups[i].Y) {
			t.Errorf("pickup %d differs", i)
		}
	}
}

func TestDisabledWallsAndPickups(t *testing.T) {
	cfg := config.DefaultDuelConfig()
	cfg.Walls.Enabled = false
	cfg.Pickups.Enabled = false
	reg := DefaultPickupRegistry(cfg.Pickups.BoostDuration, cfg.Pickups.DebuffDuration)
	lvl := GenerateLevel(&cfg, reg, rand.New(rand.NewSource(1)))

	if len(lvl.Walls) != 0 || len(lvl.Pickups) != 0 {
		t.Errorf("disabled generation still produced %d walls and %d pickups",
			len(lvl.Walls), len(lvl.Pickups))
	}
}

func TestPickupRegistry(t *testing.T) {
	reg := DefaultPickupRegistry(3.0, 3.0)

	kinds := reg.Kinds()
	if len(kinds) != 2 {
		t.Fatalf("expected 2 registered kinds, got %d", len(kinds))
	}

	if _, ok := reg.New("teleport", 1, 1, 1); ok {
		t.Error("unknown kind should not construct")
	}
	pk, ok := reg.New(PickupBoost, 5, 5, 1)
	if !ok || pk.Kind != PickupBoost {
		t.Error("known kind should construct")
	}
}
