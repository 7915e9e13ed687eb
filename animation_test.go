package scrollkit

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestVec2TweenReachesTarget(t *testing.T) {
	tw := NewVec2Tween(Vec2{0, 0}, Vec2{100, -50}, 1.0, ease.Linear)
	if tw.From() != (Vec2{0, 0}) || tw.To() != (Vec2{100, -50}) {
		t.Fatal("endpoints not kept")
	}

	mid := tw.Update(0.5)
	if tw.Done {
		t.Fatal("should not be done halfway")
	}
	if math.Abs(mid.X-50) > 0.01 || math.Abs(mid.Y+25) > 0.01 {
		t.Errorf("halfway = %v, want ~(50, -25)", mid)
	}

	end := tw.Update(0.5)
	if !tw.Done {
		t.Fatal("expected Done after full duration")
	}
	if end != (Vec2{100, -50}) {
		t.Errorf("end = %v, want exactly (100, -50)", end)
	}
	if again := tw.Update(1); again != end {
		t.Errorf("finished tween moved to %v", again)
	}
}

func TestVec2TweenZeroDuration(t *testing.T) {
	tw := NewVec2Tween(Vec2{1, 2}, Vec2{3, 4}, 0, nil)
	if !tw.Done {
		t.Fatal("zero duration should be done immediately")
	}
	if got := tw.Update(0); got != (Vec2{3, 4}) {
		t.Errorf("Update = %v, want (3, 4)", got)
	}
}

func TestVec2TweenEasing(t *testing.T) {
	linear := NewVec2Tween(Vec2{}, Vec2{0, 100}, 1.0, ease.Linear)
	eased := NewVec2Tween(Vec2{}, Vec2{0, 100}, 1.0, ease.InQuad)
	l := linear.Update(0.5)
	e := eased.Update(0.5)
	if e.Y >= l.Y {
		t.Errorf("InQuad at half = %v, should trail linear %v", e.Y, l.Y)
	}
}

func TestVec2TweenLargeCoordinates(t *testing.T) {
	// float32 alone cannot step by 1 near 1e8.
	from := Vec2{0, 1e8}
	tw := NewVec2Tween(from, Vec2{0, 1e8 + 10}, 1.0, ease.Linear)
	mid := tw.Update(0.5)
	if math.Abs(mid.Y-(1e8+5)) > 0.01 {
		t.Errorf("mid = %v, want ~%v", mid.Y, 1e8+5)
	}
}
