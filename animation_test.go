package inkbutton

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestShapeTweenReachesTarget(t *testing.T) {
	from := Shape{Rect: Rect{X: 10, Y: 10}}
	to := Shape{Rect: Rect{X: -115, Y: -115, Width: 250, Height: 250}, CornerRadius: 125}

	tw := NewShapeTween(from, to, 0.5, ease.Linear)

	// Exact halves avoid float32 accumulation drift.
	tw.Update(0.25)
	tw.Update(0.25)

	if !tw.Done {
		t.Fatal("expected Done after full duration")
	}
	if tw.Value() != to {
		t.Errorf("Value() = %+v, want %+v", tw.Value(), to)
	}
}

func TestShapeTweenStaysAtEnd(t *testing.T) {
	to := Shape{Rect: Rect{Width: 80, Height: 60}}
	tw := NewShapeTween(Shape{}, to, 0.5, nil)
	tw.Update(1)
	for i := 0; i < 5; i++ {
		if got := tw.Update(0.1); got != to {
			t.Fatalf("update %d after finish: %+v, want %+v", i, got, to)
		}
	}
}

func TestShapeTweenLinearHalfway(t *testing.T) {
	to := Shape{Rect: Rect{Width: 100, Height: 50}, CornerRadius: 10}
	tw := NewShapeTween(Shape{}, to, 1.0, ease.Linear)

	got := tw.Update(0.5)
	if tw.Done {
		t.Fatal("should not be done at halfway")
	}
	if !approxEqual(got.Width, 50, 0.01) || !approxEqual(got.Height, 25, 0.01) || !approxEqual(got.CornerRadius, 5, 0.01) {
		t.Errorf("halfway = %+v, want half of %+v", got, to)
	}
}

func TestShapeTweenDefaultIsEaseOut(t *testing.T) {
	to := Shape{Rect: Rect{Width: 100, Height: 100}}
	tw := NewShapeTween(Shape{}, to, 1.0, nil)

	got := tw.Update(0.5)
	// Ease-out is ahead of linear at the midpoint (OutQuad gives 0.75).
	if got.Width <= 50 {
		t.Errorf("width at midpoint = %v, want > 50 for ease-out", got.Width)
	}
	if !approxEqual(got.Width, 75, 0.01) {
		t.Errorf("width at midpoint = %v, want ~75", got.Width)
	}
}

func TestShapeTweenZeroDuration(t *testing.T) {
	to := Shape{Rect: Rect{Width: 10, Height: 10}}
	tw := NewShapeTween(Shape{}, to, 0, nil)
	if !tw.Done {
		t.Error("zero-duration tween should be done immediately")
	}
	if tw.Value() != to {
		t.Errorf("Value() = %+v, want %+v", tw.Value(), to)
	}
}

func TestShapeTweenStartsAtFrom(t *testing.T) {
	from := Shape{Rect: Rect{X: 3, Y: 4}}
	tw := NewShapeTween(from, Shape{Rect: Rect{Width: 9, Height: 9}}, 0.5, nil)
	if tw.Value() != from {
		t.Errorf("initial Value() = %+v, want %+v", tw.Value(), from)
	}
	if tw.From() != from {
		t.Error("From() mismatch")
	}
}

func TestDefaultInkDuration(t *testing.T) {
	if DefaultInkDuration != 0.5 {
		t.Errorf("DefaultInkDuration = %v, want 0.5", DefaultInkDuration)
	}
}
