package inkbutton

import "testing"

func TestNewButtonDefaults(t *testing.T) {
	b := NewButton("b", 100, 50, DefaultStyle())
	if b.AnimationMode() != AnimationTouchCenterCircleFill {
		t.Errorf("mode = %s, want touchCenterCircleFill", b.AnimationMode())
	}
	if b.InkColor() != DefaultInkColor {
		t.Errorf("ink color = %v, want %v", b.InkColor(), DefaultInkColor)
	}
	if b.CornerRadius() != 0 || b.BorderWidth() != 0 || b.BorderColor() != nil {
		t.Error("default style should have no rounding and no border")
	}
	if b.MasksToBounds() {
		t.Error("masksToBounds should be off without a corner radius")
	}
	if !b.Enabled {
		t.Error("new button should be enabled")
	}
	if b.InkDuration != DefaultInkDuration {
		t.Errorf("InkDuration = %v, want %v", b.InkDuration, DefaultInkDuration)
	}
	if b.InkLayer() == nil || b.InkLayer().AnimationCount() != 0 {
		t.Error("ink layer should exist with no animation")
	}
}

func TestSetCornerRadius(t *testing.T) {
	b := NewButton("b", 100, 50, DefaultStyle())

	b.SetCornerRadius(12)
	if b.CornerRadius() != 12 || !b.MasksToBounds() {
		t.Errorf("radius=%v masks=%v, want 12/true", b.CornerRadius(), b.MasksToBounds())
	}

	b.SetCornerRadius(-4)
	if b.CornerRadius() != 0 || b.MasksToBounds() {
		t.Errorf("negative radius: radius=%v masks=%v, want 0/false", b.CornerRadius(), b.MasksToBounds())
	}
}

func TestSetBorder(t *testing.T) {
	b := NewButton("b", 100, 50, DefaultStyle())
	b.SetBorderWidth(-1)
	if b.BorderWidth() != 0 {
		t.Errorf("BorderWidth = %v, want 0", b.BorderWidth())
	}

	c := Color{1, 0, 0, 1}
	b.SetBorderColor(&c)
	c.G = 1
	if got := b.BorderColor(); got == nil || *got != (Color{1, 0, 0, 1}) {
		t.Errorf("BorderColor = %v, want a copy of red", got)
	}
	got := b.BorderColor()
	got.B = 1
	if b.BorderColor().B != 0 {
		t.Error("BorderColor should return a copy")
	}

	b.SetBorderColor(nil)
	if b.BorderColor() != nil {
		t.Error("nil should clear the border color")
	}
}

func TestSetInkColorReachesLayer(t *testing.T) {
	b := NewButton("b", 100, 50, DefaultStyle())
	c := Color{0, 0.5, 1, 0.25}
	b.SetInkColor(c)
	if b.InkLayer().FillColor != c {
		t.Errorf("layer fill = %v, want %v", b.InkLayer().FillColor, c)
	}
}

func TestStyleRoundTrip(t *testing.T) {
	border := Color{0, 0, 0, 1}
	st := Style{
		CornerRadius: 8,
		BorderWidth:  2,
		BorderColor:  &border,
		InkColor:     Color{1, 1, 0, 0.5},
		Mode:         AnimationBottomToTopFill,
	}
	b := NewButton("b", 100, 50, st)
	got := b.Style()
	if got.CornerRadius != 8 || got.BorderWidth != 2 || got.InkColor != st.InkColor || got.Mode != st.Mode {
		t.Errorf("Style() = %+v, want %+v", got, st)
	}
	if got.BorderColor == nil || *got.BorderColor != border {
		t.Errorf("BorderColor = %v, want %v", got.BorderColor, border)
	}
}

func TestNegativeSizeClamped(t *testing.T) {
	b := NewButton("b", -10, -5, DefaultStyle())
	if w, h := b.Size(); w != 0 || h != 0 {
		t.Errorf("Size = %vx%v, want 0x0", w, h)
	}
}

func TestFrameUsesPosition(t *testing.T) {
	b := NewButton("b", 100, 50, DefaultStyle())
	b.SetPosition(10, 20)
	want := Rect{X: 10, Y: 20, Width: 100, Height: 50}
	if b.Frame() != want {
		t.Errorf("Frame = %+v, want %+v", b.Frame(), want)
	}
	if b.Bounds() != (Rect{Width: 100, Height: 50}) {
		t.Errorf("Bounds = %+v, want local rect", b.Bounds())
	}
}

func TestBeginInkEveryMode(t *testing.T) {
	touch := Vec2{X: 30, Y: 10}
	for _, mode := range AnimationModes {
		t.Run(mode.String(), func(t *testing.T) {
			b := NewButton("b", 100, 50, DefaultStyle())
			b.SetAnimationMode(mode)

			start, end := b.BeginInk(&touch)
			wantStart, wantEnd := InkShapes(mode, &touch, b.Bounds())
			if start != wantStart || end != wantEnd {
				t.Fatalf("BeginInk = %+v -> %+v, want %+v -> %+v", start, end, wantStart, wantEnd)
			}

			l := b.InkLayer()
			if l.Path != start {
				t.Errorf("Path = %+v, want start %+v", l.Path, start)
			}
			tw := l.Animation(AnimationKeyPath)
			if tw == nil {
				t.Fatal("expected a path animation")
			}
			if tw.From() != start || tw.To() != end {
				t.Errorf("animation %+v -> %+v, want %+v -> %+v", tw.From(), tw.To(), start, end)
			}
		})
	}
}

func TestBeginInkAnimatesToEnd(t *testing.T) {
	b := NewButton("b", 100, 50, DefaultStyle())
	_, end := b.BeginInk(&Vec2{})
	for i := 0; i < 4; i++ {
		b.Update(0.25)
	}
	if got := b.InkLayer().PresentationShape(); got != end {
		t.Errorf("presentation = %+v, want %+v", got, end)
	}
}

func TestBeginInkTwiceKeepsOneAnimation(t *testing.T) {
	b := NewButton("b", 100, 50, DefaultStyle())
	b.BeginInk(&Vec2{X: 1, Y: 1})
	_, end := b.BeginInk(&Vec2{X: 90, Y: 40})

	l := b.InkLayer()
	if l.AnimationCount() != 1 {
		t.Fatalf("AnimationCount = %d, want 1", l.AnimationCount())
	}
	if l.Animation(AnimationKeyPath).To() != end {
		t.Error("second touch should replace the animation target")
	}
}

func TestCancelInkWithoutAnimation(t *testing.T) {
	for _, mode := range AnimationModes {
		t.Run(mode.String(), func(t *testing.T) {
			b := NewButton("b", 100, 50, DefaultStyle())
			b.SetAnimationMode(mode)
			before := b.InkLayer().Path

			b.CancelInk()
			b.CancelInk()

			l := b.InkLayer()
			if l.AnimationCount() != 0 {
				t.Errorf("AnimationCount = %d, want 0", l.AnimationCount())
			}
			if l.Path != before {
				t.Errorf("Path changed to %+v", l.Path)
			}
		})
	}
}

func TestCancelInkRevertsToStartPath(t *testing.T) {
	b := NewButton("b", 100, 50, DefaultStyle())
	b.SetAnimationMode(AnimationTopToBottomFill)
	start, _ := b.BeginInk(nil)
	b.Update(0.25)
	b.CancelInk()

	l := b.InkLayer()
	if l.Animation(AnimationKeyPath) != nil {
		t.Fatal("animation should be removed")
	}
	if got := l.PresentationShape(); got != start {
		t.Errorf("presentation after cancel = %+v, want start %+v", got, start)
	}
}

func TestOnDownWithoutLocationUsesOrigin(t *testing.T) {
	b := NewButton("b", 100, 50, DefaultStyle())
	b.OnDown(TouchContext{LocalX: 70, LocalY: 30})

	want := StartShape(AnimationTouchCenterCircleFill, Vec2{}, b.Bounds())
	if b.InkLayer().Path != want {
		t.Errorf("Path = %+v, want origin start %+v", b.InkLayer().Path, want)
	}
}

func TestOnDownUsesLocalLocation(t *testing.T) {
	b := NewButton("b", 100, 50, DefaultStyle())
	b.OnDown(TouchContext{LocalX: 70, LocalY: 30, HasLocation: true})

	want := StartShape(AnimationTouchCenterCircleFill, Vec2{X: 70, Y: 30}, b.Bounds())
	if b.InkLayer().Path != want {
		t.Errorf("Path = %+v, want %+v", b.InkLayer().Path, want)
	}
}

func TestTouchEndsRemoveAnimation(t *testing.T) {
	ends := []struct {
		name string
		fn   func(*Button, TouchContext)
	}{
		{"upInside", (*Button).OnUpInside},
		{"upOutside", (*Button).OnUpOutside},
		{"cancelled", (*Button).OnCancelled},
	}
	for _, e := range ends {
		t.Run(e.name, func(t *testing.T) {
			b := NewButton("b", 100, 50, DefaultStyle())
			b.OnDown(TouchContext{LocalX: 5, LocalY: 5, HasLocation: true})
			e.fn(b, TouchContext{})
			if b.InkLayer().AnimationCount() != 0 {
				t.Error("touch end should remove the ink animation")
			}
		})
	}
}

func TestOnTapOnlyOnUpInside(t *testing.T) {
	b := NewButton("b", 100, 50, DefaultStyle())
	taps := 0
	b.OnTap = func(*Button) { taps++ }

	b.OnDown(TouchContext{HasLocation: true})
	b.OnUpOutside(TouchContext{HasLocation: true})
	b.OnDown(TouchContext{HasLocation: true})
	b.OnCancelled(TouchContext{})
	if taps != 0 {
		t.Fatalf("taps = %d, want 0", taps)
	}

	b.OnDown(TouchContext{HasLocation: true})
	b.OnUpInside(TouchContext{HasLocation: true})
	if taps != 1 {
		t.Errorf("taps = %d, want 1", taps)
	}
}

func TestTraceReceivesInkEvents(t *testing.T) {
	b := NewButton("b", 100, 50, DefaultStyle())
	var lines int
	b.trace = func(string, ...any) { lines++ }

	b.BeginInk(nil)
	b.CancelInk()
	b.CancelInk() // no animation, no trace
	if lines != 2 {
		t.Errorf("trace lines = %d, want 2", lines)
	}
}
