package inkbutton

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// DefaultInkDuration is the length of the ink morph in seconds.
const DefaultInkDuration float32 = 0.5

// DefaultInkEase is the ease-out curve used by the ink morph: fast start,
// slow finish.
var DefaultInkEase ease.TweenFunc = ease.OutQuad

// ShapeTween morphs a Shape from one geometry to another. A single eased
// progress value drives all five parameters (x, y, width, height, corner
// radius). Call Update(dt) each frame; the current geometry is available from
// Value.
//
// A finished tween keeps reporting its end shape. Nothing removes it
// automatically; the owning layer decides when it goes away.
type ShapeTween struct {
	progress *gween.Tween
	from     Shape
	to       Shape
	value    Shape
	Done     bool
}

// NewShapeTween creates a tween from one shape to another over duration
// seconds. A nil fn uses DefaultInkEase. A non-positive duration completes on
// creation.
func NewShapeTween(from, to Shape, duration float32, fn ease.TweenFunc) *ShapeTween {
	if fn == nil {
		fn = DefaultInkEase
	}
	st := &ShapeTween{from: from, to: to, value: from}
	if duration <= 0 {
		st.value = to
		st.Done = true
		return st
	}
	st.progress = gween.New(0, 1, duration, fn)
	return st
}

// Update advances the tween by dt seconds and returns the current shape.
func (st *ShapeTween) Update(dt float32) Shape {
	if st.Done {
		return st.value
	}

	t, finished := st.progress.Update(dt)
	if finished {
		// Snap to the exact end geometry; gween runs in float32.
		st.value = st.to
		st.Done = true
		return st.value
	}
	st.value = lerpShape(st.from, st.to, float64(t))
	return st.value
}

// Value returns the shape at the tween's current time.
func (st *ShapeTween) Value() Shape {
	return st.value
}

// From returns the starting shape.
func (st *ShapeTween) From() Shape {
	return st.from
}

// To returns the end shape.
func (st *ShapeTween) To() Shape {
	return st.to
}
