package inkbutton

import "math"

// Shape is a rounded rectangle: the geometry held by an ink layer and used as
// animation keyframes. A corner radius of half the smaller side renders as a
// circle or pill.
type Shape struct {
	Rect
	CornerRadius float64
}

// EffectiveRadius returns the corner radius clamped to [0, min(w,h)/2].
func (s Shape) EffectiveRadius() float64 {
	r := s.CornerRadius
	limit := math.Min(s.Width, s.Height) / 2
	if r > limit {
		r = limit
	}
	if r < 0 {
		r = 0
	}
	return r
}

// Bounds returns the axis-aligned bounding box of the shape.
func (s Shape) Bounds() Rect {
	return s.Rect
}

// Contains reports whether (x, y) lies inside the rounded rectangle.
func (s Shape) Contains(x, y float64) bool {
	if !s.Rect.Contains(x, y) {
		return false
	}
	r := s.EffectiveRadius()
	if r == 0 {
		return true
	}
	// Clamp the point into the inner rect; outside that it must be within r
	// of the nearest corner center.
	cx := math.Max(s.X+r, math.Min(x, s.X+s.Width-r))
	cy := math.Max(s.Y+r, math.Min(y, s.Y+s.Height-r))
	dx, dy := x-cx, y-cy
	return dx*dx+dy*dy <= r*r
}

// Area returns the filled area of the rounded rectangle.
func (s Shape) Area() float64 {
	if s.Rect.Empty() {
		return 0
	}
	r := s.EffectiveRadius()
	return s.Width*s.Height - (4-math.Pi)*r*r
}

// lerpShape linearly interpolates every parameter of a toward b.
func lerpShape(a, b Shape, t float64) Shape {
	mix := func(x, y float64) float64 { return x + (y-x)*t }
	return Shape{
		Rect: Rect{
			X:      mix(a.X, b.X),
			Y:      mix(a.Y, b.Y),
			Width:  mix(a.Width, b.Width),
			Height: mix(a.Height, b.Height),
		},
		CornerRadius: mix(a.CornerRadius, b.CornerRadius),
	}
}

// defaultCornerSegments is the arc subdivision used per corner when outlining.
const defaultCornerSegments = 8

// Outline appends the clockwise outline of the shape to dst and returns it.
// Each rounded corner is approximated with segments straight pieces; sharp
// corners contribute a single point. Degenerate shapes yield four points.
func (s Shape) Outline(dst []Vec2, segments int) []Vec2 {
	return s.appendOutline(dst, segments, false)
}

// appendOutline emits segments+1 points per corner when arcs is true, even
// for a zero radius, so that two outlines can be paired point by point.
func (s Shape) appendOutline(dst []Vec2, segments int, arcs bool) []Vec2 {
	if segments <= 0 {
		segments = defaultCornerSegments
	}
	r := s.EffectiveRadius()
	x0, y0 := s.X, s.Y
	x1, y1 := s.X+s.Width, s.Y+s.Height
	if r == 0 && !arcs {
		return append(dst, Vec2{x0, y0}, Vec2{x1, y0}, Vec2{x1, y1}, Vec2{x0, y1})
	}

	corners := [4]struct {
		cx, cy, start float64
	}{
		{x1 - r, y0 + r, -math.Pi / 2}, // top-right
		{x1 - r, y1 - r, 0},            // bottom-right
		{x0 + r, y1 - r, math.Pi / 2},  // bottom-left
		{x0 + r, y0 + r, math.Pi},      // top-left
	}
	for _, c := range corners {
		for i := 0; i <= segments; i++ {
			a := c.start + (math.Pi/2)*float64(i)/float64(segments)
			dst = append(dst, Vec2{c.cx + r*math.Cos(a), c.cy + r*math.Sin(a)})
		}
	}
	return dst
}

// InkShapes returns the start and end geometry for mode, for a touch at
// touch (nil means the origin) inside a widget of the given bounds. Only the
// bounds' width and height are read; shapes are in widget-local coordinates.
func InkShapes(mode AnimationMode, touch *Vec2, bounds Rect) (start, end Shape) {
	var p Vec2
	if touch != nil {
		p = *touch
	}
	return StartShape(mode, p, bounds), EndShape(mode, p, bounds)
}

// StartShape returns the geometry the ink fill begins from.
func StartShape(mode AnimationMode, touch Vec2, bounds Rect) Shape {
	w, h := bounds.Width, bounds.Height
	switch mode {
	case AnimationTouchCenterCircleFill, AnimationTouchCenterFill:
		return Shape{Rect: Rect{X: touch.X, Y: touch.Y}}
	case AnimationVerticalCenterFill:
		return Shape{Rect: Rect{X: 0, Y: h / 2, Width: w, Height: 0}}
	case AnimationHorizontalCenterFill:
		return Shape{Rect: Rect{X: w / 2, Y: 0, Width: 0, Height: h}, CornerRadius: h / 2}
	case AnimationBottomToTopFill:
		return Shape{Rect: Rect{X: 0, Y: h, Width: w, Height: h}}
	case AnimationTopToBottomFill:
		return Shape{Rect: Rect{Width: w}}
	default:
		return Shape{}
	}
}

// EndShape returns the geometry the ink fill settles on.
func EndShape(mode AnimationMode, touch Vec2, bounds Rect) Shape {
	w, h := bounds.Width, bounds.Height
	full := Rect{Width: w, Height: h}
	switch mode {
	case AnimationTouchCenterCircleFill:
		d := CircleFillDiameter(touch, bounds)
		half := d / 2
		return Shape{
			Rect:         Rect{X: touch.X - half, Y: touch.Y - half, Width: d, Height: d},
			CornerRadius: half,
		}
	case AnimationTouchCenterFill, AnimationHorizontalCenterFill:
		return Shape{Rect: full, CornerRadius: h / 2}
	case AnimationVerticalCenterFill, AnimationBottomToTopFill, AnimationTopToBottomFill:
		return Shape{Rect: full}
	default:
		return Shape{}
	}
}

// CircleFillDiameter is the diameter of the circle that touchCenterCircleFill
// grows to: the larger side plus twice the touch's Manhattan distance from the
// center of the bounds.
func CircleFillDiameter(touch Vec2, bounds Rect) float64 {
	w, h := bounds.Width, bounds.Height
	return math.Max(w, h) + 2*(math.Abs(touch.X-w/2)+math.Abs(touch.Y-h/2))
}
