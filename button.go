package inkbutton

import "github.com/tanema/gween/ease"

// Style is the designer-facing configuration of a button. Zero lengths mean
// no rounding and no border; a nil BorderColor draws no border.
type Style struct {
	CornerRadius float64
	BorderWidth  float64
	BorderColor  *Color
	InkColor     Color
	Mode         AnimationMode
}

// DefaultStyle returns the style a button gets when nothing is configured.
func DefaultStyle() Style {
	return Style{
		InkColor: DefaultInkColor,
		Mode:     DefaultAnimationMode,
	}
}

// Button is a touchable rectangle with rounded corners, an optional border
// and an ink fill that animates on touch-down. It implements TouchObserver;
// add it to a Scene to receive touches.
//
// The ink layer is created by NewButton and lives as long as the button. Each
// touch-down replaces its path and its path animation; touch-up and cancel
// remove the animation without a transition.
type Button struct {
	Name            string
	Title           string
	TitleColor      Color
	BackgroundColor Color
	Enabled         bool

	// InkDuration and InkEase control the ink morph. They are read at
	// touch-down.
	InkDuration float32
	InkEase     ease.TweenFunc

	// OnTap is called after a touch that began on the button ends inside it.
	OnTap func(*Button)

	x, y          float64
	width, height float64

	cornerRadius  float64
	masksToBounds bool
	borderWidth   float64
	borderColor   *Color
	mode          AnimationMode

	ink  *ShapeLayer
	font *TTFFont

	background mesh
	border     mesh
	clip       mesh

	trace func(format string, args ...any)
}

// NewButton creates a button of the given size with style applied.
func NewButton(name string, width, height float64, style Style) *Button {
	b := &Button{
		Name:        name,
		TitleColor:  Color{0.2, 0.2, 0.2, 1},
		Enabled:     true,
		InkDuration: DefaultInkDuration,
		InkEase:     DefaultInkEase,
		ink:         NewShapeLayer(style.InkColor),
	}
	b.SetSize(width, height)
	b.ApplyStyle(style)
	return b
}

// ApplyStyle sets every style property at once.
func (b *Button) ApplyStyle(s Style) {
	b.SetCornerRadius(s.CornerRadius)
	b.SetBorderWidth(s.BorderWidth)
	b.SetBorderColor(s.BorderColor)
	b.SetInkColor(s.InkColor)
	b.SetAnimationMode(s.Mode)
}

// Style returns the current style properties.
func (b *Button) Style() Style {
	return Style{
		CornerRadius: b.cornerRadius,
		BorderWidth:  b.borderWidth,
		BorderColor:  b.BorderColor(),
		InkColor:     b.InkColor(),
		Mode:         b.mode,
	}
}

// CornerRadius returns the corner radius of the button's frame.
func (b *Button) CornerRadius() float64 { return b.cornerRadius }

// SetCornerRadius sets the corner radius. Negative values are treated as
// zero. A positive radius also clips the ink to the rounded frame.
func (b *Button) SetCornerRadius(r float64) {
	r = max(r, 0)
	b.cornerRadius = r
	b.masksToBounds = r > 0
}

// MasksToBounds reports whether the ink is clipped to the frame.
func (b *Button) MasksToBounds() bool { return b.masksToBounds }

// BorderWidth returns the border width.
func (b *Button) BorderWidth() float64 { return b.borderWidth }

// SetBorderWidth sets the border width. Negative values are treated as zero.
func (b *Button) SetBorderWidth(w float64) {
	b.borderWidth = max(w, 0)
}

// BorderColor returns a copy of the border color, or nil when unset.
func (b *Button) BorderColor() *Color {
	if b.borderColor == nil {
		return nil
	}
	c := *b.borderColor
	return &c
}

// SetBorderColor sets the border color; nil removes it.
func (b *Button) SetBorderColor(c *Color) {
	if c == nil {
		b.borderColor = nil
		return
	}
	cc := *c
	b.borderColor = &cc
}

// InkColor returns the ink fill color.
func (b *Button) InkColor() Color { return b.ink.FillColor }

// SetInkColor sets the ink fill color.
func (b *Button) SetInkColor(c Color) {
	b.ink.FillColor = c
}

// AnimationMode returns the selected ink animation mode.
func (b *Button) AnimationMode() AnimationMode { return b.mode }

// SetAnimationMode selects the ink animation mode used by the next
// touch-down.
func (b *Button) SetAnimationMode(m AnimationMode) {
	b.mode = m
}

// InkLayer returns the button's ink layer.
func (b *Button) InkLayer() *ShapeLayer { return b.ink }

// SetFont sets the title font. A nil font falls back to the default face.
func (b *Button) SetFont(f *TTFFont) { b.font = f }

// SetPosition moves the button's top-left corner in scene coordinates.
func (b *Button) SetPosition(x, y float64) {
	b.x, b.y = x, y
}

// Position returns the button's top-left corner in scene coordinates.
func (b *Button) Position() (x, y float64) { return b.x, b.y }

// SetSize sets the button's bounds. Negative values are treated as zero.
func (b *Button) SetSize(width, height float64) {
	b.width, b.height = max(width, 0), max(height, 0)
}

// Size returns the button's width and height.
func (b *Button) Size() (width, height float64) { return b.width, b.height }

// Bounds returns the button's rectangle in its own coordinate space.
func (b *Button) Bounds() Rect {
	return Rect{Width: b.width, Height: b.height}
}

// Frame returns the button's rectangle in scene coordinates.
func (b *Button) Frame() Rect {
	return Rect{X: b.x, Y: b.y, Width: b.width, Height: b.height}
}

// Interactable reports whether the button accepts touches.
func (b *Button) Interactable() bool { return b.Enabled }

// BeginInk starts the ink animation for a touch at the given location in
// button coordinates. A nil touch starts from the origin. The start shape
// becomes the layer's static path and a morph to the end shape replaces any
// animation already attached.
func (b *Button) BeginInk(touch *Vec2) (start, end Shape) {
	start, end = InkShapes(b.mode, touch, b.Bounds())
	b.ink.RemoveAnimation(AnimationKeyPath)
	b.ink.SetPath(start)
	b.ink.AddAnimation(AnimationKeyPath, NewShapeTween(start, end, b.InkDuration, b.InkEase))
	b.tracef("ink %q begin mode=%s start=%v end=%v", b.Name, b.mode, start, end)
	return start, end
}

// CancelInk removes the ink animation at once. The layer goes back to its
// static path, which still holds the last start shape. Calling it with no
// animation attached does nothing.
func (b *Button) CancelInk() {
	if b.ink.Animation(AnimationKeyPath) == nil {
		return
	}
	b.ink.RemoveAnimation(AnimationKeyPath)
	b.tracef("ink %q cancel", b.Name)
}

// Update advances the ink animation by dt seconds.
func (b *Button) Update(dt float32) {
	b.ink.Update(dt)
}

// OnDown implements TouchObserver.
func (b *Button) OnDown(ctx TouchContext) {
	if !ctx.HasLocation {
		b.BeginInk(nil)
		return
	}
	b.BeginInk(&Vec2{X: ctx.LocalX, Y: ctx.LocalY})
}

// OnUpInside implements TouchObserver.
func (b *Button) OnUpInside(ctx TouchContext) {
	b.CancelInk()
	if b.OnTap != nil {
		b.OnTap(b)
	}
}

// OnUpOutside implements TouchObserver.
func (b *Button) OnUpOutside(ctx TouchContext) {
	b.CancelInk()
}

// OnCancelled implements TouchObserver.
func (b *Button) OnCancelled(ctx TouchContext) {
	b.CancelInk()
}

func (b *Button) tracef(format string, args ...any) {
	if b.trace != nil {
		b.trace(format, args...)
	}
}
