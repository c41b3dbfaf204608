package inkbutton

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default title and background tint.
var ColorWhite = Color{1, 1, 1, 1}

// DefaultInkColor is the ink fill used when no other color is configured:
// rgba(181, 164, 208, 0.6).
var DefaultInkColor = Color{R: 181.0 / 255, G: 164.0 / 255, B: 208.0 / 255, A: 0.6}

// toRGBA converts to a premultiplied color.RGBA for ebiten fills.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A)*255 + 0.5),
		G: uint8(clamp01(c.G*c.A)*255 + 0.5),
		B: uint8(clamp01(c.B*c.A)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}

// NRGBA converts to a straight-alpha color.NRGBA.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R)*255 + 0.5),
		G: uint8(clamp01(c.G)*255 + 0.5),
		B: uint8(clamp01(c.B)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D vector used for positions, touch locations and sizes.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// ContainsRect reports whether other lies entirely inside r.
func (r Rect) ContainsRect(other Rect) bool {
	return other.X >= r.X && other.Y >= r.Y &&
		other.X+other.Width <= r.X+r.Width &&
		other.Y+other.Height <= r.Y+r.Height
}

// Empty reports whether the rectangle encloses no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// BlendMode selects a compositing operation. Each maps to a specific ebiten.Blend value.
type BlendMode uint8

const (
	BlendNormal BlendMode = iota // source-over (standard alpha blending)
	BlendMask                    // clip destination to source alpha
)

// EbitenBlend returns the ebiten.Blend value corresponding to this BlendMode.
func (b BlendMode) EbitenBlend() ebiten.Blend {
	switch b {
	case BlendMask:
		return ebiten.Blend{
			BlendFactorSourceRGB:        ebiten.BlendFactorZero,
			BlendFactorSourceAlpha:      ebiten.BlendFactorZero,
			BlendFactorDestinationRGB:   ebiten.BlendFactorSourceAlpha,
			BlendFactorDestinationAlpha: ebiten.BlendFactorSourceAlpha,
			BlendOperationRGB:           ebiten.BlendOperationAdd,
			BlendOperationAlpha:         ebiten.BlendOperationAdd,
		}
	default:
		return ebiten.BlendSourceOver
	}
}

// AnimationMode selects the start and end geometry of the ink fill.
type AnimationMode uint8

const (
	AnimationNone                  AnimationMode = iota // no visible ink
	AnimationTouchCenterCircleFill                      // circle grows from the touch point until it covers the bounds
	AnimationTouchCenterFill                            // pill grows from the touch point to the full bounds
	AnimationVerticalCenterFill                         // band opens up and down from the vertical center
	AnimationHorizontalCenterFill                       // band opens left and right from the horizontal center
	AnimationBottomToTopFill                            // fill slides up from below the bottom edge
	AnimationTopToBottomFill                            // fill grows down from the top edge
)

// DefaultAnimationMode is the mode a new button starts with.
const DefaultAnimationMode = AnimationTouchCenterCircleFill

var animationModeNames = [...]string{
	AnimationNone:                  "none",
	AnimationTouchCenterCircleFill: "touchCenterCircleFill",
	AnimationTouchCenterFill:       "touchCenterFill",
	AnimationVerticalCenterFill:    "verticalCenterFill",
	AnimationHorizontalCenterFill:  "horizontalCenterFill",
	AnimationBottomToTopFill:       "bottomToTopFill",
	AnimationTopToBottomFill:       "topToBottomFill",
}

// AnimationModes lists every mode in declaration order.
var AnimationModes = []AnimationMode{
	AnimationNone,
	AnimationTouchCenterCircleFill,
	AnimationTouchCenterFill,
	AnimationVerticalCenterFill,
	AnimationHorizontalCenterFill,
	AnimationBottomToTopFill,
	AnimationTopToBottomFill,
}

func (m AnimationMode) String() string {
	if int(m) < len(animationModeNames) {
		return animationModeNames[m]
	}
	return fmt.Sprintf("AnimationMode(%d)", m)
}

// MarshalText implements encoding.TextMarshaler.
func (m AnimationMode) MarshalText() ([]byte, error) {
	if int(m) >= len(animationModeNames) {
		return nil, fmt.Errorf("inkbutton: unknown animation mode %d", m)
	}
	return []byte(animationModeNames[m]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *AnimationMode) UnmarshalText(text []byte) error {
	parsed, err := ParseAnimationMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// EventType identifies a kind of touch lifecycle event.
type EventType uint8

const (
	EventDown       EventType = iota // pointer pressed over an observer
	EventUpInside                    // released inside the observer that saw the press
	EventUpOutside                   // released outside the observer that saw the press
	EventCancelled                   // tracking ended without a release
)

var eventTypeNames = [...]string{
	EventDown:      "down",
	EventUpInside:  "upInside",
	EventUpOutside: "upOutside",
	EventCancelled: "cancelled",
}

func (e EventType) String() string {
	if int(e) < len(eventTypeNames) {
		return eventTypeNames[e]
	}
	return fmt.Sprintf("EventType(%d)", e)
}
