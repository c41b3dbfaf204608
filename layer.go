package inkbutton

// AnimationKeyPath is the key under which the ink morph animates a layer's
// path. A layer holds at most one animation per key.
const AnimationKeyPath = "path"

// ShapeLayer is an owned drawable that fills a single Shape with a color.
// Path is the static geometry; an animation attached under AnimationKeyPath
// overrides it for presentation until the animation is removed. Finished
// animations stay attached and keep presenting their end shape.
type ShapeLayer struct {
	Path      Shape
	FillColor Color

	animations map[string]*ShapeTween

	fill      mesh
	meshDirty bool
	meshShape Shape
	meshTint  Color
	meshDX    float64
	meshDY    float64
}

// NewShapeLayer creates a layer with an empty path and the given fill.
func NewShapeLayer(fill Color) *ShapeLayer {
	return &ShapeLayer{
		FillColor:  fill,
		animations: make(map[string]*ShapeTween, 1),
		meshDirty:  true,
	}
}

// AddAnimation attaches a tween under key, replacing whatever was attached
// under the same key.
func (l *ShapeLayer) AddAnimation(key string, tw *ShapeTween) {
	if tw == nil {
		l.RemoveAnimation(key)
		return
	}
	l.animations[key] = tw
	l.meshDirty = true
}

// RemoveAnimation detaches the tween under key. Removing a key that has no
// animation does nothing.
func (l *ShapeLayer) RemoveAnimation(key string) {
	if _, ok := l.animations[key]; !ok {
		return
	}
	delete(l.animations, key)
	l.meshDirty = true
}

// Animation returns the tween attached under key, or nil.
func (l *ShapeLayer) Animation(key string) *ShapeTween {
	return l.animations[key]
}

// AnimationCount returns the number of attached animations.
func (l *ShapeLayer) AnimationCount() int {
	return len(l.animations)
}

// SetPath replaces the static path.
func (l *ShapeLayer) SetPath(s Shape) {
	l.Path = s
	l.meshDirty = true
}

// PresentationShape returns the geometry as it should appear on screen: the
// animated value when a path animation is attached, else Path.
func (l *ShapeLayer) PresentationShape() Shape {
	if tw := l.animations[AnimationKeyPath]; tw != nil {
		return tw.Value()
	}
	return l.Path
}

// Update advances every attached animation by dt seconds.
func (l *ShapeLayer) Update(dt float32) {
	for _, tw := range l.animations {
		if tw.Done {
			continue
		}
		tw.Update(dt)
		l.meshDirty = true
	}
}

// fillMesh returns the fill mesh for the current presentation shape offset by
// (dx, dy), rebuilding it only when something changed.
func (l *ShapeLayer) fillMesh(dx, dy float64) *mesh {
	s := l.PresentationShape()
	if l.meshDirty || s != l.meshShape || l.FillColor != l.meshTint || dx != l.meshDX || dy != l.meshDY {
		l.fill.setFill(s, dx, dy, l.FillColor)
		l.meshShape, l.meshTint = s, l.FillColor
		l.meshDX, l.meshDY = dx, dy
		l.meshDirty = false
	}
	return &l.fill
}
