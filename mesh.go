package inkbutton

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// --- White pixel singleton (single-threaded) ---

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image.
// Used as the source texture of every untextured mesh.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}

// mesh holds reusable vertex and index buffers for one solid-color shape.
// Buffers grow to a high-water mark and are never shrunk.
type mesh struct {
	Vertices []ebiten.Vertex
	Indices  []uint16
	outline  []Vec2 // scratch for outer points
	inner    []Vec2 // scratch for ring inner points
}

// reset truncates the buffers without releasing them.
func (m *mesh) reset() {
	m.Vertices = m.Vertices[:0]
	m.Indices = m.Indices[:0]
}

// empty reports whether the mesh has no triangles to draw.
func (m *mesh) empty() bool {
	return len(m.Indices) == 0
}

// setFill rebuilds the mesh as a fan-triangulated fill of s translated by
// (dx, dy). Zero-area shapes produce an empty mesh.
func (m *mesh) setFill(s Shape, dx, dy float64, tint Color) {
	m.reset()
	if s.Rect.Empty() || tint.A <= 0 {
		return
	}
	m.outline = s.appendOutline(m.outline[:0], defaultCornerSegments, false)
	n := len(m.outline)
	if n < 3 {
		return
	}
	for _, p := range m.outline {
		m.Vertices = append(m.Vertices, solidVertex(p.X+dx, p.Y+dy, tint))
	}
	// Fan triangulation: vertex 0 is the hub. Rounded rects are convex.
	for i := 0; i < n-2; i++ {
		m.Indices = append(m.Indices, 0, uint16(i+1), uint16(i+2))
	}
}

// setRing rebuilds the mesh as a band of the given width running along the
// inside edge of s, translated by (dx, dy). Used for borders.
func (m *mesh) setRing(s Shape, width float64, dx, dy float64, tint Color) {
	m.reset()
	if s.Rect.Empty() || width <= 0 || tint.A <= 0 {
		return
	}
	width = math.Min(width, math.Min(s.Width, s.Height)/2)
	inset := Shape{
		Rect: Rect{
			X:      s.X + width,
			Y:      s.Y + width,
			Width:  s.Width - 2*width,
			Height: s.Height - 2*width,
		},
		CornerRadius: s.EffectiveRadius() - width,
	}

	// Both outlines use the arc form so they have matching point counts.
	m.outline = s.appendOutline(m.outline[:0], defaultCornerSegments, true)
	m.inner = inset.appendOutline(m.inner[:0], defaultCornerSegments, true)
	n := len(m.outline)

	// For N outline points: 2N vertices, 6N indices (closed strip).
	for i := 0; i < n; i++ {
		o, in := m.outline[i], m.inner[i]
		m.Vertices = append(m.Vertices,
			solidVertex(o.X+dx, o.Y+dy, tint),
			solidVertex(in.X+dx, in.Y+dy, tint),
		)
	}
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		o0, i0 := uint16(2*i), uint16(2*i+1)
		o1, i1 := uint16(2*j), uint16(2*j+1)
		m.Indices = append(m.Indices, o0, o1, i0, i0, o1, i1)
	}
}

// draw submits the mesh to dst.
func (m *mesh) draw(dst *ebiten.Image, blend BlendMode) {
	if m.empty() {
		return
	}
	op := &ebiten.DrawTrianglesOptions{
		Blend:     blend.EbitenBlend(),
		AntiAlias: true,
	}
	dst.DrawTriangles(m.Vertices, m.Indices, ensureWhitePixel(), op)
}

// solidVertex maps to the center of the white pixel with a premultiplied tint.
func solidVertex(x, y float64, tint Color) ebiten.Vertex {
	a := float32(tint.A)
	return ebiten.Vertex{
		DstX:   float32(x),
		DstY:   float32(y),
		SrcX:   0.5,
		SrcY:   0.5,
		ColorR: float32(tint.R) * a,
		ColorG: float32(tint.G) * a,
		ColorB: float32(tint.B) * a,
		ColorA: a,
	}
}
