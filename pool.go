package inkbutton

import (
	"image"
	"math/bits"

	"github.com/hajimehoshi/ebiten/v2"
)

// scratchPool hands out reusable offscreen images keyed by power-of-two
// dimensions. After warmup, acquire/release do not allocate.
type scratchPool struct {
	buckets map[uint64][]*ebiten.Image
}

// scratch serves the clipped ink pass of every button.
var scratch scratchPool

func poolKey(w, h int) uint64 {
	return uint64(w)<<32 | uint64(h)
}

// acquire returns a cleared image of at least w×h pixels.
func (p *scratchPool) acquire(w, h int) *ebiten.Image {
	pw, ph := nextPowerOfTwo(w), nextPowerOfTwo(h)
	key := poolKey(pw, ph)
	if stack := p.buckets[key]; len(stack) > 0 {
		img := stack[len(stack)-1]
		p.buckets[key] = stack[:len(stack)-1]
		img.Clear()
		return img
	}
	return ebiten.NewImageWithOptions(
		image.Rect(0, 0, pw, ph),
		&ebiten.NewImageOptions{Unmanaged: true},
	)
}

// release returns img to the pool. It is cleared on the next acquire.
func (p *scratchPool) release(img *ebiten.Image) {
	if img == nil {
		return
	}
	b := img.Bounds()
	if p.buckets == nil {
		p.buckets = make(map[uint64][]*ebiten.Image)
	}
	key := poolKey(b.Dx(), b.Dy())
	p.buckets[key] = append(p.buckets[key], img)
}

// idle returns the number of pooled images.
func (p *scratchPool) idle() int {
	n := 0
	for _, s := range p.buckets {
		n += len(s)
	}
	return n
}

// nextPowerOfTwo returns the smallest power of two >= n (minimum 1).
func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}
