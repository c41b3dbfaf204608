package inkbutton

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Draw renders the button onto dst in scene coordinates: background, ink,
// border, then title. The ink is clipped to the rounded frame only when the
// corner radius is positive.
func (b *Button) Draw(dst *ebiten.Image) {
	frame := Shape{Rect: b.Frame(), CornerRadius: b.cornerRadius}

	b.background.setFill(frame, 0, 0, b.BackgroundColor)
	b.background.draw(dst, BlendNormal)

	if b.masksToBounds {
		b.drawClippedInk(dst)
	} else {
		b.ink.fillMesh(b.x, b.y).draw(dst, BlendNormal)
	}

	if b.borderColor != nil {
		b.border.setRing(frame, b.borderWidth, 0, 0, *b.borderColor)
		b.border.draw(dst, BlendNormal)
	}

	b.drawTitle(dst)
}

// drawClippedInk renders the ink into a pooled scratch image, erases
// everything outside the rounded frame, and composites the result.
func (b *Button) drawClippedInk(dst *ebiten.Image) {
	w := int(math.Ceil(b.width))
	h := int(math.Ceil(b.height))
	if w <= 0 || h <= 0 {
		return
	}
	inkMesh := b.ink.fillMesh(0, 0)
	if inkMesh.empty() {
		return
	}

	layer := scratch.acquire(w, h)
	mask := scratch.acquire(w, h)
	defer scratch.release(layer)
	defer scratch.release(mask)

	inkMesh.draw(layer, BlendNormal)

	// The clip shape is rasterized into a whole buffer so that BlendMask
	// also clears pixels outside it.
	clip := Shape{Rect: b.Bounds(), CornerRadius: b.cornerRadius}
	b.clip.setFill(clip, 0, 0, ColorWhite)
	b.clip.draw(mask, BlendNormal)
	layer.DrawImage(mask, &ebiten.DrawImageOptions{Blend: BlendMask.EbitenBlend()})

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(b.x, b.y)
	dst.DrawImage(layer.SubImage(image.Rect(0, 0, w, h)).(*ebiten.Image), op)
}

// drawTitle renders the title centered in the frame.
func (b *Button) drawTitle(dst *ebiten.Image) {
	if b.Title == "" {
		return
	}
	f := b.font
	if f == nil {
		f = defaultFont()
	}
	if f == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(b.x+b.width/2, b.y+b.height/2)
	op.ColorScale.ScaleWithColor(b.TitleColor.NRGBA())
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.LineSpacing = f.LineHeight()
	text.Draw(dst, b.Title, f.Face(), op)
}
