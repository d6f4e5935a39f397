package view

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/phanxgames/spheregrid"
)

// placeholderPalette colors items whose image is missing or failed to load.
var placeholderPalette = []color.NRGBA{
	{R: 0xe0, G: 0x6c, B: 0x75, A: 0xff},
	{R: 0x61, G: 0xaf, B: 0xef, A: 0xff},
	{R: 0x98, G: 0xc3, B: 0x79, A: 0xff},
	{R: 0xe5, G: 0xc0, B: 0x7b, A: 0xff},
	{R: 0xc6, G: 0x78, B: 0xdd, A: 0xff},
	{R: 0x56, G: 0xb6, B: 0xc2, A: 0xff},
}

var hoverRing = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x60}

// drawFrame paints f.Items in order. Items arrive sorted by ZIndex, so later
// items land on top.
func drawFrame(dst *ebiten.Image, f spheregrid.Frame, images *ImageCache, ox, oy float64) {
	for _, it := range f.Items {
		size := it.PixelSize * it.PaintScale
		cx := ox + it.ScreenX
		cy := oy + it.ScreenY

		var img *ebiten.Image
		if images != nil {
			img = images.Get(it.Item)
		}
		if img == nil {
			c := placeholderPalette[it.Index%len(placeholderPalette)]
			c.A = uint8(float64(c.A) * it.Opacity)
			vector.DrawFilledCircle(dst, float32(cx), float32(cy), float32(size/2), c, true)
		} else {
			drawThumbnail(dst, img, cx, cy, size, it.Opacity)
		}

		if it.Hovered {
			ring := hoverRing
			ring.A = uint8(float64(ring.A) * it.Opacity)
			vector.StrokeCircle(dst, float32(cx), float32(cy), float32(size/2), 2, ring, true)
		}
	}
}

// drawThumbnail draws img centered at (cx, cy), scaled to size pixels wide.
func drawThumbnail(dst, img *ebiten.Image, cx, cy, size, opacity float64) {
	b := img.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	if w == 0 || h == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Scale(size/w, size/w)
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleAlpha(float32(opacity))
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(img, op)
}
