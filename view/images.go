package view

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"os"
	"path/filepath"

	_ "github.com/ftrvxmtrx/tga"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/spheregrid"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// ImageCache loads item images lazily and keeps one round thumbnail per
// image reference. Failed loads are remembered and fall back to a colored
// placeholder.
type ImageCache struct {
	baseDir   string
	thumbSize int
	images    map[string]*ebiten.Image
	failed    map[string]bool
}

// NewImageCache resolves relative image references against baseDir and
// scales every thumbnail to thumbSize pixels square.
func NewImageCache(baseDir string, thumbSize int) *ImageCache {
	if thumbSize <= 0 {
		thumbSize = 128
	}
	return &ImageCache{
		baseDir:   baseDir,
		thumbSize: thumbSize,
		images:    make(map[string]*ebiten.Image),
		failed:    make(map[string]bool),
	}
}

// Preload loads the first n items' images.
func (c *ImageCache) Preload(items []spheregrid.Item, n int) {
	for i := 0; i < n && i < len(items); i++ {
		c.Get(items[i])
	}
}

// Get returns the thumbnail for item, loading it on first use. Returns nil
// when the item has no image or it could not be loaded.
func (c *ImageCache) Get(item spheregrid.Item) *ebiten.Image {
	ref := item.Image
	if ref == "" || c.failed[ref] {
		return nil
	}
	if img, ok := c.images[ref]; ok {
		return img
	}

	thumb, err := LoadThumbnail(c.resolve(ref), c.thumbSize)
	if err != nil {
		c.failed[ref] = true
		spheregrid.Logger().Warn("view: image load failed", "id", item.ID, "image", ref, "err", err)
		return nil
	}
	img := ebiten.NewImageFromImage(thumb)
	c.images[ref] = img
	return img
}

func (c *ImageCache) resolve(ref string) string {
	if c.baseDir == "" || filepath.IsAbs(ref) {
		return ref
	}
	return filepath.Join(c.baseDir, ref)
}

// LoadThumbnail decodes a PNG, JPEG, WebP or TGA file and returns a size×size
// round thumbnail cropped from its center.
func LoadThumbnail(path string, size int) (*image.NRGBA, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("thumbnail: read %s: %w", path, err)
	}
	src, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("thumbnail: decode %s: %w", path, err)
	}
	return RoundThumbnail(src, size), nil
}

// RoundThumbnail center-crops src to a square, scales it to size pixels with
// Catmull-Rom filtering, and clears everything outside the inscribed circle
// with a one-pixel antialiased edge.
func RoundThumbnail(src image.Image, size int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, centerSquare(src.Bounds()), xdraw.Src, nil)
	maskCircle(dst)
	return dst
}

func centerSquare(b image.Rectangle) image.Rectangle {
	side := min(b.Dx(), b.Dy())
	x0 := b.Min.X + (b.Dx()-side)/2
	y0 := b.Min.Y + (b.Dy()-side)/2
	return image.Rect(x0, y0, x0+side, y0+side)
}

func maskCircle(img *image.NRGBA) {
	b := img.Bounds()
	r := float64(b.Dx()) / 2
	cx := float64(b.Min.X) + r
	cy := float64(b.Min.Y) + float64(b.Dy())/2
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			d := math.Hypot(float64(x)+0.5-cx, float64(y)+0.5-cy)
			coverage := math.Max(0, math.Min(1, r-d+0.5))
			if coverage >= 1 {
				continue
			}
			c := img.NRGBAAt(x, y)
			c.A = uint8(float64(c.A) * coverage)
			img.SetNRGBA(x, y, c)
		}
	}
}
