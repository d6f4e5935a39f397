package view

import (
	"bytes"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/phanxgames/spheregrid"
	"golang.org/x/image/font/gofont/goregular"
)

// captionHeight is the strip below the container reserved for the selected
// item's label and caption.
const captionHeight = 120

const (
	captionPadding     = 12
	captionTitleSize   = 18
	captionBodySize    = 13
	captionLineSpacing = 18
)

var captionBackground = color.NRGBA{R: 0, G: 0, B: 0, A: 0xa0}

// captionRenderer draws the selected item's detail strip.
type captionRenderer struct {
	title *text.GoTextFace
	body  *text.GoTextFace
}

func newCaptionRenderer() (*captionRenderer, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, err
	}
	return &captionRenderer{
		title: &text.GoTextFace{Source: src, Size: captionTitleSize},
		body:  &text.GoTextFace{Source: src, Size: captionBodySize},
	}, nil
}

func (c *captionRenderer) draw(dst *ebiten.Image, item spheregrid.Item, x, y, w, h float64) {
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), captionBackground, false)

	title := item.Label
	if title == "" {
		title = item.ID
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x+captionPadding, y+captionPadding)
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(dst, title, c.title, op)

	if item.Caption == "" {
		return
	}
	lines := wrapWords(item.Caption, w-2*captionPadding, func(s string) float64 {
		width, _ := text.Measure(s, c.body, captionLineSpacing)
		return width
	})
	op = &text.DrawOptions{}
	op.GeoM.Translate(x+captionPadding, y+captionPadding+captionTitleSize+10)
	op.ColorScale.ScaleWithColor(color.NRGBA{R: 0xc8, G: 0xcc, B: 0xd4, A: 0xff})
	op.LineSpacing = captionLineSpacing
	text.Draw(dst, strings.Join(lines, "\n"), c.body, op)
}

// wrapWords greedily breaks s into lines no wider than maxWidth as reported
// by measure. A single word wider than maxWidth gets a line of its own.
func wrapWords(s string, maxWidth float64, measure func(string) float64) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		candidate := line + " " + w
		if measure(candidate) > maxWidth {
			lines = append(lines, line)
			line = w
			continue
		}
		line = candidate
	}
	return append(lines, line)
}
