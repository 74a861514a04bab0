package sheet

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/disintegration/imaging"
	"github.com/ericpauley/go-quantize/quantize"
)

const paletteSize = 256

// Writer composes chunks of card images onto grid sheets. Every cell is
// CellWidth by CellHeight pixels; cards are expected to match but anything
// larger is scaled down to fit and centered within its cell.
type Writer struct {
	CellWidth  int
	CellHeight int

	// Background fills the canvas, including any blank trailing cells.
	// Nil means white.
	Background color.Color

	// Quantize reduces the output to a 256 color palette before encoding,
	// which keeps printable sheets small.
	Quantize bool
}

func (w *Writer) background() color.Color {
	if w.Background == nil {
		return color.White
	}
	return w.Background
}

// Compose arranges up to Capacity cards row-major on a fresh sheet canvas.
func (w *Writer) Compose(cards []image.Image) (image.Image, error) {
	if len(cards) == 0 {
		return nil, fmt.Errorf("sheet: no cards to compose")
	}
	if len(cards) > Capacity {
		return nil, fmt.Errorf("sheet: %d cards exceeds capacity of %d", len(cards), Capacity)
	}

	canvas := imaging.New(w.CellWidth*gridX, w.CellHeight*gridY, w.background())

	for i, m := range cards {
		cell := imaging.Fit(m, w.CellWidth, w.CellHeight, imaging.Lanczos)

		x := (i%gridX)*w.CellWidth + (w.CellWidth-cell.Bounds().Dx())/2
		y := (i/gridX)*w.CellHeight + (w.CellHeight-cell.Bounds().Dy())/2

		canvas = imaging.Paste(canvas, cell, image.Pt(x, y))
	}

	return canvas, nil
}

// Encode writes m to wr as a PNG, quantizing it first when configured.
func (w *Writer) Encode(wr io.Writer, m image.Image) error {
	if w.Quantize {
		q := quantize.MedianCutQuantizer{}
		b := m.Bounds()
		pm := image.NewPaletted(b, q.Quantize(make(color.Palette, 0, paletteSize), m))
		draw.Draw(pm, b, m, b.Min, draw.Src)
		m = pm
	}
	return png.Encode(wr, m)
}
