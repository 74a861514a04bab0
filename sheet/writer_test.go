package sheet

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	cellWidth  = 30
	cellHeight = 40
)

var cellColors = []color.NRGBA{
	{0xff, 0x00, 0x00, 0xff},
	{0x00, 0xff, 0x00, 0xff},
	{0x00, 0x00, 0xff, 0xff},
	{0xff, 0xff, 0x00, 0xff},
	{0x00, 0xff, 0xff, 0xff},
	{0xff, 0x00, 0xff, 0xff},
	{0x80, 0x00, 0x00, 0xff},
	{0x00, 0x80, 0x00, 0xff},
	{0x00, 0x00, 0x80, 0xff},
}

func solidCards(n int) []image.Image {
	cards := make([]image.Image, n)
	for i := range cards {
		cards[i] = imaging.New(cellWidth, cellHeight, cellColors[i%len(cellColors)])
	}
	return cards
}

// center of cell i on the composed sheet
func cellCenter(i int) (int, int) {
	return (i%3)*cellWidth + cellWidth/2, (i/3)*cellHeight + cellHeight/2
}

func TestComposeFullSheet(t *testing.T) {
	w := &Writer{CellWidth: cellWidth, CellHeight: cellHeight}

	m, err := w.Compose(solidCards(Capacity))
	require.NoError(t, err)

	require.Equal(t, cellWidth*3, m.Bounds().Dx())
	require.Equal(t, cellHeight*3, m.Bounds().Dy())

	for i, want := range cellColors {
		x, y := cellCenter(i)
		r, g, b, _ := m.At(x, y).RGBA()
		wr, wg, wb, _ := want.RGBA()
		assert.Equal(t, []uint32{wr, wg, wb}, []uint32{r, g, b}, "cell %d", i)
	}
}

func TestComposePartialSheetLeavesBackground(t *testing.T) {
	w := &Writer{
		CellWidth:  cellWidth,
		CellHeight: cellHeight,
		Background: color.NRGBA{0x12, 0x34, 0x56, 0xff},
	}

	m, err := w.Compose(solidCards(4))
	require.NoError(t, err)

	// Trailing cells stay background
	for i := 4; i < Capacity; i++ {
		x, y := cellCenter(i)
		r, g, b, _ := m.At(x, y).RGBA()
		assert.Equal(t, []uint32{0x1212, 0x3434, 0x5656}, []uint32{r, g, b}, "cell %d", i)
	}
}

func TestComposeScalesOversizedCards(t *testing.T) {
	w := &Writer{CellWidth: cellWidth, CellHeight: cellHeight}

	m, err := w.Compose([]image.Image{imaging.New(cellWidth*4, cellHeight*4, cellColors[0])})
	require.NoError(t, err)

	assert.Equal(t, cellWidth*3, m.Bounds().Dx())
	assert.Equal(t, cellHeight*3, m.Bounds().Dy())

	x, y := cellCenter(0)
	r, _, _, _ := m.At(x, y).RGBA()
	assert.Equal(t, uint32(0xffff), r)
}

func TestComposeErrors(t *testing.T) {
	w := &Writer{CellWidth: cellWidth, CellHeight: cellHeight}

	_, err := w.Compose(nil)
	assert.Error(t, err)

	_, err = w.Compose(solidCards(Capacity + 1))
	assert.Error(t, err)
}

func TestEncode(t *testing.T) {
	w := &Writer{CellWidth: cellWidth, CellHeight: cellHeight}

	m, err := w.Compose(solidCards(Capacity))
	require.NoError(t, err)

	b := new(bytes.Buffer)
	require.NoError(t, w.Encode(b, m))

	decoded, err := png.Decode(b)
	require.NoError(t, err)
	assert.Equal(t, m.Bounds(), decoded.Bounds())
}

func TestEncodeQuantized(t *testing.T) {
	w := &Writer{CellWidth: cellWidth, CellHeight: cellHeight, Quantize: true}

	m, err := w.Compose(solidCards(Capacity))
	require.NoError(t, err)

	b := new(bytes.Buffer)
	require.NoError(t, w.Encode(b, m))

	decoded, err := png.Decode(b)
	require.NoError(t, err)

	pm, ok := decoded.(*image.Paletted)
	require.True(t, ok, "quantized output should be paletted")
	assert.LessOrEqual(t, len(pm.Palette), paletteSize)
}
