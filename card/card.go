/*
Package card renders one printable cover card per game by scaling its artwork
and compositing it onto a template image.
*/
package card

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Region is the area of the template that artwork is scaled into. The zero
// value means the whole template.
type Region struct {
	X      int `toml:"x"`
	Y      int `toml:"y"`
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// Builder composites game artwork onto a fixed template. Every card it
// produces has the dimensions of the template.
type Builder struct {
	template image.Image
	region   Region
}

// NewBuilder loads the template image from file and validates that the art
// region fits within it.
func NewBuilder(file string, region Region) (*Builder, error) {
	template, err := imaging.Open(file)
	if err != nil {
		return nil, fmt.Errorf("card: opening template: %w", err)
	}

	b := template.Bounds()
	if region == (Region{}) {
		region = Region{Width: b.Dx(), Height: b.Dy()}
	}
	if region.Width <= 0 || region.Height <= 0 ||
		region.X < 0 || region.Y < 0 ||
		region.X+region.Width > b.Dx() || region.Y+region.Height > b.Dy() {
		return nil, fmt.Errorf("card: region %dx%d+%d+%d does not fit %dx%d template",
			region.Width, region.Height, region.X, region.Y, b.Dx(), b.Dy())
	}

	return &Builder{
		template: template,
		region:   region,
	}, nil
}

// Size returns the card dimensions, which equal those of the template.
func (b *Builder) Size() (int, int) {
	r := b.template.Bounds()
	return r.Dx(), r.Dy()
}

// Render reads the artwork at file and returns it scaled to the template's
// art region, aspect preserved, centered along the remaining dimension.
// Artwork smaller than the region is scaled up, larger is scaled down.
func (b *Builder) Render(file string) (image.Image, error) {
	art, err := imaging.Open(file)
	if err != nil {
		return nil, fmt.Errorf("card: opening artwork: %w", err)
	}

	// Resizing with one zero dimension preserves aspect; bound whichever
	// dimension keeps the result within the region.
	var fitted image.Image
	if art.Bounds().Dx()*b.region.Height >= art.Bounds().Dy()*b.region.Width {
		fitted = imaging.Resize(art, b.region.Width, 0, imaging.Lanczos)
	} else {
		fitted = imaging.Resize(art, 0, b.region.Height, imaging.Lanczos)
	}

	x := b.region.X + (b.region.Width-fitted.Bounds().Dx())/2
	y := b.region.Y + (b.region.Height-fitted.Bounds().Dy())/2

	return imaging.Paste(b.template, fitted, image.Pt(x, y)), nil
}

// Write renders the artwork at art and saves the finished card to file. The
// format is derived from the file extension.
func (b *Builder) Write(file, art string) error {
	m, err := b.Render(art)
	if err != nil {
		return err
	}
	if err := imaging.Save(m, file); err != nil {
		return fmt.Errorf("card: saving %q: %w", file, err)
	}
	return nil
}
