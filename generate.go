package covergen

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/HavilandTuff/cover-generator/card"
	"github.com/HavilandTuff/cover-generator/gamelist"
	"github.com/HavilandTuff/cover-generator/sheet"
)

// Generate renders one card per game in the system folder at path, then
// arranges the finished cards onto numbered grid sheets in the output
// directory. Entries whose artwork is missing and cards or sheets that fail
// to render are reported and skipped; only setup failures are returned.
func (cg *CoverGen) Generate(path string) error {
	coll, err := gamelist.Load(path)
	if err != nil {
		return err
	}

	builder, err := card.NewBuilder(cg.cfg.Template, cg.cfg.Region)
	if err != nil {
		return err
	}

	out := cg.cfg.Output
	if !filepath.IsAbs(out) {
		out = filepath.Join(coll.Dir, out)
	}

	// Cards get their own subdirectory so a ROM stem like "megadrive_01"
	// can never collide with a sheet name.
	cardDir := filepath.Join(out, "cards")
	if err := os.MkdirAll(cardDir, 0755); err != nil {
		return err
	}

	cards, err := cg.buildCards(coll, builder, cardDir)
	if err != nil {
		return err
	}

	written := cg.writeSheets(coll, builder, out, cards)

	cg.logger.Printf("%s: wrote %d cards and %d sheets to %s", coll.Name, len(cards), written, out)

	return nil
}

// buildCards renders each game's card in collection order and returns the
// paths of the ones that were written.
func (cg *CoverGen) buildCards(coll *gamelist.Collection, builder *card.Builder, out string) ([]string, error) {
	chooser := cg.chooser()

	cards := make([]string, 0, len(coll.Games))
	for _, g := range coll.Games {
		img, marquee := existing(g.Image), existing(g.Marquee)

		var art string
		switch {
		case img == "" && marquee == "":
			cg.logger.Printf("skipping %q: no image or marquee on disk", g.Name)
			continue
		case marquee == "":
			art = img
		case img == "":
			art = marquee
		default:
			var err error
			if art, err = chooser(g, img, marquee); err != nil {
				return nil, err
			}
		}

		file := filepath.Join(out, cardFilename(g))
		if err := builder.Write(file, art); err != nil {
			cg.logger.Printf("skipping %q: %v", g.Name, err)
			continue
		}
		cards = append(cards, file)
	}

	return cards, nil
}

// writeSheets batches cards into grid sheets and returns how many were
// written. Sheet numbers follow the chunk index so a failed sheet does not
// shift the names of those after it.
func (cg *CoverGen) writeSheets(coll *gamelist.Collection, builder *card.Builder, out string, cards []string) int {
	w, h := builder.Size()
	writer := &sheet.Writer{
		CellWidth:  w,
		CellHeight: h,
		Quantize:   cg.cfg.Quantize,
	}

	written := 0
	for i, chunk := range sheet.Batch(cards) {
		name := sheet.Name(coll.Name, i+1)
		if err := writeSheet(writer, filepath.Join(out, name), chunk); err != nil {
			cg.logger.Printf("skipping sheet %q: %v", name, err)
			continue
		}
		written++
	}

	return written
}

func writeSheet(w *sheet.Writer, file string, cards []string) error {
	images := make([]image.Image, 0, len(cards))
	for _, c := range cards {
		m, err := imaging.Open(c)
		if err != nil {
			return fmt.Errorf("reading card %q: %w", c, err)
		}
		images = append(images, m)
	}

	m, err := w.Compose(images)
	if err != nil {
		return err
	}

	f, err := os.Create(file)
	if err != nil {
		return err
	}
	defer f.Close()

	return w.Encode(f, m)
}

// cardFilename derives a stable output name for a game's card, preferring
// the ROM filename as games within one list can share display names.
func cardFilename(g gamelist.Game) string {
	if g.ROM != "" {
		base := filepath.Base(g.ROM)
		return strings.TrimSuffix(base, filepath.Ext(base)) + ".png"
	}
	return slug(g.Name) + ".png"
}

func slug(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '.':
			return r
		case r == ' ':
			return '_'
		default:
			return '-'
		}
	}, name)
}

func existing(file string) string {
	if file == "" {
		return ""
	}
	info, err := os.Stat(file)
	if err != nil || info.IsDir() {
		return ""
	}
	return file
}
