package covergen

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/fatih/color"

	"github.com/HavilandTuff/cover-generator/gamelist"
)

var (
	found    = color.New(color.FgGreen).Sprint("✓")
	missing  = color.New(color.FgRed).Sprint("✗")
	unset    = color.New(color.FgYellow).Sprint("⚠")
	ruler    = "===================================================================================================="
	emphasis = color.New(color.Bold).Sprintf
)

type missingFile struct {
	game, kind, file string
}

// List prints every game in the system folder at path along with whether its
// image and marquee files exist on disk, followed by a summary of anything
// missing.
func (cg *CoverGen) List(path string, w io.Writer) error {
	coll, err := gamelist.Load(path)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "\n%s\n", ruler)
	fmt.Fprintf(w, "%s\n", emphasis("Found %d games in %s", len(coll.Games), coll.Dir))
	fmt.Fprintf(w, "%s\n\n", ruler)

	var missed []missingFile

	for i, g := range coll.Games {
		fmt.Fprintf(w, "[%d] Game: %s (ID: %s)\n", i+1, g.Name, orNA(g.ID))
		fmt.Fprintf(w, "    Path: %s\n", orNA(relative(coll.Dir, g.ROM)))

		missed = append(missed, listFile(w, coll.Dir, g, "Image", g.Image)...)
		missed = append(missed, listFile(w, coll.Dir, g, "Marquee", g.Marquee)...)

		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "%s\n", ruler)
	fmt.Fprintln(w, "Summary:")
	fmt.Fprintf(w, "  Total games: %d\n", len(coll.Games))
	fmt.Fprintf(w, "  Missing files: %d\n", len(missed))

	if len(missed) > 0 {
		fmt.Fprintln(w, "\nMissing files:")
		for _, m := range missed {
			fmt.Fprintf(w, "  - %s: %s (%s)\n", m.game, m.kind, m.file)
		}
	}

	fmt.Fprintf(w, "%s\n\n", ruler)

	return nil
}

func listFile(w io.Writer, dir string, g gamelist.Game, kind, file string) []missingFile {
	if file == "" {
		fmt.Fprintf(w, "    %s %s: not specified in %s\n", unset, kind, gamelist.Filename)
		return nil
	}

	rel := relative(dir, file)
	if existing(file) == "" {
		fmt.Fprintf(w, "    %s %s: %s\n", missing, kind, rel)
		return []missingFile{{game: g.Name, kind: kind, file: rel}}
	}

	fmt.Fprintf(w, "    %s %s: %s\n", found, kind, rel)
	return nil
}

func relative(dir, file string) string {
	if file == "" {
		return ""
	}
	if rel, err := filepath.Rel(dir, file); err == nil {
		return rel
	}
	return file
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
