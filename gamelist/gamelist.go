/*
Package gamelist implements a reader for the gamelist.xml metadata file that
EmulationStation writes into each game system folder.

Only the fields needed for cover generation are read; anything else in the
file is ignored. Image and marquee paths in the file are usually relative
with a leading "./" and are resolved against the system folder on load.
*/
package gamelist

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Filename is the expected metadata filename inside a system folder.
const Filename = "gamelist.xml"

// Game is a single entry from the game list. Image and Marquee are absolute
// paths, or empty when the entry doesn't declare them; they are not checked
// for existence here.
type Game struct {
	ID      string
	Name    string
	ROM     string
	Image   string
	Marquee string
}

// Collection is every game from one system folder.
type Collection struct {
	// Name is the base name of the system folder, e.g. "megadrive".
	Name string
	// Dir is the absolute path to the system folder.
	Dir   string
	Games []Game
}

type xmlGameList struct {
	XMLName xml.Name  `xml:"gameList"`
	Games   []xmlGame `xml:"game"`
}

type xmlGame struct {
	XMLName xml.Name `xml:"game"`
	ID      string   `xml:"id,attr"`
	Name    string   `xml:"name"`
	Path    string   `xml:"path"`
	Image   string   `xml:"image"`
	Marquee string   `xml:"marquee"`
}

// cleanPath resolves a path from gamelist.xml against the system folder,
// dropping the conventional "./" prefix and normalising any Windows-style
// separators left behind by scrapers.
func cleanPath(dir, path string) string {
	if path == "" {
		return ""
	}
	path = strings.TrimPrefix(path, "./")
	return filepath.Join(dir, filepath.Clean(strings.ReplaceAll(path, "\\", string(os.PathSeparator))))
}

// Load reads <dir>/gamelist.xml and returns the collection it describes. A
// missing or malformed file is an error; an empty game list is not.
func Load(dir string) (*Collection, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("gamelist: %q is not a directory", dir)
	}

	b, err := os.ReadFile(filepath.Join(dir, Filename))
	if err != nil {
		return nil, fmt.Errorf("gamelist: %w", err)
	}

	var list xmlGameList
	if err := xml.Unmarshal(b, &list); err != nil {
		return nil, fmt.Errorf("gamelist: parsing %s: %w", Filename, err)
	}

	c := &Collection{
		Name: filepath.Base(dir),
		Dir:  dir,
	}

	for _, g := range list.Games {
		name := g.Name
		if name == "" {
			name = "Unknown"
		}
		c.Games = append(c.Games, Game{
			ID:      g.ID,
			Name:    name,
			ROM:     cleanPath(dir, g.Path),
			Image:   cleanPath(dir, g.Image),
			Marquee: cleanPath(dir, g.Marquee),
		})
	}

	return c, nil
}
