package covergen

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"strings"

	"github.com/HavilandTuff/cover-generator/config"
	"github.com/HavilandTuff/cover-generator/gamelist"
)

// Chooser selects between a game's cover image and marquee when both exist
// on disk. The returned path must be one of the two arguments, and the same
// inputs must always yield the same result within a run.
type Chooser func(g gamelist.Game, image, marquee string) (string, error)

// ChooseImage always selects the cover image.
func ChooseImage(_ gamelist.Game, image, _ string) (string, error) {
	return image, nil
}

// ChooseMarquee always selects the marquee.
func ChooseMarquee(_ gamelist.Game, _, marquee string) (string, error) {
	return marquee, nil
}

// Interactive returns a Chooser that prompts on w and reads the answer from
// r. When viewer is non-blank each candidate is first shown by running the
// viewer command with the candidate path appended; a failing viewer is
// logged and ignored. Input running out is an error, as no further answers
// can come.
func Interactive(r io.Reader, w io.Writer, viewer string, logger *log.Logger) Chooser {
	scanner := bufio.NewScanner(r)
	viewer = strings.TrimSpace(viewer)
	return func(g gamelist.Game, image, marquee string) (string, error) {
		if viewer != "" {
			for _, file := range []string{image, marquee} {
				if err := preview(viewer, file); err != nil {
					logger.Printf("viewer failed for %q: %v", file, err)
				}
			}
		}

		for {
			fmt.Fprintf(w, "%s: use [i]mage or [m]arquee? ", g.Name)
			if !scanner.Scan() {
				if err := scanner.Err(); err != nil {
					return "", err
				}
				return "", errors.New("covergen: input closed during selection")
			}
			switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
			case "", "i", "image":
				return image, nil
			case "m", "marquee":
				return marquee, nil
			}
		}
	}
}

func preview(viewer, file string) error {
	args := append(strings.Fields(viewer), file)
	return exec.Command(args[0], args[1:]...).Run()
}

func (cg *CoverGen) chooser() Chooser {
	switch cg.cfg.Choice {
	case config.ChoiceImage:
		return ChooseImage
	case config.ChoiceMarquee:
		return ChooseMarquee
	default:
		return Interactive(os.Stdin, os.Stderr, cg.cfg.Viewer, cg.logger)
	}
}
