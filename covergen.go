/*
Package covergen renders printable cover cards from EmulationStation game
lists and arranges them onto 3x3 grid sheets.
*/
package covergen

import (
	"log"

	"github.com/HavilandTuff/cover-generator/config"
)

type CoverGen struct {
	cfg    *config.Config
	logger *log.Logger
}

func New(cfg *config.Config, logger *log.Logger) *CoverGen {
	return &CoverGen{
		cfg:    cfg,
		logger: logger,
	}
}
