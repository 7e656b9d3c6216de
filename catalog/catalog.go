// Package catalog picks the card source the binaries serve.
package catalog

import (
	"github.com/qyinm/filmboard/config"
	"github.com/qyinm/filmboard/mock"
	"github.com/qyinm/filmboard/scraper"
	"github.com/qyinm/filmboard/types"
)

// Open returns the catalog cfg points at: an imported board page when
// ImportPath is set, otherwise a generated catalog.
func Open(cfg config.Config) types.CardSource {
	if cfg.ImportPath != "" {
		return scraper.NewFileSource(cfg.ImportPath)
	}
	return mock.NewSource(cfg.Cards, cfg.Seed)
}
