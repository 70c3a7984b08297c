package site

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/dferreira/cnotes/internal/config"
)

// DefaultStylesheet is the built-in sheet, used when the config names no
// stylesheet of its own. Scaffolding writes the same bytes into new
// projects so a fresh checkout and a bare build look identical.
//
//go:embed style.css
var DefaultStylesheet []byte

// stylesheetFor returns the CSS bytes the assets stage should publish:
// the configured file when one is set, the built-in sheet otherwise.
func stylesheetFor(cfg *config.Config, projectRoot string) ([]byte, error) {
	path := cfg.StylesheetPath(projectRoot)
	if path == "" {
		return DefaultStylesheet, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading stylesheet: %w", err)
	}
	return data, nil
}
