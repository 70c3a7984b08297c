package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
)

// langRe accepts a primary language tag with optional subtags, enough to
// catch typos without dragging in a full BCP 47 parser.
var langRe = regexp.MustCompile(`^[A-Za-z]{2,3}(-[A-Za-z0-9]+)*$`)

// Validate checks the config for errors and sets defaults. The stylesheet
// path, when given, is resolved against projectRoot and must exist.
func Validate(cfg *Config, projectRoot string) error {
	if cfg.Title == "" {
		cfg.Title = "Arrays in C: Study Notes"
	}
	if cfg.Lang == "" {
		cfg.Lang = "en"
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "dist"
	}
	if cfg.Serve.Port == 0 {
		cfg.Serve.Port = 8080
	}

	if !langRe.MatchString(cfg.Lang) {
		return fmt.Errorf("config: 'lang' %q is not a language tag", cfg.Lang)
	}

	if cfg.BaseURL != "" {
		u, err := url.Parse(cfg.BaseURL)
		if err != nil || !u.IsAbs() || u.Host == "" {
			return fmt.Errorf("config: 'base-url' %q is not an absolute URL", cfg.BaseURL)
		}
	}

	if cfg.Serve.Port < 1 || cfg.Serve.Port > 65535 {
		return fmt.Errorf("config: serve.port %d is out of range (1-65535)", cfg.Serve.Port)
	}

	if cfg.Stylesheet != "" {
		sheet := cfg.Stylesheet
		if !filepath.IsAbs(sheet) {
			sheet = filepath.Join(projectRoot, sheet)
		}
		if _, err := os.Stat(sheet); err != nil {
			return fmt.Errorf("config: stylesheet %q not found", cfg.Stylesheet)
		}
	}

	return nil
}

// StylesheetPath returns the absolute path of the configured stylesheet, or
// "" when the built-in one should be used.
func (c *Config) StylesheetPath(projectRoot string) string {
	if c.Stylesheet == "" {
		return ""
	}
	if filepath.IsAbs(c.Stylesheet) {
		return c.Stylesheet
	}
	return filepath.Join(projectRoot, c.Stylesheet)
}
