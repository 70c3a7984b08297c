package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dferreira/cnotes/internal/config"
	"github.com/dferreira/cnotes/internal/site"
	"github.com/dferreira/cnotes/internal/ux"
)

var configTemplate = `# cnotes site configuration. Every key is optional; the defaults produce a
# working page on their own.

title: "Arrays in C: Study Notes"
description: Structured notes on declaring, initializing, and using arrays in C.
lang: en

# Where 'cnotes build' writes the page.
output-dir: dist

# Published as assets/style.css. Remove this key to use the built-in sheet.
stylesheet: assets/style.css

# base-url: https://notes.example.com/c-arrays/
# author: Your Name

serve:
  port: 8080
`

// Init writes a starter site.yaml and a stylesheet into targetDir. An
// existing stylesheet is kept; an existing site.yaml stops the whole init.
func Init(targetDir string) error {
	configPath := filepath.Join(targetDir, config.DefaultFile)
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("%s already exists in %s", config.DefaultFile, targetDir)
	}

	assetsDir := filepath.Join(targetDir, "assets")
	if err := os.MkdirAll(assetsDir, 0755); err != nil {
		return fmt.Errorf("creating assets: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(configTemplate), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", config.DefaultFile, err)
	}

	stylePath := filepath.Join(assetsDir, "style.css")
	keptStyle := false
	if _, err := os.Stat(stylePath); err == nil {
		keptStyle = true
	} else if err := os.WriteFile(stylePath, site.DefaultStylesheet, 0644); err != nil {
		return fmt.Errorf("writing style.css: %w", err)
	}

	fmt.Printf("\n%s%s✓ Initialized cnotes project%s\n\n", ux.Bold, ux.Green, ux.Reset)
	fmt.Printf("  Created:\n")
	fmt.Printf("    %ssite.yaml%s         - site configuration\n", ux.Cyan, ux.Reset)
	if keptStyle {
		fmt.Printf("    %sassets/style.css%s  - kept your existing stylesheet\n", ux.Cyan, ux.Reset)
	} else {
		fmt.Printf("    %sassets/style.css%s  - page stylesheet\n", ux.Cyan, ux.Reset)
	}
	fmt.Printf("\n  Next steps:\n")
	fmt.Printf("    1. Edit %ssite.yaml%s to set the title and author\n", ux.Cyan, ux.Reset)
	fmt.Printf("    2. Run %scnotes build%s to produce the page\n", ux.Cyan, ux.Reset)
	fmt.Printf("    3. Run %scnotes serve%s to preview it locally\n\n", ux.Cyan, ux.Reset)

	return nil
}
