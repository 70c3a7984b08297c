// Package render turns the content model into the finished HTML page.
// Rendering is a pure function of its inputs: the same meta and topics
// always produce byte-identical output, so builds are reproducible and
// the verifier can parse what the builder wrote.
package render

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"

	"github.com/dferreira/cnotes/internal/content"
)

// Meta carries the site-level fields the page template reads. It is the
// renderer's slice of the config: the renderer never loads files itself.
type Meta struct {
	Title       string
	Description string
	BaseURL     string
	Lang        string
	Stylesheet  string
	Author      string
}

//go:embed page.tmpl
var pageTmpl string

var tmpl = template.Must(template.New("page").Parse(pageTmpl))

// Page renders the single study-notes page: header, a nav entry per topic,
// one section per topic with its subtopics nested inside, and a footer.
// Headings become section ids via their slugs, which is what makes the nav
// links land. Callers are expected to have run content.Validate first;
// Page itself does not reject colliding anchors.
func Page(meta Meta, topics []content.Topic) ([]byte, error) {
	data := struct {
		Meta
		Topics []content.Topic
	}{meta, topics}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
