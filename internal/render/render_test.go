package render

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/dferreira/cnotes/internal/content"
)

func sampleMeta() Meta {
	return Meta{
		Title:       "Arrays in C",
		Description: "Study notes",
		BaseURL:     "https://notes.example.com/",
		Lang:        "en",
		Stylesheet:  "assets/style.css",
		Author:      "D. Ferreira",
	}
}

func miniTopics() []content.Topic {
	return []content.Topic{
		{
			Title:   "Alpha",
			Summary: "alpha summary",
			Subtopics: []content.Subtopic{
				{
					Title:   "1.1 With Notes",
					Summary: "has notes",
					Notes:   []string{"first note", "second note"},
				},
				{
					Title:   "1.2 Code Only",
					Summary: "has code, no notes",
					Code: []content.CodeSample{
						{Caption: "escaping", Source: "if (a < b && c > 0) { s = \"x\"; }"},
					},
				},
			},
		},
		{
			Title:   "Beta",
			Summary: "beta summary",
			Subtopics: []content.Subtopic{
				{Title: "2.1 Bare", Summary: "neither notes nor code"},
			},
		},
	}
}

// Section ids may start with a digit, which is valid HTML but not a valid
// CSS "#id" selector, so lookups go through the attribute form.
func byID(id string) string {
	return fmt.Sprintf("[id=%q]", id)
}

func renderDoc(t *testing.T, meta Meta, topics []content.Topic) *goquery.Document {
	t.Helper()
	out, err := Page(meta, topics)
	if err != nil {
		t.Fatalf("Page() error: %v", err)
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("rendered page does not parse: %v", err)
	}
	return doc
}

func TestPage_NavEntryPerTopic(t *testing.T) {
	topics := content.All()
	doc := renderDoc(t, sampleMeta(), topics)

	links := doc.Find("nav ul li a")
	if links.Length() != len(topics) {
		t.Fatalf("nav has %d entries, want %d", links.Length(), len(topics))
	}
	links.Each(func(i int, s *goquery.Selection) {
		wantHref := "#" + topics[i].Slug()
		if href, _ := s.Attr("href"); href != wantHref {
			t.Errorf("nav entry %d href = %q, want %q", i, href, wantHref)
		}
		if s.Text() != topics[i].Title {
			t.Errorf("nav entry %d text = %q, want %q", i, s.Text(), topics[i].Title)
		}
	})
}

func TestPage_TopicSectionsAddressable(t *testing.T) {
	topics := content.All()
	doc := renderDoc(t, sampleMeta(), topics)

	for _, topic := range topics {
		sec := doc.Find("section.topic" + byID(topic.Slug()))
		if sec.Length() != 1 {
			t.Errorf("topic %q: found %d sections with id %q, want 1", topic.Title, sec.Length(), topic.Slug())
			continue
		}
		if h2 := sec.Find("h2").First().Text(); h2 != topic.Title {
			t.Errorf("section %q heading = %q, want %q", topic.Slug(), h2, topic.Title)
		}
	}
}

func TestPage_SubtopicSectionsNested(t *testing.T) {
	topics := content.All()
	doc := renderDoc(t, sampleMeta(), topics)

	for _, topic := range topics {
		for _, sub := range topic.Subtopics {
			sel := "section.topic" + byID(topic.Slug()) + " section.subtopic" + byID(sub.Slug())
			sec := doc.Find(sel)
			if sec.Length() != 1 {
				t.Errorf("subtopic %q: found %d nested sections, want 1", sub.Title, sec.Length())
				continue
			}
			if h3 := sec.Find("h3").Text(); h3 != sub.Title {
				t.Errorf("section %q heading = %q, want %q", sub.Slug(), h3, sub.Title)
			}
		}
	}
}

func TestPage_EmptyNotesListOmitted(t *testing.T) {
	doc := renderDoc(t, sampleMeta(), miniTopics())

	withNotes := doc.Find("section.subtopic" + byID("1-1-with-notes"))
	if withNotes.Find("ul.notes li").Length() != 2 {
		t.Errorf("subtopic with notes renders %d items, want 2", withNotes.Find("ul.notes li").Length())
	}

	// No <ul> at all when there are no notes, not an empty one.
	for _, id := range []string{"1-2-code-only", "2-1-bare"} {
		sec := doc.Find("section.subtopic" + byID(id))
		if sec.Length() != 1 {
			t.Fatalf("section %q missing from page", id)
		}
		if n := sec.Find("ul").Length(); n != 0 {
			t.Errorf("section %q renders %d <ul> elements, want 0", id, n)
		}
	}
}

func TestPage_CodeSampleVerbatim(t *testing.T) {
	source := "if (a < b && c > 0) { s = \"x\"; }"
	doc := renderDoc(t, sampleMeta(), miniTopics())

	sample := doc.Find("section.subtopic" + byID("1-2-code-only") + " figure.sample")
	if sample.Length() != 1 {
		t.Fatalf("found %d code samples, want 1", sample.Length())
	}
	if caption := sample.Find("figcaption").Text(); caption != "escaping" {
		t.Errorf("caption = %q, want %q", caption, "escaping")
	}
	if got := sample.Find("pre code").Text(); got != source {
		t.Errorf("code text = %q, want %q", got, source)
	}
}

func TestPage_MultilineSourceSurvives(t *testing.T) {
	source := "int a[3];\nfor (int i = 0; i < 3; i++)\n    a[i] = i;"
	topics := []content.Topic{{
		Title:   "Loops",
		Summary: "s",
		Subtopics: []content.Subtopic{{
			Title:   "Fill",
			Summary: "s",
			Code:    []content.CodeSample{{Caption: "fill", Source: source}},
		}},
	}}
	doc := renderDoc(t, sampleMeta(), topics)
	if got := doc.Find("pre code").Text(); got != source {
		t.Errorf("code text = %q, want %q", got, source)
	}
}

func TestPage_NoCodeNoFigure(t *testing.T) {
	doc := renderDoc(t, sampleMeta(), miniTopics())
	sec := doc.Find("section.subtopic" + byID("2-1-bare"))
	if n := sec.Find("figure").Length(); n != 0 {
		t.Errorf("bare section renders %d figures, want 0", n)
	}
}

func TestPage_Deterministic(t *testing.T) {
	first, err := Page(sampleMeta(), content.All())
	if err != nil {
		t.Fatal(err)
	}
	second, err := Page(sampleMeta(), content.All())
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, second) {
		t.Error("two renders of the same model differ")
	}
}

func TestPage_HeadFields(t *testing.T) {
	doc := renderDoc(t, sampleMeta(), miniTopics())

	if lang, _ := doc.Find("html").Attr("lang"); lang != "en" {
		t.Errorf("lang = %q, want en", lang)
	}
	if title := doc.Find("head title").Text(); title != "Arrays in C" {
		t.Errorf("title = %q, want %q", title, "Arrays in C")
	}
	if desc, _ := doc.Find(`meta[name="description"]`).Attr("content"); desc != "Study notes" {
		t.Errorf("description = %q, want %q", desc, "Study notes")
	}
	if href, _ := doc.Find(`link[rel="canonical"]`).Attr("href"); href != "https://notes.example.com/" {
		t.Errorf("canonical = %q", href)
	}
	if href, _ := doc.Find(`link[rel="stylesheet"]`).Attr("href"); href != "assets/style.css" {
		t.Errorf("stylesheet = %q", href)
	}
}

func TestPage_OptionalHeadFieldsOmitted(t *testing.T) {
	meta := Meta{Title: "Bare", Lang: "en"}
	doc := renderDoc(t, meta, miniTopics())

	if n := doc.Find(`link[rel="stylesheet"]`).Length(); n != 0 {
		t.Errorf("stylesheet link rendered despite empty path (%d)", n)
	}
	if n := doc.Find(`meta[name="description"]`).Length(); n != 0 {
		t.Errorf("description meta rendered despite empty text (%d)", n)
	}
	if n := doc.Find(`link[rel="canonical"]`).Length(); n != 0 {
		t.Errorf("canonical link rendered despite empty base URL (%d)", n)
	}
}

func TestPage_UniqueIDs(t *testing.T) {
	doc := renderDoc(t, sampleMeta(), content.All())

	seen := make(map[string]int)
	doc.Find("[id]").Each(func(_ int, s *goquery.Selection) {
		id, _ := s.Attr("id")
		seen[id]++
	})
	for id, n := range seen {
		if n > 1 {
			t.Errorf("id %q appears %d times", id, n)
		}
	}
}

func TestPage_NavTargetsResolve(t *testing.T) {
	doc := renderDoc(t, sampleMeta(), content.All())

	ids := make(map[string]bool)
	doc.Find("[id]").Each(func(_ int, s *goquery.Selection) {
		id, _ := s.Attr("id")
		ids[id] = true
	})
	doc.Find("nav a").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		if !strings.HasPrefix(href, "#") {
			t.Errorf("nav href %q is not a fragment link", href)
			return
		}
		if !ids[strings.TrimPrefix(href, "#")] {
			t.Errorf("nav href %q has no matching id", href)
		}
	})
}
