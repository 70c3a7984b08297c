// Package verify parses a built page and checks its structure against the
// content model: one nav entry per topic in order, every link landing on a
// real id, unique ids, the right number of sections, and no empty note
// lists or hollow code figures. It reports the first violation it finds,
// naming the offending slug or href.
package verify

import (
	"fmt"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/dferreira/cnotes/internal/content"
)

// File parses the page at path and checks it against topics.
func File(path string, topics []content.Topic) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("verify: %w", err)
	}
	defer f.Close()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return fmt.Errorf("verify: parsing %s: %w", path, err)
	}
	return check(doc, topics)
}

// Ids may start with a digit, which HTML allows but a CSS "#id" selector
// does not, so lookups use the attribute form.
func byID(id string) string {
	return fmt.Sprintf("[id=%q]", id)
}

func check(doc *goquery.Document, topics []content.Topic) error {
	// Collect ids once; later checks resolve links against this set.
	ids := make(map[string]bool)
	var dup string
	doc.Find("[id]").Each(func(_ int, s *goquery.Selection) {
		id, _ := s.Attr("id")
		if ids[id] && dup == "" {
			dup = id
		}
		ids[id] = true
	})
	if dup != "" {
		return fmt.Errorf("verify: duplicate id %q", dup)
	}

	nav := doc.Find("nav ul li a")
	if nav.Length() != len(topics) {
		return fmt.Errorf("verify: nav has %d entries, want %d", nav.Length(), len(topics))
	}
	var navErr error
	nav.EachWithBreak(func(i int, s *goquery.Selection) bool {
		href, _ := s.Attr("href")
		want := "#" + topics[i].Slug()
		if href != want {
			navErr = fmt.Errorf("verify: nav entry %d links to %q, want %q", i+1, href, want)
			return false
		}
		if !ids[strings.TrimPrefix(href, "#")] {
			navErr = fmt.Errorf("verify: nav link %q points at no element", href)
			return false
		}
		if s.Text() != topics[i].Title {
			navErr = fmt.Errorf("verify: nav entry %d reads %q, want %q", i+1, s.Text(), topics[i].Title)
			return false
		}
		return true
	})
	if navErr != nil {
		return navErr
	}

	st := content.Tally(topics)
	if n := doc.Find("section.topic").Length(); n != st.Topics {
		return fmt.Errorf("verify: %d topic sections, want %d", n, st.Topics)
	}
	if n := doc.Find("section.subtopic").Length(); n != st.Subtopics {
		return fmt.Errorf("verify: %d subtopic sections, want %d", n, st.Subtopics)
	}
	if n := doc.Find("figure.sample").Length(); n != st.Samples {
		return fmt.Errorf("verify: %d code samples, want %d", n, st.Samples)
	}
	if n := doc.Find("ul.notes li").Length(); n != st.Notes {
		return fmt.Errorf("verify: %d notes, want %d", n, st.Notes)
	}

	for _, topic := range topics {
		topicSel := "section.topic" + byID(topic.Slug())
		if n := doc.Find(topicSel).Length(); n != 1 {
			return fmt.Errorf("verify: topic %q: %d sections with id %q, want 1", topic.Title, n, topic.Slug())
		}
		for _, sub := range topic.Subtopics {
			if n := doc.Find(topicSel + " section.subtopic" + byID(sub.Slug())).Length(); n != 1 {
				return fmt.Errorf("verify: subtopic %q is not nested under %q", sub.Slug(), topic.Slug())
			}
		}
	}

	var hollow error
	doc.Find("ul.notes").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if s.Find("li").Length() == 0 {
			hollow = fmt.Errorf("verify: empty notes list in section %q", sectionOf(s))
			return false
		}
		return true
	})
	if hollow != nil {
		return hollow
	}
	doc.Find("figure.sample").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if strings.TrimSpace(s.Find("figcaption").Text()) == "" {
			hollow = fmt.Errorf("verify: code sample without caption in section %q", sectionOf(s))
			return false
		}
		if s.Find("pre code").Text() == "" {
			hollow = fmt.Errorf("verify: empty code block in section %q", sectionOf(s))
			return false
		}
		return true
	})
	return hollow
}

// sectionOf names the nearest enclosing section for error messages.
func sectionOf(s *goquery.Selection) string {
	id, ok := s.ParentsFiltered("section").First().Attr("id")
	if !ok {
		return "(no section)"
	}
	return id
}
