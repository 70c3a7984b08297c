// Package content holds the study-guide data: an ordered tree of topics,
// subtopics, bullet notes, and code samples. The model is authored as a
// package literal, is never mutated at runtime, and is the single source
// the renderer reads.
package content

import (
	"fmt"

	"github.com/dferreira/cnotes/internal/slug"
)

// Topic is a top-level grouping of the guide.
type Topic struct {
	Title     string // unique human-readable heading
	Summary   string // short paragraph shown under the heading
	Subtopics []Subtopic
}

// Subtopic is a section nested under a Topic.
type Subtopic struct {
	Title   string       // unique heading, numbered like "2.2 Initializer Lists"
	Summary string
	Notes   []string     // optional bullet notes, rendered in order
	Code    []CodeSample // optional code samples, rendered in order
}

// CodeSample is one captioned block of verbatim source text.
type CodeSample struct {
	Caption string
	Source  string // kept exactly as authored, newlines included
}

// Slug returns the anchor identifier for the topic heading.
func (t Topic) Slug() string { return slug.Make(t.Title) }

// Slug returns the anchor identifier for the subtopic heading.
func (s Subtopic) Slug() string { return slug.Make(s.Title) }

// Stats summarizes the size of a model.
type Stats struct {
	Topics    int
	Subtopics int
	Notes     int
	Samples   int
}

// All returns every topic in display order.
func All() []Topic {
	return guide
}

// Find looks up a topic by anchor slug or exact title.
func Find(key string) (Topic, error) {
	for _, t := range guide {
		if t.Slug() == key || t.Title == key {
			return t, nil
		}
	}
	return Topic{}, fmt.Errorf("unknown topic %q (run 'cnotes topics' to list topics)", key)
}

// Tally counts the sections of a model.
func Tally(topics []Topic) Stats {
	var st Stats
	st.Topics = len(topics)
	for _, t := range topics {
		st.Subtopics += len(t.Subtopics)
		for _, s := range t.Subtopics {
			st.Notes += len(s.Notes)
			st.Samples += len(s.Code)
		}
	}
	return st
}

// Validate checks a model for authoring defects: empty or colliding anchor
// slugs, missing titles, and empty code samples. Slug collisions would
// produce duplicate anchor ids in the rendered page, so they are rejected
// here rather than discovered in a browser.
func Validate(topics []Topic) error {
	if len(topics) == 0 {
		return fmt.Errorf("content: at least one topic is required")
	}

	owners := make(map[string]string) // slug -> owning title

	claim := func(title string) error {
		if title == "" {
			return fmt.Errorf("content: every heading needs a title")
		}
		anchor := slug.Make(title)
		if anchor == "" {
			return fmt.Errorf("content: title %q has no alphanumeric characters, cannot derive an anchor", title)
		}
		if prev, ok := owners[anchor]; ok {
			return fmt.Errorf("content: %q and %q both produce the anchor %q", prev, title, anchor)
		}
		owners[anchor] = title
		return nil
	}

	for i, t := range topics {
		if t.Title == "" {
			return fmt.Errorf("content: topic %d: title is required", i+1)
		}
		if err := claim(t.Title); err != nil {
			return err
		}
		if t.Summary == "" {
			return fmt.Errorf("content: topic %q: summary is required", t.Title)
		}
		if len(t.Subtopics) == 0 {
			return fmt.Errorf("content: topic %q: at least one subtopic is required", t.Title)
		}
		for j, s := range t.Subtopics {
			if s.Title == "" {
				return fmt.Errorf("content: topic %q: subtopic %d: title is required", t.Title, j+1)
			}
			if err := claim(s.Title); err != nil {
				return err
			}
			if s.Summary == "" {
				return fmt.Errorf("content: subtopic %q: summary is required", s.Title)
			}
			for k, n := range s.Notes {
				if n == "" {
					return fmt.Errorf("content: subtopic %q: note %d is empty", s.Title, k+1)
				}
			}
			for k, c := range s.Code {
				if c.Caption == "" {
					return fmt.Errorf("content: subtopic %q: code sample %d: caption is required", s.Title, k+1)
				}
				if c.Source == "" {
					return fmt.Errorf("content: subtopic %q: code sample %q: source is empty", s.Title, c.Caption)
				}
			}
		}
	}
	return nil
}
