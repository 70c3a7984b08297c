package ux

import (
	"fmt"

	"github.com/dferreira/cnotes/internal/content"
)

// RenderTopics prints the full topic listing: every heading with its anchor
// and what each subtopic carries.
func RenderTopics(topics []content.Topic) {
	st := content.Tally(topics)
	fmt.Printf("%sTopics:%s %d (%d subtopics, %d notes, %d code samples)\n",
		Bold, Reset, st.Topics, st.Subtopics, st.Notes, st.Samples)

	for i, t := range topics {
		fmt.Printf("\n  %s%d%s  %s%s%s  %s#%s%s\n",
			Dim, i+1, Reset, Bold, t.Title, Reset, Cyan, t.Slug(), Reset)
		for _, s := range t.Subtopics {
			fmt.Printf("     %-44s %s%s%s\n", s.Title, Dim, sectionDetail(s), Reset)
		}
	}
	fmt.Println()
}

// RenderTopic prints one topic in full: summary, subtopic anchors, notes,
// and sample captions.
func RenderTopic(t content.Topic) {
	fmt.Printf("%s%s%s  %s#%s%s\n", Bold, t.Title, Reset, Cyan, t.Slug(), Reset)
	fmt.Printf("%s%s%s\n", Dim, t.Summary, Reset)

	for _, s := range t.Subtopics {
		fmt.Printf("\n  %s%s%s  %s#%s%s\n", Bold, s.Title, Reset, Cyan, s.Slug(), Reset)
		fmt.Printf("  %s\n", s.Summary)
		for _, n := range s.Notes {
			fmt.Printf("    %s•%s %s\n", Dim, Reset, n)
		}
		for _, c := range s.Code {
			fmt.Printf("    %s⌘ %s%s\n", Yellow, c.Caption, Reset)
		}
	}
	fmt.Println()
}

func sectionDetail(s content.Subtopic) string {
	detail := fmt.Sprintf("%d notes", len(s.Notes))
	if n := len(s.Code); n > 0 {
		detail += fmt.Sprintf(", %d samples", n)
	}
	return detail
}
