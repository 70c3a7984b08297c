package content

import (
	"strings"
	"testing"

	"github.com/dferreira/cnotes/internal/slug"
)

func validTopic(title string) Topic {
	return Topic{
		Title:   title,
		Summary: "summary",
		Subtopics: []Subtopic{
			{Title: title + " Basics", Summary: "basics"},
		},
	}
}

func TestAll_ReturnsTopics(t *testing.T) {
	topics := All()
	if len(topics) == 0 {
		t.Fatal("All() returned no topics")
	}
	if topics[0].Title != "Introduction to Arrays" {
		t.Errorf("first topic = %q, want %q", topics[0].Title, "Introduction to Arrays")
	}
}

func TestAll_AllFieldsPopulated(t *testing.T) {
	for _, topic := range All() {
		if topic.Title == "" {
			t.Error("topic has empty Title")
		}
		if topic.Summary == "" {
			t.Errorf("topic %q has empty Summary", topic.Title)
		}
		if len(topic.Subtopics) == 0 {
			t.Errorf("topic %q has no subtopics", topic.Title)
		}
		for _, sub := range topic.Subtopics {
			if sub.Title == "" {
				t.Errorf("topic %q has a subtopic with empty Title", topic.Title)
			}
			if sub.Summary == "" {
				t.Errorf("subtopic %q has empty Summary", sub.Title)
			}
			for i, note := range sub.Notes {
				if note == "" {
					t.Errorf("subtopic %q: note %d is empty", sub.Title, i+1)
				}
			}
			for _, c := range sub.Code {
				if c.Caption == "" {
					t.Errorf("subtopic %q has a code sample with empty Caption", sub.Title)
				}
				if c.Source == "" {
					t.Errorf("subtopic %q: code sample %q has empty Source", sub.Title, c.Caption)
				}
			}
		}
	}
}

func TestAll_KnownHeadingsPresent(t *testing.T) {
	subtopics := make(map[string]bool)
	topics := make(map[string]bool)
	for _, topic := range All() {
		topics[topic.Title] = true
		for _, sub := range topic.Subtopics {
			subtopics[sub.Title] = true
		}
	}
	if !topics["Arrays and Pointers"] {
		t.Error("missing topic \"Arrays and Pointers\"")
	}
	for _, want := range []string{"1.1 Definition and Characteristics", "2.2 Initializer Lists"} {
		if !subtopics[want] {
			t.Errorf("missing subtopic %q", want)
		}
	}
}

func TestAll_SlugsUnique(t *testing.T) {
	seen := make(map[string]string)
	check := func(anchor, title string) {
		if prev, ok := seen[anchor]; ok {
			t.Errorf("anchor %q produced by both %q and %q", anchor, prev, title)
		}
		seen[anchor] = title
	}
	for _, topic := range All() {
		check(topic.Slug(), topic.Title)
		for _, sub := range topic.Subtopics {
			check(sub.Slug(), sub.Title)
		}
	}
}

func TestAll_SlugsWellFormed(t *testing.T) {
	for _, topic := range All() {
		if !slug.Valid(topic.Slug()) {
			t.Errorf("topic %q: malformed slug %q", topic.Title, topic.Slug())
		}
		for _, sub := range topic.Subtopics {
			if !slug.Valid(sub.Slug()) {
				t.Errorf("subtopic %q: malformed slug %q", sub.Title, sub.Slug())
			}
		}
	}
}

func TestAll_PassesValidate(t *testing.T) {
	if err := Validate(All()); err != nil {
		t.Fatalf("authored model failed validation: %v", err)
	}
}

func TestAll_SomeSectionsOmitNotesOrCode(t *testing.T) {
	// The renderer drops empty note lists and code lists entirely, so the
	// authored model should exercise both paths.
	var withoutNotes, withoutCode int
	for _, topic := range All() {
		for _, sub := range topic.Subtopics {
			if len(sub.Notes) == 0 {
				withoutNotes++
			}
			if len(sub.Code) == 0 {
				withoutCode++
			}
		}
	}
	if withoutNotes == 0 {
		t.Error("no subtopic omits Notes")
	}
	if withoutCode == 0 {
		t.Error("no subtopic omits Code")
	}
}

func TestSlug_Methods(t *testing.T) {
	topic := Topic{Title: "Arrays and Pointers"}
	if got := topic.Slug(); got != "arrays-and-pointers" {
		t.Errorf("Topic.Slug() = %q, want %q", got, "arrays-and-pointers")
	}
	sub := Subtopic{Title: "2.2 Initializer Lists"}
	if got := sub.Slug(); got != "2-2-initializer-lists" {
		t.Errorf("Subtopic.Slug() = %q, want %q", got, "2-2-initializer-lists")
	}
}

func TestFind_BySlug(t *testing.T) {
	topic, err := Find("arrays-and-pointers")
	if err != nil {
		t.Fatalf("Find(arrays-and-pointers) error: %v", err)
	}
	if topic.Title != "Arrays and Pointers" {
		t.Errorf("Title = %q, want %q", topic.Title, "Arrays and Pointers")
	}
}

func TestFind_ByTitle(t *testing.T) {
	topic, err := Find("Arrays and Pointers")
	if err != nil {
		t.Fatalf("Find by title error: %v", err)
	}
	if topic.Slug() != "arrays-and-pointers" {
		t.Errorf("Slug() = %q, want %q", topic.Slug(), "arrays-and-pointers")
	}
}

func TestFind_Unknown(t *testing.T) {
	_, err := Find("linked-lists")
	if err == nil {
		t.Fatal("Find(linked-lists) should return error")
	}
	if !strings.Contains(err.Error(), "linked-lists") {
		t.Errorf("error should name the key, got %v", err)
	}
}

func TestTally_CountsEverything(t *testing.T) {
	topics := []Topic{
		{
			Title:   "A",
			Summary: "s",
			Subtopics: []Subtopic{
				{Title: "A1", Summary: "s", Notes: []string{"n1", "n2"}},
				{Title: "A2", Summary: "s", Code: []CodeSample{{Caption: "c", Source: "x"}}},
			},
		},
		{
			Title:   "B",
			Summary: "s",
			Subtopics: []Subtopic{
				{Title: "B1", Summary: "s", Notes: []string{"n"}, Code: []CodeSample{
					{Caption: "c1", Source: "x"},
					{Caption: "c2", Source: "x"},
				}},
			},
		},
	}
	st := Tally(topics)
	if st.Topics != 2 {
		t.Errorf("Topics = %d, want 2", st.Topics)
	}
	if st.Subtopics != 3 {
		t.Errorf("Subtopics = %d, want 3", st.Subtopics)
	}
	if st.Notes != 3 {
		t.Errorf("Notes = %d, want 3", st.Notes)
	}
	if st.Samples != 3 {
		t.Errorf("Samples = %d, want 3", st.Samples)
	}
}

func TestTally_MatchesModel(t *testing.T) {
	st := Tally(All())
	if st.Topics != len(All()) {
		t.Errorf("Topics = %d, want %d", st.Topics, len(All()))
	}
	if st.Subtopics == 0 || st.Notes == 0 || st.Samples == 0 {
		t.Errorf("empty counts in %+v", st)
	}
}

func TestValidate_NoTopics(t *testing.T) {
	err := Validate(nil)
	if err == nil || !strings.Contains(err.Error(), "at least one topic") {
		t.Fatalf("expected no-topics error, got %v", err)
	}
}

func TestValidate_TopicTitleRequired(t *testing.T) {
	err := Validate([]Topic{{Summary: "s"}})
	if err == nil || !strings.Contains(err.Error(), "topic 1: title is required") {
		t.Fatalf("got %v", err)
	}
}

func TestValidate_TopicSummaryRequired(t *testing.T) {
	bad := validTopic("Alpha")
	bad.Summary = ""
	err := Validate([]Topic{bad})
	if err == nil || !strings.Contains(err.Error(), "summary is required") {
		t.Fatalf("got %v", err)
	}
}

func TestValidate_SubtopicsRequired(t *testing.T) {
	bad := validTopic("Alpha")
	bad.Subtopics = nil
	err := Validate([]Topic{bad})
	if err == nil || !strings.Contains(err.Error(), "at least one subtopic") {
		t.Fatalf("got %v", err)
	}
}

func TestValidate_SubtopicTitleRequired(t *testing.T) {
	bad := validTopic("Alpha")
	bad.Subtopics[0].Title = ""
	err := Validate([]Topic{bad})
	if err == nil || !strings.Contains(err.Error(), "subtopic 1: title is required") {
		t.Fatalf("got %v", err)
	}
}

func TestValidate_SubtopicSummaryRequired(t *testing.T) {
	bad := validTopic("Alpha")
	bad.Subtopics[0].Summary = ""
	err := Validate([]Topic{bad})
	if err == nil || !strings.Contains(err.Error(), "summary is required") {
		t.Fatalf("got %v", err)
	}
}

func TestValidate_DuplicateTopicAnchors(t *testing.T) {
	err := Validate([]Topic{validTopic("Array Decay"), validTopic("Array, Decay")})
	if err == nil || !strings.Contains(err.Error(), "both produce the anchor") {
		t.Fatalf("expected collision error, got %v", err)
	}
	if !strings.Contains(err.Error(), `"array-decay"`) {
		t.Errorf("error should name the colliding anchor, got %v", err)
	}
}

func TestValidate_TopicSubtopicAnchorCollision(t *testing.T) {
	topic := validTopic("Pointers")
	topic.Subtopics = append(topic.Subtopics, Subtopic{Title: "Pointers!", Summary: "s"})
	err := Validate([]Topic{topic})
	if err == nil || !strings.Contains(err.Error(), "both produce the anchor") {
		t.Fatalf("expected collision error, got %v", err)
	}
}

func TestValidate_TitleWithoutAlphanumerics(t *testing.T) {
	err := Validate([]Topic{validTopic("!!!")})
	if err == nil || !strings.Contains(err.Error(), "no alphanumeric characters") {
		t.Fatalf("got %v", err)
	}
	if !strings.Contains(err.Error(), `"!!!"`) {
		t.Errorf("error should name the offending title, got %v", err)
	}
}

func TestValidate_EmptyNote(t *testing.T) {
	bad := validTopic("Alpha")
	bad.Subtopics[0].Notes = []string{"fine", ""}
	err := Validate([]Topic{bad})
	if err == nil || !strings.Contains(err.Error(), "note 2 is empty") {
		t.Fatalf("got %v", err)
	}
}

func TestValidate_CaptionRequired(t *testing.T) {
	bad := validTopic("Alpha")
	bad.Subtopics[0].Code = []CodeSample{{Source: "int x;"}}
	err := Validate([]Topic{bad})
	if err == nil || !strings.Contains(err.Error(), "caption is required") {
		t.Fatalf("got %v", err)
	}
}

func TestValidate_EmptySource(t *testing.T) {
	bad := validTopic("Alpha")
	bad.Subtopics[0].Code = []CodeSample{{Caption: "decl"}}
	err := Validate([]Topic{bad})
	if err == nil || !strings.Contains(err.Error(), "source is empty") {
		t.Fatalf("got %v", err)
	}
}
