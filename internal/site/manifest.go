package site

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dferreira/cnotes/internal/content"
)

const manifestName = "manifest.json"

// FileEntry records one published file and its size in bytes.
type FileEntry struct {
	Path  string `json:"path"`
	Bytes int64  `json:"bytes"`
}

// StageTime records the wall time one build stage took.
type StageTime struct {
	Stage    string `json:"stage"`
	Duration string `json:"duration"`
	Millis   int64  `json:"millis"`
}

// Manifest is the build record written next to the page. It identifies the
// build, counts what went into it, and lists what came out, so a later
// verify run can tell whether the directory matches the current model.
type Manifest struct {
	BuildID   string      `json:"build_id"`
	Generator string      `json:"generator"`
	BuiltAt   time.Time   `json:"built_at"`
	Topics    int         `json:"topics"`
	Subtopics int         `json:"subtopics"`
	Notes     int         `json:"notes"`
	Samples   int         `json:"samples"`
	Files     []FileEntry `json:"files"`
	Stages    []StageTime `json:"stages,omitempty"`
}

func manifestPath(outputDir string) string {
	return filepath.Join(outputDir, manifestName)
}

func newManifest(topics []content.Topic) *Manifest {
	st := content.Tally(topics)
	return &Manifest{
		Generator: "cnotes " + Version,
		Topics:    st.Topics,
		Subtopics: st.Subtopics,
		Notes:     st.Notes,
		Samples:   st.Samples,
	}
}

// AddFile records a published file.
func (m *Manifest) AddFile(relPath string, size int64) {
	m.Files = append(m.Files, FileEntry{Path: relPath, Bytes: size})
}

// AddStage records a completed stage and its duration.
func (m *Manifest) AddStage(name string, d time.Duration) {
	m.Stages = append(m.Stages, StageTime{
		Stage:    name,
		Duration: d.Round(time.Millisecond).String(),
		Millis:   d.Milliseconds(),
	})
}

// TotalBytes sums the sizes of all published files.
func (m *Manifest) TotalBytes() int64 {
	var n int64
	for _, f := range m.Files {
		n += f.Bytes
	}
	return n
}

// Save writes the manifest into the output directory.
func (m *Manifest) Save(outputDir string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return writeFileAtomic(manifestPath(outputDir), data, 0644)
}

// LoadManifest reads the manifest from a built output directory. The error
// satisfies errors.Is(err, fs.ErrNotExist) when the directory has none.
func LoadManifest(outputDir string) (*Manifest, error) {
	data, err := os.ReadFile(manifestPath(outputDir))
	if err != nil {
		return nil, err
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", manifestPath(outputDir), err)
	}
	return &m, nil
}
