package site

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/dferreira/cnotes/internal/content"
	"github.com/dferreira/cnotes/internal/verify"
)

// VerifyDir checks a built output directory against the given model. When
// a manifest is present its counts must agree with the model, which catches
// directories built from an older guide. The page itself is then parsed
// and checked structurally.
func VerifyDir(dir string, topics []content.Topic) error {
	man, err := LoadManifest(dir)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// no manifest, the page can still be checked
	case err != nil:
		return err
	default:
		st := content.Tally(topics)
		if man.Topics != st.Topics || man.Subtopics != st.Subtopics {
			return fmt.Errorf("verify: manifest records %d topics and %d subtopics, model has %d and %d (run 'cnotes build' to refresh)",
				man.Topics, man.Subtopics, st.Topics, st.Subtopics)
		}
	}
	return verify.File(filepath.Join(dir, pageName), topics)
}
