package manifest

import (
	"fmt"
	"sort"

	"probelab/internal/corpus"
)

// LegacyManifest documents a historical dataset whose feedback was selected
// at random rather than enumerated. It records the exact feedback text used
// per trajectory id so the dataset can be replayed, but it is a distinct
// type from Manifest: nothing that consumes a Manifest will accept one, so a
// non-reproducible configuration can never masquerade as reproducible.
type LegacyManifest struct {
	Manifest
	FeedbackByID map[string]string
}

// LoadLegacy reads and validates a legacy manifest. The file must carry a
// legacy feedback mapping.
func LoadLegacy(path string) (*LegacyManifest, error) {
	doc, err := read(path)
	if err != nil {
		return nil, err
	}
	if doc.LegacyFeedbackMapping == nil {
		return nil, fmt.Errorf("manifest %s has no legacy feedback mapping; load it with Load", path)
	}
	if err := doc.Manifest.Validate(corpus.CatalogueSize()); err != nil {
		return nil, err
	}
	return &LegacyManifest{
		Manifest:     doc.Manifest,
		FeedbackByID: doc.LegacyFeedbackMapping,
	}, nil
}

// SaveLegacy writes a legacy manifest including its feedback table.
func SaveLegacy(m *LegacyManifest, path string) error {
	return write(document{Manifest: m.Manifest, LegacyFeedbackMapping: m.FeedbackByID}, path)
}

// TrajectoryCount for a legacy manifest is one trajectory per question,
// since feedback was a single random pick rather than a cross product.
func (m *LegacyManifest) TrajectoryCount(name SplitName) (int, error) {
	sp, err := m.Split(name)
	if err != nil {
		return 0, err
	}
	return len(sp.QuestionIndices), nil
}

// TrajectoryIDs returns the recorded trajectory ids in sorted order.
func (m *LegacyManifest) TrajectoryIDs() []string {
	ids := make([]string, 0, len(m.FeedbackByID))
	for id := range m.FeedbackByID {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// FeedbackFor returns the exact feedback text recorded for a trajectory id.
func (m *LegacyManifest) FeedbackFor(trajectoryID string) (string, bool) {
	text, ok := m.FeedbackByID[trajectoryID]
	return text, ok
}
