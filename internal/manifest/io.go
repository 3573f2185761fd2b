package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"probelab/internal/corpus"
)

// document is the on-disk JSON shape, a superset of Manifest that also
// carries the optional legacy feedback table.
type document struct {
	Manifest
	LegacyFeedbackMapping map[string]string `json:"legacy_feedback_mapping,omitempty"`
}

// Load reads and validates a reproducible manifest. Manifests carrying a
// legacy feedback mapping are rejected here so randomized historical
// datasets can never be silently treated as reproducible; use LoadLegacy
// for those.
func Load(path string) (*Manifest, error) {
	doc, err := read(path)
	if err != nil {
		return nil, err
	}
	if doc.LegacyFeedbackMapping != nil {
		return nil, fmt.Errorf("manifest %s carries a legacy feedback mapping; load it with LoadLegacy", path)
	}
	if err := doc.Manifest.Validate(corpus.CatalogueSize()); err != nil {
		return nil, err
	}
	m := doc.Manifest
	return &m, nil
}

// Save writes the manifest as indented JSON, creating parent directories.
// The written document round-trips losslessly through Load.
func Save(m *Manifest, path string) error {
	return write(document{Manifest: *m}, path)
}

func read(path string) (*document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}
	return &doc, nil
}

func write(doc document, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create manifest directory: %w", err)
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode manifest: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}
