package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "manifest.json")

	m := Canonical(testCreated())
	require.NoError(t, Save(m, path))

	loaded, err := Load(path)
	require.NoError(t, err)
	if diff := cmp.Diff(m, loaded); diff != "" {
		t.Fatalf("manifest did not round-trip (-saved +loaded):\n%s", diff)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "manifest.json")

	m := Canonical(testCreated())
	m.SchemaVersion = "0.9"
	require.NoError(t, Save(m, path))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema version mismatch")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadRejectsMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsLegacyManifest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "legacy.json")

	legacy := &LegacyManifest{
		Manifest: *Canonical(testCreated()),
		FeedbackByID: map[string]string{
			"train_q000_f0": "That's wrong, please try again.",
		},
	}
	require.NoError(t, SaveLegacy(legacy, path))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LoadLegacy")
}

func TestLegacyRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "legacy.json")

	legacy := &LegacyManifest{
		Manifest: *Canonical(testCreated()),
		FeedbackByID: map[string]string{
			"train_q001_f0": "No, that's not correct. Try again.",
			"train_q000_f0": "That's wrong, please try again.",
		},
	}
	require.NoError(t, SaveLegacy(legacy, path))

	loaded, err := LoadLegacy(path)
	require.NoError(t, err)
	if diff := cmp.Diff(legacy, loaded); diff != "" {
		t.Fatalf("legacy manifest did not round-trip:\n%s", diff)
	}

	assert.Equal(t, []string{"train_q000_f0", "train_q001_f0"}, loaded.TrajectoryIDs())

	text, ok := loaded.FeedbackFor("train_q000_f0")
	require.True(t, ok)
	assert.Equal(t, "That's wrong, please try again.", text)
	_, ok = loaded.FeedbackFor("train_q999_f0")
	assert.False(t, ok)

	// One trajectory per question, not a cross product.
	n, err := loaded.TrajectoryCount(Train)
	require.NoError(t, err)
	assert.Equal(t, 50, n)
}

func TestLoadLegacyRequiresMapping(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plain.json")
	require.NoError(t, Save(Canonical(testCreated()), path))

	_, err := LoadLegacy(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no legacy feedback mapping")
}
