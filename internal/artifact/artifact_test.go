package artifact

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/vppoker/internal/ev"
)

func TestWriteBytesThenManifestRecord(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir)

	buf := []byte("fake-v1-artifact-bytes")
	path, err := w.WriteBytes("jacks-or-better-9-6", FormatV1, buf)
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))

	m, err := LoadManifest(dir)
	require.NoError(t, err)
	assert.False(t, m.Has("jacks-or-better-9-6", FormatV1), "manifest should start empty")

	require.NoError(t, m.Record("jacks-or-better-9-6", FormatV1, path, 134459, 1700000000))
	require.NoError(t, m.Save(dir))

	reloaded, err := LoadManifest(dir)
	require.NoError(t, err)
	require.True(t, reloaded.Has("jacks-or-better-9-6", FormatV1))

	entry := reloaded.Entries[manifestKey("jacks-or-better-9-6", FormatV1)]
	assert.EqualValues(t, len(buf), entry.SizeBytes)
	assert.Equal(t, 134459, entry.HandCount)
}

func TestWriteJSONRoundTrips(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir)
	results := []ev.Result{
		{Key: "AaKaQaJaTa", Entry: ev.Entry{BestMask: 0b11111, BestEV: 800}},
	}
	path, err := w.WriteJSON("jacks-or-better-9-6", 1700000000, results, false)
	require.NoError(t, err)
	assert.Equal(t, "jacks-or-better-9-6.json", filepath.Base(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc jsonDocument
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, gameName, doc.Game)
	assert.Equal(t, "jacks-or-better-9-6", doc.PaytableID)
	assert.Equal(t, jsonSchemaVersion, doc.Version)
	assert.Equal(t, int64(1700000000), doc.Generated)
	strat, ok := doc.Strategies["AaKaQaJaTa"]
	require.True(t, ok, "expected strategies to be keyed by canonical key")
	assert.EqualValues(t, 0b11111, strat.Hold)
	assert.Equal(t, 800.0, strat.EV)
}
