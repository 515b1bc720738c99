package artifact

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ManifestEntry records what was written for one compiled paytable, letting
// a driver skip already-compiled paytables or verify an artifact on disk
// matches what the manifest says was last produced.
type ManifestEntry struct {
	PaytableID  string `json:"paytable_id"`
	Format      Format `json:"format"`
	Path        string `json:"path"`
	SHA256      string `json:"sha256"`
	SizeBytes   int64  `json:"size_bytes"`
	HandCount   int    `json:"hand_count"`
	GeneratedAt int64  `json:"generated_at"`
}

// Manifest is the full set of compiled artifacts tracked for a run, keyed by
// "<paytable_id>/<format>" so a paytable can carry both a v1 and v2 entry.
type Manifest struct {
	Entries map[string]ManifestEntry `json:"entries"`
}

func manifestKey(paytableID string, format Format) string {
	return paytableID + "/" + string(format)
}

func manifestPath(dir string) string {
	return filepath.Join(dir, "manifest.json")
}

// LoadManifest reads manifest.json from dir, returning an empty Manifest if
// it doesn't exist yet.
func LoadManifest(dir string) (*Manifest, error) {
	path := manifestPath(dir)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Manifest{Entries: make(map[string]ManifestEntry)}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("artifact: read manifest: %w", err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("artifact: parse manifest: %w", err)
	}
	if m.Entries == nil {
		m.Entries = make(map[string]ManifestEntry)
	}
	return &m, nil
}

// Save atomically writes the manifest to dir.
func (m *Manifest) Save(dir string) error {
	buf, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("artifact: marshal manifest: %w", err)
	}
	return writeFileAtomic(manifestPath(dir), buf, 0o644)
}

// Record hashes the artifact at path and stores/replaces its manifest entry.
func (m *Manifest) Record(paytableID string, format Format, path string, handCount int, generatedAt int64) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("artifact: hash %s: %w", path, err)
	}
	sum := sha256.Sum256(data)
	m.Entries[manifestKey(paytableID, format)] = ManifestEntry{
		PaytableID:  paytableID,
		Format:      format,
		Path:        path,
		SHA256:      hex.EncodeToString(sum[:]),
		SizeBytes:   int64(len(data)),
		HandCount:   handCount,
		GeneratedAt: generatedAt,
	}
	return nil
}

// Has reports whether paytableID/format is already recorded in the
// manifest, letting a driver skip recompiling it.
func (m *Manifest) Has(paytableID string, format Format) bool {
	_, ok := m.Entries[manifestKey(paytableID, format)]
	return ok
}

// Lookup returns the recorded SHA256 and size for paytableID/format, or
// zero values if no such entry exists.
func (m *Manifest) Lookup(paytableID string, format Format) (sha256Hex string, sizeBytes int64) {
	entry := m.Entries[manifestKey(paytableID, format)]
	return entry.SHA256, entry.SizeBytes
}
