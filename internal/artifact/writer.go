package artifact

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/lox/vppoker/internal/ev"
)

// Format selects which strategy-table encoding a Writer emits.
type Format string

const (
	FormatV1   Format = "v1"
	FormatV2   Format = "v2"
	FormatJSON Format = "json"
)

func fileName(paytableID string, format Format) string {
	switch format {
	case FormatV1:
		return paytableID + ".vpstrat"
	case FormatV2:
		return paytableID + ".vpstrat2"
	case FormatJSON:
		return paytableID + ".json"
	default:
		return paytableID + "." + string(format)
	}
}

// gameName identifies the game family in the JSON companion document; the
// core only ever solves five-card draw, so this is constant.
const gameName = "five-card-draw"

// jsonSchemaVersion is the companion document's own schema version,
// independent of the v1/v2 binary artifact version.
const jsonSchemaVersion = 1

// jsonDocument is the human-readable companion to the binary artifacts,
// keyed by canonical key rather than carrying a parallel array so a reader
// can look a hand up directly instead of scanning.
type jsonDocument struct {
	Game       string                  `json:"game"`
	PaytableID string                  `json:"paytable_id"`
	Version    int                     `json:"version"`
	Generated  int64                   `json:"generated"`
	HandCount  int                     `json:"hand_count"`
	Strategies map[string]jsonStrategy `json:"strategies"`
}

type jsonStrategy struct {
	Hold    uint8       `json:"hold"`
	EV      float64     `json:"ev"`
	HoldEVs []float64 `json:"hold_evs,omitempty"`
}

// Writer persists compiled strategy artifacts into dir.
type Writer struct {
	Dir string
}

// NewWriter returns a Writer rooted at dir.
func NewWriter(dir string) *Writer {
	return &Writer{Dir: dir}
}

// WriteBytes atomically writes an already-encoded artifact (v1 or v2 byte
// buffer from internal/strategy) and returns its final path.
func (w *Writer) WriteBytes(paytableID string, format Format, buf []byte) (string, error) {
	path := filepath.Join(w.Dir, fileName(paytableID, format))
	if err := writeFileAtomic(path, buf, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// WriteJSON atomically writes the JSON companion document for a compile run.
// includeVectors controls whether the full 32-entry EV vector is embedded
// per hand (hold_evs) or only the winning hold and its EV.
func (w *Writer) WriteJSON(paytableID string, generatedAt int64, results []ev.Result, includeVectors bool) (string, error) {
	doc := jsonDocument{
		Game:       gameName,
		PaytableID: paytableID,
		Version:    jsonSchemaVersion,
		Generated:  generatedAt,
		HandCount:  len(results),
		Strategies: make(map[string]jsonStrategy, len(results)),
	}
	for _, r := range results {
		s := jsonStrategy{Hold: r.Entry.BestMask, EV: r.Entry.BestEV}
		if includeVectors {
			s.HoldEVs = r.Entry.Vector[:]
		}
		doc.Strategies[r.Key] = s
	}

	buf, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("artifact: marshal json document: %w", err)
	}
	path := filepath.Join(w.Dir, fileName(paytableID, FormatJSON))
	if err := writeFileAtomic(path, buf, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
