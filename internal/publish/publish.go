// Package publish implements A5/A11: best-effort streaming of compile
// progress and artifact-ready events to a remote collector over a
// websocket. A publisher is never required for a compile to succeed —
// connection failures are logged and swallowed, never surfaced as errors.
package publish

import (
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// ProgressEvent mirrors a progress.Snapshot for remote consumers.
type ProgressEvent struct {
	Type       string  `json:"type"`
	PaytableID string  `json:"paytable_id"`
	HandsDone  int64   `json:"hands_done"`
	HandsTotal int64   `json:"hands_total"`
	BestSoFar  float64 `json:"best_so_far"`
}

// ArtifactReadyEvent announces a finished, persisted artifact.
type ArtifactReadyEvent struct {
	Type       string `json:"type"`
	PaytableID string `json:"paytable_id"`
	Format     string `json:"format"`
	Path       string `json:"path"`
	SHA256     string `json:"sha256"`
	SizeBytes  int64  `json:"size_bytes"`
}

// Publisher streams JSON event frames over a websocket connection. A nil
// Publisher (or one whose Dial failed) is always safe to call Publish on —
// every method is a no-op when disconnected.
type Publisher struct {
	conn   *websocket.Conn
	logger zerolog.Logger
}

// Dial attempts to connect to url, returning a fail-open Publisher either
// way: on error, the returned Publisher is disconnected and every future
// Publish call silently does nothing.
func Dial(url string, logger zerolog.Logger) *Publisher {
	dialer := websocket.Dialer{HandshakeTimeout: 5 * time.Second}
	conn, _, err := dialer.Dial(url, nil)
	if err != nil {
		logger.Warn().Err(err).Str("url", url).Msg("remote publisher unavailable, continuing without it")
		return &Publisher{logger: logger}
	}
	return &Publisher{conn: conn, logger: logger}
}

// PublishProgress sends a progress event frame, logging (never returning)
// any write error.
func (p *Publisher) PublishProgress(e ProgressEvent) {
	e.Type = "progress"
	p.send(e)
}

// PublishArtifactReady sends an artifact-ready event frame.
func (p *Publisher) PublishArtifactReady(e ArtifactReadyEvent) {
	e.Type = "artifact_ready"
	p.send(e)
}

func (p *Publisher) send(v any) {
	if p == nil || p.conn == nil {
		return
	}
	buf, err := json.Marshal(v)
	if err != nil {
		p.logger.Warn().Err(err).Msg("publish: marshal event")
		return
	}
	if err := p.conn.WriteMessage(websocket.TextMessage, buf); err != nil {
		p.logger.Warn().Err(err).Msg("publish: write event, dropping connection")
		p.conn.Close()
		p.conn = nil
	}
}

// Close closes the underlying connection, if any.
func (p *Publisher) Close() {
	if p != nil && p.conn != nil {
		p.conn.Close()
	}
}
