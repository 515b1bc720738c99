package publish

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestDialFailureIsFailOpen(t *testing.T) {
	p := Dial("ws://127.0.0.1:1/does-not-exist", zerolog.Nop())
	if p == nil {
		t.Fatal("Dial must never return nil")
	}
	// These must not panic even though the dial failed.
	p.PublishProgress(ProgressEvent{PaytableID: "jacks-or-better-9-6", HandsDone: 1, HandsTotal: 2})
	p.PublishArtifactReady(ArtifactReadyEvent{PaytableID: "jacks-or-better-9-6"})
	p.Close()
}
