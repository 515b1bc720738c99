package main

import (
	"context"
	"fmt"
	"time"

	"github.com/coder/quartz"
	"github.com/rs/zerolog/log"

	"github.com/lox/vppoker/internal/artifact"
	"github.com/lox/vppoker/internal/canon"
	"github.com/lox/vppoker/internal/ev"
	"github.com/lox/vppoker/internal/progress"
	"github.com/lox/vppoker/internal/publish"
	"github.com/lox/vppoker/internal/registry"
	"github.com/lox/vppoker/internal/strategy"
)

// CompileCmd computes the full EV table for one paytable and writes the
// requested artifact formats.
type CompileCmd struct {
	Paytable    string   `help:"paytable id to compile" required:""`
	Out         string   `help:"output directory" required:""`
	Format      []string `help:"artifact formats to write (v1, v2, json)" default:"v1" sep:","`
	Overlay     string   `help:"optional HCL file registering/overriding paytables"`
	Workers     int      `help:"worker goroutines (0 = runtime.NumCPU())"`
	PublishURL  string   `help:"optional websocket URL to stream progress/artifact events to"`
	LogInterval time.Duration `help:"progress log interval" default:"5s"`
}

func (c *CompileCmd) Run() error {
	reg := registry.New()
	if c.Overlay != "" {
		if err := reg.LoadOverlay(c.Overlay); err != nil {
			return fmt.Errorf("load overlay: %w", err)
		}
	}
	pt, ok := reg.Lookup(c.Paytable)
	if !ok {
		return fmt.Errorf("unknown paytable %q (see vpsolve list)", c.Paytable)
	}

	log.Info().Str("paytable", pt.ID).Str("family", pt.Family.String()).Msg("enumerating canonical hands")
	classes := canon.Enumerate(pt.DeckSize())

	tracker := progress.NewTracker(pt.ID, int64(len(classes)))
	reporter := progress.NewLogReporter(tracker, log.Logger, c.LogInterval, quartz.NewReal())
	go reporter.Run()
	defer reporter.Stop()

	var pub *publish.Publisher
	if c.PublishURL != "" {
		pub = publish.Dial(c.PublishURL, log.Logger)
		defer pub.Close()
	}

	onProgress := func(p ev.Progress) {
		tracker.Add(p.Done - tracker.Snapshot().HandsDone)
		if pub != nil {
			s := tracker.Snapshot()
			pub.PublishProgress(publish.ProgressEvent{
				PaytableID: s.PaytableID, HandsDone: s.HandsDone, HandsTotal: s.HandsTotal, BestSoFar: s.BestSoFar,
			})
		}
	}

	results, err := ev.Calculate(context.Background(), classes, pt, c.Workers, onProgress)
	if err != nil {
		return fmt.Errorf("calculate: %w", err)
	}

	generatedAt := time.Now().Unix()
	writer := artifact.NewWriter(c.Out)
	manifest, err := artifact.LoadManifest(c.Out)
	if err != nil {
		return fmt.Errorf("load manifest: %w", err)
	}

	for _, format := range c.Format {
		path, err := writeFormat(writer, pt.ID, pt.DeckSize(), generatedAt, results, artifact.Format(format))
		if err != nil {
			return fmt.Errorf("write %s: %w", format, err)
		}
		if err := manifest.Record(pt.ID, artifact.Format(format), path, len(results), generatedAt); err != nil {
			return fmt.Errorf("record manifest: %w", err)
		}
		if pub != nil {
			sha, size := manifest.Lookup(pt.ID, artifact.Format(format))
			pub.PublishArtifactReady(publish.ArtifactReadyEvent{
				PaytableID: pt.ID, Format: format, Path: path, SHA256: sha, SizeBytes: size,
			})
		}
		log.Info().Str("paytable", pt.ID).Str("format", format).Str("path", path).Msg("wrote artifact")
	}

	if err := manifest.Save(c.Out); err != nil {
		return fmt.Errorf("save manifest: %w", err)
	}
	return nil
}

func writeFormat(w *artifact.Writer, paytableID string, deckSize int, generatedAt int64, results []ev.Result, format artifact.Format) (string, error) {
	switch format {
	case artifact.FormatV1:
		buf, err := strategy.EncodeV1(deckSize, results)
		if err != nil {
			return "", err
		}
		return w.WriteBytes(paytableID, format, buf)
	case artifact.FormatV2:
		buf, err := strategy.EncodeV2(deckSize, results)
		if err != nil {
			return "", err
		}
		return w.WriteBytes(paytableID, format, buf)
	case artifact.FormatJSON:
		return w.WriteJSON(paytableID, generatedAt, results, false)
	default:
		return "", fmt.Errorf("unknown format %q", format)
	}
}
