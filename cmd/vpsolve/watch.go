package main

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lox/vppoker/internal/artifact"
	"github.com/lox/vppoker/internal/canon"
	"github.com/lox/vppoker/internal/ev"
	"github.com/lox/vppoker/internal/progress"
	"github.com/lox/vppoker/internal/registry"
)

// WatchCmd runs the same compile as CompileCmd but drives a live bubbletea
// dashboard instead of periodic log lines.
type WatchCmd struct {
	Paytable string `help:"paytable id to compile" required:""`
	Out      string `help:"output directory" required:""`
	Format   []string `help:"artifact formats to write (v1, v2, json)" default:"v1" sep:","`
	Overlay  string `help:"optional HCL file registering/overriding paytables"`
	Workers  int    `help:"worker goroutines (0 = runtime.NumCPU())"`
}

func (c *WatchCmd) Run() error {
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

	classes := canon.Enumerate(pt.DeckSize())
	tracker := progress.NewTracker(pt.ID, int64(len(classes)))

	program := tea.NewProgram(progress.NewModel(tracker, 200*time.Millisecond))

	resultsCh := make(chan []ev.Result, 1)
	errCh := make(chan error, 1)
	go func() {
		results, err := ev.Calculate(context.Background(), classes, pt, c.Workers, func(p ev.Progress) {
			tracker.Add(p.Done - tracker.Snapshot().HandsDone)
		})
		if err != nil {
			errCh <- err
			return
		}
		resultsCh <- results
	}()

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run dashboard: %w", err)
	}

	select {
	case err := <-errCh:
		return fmt.Errorf("calculate: %w", err)
	case results := <-resultsCh:
		return writeWatchResults(c, pt.ID, pt.DeckSize(), results)
	}
}

func writeWatchResults(c *WatchCmd, paytableID string, deckSize int, results []ev.Result) error {
	generatedAt := time.Now().Unix()
	writer := artifact.NewWriter(c.Out)
	manifest, err := artifact.LoadManifest(c.Out)
	if err != nil {
		return fmt.Errorf("load manifest: %w", err)
	}
	for _, format := range c.Format {
		path, err := writeFormat(writer, paytableID, deckSize, generatedAt, results, artifact.Format(format))
		if err != nil {
			return fmt.Errorf("write %s: %w", format, err)
		}
		if err := manifest.Record(paytableID, artifact.Format(format), path, len(results), generatedAt); err != nil {
			return fmt.Errorf("record manifest: %w", err)
		}
	}
	return manifest.Save(c.Out)
}
