package main

import (
	"fmt"

	"github.com/lox/vppoker/internal/registry"
)

// ListCmd prints the registered paytable set.
type ListCmd struct {
	Overlay string `help:"optional HCL file registering/overriding paytables"`
}

func (c *ListCmd) Run() error {
	reg := registry.New()
	if c.Overlay != "" {
		if err := reg.LoadOverlay(c.Overlay); err != nil {
			return fmt.Errorf("load overlay: %w", err)
		}
	}
	for _, pt := range reg.List() {
		fmt.Printf("%-28s %-28s %-12s royal=%d\n", pt.ID, pt.Name, pt.Family, pt.RoyalFlush)
	}
	return nil
}
