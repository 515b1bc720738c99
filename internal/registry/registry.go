package registry

import (
	"fmt"
	"os"
	"sort"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/vppoker/internal/paytable"
)

// Source tags where a registered paytable came from. It is a registry-only
// concern; the evaluator and solver never see it.
type Source string

const (
	SourceBuiltin Source = "builtin"
	SourceHCL     Source = "hcl"
)

type entry struct {
	paytable.Paytable
	Source Source
}

// Registry is an immutable-after-load id -> Paytable lookup table.
type Registry struct {
	byID map[string]entry
}

// New returns a Registry seeded with the built-in variant set.
func New() *Registry {
	r := &Registry{byID: make(map[string]entry)}
	for _, pt := range builtins() {
		r.byID[pt.ID] = entry{Paytable: pt, Source: SourceBuiltin}
	}
	return r
}

// Lookup returns the paytable registered under id, if any.
func (r *Registry) Lookup(id string) (paytable.Paytable, bool) {
	e, ok := r.byID[id]
	return e.Paytable, ok
}

// IDs returns every registered paytable id, sorted.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.byID))
	for id := range r.byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// List returns every registered paytable, sorted by id.
func (r *Registry) List() []paytable.Paytable {
	out := make([]paytable.Paytable, 0, len(r.byID))
	for _, id := range r.IDs() {
		out = append(out, r.byID[id].Paytable)
	}
	return out
}

// hclFile is the top-level shape of an overlay file: zero or more
// paytable blocks, each labeled with its id.
type hclFile struct {
	Paytables []hclPaytable `hcl:"paytable,block"`
}

type hclPaytable struct {
	ID            string `hcl:"id,label"`
	Name          string `hcl:"name,optional"`
	Family        string `hcl:"family"` // "standard", "deuces-wild", "joker"
	JokerCount    int    `hcl:"joker_count,optional"`
	RoyalFlush    int    `hcl:"royal_flush"`
	StraightFlush int    `hcl:"straight_flush,optional"`
	FourOfAKind   int    `hcl:"four_of_a_kind,optional"`
	FullHouse     int    `hcl:"full_house,optional"`
	Flush         int    `hcl:"flush,optional"`
	Straight      int    `hcl:"straight,optional"`
	ThreeOfAKind  int    `hcl:"three_of_a_kind,optional"`
	TwoPair       int    `hcl:"two_pair,optional"`
	HighPair      int    `hcl:"high_pair,optional"`
	MinPairRank   int    `hcl:"min_pair_rank,optional"`
	WildRoyal     int    `hcl:"wild_royal,optional"`
	FiveOfAKind   int    `hcl:"five_of_a_kind,optional"`
	FourDeuces    int    `hcl:"four_deuces,optional"`

	FourAces      int `hcl:"four_aces,optional"`
	FourLow       int `hcl:"four_2_4,optional"`
	FourMid       int `hcl:"four_5_k,optional"`
	FourJQK       int `hcl:"four_jqk,optional"`
	FourEights    int `hcl:"four_8s,optional"`
	FourSevens    int `hcl:"four_7s,optional"`
	AcesLowKicker  int `hcl:"aces_low_kicker,optional"`
	LowAceKicker   int `hcl:"low_ace_kicker,optional"`
	AcesFaceKicker int `hcl:"aces_face_kicker,optional"`
	JQKFaceKicker  int `hcl:"jqk_face_kicker,optional"`
}

func familyFromString(s string) (paytable.Family, error) {
	switch s {
	case "standard":
		return paytable.Standard, nil
	case "deuces-wild":
		return paytable.DeucesWild, nil
	case "joker":
		return paytable.Joker, nil
	default:
		return 0, fmt.Errorf("registry: unknown family %q", s)
	}
}

func (h hclPaytable) toPaytable() (paytable.Paytable, error) {
	family, err := familyFromString(h.Family)
	if err != nil {
		return paytable.Paytable{}, err
	}
	name := h.Name
	if name == "" {
		name = h.ID
	}
	return paytable.Paytable{
		ID: h.ID, Name: name, Family: family, JokerCount: h.JokerCount,
		RoyalFlush: h.RoyalFlush, StraightFlush: h.StraightFlush,
		FourOfAKind: h.FourOfAKind, FullHouse: h.FullHouse, Flush: h.Flush,
		Straight: h.Straight, ThreeOfAKind: h.ThreeOfAKind, TwoPair: h.TwoPair,
		HighPair: h.HighPair, MinPairRank: h.MinPairRank,
		WildRoyal: h.WildRoyal, FiveOfAKind: h.FiveOfAKind, FourDeuces: h.FourDeuces,
		Quad: paytable.QuadBonus{
			Aces: h.FourAces, Low: h.FourLow, Mid: h.FourMid,
			JQK: h.FourJQK, Eight: h.FourEights, Seven: h.FourSevens,
		},
		Kicker: paytable.KickerBonus{
			AcesLowKicker:  h.AcesLowKicker,
			LowAceKicker:   h.LowAceKicker,
			AcesFaceKicker: h.AcesFaceKicker,
			JQKFaceKicker:  h.JQKFaceKicker,
		},
	}, nil
}

// LoadOverlay parses an HCL file of `paytable "<id>" { ... }` blocks and
// registers (or replaces) each one, the way internal/server/config.go loads
// table and bot blocks for the multiplayer server.
func (r *Registry) LoadOverlay(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("registry: overlay file %s does not exist", path)
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return fmt.Errorf("registry: parse %s: %s", path, diags.Error())
	}

	var parsed hclFile
	if diags := gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return fmt.Errorf("registry: decode %s: %s", path, diags.Error())
	}

	for _, hp := range parsed.Paytables {
		pt, err := hp.toPaytable()
		if err != nil {
			return fmt.Errorf("registry: paytable %q: %w", hp.ID, err)
		}
		if err := pt.Validate(); err != nil {
			return fmt.Errorf("registry: paytable %q: %w", hp.ID, err)
		}
		r.byID[pt.ID] = entry{Paytable: pt, Source: SourceHCL}
	}
	return nil
}
