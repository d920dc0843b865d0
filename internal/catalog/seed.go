package catalog

import "strings"

// SeedPhase tracks the two-phase filter initialization: a category name
// may arrive via query parameter before the category lookup list has
// loaded, so the seed is deferred until the list is known.
type SeedPhase int

const (
	PhaseAwaitingCategories SeedPhase = iota
	PhaseReady
)

// CategorySeed resolves a deferred category filter seed once the
// category list arrives. The pending name is matched case-insensitively
// against the fetched names and replaced by the canonical spelling.
type CategorySeed struct {
	phase   SeedPhase
	pending string
}

func NewCategorySeed(pending string) *CategorySeed {
	return &CategorySeed{phase: PhaseAwaitingCategories, pending: pending}
}

func (s *CategorySeed) Phase() SeedPhase { return s.phase }

// Resolve transitions to ready and returns the canonical category name
// to seed the filter with, or "" when the pending value matches nothing
// (including the no-seed case).
func (s *CategorySeed) Resolve(categories []string) string {
	s.phase = PhaseReady
	if s.pending == "" {
		return ""
	}
	for _, name := range categories {
		if strings.EqualFold(name, s.pending) {
			s.pending = ""
			return name
		}
	}
	s.pending = ""
	return ""
}
