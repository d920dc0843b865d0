package catalog

import (
	"log/slog"
	"math"
	"strconv"
	"strings"

	"BookStoreAPI/internal/model"
)

// FilterState holds the active storefront predicates. Zero value means
// "no filter": every book passes.
type FilterState struct {
	Categories    []string `json:"categories,omitempty"`    // exact match against Book.Category
	Manufacturers []string `json:"manufacturers,omitempty"` // exact match against Book.Manufacturer
	PriceRange    string   `json:"pricerange,omitempty"`    // "<min>-<max>", max may be a large sentinel
	Keyword       string   `json:"keyword,omitempty"`       // substring match on title/author, case-insensitive
}

func (s FilterState) IsEmpty() bool {
	return len(s.Categories) == 0 &&
		len(s.Manufacturers) == 0 &&
		s.PriceRange == "" &&
		s.Keyword == ""
}

// priceBounds parses "min-max". A malformed range deactivates the
// predicate rather than failing the whole filter.
func priceBounds(r string) (min, max float64, ok bool) {
	lo, hi, found := strings.Cut(r, "-")
	if !found {
		return 0, 0, false
	}
	min, err := strconv.ParseFloat(strings.TrimSpace(lo), 64)
	if err != nil {
		return 0, 0, false
	}
	hi = strings.TrimSpace(hi)
	if hi == "" {
		// open-ended range, no upper bound
		return min, math.Inf(1), true
	}
	max, err = strconv.ParseFloat(hi, 64)
	if err != nil {
		return 0, 0, false
	}
	return min, max, true
}

// Filter applies all active predicates (AND-combined) and returns a new
// slice; the input is never mutated. No active predicate returns a copy
// with the same elements in the same order.
func Filter(books []model.Book, state FilterState) []model.Book {
	priceActive := false
	var minPrice, maxPrice float64
	if state.PriceRange != "" {
		minPrice, maxPrice, priceActive = priceBounds(state.PriceRange)
		if !priceActive {
			slog.Warn("ignoring malformed price range", "range", state.PriceRange)
		}
	}

	var categories, manufacturers map[string]bool
	if len(state.Categories) > 0 {
		categories = make(map[string]bool, len(state.Categories))
		for _, c := range state.Categories {
			categories[c] = true
		}
	}
	if len(state.Manufacturers) > 0 {
		manufacturers = make(map[string]bool, len(state.Manufacturers))
		for _, m := range state.Manufacturers {
			manufacturers[m] = true
		}
	}
	keyword := strings.ToLower(strings.TrimSpace(state.Keyword))

	out := make([]model.Book, 0, len(books))
	for _, b := range books {
		if categories != nil && !categories[b.Category] {
			continue
		}
		if manufacturers != nil && !manufacturers[b.Manufacturer] {
			continue
		}
		if priceActive {
			if b.Price < minPrice || b.Price > maxPrice {
				continue
			}
		}
		if keyword != "" {
			if !strings.Contains(strings.ToLower(b.Title), keyword) &&
				!strings.Contains(strings.ToLower(b.Author), keyword) {
				continue
			}
		}
		out = append(out, b)
	}
	return out
}
