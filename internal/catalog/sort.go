package catalog

import (
	"os"
	"slices"

	"BookStoreAPI/internal/model"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey selects the ordering of a storefront listing.
type SortKey string

const (
	SortTitle     SortKey = "title"
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortRating    SortKey = "rating"
)

var collationTag = resolveCollationTag()

func resolveCollationTag() language.Tag {
	if loc := os.Getenv("COLLATION_LOCALE"); loc != "" {
		if t, err := language.Parse(loc); err == nil {
			return t
		}
	}
	return language.English
}

// Sort orders books by the given key and returns a new slice; the input
// is never mutated. The sort is stable so ties keep their input order
// across repeated re-filtering.
func Sort(books []model.Book, key SortKey) []model.Book {
	out := slices.Clone(books)
	switch key {
	case SortTitle:
		// collators keep internal buffers, so each sort gets its own
		coll := collate.New(collationTag)
		slices.SortStableFunc(out, func(a, b model.Book) int {
			return coll.CompareString(a.Title, b.Title)
		})
	case SortPriceAsc:
		slices.SortStableFunc(out, func(a, b model.Book) int {
			return cmpFloat(a.Price, b.Price)
		})
	case SortPriceDesc:
		slices.SortStableFunc(out, func(a, b model.Book) int {
			return cmpFloat(b.Price, a.Price)
		})
	case SortRating:
		slices.SortStableFunc(out, func(a, b model.Book) int {
			return cmpFloat(b.RatingOrZero(), a.RatingOrZero())
		})
	}
	// unknown key: leave input order as-is
	return out
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
