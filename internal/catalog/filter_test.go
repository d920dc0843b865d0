package catalog

import (
	"testing"

	"BookStoreAPI/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleBooks() []model.Book {
	return []model.Book{
		{BookID: 1, Title: "Go in Action", Author: "Kennedy", Price: 10, Category: "Books", Manufacturer: "Manning"},
		{BookID: 2, Title: "Wooden Train", Author: "", Price: 25, Category: "Toys", Manufacturer: "Brio"},
		{BookID: 3, Title: "The Go Programming Language", Author: "Donovan", Price: 32, Category: "Books", Manufacturer: "Addison-Wesley"},
		{BookID: 4, Title: "Sketchbook", Author: "", Price: 7, Category: "Stationery", Manufacturer: "Moleskine"},
	}
}

func TestFilterIdentity(t *testing.T) {
	books := sampleBooks()
	got := Filter(books, FilterState{})
	require.Equal(t, books, got)
}

func TestFilterIdempotence(t *testing.T) {
	books := sampleBooks()
	state := FilterState{Categories: []string{"Books"}, PriceRange: "5-40"}
	once := Filter(books, state)
	twice := Filter(once, state)
	require.Equal(t, once, twice)
}

func TestFilterByCategory(t *testing.T) {
	books := []model.Book{
		{BookID: 1, Price: 10, Category: "Books"},
		{BookID: 2, Price: 25, Category: "Toys"},
	}
	got := Filter(books, FilterState{Categories: []string{"Books"}})
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].BookID)
}

func TestFilterByPriceRange(t *testing.T) {
	books := []model.Book{
		{BookID: 1, Price: 10, Category: "Books"},
		{BookID: 2, Price: 25, Category: "Toys"},
	}
	got := Filter(books, FilterState{PriceRange: "20-1000"})
	require.Len(t, got, 1)
	assert.Equal(t, int64(2), got[0].BookID)
}

func TestFilterOpenEndedPriceRange(t *testing.T) {
	got := Filter(sampleBooks(), FilterState{PriceRange: "25-"})
	require.Len(t, got, 2)
	assert.Equal(t, int64(2), got[0].BookID)
	assert.Equal(t, int64(3), got[1].BookID)
}

func TestFilterMalformedPriceRangeIsNoop(t *testing.T) {
	books := sampleBooks()
	for _, r := range []string{"abc", "10", "x-20", "10-y", ""} {
		got := Filter(books, FilterState{PriceRange: r})
		assert.Equal(t, books, got, "range %q", r)
	}
}

func TestFilterCombinesWithAnd(t *testing.T) {
	got := Filter(sampleBooks(), FilterState{
		Categories: []string{"Books"},
		PriceRange: "20-100",
	})
	require.Len(t, got, 1)
	assert.Equal(t, int64(3), got[0].BookID)
}

func TestFilterKeyword(t *testing.T) {
	got := Filter(sampleBooks(), FilterState{Keyword: "go"})
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].BookID)
	assert.Equal(t, int64(3), got[1].BookID)

	byAuthor := Filter(sampleBooks(), FilterState{Keyword: "DONOVAN"})
	require.Len(t, byAuthor, 1)
	assert.Equal(t, int64(3), byAuthor[0].BookID)
}

func TestFilterByManufacturer(t *testing.T) {
	got := Filter(sampleBooks(), FilterState{Manufacturers: []string{"Brio", "Moleskine"}})
	require.Len(t, got, 2)
	assert.Equal(t, int64(2), got[0].BookID)
	assert.Equal(t, int64(4), got[1].BookID)
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	books := sampleBooks()
	original := sampleBooks()
	_ = Filter(books, FilterState{Categories: []string{"Books"}, Keyword: "go"})
	require.Equal(t, original, books)
}
