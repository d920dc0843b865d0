package catalog

import (
	"testing"

	"BookStoreAPI/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nBooks(n int) []model.Book {
	out := make([]model.Book, n)
	for i := range out {
		out[i] = model.Book{BookID: int64(i + 1)}
	}
	return out
}

func TestTotalPages(t *testing.T) {
	p := NewPaginator(6)
	assert.Equal(t, 0, p.TotalPages(0))
	assert.Equal(t, 1, p.TotalPages(1))
	assert.Equal(t, 1, p.TotalPages(6))
	assert.Equal(t, 2, p.TotalPages(7))
	assert.Equal(t, 3, p.TotalPages(13))
}

func TestLastPartialPage(t *testing.T) {
	books := nBooks(13)
	p := NewPaginator(6)
	p.GoToPage(3, len(books))
	got := p.Page(books)
	require.Len(t, got, 1)
	assert.Equal(t, int64(13), got[0].BookID)
}

func TestPaginationCoverage(t *testing.T) {
	books := nBooks(13)
	p := NewPaginator(6)
	var all []model.Book
	for page := 1; page <= p.TotalPages(len(books)); page++ {
		p.GoToPage(page, len(books))
		all = append(all, p.Page(books)...)
	}
	// concatenated pages reconstruct the list, no dupes, no gaps
	require.Equal(t, books, all)
}

func TestGoToPageClamps(t *testing.T) {
	books := nBooks(13)
	p := NewPaginator(6)

	p.GoToPage(99, len(books))
	assert.Equal(t, 3, p.CurrentPage)

	p.GoToPage(-5, len(books))
	assert.Equal(t, 1, p.CurrentPage)

	p.GoToPage(4, 0)
	assert.Equal(t, 1, p.CurrentPage)
	assert.Empty(t, p.Page(nil))
}

func TestResetToFirstPage(t *testing.T) {
	p := NewPaginator(6)
	p.GoToPage(2, 13)
	require.Equal(t, 2, p.CurrentPage)
	p.ResetToFirstPage()
	assert.Equal(t, 1, p.CurrentPage)
}

func TestPassthroughMode(t *testing.T) {
	serverPage := nBooks(6)
	p := NewPaginator(6)
	p.Passthrough = true
	p.ServerTotal = 45

	// slice comes back untouched, count derives from the server total
	assert.Equal(t, serverPage, p.Page(serverPage))
	assert.Equal(t, 8, p.TotalPages(len(serverPage)))
}

func TestNewPaginatorRejectsBadPageSize(t *testing.T) {
	p := NewPaginator(0)
	assert.Equal(t, 1, p.PageSize)
}
