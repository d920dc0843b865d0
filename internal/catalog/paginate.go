package catalog

import "BookStoreAPI/internal/model"

// Paginator tracks the current page of a filtered/sorted listing.
// In passthrough mode the backend already paginated the data: the slice
// is returned unchanged and page count derives from the server-reported
// total instead of the local list length.
type Paginator struct {
	CurrentPage int
	PageSize    int
	Passthrough bool
	ServerTotal int // total record count reported by the backend, passthrough only
}

func NewPaginator(pageSize int) *Paginator {
	if pageSize <= 0 {
		pageSize = 1
	}
	return &Paginator{CurrentPage: 1, PageSize: pageSize}
}

// TotalPages returns ceil(n/pageSize) for the given list length, or for
// the server-reported total in passthrough mode. An empty listing has 0
// pages.
func (p *Paginator) TotalPages(listLen int) int {
	n := listLen
	if p.Passthrough {
		n = p.ServerTotal
	}
	if n <= 0 {
		return 0
	}
	return (n + p.PageSize - 1) / p.PageSize
}

// Page slices out the current page. Out-of-range pages yield an empty
// slice rather than panicking.
func (p *Paginator) Page(books []model.Book) []model.Book {
	if p.Passthrough {
		return books
	}
	start := (p.CurrentPage - 1) * p.PageSize
	if start < 0 || start >= len(books) {
		return []model.Book{}
	}
	end := start + p.PageSize
	if end > len(books) {
		end = len(books)
	}
	return books[start:end]
}

// GoToPage clamps n into [1, totalPages]; a request outside the valid
// range is a caller error and must not crash the listing.
func (p *Paginator) GoToPage(n, listLen int) {
	total := p.TotalPages(listLen)
	if total == 0 {
		p.CurrentPage = 1
		return
	}
	if n < 1 {
		n = 1
	}
	if n > total {
		n = total
	}
	p.CurrentPage = n
}

// ResetToFirstPage runs on every filter or sort change so the displayed
// page is always valid for the new listing.
func (p *Paginator) ResetToFirstPage() {
	p.CurrentPage = 1
}
