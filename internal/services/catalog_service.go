package services

import (
	"context"
	"fmt"

	"BookStoreAPI/internal/catalog"
	"BookStoreAPI/internal/model"

	"golang.org/x/sync/errgroup"
)

// CatalogAPI is the slice of the backend client the catalog service
// needs; tests substitute a fake.
type CatalogAPI interface {
	ListBooks(ctx context.Context, page, pageSize int) ([]model.Book, int, error)
	ListCategories(ctx context.Context) ([]model.Category, error)
	ListManufacturers(ctx context.Context) ([]model.Manufacturer, error)
	ListReviews(ctx context.Context, bookID int64) ([]model.Review, error)
}

const (
	// storefront grid size
	DefaultPageSize = 6
	// backend fetch size when loading the whole catalog client-side
	fetchPageSize = 100
	// concurrent review fetches during rating enrichment
	reviewFetchers = 8
)

type CatalogService struct {
	API      CatalogAPI
	PageSize int
}

func NewCatalogService(api CatalogAPI) *CatalogService {
	return &CatalogService{API: api, PageSize: DefaultPageSize}
}

// BrowseParams is the storefront listing request: filter state, sort
// key and page index. ServerSide switches to backend pagination, where
// the upstream page is displayed as-is.
type BrowseParams struct {
	Categories    []string
	Manufacturers []string
	PriceRange    string
	Keyword       string
	Sort          catalog.SortKey
	Page          int
	ServerSide    bool
}

type BrowseResult struct {
	Books      []model.Book `json:"books"`
	Page       int          `json:"page"`
	TotalPages int          `json:"totalpages"`
	TotalItems int          `json:"totalitems"`
}

// Browse runs the full listing pipeline: fetch, enrich, filter, sort,
// paginate. Any filter or sort change implies page 1; callers pass the
// page they want and it is clamped to the valid range.
func (s *CatalogService) Browse(ctx context.Context, params BrowseParams) (*BrowseResult, error) {
	pager := catalog.NewPaginator(s.PageSize)

	if params.ServerSide {
		page := params.Page
		if page < 1 {
			page = 1
		}
		books, total, err := s.API.ListBooks(ctx, page, s.PageSize)
		if err != nil {
			return nil, fmt.Errorf("fetch catalog page: %w", err)
		}
		pager.Passthrough = true
		pager.ServerTotal = total
		pager.CurrentPage = page
		return &BrowseResult{
			Books:      pager.Page(books),
			Page:       page,
			TotalPages: pager.TotalPages(len(books)),
			TotalItems: total,
		}, nil
	}

	books, err := s.fetchAll(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.enrichRatings(ctx, books); err != nil {
		return nil, err
	}

	filtered := catalog.Filter(books, catalog.FilterState{
		Categories:    params.Categories,
		Manufacturers: params.Manufacturers,
		PriceRange:    params.PriceRange,
		Keyword:       params.Keyword,
	})
	sorted := catalog.Sort(filtered, params.Sort)

	pager.GoToPage(params.Page, len(sorted))
	return &BrowseResult{
		Books:      pager.Page(sorted),
		Page:       pager.CurrentPage,
		TotalPages: pager.TotalPages(len(sorted)),
		TotalItems: len(sorted),
	}, nil
}

// InitialFilter builds the seed filter state for a fresh storefront
// visit. The optional category query parameter is resolved against the
// fetched category list once it arrives (two-phase: the seed stays
// pending until the lookup load completes).
func (s *CatalogService) InitialFilter(ctx context.Context, categoryParam string) (catalog.FilterState, error) {
	seed := catalog.NewCategorySeed(categoryParam)
	cats, err := s.API.ListCategories(ctx)
	if err != nil {
		return catalog.FilterState{}, fmt.Errorf("fetch categories: %w", err)
	}
	names := make([]string, 0, len(cats))
	for _, c := range cats {
		names = append(names, c.Name)
	}
	state := catalog.FilterState{}
	if name := seed.Resolve(names); name != "" {
		state.Categories = []string{name}
	}
	return state, nil
}

// Lookups returns the category and manufacturer lists for the filter
// sidebar, fetched in parallel.
func (s *CatalogService) Lookups(ctx context.Context) ([]model.Category, []model.Manufacturer, error) {
	var (
		cats []model.Category
		mans []model.Manufacturer
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		cats, err = s.API.ListCategories(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		mans, err = s.API.ListManufacturers(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return cats, mans, nil
}

// fetchAll pulls the complete catalog across backend pages.
func (s *CatalogService) fetchAll(ctx context.Context) ([]model.Book, error) {
	var all []model.Book
	for page := 1; ; page++ {
		books, total, err := s.API.ListBooks(ctx, page, fetchPageSize)
		if err != nil {
			return nil, fmt.Errorf("fetch catalog: %w", err)
		}
		all = append(all, books...)
		if len(books) == 0 || len(all) >= total {
			break
		}
	}
	return all, nil
}

// enrichRatings computes each book's rating and review count from its
// review list. Reviews live behind a separate endpoint, so the fetches
// run concurrently with a bound.
func (s *CatalogService) enrichRatings(ctx context.Context, books []model.Book) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(reviewFetchers)
	for i := range books {
		i := i
		g.Go(func() error {
			reviews, err := s.API.ListReviews(gctx, books[i].BookID)
			if err != nil {
				return fmt.Errorf("fetch reviews for book %d: %w", books[i].BookID, err)
			}
			if len(reviews) == 0 {
				return nil
			}
			var sum float64
			for _, r := range reviews {
				sum += r.Rating
			}
			rating := sum / float64(len(reviews))
			count := len(reviews)
			books[i].Rating = &rating
			books[i].ReviewCount = &count
			return nil
		})
	}
	return g.Wait()
}
