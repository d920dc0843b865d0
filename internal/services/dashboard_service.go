package services

import (
	"context"
	"fmt"
	"time"

	"BookStoreAPI/internal/dashboard"
	"BookStoreAPI/internal/model"

	"golang.org/x/sync/errgroup"
)

// DashboardAPI is the slice of the backend client the admin dashboard
// reads from.
type DashboardAPI interface {
	ListOrders(ctx context.Context) ([]model.Order, error)
	ListBooks(ctx context.Context, page, pageSize int) ([]model.Book, int, error)
}

type DashboardService struct {
	API DashboardAPI
	Now func() time.Time
}

func NewDashboardService(api DashboardAPI) *DashboardService {
	return &DashboardService{API: api, Now: time.Now}
}

// Overview is the admin dashboard payload: every view is re-derived
// from the full order list on each request.
type Overview struct {
	DailyRevenue    []dashboard.DailyRevenue    `json:"dailyrevenue"`
	StatusCounts    []dashboard.StatusCount     `json:"statuscounts"`
	CategoryRevenue []dashboard.CategoryRevenue `json:"categoryrevenue"`
	TodayRevenue    float64                     `json:"todayrevenue"`
	TotalRevenue    float64                     `json:"totalrevenue"`
	TotalOrders     int                         `json:"totalorders"`
	LowStock        []model.Book                `json:"lowstock"`
}

// GetOverview fetches orders and the catalog in parallel and reduces
// them into the dashboard views.
func (s *DashboardService) GetOverview(ctx context.Context) (*Overview, error) {
	var (
		orders []model.Order
		books  []model.Book
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		orders, err = s.API.ListOrders(gctx)
		if err != nil {
			return fmt.Errorf("fetch orders: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		books, _, err = s.API.ListBooks(gctx, 0, 0)
		if err != nil {
			return fmt.Errorf("fetch books: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	now := s.Now()
	return &Overview{
		DailyRevenue:    dashboard.DailyRevenueSeries(orders, now),
		StatusCounts:    dashboard.StatusDistribution(orders),
		CategoryRevenue: dashboard.CategoryRevenueTop(orders),
		TodayRevenue:    dashboard.TodayRevenue(orders, now),
		TotalRevenue:    dashboard.TotalRevenue(orders),
		TotalOrders:     len(orders),
		LowStock:        dashboard.LowStock(books),
	}, nil
}
