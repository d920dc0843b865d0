package dashboard

import (
	"fmt"
	"testing"
	"time"

	"BookStoreAPI/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestDailyRevenueSeriesZeroFill(t *testing.T) {
	now := day("2024-01-30")

	series := DailyRevenueSeries(nil, now)
	require.Len(t, series, RevenueWindowDays)
	assert.Equal(t, "2024-01-01", series[0].Date)
	assert.Equal(t, "2024-01-30", series[len(series)-1].Date)
	for _, b := range series {
		assert.Zero(t, b.Revenue)
		assert.Zero(t, b.Orders)
	}
}

func TestDailyRevenueSeriesExcludesNonQualifying(t *testing.T) {
	now := day("2024-01-30")
	orders := []model.Order{
		{OrderDate: day("2024-01-01"), Status: model.StatusCompleted, TotalAmount: 100},
		{OrderDate: day("2024-01-01"), Status: model.StatusPending, TotalAmount: 50},
	}
	series := DailyRevenueSeries(orders, now)
	require.Len(t, series, RevenueWindowDays)
	assert.Equal(t, "2024-01-01", series[0].Date)
	assert.Equal(t, 100.0, series[0].Revenue)
	assert.Equal(t, 1, series[0].Orders)
}

func TestDailyRevenueSeriesIgnoresOutOfWindow(t *testing.T) {
	now := day("2024-03-01")
	orders := []model.Order{
		{OrderDate: day("2023-12-25"), Status: model.StatusDelivered, TotalAmount: 40},
		{OrderDate: day("2024-03-01"), Status: model.StatusDelivered, TotalAmount: 60},
	}
	series := DailyRevenueSeries(orders, now)
	var total float64
	for _, b := range series {
		total += b.Revenue
	}
	assert.Equal(t, 60.0, total)
}

func TestStatusDistribution(t *testing.T) {
	orders := []model.Order{
		{Status: model.StatusPending},
		{Status: model.StatusCompleted},
		{Status: model.StatusCompleted},
		{Status: model.StatusCancelled},
	}
	got := StatusDistribution(orders)
	require.Len(t, got, 3)
	assert.Equal(t, StatusCount{Status: model.StatusCompleted, Count: 2}, got[0])

	assert.Empty(t, StatusDistribution(nil))
}

func TestCategoryRevenueTop(t *testing.T) {
	orders := []model.Order{
		{
			Status: model.StatusCompleted,
			Items: []model.OrderItem{
				{Category: "Fiction", TotalPrice: 30},
				{Category: "", TotalPrice: 5},
			},
		},
		{
			Status: model.StatusDelivered,
			Items: []model.OrderItem{
				{Category: "Fiction", TotalPrice: 10},
				{Category: "Science", TotalPrice: 25},
			},
		},
		{
			// cancelled orders contribute nothing
			Status: model.StatusCancelled,
			Items:  []model.OrderItem{{Category: "Fiction", TotalPrice: 999}},
		},
	}
	got := CategoryRevenueTop(orders)
	require.Len(t, got, 3)
	assert.Equal(t, CategoryRevenue{Category: "Fiction", Revenue: 40}, got[0])
	assert.Equal(t, CategoryRevenue{Category: "Science", Revenue: 25}, got[1])
	assert.Equal(t, CategoryRevenue{Category: OtherCategory, Revenue: 5}, got[2])
}

func TestCategoryRevenueTruncatesToTopTen(t *testing.T) {
	var orders []model.Order
	for i := 0; i < 15; i++ {
		orders = append(orders, model.Order{
			Status: model.StatusCompleted,
			Items: []model.OrderItem{
				{Category: fmt.Sprintf("Cat%02d", i), TotalPrice: float64(i + 1)},
			},
		})
	}
	got := CategoryRevenueTop(orders)
	require.Len(t, got, TopCategories)
	// highest revenue first
	assert.Equal(t, "Cat14", got[0].Category)
}

func TestRevenueScalars(t *testing.T) {
	now := day("2024-05-10")
	orders := []model.Order{
		{OrderDate: now, Status: model.StatusCompleted, TotalAmount: 20},
		{OrderDate: day("2024-05-09"), Status: model.StatusDelivered, TotalAmount: 30},
		{OrderDate: now, Status: model.StatusPending, TotalAmount: 99},
	}
	assert.Equal(t, 20.0, TodayRevenue(orders, now))
	assert.Equal(t, 50.0, TotalRevenue(orders))
	assert.Zero(t, TodayRevenue(nil, now))
	assert.Zero(t, TotalRevenue(nil))
}

func TestLowStock(t *testing.T) {
	books := []model.Book{
		{BookID: 1, Stock: 0},
		{BookID: 2, Stock: 9},
		{BookID: 3, Stock: 10},
		{BookID: 4, Stock: 250},
	}
	got := LowStock(books)
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].BookID)
	assert.Equal(t, int64(2), got[1].BookID)

	assert.Empty(t, LowStock(nil))
}
