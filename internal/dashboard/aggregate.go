package dashboard

import (
	"sort"
	"time"

	"BookStoreAPI/internal/model"
)

const (
	// trailing window of the daily revenue chart
	RevenueWindowDays = 30
	// categories shown individually in the category breakdown
	TopCategories = 10
	// stock level that puts a book on the restock alert list
	LowStockThreshold = 10
	// bucket for order items whose book has no category
	OtherCategory = "Other"
)

type DailyRevenue struct {
	Date    string  `json:"date"` // YYYY-MM-DD
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type CategoryRevenue struct {
	Category string  `json:"category"`
	Revenue  float64 `json:"revenue"`
}

// DailyRevenueSeries buckets qualifying orders (Completed/Delivered) by
// calendar date over the trailing RevenueWindowDays window ending at
// now. The series is dense: every day appears, zero-valued when no
// order fell on it, so charts render without gaps.
func DailyRevenueSeries(orders []model.Order, now time.Time) []DailyRevenue {
	series := make([]DailyRevenue, RevenueWindowDays)
	index := make(map[string]int, RevenueWindowDays)
	start := now.AddDate(0, 0, -(RevenueWindowDays - 1))
	for i := range series {
		day := start.AddDate(0, 0, i).Format("2006-01-02")
		series[i] = DailyRevenue{Date: day}
		index[day] = i
	}
	for _, o := range orders {
		if !o.Qualifies() {
			continue
		}
		i, ok := index[o.OrderDate.Format("2006-01-02")]
		if !ok {
			continue
		}
		series[i].Revenue += o.TotalAmount
		series[i].Orders++
	}
	return series
}

// StatusDistribution counts orders per status, every status included.
func StatusDistribution(orders []model.Order) []StatusCount {
	counts := make(map[string]int)
	for _, o := range orders {
		counts[o.Status]++
	}
	out := make([]StatusCount, 0, len(counts))
	for status, n := range counts {
		out = append(out, StatusCount{Status: status, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Status < out[j].Status
	})
	return out
}

// CategoryRevenueTop explodes qualifying orders into line items,
// attributes each item's total to its book's category (OtherCategory
// when absent), and returns the top categories by revenue.
func CategoryRevenueTop(orders []model.Order) []CategoryRevenue {
	totals := make(map[string]float64)
	for _, o := range orders {
		if !o.Qualifies() {
			continue
		}
		for _, it := range o.Items {
			cat := it.Category
			if cat == "" {
				cat = OtherCategory
			}
			totals[cat] += it.TotalPrice
		}
	}
	out := make([]CategoryRevenue, 0, len(totals))
	for cat, rev := range totals {
		out = append(out, CategoryRevenue{Category: cat, Revenue: rev})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Revenue != out[j].Revenue {
			return out[i].Revenue > out[j].Revenue
		}
		return out[i].Category < out[j].Category
	})
	if len(out) > TopCategories {
		out = out[:TopCategories]
	}
	return out
}

// TodayRevenue sums qualifying orders dated today.
func TodayRevenue(orders []model.Order, now time.Time) float64 {
	today := now.Format("2006-01-02")
	var sum float64
	for _, o := range orders {
		if o.Qualifies() && o.OrderDate.Format("2006-01-02") == today {
			sum += o.TotalAmount
		}
	}
	return sum
}

// TotalRevenue sums all qualifying orders.
func TotalRevenue(orders []model.Order) float64 {
	var sum float64
	for _, o := range orders {
		if o.Qualifies() {
			sum += o.TotalAmount
		}
	}
	return sum
}

// LowStock returns the books below the restock threshold.
func LowStock(books []model.Book) []model.Book {
	out := make([]model.Book, 0)
	for _, b := range books {
		if b.Stock < LowStockThreshold {
			out = append(out, b)
		}
	}
	return out
}
