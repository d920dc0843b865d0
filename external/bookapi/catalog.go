package bookapi

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"

	"BookStoreAPI/internal/model"
)

// nameRef tolerates the backend sending either a plain string or a
// {id,name} object for category/manufacturer references, depending on
// the endpoint.
type nameRef struct {
	Name string
}

func (n *nameRef) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		n.Name = s
		return nil
	}
	var obj struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	n.Name = obj.Name
	return nil
}

// bookPayload is the backend's book shape. Field names drift between
// endpoints (id/bookId, title/name, stock/stockQuantity), so both
// spellings are accepted and fold into one model.Book.
type bookPayload struct {
	ID            int64    `json:"id"`
	BookID        int64    `json:"bookId"`
	Title         string   `json:"title"`
	Name          string   `json:"name"`
	Author        string   `json:"author"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"originalPrice"`
	Category      *nameRef `json:"category"`
	CategoryName  string   `json:"categoryName"`
	Manufacturer  *nameRef `json:"manufacturer"`
	Description   string   `json:"description"`
	Stock         int      `json:"stock"`
	StockQuantity int      `json:"stockQuantity"`
	Photos        []string `json:"photos"`
	ImageURLs     []string `json:"imageUrls"`
}

func (p bookPayload) toModel() model.Book {
	b := model.Book{
		BookID:        p.ID,
		Title:         p.Title,
		Author:        p.Author,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		Description:   p.Description,
		Stock:         p.Stock,
		Photos:        p.Photos,
	}
	if b.BookID == 0 {
		b.BookID = p.BookID
	}
	if b.Title == "" {
		b.Title = p.Name
	}
	if p.Category != nil {
		b.Category = p.Category.Name
	} else {
		b.Category = p.CategoryName
	}
	if p.Manufacturer != nil {
		b.Manufacturer = p.Manufacturer.Name
	}
	if b.Stock == 0 {
		b.Stock = p.StockQuantity
	}
	if len(b.Photos) == 0 {
		b.Photos = p.ImageURLs
	}
	return b
}

type bookListResponse struct {
	Items      []bookPayload `json:"items"`
	TotalCount int           `json:"totalCount"`
}

// ListBooks fetches one backend page of the catalog. total is the
// backend-reported record count across all pages.
func (c *Client) ListBooks(ctx context.Context, page, pageSize int) (books []model.Book, total int, err error) {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if pageSize > 0 {
		q.Set("pageSize", strconv.Itoa(pageSize))
	}
	var resp bookListResponse
	if err := c.getJSON(ctx, "/books", q, &resp); err != nil {
		return nil, 0, err
	}
	books = make([]model.Book, 0, len(resp.Items))
	for _, p := range resp.Items {
		books = append(books, p.toModel())
	}
	return books, resp.TotalCount, nil
}

func (c *Client) ListCategories(ctx context.Context) ([]model.Category, error) {
	var out []model.Category
	if err := c.getJSON(ctx, "/categories", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListManufacturers(ctx context.Context) ([]model.Manufacturer, error) {
	var out []model.Manufacturer
	if err := c.getJSON(ctx, "/manufacturers", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListReviews fetches a book's reviews; the storefront derives rating
// and review count from them.
func (c *Client) ListReviews(ctx context.Context, bookID int64) ([]model.Review, error) {
	var out []model.Review
	path := "/books/" + strconv.FormatInt(bookID, 10) + "/reviews"
	if err := c.getJSON(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
