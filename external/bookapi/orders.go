package bookapi

import (
	"context"
	"time"

	"BookStoreAPI/internal/model"
)

type orderItemPayload struct {
	BookID       int64    `json:"bookId"`
	Category     *nameRef `json:"category"`
	CategoryName string   `json:"categoryName"`
	Quantity     int      `json:"quantity"`
	TotalPrice   float64  `json:"totalPrice"`
}

type orderPayload struct {
	ID          int64              `json:"id"`
	OrderNumber string             `json:"orderNumber"`
	OrderDate   time.Time          `json:"orderDate"`
	Status      string             `json:"orderStatus"`
	TotalAmount float64            `json:"totalAmount"`
	Items       []orderItemPayload `json:"items"`
}

func (p orderPayload) toModel() model.Order {
	o := model.Order{
		OrderID:     p.ID,
		OrderNumber: p.OrderNumber,
		OrderDate:   p.OrderDate,
		Status:      p.Status,
		TotalAmount: p.TotalAmount,
	}
	o.Items = make([]model.OrderItem, 0, len(p.Items))
	for _, it := range p.Items {
		item := model.OrderItem{
			BookID:     it.BookID,
			Category:   it.CategoryName,
			Quantity:   it.Quantity,
			TotalPrice: it.TotalPrice,
		}
		if it.Category != nil {
			item.Category = it.Category.Name
		}
		o.Items = append(o.Items, item)
	}
	return o
}

// ListOrders fetches the order history visible to the current token
// (all orders for an admin token).
func (c *Client) ListOrders(ctx context.Context) ([]model.Order, error) {
	var payload []orderPayload
	if err := c.getJSON(ctx, "/orders", nil, &payload); err != nil {
		return nil, err
	}
	out := make([]model.Order, 0, len(payload))
	for _, p := range payload {
		out = append(out, p.toModel())
	}
	return out, nil
}

type addToCartRequest struct {
	BookID   int64 `json:"bookId"`
	Quantity int   `json:"quantity"`
}

// AddToCart puts one book into the backend cart for the current token.
func (c *Client) AddToCart(ctx context.Context, bookID int64, quantity int) error {
	if quantity <= 0 {
		quantity = 1
	}
	return c.postJSON(ctx, "/cart/items", addToCartRequest{BookID: bookID, Quantity: quantity}, nil)
}
