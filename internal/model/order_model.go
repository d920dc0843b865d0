package model

import "time"

// Order statuses as the backend reports them.
const (
	StatusPending   = "Pending"
	StatusCompleted = "Completed"
	StatusDelivered = "Delivered"
	StatusCancelled = "Cancelled"
)

type Order struct {
	OrderID     int64       `json:"orderid"`
	OrderNumber string      `json:"ordernumber"`
	OrderDate   time.Time   `json:"orderdate"`
	Status      string      `json:"orderstatus"`
	TotalAmount float64     `json:"totalamount"`
	Items       []OrderItem `json:"items,omitempty"`
}

type OrderItem struct {
	BookID     int64   `json:"bookid"`
	Category   string  `json:"category,omitempty"`
	Quantity   int     `json:"quantity"`
	TotalPrice float64 `json:"totalprice"`
}

// Revenue counts toward dashboard aggregates only for fulfilled orders.
func (o *Order) Qualifies() bool {
	return o.Status == StatusCompleted || o.Status == StatusDelivered
}
