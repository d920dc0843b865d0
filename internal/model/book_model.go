package model

// Book is the canonical product record used by the catalog engine.
// Upstream payloads are normalized into this shape by external/bookapi;
// nothing past that layer deals with the backend's field-name drift.
type Book struct {
	BookID        int64    `json:"bookid"`
	Title         string   `json:"title"`
	Author        string   `json:"author"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"originalprice,omitempty"`
	Rating        *float64 `json:"rating,omitempty"`
	ReviewCount   *int     `json:"reviewcount,omitempty"`
	Category      string   `json:"category,omitempty"`
	Manufacturer  string   `json:"manufacturer,omitempty"`
	Description   string   `json:"description,omitempty"`
	Stock         int      `json:"stock"`
	Photos        []string `json:"photos,omitempty"`
}

// RatingOrZero treats a missing rating as 0 for sorting purposes.
func (b *Book) RatingOrZero() float64 {
	if b.Rating == nil {
		return 0
	}
	return *b.Rating
}

type Category struct {
	CategoryID int64  `json:"categoryid"`
	Name       string `json:"name"`
}

type Manufacturer struct {
	ManufacturerID int64  `json:"manufacturerid"`
	Name           string `json:"name"`
}

// Review feeds the client-side rating enrichment; the backend stores
// reviews separately from books.
type Review struct {
	ReviewID int64   `json:"reviewid"`
	BookID   int64   `json:"bookid"`
	Rating   float64 `json:"rating"`
	Comment  string  `json:"comment,omitempty"`
}
