package services

import (
	"context"
	"log/slog"

	"BookStoreAPI/internal/model"
	"BookStoreAPI/internal/wishlist"
)

// CartAPI is the backend cart operation the bulk move needs.
type CartAPI interface {
	AddToCart(ctx context.Context, bookID int64, quantity int) error
}

type WishlistService struct {
	Store *wishlist.Store
	Cart  CartAPI
}

func NewWishlistService(store *wishlist.Store, cart CartAPI) *WishlistService {
	return &WishlistService{Store: store, Cart: cart}
}

func (s *WishlistService) Toggle(book model.Book) (bool, error) {
	return s.Store.Toggle(book)
}

func (s *WishlistService) Items() []model.Book {
	return s.Store.Items()
}

func (s *WishlistService) Clear() error {
	return s.Store.Clear()
}

// MoveResult reports a bulk wishlist-to-cart move. Failed entries stay
// in the wishlist.
type MoveResult struct {
	Moved  []int64 `json:"moved"`
	Failed []int64 `json:"failed"`
}

// MoveAllToCart adds every wishlist entry to the backend cart,
// best-effort: one item failing is logged and skipped, the rest keep
// going. Only the entries whose cart call succeeded are removed from
// the wishlist, so after a partial failure the wishlist and cart stay
// consistent item-by-item.
func (s *WishlistService) MoveAllToCart(ctx context.Context) (*MoveResult, error) {
	res := &MoveResult{Moved: []int64{}, Failed: []int64{}}
	moved := make(map[int64]bool)
	for _, it := range s.Store.Items() {
		if err := s.Cart.AddToCart(ctx, it.BookID, 1); err != nil {
			slog.Warn("move to cart failed", "bookid", it.BookID, "err", err)
			res.Failed = append(res.Failed, it.BookID)
			continue
		}
		moved[it.BookID] = true
		res.Moved = append(res.Moved, it.BookID)
	}
	if len(moved) == 0 {
		return res, nil
	}
	err := s.Store.RemoveMany(func(b model.Book) bool {
		return moved[b.BookID]
	})
	return res, err
}
