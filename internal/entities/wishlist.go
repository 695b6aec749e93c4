package entities

import "time"

type WishlistItem struct {
	ProductID string
	AddedAt   time.Time
}

// WishlistItems is a set of product references kept in insertion order.
type WishlistItems []WishlistItem

func (w WishlistItems) Contains(productID string) bool {
	for _, it := range w {
		if it.ProductID == productID {
			return true
		}
	}
	return false
}

func (w *WishlistItems) Add(productID string, at time.Time) error {
	if w.Contains(productID) {
		return ErrAlreadyInWishlist
	}
	*w = append(*w, WishlistItem{ProductID: productID, AddedAt: at})
	return nil
}

// Remove filters out every entry for productID and reports whether anything
// was removed. Removing a non-member is not an error.
func (w *WishlistItems) Remove(productID string) bool {
	out := make(WishlistItems, 0, len(*w))
	for _, it := range *w {
		if it.ProductID != productID {
			out = append(out, it)
		}
	}
	removed := len(out) != len(*w)
	*w = out
	return removed
}

func (w WishlistItems) ProductIDs() []string {
	ids := make([]string, 0, len(w))
	for _, it := range w {
		ids = append(ids, it.ProductID)
	}
	return ids
}

// Wishlist is the standalone aggregate keyed by user identity. It lives in
// its own collection and is not synchronized with User.Wishlist.
type Wishlist struct {
	ID        string
	UserID    string
	Items     WishlistItems
	CreatedAt time.Time
	UpdatedAt time.Time
}

// WishlistEntry is a wishlist item resolved against the catalog.
type WishlistEntry struct {
	ProductID string
	Name      string
	Slug      string
	Price     float64
	Images    []string
	Category  string
	AddedAt   time.Time
}

// ResolveWishlist joins items with products, keeping the wishlist order.
// Items whose product no longer exists are skipped.
func ResolveWishlist(items WishlistItems, products []Product) []WishlistEntry {
	byID := make(map[string]Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	out := make([]WishlistEntry, 0, len(items))
	for _, it := range items {
		p, ok := byID[it.ProductID]
		if !ok {
			continue
		}
		out = append(out, WishlistEntry{
			ProductID: p.ID,
			Name:      p.Name,
			Slug:      p.Slug,
			Price:     p.Price,
			Images:    p.Images,
			Category:  p.CategoryID,
			AddedAt:   it.AddedAt,
		})
	}
	return out
}
