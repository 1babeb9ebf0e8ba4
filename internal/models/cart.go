package models

// CartItem is one line in the cart: a product plus the size picked for it.
// The product is copied by value at add time, so later catalog or cart
// changes cannot reach back into an existing line.
type CartItem struct {
	Product Product `json:"product"`
	Size    string  `json:"size"`
}

// Clone returns a deep copy of the line item.
func (i CartItem) Clone() CartItem {
	return CartItem{Product: i.Product.Clone(), Size: i.Size}
}

// CloneItems deep-copies a whole cart snapshot.
func CloneItems(items []CartItem) []CartItem {
	out := make([]CartItem, len(items))
	for idx, item := range items {
		out[idx] = item.Clone()
	}
	return out
}
