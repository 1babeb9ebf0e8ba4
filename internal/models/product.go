package models

// Product is a single catalog entry. Products come from the static catalog
// feed and are immutable after load; the JSON field names match the feed
// documents ("size" carries the list of available sizes).
type Product struct {
	Brand       string   `json:"brand"`
	ProductName string   `json:"product_name"`
	Price       float64  `json:"price"`
	Color       string   `json:"color"`
	Sizes       []string `json:"size"`
}

// Clone returns a deep copy so catalog and cart state never share the
// underlying sizes slice.
func (p Product) Clone() Product {
	cp := p
	if p.Sizes != nil {
		cp.Sizes = make([]string, len(p.Sizes))
		copy(cp.Sizes, p.Sizes)
	}
	return cp
}

// HasSize reports whether size is one of the product's available sizes.
func (p Product) HasSize(size string) bool {
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}
	return false
}

// DiscountCode maps a promo code to a percentage off. Lookup is exact and
// case-sensitive; an unmatched code simply means no discount.
type DiscountCode struct {
	Code     string  `json:"code"`
	Discount float64 `json:"discount"`
}
