// Package catalog exposes the read-only product and discount-code feeds.
// Feeds are loaded once at start, either from files named in the
// configuration or from the embedded seed data, and never change afterwards.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/formesean/tilltally/internal/models"
)

//go:embed tshirts.json
var seedProducts []byte

//go:embed codes.json
var seedCodes []byte

// Provider holds the immutable catalog. Accessors return copies so callers
// can never mutate the feed.
type Provider struct {
	products []models.Product
	codes    []models.DiscountCode
}

// Load reads the product and code feeds. An empty path selects the embedded
// seed feed, mirroring how the billing defaults are seeded at boot when no
// data exists yet. A named file that cannot be read or parsed is a startup
// error, not something to silently paper over.
func Load(productsPath, codesPath string, log *zap.Logger) (*Provider, error) {
	productsRaw, err := readFeed(productsPath, seedProducts)
	if err != nil {
		return nil, fmt.Errorf("product feed: %w", err)
	}
	codesRaw, err := readFeed(codesPath, seedCodes)
	if err != nil {
		return nil, fmt.Errorf("code feed: %w", err)
	}

	var products []models.Product
	if err := json.Unmarshal(productsRaw, &products); err != nil {
		return nil, fmt.Errorf("parse product feed: %w", err)
	}
	var codes []models.DiscountCode
	if err := json.Unmarshal(codesRaw, &codes); err != nil {
		return nil, fmt.Errorf("parse code feed: %w", err)
	}

	// Percentages outside [0,100] cannot occur in a sane feed; clamp so the
	// pricing invariant holds by construction.
	for i, c := range codes {
		if c.Discount < 0 {
			log.Warn("discount code below 0%, clamping", zap.String("code", c.Code))
			codes[i].Discount = 0
		}
		if c.Discount > 100 {
			log.Warn("discount code above 100%, clamping", zap.String("code", c.Code))
			codes[i].Discount = 100
		}
	}

	log.Info("catalog loaded",
		zap.Int("products", len(products)),
		zap.Int("discount_codes", len(codes)))

	return &Provider{products: products, codes: codes}, nil
}

func readFeed(path string, seed []byte) ([]byte, error) {
	if path == "" {
		return seed, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Products returns the ordered product list.
func (p *Provider) Products() []models.Product {
	out := make([]models.Product, len(p.products))
	for i, prod := range p.products {
		out[i] = prod.Clone()
	}
	return out
}

// Product returns the catalog entry at index.
func (p *Provider) Product(index int) (models.Product, error) {
	if index < 0 || index >= len(p.products) {
		return models.Product{}, fmt.Errorf("no product at index %d", index)
	}
	return p.products[index].Clone(), nil
}

// DiscountCodes returns the ordered discount-code table.
func (p *Provider) DiscountCodes() []models.DiscountCode {
	out := make([]models.DiscountCode, len(p.codes))
	copy(out, p.codes)
	return out
}
