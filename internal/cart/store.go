// Package cart holds the in-progress selection for one session. The store
// is the explicit owner of cart state: every mutation writes the full cart
// back to local storage so a restarted session reconstructs it exactly.
package cart

import (
	"encoding/json"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/formesean/tilltally/internal/models"
	"github.com/formesean/tilltally/pkg/storage"
)

// StorageKey is the local-storage key the serialized cart lives under.
const StorageKey = "cart"

// ErrIndexOutOfRange is returned when a removal targets a line that does
// not exist. The UI never produces such an index.
var ErrIndexOutOfRange = errors.New("cart: index out of range")

// Store is an ordered collection of cart line items.
type Store struct {
	store storage.Store
	log   *zap.Logger

	mu    sync.Mutex
	items []models.CartItem
}

// NewStore rehydrates the cart from storage. Missing or malformed data
// yields an empty cart; it is never an error.
func NewStore(store storage.Store, log *zap.Logger) *Store {
	s := &Store{store: store, log: log}
	s.items = s.restore()
	return s
}

func (s *Store) restore() []models.CartItem {
	data, err := s.store.Get(StorageKey)
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	if err != nil {
		s.log.Warn("cart restore failed, starting empty", zap.Error(err))
		return nil
	}

	var items []models.CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		s.log.Warn("stored cart is malformed, starting empty", zap.Error(err))
		return nil
	}
	return items
}

// persist writes the full cart back to storage. A failing store degrades to
// in-memory state for the rest of the session; the mutation itself stands.
func (s *Store) persist() {
	data, err := json.Marshal(s.items)
	if err != nil {
		s.log.Warn("cart serialization failed", zap.Error(err))
		return
	}
	if err := s.store.Set(StorageKey, data); err != nil {
		s.log.Warn("cart persist failed, keeping in-memory state", zap.Error(err))
	}
}

// Add appends a new line item for the product/size pair. Identical entries
// are kept as separate lines, matching one click per line in the UI.
func (s *Store) Add(product models.Product, size string) models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := models.CartItem{Product: product.Clone(), Size: size}
	s.items = append(s.items, item)
	s.persist()
	return item.Clone()
}

// Remove deletes the line item at index.
func (s *Store) Remove(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.items) {
		return ErrIndexOutOfRange
	}
	s.items = append(s.items[:index], s.items[index+1:]...)
	s.persist()
	return nil
}

// Clear empties the cart unconditionally.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.persist()
}

// Items returns a deep-copied snapshot of the cart in insertion order.
func (s *Store) Items() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	return models.CloneItems(s.items)
}

// Len reports the number of line items.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.items)
}
