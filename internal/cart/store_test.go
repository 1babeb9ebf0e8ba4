package cart

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/formesean/tilltally/internal/models"
	"github.com/formesean/tilltally/pkg/storage"
)

func product(name string, price float64) models.Product {
	return models.Product{
		Brand:       "Test Brand",
		ProductName: name,
		Price:       price,
		Color:       "White",
		Sizes:       []string{"S", "M", "L"},
	}
}

func TestAddAppendsWithoutMerging(t *testing.T) {
	s := NewStore(storage.NewMemoryStore(), zap.NewNop())

	s.Add(product("Tee", 500), "M")
	s.Add(product("Tee", 500), "M")

	items := s.Items()
	require.Len(t, items, 2)
	require.Equal(t, "Tee", items[0].Product.ProductName)
	require.Equal(t, "M", items[1].Size)
}

func TestRemoveShiftsRemainingItems(t *testing.T) {
	s := NewStore(storage.NewMemoryStore(), zap.NewNop())
	s.Add(product("A", 500), "M")
	s.Add(product("B", 300), "L")

	require.NoError(t, s.Remove(0))

	items := s.Items()
	require.Len(t, items, 1)
	require.Equal(t, "B", items[0].Product.ProductName)
	require.Equal(t, "L", items[0].Size)
}

func TestRemoveOutOfRange(t *testing.T) {
	s := NewStore(storage.NewMemoryStore(), zap.NewNop())
	s.Add(product("A", 500), "M")

	require.ErrorIs(t, s.Remove(1), ErrIndexOutOfRange)
	require.ErrorIs(t, s.Remove(-1), ErrIndexOutOfRange)
	require.Equal(t, 1, s.Len())
}

func TestClearIsIdempotent(t *testing.T) {
	s := NewStore(storage.NewMemoryStore(), zap.NewNop())
	s.Add(product("A", 500), "M")

	s.Clear()
	require.Zero(t, s.Len())
	s.Clear()
	require.Zero(t, s.Len())
}

func TestPersistRestoreRoundTrip(t *testing.T) {
	mem := storage.NewMemoryStore()

	s := NewStore(mem, zap.NewNop())
	s.Add(product("A", 500), "M")
	s.Add(product("B", 300), "L")

	restored := NewStore(mem, zap.NewNop())
	require.Equal(t, s.Items(), restored.Items())
}

func TestRestoreMissingDataStartsEmpty(t *testing.T) {
	s := NewStore(storage.NewMemoryStore(), zap.NewNop())
	require.Zero(t, s.Len())
}

func TestRestoreMalformedDataStartsEmpty(t *testing.T) {
	mem := storage.NewMemoryStore()
	require.NoError(t, mem.Set(StorageKey, []byte("{not json")))

	s := NewStore(mem, zap.NewNop())
	require.Zero(t, s.Len())
}

func TestItemsReturnsIndependentSnapshot(t *testing.T) {
	s := NewStore(storage.NewMemoryStore(), zap.NewNop())
	s.Add(product("A", 500), "M")

	snapshot := s.Items()
	snapshot[0].Product.ProductName = "mutated"
	snapshot[0].Product.Sizes[0] = "mutated"

	fresh := s.Items()
	require.Equal(t, "A", fresh[0].Product.ProductName)
	require.Equal(t, "S", fresh[0].Product.Sizes[0])
}

// failingStore rejects every write.
type failingStore struct{}

func (failingStore) Get(string) ([]byte, error) { return nil, storage.ErrNotFound }
func (failingStore) Set(string, []byte) error   { return errors.New("disk full") }
func (failingStore) Delete(string) error        { return errors.New("disk full") }

func TestPersistFailureDegradesToMemory(t *testing.T) {
	s := NewStore(failingStore{}, zap.NewNop())

	s.Add(product("A", 500), "M")
	require.Equal(t, 1, s.Len())

	require.NoError(t, s.Remove(0))
	require.Zero(t, s.Len())
}
