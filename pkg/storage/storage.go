// Package storage provides the client-local key-value store the cart and
// transaction ledger persist into. Values are whole serialized documents;
// callers own the (de)serialization.
package storage

import "errors"

// ErrNotFound is returned by Get when no value exists for the key.
var ErrNotFound = errors.New("storage: key not found")

// Store is a key-value store scoped to this device. Implementations must be
// safe for concurrent use.
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
}
