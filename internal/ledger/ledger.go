// Package ledger is the persisted history of completed checkouts.
package ledger

import (
	"encoding/json"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/formesean/tilltally/internal/models"
	"github.com/formesean/tilltally/pkg/storage"
)

// StorageKey is the local-storage key the serialized ledger lives under.
const StorageKey = "checkoutData"

// ErrIndexOutOfRange is returned when a delete targets a row that does not
// exist. The UI only deletes rows it just listed.
var ErrIndexOutOfRange = errors.New("ledger: index out of range")

// Ledger is the append-only transaction log. The full list is rehydrated at
// start and rewritten to storage on every mutation; a failing store
// degrades to in-memory history for the session.
type Ledger struct {
	store storage.Store
	log   *zap.Logger

	mu           sync.Mutex
	transactions []models.Transaction
}

// New rehydrates the ledger from storage. Missing or malformed data yields
// an empty ledger, never an error.
func New(store storage.Store, log *zap.Logger) *Ledger {
	l := &Ledger{store: store, log: log}
	l.transactions = l.restore()
	return l
}

func (l *Ledger) restore() []models.Transaction {
	data, err := l.store.Get(StorageKey)
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	if err != nil {
		l.log.Warn("ledger restore failed, starting empty", zap.Error(err))
		return nil
	}

	var transactions []models.Transaction
	if err := json.Unmarshal(data, &transactions); err != nil {
		l.log.Warn("stored ledger is malformed, starting empty", zap.Error(err))
		return nil
	}
	return transactions
}

func (l *Ledger) persist() {
	data, err := json.Marshal(l.transactions)
	if err != nil {
		l.log.Warn("ledger serialization failed", zap.Error(err))
		return
	}
	if err := l.store.Set(StorageKey, data); err != nil {
		l.log.Warn("ledger persist failed, keeping in-memory state", zap.Error(err))
	}
}

// Append adds a transaction to the end of the log and rewrites it.
func (l *Ledger) Append(tx models.Transaction) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.transactions = append(l.transactions, tx)
	l.persist()
}

// List returns the transactions oldest-first.
func (l *Ledger) List() []models.Transaction {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]models.Transaction, len(l.transactions))
	for i, tx := range l.transactions {
		out[i] = tx
		out[i].Items = models.CloneItems(tx.Items)
	}
	return out
}

// Delete removes the transaction at index and rewrites the log.
func (l *Ledger) Delete(index int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if index < 0 || index >= len(l.transactions) {
		return ErrIndexOutOfRange
	}
	l.transactions = append(l.transactions[:index], l.transactions[index+1:]...)
	l.persist()
	return nil
}

// Len reports the number of recorded transactions.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.transactions)
}
