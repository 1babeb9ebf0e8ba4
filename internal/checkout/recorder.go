// Package checkout drives the confirmation flow: open the dialog, capture a
// timestamp, and on confirm commit an immutable transaction to the ledger.
package checkout

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/formesean/tilltally/internal/cart"
	"github.com/formesean/tilltally/internal/catalog"
	"github.com/formesean/tilltally/internal/ledger"
	"github.com/formesean/tilltally/internal/models"
	"github.com/formesean/tilltally/internal/pricing"
)

// TimestampLayout matches the locale rendering the ledger documents have
// always stored for dateTime.
const TimestampLayout = "1/2/2006, 3:04:05 PM"

// ErrNotConfirming is returned when Confirm is called without an open
// checkout dialog.
var ErrNotConfirming = errors.New("checkout: no confirmation in progress")

// State of the recorder.
type State int

const (
	// Open means no checkout is pending.
	Open State = iota
	// Confirming means the checkout dialog is up and a timestamp candidate
	// has been captured.
	Confirming
)

// Recorder owns the checkout state machine for one session.
type Recorder struct {
	cart    *cart.Store
	ledger  *ledger.Ledger
	catalog *catalog.Provider
	log     *zap.Logger
	now     func() time.Time

	mu        sync.Mutex
	state     State
	timestamp time.Time
}

// NewRecorder starts in the Open state.
func NewRecorder(c *cart.Store, l *ledger.Ledger, cat *catalog.Provider, log *zap.Logger) *Recorder {
	return &Recorder{
		cart:    c,
		ledger:  l,
		catalog: cat,
		log:     log,
		now:     time.Now,
	}
}

// Begin enters Confirming and captures the wall-clock timestamp candidate.
// Reopening the dialog before confirming re-captures it.
func (r *Recorder) Begin() time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.state = Confirming
	r.timestamp = r.now()
	return r.timestamp
}

// Cancel closes the dialog and returns to Open; the cart is untouched.
func (r *Recorder) Cancel() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.state = Open
}

// Confirm commits the checkout: it snapshots the cart, computes the
// discounted total, appends the transaction to the ledger, clears the cart
// and returns to Open. Only valid from Confirming. An empty cart is
// allowed and records a zero-total transaction; cashier name and code are
// free text, empty included.
func (r *Recorder) Confirm(cashierName, code string) (models.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != Confirming {
		return models.Transaction{}, ErrNotConfirming
	}

	items := r.cart.Items()
	total := pricing.DiscountedTotal(items, code, r.catalog.DiscountCodes())

	tx := models.Transaction{
		ID:          uuid.NewString(),
		DateTime:    r.timestamp.Format(TimestampLayout),
		CashierName: cashierName,
		Items:       items,
		Code:        code,
		Total:       total.InexactFloat64(),
	}

	r.ledger.Append(tx)
	r.cart.Clear()
	r.state = Open

	r.log.Info("checkout recorded",
		zap.String("transaction_id", tx.ID),
		zap.Int("items", len(tx.Items)),
		zap.Float64("total", tx.Total))

	return tx, nil
}

// State reports whether a confirmation is in progress.
func (r *Recorder) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.state
}

// SetClock overrides the wall clock. Tests only.
func (r *Recorder) SetClock(now func() time.Time) {
	r.now = now
}
