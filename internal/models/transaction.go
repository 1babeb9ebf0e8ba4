package models

// Transaction is an immutable record of a completed checkout. Field names
// match the ledger documents the original storage format used; ID is an
// addition and older records without one still parse.
type Transaction struct {
	ID          string     `json:"id,omitempty"`
	DateTime    string     `json:"dateTime"`
	CashierName string     `json:"cashierName"`
	Items       []CartItem `json:"items"`
	Code        string     `json:"code"`
	Total       float64    `json:"total"`
}
