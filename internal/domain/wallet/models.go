package wallet

import "errors"

// DefaultName is the wallet every user starts with at registration.
const DefaultName = "Cash"

var (
	ErrNotFound        = errors.New("wallet not found")
	ErrHasTransactions = errors.New("wallet has transactions")
)

type Wallet struct {
	ID      int64   `json:"WalletID"`
	UserID  int64   `json:"-"`
	Name    string  `json:"Name"`
	Balance float64 `json:"Balance"`
}

// BalanceDrift reports a wallet whose cached balance no longer equals the
// signed sum of its transactions.
type BalanceDrift struct {
	WalletID int64
	UserID   int64
	Balance  float64
	Computed float64
}
