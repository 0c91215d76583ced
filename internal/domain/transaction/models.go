package transaction

import (
	"errors"
	"time"

	"mybudget/internal/domain/category"
)

var ErrNotFound = errors.New("transaction not found")

type Transaction struct {
	ID          int64         `json:"TransactionID"`
	UserID      int64         `json:"-"`
	WalletID    int64         `json:"WalletID"`
	CategoryID  int64         `json:"CategoryID"`
	Amount      float64       `json:"Amount"`
	Type        category.Type `json:"Type"`
	Description string        `json:"Description"`
	Date        time.Time     `json:"Date"`

	// Joined names, populated by list queries.
	CategoryName string `json:"CategoryName,omitempty"`
	WalletName   string `json:"WalletName,omitempty"`
}

type CreateParams struct {
	UserID      int64
	WalletID    int64
	CategoryID  int64
	Amount      float64
	Type        category.Type
	Description string
}

type UpdateParams struct {
	WalletID    int64
	CategoryID  int64
	Amount      float64
	Type        category.Type
	Description string
	Date        time.Time
}
