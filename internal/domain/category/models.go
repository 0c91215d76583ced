package category

import (
	"errors"
	"fmt"
)

// Type classifies a category, and every transaction recorded under it, as
// money coming in or money going out.
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

var (
	ErrNotFound = errors.New("category not found")
	ErrInUse    = errors.New("category is used by transactions")
)

// ParseType validates a wire value and returns the corresponding Type.
func ParseType(s string) (Type, error) {
	switch Type(s) {
	case TypeIncome, TypeExpense:
		return Type(s), nil
	default:
		return "", fmt.Errorf("invalid type %q (must be %q or %q)", s, TypeIncome, TypeExpense)
	}
}

// Valid reports whether t is one of the two known variants.
func (t Type) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Signed maps an amount to the delta it applies to a wallet balance:
// income adds, expense subtracts. Every balance mutation in the system
// goes through this single mapping.
func (t Type) Signed(amount float64) float64 {
	if t == TypeIncome {
		return amount
	}
	return -amount
}

type Category struct {
	ID     int64  `json:"CategoryID"`
	UserID int64  `json:"-"`
	Name   string `json:"Name"`
	Type   Type   `json:"Type"`
}

type CreateParams struct {
	UserID int64
	Name   string
	Type   Type
}
