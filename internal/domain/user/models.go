package user

import (
	"errors"
	"time"
)

var (
	ErrNotFound   = errors.New("user not found")
	ErrEmailTaken = errors.New("email already registered")
)

type User struct {
	ID           int64     `json:"UserID"`
	Name         string    `json:"Name"`
	Email        string    `json:"Email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"-"`
}

type CreateParams struct {
	Name         string
	Email        string
	PasswordHash string
}
