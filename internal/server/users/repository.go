package users

import (
	"context"
)

// Repository owns the user collection. Emails are unique (exact,
// case-sensitive match); Create enforces this and assigns the next
// sequential id.
type Repository interface {
	Create(ctx context.Context, user *User) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}
