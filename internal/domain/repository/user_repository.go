package repository

import (
	"context"
	"errors"

	"github.com/putrafajarh/protospace/internal/domain/entity"
)

var (
	// ErrNotFound is returned when a referenced record is absent.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateEmail is returned by Create when the unique email
	// constraint rejects a concurrent duplicate registration.
	ErrDuplicateEmail = errors.New("email already taken")
)

// UserRepository defines user-related persistence operations.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, u *entity.User) error
}
