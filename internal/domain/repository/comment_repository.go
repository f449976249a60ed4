package repository

import (
	"context"

	"github.com/putrafajarh/protospace/internal/domain/entity"
)

// CommentRepository defines comment persistence operations. Comments are
// never updated or deleted on their own; they go away with their prototype.
type CommentRepository interface {
	Create(ctx context.Context, c *entity.Comment) error
	GetByID(ctx context.Context, id string) (*entity.Comment, error)
	ListByPrototype(ctx context.Context, prototypeID string) ([]*entity.Comment, error)
}
