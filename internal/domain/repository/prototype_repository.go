package repository

import (
	"context"

	"github.com/putrafajarh/protospace/internal/domain/entity"
)

// PrototypeRepository defines prototype persistence operations.
// Delete removes the prototype and every comment attached to it inside one
// atomic unit; no partial deletion state is observable.
type PrototypeRepository interface {
	Create(ctx context.Context, p *entity.Prototype) error
	GetByID(ctx context.Context, id string) (*entity.Prototype, error)
	List(ctx context.Context) ([]*entity.Prototype, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.Prototype, error)
	Update(ctx context.Context, p *entity.Prototype) error
	Delete(ctx context.Context, id string) error
}
