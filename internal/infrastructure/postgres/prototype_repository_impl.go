package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/putrafajarh/protospace/internal/domain/entity"
	"github.com/putrafajarh/protospace/internal/domain/repository"
)

type PrototypeRepository struct {
	pool *pgxpool.Pool
}

func NewPrototypeRepository(pool *pgxpool.Pool) *PrototypeRepository {
	return &PrototypeRepository{pool: pool}
}

func (r *PrototypeRepository) Create(ctx context.Context, p *entity.Prototype) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO prototypes (title, catch_copy, concept, image_ref, user_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`, p.Title, p.CatchCopy, p.Concept, p.ImageRef, p.UserID)

	return row.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

const prototypeSelect = `
	SELECT p.id, p.title, p.catch_copy, p.concept, p.image_ref, p.user_id, u.name, p.created_at, p.updated_at
	FROM prototypes p
	JOIN users u ON u.id = p.user_id
`

func scanPrototype(row pgx.Row) (*entity.Prototype, error) {
	p := &entity.Prototype{}
	if err := row.Scan(&p.ID, &p.Title, &p.CatchCopy, &p.Concept, &p.ImageRef,
		&p.UserID, &p.AuthorName, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *PrototypeRepository) GetByID(ctx context.Context, id string) (*entity.Prototype, error) {
	row := r.pool.QueryRow(ctx, prototypeSelect+`WHERE p.id = $1`, id)
	return scanPrototype(row)
}

func (r *PrototypeRepository) List(ctx context.Context) ([]*entity.Prototype, error) {
	rows, err := r.pool.Query(ctx, prototypeSelect+`ORDER BY p.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPrototypes(rows)
}

func (r *PrototypeRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Prototype, error) {
	rows, err := r.pool.Query(ctx, prototypeSelect+`WHERE p.user_id = $1 ORDER BY p.created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPrototypes(rows)
}

func collectPrototypes(rows pgx.Rows) ([]*entity.Prototype, error) {
	out := make([]*entity.Prototype, 0)
	for rows.Next() {
		p, err := scanPrototype(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PrototypeRepository) Update(ctx context.Context, p *entity.Prototype) error {
	p.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE prototypes
		SET title = $1, catch_copy = $2, concept = $3, image_ref = $4, updated_at = $5
		WHERE id = $6
	`, p.Title, p.CatchCopy, p.Concept, p.ImageRef, p.UpdatedAt, p.ID)
	if err != nil {
		return err
	}

	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// Delete removes the prototype and its comments in one transaction.
// Comments go first so no orphan is observable at any point.
func (r *PrototypeRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM comments WHERE prototype_id = $1`, id); err != nil {
		return err
	}

	res, err := tx.Exec(ctx, `DELETE FROM prototypes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return tx.Commit(ctx)
}

var _ repository.PrototypeRepository = (*PrototypeRepository)(nil)
