package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/putrafajarh/protospace/internal/domain/entity"
	"github.com/putrafajarh/protospace/internal/domain/repository"
)

const foreignKeyViolation = "23503"

type CommentRepository struct {
	pool *pgxpool.Pool
}

func NewCommentRepository(pool *pgxpool.Pool) *CommentRepository {
	return &CommentRepository{pool: pool}
}

func (r *CommentRepository) Create(ctx context.Context, c *entity.Comment) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO comments (content, user_id, prototype_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, c.Content, c.UserID, c.PrototypeID)

	if err := row.Scan(&c.ID, &c.CreatedAt); err != nil {
		// Parent prototype deleted between the workflow's existence
		// check and this insert.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			return repository.ErrNotFound
		}
		return err
	}
	return nil
}

func (r *CommentRepository) GetByID(ctx context.Context, id string) (*entity.Comment, error) {
	c := &entity.Comment{}

	row := r.pool.QueryRow(ctx, `
		SELECT c.id, c.content, c.user_id, c.prototype_id, u.name, c.created_at
		FROM comments c
		JOIN users u ON u.id = c.user_id
		WHERE c.id = $1
	`, id)

	if err := row.Scan(&c.ID, &c.Content, &c.UserID, &c.PrototypeID, &c.AuthorName, &c.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return c, nil
}

func (r *CommentRepository) ListByPrototype(ctx context.Context, prototypeID string) ([]*entity.Comment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT c.id, c.content, c.user_id, c.prototype_id, u.name, c.created_at
		FROM comments c
		JOIN users u ON u.id = c.user_id
		WHERE c.prototype_id = $1
		ORDER BY c.created_at ASC
	`, prototypeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*entity.Comment, 0)
	for rows.Next() {
		c := &entity.Comment{}
		if err := rows.Scan(&c.ID, &c.Content, &c.UserID, &c.PrototypeID, &c.AuthorName, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

var _ repository.CommentRepository = (*CommentRepository)(nil)
