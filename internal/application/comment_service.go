package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/putrafajarh/protospace/internal/domain/authz"
	"github.com/putrafajarh/protospace/internal/domain/entity"
	repo "github.com/putrafajarh/protospace/internal/domain/repository"
)

// CommentService runs the comment submission workflow. Any authenticated
// user may comment on any existing prototype; comments are immutable.
type CommentService struct {
	Comments   repo.CommentRepository
	Prototypes repo.PrototypeRepository
	Logger     *logrus.Logger
}

func NewCommentService(comments repo.CommentRepository, prototypes repo.PrototypeRepository, logger *logrus.Logger) *CommentService {
	return &CommentService{Comments: comments, Prototypes: prototypes, Logger: logger}
}

// SubmitCreate posts a comment on the given prototype. Creation fails fast
// with a not-found outcome when the parent was concurrently deleted.
func (s *CommentService) SubmitCreate(ctx context.Context, actorID, prototypeID, content string) Outcome[*entity.Comment] {
	if d := authz.Authorize(actorID, authz.ActionCreateComment, ""); !d.Allowed {
		return unauthorized[*entity.Comment](d.Redirect)
	}

	if _, err := s.Prototypes.GetByID(ctx, prototypeID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return notFound[*entity.Comment]()
		}
		return failed[*entity.Comment](err)
	}

	c := &entity.Comment{
		Content:     content,
		UserID:      actorID,
		PrototypeID: prototypeID,
	}
	if errs := c.Validate(); len(errs) > 0 {
		return invalid(c, errs)
	}

	if err := s.Comments.Create(ctx, c); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			// Parent went away between the existence check and the insert.
			return notFound[*entity.Comment]()
		}
		return failed[*entity.Comment](err)
	}
	return committed(c)
}

// ListByPrototype returns the comments shown on a prototype detail page.
func (s *CommentService) ListByPrototype(ctx context.Context, prototypeID string) ([]*entity.Comment, error) {
	return s.Comments.ListByPrototype(ctx, prototypeID)
}
