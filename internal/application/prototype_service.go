package application

import (
	"context"
	"errors"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/putrafajarh/protospace/internal/domain/authz"
	"github.com/putrafajarh/protospace/internal/domain/entity"
	repo "github.com/putrafajarh/protospace/internal/domain/repository"
)

// PrototypeInput carries the proposed fields of a create/update submission.
// Image is nil when the submission carries no new image.
type PrototypeInput struct {
	Title     string
	CatchCopy string
	Concept   string

	Image            io.Reader
	ImageFilename    string
	ImageContentType string
}

// PrototypeService runs the prototype submission workflow: authorization
// first, then validation, then commit. A rejected submission never touches
// the store or the image store.
type PrototypeService struct {
	Prototypes repo.PrototypeRepository
	Images     ImageStore
	Logger     *logrus.Logger
}

func NewPrototypeService(prototypes repo.PrototypeRepository, images ImageStore, logger *logrus.Logger) *PrototypeService {
	return &PrototypeService{Prototypes: prototypes, Images: images, Logger: logger}
}

// SubmitCreate creates a prototype owned by the actor.
//
// On validation failure the returned entity retains every proposed field
// except the image, which stays empty: the user re-selects the file, and
// the form never shows an image that would not actually be persisted.
func (s *PrototypeService) SubmitCreate(ctx context.Context, actorID string, in PrototypeInput) Outcome[*entity.Prototype] {
	if d := authz.Authorize(actorID, authz.ActionCreatePrototype, ""); !d.Allowed {
		return unauthorized[*entity.Prototype](d.Redirect)
	}

	p := &entity.Prototype{
		Title:     in.Title,
		CatchCopy: in.CatchCopy,
		Concept:   in.Concept,
		UserID:    actorID,
	}

	errs := p.Validate()
	if in.Image != nil {
		// A new image satisfies presence; it is stored only after the
		// rest of the submission validates.
		errs = errs.Drop("image")
	}
	if len(errs) > 0 {
		return invalid(p, errs)
	}

	ref, err := s.Images.Store(ctx, in.Image, in.ImageFilename, in.ImageContentType)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).Warn("image store failed")
		}
		return failed[*entity.Prototype](err)
	}
	p.ImageRef = ref

	if err := s.Prototypes.Create(ctx, p); err != nil {
		return failed[*entity.Prototype](err)
	}
	return committed(p)
}

// SubmitUpdate applies the proposed fields to an existing prototype.
// Owner-only: any other authenticated actor is silently redirected home,
// an anonymous actor is sent to login. When the submission carries no new
// image the persisted reference is kept, both on success and on failure.
func (s *PrototypeService) SubmitUpdate(ctx context.Context, actorID, id string, in PrototypeInput) Outcome[*entity.Prototype] {
	existing, err := s.Prototypes.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return notFound[*entity.Prototype]()
		}
		return failed[*entity.Prototype](err)
	}

	if d := authz.Authorize(actorID, authz.ActionUpdatePrototype, existing.UserID); !d.Allowed {
		return unauthorized[*entity.Prototype](d.Redirect)
	}

	p := *existing
	p.Title = in.Title
	p.CatchCopy = in.CatchCopy
	p.Concept = in.Concept

	errs := p.Validate()
	if in.Image != nil {
		errs = errs.Drop("image")
	}
	if len(errs) > 0 {
		return invalid(&p, errs)
	}

	if in.Image != nil {
		ref, err := s.Images.Store(ctx, in.Image, in.ImageFilename, in.ImageContentType)
		if err != nil {
			if s.Logger != nil {
				s.Logger.WithError(err).WithField("prototype_id", id).Warn("image store failed")
			}
			return failed[*entity.Prototype](err)
		}
		p.ImageRef = ref
	}

	if err := s.Prototypes.Update(ctx, &p); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return notFound[*entity.Prototype]()
		}
		return failed[*entity.Prototype](err)
	}
	return committed(&p)
}

// SubmitDelete removes the prototype and all its comments atomically.
func (s *PrototypeService) SubmitDelete(ctx context.Context, actorID, id string) Outcome[*entity.Prototype] {
	existing, err := s.Prototypes.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return notFound[*entity.Prototype]()
		}
		return failed[*entity.Prototype](err)
	}

	if d := authz.Authorize(actorID, authz.ActionDeletePrototype, existing.UserID); !d.Allowed {
		return unauthorized[*entity.Prototype](d.Redirect)
	}

	if err := s.Prototypes.Delete(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return notFound[*entity.Prototype]()
		}
		return failed[*entity.Prototype](err)
	}
	return committed(existing)
}

// Get returns one prototype for the public detail page.
func (s *PrototypeService) Get(ctx context.Context, id string) (*entity.Prototype, error) {
	p, err := s.Prototypes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// List returns all prototypes for the public index, newest first.
func (s *PrototypeService) List(ctx context.Context) ([]*entity.Prototype, error) {
	return s.Prototypes.List(ctx)
}

// ListByUser returns a user's prototypes for their detail page.
func (s *PrototypeService) ListByUser(ctx context.Context, userID string) ([]*entity.Prototype, error) {
	return s.Prototypes.ListByUser(ctx, userID)
}
