package application

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/putrafajarh/protospace/internal/domain/entity"
	"github.com/putrafajarh/protospace/internal/domain/repository"
)

type memUserRepo struct {
	mu        sync.Mutex
	seq       int
	users     map[string]*entity.User
	createErr error
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*entity.User)}
}

func (r *memUserRepo) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return repository.ErrDuplicateEmail
		}
	}
	r.seq++
	u.ID = fmt.Sprintf("user-%d", r.seq)
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *memUserRepo) Update(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

type memPrototypeRepo struct {
	mu         sync.Mutex
	seq        int
	prototypes map[string]*entity.Prototype
	comments   *memCommentRepo
	updates    int
}

func newMemPrototypeRepo(comments *memCommentRepo) *memPrototypeRepo {
	return &memPrototypeRepo{prototypes: make(map[string]*entity.Prototype), comments: comments}
}

func (r *memPrototypeRepo) Create(_ context.Context, p *entity.Prototype) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	p.ID = fmt.Sprintf("proto-%d", r.seq)
	cp := *p
	r.prototypes[p.ID] = &cp
	return nil
}

func (r *memPrototypeRepo) GetByID(_ context.Context, id string) (*entity.Prototype, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.prototypes[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *memPrototypeRepo) List(_ context.Context) ([]*entity.Prototype, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Prototype, 0, len(r.prototypes))
	for _, p := range r.prototypes {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memPrototypeRepo) ListByUser(_ context.Context, userID string) ([]*entity.Prototype, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Prototype, 0)
	for _, p := range r.prototypes {
		if p.UserID == userID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memPrototypeRepo) Update(_ context.Context, p *entity.Prototype) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.prototypes[p.ID]; !ok {
		return repository.ErrNotFound
	}
	r.updates++
	cp := *p
	r.prototypes[p.ID] = &cp
	return nil
}

// Delete mirrors the transactional cascade: comments go with the prototype.
func (r *memPrototypeRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.prototypes[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.prototypes, id)
	if r.comments != nil {
		r.comments.deleteByPrototype(id)
	}
	return nil
}

type memCommentRepo struct {
	mu        sync.Mutex
	seq       int
	comments  map[string]*entity.Comment
	createErr error
}

func newMemCommentRepo() *memCommentRepo {
	return &memCommentRepo{comments: make(map[string]*entity.Comment)}
}

func (r *memCommentRepo) Create(_ context.Context, c *entity.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	r.seq++
	c.ID = fmt.Sprintf("comment-%d", r.seq)
	cp := *c
	r.comments[c.ID] = &cp
	return nil
}

func (r *memCommentRepo) GetByID(_ context.Context, id string) (*entity.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.comments[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *memCommentRepo) ListByPrototype(_ context.Context, prototypeID string) ([]*entity.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Comment, 0)
	for _, c := range r.comments {
		if c.PrototypeID == prototypeID {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memCommentRepo) deleteByPrototype(prototypeID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, c := range r.comments {
		if c.PrototypeID == prototypeID {
			delete(r.comments, id)
		}
	}
}

type memImageStore struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (s *memImageStore) Store(_ context.Context, r io.Reader, filename, _ string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return "", s.err
	}
	if r != nil {
		_, _ = io.Copy(io.Discard, r)
	}
	s.calls++
	return "img://" + filename, nil
}

type memPublisher struct {
	mu   sync.Mutex
	jobs []any
	err  error
}

func (p *memPublisher) PublishJSON(_ context.Context, body any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.jobs = append(p.jobs, body)
	return nil
}
