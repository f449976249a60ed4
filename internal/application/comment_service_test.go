package application

import (
	"context"
	"testing"

	"github.com/putrafajarh/protospace/internal/domain/authz"
	"github.com/putrafajarh/protospace/internal/domain/repository"
)

func newCommentFixture(t *testing.T) (*CommentService, *PrototypeService, *memCommentRepo) {
	t.Helper()
	comments := newMemCommentRepo()
	protos := newMemPrototypeRepo(comments)
	protoSvc := NewPrototypeService(protos, &memImageStore{}, nil)
	return NewCommentService(comments, protos, nil), protoSvc, comments
}

func TestCommentSubmitCreate(t *testing.T) {
	svc, protoSvc, _ := newCommentFixture(t)
	p := seedPrototype(t, protoSvc, "owner")
	ctx := context.Background()

	out := svc.SubmitCreate(ctx, "fan", p.ID, "Would buy one today")
	if out.State != StateCommitted {
		t.Fatalf("expected committed, got state %v (errors %v)", out.State, out.Errors.Messages())
	}
	if out.Entity.ID == "" || out.Entity.UserID != "fan" || out.Entity.PrototypeID != p.ID {
		t.Fatalf("unexpected comment %+v", out.Entity)
	}

	listed, err := svc.ListByPrototype(ctx, p.ID)
	if err != nil || len(listed) != 1 {
		t.Fatalf("expected one listed comment, got %v / %v", listed, err)
	}
}

func TestCommentSubmitCreateAnonymous(t *testing.T) {
	svc, protoSvc, comments := newCommentFixture(t)
	p := seedPrototype(t, protoSvc, "owner")

	out := svc.SubmitCreate(context.Background(), authz.Anonymous, p.ID, "Nice")
	if out.State != StateUnauthorized || out.Redirect != authz.RedirectLogin {
		t.Fatalf("expected login redirect, got state %v redirect %v", out.State, out.Redirect)
	}
	if len(comments.comments) != 0 {
		t.Fatalf("rejected comment must not persist")
	}
}

func TestCommentSubmitCreateBlankContent(t *testing.T) {
	svc, protoSvc, comments := newCommentFixture(t)
	p := seedPrototype(t, protoSvc, "owner")

	out := svc.SubmitCreate(context.Background(), "fan", p.ID, "   ")
	if out.State != StateValidationFailed {
		t.Fatalf("expected validation failure, got state %v", out.State)
	}
	if got := out.Errors.Messages(); len(got) != 1 || got[0] != "Content can't be blank" {
		t.Fatalf("expected content error, got %v", got)
	}
	if len(comments.comments) != 0 {
		t.Fatalf("invalid comment must not persist")
	}
}

func TestCommentSubmitCreateParentMissing(t *testing.T) {
	svc, _, _ := newCommentFixture(t)

	out := svc.SubmitCreate(context.Background(), "fan", "proto-missing", "Nice")
	if out.State != StateNotFound {
		t.Fatalf("expected not found, got state %v", out.State)
	}
}

func TestCommentSubmitCreateParentDeletedRace(t *testing.T) {
	// The parent passes the existence check but the insert hits the missing
	// foreign key.
	svc, protoSvc, comments := newCommentFixture(t)
	p := seedPrototype(t, protoSvc, "owner")
	comments.createErr = repository.ErrNotFound

	out := svc.SubmitCreate(context.Background(), "fan", p.ID, "Nice")
	if out.State != StateNotFound {
		t.Fatalf("expected not found, got state %v", out.State)
	}
}
