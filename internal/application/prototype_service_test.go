package application

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/putrafajarh/protospace/internal/domain/authz"
	"github.com/putrafajarh/protospace/internal/domain/entity"
)

func validInput() PrototypeInput {
	return PrototypeInput{
		Title:            "Pocket Greenhouse",
		CatchCopy:        "A garden that fits in your bag",
		Concept:          "Fold-out seedling tray for commuters.",
		Image:            strings.NewReader("png-bytes"),
		ImageFilename:    "greenhouse.png",
		ImageContentType: "image/png",
	}
}

func newPrototypeFixture() (*PrototypeService, *memPrototypeRepo, *memCommentRepo, *memImageStore) {
	comments := newMemCommentRepo()
	protos := newMemPrototypeRepo(comments)
	images := &memImageStore{}
	return NewPrototypeService(protos, images, nil), protos, comments, images
}

func seedPrototype(t *testing.T, svc *PrototypeService, ownerID string) *entity.Prototype {
	t.Helper()
	out := svc.SubmitCreate(context.Background(), ownerID, validInput())
	if out.State != StateCommitted {
		t.Fatalf("seed create failed: state %v (errors %v)", out.State, out.Errors.Messages())
	}
	return out.Entity
}

func TestSubmitCreateCommitted(t *testing.T) {
	svc, protos, _, images := newPrototypeFixture()

	out := svc.SubmitCreate(context.Background(), "user-1", validInput())
	if out.State != StateCommitted {
		t.Fatalf("expected committed, got state %v (errors %v)", out.State, out.Errors.Messages())
	}
	p := out.Entity
	if p.ID == "" || p.UserID != "user-1" {
		t.Fatalf("unexpected prototype %+v", p)
	}
	if p.ImageRef != "img://greenhouse.png" {
		t.Fatalf("expected stored image ref, got %q", p.ImageRef)
	}
	if images.calls != 1 {
		t.Fatalf("expected one image upload, got %d", images.calls)
	}
	if len(protos.prototypes) != 1 {
		t.Fatalf("expected one persisted prototype")
	}
}

func TestSubmitCreateAnonymousRedirectsToLogin(t *testing.T) {
	svc, protos, _, images := newPrototypeFixture()

	out := svc.SubmitCreate(context.Background(), authz.Anonymous, validInput())
	if out.State != StateUnauthorized {
		t.Fatalf("expected unauthorized, got state %v", out.State)
	}
	if out.Redirect != authz.RedirectLogin {
		t.Fatalf("expected login redirect, got %v", out.Redirect)
	}
	if len(protos.prototypes) != 0 || images.calls != 0 {
		t.Fatalf("rejected submission must touch nothing")
	}
}

func TestSubmitCreateValidationKeepsFieldsButNotImage(t *testing.T) {
	svc, protos, _, images := newPrototypeFixture()

	in := validInput()
	in.Concept = ""
	out := svc.SubmitCreate(context.Background(), "user-1", in)
	if out.State != StateValidationFailed {
		t.Fatalf("expected validation failure, got state %v", out.State)
	}
	if got := out.Errors.Messages(); len(got) != 1 || got[0] != "Concept can't be blank" {
		t.Fatalf("expected only the concept error, got %v", got)
	}
	if out.Entity.Title != in.Title || out.Entity.CatchCopy != in.CatchCopy {
		t.Fatalf("expected proposed fields preserved, got %+v", out.Entity)
	}
	// The selected file is never stored or echoed back on failure.
	if out.Entity.ImageRef != "" {
		t.Fatalf("expected empty image ref, got %q", out.Entity.ImageRef)
	}
	if images.calls != 0 || len(protos.prototypes) != 0 {
		t.Fatalf("failed submission must not persist anything")
	}
}

func TestSubmitCreateWithoutImage(t *testing.T) {
	svc, _, _, _ := newPrototypeFixture()

	in := validInput()
	in.Image = nil
	out := svc.SubmitCreate(context.Background(), "user-1", in)
	if out.State != StateValidationFailed {
		t.Fatalf("expected validation failure, got state %v", out.State)
	}
	if got := out.Errors.Messages(); len(got) != 1 || got[0] != "Image can't be blank" {
		t.Fatalf("expected image error, got %v", got)
	}
}

func TestSubmitCreateImageStoreFailure(t *testing.T) {
	svc, protos, _, images := newPrototypeFixture()
	images.err = errors.New("bucket unavailable")

	out := svc.SubmitCreate(context.Background(), "user-1", validInput())
	if out.State != StateFailed {
		t.Fatalf("expected failed, got state %v", out.State)
	}
	if out.Err == nil {
		t.Fatalf("expected the store error surfaced")
	}
	if len(protos.prototypes) != 0 {
		t.Fatalf("nothing may persist when the upload fails")
	}
}

func TestSubmitUpdateOwner(t *testing.T) {
	svc, _, _, images := newPrototypeFixture()
	p := seedPrototype(t, svc, "owner")

	in := validInput()
	in.Title = "Pocket Greenhouse v2"
	in.Image = nil
	out := svc.SubmitUpdate(context.Background(), "owner", p.ID, in)
	if out.State != StateCommitted {
		t.Fatalf("expected committed, got state %v (errors %v)", out.State, out.Errors.Messages())
	}
	if out.Entity.Title != "Pocket Greenhouse v2" {
		t.Fatalf("expected updated title, got %q", out.Entity.Title)
	}
	// No new file: the stored reference survives the update.
	if out.Entity.ImageRef != p.ImageRef {
		t.Fatalf("expected image ref kept, got %q", out.Entity.ImageRef)
	}
	if images.calls != 1 {
		t.Fatalf("expected no second upload, got %d calls", images.calls)
	}
}

func TestSubmitUpdateReplacesImage(t *testing.T) {
	svc, _, _, _ := newPrototypeFixture()
	p := seedPrototype(t, svc, "owner")

	in := validInput()
	in.Image = strings.NewReader("new-bytes")
	in.ImageFilename = "v2.png"
	out := svc.SubmitUpdate(context.Background(), "owner", p.ID, in)
	if out.State != StateCommitted {
		t.Fatalf("expected committed, got state %v", out.State)
	}
	if out.Entity.ImageRef != "img://v2.png" {
		t.Fatalf("expected replaced image ref, got %q", out.Entity.ImageRef)
	}
}

func TestSubmitUpdateNonOwnerRedirectsHome(t *testing.T) {
	svc, protos, _, _ := newPrototypeFixture()
	p := seedPrototype(t, svc, "owner")

	in := validInput()
	in.Image = nil
	in.Concept = "" // invalid too; the policy decides first
	out := svc.SubmitUpdate(context.Background(), "intruder", p.ID, in)
	if out.State != StateUnauthorized {
		t.Fatalf("expected unauthorized, got state %v", out.State)
	}
	if out.Redirect != authz.RedirectHome {
		t.Fatalf("expected home redirect, got %v", out.Redirect)
	}
	if len(out.Errors) != 0 {
		t.Fatalf("policy denial must not leak validation results, got %v", out.Errors.Messages())
	}
	stored, _ := protos.GetByID(context.Background(), p.ID)
	if stored.Title != p.Title {
		t.Fatalf("denied update must not change the record")
	}
}

func TestSubmitUpdateAnonymousRedirectsToLogin(t *testing.T) {
	svc, _, _, _ := newPrototypeFixture()
	p := seedPrototype(t, svc, "owner")

	in := validInput()
	in.Image = nil
	out := svc.SubmitUpdate(context.Background(), authz.Anonymous, p.ID, in)
	if out.State != StateUnauthorized || out.Redirect != authz.RedirectLogin {
		t.Fatalf("expected login redirect, got state %v redirect %v", out.State, out.Redirect)
	}
}

func TestSubmitUpdateValidationKeepsPriorImage(t *testing.T) {
	svc, protos, _, _ := newPrototypeFixture()
	p := seedPrototype(t, svc, "owner")

	in := validInput()
	in.Image = nil
	in.Concept = ""
	out := svc.SubmitUpdate(context.Background(), "owner", p.ID, in)
	if out.State != StateValidationFailed {
		t.Fatalf("expected validation failure, got state %v", out.State)
	}
	if got := out.Errors.Messages(); len(got) != 1 || got[0] != "Concept can't be blank" {
		t.Fatalf("expected only the concept error, got %v", got)
	}
	if out.Entity.Title != in.Title || out.Entity.CatchCopy != in.CatchCopy {
		t.Fatalf("expected proposed fields preserved, got %+v", out.Entity)
	}
	// The previously persisted image is still referenced on the failed form.
	if out.Entity.ImageRef != p.ImageRef {
		t.Fatalf("expected prior image ref kept, got %q", out.Entity.ImageRef)
	}
	stored, _ := protos.GetByID(context.Background(), p.ID)
	if stored.Concept != p.Concept || stored.ImageRef != p.ImageRef {
		t.Fatalf("failed update must not change the record")
	}
}

func TestSubmitUpdateMissing(t *testing.T) {
	svc, _, _, _ := newPrototypeFixture()

	in := validInput()
	in.Image = nil
	out := svc.SubmitUpdate(context.Background(), "owner", "proto-missing", in)
	if out.State != StateNotFound {
		t.Fatalf("expected not found, got state %v", out.State)
	}
}

func TestSubmitDeleteCascades(t *testing.T) {
	svc, protos, comments, _ := newPrototypeFixture()
	p := seedPrototype(t, svc, "owner")

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		c := &entity.Comment{Content: "Nice", UserID: "fan", PrototypeID: p.ID}
		if err := comments.Create(ctx, c); err != nil {
			t.Fatalf("seed comment: %v", err)
		}
	}

	out := svc.SubmitDelete(ctx, "owner", p.ID)
	if out.State != StateCommitted {
		t.Fatalf("expected committed, got state %v", out.State)
	}
	if _, err := protos.GetByID(ctx, p.ID); err == nil {
		t.Fatalf("expected prototype gone")
	}
	left, _ := comments.ListByPrototype(ctx, p.ID)
	if len(left) != 0 {
		t.Fatalf("expected comments removed with the prototype, %d left", len(left))
	}
}

func TestSubmitDeleteNonOwnerRedirectsHome(t *testing.T) {
	svc, protos, _, _ := newPrototypeFixture()
	p := seedPrototype(t, svc, "owner")

	out := svc.SubmitDelete(context.Background(), "intruder", p.ID)
	if out.State != StateUnauthorized || out.Redirect != authz.RedirectHome {
		t.Fatalf("expected home redirect, got state %v redirect %v", out.State, out.Redirect)
	}
	if _, err := protos.GetByID(context.Background(), p.ID); err != nil {
		t.Fatalf("denied delete must leave the record in place")
	}
}

func TestSubmitDeleteMissing(t *testing.T) {
	svc, _, _, _ := newPrototypeFixture()

	out := svc.SubmitDelete(context.Background(), "owner", "proto-missing")
	if out.State != StateNotFound {
		t.Fatalf("expected not found, got state %v", out.State)
	}
}
