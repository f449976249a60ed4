package authz

import "testing"

func TestAuthorize(t *testing.T) {
	const owner = "user-owner"
	const other = "user-other"

	tests := []struct {
		name     string
		subject  string
		action   Action
		ownerID  string
		allowed  bool
		redirect RedirectKind
	}{
		{name: "anonymous lists prototypes", subject: Anonymous, action: ActionListPrototypes, allowed: true},
		{name: "anonymous views prototype", subject: Anonymous, action: ActionViewPrototype, ownerID: owner, allowed: true},
		{name: "anonymous views user page", subject: Anonymous, action: ActionViewUser, ownerID: owner, allowed: true},
		{name: "anonymous reads comments", subject: Anonymous, action: ActionListComments, ownerID: owner, allowed: true},
		{name: "anonymous registers", subject: Anonymous, action: ActionRegister, allowed: true},
		{name: "anonymous starts session", subject: Anonymous, action: ActionStartSession, allowed: true},
		{name: "authenticated views prototype", subject: other, action: ActionViewPrototype, ownerID: owner, allowed: true},

		{name: "anonymous creates prototype", subject: Anonymous, action: ActionCreatePrototype, redirect: RedirectLogin},
		{name: "anonymous creates comment", subject: Anonymous, action: ActionCreateComment, redirect: RedirectLogin},
		{name: "authenticated creates prototype", subject: other, action: ActionCreatePrototype, allowed: true},
		{name: "authenticated creates comment", subject: other, action: ActionCreateComment, allowed: true},

		{name: "anonymous updates prototype", subject: Anonymous, action: ActionUpdatePrototype, ownerID: owner, redirect: RedirectLogin},
		{name: "anonymous deletes prototype", subject: Anonymous, action: ActionDeletePrototype, ownerID: owner, redirect: RedirectLogin},
		{name: "non-owner updates prototype", subject: other, action: ActionUpdatePrototype, ownerID: owner, redirect: RedirectHome},
		{name: "non-owner deletes prototype", subject: other, action: ActionDeletePrototype, ownerID: owner, redirect: RedirectHome},
		{name: "owner updates prototype", subject: owner, action: ActionUpdatePrototype, ownerID: owner, allowed: true},
		{name: "owner deletes prototype", subject: owner, action: ActionDeletePrototype, ownerID: owner, allowed: true},

		{name: "unknown action anonymous", subject: Anonymous, action: Action(99), redirect: RedirectLogin},
		{name: "unknown action authenticated", subject: other, action: Action(99), ownerID: owner, redirect: RedirectHome},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Authorize(tt.subject, tt.action, tt.ownerID)
			if d.Allowed != tt.allowed {
				t.Fatalf("expected allowed=%v, got %v", tt.allowed, d.Allowed)
			}
			if !tt.allowed && d.Redirect != tt.redirect {
				t.Fatalf("expected redirect %v, got %v", tt.redirect, d.Redirect)
			}
			if tt.allowed && d.Redirect != RedirectNone {
				t.Fatalf("allow decisions carry no redirect, got %v", d.Redirect)
			}
		})
	}
}

func TestAuthorizeIsPure(t *testing.T) {
	// Identical inputs always yield the identical decision.
	for i := 0; i < 3; i++ {
		first := Authorize("u1", ActionUpdatePrototype, "u2")
		second := Authorize("u1", ActionUpdatePrototype, "u2")
		if first != second {
			t.Fatalf("decisions differ: %v vs %v", first, second)
		}
	}
}
