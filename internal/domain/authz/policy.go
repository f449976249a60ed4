// Package authz holds the pure authorization policy. Given a subject, an
// action, and the owning user of the resource (when one exists), it returns
// an Allow/Deny decision plus the redirect the boundary should apply on
// deny. The function has no side effects and no hidden state: identical
// inputs always yield the identical decision.
package authz

// Action enumerates everything a subject can attempt against the core.
type Action int

const (
	ActionListPrototypes Action = iota
	ActionViewPrototype
	ActionViewUser
	ActionListComments
	ActionRegister
	ActionStartSession
	ActionCreatePrototype
	ActionCreateComment
	ActionUpdatePrototype
	ActionDeletePrototype
)

// RedirectKind tells the boundary where to send a denied subject.
//
// The asymmetry is deliberate: an unauthenticated mutation attempt is sent
// to login, while an authenticated non-owner mutating an existing resource
// is silently sent home. The second case reveals that the resource exists
// but not its editing surface.
type RedirectKind int

const (
	RedirectNone RedirectKind = iota
	RedirectLogin
	RedirectHome
)

// Decision is the outcome of a policy evaluation.
type Decision struct {
	Allowed  bool
	Redirect RedirectKind
}

// Anonymous is the subject id of an unauthenticated visitor.
const Anonymous = ""

func allow() Decision { return Decision{Allowed: true} }

func deny(r RedirectKind) Decision { return Decision{Redirect: r} }

// Authorize evaluates the policy for subjectID acting on a resource owned
// by ownerID. ownerID is empty when the action targets no existing resource
// (listing, registration, creation). First matching rule wins.
func Authorize(subjectID string, action Action, ownerID string) Decision {
	switch action {
	case ActionListPrototypes, ActionViewPrototype, ActionViewUser,
		ActionListComments, ActionRegister, ActionStartSession:
		// Readable and entry surfaces are open to everyone, anonymous
		// visitors included.
		return allow()

	case ActionCreatePrototype, ActionCreateComment:
		if subjectID == Anonymous {
			return deny(RedirectLogin)
		}
		return allow()

	case ActionUpdatePrototype, ActionDeletePrototype:
		if subjectID == Anonymous {
			return deny(RedirectLogin)
		}
		if subjectID != ownerID {
			return deny(RedirectHome)
		}
		return allow()
	}

	// Fail closed on anything unrecognized.
	if subjectID == Anonymous {
		return deny(RedirectLogin)
	}
	return deny(RedirectHome)
}
