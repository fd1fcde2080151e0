// Package guard decides, per navigation to a protected view, whether to
// render it, show the loading placeholder, or redirect. The decision is a
// pure function of the session state and the requested role allowlist and is
// re-evaluated on every navigation.
package guard

import "eduverse/internal/domain"

// Canonical routes the guard redirects to.
const (
	LoginRoute  = "/login"
	StudentHome = "/student"
	TeacherHome = "/teacher"
	AdminHome   = "/admin"
)

type State int

const (
	// StateLoading holds until session restore completes; it is never
	// re-entered afterwards.
	StateLoading State = iota
	StateUnauthenticated
	StateAuthenticated
)

type DecisionKind int

const (
	// DecisionLoading renders the loading placeholder; never a redirect.
	DecisionLoading DecisionKind = iota
	// DecisionRender renders the requested view.
	DecisionRender
	// DecisionRedirect redirects to Decision.Target.
	DecisionRedirect
	// DecisionNone is the dead end for an authenticated identity whose role
	// matches no known home route.
	DecisionNone
)

type Decision struct {
	Kind   DecisionKind
	Target string
}

// Session is the slice of the session store the guard reads. The guard owns
// neither store and never writes.
type Session interface {
	Loading() bool
	Current() (domain.Identity, bool)
}

type Guard struct {
	session Session
}

func New(session Session) *Guard {
	return &Guard{session: session}
}

// State reports the guard's view of the session.
func (g *Guard) State() State {
	if g.session.Loading() {
		return StateLoading
	}
	if _, ok := g.session.Current(); !ok {
		return StateUnauthenticated
	}
	return StateAuthenticated
}

// Decide evaluates a navigation request carrying a required-role allowlist.
// An empty allowlist means any authenticated role may render.
func (g *Guard) Decide(allowedRoles []domain.Role) Decision {
	if g.session.Loading() {
		return Decision{Kind: DecisionLoading}
	}

	identity, ok := g.session.Current()
	if !ok {
		return Decision{Kind: DecisionRedirect, Target: LoginRoute}
	}

	if len(allowedRoles) == 0 || roleAllowed(identity.Role, allowedRoles) {
		return Decision{Kind: DecisionRender}
	}

	home, ok := HomeRoute(identity.Role)
	if !ok {
		return Decision{Kind: DecisionNone}
	}
	return Decision{Kind: DecisionRedirect, Target: home}
}

// HomeRoute maps a role to its canonical home route.
func HomeRoute(role domain.Role) (string, bool) {
	switch role {
	case domain.RoleStudent:
		return StudentHome, true
	case domain.RoleTeacher:
		return TeacherHome, true
	case domain.RoleAdmin:
		return AdminHome, true
	}
	return "", false
}

func roleAllowed(role domain.Role, allowed []domain.Role) bool {
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}
