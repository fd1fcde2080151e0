// Package provider defines the external identity-provider collaborator
// consumed during sign-in and sign-up. The production deployment pointed at
// a managed user pool; Local is the in-process stand-in.
package provider

import (
	"context"

	"eduverse/internal/domain"
)

type IdentityProvider interface {
	// SignUp registers a new account. Duplicate emails and invalid roles are
	// rejected with an error wrapping domain.ErrSignupRejected.
	SignUp(ctx context.Context, email, credential, firstName, lastName string, role domain.Role) error
	// Authenticate verifies a credential pair and returns the identity
	// claims, or domain.ErrInvalidCredentials.
	Authenticate(ctx context.Context, email, credential string) (domain.Identity, error)
	// CurrentIdentity returns the claims of the last authenticated account,
	// or domain.ErrNoSession.
	CurrentIdentity(ctx context.Context) (domain.Identity, error)
	// EndSession clears the provider-side session. Idempotent.
	EndSession(ctx context.Context) error
}
