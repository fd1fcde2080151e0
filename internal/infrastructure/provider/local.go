package provider

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"eduverse/internal/domain"
	"eduverse/internal/infrastructure/security"
)

type record struct {
	hash     string
	identity domain.Identity
}

// Local is an in-process identity provider. Accounts created through SignUp
// live only here; credentials are stored hashed, never plaintext.
type Local struct {
	hasher *security.PasswordHasher

	mu      sync.RWMutex
	records map[string]record // keyed by lower-cased email
	current *domain.Identity
}

func NewLocal(hasher *security.PasswordHasher) *Local {
	return &Local{
		hasher:  hasher,
		records: make(map[string]record),
	}
}

func (p *Local) SignUp(_ context.Context, email, credential, firstName, lastName string, role domain.Role) error {
	if !role.Valid() {
		return fmt.Errorf("%w: unknown role %q", domain.ErrSignupRejected, role)
	}
	key := strings.ToLower(email)

	p.mu.Lock()
	defer p.mu.Unlock()

	if _, exists := p.records[key]; exists {
		return fmt.Errorf("%w: an account with this email already exists", domain.ErrSignupRejected)
	}

	hash, err := p.hasher.Hash(credential)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrSignupRejected, err)
	}

	p.records[key] = record{
		hash: hash,
		identity: domain.Identity{
			ID:        key,
			Name:      strings.TrimSpace(firstName + " " + lastName),
			Email:     email,
			Role:      role,
			Status:    domain.StatusActive,
			JoinDate:  time.Now().Format("2006-01-02"),
			FirstName: firstName,
			LastName:  lastName,
		},
	}
	return nil
}

func (p *Local) Authenticate(_ context.Context, email, credential string) (domain.Identity, error) {
	key := strings.ToLower(email)

	p.mu.Lock()
	defer p.mu.Unlock()

	rec, ok := p.records[key]
	if !ok {
		return domain.Identity{}, domain.ErrInvalidCredentials
	}
	if err := p.hasher.Compare(rec.hash, credential); err != nil {
		return domain.Identity{}, domain.ErrInvalidCredentials
	}

	id := rec.identity
	p.current = &id
	return id, nil
}

func (p *Local) CurrentIdentity(_ context.Context) (domain.Identity, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.current == nil {
		return domain.Identity{}, domain.ErrNoSession
	}
	return *p.current, nil
}

func (p *Local) EndSession(_ context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.current = nil
	return nil
}
