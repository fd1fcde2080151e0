// Package session owns the identity directory and the single current-session
// projection. The directory is the source of truth; the projection is set on
// sign-in or restore and cleared on sign-out. Every mutation persists a full
// snapshot synchronously before returning.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"eduverse/internal/domain"
	"eduverse/internal/infrastructure/provider"
	"eduverse/internal/infrastructure/storage"
	"eduverse/internal/pkg/logger"
)

// Each teacher-owned course is priced at a flat rate for the revenue figure.
const pricePerCourse = 100

type Store struct {
	log          *logger.Logger
	provider     provider.IdentityProvider
	snapshots    storage.SnapshotStore
	loginTimeout time.Duration

	mu       sync.RWMutex
	loading  bool
	degraded bool
	accounts map[string]domain.Account // keyed by lower-cased email
	current  *domain.Identity
}

func NewStore(snapshots storage.SnapshotStore, idp provider.IdentityProvider, loginTimeout time.Duration, log *logger.Logger) *Store {
	return &Store{
		log:          log,
		provider:     idp,
		snapshots:    snapshots,
		loginTimeout: loginTimeout,
		loading:      true,
		accounts:     make(map[string]domain.Account),
	}
}

// Restore loads the persisted directory and current-session snapshots, or
// seeds the directory with the built-in demo accounts on first run. It must
// complete before any guard decision is made; until then the store reports
// Loading. A failed load degrades the store to in-memory-only operation
// instead of failing startup.
func (s *Store) Restore(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer func() { s.loading = false }()

	data, ok, err := s.snapshots.Load(ctx, storage.KeyDirectory)
	switch {
	case err != nil:
		s.markDegraded("load directory snapshot", err)
		s.accounts = seedAccounts()
	case ok:
		var accounts map[string]domain.Account
		if err := json.Unmarshal(data, &accounts); err != nil {
			s.markDegraded("decode directory snapshot", err)
			s.accounts = seedAccounts()
		} else {
			s.accounts = accounts
		}
	default:
		s.accounts = seedAccounts()
		s.persistDirectoryLocked(ctx)
	}

	data, ok, err = s.snapshots.Load(ctx, storage.KeySession)
	if err != nil {
		s.markDegraded("load session snapshot", err)
		return
	}
	if ok {
		var identity domain.Identity
		if err := json.Unmarshal(data, &identity); err != nil {
			s.markDegraded("decode session snapshot", err)
			return
		}
		s.current = &identity
	}
}

// Loading reports whether Restore has not yet completed.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Degraded reports whether snapshot persistence has failed and the store is
// running in-memory only.
func (s *Store) Degraded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.degraded
}

// Current returns the signed-in identity projection, if any.
func (s *Store) Current() (domain.Identity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return domain.Identity{}, false
	}
	return *s.current, true
}

// SignIn matches the credential pair against the directory: case-insensitive
// email lookup, exact credential match. Emails unknown to the directory fall
// through to the identity provider, so provider-registered accounts can sign
// in too. On success the public projection becomes the current session and is
// persisted; on failure session state is left unchanged.
func (s *Store) SignIn(ctx context.Context, email, credential string) (domain.Identity, error) {
	key := strings.ToLower(email)

	s.mu.Lock()
	account, ok := s.accounts[key]
	if ok {
		defer s.mu.Unlock()
		if account.Password != credential {
			return domain.Identity{}, domain.ErrInvalidCredentials
		}
		identity := account.Identity
		s.current = &identity
		s.persistSessionLocked(ctx)
		return identity, nil
	}
	// The provider round-trip can stall for the full login timeout; holding
	// the lock across it would block every session read in the meantime.
	s.mu.Unlock()

	pctx, cancel := context.WithTimeout(ctx, s.loginTimeout)
	defer cancel()

	identity, err := s.provider.Authenticate(pctx, email, credential)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return domain.Identity{}, err
		}
		return domain.Identity{}, fmt.Errorf("%w: %v", domain.ErrInvalidCredentials, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = &identity
	s.persistSessionLocked(ctx)
	return identity, nil
}

// SignOut clears the current session and its snapshot. Calling it while
// signed out is a no-op.
func (s *Store) SignOut(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return
	}
	s.current = nil
	if !s.degraded {
		if err := s.snapshots.Delete(ctx, storage.KeySession); err != nil {
			s.markDegraded("delete session snapshot", err)
		}
	}
	_ = s.provider.EndSession(ctx)
}

// SignUp delegates account creation to the identity provider. It does not
// sign the new account in; signup and login are separate flows.
func (s *Store) SignUp(ctx context.Context, email, credential, firstName, lastName string, role domain.Role) error {
	pctx, cancel := context.WithTimeout(ctx, s.loginTimeout)
	defer cancel()

	if err := s.provider.SignUp(pctx, email, credential, firstName, lastName, role); err != nil {
		if errors.Is(err, domain.ErrSignupRejected) {
			return err
		}
		return fmt.Errorf("%w: %v", domain.ErrSignupRejected, err)
	}
	return nil
}

// AddIdentity performs administrative account creation and returns the new
// id. Ids are assigned as directory size + 1; after a deletion this can
// reissue a stale id. Changing the scheme would change snapshot contents,
// so it stays.
func (s *Store) AddIdentity(ctx context.Context, ni domain.NewIdentity) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := strconv.Itoa(len(s.accounts) + 1)
	fullName := ni.FullName()

	avatar := ni.Avatar
	if avatar == "" {
		avatar = placeholderAvatar(fullName)
	}

	s.accounts[strings.ToLower(ni.Email)] = domain.Account{
		Password: ni.Password,
		Identity: domain.Identity{
			ID:         id,
			Name:       fullName,
			Email:      ni.Email,
			Role:       ni.Role,
			Status:     domain.StatusActive,
			Department: ni.Department,
			JoinDate:   time.Now().Format("2006-01-02"),
			Avatar:     avatar,
			Bio:        ni.Bio,
			FirstName:  ni.FirstName,
			LastName:   ni.LastName,
		},
	}
	s.persistDirectoryLocked(ctx)
	return id
}

// ListAll returns the credential-stripped projection of every directory
// entry. Order is unspecified; callers sort if they care.
func (s *Store) ListAll() []domain.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	identities := make([]domain.Identity, 0, len(s.accounts))
	for _, account := range s.accounts {
		identities = append(identities, account.Identity)
	}
	return identities
}

// GetByID returns the projection for id, or ok=false when absent.
func (s *Store) GetByID(id string) (domain.Identity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, account := range s.accounts {
		if account.Identity.ID == id {
			return account.Identity, true
		}
	}
	return domain.Identity{}, false
}

// UpdateStatus sets the status of the identity with the given id. A miss is
// silently ignored. When the mutated identity is also the current session,
// the projection and its snapshot are updated in lock-step.
func (s *Store) UpdateStatus(ctx context.Context, id string, status domain.Status) {
	s.mutateByID(ctx, id, func(identity *domain.Identity) {
		identity.Status = status
	})
}

// UpdateDepartment sets the department of the identity with the given id.
// Same miss and lock-step semantics as UpdateStatus.
func (s *Store) UpdateDepartment(ctx context.Context, id, department string) {
	s.mutateByID(ctx, id, func(identity *domain.Identity) {
		identity.Department = department
	})
}

func (s *Store) mutateByID(ctx context.Context, id string, apply func(*domain.Identity)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, account := range s.accounts {
		if account.Identity.ID != id {
			continue
		}
		apply(&account.Identity)
		s.accounts[key] = account

		if s.current != nil && s.current.ID == id {
			identity := account.Identity
			s.current = &identity
			s.persistSessionLocked(ctx)
		}
		s.persistDirectoryLocked(ctx)
		return
	}
}

// Delete removes the directory entry with the given id. A miss is silently
// ignored. Deleting the currently signed-in identity does not clear the
// session; see the design notes.
func (s *Store) Delete(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, account := range s.accounts {
		if account.Identity.ID == id {
			delete(s.accounts, key)
			s.persistDirectoryLocked(ctx)
			return
		}
	}
}

// Stats computes the platform aggregates from the directory on demand.
func (s *Store) Stats() domain.PlatformStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var students, teachers, courses int
	for _, account := range s.accounts {
		switch account.Identity.Role {
		case domain.RoleStudent:
			students++
		case domain.RoleTeacher:
			teachers++
			courses += account.Identity.CoursesCount
		}
	}

	return domain.PlatformStats{
		TotalStudents: students,
		TotalTeachers: teachers,
		TotalCourses:  courses,
		TotalRevenue:  formatDollars(courses * pricePerCourse),
	}
}

func (s *Store) persistDirectoryLocked(ctx context.Context) {
	if s.degraded {
		return
	}
	data, err := json.Marshal(s.accounts)
	if err != nil {
		s.markDegraded("encode directory snapshot", err)
		return
	}
	if err := s.snapshots.Save(ctx, storage.KeyDirectory, data); err != nil {
		s.markDegraded("save directory snapshot", err)
	}
}

func (s *Store) persistSessionLocked(ctx context.Context) {
	if s.degraded {
		return
	}
	if s.current == nil {
		if err := s.snapshots.Delete(ctx, storage.KeySession); err != nil {
			s.markDegraded("delete session snapshot", err)
		}
		return
	}
	data, err := json.Marshal(s.current)
	if err != nil {
		s.markDegraded("encode session snapshot", err)
		return
	}
	if err := s.snapshots.Save(ctx, storage.KeySession, data); err != nil {
		s.markDegraded("save session snapshot", err)
	}
}

func (s *Store) markDegraded(op string, err error) {
	if !s.degraded {
		s.log.Error("snapshot persistence unavailable, continuing in-memory",
			"op", op, "error", fmt.Errorf("%w: %v", domain.ErrPersistenceUnavailable, err))
	}
	s.degraded = true
}

func placeholderAvatar(name string) string {
	return "https://ui-avatars.com/api/?name=" + strings.ReplaceAll(name, " ", "+") + "&background=random&color=fff"
}

func formatDollars(amount int) string {
	digits := strconv.Itoa(amount)
	var b strings.Builder
	b.WriteByte('$')
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	return b.String()
}
