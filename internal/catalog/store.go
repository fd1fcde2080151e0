// Package catalog owns the course collection. It is seeded once from the
// built-in fixtures, then mutated independently by authoring and enrollment
// operations, persisting a full snapshot synchronously on every mutation.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"eduverse/internal/domain"
	"eduverse/internal/infrastructure/storage"
	"eduverse/internal/pkg/logger"
)

type Store struct {
	log       *logger.Logger
	snapshots storage.SnapshotStore

	mu       sync.RWMutex
	loading  bool
	degraded bool
	courses  []domain.Course
}

func NewStore(snapshots storage.SnapshotStore, log *logger.Logger) *Store {
	return &Store{log: log, snapshots: snapshots, loading: true}
}

// Restore loads the persisted catalog snapshot, or seeds the runtime shape
// from the fixture list on first run: status derived from the publish flag,
// enrollment set empty, the fixture's numeric enrollment count preserved as
// the legacy total.
func (s *Store) Restore(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer func() { s.loading = false }()

	data, ok, err := s.snapshots.Load(ctx, storage.KeyCatalog)
	switch {
	case err != nil:
		s.markDegraded("load catalog snapshot", err)
		s.courses = seedCourses()
	case ok:
		var courses []domain.Course
		if err := json.Unmarshal(data, &courses); err != nil {
			s.markDegraded("decode catalog snapshot", err)
			s.courses = seedCourses()
		} else {
			s.courses = courses
		}
	default:
		s.courses = seedCourses()
		s.loading = false
		s.persistLocked(ctx)
	}
}

// Loading reports whether Restore has not yet completed.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// List returns a copy of the course collection in insertion order.
func (s *Store) List() []domain.Course {
	s.mu.RLock()
	defer s.mu.RUnlock()

	courses := make([]domain.Course, len(s.courses))
	copy(courses, s.courses)
	return courses
}

// GetByID returns the course with the given id, or ok=false when absent.
func (s *Store) GetByID(id string) (domain.Course, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, course := range s.courses {
		if course.ID == id {
			return course, true
		}
	}
	return domain.Course{}, false
}

// Add appends a course. The store does not enforce id uniqueness; the caller
// supplies a unique id.
func (s *Store) Add(ctx context.Context, course domain.Course) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if course.EnrolledStudents == nil {
		course.EnrolledStudents = []string{}
	}
	if course.Modules == nil {
		course.Modules = []domain.Module{}
	}
	s.courses = append(s.courses, course)
	s.persistLocked(ctx)
}

// Update replaces the course with the given id in full. Callers merge before
// calling; a miss is silently ignored.
func (s *Store) Update(ctx context.Context, id string, course domain.Course) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.courses {
		if s.courses[i].ID == id {
			s.courses[i] = course
			s.persistLocked(ctx)
			return
		}
	}
}

// Delete removes the course with the given id, and with it its modules. A
// miss is silently ignored.
func (s *Store) Delete(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.courses {
		if s.courses[i].ID == id {
			s.courses = append(s.courses[:i], s.courses[i+1:]...)
			s.persistLocked(ctx)
			return
		}
	}
}

// Enroll inserts identityID into the course's enrollment set. Enrolling an
// already-enrolled identity is a no-op, as is a miss on the course id.
func (s *Store) Enroll(ctx context.Context, courseID, identityID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.courses {
		if s.courses[i].ID != courseID {
			continue
		}
		if s.courses[i].IsEnrolled(identityID) {
			return
		}
		s.courses[i].EnrolledStudents = append(s.courses[i].EnrolledStudents, identityID)
		s.persistLocked(ctx)
		return
	}
}

// Unenroll removes identityID from the course's enrollment set.
func (s *Store) Unenroll(ctx context.Context, courseID, identityID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.courses {
		if s.courses[i].ID != courseID {
			continue
		}
		for j, enrolled := range s.courses[i].EnrolledStudents {
			if enrolled == identityID {
				s.courses[i].EnrolledStudents = append(
					s.courses[i].EnrolledStudents[:j], s.courses[i].EnrolledStudents[j+1:]...)
				s.persistLocked(ctx)
				return
			}
		}
		return
	}
}

// Degraded reports whether snapshot persistence has failed and the store is
// running in-memory only.
func (s *Store) Degraded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.degraded
}

// persistLocked writes the full catalog snapshot. It refuses to write before
// Restore has run, so a startup-window mutation can never replace the seed
// snapshot Restore would otherwise trust.
func (s *Store) persistLocked(ctx context.Context) {
	if s.degraded || s.loading {
		return
	}
	data, err := json.Marshal(s.courses)
	if err != nil {
		s.markDegraded("encode catalog snapshot", err)
		return
	}
	if err := s.snapshots.Save(ctx, storage.KeyCatalog, data); err != nil {
		s.markDegraded("save catalog snapshot", err)
	}
}

func (s *Store) markDegraded(op string, err error) {
	if !s.degraded {
		s.log.Error("snapshot persistence unavailable, continuing in-memory",
			"op", op, "error", fmt.Errorf("%w: %v", domain.ErrPersistenceUnavailable, err))
	}
	s.degraded = true
}
