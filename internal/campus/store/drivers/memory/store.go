package memory

import (
	"cmp"
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/aussiebroadwan/campus/internal/campus/domain"
	"github.com/aussiebroadwan/campus/internal/campus/store"
)

type enrollmentKey struct {
	courseID  int64
	studentID int64
}

// Store keeps every collection in process memory behind a single lock, so
// cascading deletes and existence checks see one consistent snapshot.
// Nothing survives a restart.
type Store struct {
	mu     sync.RWMutex
	closed bool
	now    func() time.Time

	users        map[int64]domain.User
	usersByEmail map[string]int64
	nextUserID   int64

	courses      map[int64]domain.Course
	nextCourseID int64

	enrollments   map[enrollmentKey]domain.Enrollment
	nextEnrollSeq int64

	assignments      map[int64]domain.Assignment
	nextAssignmentID int64

	grades      map[int64]domain.AssignmentGrade
	nextGradeID int64

	sessions      map[int64]domain.Session
	nextSessionID int64
}

var _ store.Store = (*Store)(nil)

func NewStore() *Store {
	return &Store{
		now:          time.Now,
		users:        make(map[int64]domain.User),
		usersByEmail: make(map[string]int64),
		courses:      make(map[int64]domain.Course),
		enrollments:  make(map[enrollmentKey]domain.Enrollment),
		assignments:  make(map[int64]domain.Assignment),
		grades:       make(map[int64]domain.AssignmentGrade),
		sessions:     make(map[int64]domain.Session),
	}
}

func (s *Store) Users() store.Users             { return &usersRepo{s: s} }
func (s *Store) Courses() store.Courses         { return &coursesRepo{s: s} }
func (s *Store) Enrollments() store.Enrollments { return &enrollmentsRepo{s: s} }
func (s *Store) Assignments() store.Assignments { return &assignmentsRepo{s: s} }
func (s *Store) Grades() store.Grades           { return &gradesRepo{s: s} }
func (s *Store) Sessions() store.Sessions       { return &sessionsRepo{s: s} }

func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// Ping verifies the store has not been closed.
func (s *Store) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return store.ErrClosed
	}
	return nil
}

// read runs fn under the read lock once the store is known to be open.
func (s *Store) read(ctx context.Context, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return store.ErrClosed
	}
	return fn()
}

// write runs fn under the write lock once the store is known to be open.
func (s *Store) write(ctx context.Context, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return store.ErrClosed
	}
	return fn()
}

// deleteAssignmentLocked drops an assignment and its grades. Caller holds mu.
func (s *Store) deleteAssignmentLocked(id int64) {
	delete(s.assignments, id)
	for gid, g := range s.grades {
		if g.AssignmentID == id {
			delete(s.grades, gid)
		}
	}
}

// sortedByID returns the values of m ordered by id, which is also insertion
// order because ids are handed out monotonically.
func sortedByID[V any](m map[int64]V, keep func(V) bool) []V {
	ids := slices.Sorted(maps.Keys(m))
	out := make([]V, 0, len(ids))
	for _, id := range ids {
		v := m[id]
		if keep == nil || keep(v) {
			out = append(out, v)
		}
	}
	return out
}

func sortedEnrollments(m map[enrollmentKey]domain.Enrollment, keep func(domain.Enrollment) bool) []domain.Enrollment {
	out := make([]domain.Enrollment, 0)
	for _, e := range m {
		if keep(e) {
			out = append(out, e)
		}
	}
	slices.SortFunc(out, func(a, b domain.Enrollment) int { return cmp.Compare(a.Seq, b.Seq) })
	return out
}
