package memory

import (
	"context"

	"github.com/aussiebroadwan/campus/internal/campus/domain"
	"github.com/aussiebroadwan/campus/internal/campus/store"
)

type assignmentsRepo struct {
	s *Store
}

func (r *assignmentsRepo) CreateAssignment(ctx context.Context, a domain.Assignment) (domain.Assignment, error) {
	err := r.s.write(ctx, func() error {
		if _, ok := r.s.courses[a.CourseID]; !ok {
			return store.ErrNotFound
		}
		a.ID = r.s.nextAssignmentID
		r.s.nextAssignmentID++
		r.s.assignments[a.ID] = a
		return nil
	})
	if err != nil {
		return domain.Assignment{}, err
	}
	return a, nil
}

func (r *assignmentsRepo) GetAssignmentByID(ctx context.Context, id int64) (domain.Assignment, error) {
	var a domain.Assignment
	err := r.s.read(ctx, func() error {
		found, ok := r.s.assignments[id]
		if !ok {
			return store.ErrNotFound
		}
		a = found
		return nil
	})
	return a, err
}

func (r *assignmentsRepo) ListAssignmentsByCourse(ctx context.Context, courseID int64) ([]domain.Assignment, error) {
	var out []domain.Assignment
	err := r.s.read(ctx, func() error {
		out = sortedByID(r.s.assignments, func(a domain.Assignment) bool { return a.CourseID == courseID })
		return nil
	})
	return out, err
}

func (r *assignmentsRepo) DeleteAssignment(ctx context.Context, id int64) (domain.Assignment, error) {
	var a domain.Assignment
	err := r.s.write(ctx, func() error {
		found, ok := r.s.assignments[id]
		if !ok {
			return store.ErrNotFound
		}
		a = found
		r.s.deleteAssignmentLocked(id)
		return nil
	})
	return a, err
}
