package memory

import (
	"context"

	"github.com/aussiebroadwan/campus/internal/campus/domain"
	"github.com/aussiebroadwan/campus/internal/campus/store"
)

type gradesRepo struct {
	s *Store
}

func (r *gradesRepo) CreateGrade(ctx context.Context, g domain.AssignmentGrade) (domain.AssignmentGrade, error) {
	err := r.s.write(ctx, func() error {
		if _, ok := r.s.assignments[g.AssignmentID]; !ok {
			return store.ErrNotFound
		}
		if _, ok := r.s.users[g.StudentID]; !ok {
			return store.ErrNotFound
		}
		g.ID = r.s.nextGradeID
		r.s.nextGradeID++
		r.s.grades[g.ID] = g
		return nil
	})
	if err != nil {
		return domain.AssignmentGrade{}, err
	}
	return g, nil
}

func (r *gradesRepo) ListGradesByAssignment(ctx context.Context, assignmentID int64) ([]domain.AssignmentGrade, error) {
	var out []domain.AssignmentGrade
	err := r.s.read(ctx, func() error {
		out = sortedByID(r.s.grades, func(g domain.AssignmentGrade) bool { return g.AssignmentID == assignmentID })
		return nil
	})
	return out, err
}

func (r *gradesRepo) ListGradesByStudent(ctx context.Context, studentID int64) ([]domain.AssignmentGrade, error) {
	var out []domain.AssignmentGrade
	err := r.s.read(ctx, func() error {
		out = sortedByID(r.s.grades, func(g domain.AssignmentGrade) bool { return g.StudentID == studentID })
		return nil
	})
	return out, err
}
