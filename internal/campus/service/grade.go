package service

import (
	"context"
	"log/slog"

	"github.com/aussiebroadwan/campus/internal/campus/domain"
	"github.com/aussiebroadwan/campus/internal/campus/store"
	"github.com/aussiebroadwan/campus/pkg/slogx"
)

type GradeService struct {
	Store store.Store
}

// CreateGrade records a grade for studentID on assignmentID. Returns nil when
// the assignment is missing or studentID is not a Student.
func (s *GradeService) CreateGrade(ctx context.Context, assignmentID, studentID int64, grade float64) (*domain.AssignmentGrade, error) {
	student, err := userWithRole(ctx, s.Store, studentID, domain.RoleStudent)
	if err != nil || student == nil {
		return nil, err
	}

	g, err := s.Store.Grades().CreateGrade(ctx, domain.AssignmentGrade{
		AssignmentID: assignmentID,
		StudentID:    student.ID,
		Grade:        grade,
	})
	if err != nil {
		return nilOnNotFound[domain.AssignmentGrade](err)
	}

	slogx.FromContext(ctx).Info("grade recorded",
		slog.Int64("grade_id", g.ID),
		slog.Int64("assignment_id", g.AssignmentID),
		slog.Int64("student_id", g.StudentID),
	)
	return &g, nil
}

func (s *GradeService) ListGradesByAssignment(ctx context.Context, assignmentID int64) ([]domain.AssignmentGrade, error) {
	return s.Store.Grades().ListGradesByAssignment(ctx, assignmentID)
}

func (s *GradeService) ListGradesByStudent(ctx context.Context, studentID int64) ([]domain.AssignmentGrade, error) {
	return s.Store.Grades().ListGradesByStudent(ctx, studentID)
}

// GPA is the mean of every grade the student holds, 0 when there are none.
func (s *GradeService) GPA(ctx context.Context, studentID int64) (float64, error) {
	grades, err := s.Store.Grades().ListGradesByStudent(ctx, studentID)
	if err != nil {
		return 0, err
	}
	if len(grades) == 0 {
		return 0, nil
	}

	var sum float64
	for _, g := range grades {
		sum += g.Grade
	}
	return sum / float64(len(grades)), nil
}
