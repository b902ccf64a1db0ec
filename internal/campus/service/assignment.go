package service

import (
	"context"
	"log/slog"

	"github.com/aussiebroadwan/campus/internal/campus/domain"
	"github.com/aussiebroadwan/campus/internal/campus/store"
	"github.com/aussiebroadwan/campus/pkg/slogx"
)

type AssignmentService struct {
	Store store.Store
}

// CreateAssignment adds an assignment to courseID, or returns nil when the
// course does not exist.
func (s *AssignmentService) CreateAssignment(ctx context.Context, courseID int64, name string) (*domain.Assignment, error) {
	a, err := s.Store.Assignments().CreateAssignment(ctx, domain.Assignment{CourseID: courseID, Name: name})
	if err != nil {
		return nilOnNotFound[domain.Assignment](err)
	}
	slogx.FromContext(ctx).Info("assignment created",
		slog.Int64("assignment_id", a.ID),
		slog.Int64("course_id", a.CourseID),
	)
	return &a, nil
}

func (s *AssignmentService) GetAssignment(ctx context.Context, id int64) (*domain.Assignment, error) {
	a, err := s.Store.Assignments().GetAssignmentByID(ctx, id)
	if err != nil {
		return nilOnNotFound[domain.Assignment](err)
	}
	return &a, nil
}

func (s *AssignmentService) ListAssignments(ctx context.Context, courseID int64) ([]domain.Assignment, error) {
	return s.Store.Assignments().ListAssignmentsByCourse(ctx, courseID)
}

// DeleteAssignment removes the assignment and its grades.
func (s *AssignmentService) DeleteAssignment(ctx context.Context, id int64) (*domain.Assignment, error) {
	a, err := s.Store.Assignments().DeleteAssignment(ctx, id)
	if err != nil {
		return nilOnNotFound[domain.Assignment](err)
	}
	slogx.FromContext(ctx).Info("assignment deleted", slog.Int64("assignment_id", a.ID))
	return &a, nil
}
