package service

import (
	"context"
	"log/slog"

	"github.com/aussiebroadwan/campus/internal/campus/domain"
	"github.com/aussiebroadwan/campus/internal/campus/store"
	"github.com/aussiebroadwan/campus/pkg/slogx"
)

// CourseService manages courses and who is enrolled in them. Methods that
// return a pointer yield nil, nil when a referenced entity is missing.
type CourseService struct {
	Store store.Store
}

// CreateCourse adds a course taught by facultyID, which must be a Faculty
// user.
func (s *CourseService) CreateCourse(ctx context.Context, name string, facultyID int64) (*domain.Course, error) {
	faculty, err := userWithRole(ctx, s.Store, facultyID, domain.RoleFaculty)
	if err != nil || faculty == nil {
		return nil, err
	}

	c, err := s.Store.Courses().CreateCourse(ctx, domain.Course{Name: name, FacultyID: faculty.ID})
	if err != nil {
		return nilOnNotFound[domain.Course](err)
	}

	slogx.FromContext(ctx).Info("course created",
		slog.Int64("course_id", c.ID),
		slog.Int64("faculty_id", c.FacultyID),
	)
	return &c, nil
}

func (s *CourseService) GetCourse(ctx context.Context, id int64) (*domain.Course, error) {
	c, err := s.Store.Courses().GetCourseByID(ctx, id)
	if err != nil {
		return nilOnNotFound[domain.Course](err)
	}
	return &c, nil
}

func (s *CourseService) ListCourses(ctx context.Context) ([]domain.Course, error) {
	return s.Store.Courses().ListCourses(ctx)
}

func (s *CourseService) ListCoursesByFaculty(ctx context.Context, facultyID int64) ([]domain.Course, error) {
	return s.Store.Courses().ListCoursesByFaculty(ctx, facultyID)
}

func (s *CourseService) ListCoursesByStudent(ctx context.Context, studentID int64) ([]domain.Course, error) {
	return s.Store.Enrollments().ListCourses(ctx, studentID)
}

func (s *CourseService) ListStudents(ctx context.Context, courseID int64) ([]domain.User, error) {
	users, err := s.Store.Enrollments().ListStudents(ctx, courseID)
	return publicUsers(users), err
}

// DeleteCourse removes the course with its enrollments, assignments and
// grades, and returns what was removed.
func (s *CourseService) DeleteCourse(ctx context.Context, id int64) (*domain.Course, error) {
	c, err := s.Store.Courses().DeleteCourse(ctx, id)
	if err != nil {
		return nilOnNotFound[domain.Course](err)
	}
	slogx.FromContext(ctx).Info("course deleted", slog.Int64("course_id", c.ID))
	return &c, nil
}

// AddStudent enrolls studentID in courseID. It returns nil when either is
// missing or the student is already enrolled.
func (s *CourseService) AddStudent(ctx context.Context, courseID, studentID int64) (*domain.Course, error) {
	student, err := userWithRole(ctx, s.Store, studentID, domain.RoleStudent)
	if err != nil || student == nil {
		return nil, err
	}

	if err := s.Store.Enrollments().Enroll(ctx, courseID, student.ID); err != nil {
		return nilOnNotFound[domain.Course](err)
	}
	return s.GetCourse(ctx, courseID)
}

// RemoveStudent withdraws studentID from courseID. It returns nil when the
// student was not enrolled.
func (s *CourseService) RemoveStudent(ctx context.Context, courseID, studentID int64) (*domain.Course, error) {
	student, err := userWithRole(ctx, s.Store, studentID, domain.RoleStudent)
	if err != nil || student == nil {
		return nil, err
	}

	course, err := s.GetCourse(ctx, courseID)
	if err != nil || course == nil {
		return nil, err
	}

	if err := s.Store.Enrollments().Unenroll(ctx, course.ID, student.ID); err != nil {
		return nilOnNotFound[domain.Course](err)
	}
	return course, nil
}
