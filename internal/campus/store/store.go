package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/campus/internal/campus/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
	ErrClosed        = errors.New("store: closed")
)

// Store is the root data access interface. It exposes one sub-repository per
// collection so services only see the operations they need. Drivers must make
// every method safe for concurrent use.
type Store interface {
	Users() Users
	Courses() Courses
	Enrollments() Enrollments
	Assignments() Assignments
	Grades() Grades
	Sessions() Sessions

	// Close releases the store. Later calls fail with ErrClosed.
	Close() error

	// Ping reports whether the store is still usable.
	Ping(ctx context.Context) error
}

type Users interface {
	// CreateUser assigns the next user id and inserts u.
	CreateUser(ctx context.Context, u domain.User) (domain.User, error)

	GetUserByID(ctx context.Context, id int64) (domain.User, error)

	// GetUserByEmail returns the earliest registered user with that email.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// ListUsers returns every user in registration order.
	ListUsers(ctx context.Context) ([]domain.User, error)

	// ListUsersByRole returns the users with role r in registration order.
	ListUsersByRole(ctx context.Context, r domain.Role) ([]domain.User, error)
}

type Courses interface {
	// CreateCourse assigns the next course id and inserts c. It fails with
	// ErrNotFound when the faculty user does not exist.
	CreateCourse(ctx context.Context, c domain.Course) (domain.Course, error)

	GetCourseByID(ctx context.Context, id int64) (domain.Course, error)

	ListCourses(ctx context.Context) ([]domain.Course, error)

	ListCoursesByFaculty(ctx context.Context, facultyID int64) ([]domain.Course, error)

	// DeleteCourse removes the course together with its enrollments,
	// assignments and their grades, and returns the removed course.
	DeleteCourse(ctx context.Context, id int64) (domain.Course, error)
}

type Enrollments interface {
	// Enroll records studentID in courseID. ErrNotFound when either side is
	// missing, ErrAlreadyExists when the student is already enrolled.
	Enroll(ctx context.Context, courseID, studentID int64) error

	// Unenroll removes the enrollment, ErrNotFound when there is none.
	Unenroll(ctx context.Context, courseID, studentID int64) error

	// ListStudents returns the students of a course in enrollment order.
	ListStudents(ctx context.Context, courseID int64) ([]domain.User, error)

	// ListCourses returns the courses a student takes in enrollment order.
	ListCourses(ctx context.Context, studentID int64) ([]domain.Course, error)
}

type Assignments interface {
	// CreateAssignment fails with ErrNotFound when the course is missing.
	CreateAssignment(ctx context.Context, a domain.Assignment) (domain.Assignment, error)

	GetAssignmentByID(ctx context.Context, id int64) (domain.Assignment, error)

	ListAssignmentsByCourse(ctx context.Context, courseID int64) ([]domain.Assignment, error)

	// DeleteAssignment removes the assignment and its grades.
	DeleteAssignment(ctx context.Context, id int64) (domain.Assignment, error)
}

type Grades interface {
	// CreateGrade fails with ErrNotFound when the assignment or the student
	// is missing.
	CreateGrade(ctx context.Context, g domain.AssignmentGrade) (domain.AssignmentGrade, error)

	ListGradesByAssignment(ctx context.Context, assignmentID int64) ([]domain.AssignmentGrade, error)

	ListGradesByStudent(ctx context.Context, studentID int64) ([]domain.AssignmentGrade, error)
}

type Sessions interface {
	// CreateSession allocates the next session id. Ids start at 0 and are
	// never reused for the lifetime of the store.
	CreateSession(ctx context.Context, userID int64) (domain.Session, error)

	GetSession(ctx context.Context, id int64) (domain.Session, error)

	// DeleteSession removes the session and reports whether it was there.
	// Deleting a missing session is not an error.
	DeleteSession(ctx context.Context, id int64) (bool, error)
}
