package memory

import (
	"context"

	"github.com/aussiebroadwan/campus/internal/campus/domain"
	"github.com/aussiebroadwan/campus/internal/campus/store"
)

type enrollmentsRepo struct {
	s *Store
}

func (r *enrollmentsRepo) Enroll(ctx context.Context, courseID, studentID int64) error {
	return r.s.write(ctx, func() error {
		if _, ok := r.s.courses[courseID]; !ok {
			return store.ErrNotFound
		}
		if _, ok := r.s.users[studentID]; !ok {
			return store.ErrNotFound
		}

		key := enrollmentKey{courseID: courseID, studentID: studentID}
		if _, ok := r.s.enrollments[key]; ok {
			return store.ErrAlreadyExists
		}

		r.s.enrollments[key] = domain.Enrollment{
			CourseID:  courseID,
			StudentID: studentID,
			Seq:       r.s.nextEnrollSeq,
		}
		r.s.nextEnrollSeq++
		return nil
	})
}

func (r *enrollmentsRepo) Unenroll(ctx context.Context, courseID, studentID int64) error {
	return r.s.write(ctx, func() error {
		key := enrollmentKey{courseID: courseID, studentID: studentID}
		if _, ok := r.s.enrollments[key]; !ok {
			return store.ErrNotFound
		}
		delete(r.s.enrollments, key)
		return nil
	})
}

func (r *enrollmentsRepo) ListStudents(ctx context.Context, courseID int64) ([]domain.User, error) {
	var out []domain.User
	err := r.s.read(ctx, func() error {
		rows := sortedEnrollments(r.s.enrollments, func(e domain.Enrollment) bool {
			return e.CourseID == courseID
		})
		out = make([]domain.User, 0, len(rows))
		for _, e := range rows {
			if u, ok := r.s.users[e.StudentID]; ok {
				out = append(out, u)
			}
		}
		return nil
	})
	return out, err
}

func (r *enrollmentsRepo) ListCourses(ctx context.Context, studentID int64) ([]domain.Course, error) {
	var out []domain.Course
	err := r.s.read(ctx, func() error {
		rows := sortedEnrollments(r.s.enrollments, func(e domain.Enrollment) bool {
			return e.StudentID == studentID
		})
		out = make([]domain.Course, 0, len(rows))
		for _, e := range rows {
			if c, ok := r.s.courses[e.CourseID]; ok {
				out = append(out, c)
			}
		}
		return nil
	})
	return out, err
}
