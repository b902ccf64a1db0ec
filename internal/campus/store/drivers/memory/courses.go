package memory

import (
	"context"

	"github.com/aussiebroadwan/campus/internal/campus/domain"
	"github.com/aussiebroadwan/campus/internal/campus/store"
)

type coursesRepo struct {
	s *Store
}

func (r *coursesRepo) CreateCourse(ctx context.Context, c domain.Course) (domain.Course, error) {
	err := r.s.write(ctx, func() error {
		if _, ok := r.s.users[c.FacultyID]; !ok {
			return store.ErrNotFound
		}
		c.ID = r.s.nextCourseID
		r.s.nextCourseID++
		r.s.courses[c.ID] = c
		return nil
	})
	if err != nil {
		return domain.Course{}, err
	}
	return c, nil
}

func (r *coursesRepo) GetCourseByID(ctx context.Context, id int64) (domain.Course, error) {
	var c domain.Course
	err := r.s.read(ctx, func() error {
		found, ok := r.s.courses[id]
		if !ok {
			return store.ErrNotFound
		}
		c = found
		return nil
	})
	return c, err
}

func (r *coursesRepo) ListCourses(ctx context.Context) ([]domain.Course, error) {
	var out []domain.Course
	err := r.s.read(ctx, func() error {
		out = sortedByID(r.s.courses, nil)
		return nil
	})
	return out, err
}

func (r *coursesRepo) ListCoursesByFaculty(ctx context.Context, facultyID int64) ([]domain.Course, error) {
	var out []domain.Course
	err := r.s.read(ctx, func() error {
		out = sortedByID(r.s.courses, func(c domain.Course) bool { return c.FacultyID == facultyID })
		return nil
	})
	return out, err
}

func (r *coursesRepo) DeleteCourse(ctx context.Context, id int64) (domain.Course, error) {
	var c domain.Course
	err := r.s.write(ctx, func() error {
		found, ok := r.s.courses[id]
		if !ok {
			return store.ErrNotFound
		}
		c = found

		delete(r.s.courses, id)
		for key := range r.s.enrollments {
			if key.courseID == id {
				delete(r.s.enrollments, key)
			}
		}
		for aid, a := range r.s.assignments {
			if a.CourseID == id {
				r.s.deleteAssignmentLocked(aid)
			}
		}
		return nil
	})
	return c, err
}
