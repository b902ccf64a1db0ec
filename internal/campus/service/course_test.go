package service

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/campus/internal/campus/domain"
	"github.com/stretchr/testify/require"
)

func TestCourseService(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("create requires a faculty member", func(t *testing.T) {
		e := newTestEnv(t)
		f := e.mustCreateUser(t, "prof", domain.RoleFaculty, "pw")
		s := e.mustCreateUser(t, "stud", domain.RoleStudent, "pw")

		c, err := e.courses.CreateCourse(ctx, "Algebra", s.ID)
		require.NoError(t, err)
		require.Nil(t, c)

		c, err = e.courses.CreateCourse(ctx, "Algebra", 404)
		require.NoError(t, err)
		require.Nil(t, c)

		c, err = e.courses.CreateCourse(ctx, "Algebra", f.ID)
		require.NoError(t, err)
		require.NotNil(t, c)
		require.Equal(t, "Algebra", c.Name)
		require.Equal(t, f.ID, c.FacultyID)

		mine, err := e.courses.ListCoursesByFaculty(ctx, f.ID)
		require.NoError(t, err)
		require.Equal(t, []domain.Course{*c}, mine)
	})

	t.Run("enrollment", func(t *testing.T) {
		e := newTestEnv(t)
		f := e.mustCreateUser(t, "prof", domain.RoleFaculty, "pw")
		s := e.mustCreateUser(t, "stud", domain.RoleStudent, "pw")
		c, err := e.courses.CreateCourse(ctx, "Biology", f.ID)
		require.NoError(t, err)

		got, err := e.courses.AddStudent(ctx, c.ID, s.ID)
		require.NoError(t, err)
		require.Equal(t, c, got)

		got, err = e.courses.AddStudent(ctx, c.ID, s.ID)
		require.NoError(t, err)
		require.Nil(t, got, "already enrolled")

		got, err = e.courses.AddStudent(ctx, c.ID, f.ID)
		require.NoError(t, err)
		require.Nil(t, got, "faculty cannot enroll")

		got, err = e.courses.AddStudent(ctx, 404, s.ID)
		require.NoError(t, err)
		require.Nil(t, got)

		students, err := e.courses.ListStudents(ctx, c.ID)
		require.NoError(t, err)
		require.Equal(t, []domain.User{s}, students)

		taking, err := e.courses.ListCoursesByStudent(ctx, s.ID)
		require.NoError(t, err)
		require.Equal(t, []domain.Course{*c}, taking)

		got, err = e.courses.RemoveStudent(ctx, c.ID, s.ID)
		require.NoError(t, err)
		require.Equal(t, c, got)

		got, err = e.courses.RemoveStudent(ctx, c.ID, s.ID)
		require.NoError(t, err)
		require.Nil(t, got, "no longer enrolled")

		students, err = e.courses.ListStudents(ctx, c.ID)
		require.NoError(t, err)
		require.Empty(t, students)
	})

	t.Run("delete cascades", func(t *testing.T) {
		e := newTestEnv(t)
		f := e.mustCreateUser(t, "prof", domain.RoleFaculty, "pw")
		s := e.mustCreateUser(t, "stud", domain.RoleStudent, "pw")
		c, err := e.courses.CreateCourse(ctx, "History", f.ID)
		require.NoError(t, err)
		_, err = e.courses.AddStudent(ctx, c.ID, s.ID)
		require.NoError(t, err)
		a, err := e.assignments.CreateAssignment(ctx, c.ID, "essay")
		require.NoError(t, err)
		_, err = e.grades.CreateGrade(ctx, a.ID, s.ID, 75)
		require.NoError(t, err)

		removed, err := e.courses.DeleteCourse(ctx, c.ID)
		require.NoError(t, err)
		require.Equal(t, c, removed)

		taking, err := e.courses.ListCoursesByStudent(ctx, s.ID)
		require.NoError(t, err)
		require.Empty(t, taking)

		gpa, err := e.grades.GPA(ctx, s.ID)
		require.NoError(t, err)
		require.Zero(t, gpa)

		removed, err = e.courses.DeleteCourse(ctx, c.ID)
		require.NoError(t, err)
		require.Nil(t, removed)
	})
}

func TestAssignmentsAndGrades(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	e := newTestEnv(t)
	f := e.mustCreateUser(t, "prof", domain.RoleFaculty, "pw")
	s := e.mustCreateUser(t, "stud", domain.RoleStudent, "pw")
	c, err := e.courses.CreateCourse(ctx, "Art", f.ID)
	require.NoError(t, err)

	missing, err := e.assignments.CreateAssignment(ctx, 404, "nope")
	require.NoError(t, err)
	require.Nil(t, missing)

	a1, err := e.assignments.CreateAssignment(ctx, c.ID, "sketch")
	require.NoError(t, err)
	a2, err := e.assignments.CreateAssignment(ctx, c.ID, "painting")
	require.NoError(t, err)

	list, err := e.assignments.ListAssignments(ctx, c.ID)
	require.NoError(t, err)
	require.Equal(t, []domain.Assignment{*a1, *a2}, list)

	gpa, err := e.grades.GPA(ctx, s.ID)
	require.NoError(t, err)
	require.Zero(t, gpa, "no grades yet")

	g, err := e.grades.CreateGrade(ctx, a1.ID, f.ID, 90)
	require.NoError(t, err)
	require.Nil(t, g, "only students are graded")

	g, err = e.grades.CreateGrade(ctx, 404, s.ID, 90)
	require.NoError(t, err)
	require.Nil(t, g)

	g1, err := e.grades.CreateGrade(ctx, a1.ID, s.ID, 90)
	require.NoError(t, err)
	require.Equal(t, 90.0, g1.Grade)
	_, err = e.grades.CreateGrade(ctx, a2.ID, s.ID, 70)
	require.NoError(t, err)

	gpa, err = e.grades.GPA(ctx, s.ID)
	require.NoError(t, err)
	require.InDelta(t, 80.0, gpa, 1e-9)

	byAssignment, err := e.grades.ListGradesByAssignment(ctx, a1.ID)
	require.NoError(t, err)
	require.Equal(t, []domain.AssignmentGrade{*g1}, byAssignment)

	removed, err := e.assignments.DeleteAssignment(ctx, a1.ID)
	require.NoError(t, err)
	require.Equal(t, a1, removed)

	gpa, err = e.grades.GPA(ctx, s.ID)
	require.NoError(t, err)
	require.InDelta(t, 70.0, gpa, 1e-9)

	got, err := e.assignments.GetAssignment(ctx, a1.ID)
	require.NoError(t, err)
	require.Nil(t, got)

	removed, err = e.assignments.DeleteAssignment(ctx, a1.ID)
	require.NoError(t, err)
	require.Nil(t, removed)
}
