package graph

import (
	"github.com/graphql-go/graphql"

	"github.com/aussiebroadwan/campus/internal/campus/domain"
)

func (b *builder) userFields() graphql.Fields {
	return graphql.Fields{
		"id": &graphql.Field{
			Type: graphql.NewNonNull(graphql.ID),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				u, _ := source[domain.User](p.Source)
				return formatID(u.ID), nil
			},
		},
		"name": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				u, _ := source[domain.User](p.Source)
				return u.Name, nil
			},
		},
		"email": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				u, _ := source[domain.User](p.Source)
				return u.Email, nil
			},
		},
		"role": &graphql.Field{
			Type: graphql.NewNonNull(b.role),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				u, _ := source[domain.User](p.Source)
				return u.Role, nil
			},
		},
	}
}

func (b *builder) studentFields() graphql.Fields {
	f := b.userFields()
	f["courses"] = &graphql.Field{
		Type: graphql.NewList(b.course),
		Resolve: func(p graphql.ResolveParams) (any, error) {
			u, _ := source[domain.User](p.Source)
			return b.r.Courses.ListCoursesByStudent(p.Context, u.ID)
		},
	}
	f["gpa"] = &graphql.Field{
		Type: graphql.NewNonNull(graphql.Float),
		Resolve: func(p graphql.ResolveParams) (any, error) {
			u, _ := source[domain.User](p.Source)
			return b.r.Grades.GPA(p.Context, u.ID)
		},
	}
	f["grades"] = &graphql.Field{
		Type: graphql.NewList(b.grade),
		Resolve: func(p graphql.ResolveParams) (any, error) {
			u, _ := source[domain.User](p.Source)
			return b.r.Grades.ListGradesByStudent(p.Context, u.ID)
		},
	}
	return f
}

func (b *builder) facultyFields() graphql.Fields {
	f := b.userFields()
	f["courses"] = &graphql.Field{
		Type: graphql.NewList(b.course),
		Resolve: func(p graphql.ResolveParams) (any, error) {
			u, _ := source[domain.User](p.Source)
			return b.r.Courses.ListCoursesByFaculty(p.Context, u.ID)
		},
	}
	return f
}

func (b *builder) courseFields() graphql.Fields {
	return graphql.Fields{
		"id": &graphql.Field{
			Type: graphql.NewNonNull(graphql.ID),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				c, _ := source[domain.Course](p.Source)
				return formatID(c.ID), nil
			},
		},
		"name": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				c, _ := source[domain.Course](p.Source)
				return c.Name, nil
			},
		},
		"professor": &graphql.Field{
			Type: b.faculty,
			Resolve: func(p graphql.ResolveParams) (any, error) {
				c, _ := source[domain.Course](p.Source)
				return orNull(b.r.Users.GetUserByID(p.Context, c.FacultyID))
			},
		},
		"students": &graphql.Field{
			Type: graphql.NewList(b.student),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				c, _ := source[domain.Course](p.Source)
				return b.r.Courses.ListStudents(p.Context, c.ID)
			},
		},
		"assignments": &graphql.Field{
			Type: graphql.NewList(b.assignment),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				c, _ := source[domain.Course](p.Source)
				return b.r.Assignments.ListAssignments(p.Context, c.ID)
			},
		},
	}
}

func (b *builder) assignmentFields() graphql.Fields {
	return graphql.Fields{
		"id": &graphql.Field{
			Type: graphql.NewNonNull(graphql.ID),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				a, _ := source[domain.Assignment](p.Source)
				return formatID(a.ID), nil
			},
		},
		"name": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				a, _ := source[domain.Assignment](p.Source)
				return a.Name, nil
			},
		},
		"course": &graphql.Field{
			Type: b.course,
			Resolve: func(p graphql.ResolveParams) (any, error) {
				a, _ := source[domain.Assignment](p.Source)
				return orNull(b.r.Courses.GetCourse(p.Context, a.CourseID))
			},
		},
		"grades": &graphql.Field{
			Type: graphql.NewList(b.grade),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				a, _ := source[domain.Assignment](p.Source)
				return b.r.Grades.ListGradesByAssignment(p.Context, a.ID)
			},
		},
	}
}

func (b *builder) gradeFields() graphql.Fields {
	return graphql.Fields{
		"id": &graphql.Field{
			Type: graphql.NewNonNull(graphql.ID),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				g, _ := source[domain.AssignmentGrade](p.Source)
				return formatID(g.ID), nil
			},
		},
		"assignment": &graphql.Field{
			Type: b.assignment,
			Resolve: func(p graphql.ResolveParams) (any, error) {
				g, _ := source[domain.AssignmentGrade](p.Source)
				return orNull(b.r.Assignments.GetAssignment(p.Context, g.AssignmentID))
			},
		},
		"student": &graphql.Field{
			Type: b.student,
			Resolve: func(p graphql.ResolveParams) (any, error) {
				g, _ := source[domain.AssignmentGrade](p.Source)
				return orNull(b.r.Users.GetUserByID(p.Context, g.StudentID))
			},
		},
		"grade": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Float),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				g, _ := source[domain.AssignmentGrade](p.Source)
				return g.Grade, nil
			},
		},
	}
}
