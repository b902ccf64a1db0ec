package graph

import (
	"fmt"

	"github.com/graphql-go/graphql"

	"github.com/aussiebroadwan/campus/internal/campus/domain"
)

func (b *builder) queryFields() graphql.Fields {
	r := b.r
	return graphql.Fields{
		"hello": &graphql.Field{
			Type: graphql.String,
			Args: graphql.FieldConfigArgument{
				"name": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: func(p graphql.ResolveParams) (any, error) {
				return fmt.Sprintf("Hello %s!", argString(p.Args, "name")), nil
			},
		},
		"currentUser": &graphql.Field{
			Type: b.user,
			Resolve: r.Gate(func(p graphql.ResolveParams) (any, error) {
				principal, _ := PrincipalFromContext(p.Context)
				return principal.User, nil
			}),
		},
		"users": &graphql.Field{
			Type: graphql.NewList(b.user),
			Resolve: r.Gate(func(p graphql.ResolveParams) (any, error) {
				return r.Users.ListUsers(p.Context)
			}),
		},
		"students": &graphql.Field{
			Type: graphql.NewList(b.student),
			Resolve: r.Gate(func(p graphql.ResolveParams) (any, error) {
				return r.Users.ListUsersByRole(p.Context, domain.RoleStudent)
			}),
		},
		"faculties": &graphql.Field{
			Type: graphql.NewList(b.faculty),
			Resolve: r.Gate(func(p graphql.ResolveParams) (any, error) {
				return r.Users.ListUsersByRole(p.Context, domain.RoleFaculty)
			}),
		},
		"student": &graphql.Field{
			Type: b.student,
			Args: lookupArgs(),
			Resolve: r.Gate(func(p graphql.ResolveParams) (any, error) {
				return orNull(r.Users.FindUser(p.Context, domain.RoleStudent, optString(p.Args, "email"), optID(p.Args, "id")))
			}),
		},
		"faculty": &graphql.Field{
			Type: b.faculty,
			Args: lookupArgs(),
			Resolve: r.Gate(func(p graphql.ResolveParams) (any, error) {
				return orNull(r.Users.FindUser(p.Context, domain.RoleFaculty, optString(p.Args, "email"), optID(p.Args, "id")))
			}),
		},
		"courses": &graphql.Field{
			Type: graphql.NewList(b.course),
			Resolve: r.Gate(func(p graphql.ResolveParams) (any, error) {
				return r.Courses.ListCourses(p.Context)
			}),
		},
		"course": &graphql.Field{
			Type: b.course,
			Args: idArgs("id"),
			Resolve: r.Gate(func(p graphql.ResolveParams) (any, error) {
				id, ok := argID(p.Args, "id")
				if !ok {
					return nil, nil
				}
				return orNull(r.Courses.GetCourse(p.Context, id))
			}),
		},
	}
}

func (b *builder) mutationFields() graphql.Fields {
	r := b.r
	return graphql.Fields{
		"login": &graphql.Field{
			Type: b.authPayload,
			Args: graphql.FieldConfigArgument{
				"email":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: func(p graphql.ResolveParams) (any, error) {
				res, err := r.Auth.Login(p.Context, argString(p.Args, "email"), argString(p.Args, "password"))
				if err != nil {
					return nil, err
				}
				return res, nil
			},
		},
		"logout": &graphql.Field{
			Type: graphql.Boolean,
			Resolve: r.Gate(func(p graphql.ResolveParams) (any, error) {
				principal, _ := PrincipalFromContext(p.Context)
				return r.Auth.Logout(p.Context, principal)
			}),
		},
		"createUser": &graphql.Field{
			Type: b.user,
			Args: graphql.FieldConfigArgument{
				"name":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"email":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"role":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(b.role)},
				"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: r.Gate(func(p graphql.ResolveParams) (any, error) {
				role, err := argRole(p.Args, "role")
				if err != nil {
					return nil, err
				}
				u, err := r.Users.CreateUser(p.Context, domain.NewUser{
					Name:     argString(p.Args, "name"),
					Email:    argString(p.Args, "email"),
					Role:     role,
					Password: argString(p.Args, "password"),
				})
				if err != nil {
					return nil, err
				}
				return u, nil
			}, domain.RoleAdmin),
		},
		"createCourse": &graphql.Field{
			Type: b.course,
			Args: graphql.FieldConfigArgument{
				"name":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"facultyID": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
			},
			Resolve: r.Gate(func(p graphql.ResolveParams) (any, error) {
				facultyID, ok := argID(p.Args, "facultyID")
				if !ok {
					return nil, nil
				}
				return orNull(r.Courses.CreateCourse(p.Context, argString(p.Args, "name"), facultyID))
			}, staff...),
		},
		"deleteCourse": &graphql.Field{
			Type: b.course,
			Args: idArgs("courseID"),
			Resolve: r.Gate(func(p graphql.ResolveParams) (any, error) {
				id, ok := argID(p.Args, "courseID")
				if !ok {
					return nil, nil
				}
				return orNull(r.Courses.DeleteCourse(p.Context, id))
			}, staff...),
		},
		"addCourseStudent": &graphql.Field{
			Type: b.course,
			Args: idArgs("courseID", "studentID"),
			Resolve: r.Gate(func(p graphql.ResolveParams) (any, error) {
				courseID, ok1 := argID(p.Args, "courseID")
				studentID, ok2 := argID(p.Args, "studentID")
				if !ok1 || !ok2 {
					return nil, nil
				}
				return orNull(r.Courses.AddStudent(p.Context, courseID, studentID))
			}, staff...),
		},
		"deleteCourseStudent": &graphql.Field{
			Type: b.course,
			Args: idArgs("courseID", "studentID"),
			Resolve: r.Gate(func(p graphql.ResolveParams) (any, error) {
				courseID, ok1 := argID(p.Args, "courseID")
				studentID, ok2 := argID(p.Args, "studentID")
				if !ok1 || !ok2 {
					return nil, nil
				}
				return orNull(r.Courses.RemoveStudent(p.Context, courseID, studentID))
			}, staff...),
		},
		"createAssignment": &graphql.Field{
			Type: b.assignment,
			Args: graphql.FieldConfigArgument{
				"courseID": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				"name":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: r.Gate(func(p graphql.ResolveParams) (any, error) {
				courseID, ok := argID(p.Args, "courseID")
				if !ok {
					return nil, nil
				}
				return orNull(r.Assignments.CreateAssignment(p.Context, courseID, argString(p.Args, "name")))
			}, staff...),
		},
		"deleteAssignment": &graphql.Field{
			Type: b.assignment,
			Args: idArgs("assignmentID"),
			Resolve: r.Gate(func(p graphql.ResolveParams) (any, error) {
				id, ok := argID(p.Args, "assignmentID")
				if !ok {
					return nil, nil
				}
				return orNull(r.Assignments.DeleteAssignment(p.Context, id))
			}, staff...),
		},
		"createAssignmentGrade": &graphql.Field{
			Type: b.grade,
			Args: graphql.FieldConfigArgument{
				"assignmentID": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				"studentID":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				"grade":        &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Float)},
			},
			Resolve: r.Gate(func(p graphql.ResolveParams) (any, error) {
				assignmentID, ok1 := argID(p.Args, "assignmentID")
				studentID, ok2 := argID(p.Args, "studentID")
				grade, ok3 := argFloat(p.Args, "grade")
				if !ok1 || !ok2 || !ok3 {
					return nil, nil
				}
				return orNull(r.Grades.CreateGrade(p.Context, assignmentID, studentID, grade))
			}, staff...),
		},
	}
}

func lookupArgs() graphql.FieldConfigArgument {
	return graphql.FieldConfigArgument{
		"email": &graphql.ArgumentConfig{Type: graphql.String},
		"id":    &graphql.ArgumentConfig{Type: graphql.ID},
	}
}

func idArgs(names ...string) graphql.FieldConfigArgument {
	args := make(graphql.FieldConfigArgument, len(names))
	for _, n := range names {
		args[n] = &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)}
	}
	return args
}
