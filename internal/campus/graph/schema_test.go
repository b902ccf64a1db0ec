package graph

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/graphql-go/graphql"
	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/campus/internal/campus/domain"
	"github.com/aussiebroadwan/campus/internal/campus/service"
	"github.com/aussiebroadwan/campus/internal/campus/store/drivers/memory"
	"github.com/aussiebroadwan/campus/pkg/httpx"
	"github.com/aussiebroadwan/campus/pkg/jwtx"
)

type harness struct {
	schema *Schema
	users  *service.UserService
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	st := memory.NewStore()
	codec, err := jwtx.NewCodec([]byte("graph-test-secret"), "campus-test")
	require.NoError(t, err)

	sessions := &service.SessionService{Store: st, Codec: codec, TTL: jwtx.DefaultTokenTTL}
	r := &Resolver{
		Auth:        &service.AuthService{Store: st, Codec: codec, Sessions: sessions},
		Users:       &service.UserService{Store: st},
		Courses:     &service.CourseService{Store: st},
		Assignments: &service.AssignmentService{Store: st},
		Grades:      &service.GradeService{Store: st},
	}

	s, err := NewSchema(r)
	require.NoError(t, err)

	h := &harness{schema: s, users: r.Users}
	h.addUser(t, "Root", "root@campus.test", domain.RoleAdmin, "rootpw")
	return h
}

func (h *harness) addUser(t *testing.T, name, email string, role domain.Role, password string) domain.User {
	t.Helper()
	u, err := h.users.CreateUser(context.Background(), domain.NewUser{Name: name, Email: email, Role: role, Password: password})
	require.NoError(t, err)
	return u
}

func (h *harness) exec(token, query string, vars map[string]any) *graphql.Result {
	ctx := context.Background()
	if token != "" {
		ctx = httpx.ContextWithToken(ctx, token)
	}
	return h.schema.Execute(ctx, Request{Query: query, Variables: vars})
}

// run executes query and decodes the data into out, failing on any error.
func (h *harness) run(t *testing.T, token, query string, vars map[string]any, out any) {
	t.Helper()
	res := h.exec(token, query, vars)
	require.False(t, res.HasErrors(), "unexpected errors: %v", res.Errors)
	decode(t, res.Data, out)
}

func (h *harness) login(t *testing.T, email, password string) string {
	t.Helper()
	var out struct {
		Login struct {
			Token string `json:"token"`
		} `json:"login"`
	}
	h.run(t, "", `mutation($e: String!, $p: String!) { login(email: $e, password: $p) { token } }`,
		map[string]any{"e": email, "p": password}, &out)
	require.NotEmpty(t, out.Login.Token)
	return out.Login.Token
}

func decode(t *testing.T, data any, out any) {
	t.Helper()
	raw, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out))
}

func requireGraphQLError(t *testing.T, res *graphql.Result, message, code string) {
	t.Helper()
	require.Len(t, res.Errors, 1)
	require.Equal(t, message, res.Errors[0].Message)
	require.Equal(t, code, res.Errors[0].Extensions["code"])
}

func TestHello(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	var out struct {
		Hello string `json:"hello"`
	}
	h.run(t, "", `{ hello(name: "campus") }`, nil, &out)
	require.Equal(t, "Hello campus!", out.Hello)
}

func TestGatedFieldsNeedAToken(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	for _, q := range []string{
		`{ currentUser { id } }`,
		`{ users { id } }`,
		`{ courses { id } }`,
		`mutation { logout }`,
		`mutation { createCourse(name: "x", facultyID: "0") { id } }`,
	} {
		res := h.exec("", q, nil)
		requireGraphQLError(t, res, "Token Required", "UNAUTHENTICATED")
	}

	res := h.exec("garbage", `{ currentUser { id } }`, nil)
	requireGraphQLError(t, res, "Bad Token", "UNAUTHENTICATED")
}

func TestLoginFailures(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	res := h.exec("", `mutation { login(email: "ghost@campus.test", password: "x") { token } }`, nil)
	requireGraphQLError(t, res, "User not Found", "UNAUTHENTICATED")

	res = h.exec("", `mutation { login(email: "root@campus.test", password: "nope") { token } }`, nil)
	requireGraphQLError(t, res, "Bad Login or Password", "UNAUTHENTICATED")
}

func TestCreateUserThenLogin(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	admin := h.login(t, "root@campus.test", "rootpw")

	var created struct {
		CreateUser struct {
			ID       string `json:"id"`
			Name     string `json:"name"`
			Role     string `json:"role"`
			Typename string `json:"__typename"`
		} `json:"createUser"`
	}
	h.run(t, admin, `mutation {
		createUser(name: "X", email: "x@y", role: Student, password: "pw") { id name role __typename }
	}`, nil, &created)
	require.Equal(t, "X", created.CreateUser.Name)
	require.Equal(t, "Student", created.CreateUser.Role)
	require.Equal(t, "Student", created.CreateUser.Typename)

	var login struct {
		Login struct {
			Token string         `json:"token"`
			User  map[string]any `json:"user"`
		} `json:"login"`
	}
	h.run(t, "", `mutation { login(email: "x@y", password: "pw") { token user { id name email role } } }`, nil, &login)
	require.NotEmpty(t, login.Login.Token)
	require.Equal(t, map[string]any{
		"id":    created.CreateUser.ID,
		"name":  "X",
		"email": "x@y",
		"role":  "Student",
	}, login.Login.User)

	res := h.exec("", `mutation { login(email: "x@y", password: "pw") { user { salt } } }`, nil)
	require.True(t, res.HasErrors(), "credential fields are not part of the schema")
}

func TestCreateUserIsAdminOnly(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	h.addUser(t, "Prof", "prof@campus.test", domain.RoleFaculty, "pw")
	faculty := h.login(t, "prof@campus.test", "pw")

	res := h.exec(faculty, `mutation { createUser(name: "Y", email: "y@z", role: Admin, password: "pw") { id } }`, nil)
	requireGraphQLError(t, res, "Operation Not Permitted", "FORBIDDEN")
}

func TestStaffGate(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	prof := h.addUser(t, "Prof", "prof@campus.test", domain.RoleFaculty, "pw")
	h.addUser(t, "Stu", "stu@campus.test", domain.RoleStudent, "pw")

	student := h.login(t, "stu@campus.test", "pw")
	faculty := h.login(t, "prof@campus.test", "pw")
	vars := map[string]any{"f": formatID(prof.ID)}
	q := `mutation($f: ID!) { createCourse(name: "Algebra", facultyID: $f) { name professor { name } } }`

	res := h.exec(student, q, vars)
	requireGraphQLError(t, res, "Operation Not Permitted", "FORBIDDEN")

	var out struct {
		CreateCourse struct {
			Name      string `json:"name"`
			Professor struct {
				Name string `json:"name"`
			} `json:"professor"`
		} `json:"createCourse"`
	}
	h.run(t, faculty, q, vars, &out)
	require.Equal(t, "Algebra", out.CreateCourse.Name)
	require.Equal(t, "Prof", out.CreateCourse.Professor.Name)
}

func TestLogoutEndsSession(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	token := h.login(t, "root@campus.test", "rootpw")

	var me struct {
		CurrentUser struct {
			Email string `json:"email"`
		} `json:"currentUser"`
	}
	h.run(t, token, `{ currentUser { email } }`, nil, &me)
	require.Equal(t, "root@campus.test", me.CurrentUser.Email)

	var out struct {
		Logout bool `json:"logout"`
	}
	h.run(t, token, `mutation { logout }`, nil, &out)
	require.True(t, out.Logout)

	res := h.exec(token, `{ currentUser { email } }`, nil)
	requireGraphQLError(t, res, "Invalid Session", "UNAUTHENTICATED")
}

func TestSchoolGraph(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	token := h.login(t, "root@campus.test", "rootpw")

	prof := h.addUser(t, "Prof", "prof@campus.test", domain.RoleFaculty, "pw")
	alice := h.addUser(t, "Alice", "alice@campus.test", domain.RoleStudent, "pw")
	bob := h.addUser(t, "Bob", "bob@campus.test", domain.RoleStudent, "pw")

	var course struct {
		CreateCourse struct {
			ID string `json:"id"`
		} `json:"createCourse"`
	}
	h.run(t, token, `mutation($f: ID!) { createCourse(name: "Physics", facultyID: $f) { id } }`,
		map[string]any{"f": formatID(prof.ID)}, &course)
	cid := course.CreateCourse.ID

	for _, s := range []domain.User{alice, bob} {
		var add struct {
			AddCourseStudent *struct {
				ID string `json:"id"`
			} `json:"addCourseStudent"`
		}
		h.run(t, token, `mutation($c: ID!, $s: ID!) { addCourseStudent(courseID: $c, studentID: $s) { id } }`,
			map[string]any{"c": cid, "s": formatID(s.ID)}, &add)
		require.NotNil(t, add.AddCourseStudent)
		require.Equal(t, cid, add.AddCourseStudent.ID)
	}

	var again struct {
		AddCourseStudent *struct {
			ID string `json:"id"`
		} `json:"addCourseStudent"`
	}
	h.run(t, token, `mutation($c: ID!, $s: ID!) { addCourseStudent(courseID: $c, studentID: $s) { id } }`,
		map[string]any{"c": cid, "s": formatID(alice.ID)}, &again)
	require.Nil(t, again.AddCourseStudent, "already enrolled")

	var hw struct {
		CreateAssignment struct {
			ID     string `json:"id"`
			Course struct {
				Name string `json:"name"`
			} `json:"course"`
		} `json:"createAssignment"`
	}
	h.run(t, token, `mutation($c: ID!) { createAssignment(courseID: $c, name: "Lab 1") { id course { name } } }`,
		map[string]any{"c": cid}, &hw)
	require.Equal(t, "Physics", hw.CreateAssignment.Course.Name)

	for _, g := range []struct {
		student domain.User
		grade   float64
	}{{alice, 90}, {bob, 60}} {
		var out struct {
			CreateAssignmentGrade struct {
				Grade   float64 `json:"grade"`
				Student struct {
					Name string `json:"name"`
				} `json:"student"`
			} `json:"createAssignmentGrade"`
		}
		h.run(t, token, `mutation($a: ID!, $s: ID!, $g: Float!) {
			createAssignmentGrade(assignmentID: $a, studentID: $s, grade: $g) { grade student { name } }
		}`, map[string]any{"a": hw.CreateAssignment.ID, "s": formatID(g.student.ID), "g": g.grade}, &out)
		require.Equal(t, g.grade, out.CreateAssignmentGrade.Grade)
		require.Equal(t, g.student.Name, out.CreateAssignmentGrade.Student.Name)
	}

	var view struct {
		Course struct {
			Name      string `json:"name"`
			Professor struct {
				Courses []struct {
					Name string `json:"name"`
				} `json:"courses"`
			} `json:"professor"`
			Students []struct {
				Name string  `json:"name"`
				GPA  float64 `json:"gpa"`
			} `json:"students"`
			Assignments []struct {
				Name   string `json:"name"`
				Grades []struct {
					Grade float64 `json:"grade"`
				} `json:"grades"`
			} `json:"assignments"`
		} `json:"course"`
	}
	h.run(t, token, `query($c: ID!) {
		course(id: $c) {
			name
			professor { courses { name } }
			students { name gpa }
			assignments { name grades { grade } }
		}
	}`, map[string]any{"c": cid}, &view)

	require.Equal(t, "Physics", view.Course.Name)
	require.Len(t, view.Course.Professor.Courses, 1)
	require.Len(t, view.Course.Students, 2)
	require.Equal(t, "Alice", view.Course.Students[0].Name)
	require.Equal(t, 90.0, view.Course.Students[0].GPA)
	require.Equal(t, "Bob", view.Course.Students[1].Name)
	require.Len(t, view.Course.Assignments, 1)
	require.Len(t, view.Course.Assignments[0].Grades, 2)

	var lookup struct {
		ByEmail struct {
			Name string `json:"name"`
		} `json:"byEmail"`
		ByID struct {
			Name string `json:"name"`
		} `json:"byID"`
		WrongRole *struct {
			Name string `json:"name"`
		} `json:"wrongRole"`
	}
	h.run(t, token, `query($b: ID!) {
		byEmail: student(email: "alice@campus.test") { name }
		byID: student(id: $b) { name }
		wrongRole: faculty(id: $b) { name }
	}`, map[string]any{"b": formatID(bob.ID)}, &lookup)
	require.Equal(t, "Alice", lookup.ByEmail.Name)
	require.Equal(t, "Bob", lookup.ByID.Name)
	require.Nil(t, lookup.WrongRole)

	var users struct {
		Users []struct {
			Typename string `json:"__typename"`
		} `json:"users"`
		Students []struct {
			Name string `json:"name"`
		} `json:"students"`
		Faculties []struct {
			Name string `json:"name"`
		} `json:"faculties"`
	}
	h.run(t, token, `{ users { __typename } students { name } faculties { name } }`, nil, &users)
	require.Len(t, users.Users, 4)
	require.Equal(t, "Admin", users.Users[0].Typename)
	require.Equal(t, "Faculty", users.Users[1].Typename)
	require.Equal(t, "Student", users.Users[2].Typename)
	require.Len(t, users.Students, 2)
	require.Len(t, users.Faculties, 1)

	var removed struct {
		DeleteCourse *struct {
			Name string `json:"name"`
		} `json:"deleteCourse"`
	}
	h.run(t, token, `mutation($c: ID!) { deleteCourse(courseID: $c) { name } }`, map[string]any{"c": cid}, &removed)
	require.NotNil(t, removed.DeleteCourse)

	var after struct {
		Student struct {
			Courses []any   `json:"courses"`
			Grades  []any   `json:"grades"`
			GPA     float64 `json:"gpa"`
		} `json:"student"`
	}
	h.run(t, token, `query($s: ID!) { student(id: $s) { courses { id } grades { id } gpa } }`,
		map[string]any{"s": formatID(alice.ID)}, &after)
	require.Empty(t, after.Student.Courses)
	require.Empty(t, after.Student.Grades)
	require.Zero(t, after.Student.GPA)
}

func TestMissingEntitiesAreNull(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	token := h.login(t, "root@campus.test", "rootpw")
	stu := h.addUser(t, "Stu", "stu@campus.test", domain.RoleStudent, "pw")

	res := h.exec(token, `mutation($s: ID!) {
		noFaculty: createCourse(name: "x", facultyID: $s) { id }
		noCourse: deleteCourse(courseID: "404") { id }
		badID: deleteCourse(courseID: "abc") { id }
		noAssignment: deleteAssignment(assignmentID: "404") { id }
		notEnrolled: deleteCourseStudent(courseID: "404", studentID: $s) { id }
		noCourseForAssignment: createAssignment(courseID: "404", name: "hw") { id }
		noGradeTarget: createAssignmentGrade(assignmentID: "404", studentID: $s, grade: 1.5) { id }
	}`, map[string]any{"s": formatID(stu.ID)})
	require.False(t, res.HasErrors(), "unexpected errors: %v", res.Errors)

	var out map[string]any
	decode(t, res.Data, &out)
	require.Len(t, out, 7)
	for field, v := range out {
		require.Nil(t, v, field)
	}

	res = h.exec(token, `{ course(id: "404") { id } student(email: "nobody") { id } }`, nil)
	require.False(t, res.HasErrors(), "unexpected errors: %v", res.Errors)

	var lookups map[string]any
	decode(t, res.Data, &lookups)
	require.Equal(t, map[string]any{"course": nil, "student": nil}, lookups)
}

func TestOperationKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		query, op, want string
	}{
		{`{ hello(name: "x") }`, "", OperationQuery},
		{`mutation { logout }`, "", OperationMutation},
		{`subscription { hello }`, "", OperationSubscription},
		{`query A { hello(name: "a") } mutation B { logout }`, "B", OperationMutation},
		{`query A { hello(name: "a") }`, "Missing", OperationInvalid},
		{`{ unbalanced`, "", OperationInvalid},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, OperationKind(tc.query, tc.op), tc.query)
	}
}
