package graph

import (
	"context"
	"fmt"
	"time"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/ast"
	"github.com/graphql-go/graphql/language/parser"

	"github.com/aussiebroadwan/campus/internal/campus/domain"
	"github.com/aussiebroadwan/campus/internal/campus/metrics"
	"github.com/aussiebroadwan/campus/internal/campus/service"
)

// Resolver carries the services the schema resolves against.
type Resolver struct {
	Auth        *service.AuthService
	Users       *service.UserService
	Courses     *service.CourseService
	Assignments *service.AssignmentService
	Grades      *service.GradeService
}

// Schema is the executable campus API.
type Schema struct {
	schema graphql.Schema
}

// Request is a single GraphQL operation as sent by clients.
type Request struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName,omitempty"`
	Variables     map[string]any `json:"variables,omitempty"`
}

func NewSchema(r *Resolver) (*Schema, error) {
	b := &builder{r: r}
	s, err := b.build()
	if err != nil {
		return nil, fmt.Errorf("build schema: %w", err)
	}
	return &Schema{schema: s}, nil
}

// Execute runs req. Field errors, including auth failures, are reported in
// the result rather than as a Go error.
func (s *Schema) Execute(ctx context.Context, req Request) *graphql.Result {
	start := time.Now()

	res := graphql.Do(graphql.Params{
		Schema:         s.schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		OperationName:  req.OperationName,
		Context:        ctx,
	})

	status := metrics.StatusOK
	if res.HasErrors() {
		status = metrics.StatusError
	}
	metrics.RecordOperation(OperationKind(req.Query, req.OperationName), status, time.Since(start))
	return res
}

// Operation kinds reported by OperationKind.
const (
	OperationQuery        = "query"
	OperationMutation     = "mutation"
	OperationSubscription = "subscription"
	OperationInvalid      = "invalid"
)

// OperationKind names the kind of operation selected by a request (query,
// mutation, subscription) or "invalid" when it does not parse or names no
// operation in the document.
func OperationKind(query, operationName string) string {
	doc, err := parser.Parse(parser.ParseParams{Source: query})
	if err != nil {
		return OperationInvalid
	}
	for _, def := range doc.Definitions {
		op, ok := def.(*ast.OperationDefinition)
		if !ok {
			continue
		}
		if operationName == "" || (op.Name != nil && op.Name.Value == operationName) {
			return op.Operation
		}
	}
	return OperationInvalid
}

type builder struct {
	r *Resolver

	role        *graphql.Enum
	user        *graphql.Interface
	student     *graphql.Object
	faculty     *graphql.Object
	admin       *graphql.Object
	course      *graphql.Object
	assignment  *graphql.Object
	grade       *graphql.Object
	authPayload *graphql.Object
}

func (b *builder) build() (graphql.Schema, error) {
	roles := graphql.EnumValueConfigMap{}
	for _, r := range domain.AllRoles {
		roles[r.String()] = &graphql.EnumValueConfig{Value: r}
	}
	b.role = graphql.NewEnum(graphql.EnumConfig{
		Name:   "Role",
		Values: roles,
	})

	b.user = graphql.NewInterface(graphql.InterfaceConfig{
		Name:   "User",
		Fields: b.userFields(),
		ResolveType: func(p graphql.ResolveTypeParams) *graphql.Object {
			u, ok := source[domain.User](p.Value)
			if !ok {
				return nil
			}
			return b.objectFor(u.Role)
		},
	})

	b.student = graphql.NewObject(graphql.ObjectConfig{
		Name:       "Student",
		Interfaces: []*graphql.Interface{b.user},
		Fields:     graphql.FieldsThunk(b.studentFields),
	})
	b.faculty = graphql.NewObject(graphql.ObjectConfig{
		Name:       "Faculty",
		Interfaces: []*graphql.Interface{b.user},
		Fields:     graphql.FieldsThunk(b.facultyFields),
	})
	b.admin = graphql.NewObject(graphql.ObjectConfig{
		Name:       "Admin",
		Interfaces: []*graphql.Interface{b.user},
		Fields:     graphql.FieldsThunk(b.userFields),
	})
	b.course = graphql.NewObject(graphql.ObjectConfig{
		Name:   "Course",
		Fields: graphql.FieldsThunk(b.courseFields),
	})
	b.assignment = graphql.NewObject(graphql.ObjectConfig{
		Name:   "Assignment",
		Fields: graphql.FieldsThunk(b.assignmentFields),
	})
	b.grade = graphql.NewObject(graphql.ObjectConfig{
		Name:   "AssignmentGrade",
		Fields: graphql.FieldsThunk(b.gradeFields),
	})
	b.authPayload = graphql.NewObject(graphql.ObjectConfig{
		Name: "AuthPayload",
		Fields: graphql.Fields{
			"token": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					res, _ := source[domain.LoginResult](p.Source)
					return res.Token, nil
				},
			},
			"user": &graphql.Field{
				Type: graphql.NewNonNull(b.user),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					res, _ := source[domain.LoginResult](p.Source)
					return res.User, nil
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    graphql.NewObject(graphql.ObjectConfig{Name: "Query", Fields: b.queryFields()}),
		Mutation: graphql.NewObject(graphql.ObjectConfig{Name: "Mutation", Fields: b.mutationFields()}),
		Types:    []graphql.Type{b.student, b.faculty, b.admin},
	})
}

// objectFor maps every role onto its concrete GraphQL type.
func (b *builder) objectFor(r domain.Role) *graphql.Object {
	switch r {
	case domain.RoleAdmin:
		return b.admin
	case domain.RoleStudent:
		return b.student
	case domain.RoleFaculty:
		return b.faculty
	default:
		return nil
	}
}

// source accepts both values and pointers as resolver sources.
func source[T any](v any) (T, bool) {
	switch s := v.(type) {
	case T:
		return s, true
	case *T:
		if s != nil {
			return *s, true
		}
	}
	var zero T
	return zero, false
}

// orNull hands a possibly absent entity to the runtime as a real null.
func orNull[T any](v *T, err error) (any, error) {
	if err != nil || v == nil {
		return nil, err
	}
	return *v, nil
}
