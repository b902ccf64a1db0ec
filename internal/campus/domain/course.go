package domain

// Course is owned by exactly one faculty member. The courses of a faculty
// member are found by filtering on FacultyID.
type Course struct {
	ID        int64
	Name      string
	FacultyID int64
}

// Enrollment is the only record of a student taking a course. Seq gives the
// enrollment order.
type Enrollment struct {
	CourseID  int64
	StudentID int64
	Seq       int64
}

type Assignment struct {
	ID       int64
	CourseID int64
	Name     string
}

type AssignmentGrade struct {
	ID           int64
	AssignmentID int64
	StudentID    int64
	Grade        float64
}
