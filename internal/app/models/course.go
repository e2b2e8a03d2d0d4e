package models

// Course represents a course offered by a department.
// A nil DepartmentID marks a shared course, visible to every department of FacultyID.
type Course struct {
	ID           int64  `json:"id" yaml:"id"`
	Name         string `json:"name" yaml:"name"`
	FacultyID    int64  `json:"facultyId" yaml:"facultyId"`
	DepartmentID *int64 `json:"departmentId" yaml:"departmentId"` // Nullable
}

// IsShared reports whether the course belongs to its faculty rather than one department
func (c *Course) IsShared() bool {
	return c.DepartmentID == nil
}

// VisibleTo reports whether the course is listed under the given department
func (c *Course) VisibleTo(dept *Department) bool {
	if c.DepartmentID != nil {
		return *c.DepartmentID == dept.ID
	}
	return c.FacultyID == dept.FacultyID
}
