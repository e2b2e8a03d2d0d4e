package dto

// CourseListQuery selects the course listing. At most one filter applies;
// departmentId wins when both are given.
type CourseListQuery struct {
	DepartmentID *int64 `form:"departmentId" binding:"omitempty,gt=0"`
	FacultyID    *int64 `form:"facultyId" binding:"omitempty,gt=0"`
}

// DepartmentListQuery optionally restricts departments to one faculty
type DepartmentListQuery struct {
	FacultyID *int64 `form:"facultyId" binding:"omitempty,gt=0"`
}
