package models

// Department represents a department in a faculty
type Department struct {
	ID        int64  `json:"id" yaml:"id"`
	FacultyID int64  `json:"facultyId" yaml:"facultyId"`
	Name      string `json:"name" yaml:"name"`
}
