package models

// Faculty represents a faculty at the university
type Faculty struct {
	ID    int64  `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Image string `json:"image" yaml:"image"` // display image reference, served by the static host
}
