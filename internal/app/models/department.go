package models

// Department represents a department in a faculty, with its course catalog
// and the roster of enrolled students.
type Department struct {
	Name     string             `json:"name" yaml:"name"`
	Code     string             `json:"code" yaml:"code"`
	Catalog  map[Level][]string `json:"catalog" yaml:"catalog"`
	Students []*Student         `json:"students,omitempty" yaml:"students,omitempty"`
}

// NewDepartment creates a department with an empty catalog and roster
func NewDepartment(name, code string) *Department {
	return &Department{
		Name:    name,
		Code:    code,
		Catalog: make(map[Level][]string),
	}
}

// CoursesFor returns the catalog entry for a level (nil if the level is not offered)
func (d *Department) CoursesFor(level Level) []string {
	return d.Catalog[level]
}

// Offers reports whether code is listed in the catalog for level
func (d *Department) Offers(level Level, code string) bool {
	for _, c := range d.Catalog[level] {
		if c == code {
			return true
		}
	}
	return false
}
