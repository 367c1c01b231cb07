package models

// College is the root of the faculty -> department hierarchy.
// TotalStudents must always equal the sum of all department roster sizes.
type College struct {
	Name          string              `json:"name" yaml:"name"`
	Faculties     map[string]*Faculty `json:"faculties" yaml:"faculties"`
	TotalStudents int                 `json:"totalStudents" yaml:"total_students"`

	facultyOrder []string
}

// NewCollege creates a college with no faculties
func NewCollege(name string) *College {
	return &College{
		Name:      name,
		Faculties: make(map[string]*Faculty),
	}
}

// AddFaculty returns the faculty with the given name, creating it if needed
func (c *College) AddFaculty(name string) *Faculty {
	if faculty, ok := c.Faculties[name]; ok {
		return faculty
	}
	faculty := NewFaculty(name)
	c.Faculties[name] = faculty
	c.facultyOrder = append(c.facultyOrder, name)
	return faculty
}

// FacultyNames returns faculty names in the order they were added
func (c *College) FacultyNames() []string {
	names := make([]string, len(c.facultyOrder))
	copy(names, c.facultyOrder)
	return names
}

// GetDepartment looks up a department, returning nil when either the faculty
// or the department does not exist.
func (c *College) GetDepartment(facultyName, departmentName string) *Department {
	faculty, ok := c.Faculties[facultyName]
	if !ok {
		return nil
	}
	return faculty.Departments[departmentName]
}
