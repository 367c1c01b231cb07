package models

// Faculty represents a faculty of the college and the departments it owns
type Faculty struct {
	Name        string                 `json:"name" yaml:"name"`
	Departments map[string]*Department `json:"departments" yaml:"departments"`

	departmentOrder []string
}

// NewFaculty creates an empty faculty
func NewFaculty(name string) *Faculty {
	return &Faculty{
		Name:        name,
		Departments: make(map[string]*Department),
	}
}

// AddDepartment registers a department under the faculty.
// It reports false when a department with the same name already exists.
func (f *Faculty) AddDepartment(department *Department) bool {
	if _, exists := f.Departments[department.Name]; exists {
		return false
	}
	f.Departments[department.Name] = department
	f.departmentOrder = append(f.departmentOrder, department.Name)
	return true
}

// DepartmentNames returns department names in the order they were added
func (f *Faculty) DepartmentNames() []string {
	names := make([]string, len(f.departmentOrder))
	copy(names, f.departmentOrder)
	return names
}
