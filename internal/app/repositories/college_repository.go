package repositories

import (
	"fmt"

	"github.com/yigit/collegesim/internal/app/models"
	"github.com/yigit/collegesim/internal/pkg/apperrors"
)

// Re-exported lookup errors
var (
	ErrFacultyNotFound    = apperrors.ErrFacultyNotFound
	ErrDepartmentNotFound = apperrors.ErrDepartmentNotFound
)

// CollegeRepository resolves faculties and departments of an in-memory college
type CollegeRepository struct {
	college *models.College
}

// NewCollegeRepository creates a repository over college
func NewCollegeRepository(college *models.College) *CollegeRepository {
	return &CollegeRepository{college: college}
}

// GetFaculty retrieves a faculty by name
func (r *CollegeRepository) GetFaculty(name string) (*models.Faculty, error) {
	faculty, ok := r.college.Faculties[name]
	if !ok || faculty == nil {
		return nil, apperrors.NewNotFoundError(ErrFacultyNotFound, fmt.Sprintf("faculty %q not found", name))
	}
	return faculty, nil
}

// GetDepartment retrieves a department by faculty and department name
func (r *CollegeRepository) GetDepartment(facultyName, departmentName string) (*models.Department, error) {
	department := r.college.GetDepartment(facultyName, departmentName)
	if department == nil {
		return nil, fmt.Errorf("%w: %q in faculty %q", ErrDepartmentNotFound, departmentName, facultyName)
	}
	return department, nil
}

// GetAllFaculties returns the college's faculties in insertion order
func (r *CollegeRepository) GetAllFaculties() []*models.Faculty {
	names := r.college.FacultyNames()
	faculties := make([]*models.Faculty, 0, len(names))
	for _, name := range names {
		faculties = append(faculties, r.college.Faculties[name])
	}
	return faculties
}

// GetByFaculty returns the faculty's departments in insertion order
func (r *CollegeRepository) GetByFaculty(faculty *models.Faculty) []*models.Department {
	names := faculty.DepartmentNames()
	departments := make([]*models.Department, 0, len(names))
	for _, name := range names {
		departments = append(departments, faculty.Departments[name])
	}
	return departments
}

// ForEachDepartment calls fn for every department, faculties and departments
// visited in insertion order.
func (r *CollegeRepository) ForEachDepartment(fn func(faculty *models.Faculty, department *models.Department)) {
	for _, faculty := range r.GetAllFaculties() {
		for _, department := range r.GetByFaculty(faculty) {
			fn(faculty, department)
		}
	}
}

// CountEnrolled sums the roster sizes of every department
func (r *CollegeRepository) CountEnrolled() int {
	total := 0
	r.ForEachDepartment(func(_ *models.Faculty, department *models.Department) {
		total += len(department.Students)
	})
	return total
}
