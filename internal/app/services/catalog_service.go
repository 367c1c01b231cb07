package services

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/yigit/collegesim/internal/app/models"
	"github.com/yigit/collegesim/internal/pkg/apperrors"
)

const (
	departmentCodeLength = 3
	coursesPerTerm       = 3
	level500CourseCount  = 5
)

// level500Departments are the only departments with a level-500 catalog
var level500Departments = map[string]bool{
	"Civil Law":    true,
	"Criminal Law": true,
}

// CatalogService builds the static faculty -> department -> course hierarchy
type CatalogService interface {
	BuildCollege(name string, table []models.FacultyDefinition) (*models.College, error)
	BuildCatalog(departmentName string) map[models.Level][]string
}

// catalogServiceImpl implements the CatalogService interface
type catalogServiceImpl struct {
	logger zerolog.Logger
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(lgr zerolog.Logger) CatalogService {
	return &catalogServiceImpl{logger: lgr}
}

// DepartmentCode derives a department code from the uppercased first three
// characters of its name.
func DepartmentCode(name string) string {
	upper := strings.ToUpper(name)
	if utf8.RuneCountInString(upper) <= departmentCodeLength {
		return upper
	}
	return string([]rune(upper)[:departmentCodeLength])
}

// validateDefinition validates one faculty row before it is built
func validateDefinition(def models.FacultyDefinition) error {
	if strings.TrimSpace(def.Name) == "" {
		return fmt.Errorf("%w: faculty name cannot be empty", apperrors.ErrValidationFailed)
	}
	for _, department := range def.Departments {
		if strings.TrimSpace(department) == "" {
			return fmt.Errorf("%w: department name in faculty %q cannot be empty", apperrors.ErrValidationFailed, def.Name)
		}
	}
	return nil
}

// BuildCollege creates a college whose faculties and departments mirror table,
// each department carrying a generated course catalog.
func (s *catalogServiceImpl) BuildCollege(name string, table []models.FacultyDefinition) (*models.College, error) {
	college := models.NewCollege(name)

	for _, def := range table {
		if err := validateDefinition(def); err != nil {
			return nil, err
		}

		faculty := college.AddFaculty(def.Name)
		for _, departmentName := range def.Departments {
			department := models.NewDepartment(departmentName, DepartmentCode(departmentName))
			department.Catalog = s.BuildCatalog(departmentName)

			if !faculty.AddDepartment(department) {
				return nil, fmt.Errorf("%w: %q in faculty %q", apperrors.ErrDepartmentAlreadyExists, departmentName, def.Name)
			}
		}

		s.logger.Debug().
			Str("faculty", def.Name).
			Int("departments", len(faculty.Departments)).
			Msg("Faculty catalog built")
	}

	return college, nil
}

// BuildCatalog generates the course codes a department offers at each level.
// Codes follow {code}{course}0{term} for levels 100-400; the two law
// departments listed in level500Departments also get {code}501..505.
func (s *catalogServiceImpl) BuildCatalog(departmentName string) map[models.Level][]string {
	code := DepartmentCode(departmentName)
	catalog := make(map[models.Level][]string, len(models.LawLevels))

	for _, level := range models.StandardLevels {
		courses := make([]string, 0, len(models.Terms)*coursesPerTerm)
		for _, term := range models.Terms {
			for course := 1; course <= coursesPerTerm; course++ {
				courses = append(courses, fmt.Sprintf("%s%d0%d", code, course, term))
			}
		}
		catalog[level] = courses
	}

	if level500Departments[departmentName] {
		courses := make([]string, 0, level500CourseCount)
		for i := 1; i <= level500CourseCount; i++ {
			courses = append(courses, fmt.Sprintf("%s%d", code, int(models.Level500)+i))
		}
		catalog[models.Level500] = courses
	}

	return catalog
}
