package seed

import (
	"fmt"

	"github.com/rs/zerolog"

	appModels "github.com/yigit/collegesim/internal/app/models"
	appServices "github.com/yigit/collegesim/internal/app/services"
)

// DefaultFaculties is the fixed faculty -> department table the college is built from
var DefaultFaculties = []appModels.FacultyDefinition{
	{Name: "Science", Departments: []string{"Computer Science", "Chemistry", "Physics", "Mathematics"}},
	{Name: "Law", Departments: []string{"Civil Law", "Criminal Law", "Tech Law"}},
	{Name: "Arts", Departments: []string{"Literature", "History and International Relations", "English"}},
	{Name: "Engineering", Departments: []string{"Mechanical Engineering", "Electrical Engineering", "Computer Engineering"}},
	{Name: "Management Science", Departments: []string{"Business Administration", "Accounting"}},
	{Name: "Education", Departments: []string{"Computer Science Education", "Biology Education", "Political Education"}},
}

// CreateDefaultCollege builds a college from DefaultFaculties with every
// department's course catalog populated.
func CreateDefaultCollege(name string, catalog appServices.CatalogService, lgr zerolog.Logger) (*appModels.College, error) {
	lgr.Info().Str("college", name).Msg("Creating default faculties and departments...")

	college, err := catalog.BuildCollege(name, DefaultFaculties)
	if err != nil {
		lgr.Error().Err(err).Msg("Error creating default college")
		return nil, fmt.Errorf("failed to create default college: %w", err)
	}

	departments := 0
	for _, faculty := range college.Faculties {
		departments += len(faculty.Departments)
	}
	lgr.Info().
		Int("faculties", len(college.Faculties)).
		Int("departments", departments).
		Msg("Default college created")

	return college, nil
}
