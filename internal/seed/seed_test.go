package seed

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appModels "github.com/yigit/collegesim/internal/app/models"
	appServices "github.com/yigit/collegesim/internal/app/services"
)

func TestCreateDefaultCollege(t *testing.T) {
	college, err := CreateDefaultCollege("Sample College", appServices.NewCatalogService(zerolog.Nop()), zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, "Sample College", college.Name)
	assert.Len(t, college.Faculties, 6)

	departments := 0
	for _, faculty := range college.Faculties {
		departments += len(faculty.Departments)
		for _, department := range faculty.Departments {
			assert.NotEmpty(t, department.Catalog[appModels.Level100])
		}
	}
	assert.Equal(t, 18, departments)

	assert.Equal(t, []string{"Science", "Law", "Arts", "Engineering", "Management Science", "Education"}, college.FacultyNames())
	assert.NotNil(t, college.GetDepartment("Law", "Tech Law"))
}

func TestDefaultFacultiesHaveUniqueDepartments(t *testing.T) {
	seen := make(map[string]bool)
	for _, faculty := range DefaultFaculties {
		for _, department := range faculty.Departments {
			assert.False(t, seen[department], "department %s listed twice", department)
			seen[department] = true
		}
	}
}
