package services

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/collegesim/internal/app/models"
	"github.com/yigit/collegesim/internal/pkg/apperrors"
)

func TestDepartmentCode(t *testing.T) {
	assert.Equal(t, "COM", DepartmentCode("Computer Science"))
	assert.Equal(t, "CIV", DepartmentCode("Civil Law"))
	assert.Equal(t, "HIS", DepartmentCode("History and International Relations"))
	assert.Equal(t, "AB", DepartmentCode("ab"))
}

func TestBuildCatalogCodeFormula(t *testing.T) {
	catalog := NewCatalogService(zerolog.Nop()).BuildCatalog("Computer Science")

	expected := []string{"COM101", "COM201", "COM301", "COM102", "COM202", "COM302"}
	for _, level := range models.StandardLevels {
		assert.Equal(t, expected, catalog[level], "level %d", level)
	}
	_, has500 := catalog[models.Level500]
	assert.False(t, has500)
	assert.Len(t, catalog, 4)
}

func TestBuildCatalogLawLevel500(t *testing.T) {
	svc := NewCatalogService(zerolog.Nop())

	assert.Equal(t, []string{"CIV501", "CIV502", "CIV503", "CIV504", "CIV505"}, svc.BuildCatalog("Civil Law")[models.Level500])
	assert.Equal(t, []string{"CRI501", "CRI502", "CRI503", "CRI504", "CRI505"}, svc.BuildCatalog("Criminal Law")[models.Level500])

	_, techHas500 := svc.BuildCatalog("Tech Law")[models.Level500]
	assert.False(t, techHas500)
}

func TestBuildCollegeMirrorsTable(t *testing.T) {
	college := newTestCollege(t)

	assert.Equal(t, "Sample College", college.Name)
	assert.Equal(t, 0, college.TotalStudents)
	require.Len(t, college.Faculties, len(defaultTable))

	for i, def := range defaultTable {
		assert.Equal(t, def.Name, college.FacultyNames()[i])
		faculty := college.Faculties[def.Name]
		require.NotNil(t, faculty)
		assert.Equal(t, def.Departments, faculty.DepartmentNames())
	}
}

func TestLevel500CatalogOnlyForCivilAndCriminalLaw(t *testing.T) {
	college := newTestCollege(t)

	for _, faculty := range college.Faculties {
		for name, department := range faculty.Departments {
			_, has500 := department.Catalog[models.Level500]
			wantLaw := name == "Civil Law" || name == "Criminal Law"
			assert.Equal(t, wantLaw, has500, "department %s", name)
			assert.Empty(t, department.Students)
		}
	}
}

func TestBuildCollegeRejectsDuplicateDepartment(t *testing.T) {
	_, err := NewCatalogService(zerolog.Nop()).BuildCollege("Dup", []models.FacultyDefinition{
		{Name: "Science", Departments: []string{"Physics"}},
		{Name: "Science", Departments: []string{"Physics"}},
	})
	assert.ErrorIs(t, err, apperrors.ErrDepartmentAlreadyExists)
}

func TestBuildCollegeMergesRepeatedFaculty(t *testing.T) {
	college, err := NewCatalogService(zerolog.Nop()).BuildCollege("Merge", []models.FacultyDefinition{
		{Name: "Science", Departments: []string{"Physics"}},
		{Name: "Science", Departments: []string{"Chemistry"}},
	})
	require.NoError(t, err)
	assert.Len(t, college.Faculties, 1)
	assert.Equal(t, []string{"Physics", "Chemistry"}, college.Faculties["Science"].DepartmentNames())
}

func TestBuildCollegeRejectsBlankNames(t *testing.T) {
	svc := NewCatalogService(zerolog.Nop())

	_, err := svc.BuildCollege("Blank", []models.FacultyDefinition{{Name: " "}})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.BuildCollege("Blank", []models.FacultyDefinition{{Name: "Arts", Departments: []string{""}}})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
