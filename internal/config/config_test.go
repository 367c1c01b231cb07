package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/collegesim/internal/pkg/apperrors"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "Sample College", cfg.College.Name)
	assert.Equal(t, 100, cfg.Simulation.Students)
	assert.Equal(t, int64(210591000), cfg.Simulation.IDBase)
	assert.Equal(t, 5, cfg.Simulation.CoursesPerStudent)
	assert.Equal(t, "cap", cfg.Simulation.SamplePolicy)
	assert.Equal(t, 3, cfg.Simulation.SampleSize)
	assert.Equal(t, ViewClusters, cfg.Report.View)
	assert.Equal(t, FormatText, cfg.Report.Format)
}

func TestLoadConfigFromFile(t *testing.T) {
	path := writeConfig(t, `
college:
  name: Lagos State University
simulation:
  students: 25
  seed: 99
  sample_policy: STRICT
report:
  view: statistics
  format: yaml
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "Lagos State University", cfg.College.Name)
	assert.Equal(t, 25, cfg.Simulation.Students)
	assert.Equal(t, int64(99), cfg.Simulation.Seed)
	assert.Equal(t, "strict", cfg.Simulation.SamplePolicy)
	assert.Equal(t, ViewStatistics, cfg.Report.View)
	assert.Equal(t, FormatYAML, cfg.Report.Format)
	// untouched sections keep their defaults
	assert.Equal(t, 5, cfg.Simulation.CoursesPerStudent)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	path := writeConfig(t, "simulation:\n  students: 25\n")
	t.Setenv("SIM_STUDENTS", "40")
	t.Setenv("SIM_SEED", "7")
	t.Setenv("REPORT_VIEW", "students")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 40, cfg.Simulation.Students)
	assert.Equal(t, int64(7), cfg.Simulation.Seed)
	assert.Equal(t, ViewStudents, cfg.Report.View)
}

func TestInvalidEnvironmentValue(t *testing.T) {
	t.Setenv("SIM_STUDENTS", "many")

	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestValidationRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"negative students", "simulation:\n  students: -1\n"},
		{"unknown policy", "simulation:\n  sample_policy: replace\n"},
		{"zero courses", "simulation:\n  courses_per_student: 0\n"},
		{"unknown view", "report:\n  view: charts\n"},
		{"unknown format", "report:\n  format: xml\n"},
		{"empty college name", "college:\n  name: \"\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.body))
			assert.ErrorIs(t, err, apperrors.ErrInvalidConfig)
		})
	}
}

func TestMalformedYAML(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "simulation: [students"))
	assert.Error(t, err)
}
