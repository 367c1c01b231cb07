package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/yigit/collegesim/internal/pkg/apperrors"
	"github.com/yigit/collegesim/internal/pkg/validation"
)

// Report views
const (
	ViewStatistics = "statistics"
	ViewClusters   = "clusters"
	ViewStudents   = "students"
)

// Report formats
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// DefaultPath is where the configuration file is looked up when none is given
const DefaultPath = "configs/config.yaml"

// Config structure represents the application configuration
type Config struct {
	College struct {
		Name string `yaml:"name" env:"COLLEGE_NAME" validate:"required"`
	} `yaml:"college"`

	Simulation struct {
		Students          int    `yaml:"students" env:"SIM_STUDENTS" validate:"gte=0"`
		Seed              int64  `yaml:"seed" env:"SIM_SEED"`
		IDBase            int64  `yaml:"id_base" env:"SIM_ID_BASE" validate:"gte=0"`
		CoursesPerStudent int    `yaml:"courses_per_student" env:"SIM_COURSES_PER_STUDENT" validate:"gte=1"`
		SamplePolicy      string `yaml:"sample_policy" env:"SIM_SAMPLE_POLICY" validate:"oneof=cap strict"`
		SampleSize        int    `yaml:"sample_size" env:"SIM_SAMPLE_SIZE" validate:"gte=0"`
	} `yaml:"simulation"`

	Report struct {
		View   string `yaml:"view" env:"REPORT_VIEW" validate:"oneof=statistics clusters students"`
		Format string `yaml:"format" env:"REPORT_FORMAT" validate:"oneof=text yaml"`
	} `yaml:"report"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT" validate:"oneof=text json"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a .env file, a YAML file and environment variables.
// Missing files are not an error; the defaults and the environment still apply.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	if configPath != "" {
		file, err := os.ReadFile(configPath)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(file, config); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		case !errors.Is(err, fs.ErrNotExist):
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if err := applyEnvOverrides(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	normalize(config)

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.College.Name = "Sample College"

	config.Simulation.Students = 100
	config.Simulation.Seed = 0
	config.Simulation.IDBase = 210591000
	config.Simulation.CoursesPerStudent = 5
	config.Simulation.SamplePolicy = "cap"
	config.Simulation.SampleSize = 3

	config.Report.View = ViewClusters
	config.Report.Format = FormatText

	config.Logging.Level = "info"
	config.Logging.Format = "text"
}

func normalize(config *Config) {
	config.Simulation.SamplePolicy = strings.ToLower(strings.TrimSpace(config.Simulation.SamplePolicy))
	config.Report.View = strings.ToLower(strings.TrimSpace(config.Report.View))
	config.Report.Format = strings.ToLower(strings.TrimSpace(config.Report.Format))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if err := validation.Struct(config); err != nil {
		return fmt.Errorf("%w: %w", apperrors.ErrInvalidConfig, err)
	}
	return nil
}
