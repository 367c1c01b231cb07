package bootstrap

import (
	"io"
	"strings"

	"github.com/rs/zerolog"

	appReport "github.com/yigit/collegesim/internal/app/report"
	appServices "github.com/yigit/collegesim/internal/app/services"
	"github.com/yigit/collegesim/internal/config"
	"github.com/yigit/collegesim/internal/pkg/logger"
	"github.com/yigit/collegesim/internal/pkg/randsrc"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	CatalogService    appServices.CatalogService    // Interface type
	StudentService    appServices.StudentService    // Interface type
	EnrollmentService appServices.EnrollmentService // Interface type
	StatisticsService appServices.StatisticsService // Interface type
	Reporter          *appReport.Reporter
	IDs               *appServices.IDGenerator
	Rand              randsrc.Source
	Logger            zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string, logOutput io.Writer) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	lgr := logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
		Output: logOutput,
	})

	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// BuildDependencies wires the services for one simulation run. src may be nil,
// in which case a source is seeded from cfg.Simulation.Seed.
func BuildDependencies(cfg *config.Config, src randsrc.Source, out io.Writer, runID string, lgr zerolog.Logger) (*Dependencies, error) {
	if src == nil {
		src = randsrc.New(cfg.Simulation.Seed)
	}

	deps := &Dependencies{
		Rand:   src,
		IDs:    appServices.NewIDGenerator(cfg.Simulation.IDBase),
		Logger: lgr,
	}

	reporter, err := appReport.NewReporter(out, appReport.Format(cfg.Report.Format), runID)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize reporter")
		return nil, err
	}
	deps.Reporter = reporter

	deps.CatalogService = appServices.NewCatalogService(lgr.With().Str("component", "catalog").Logger())
	deps.StudentService = appServices.NewStudentService(src, deps.IDs, appServices.StudentOptions{
		CoursesPerStudent: cfg.Simulation.CoursesPerStudent,
		SamplePolicy:      appServices.SamplePolicy(cfg.Simulation.SamplePolicy),
	}, lgr.With().Str("component", "students").Logger())
	deps.EnrollmentService = appServices.NewEnrollmentService(lgr.With().Str("component", "enrollment").Logger())
	deps.StatisticsService = appServices.NewStatisticsService(src, cfg.Simulation.SampleSize, lgr.With().Str("component", "statistics").Logger())

	return deps, nil
}
