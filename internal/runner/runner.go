package runner

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/yigit/collegesim/internal/app/models"
	"github.com/yigit/collegesim/internal/bootstrap"
	"github.com/yigit/collegesim/internal/config"
	"github.com/yigit/collegesim/internal/pkg/randsrc"
	"github.com/yigit/collegesim/internal/seed"
)

// Runner holds the state for one generate-then-summarize run.
type Runner struct {
	config *config.Config
	deps   *bootstrap.Dependencies
	logger zerolog.Logger
	runID  string
}

// Result is what a run produced, before it was rendered
type Result struct {
	College  *models.College
	Students []*models.Student
}

// Options customize how a runner is assembled
type Options struct {
	// ConfigPath is the YAML config file; a missing file leaves defaults in place.
	ConfigPath string
	// Output receives the report.
	Output io.Writer
	// LogOutput receives log lines.
	LogOutput io.Writer
	// Rand overrides the configured random source.
	Rand randsrc.Source
}

// NewRunner loads configuration, sets up the logger and wires dependencies.
func NewRunner(opts Options) (*Runner, error) {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(opts.ConfigPath, opts.LogOutput)
	if err != nil {
		return nil, fmt.Errorf("failed to load config or setup logger: %w", err)
	}
	return NewRunnerWithConfig(cfg, opts, lgr)
}

// NewRunnerWithConfig wires a runner from an already loaded configuration.
func NewRunnerWithConfig(cfg *config.Config, opts Options, lgr zerolog.Logger) (*Runner, error) {
	runID := uuid.NewString()
	lgr = lgr.With().Str("runID", runID).Logger()

	deps, err := bootstrap.BuildDependencies(cfg, opts.Rand, opts.Output, runID, lgr)
	if err != nil {
		return nil, fmt.Errorf("failed to setup dependencies: %w", err)
	}

	return &Runner{
		config: cfg,
		deps:   deps,
		logger: lgr,
		runID:  runID,
	}, nil
}

// RunID identifies this run in logs and structured reports
func (r *Runner) RunID() string {
	return r.runID
}

// Simulate builds the college, synthesizes and distributes the configured
// number of students, and checks the enrollment totals.
func (r *Runner) Simulate() (*Result, error) {
	start := time.Now()

	college, err := seed.CreateDefaultCollege(r.config.College.Name, r.deps.CatalogService, r.logger)
	if err != nil {
		return nil, err
	}

	students, err := r.deps.EnrollmentService.Distribute(college, r.deps.StudentService, r.config.Simulation.Students)
	if err != nil {
		r.logger.Error().Err(err).Int("enrolled", len(students)).Msg("Student distribution failed")
		return nil, fmt.Errorf("failed to distribute students: %w", err)
	}

	if err := r.deps.EnrollmentService.VerifyTotals(college); err != nil {
		r.logger.Error().Err(err).Msg("Enrollment totals are inconsistent")
		return nil, err
	}

	r.logger.Info().
		Int("totalStudents", college.TotalStudents).
		Int64("lastStudentID", r.deps.IDs.Last()).
		Dur("took", time.Since(start)).
		Msg("Simulation finished")

	return &Result{College: college, Students: students}, nil
}

// Report renders the configured view of result
func (r *Runner) Report(result *Result) error {
	var err error
	switch r.config.Report.View {
	case config.ViewStatistics:
		err = r.deps.Reporter.WriteCollegeStatistics(r.deps.StatisticsService.CollegeStatistics(result.College))
	case config.ViewStudents:
		err = r.deps.Reporter.WriteStudents(result.Students)
	case config.ViewClusters:
		err = r.deps.Reporter.WriteDepartmentClusters(r.deps.StatisticsService.DepartmentClusters(result.College))
	default:
		err = fmt.Errorf("unknown report view %q", r.config.Report.View)
	}
	if err != nil {
		return fmt.Errorf("failed to write %s report: %w", r.config.Report.View, err)
	}
	return nil
}

// Run performs the whole job: simulate, then report.
func (r *Runner) Run() error {
	r.logger.Info().
		Str("college", r.config.College.Name).
		Int("students", r.config.Simulation.Students).
		Str("view", r.config.Report.View).
		Msg("Starting simulation...")

	result, err := r.Simulate()
	if err != nil {
		return err
	}
	return r.Report(result)
}
