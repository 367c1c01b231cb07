// Package report renders aggregate views and student records for people to read.
// It only consumes DTOs and models; nothing it does feeds back into the simulation.
package report

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/yigit/collegesim/internal/app/models"
	"github.com/yigit/collegesim/internal/app/models/dto"
	"github.com/yigit/collegesim/internal/pkg/apperrors"
)

// Format selects how a report is rendered
type Format string

// Format constants
const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
)

const separatorWidth = 50

// Reporter writes reports to an output stream
type Reporter struct {
	out    io.Writer
	format Format
	runID  string
}

// NewReporter creates a reporter for the given format. runID is only
// rendered by structured formats and may be empty.
func NewReporter(out io.Writer, format Format, runID string) (*Reporter, error) {
	switch format {
	case FormatText, FormatYAML:
	default:
		return nil, fmt.Errorf("%w: unknown report format %q", apperrors.ErrInvalidConfig, format)
	}
	return &Reporter{out: out, format: format, runID: runID}, nil
}

// yamlDocument wraps a view with its identifying metadata
type yamlDocument struct {
	RunID string      `yaml:"run_id,omitempty"`
	View  string      `yaml:"view"`
	Data  interface{} `yaml:"data"`
}

func (r *Reporter) writeYAML(view string, data interface{}) error {
	encoder := yaml.NewEncoder(r.out)
	encoder.SetIndent(2)
	if err := encoder.Encode(yamlDocument{RunID: r.runID, View: view, Data: data}); err != nil {
		return fmt.Errorf("failed to encode %s report: %w", view, err)
	}
	return encoder.Close()
}

// WriteCollegeStatistics renders the flat per-faculty/per-department counts
func (r *Reporter) WriteCollegeStatistics(stats dto.CollegeStatistics) error {
	if r.format == FormatYAML {
		return r.writeYAML("statistics", stats)
	}

	w := &textWriter{w: r.out}
	w.printf("College: %s\n", stats.CollegeName)
	w.printf("Total Students: %d\n", stats.TotalStudents)
	for _, faculty := range stats.Faculties {
		w.printf("\nFaculty: %s\n", faculty.Name)
		for _, department := range faculty.Departments {
			w.printf("  Department: %s, Students: %d\n", department.Name, department.Students)
		}
	}
	return w.err
}

// WriteDepartmentClusters renders per-department statistics with sample students
func (r *Reporter) WriteDepartmentClusters(clusters []dto.DepartmentCluster) error {
	if r.format == FormatYAML {
		return r.writeYAML("clusters", clusters)
	}

	w := &textWriter{w: r.out}
	for _, cluster := range clusters {
		w.printf("\nFaculty: %s\n", cluster.Faculty)
		w.printf("Department: %s\n", cluster.Department)
		w.printf("Number of Students: %d\n", cluster.StudentCount)
		w.printf("Average GPA: %.2f\n", cluster.AverageGPA)
		w.printf("Level Distribution:\n")
		for _, level := range cluster.Levels {
			w.printf("  Level %d: %d students\n", level.Level, level.Count)
		}
		w.printf("Sample Students:\n")
		for _, record := range cluster.Sample {
			w.printf("  %d - %s (Level %d, GPA %.2f)\n", record.ID, record.Name, record.Level, record.GPA)
		}
		w.separator()
	}
	return w.err
}

// WriteStudents dumps every field of each student, in the given order
func (r *Reporter) WriteStudents(students []*models.Student) error {
	records := dto.NewStudentRecords(students)
	if r.format == FormatYAML {
		return r.writeYAML("students", records)
	}

	w := &textWriter{w: r.out}
	for _, record := range records {
		w.printf("\nStudent ID: %d\n", record.ID)
		w.printf("Name: %s\n", record.Name)
		w.printf("Age: %d\n", record.Age)
		w.printf("Gender: %s\n", record.Gender)
		w.printf("Date of Birth: %s\n", record.DateOfBirth)
		w.printf("Faculty: %s\n", record.Faculty)
		w.printf("Level: %d\n", record.Level)
		w.printf("Department: %s\n", record.Department)
		w.printf("Email: %s\n", record.Email)
		w.printf("Phone Number: %s\n", record.PhoneNumber)
		w.printf("LGA: %s\n", record.LGA)
		w.printf("State: %s\n", record.State)
		w.printf("Admission Date: %s\n", record.AdmissionDate)
		w.printf("GPA: %.2f\n", record.GPA)
		w.printf("Courses: %s\n", formatCourses(record.Courses))
		w.separator()
	}
	return w.err
}

func formatCourses(courses []dto.CourseScore) string {
	parts := make([]string, 0, len(courses))
	for _, course := range courses {
		parts = append(parts, fmt.Sprintf("%s (%.2f)", course.Code, course.Score))
	}
	return strings.Join(parts, ", ")
}

// textWriter keeps the first write error so callers check once at the end
type textWriter struct {
	w   io.Writer
	err error
}

func (t *textWriter) printf(format string, args ...interface{}) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, format, args...)
}

func (t *textWriter) separator() {
	t.printf("%s\n", strings.Repeat("-", separatorWidth))
}
