package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/yigit/collegesim/internal/app/models"
	"github.com/yigit/collegesim/internal/pkg/apperrors"
	"github.com/yigit/collegesim/internal/pkg/helpers"
	"github.com/yigit/collegesim/internal/pkg/randsrc"
	"github.com/yigit/collegesim/internal/pkg/validation"
)

// SamplePolicy decides what happens when a level's catalog offers fewer
// distinct courses than a student must take.
type SamplePolicy string

// SamplePolicy constants
const (
	// SamplePolicyCap enrolls the student in every distinct course available
	SamplePolicyCap SamplePolicy = "cap"
	// SamplePolicyStrict fails synthesis with ErrInsufficientCourses
	SamplePolicyStrict SamplePolicy = "strict"
)

const (
	minAge           = 16
	maxAge           = 28
	daysPerYear      = 365
	maxAdmissionDays = 1000
	maxCourseScore   = 5.0
)

// DefaultCoursesPerStudent is how many courses a student is enrolled in
const DefaultCoursesPerStudent = 5

// StudentOptions tunes student synthesis
type StudentOptions struct {
	CoursesPerStudent int
	SamplePolicy      SamplePolicy
	// Clock returns the current time; dates are derived from its calendar day.
	Clock func() time.Time
}

// StudentService synthesizes students against a college catalog
type StudentService interface {
	Generate(college *models.College) (*models.Student, error)
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	src    randsrc.Source
	ids    *IDGenerator
	opts   StudentOptions
	logger zerolog.Logger
}

// NewStudentService creates a new student service instance
func NewStudentService(src randsrc.Source, ids *IDGenerator, opts StudentOptions, lgr zerolog.Logger) StudentService {
	if opts.CoursesPerStudent <= 0 {
		opts.CoursesPerStudent = DefaultCoursesPerStudent
	}
	if opts.SamplePolicy == "" {
		opts.SamplePolicy = SamplePolicyCap
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	return &studentServiceImpl{
		src:    src,
		ids:    ids,
		opts:   opts,
		logger: lgr,
	}
}

// Generate produces one fully populated student placed in a random department
// of college. The student is not added to any roster.
func (s *studentServiceImpl) Generate(college *models.College) (*models.Student, error) {
	id := s.ids.Next()

	faculty, department, err := s.pickDepartment(college)
	if err != nil {
		return nil, err
	}

	name := randsrc.Choice(s.src, models.FirstNames) + " " + randsrc.Choice(s.src, models.Surnames)
	gender := randsrc.Choice(s.src, models.Genders)
	age := randsrc.Between(s.src, minAge, maxAge)

	today := helpers.StartOfDay(s.opts.Clock())
	dateOfBirth := helpers.DaysBefore(today, age*daysPerYear+randsrc.Between(s.src, 0, daysPerYear))
	admissionDate := helpers.DaysBefore(today, randsrc.Between(s.src, 0, maxAdmissionDays))

	email := strings.ReplaceAll(strings.ToLower(name), " ", ".") + "@" + models.EmailDomain
	phone := fmt.Sprintf("+234-%03d-%03d-%04d",
		randsrc.Between(s.src, 70, 90),
		randsrc.Between(s.src, 100, 999),
		randsrc.Between(s.src, 1000, 9999),
	)
	locality := randsrc.Choice(s.src, models.Localities)
	state := randsrc.Choice(s.src, models.States) + " state"

	level := s.pickLevel(faculty.Name)
	courses, err := s.assignCourses(department, level)
	if err != nil {
		return nil, err
	}

	student := &models.Student{
		ID:            id,
		Name:          name,
		Age:           age,
		Gender:        gender,
		Faculty:       faculty.Name,
		Department:    department.Name,
		Level:         level,
		DateOfBirth:   dateOfBirth,
		Email:         email,
		PhoneNumber:   phone,
		Locality:      locality,
		State:         state,
		AdmissionDate: admissionDate,
		Courses:       courses,
		GPA:           ComputeGPA(courses),
	}

	if err := validation.Struct(student); err != nil {
		return nil, fmt.Errorf("invalid student %d: %w", id, err)
	}

	s.logger.Debug().
		Int64("studentID", student.ID).
		Str("faculty", student.Faculty).
		Str("department", student.Department).
		Int("level", int(student.Level)).
		Float64("gpa", student.GPA).
		Msg("Student synthesized")

	return student, nil
}

// pickDepartment chooses a faculty uniformly, then one of its departments uniformly
func (s *studentServiceImpl) pickDepartment(college *models.College) (*models.Faculty, *models.Department, error) {
	if college == nil {
		return nil, nil, fmt.Errorf("%w: college is nil", apperrors.ErrEmptyCatalog)
	}

	facultyNames := college.FacultyNames()
	if len(facultyNames) == 0 {
		return nil, nil, fmt.Errorf("%w: college %q has no faculties", apperrors.ErrEmptyCatalog, college.Name)
	}
	faculty := college.Faculties[randsrc.Choice(s.src, facultyNames)]

	departmentNames := faculty.DepartmentNames()
	if len(departmentNames) == 0 {
		return nil, nil, fmt.Errorf("%w: faculty %q has no departments", apperrors.ErrEmptyCatalog, faculty.Name)
	}
	department := faculty.Departments[randsrc.Choice(s.src, departmentNames)]

	return faculty, department, nil
}

// pickLevel chooses an academic level; only Law students can be placed in level 500
func (s *studentServiceImpl) pickLevel(facultyName string) models.Level {
	if facultyName == models.FacultyLaw {
		return randsrc.Choice(s.src, models.LawLevels)
	}
	return randsrc.Choice(s.src, models.StandardLevels)
}

// assignCourses samples distinct courses from the department's catalog for
// level and scores each of them. A level without a catalog yields no courses.
func (s *studentServiceImpl) assignCourses(department *models.Department, level models.Level) (map[string]float64, error) {
	courses := make(map[string]float64)

	offered := distinctCodes(department.CoursesFor(level))
	if len(offered) == 0 {
		return courses, nil
	}

	want := s.opts.CoursesPerStudent
	if len(offered) < want {
		if s.opts.SamplePolicy == SamplePolicyStrict {
			return nil, fmt.Errorf("%w: %s level %d offers %d distinct courses, %d required",
				apperrors.ErrInsufficientCourses, department.Name, level, len(offered), want)
		}
		want = len(offered)
	}

	for _, code := range randsrc.Sample(s.src, offered, want) {
		courses[code] = helpers.Round2(randsrc.Uniform(s.src, maxCourseScore))
	}
	return courses, nil
}

// distinctCodes drops repeated codes, keeping first-seen order
func distinctCodes(codes []string) []string {
	seen := make(map[string]bool, len(codes))
	out := make([]string, 0, len(codes))
	for _, code := range codes {
		if seen[code] {
			continue
		}
		seen[code] = true
		out = append(out, code)
	}
	return out
}

// ComputeGPA returns the mean course score rounded to two decimals, or 0 with no courses.
// Scores are summed in course-code order so the result does not depend on map iteration.
func ComputeGPA(courses map[string]float64) float64 {
	if len(courses) == 0 {
		return 0
	}
	student := models.Student{Courses: courses}
	scores := make([]float64, 0, len(courses))
	for _, code := range student.CourseCodes() {
		scores = append(scores, courses[code])
	}
	return helpers.Round2(helpers.Mean(scores))
}
