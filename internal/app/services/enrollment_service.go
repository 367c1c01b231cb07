package services

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/yigit/collegesim/internal/app/models"
	"github.com/yigit/collegesim/internal/app/repositories"
	"github.com/yigit/collegesim/internal/pkg/apperrors"
)

// EnrollmentService places synthesized students on department rosters and
// owns the college's total student counter.
type EnrollmentService interface {
	Enroll(college *models.College, student *models.Student) error
	Distribute(college *models.College, students StudentService, n int) ([]*models.Student, error)
	VerifyTotals(college *models.College) error
}

// enrollmentServiceImpl implements the EnrollmentService interface
type enrollmentServiceImpl struct {
	logger zerolog.Logger
}

// NewEnrollmentService creates a new enrollment service instance
func NewEnrollmentService(lgr zerolog.Logger) EnrollmentService {
	return &enrollmentServiceImpl{logger: lgr}
}

// Enroll appends student to its department's roster and increments the college total by one
func (s *enrollmentServiceImpl) Enroll(college *models.College, student *models.Student) error {
	if college == nil || student == nil {
		return fmt.Errorf("%w: college and student are required", apperrors.ErrValidationFailed)
	}

	department, err := repositories.NewCollegeRepository(college).GetDepartment(student.Faculty, student.Department)
	if err != nil {
		return fmt.Errorf("error enrolling student %d: %w", student.ID, err)
	}

	department.Students = append(department.Students, student)
	college.TotalStudents++
	return nil
}

// Distribute synthesizes n students and enrolls each one as soon as it is
// generated. It stops at the first failure and returns the students enrolled so far.
func (s *enrollmentServiceImpl) Distribute(college *models.College, students StudentService, n int) ([]*models.Student, error) {
	enrolled := make([]*models.Student, 0, n)
	for i := 0; i < n; i++ {
		student, err := students.Generate(college)
		if err != nil {
			return enrolled, fmt.Errorf("error generating student %d of %d: %w", i+1, n, err)
		}
		if err := s.Enroll(college, student); err != nil {
			return enrolled, err
		}
		enrolled = append(enrolled, student)
	}

	s.logger.Info().
		Int("students", len(enrolled)).
		Int("totalStudents", college.TotalStudents).
		Msg("Students distributed")
	return enrolled, nil
}

// VerifyTotals checks that the college total equals the sum of all roster sizes
func (s *enrollmentServiceImpl) VerifyTotals(college *models.College) error {
	enrolled := repositories.NewCollegeRepository(college).CountEnrolled()
	if enrolled != college.TotalStudents {
		return apperrors.NewCustomError(apperrors.ErrEnrollmentMismatch,
			fmt.Sprintf("college %q reports %d students but rosters hold %d", college.Name, college.TotalStudents, enrolled)).
			WithCode("ENROLLMENT_MISMATCH").
			WithDetails(map[string]interface{}{
				"totalStudents": college.TotalStudents,
				"enrolled":      enrolled,
			})
	}
	return nil
}
