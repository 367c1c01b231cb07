package models

import (
	"sort"
	"time"
)

// Student is a synthesized student record. It is created fully formed and is
// only ever appended to a single department roster afterwards.
type Student struct {
	ID            int64              `json:"id" yaml:"id" validate:"gt=0"`
	Name          string             `json:"name" yaml:"name" validate:"required"`
	Age           int                `json:"age" yaml:"age" validate:"gte=16,lte=28"`
	Gender        Gender             `json:"gender" yaml:"gender" validate:"oneof=Male Female"`
	Faculty       string             `json:"faculty" yaml:"faculty" validate:"required"`
	Department    string             `json:"department" yaml:"department" validate:"required"`
	Level         Level              `json:"level" yaml:"level" validate:"oneof=100 200 300 400 500"`
	DateOfBirth   time.Time          `json:"dateOfBirth" yaml:"date_of_birth" validate:"required"`
	Email         string             `json:"email" yaml:"email" validate:"required,student_email"`
	PhoneNumber   string             `json:"phoneNumber" yaml:"phone_number" validate:"required,phone"`
	Locality      string             `json:"lga" yaml:"lga" validate:"required"` // Local government area
	State         string             `json:"state" yaml:"state" validate:"required"`
	AdmissionDate time.Time          `json:"admissionDate" yaml:"admission_date" validate:"required"`
	Courses       map[string]float64 `json:"courses" yaml:"courses" validate:"dive,gte=0,lte=5"`
	GPA           float64            `json:"gpa" yaml:"gpa" validate:"gte=0,lte=5"`
}

// CourseCodes returns the codes of the student's courses in sorted order
func (s *Student) CourseCodes() []string {
	codes := make([]string, 0, len(s.Courses))
	for code := range s.Courses {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
