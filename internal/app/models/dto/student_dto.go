package dto

import (
	"github.com/yigit/collegesim/internal/app/models"
	"github.com/yigit/collegesim/internal/pkg/helpers"
)

// CourseScore is one course a student takes and the score earned in it
type CourseScore struct {
	Code  string  `json:"code" yaml:"code"`
	Score float64 `json:"score" yaml:"score"`
}

// StudentRecord is the printable form of a student, with dates as calendar strings
// and courses in code order.
type StudentRecord struct {
	ID            int64         `json:"id" yaml:"id"`
	Name          string        `json:"name" yaml:"name"`
	Age           int           `json:"age" yaml:"age"`
	Gender        string        `json:"gender" yaml:"gender"`
	DateOfBirth   string        `json:"dateOfBirth" yaml:"date_of_birth"`
	Faculty       string        `json:"faculty" yaml:"faculty"`
	Department    string        `json:"department" yaml:"department"`
	Level         int           `json:"level" yaml:"level"`
	Email         string        `json:"email" yaml:"email"`
	PhoneNumber   string        `json:"phoneNumber" yaml:"phone_number"`
	LGA           string        `json:"lga" yaml:"lga"`
	State         string        `json:"state" yaml:"state"`
	AdmissionDate string        `json:"admissionDate" yaml:"admission_date"`
	GPA           float64       `json:"gpa" yaml:"gpa"`
	Courses       []CourseScore `json:"courses" yaml:"courses"`
}

// NewStudentRecord converts a student model into its printable record
func NewStudentRecord(student *models.Student) StudentRecord {
	codes := student.CourseCodes()
	courses := make([]CourseScore, 0, len(codes))
	for _, code := range codes {
		courses = append(courses, CourseScore{Code: code, Score: student.Courses[code]})
	}

	return StudentRecord{
		ID:            student.ID,
		Name:          student.Name,
		Age:           student.Age,
		Gender:        string(student.Gender),
		DateOfBirth:   helpers.FormatDate(student.DateOfBirth),
		Faculty:       student.Faculty,
		Department:    student.Department,
		Level:         int(student.Level),
		Email:         student.Email,
		PhoneNumber:   student.PhoneNumber,
		LGA:           student.Locality,
		State:         student.State,
		AdmissionDate: helpers.FormatDate(student.AdmissionDate),
		GPA:           student.GPA,
		Courses:       courses,
	}
}

// NewStudentRecords converts students, keeping their order
func NewStudentRecords(students []*models.Student) []StudentRecord {
	records := make([]StudentRecord, 0, len(students))
	for _, student := range students {
		records = append(records, NewStudentRecord(student))
	}
	return records
}
