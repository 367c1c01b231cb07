package models

// Level is a student's academic standing. It gates which courses a student
// can be enrolled in.
type Level int

// Level constants
const (
	Level100 Level = 100
	Level200 Level = 200
	Level300 Level = 300
	Level400 Level = 400
	Level500 Level = 500 // Only offered by the Law faculty
)

// StandardLevels are the levels every department offers courses for.
var StandardLevels = []Level{Level100, Level200, Level300, Level400}

// LawLevels are the levels a Law faculty student can be placed in.
var LawLevels = []Level{Level100, Level200, Level300, Level400, Level500}

// Gender represents a student's gender
type Gender string

// Gender constants
const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

// Genders lists every Gender value.
var Genders = []Gender{GenderMale, GenderFemale}

// Term represents a semester within an academic level
type Term int

// Term constants
const (
	TermFirst  Term = 1
	TermSecond Term = 2
)

// Terms lists the semesters of a level in order.
var Terms = []Term{TermFirst, TermSecond}

// FacultyLaw is the only faculty whose students can reach level 500.
const FacultyLaw = "Law"

// FacultyDefinition is one row of the static faculty table the catalog is built from.
type FacultyDefinition struct {
	Name        string   `yaml:"name"`
	Departments []string `yaml:"departments"`
}
