package services

import (
	"math"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/yigit/collegesim/internal/app/models"
	"github.com/yigit/collegesim/internal/pkg/randsrc"
)

// defaultTable mirrors the seed table without importing the seed package
var defaultTable = []models.FacultyDefinition{
	{Name: "Science", Departments: []string{"Computer Science", "Chemistry", "Physics", "Mathematics"}},
	{Name: "Law", Departments: []string{"Civil Law", "Criminal Law", "Tech Law"}},
	{Name: "Arts", Departments: []string{"Literature", "History and International Relations", "English"}},
	{Name: "Engineering", Departments: []string{"Mechanical Engineering", "Electrical Engineering", "Computer Engineering"}},
	{Name: "Management Science", Departments: []string{"Business Administration", "Accounting"}},
	{Name: "Education", Departments: []string{"Computer Science Education", "Biology Education", "Political Education"}},
}

var fixedNow = time.Date(2026, time.October, 16, 9, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func testLogger() zerolog.Logger { return zerolog.Nop() }

func newTestCollege(t *testing.T) *models.College {
	t.Helper()
	college, err := NewCatalogService(testLogger()).BuildCollege("Sample College", defaultTable)
	if err != nil {
		t.Fatalf("building college: %v", err)
	}
	return college
}

func newTestStudentService(seed int64, opts StudentOptions) (StudentService, *IDGenerator) {
	ids := NewIDGenerator(DefaultStudentIDBase)
	if opts.Clock == nil {
		opts.Clock = fixedClock
	}
	return NewStudentService(randsrc.New(seed), ids, opts, testLogger()), ids
}

func hasTwoDecimals(v float64) bool {
	return math.Abs(v*100-math.Round(v*100)) < 1e-6
}
