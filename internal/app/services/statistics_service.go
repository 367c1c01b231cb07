package services

import (
	"sort"

	"github.com/rs/zerolog"

	"github.com/yigit/collegesim/internal/app/models"
	"github.com/yigit/collegesim/internal/app/models/dto"
	"github.com/yigit/collegesim/internal/app/repositories"
	"github.com/yigit/collegesim/internal/pkg/helpers"
	"github.com/yigit/collegesim/internal/pkg/randsrc"
)

// DefaultClusterSampleSize is how many students are sampled per department cluster
const DefaultClusterSampleSize = 3

// StatisticsService computes aggregate views over a populated college
type StatisticsService interface {
	CollegeStatistics(college *models.College) dto.CollegeStatistics
	DepartmentClusters(college *models.College) []dto.DepartmentCluster
}

// statisticsServiceImpl implements the StatisticsService interface
type statisticsServiceImpl struct {
	src        randsrc.Source
	sampleSize int
	logger     zerolog.Logger
}

// NewStatisticsService creates a new statistics service instance.
// A negative sampleSize falls back to DefaultClusterSampleSize.
func NewStatisticsService(src randsrc.Source, sampleSize int, lgr zerolog.Logger) StatisticsService {
	if sampleSize < 0 {
		sampleSize = DefaultClusterSampleSize
	}
	return &statisticsServiceImpl{
		src:        src,
		sampleSize: sampleSize,
		logger:     lgr,
	}
}

// CollegeStatistics lists the roster size of every department, grouped by faculty
func (s *statisticsServiceImpl) CollegeStatistics(college *models.College) dto.CollegeStatistics {
	repo := repositories.NewCollegeRepository(college)
	stats := dto.CollegeStatistics{
		CollegeName:   college.Name,
		TotalStudents: college.TotalStudents,
		Faculties:     []dto.FacultyStatistics{},
	}

	for _, faculty := range repo.GetAllFaculties() {
		facultyStats := dto.FacultyStatistics{Name: faculty.Name, Departments: []dto.DepartmentCount{}}
		for _, department := range repo.GetByFaculty(faculty) {
			facultyStats.Departments = append(facultyStats.Departments, dto.DepartmentCount{
				Name:     department.Name,
				Students: len(department.Students),
			})
		}
		stats.Faculties = append(stats.Faculties, facultyStats)
	}

	return stats
}

// DepartmentClusters summarizes every department that has at least one student
func (s *statisticsServiceImpl) DepartmentClusters(college *models.College) []dto.DepartmentCluster {
	clusters := []dto.DepartmentCluster{}

	repositories.NewCollegeRepository(college).ForEachDepartment(func(faculty *models.Faculty, department *models.Department) {
		if len(department.Students) == 0 {
			return
		}
		clusters = append(clusters, s.cluster(faculty, department))
	})

	s.logger.Debug().Int("clusters", len(clusters)).Msg("Department clusters computed")
	return clusters
}

func (s *statisticsServiceImpl) cluster(faculty *models.Faculty, department *models.Department) dto.DepartmentCluster {
	gpas := make([]float64, 0, len(department.Students))
	byLevel := make(map[models.Level]int)
	for _, student := range department.Students {
		gpas = append(gpas, student.GPA)
		byLevel[student.Level]++
	}

	return dto.DepartmentCluster{
		Faculty:      faculty.Name,
		Department:   department.Name,
		StudentCount: len(department.Students),
		AverageGPA:   helpers.Round2(helpers.Mean(gpas)),
		Levels:       levelHistogram(byLevel),
		Sample:       dto.NewStudentRecords(randsrc.Sample(s.src, department.Students, s.sampleSize)),
	}
}

// levelHistogram flattens level counts into ascending level order
func levelHistogram(byLevel map[models.Level]int) []dto.LevelCount {
	levels := make([]dto.LevelCount, 0, len(byLevel))
	for level, count := range byLevel {
		levels = append(levels, dto.LevelCount{Level: int(level), Count: count})
	}
	sort.Slice(levels, func(i, j int) bool { return levels[i].Level < levels[j].Level })
	return levels
}
