package dto

// DepartmentCount is a department and the size of its roster
type DepartmentCount struct {
	Name     string `json:"name" yaml:"name"`
	Students int    `json:"students" yaml:"students"`
}

// FacultyStatistics lists every department of a faculty with its roster size,
// empty departments included.
type FacultyStatistics struct {
	Name        string            `json:"name" yaml:"name"`
	Departments []DepartmentCount `json:"departments" yaml:"departments"`
}

// CollegeStatistics is the flat per-faculty/per-department count view
type CollegeStatistics struct {
	CollegeName   string              `json:"collegeName" yaml:"college"`
	TotalStudents int                 `json:"totalStudents" yaml:"total_students"`
	Faculties     []FacultyStatistics `json:"faculties" yaml:"faculties"`
}

// LevelCount is one bucket of a level histogram
type LevelCount struct {
	Level int `json:"level" yaml:"level"`
	Count int `json:"count" yaml:"count"`
}

// DepartmentCluster summarizes one non-empty department roster
type DepartmentCluster struct {
	Faculty      string          `json:"faculty" yaml:"faculty"`
	Department   string          `json:"department" yaml:"department"`
	StudentCount int             `json:"studentCount" yaml:"student_count"`
	AverageGPA   float64         `json:"averageGpa" yaml:"average_gpa"`
	Levels       []LevelCount    `json:"levels" yaml:"levels"`
	Sample       []StudentRecord `json:"sample" yaml:"sample"`
}
