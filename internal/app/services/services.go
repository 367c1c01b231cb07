package services

// Services defined in this package:
// - CatalogService: builds the faculty -> department -> course hierarchy
// - StudentService: synthesizes one student against a college catalog
// - EnrollmentService: places students on rosters and keeps the college total
// - StatisticsService: flat department counts and department clusters
