package services

// DefaultStudentIDBase is the value the student ID counter starts from;
// the first ID issued is DefaultStudentIDBase+1.
const DefaultStudentIDBase int64 = 210591000

// IDGenerator issues monotonically increasing student IDs. It is owned by the
// caller and is not safe for concurrent use.
type IDGenerator struct {
	last int64
}

// NewIDGenerator creates a generator whose first ID is base+1
func NewIDGenerator(base int64) *IDGenerator {
	return &IDGenerator{last: base}
}

// Next allocates the next ID
func (g *IDGenerator) Next() int64 {
	g.last++
	return g.last
}

// Last returns the most recently issued ID (the base if none has been issued)
func (g *IDGenerator) Last() int64 {
	return g.last
}
