package catalog

// ExpertiseLevel is the seniority a posting asks for or a skill claims
type ExpertiseLevel string

const (
	ExpertiseBeginner     ExpertiseLevel = "BEGINNER"
	ExpertiseIntermediate ExpertiseLevel = "INTERMEDIATE"
	ExpertiseExpert       ExpertiseLevel = "EXPERT"
)

// AllExpertiseLevels lists levels from junior to senior
func AllExpertiseLevels() []ExpertiseLevel {
	return []ExpertiseLevel{ExpertiseBeginner, ExpertiseIntermediate, ExpertiseExpert}
}

// IsValid reports whether l is a known level
func (l ExpertiseLevel) IsValid() bool {
	switch l {
	case ExpertiseBeginner, ExpertiseIntermediate, ExpertiseExpert:
		return true
	}
	return false
}
