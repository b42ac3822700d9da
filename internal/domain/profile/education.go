package profile

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hirecoder/backend/internal/domain/shared"
)

// MaxDegrees caps the degrees listed on one profile
const MaxDegrees = 10

// Degree is an academic degree listed on a coder profile
type Degree struct {
	shared.BaseEntity
	UserID      uuid.UUID
	University  string
	Degree      string
	College     string
	PassingYear int
}

// NewDegree creates a degree entry; now bounds the passing year
func NewDegree(userID uuid.UUID, university, degree, college string, passingYear int, now time.Time) (*Degree, error) {
	var verrs shared.ValidationErrors
	university = checkText(&verrs, "university", university, 100, true)
	degree = checkText(&verrs, "degree", degree, 100, true)
	college = checkText(&verrs, "college", college, 100, true)
	if passingYear < MinCertificationYear || passingYear > now.Year() {
		verrs.Add("passing_year", fmt.Sprintf("Passing year must be between %d and %d", MinCertificationYear, now.Year()))
	}
	if err := verrs.Err(); err != nil {
		return nil, err
	}
	return &Degree{
		BaseEntity:  shared.NewBaseEntity(),
		UserID:      userID,
		University:  university,
		Degree:      degree,
		College:     college,
		PassingYear: passingYear,
	}, nil
}

// CheckDegreeAllowed rejects a degree name the user already lists and
// anything beyond MaxDegrees
func CheckDegreeAllowed(existing []*Degree, name string) error {
	for _, d := range existing {
		if strings.EqualFold(d.Degree, strings.TrimSpace(name)) {
			return shared.NewValidationError("degree",
				fmt.Sprintf("A degree with the name %s already exists for the user.", d.Degree))
		}
	}
	if len(existing) >= MaxDegrees {
		return shared.NewValidationError("degree", fmt.Sprintf("Cannot add more than %d degrees.", MaxDegrees))
	}
	return nil
}

// EducationInput carries the education links of a coder
type EducationInput struct {
	PortfolioURL string
	ResumeKey    string
}

func (in EducationInput) validate(userID uuid.UUID) (EducationInput, error) {
	var verrs shared.ValidationErrors
	in.PortfolioURL = checkURL(&verrs, "portfolio_url", in.PortfolioURL, 200, "")
	in.ResumeKey = checkFileKey(&verrs, "resume_key", in.ResumeKey, userID, FileKindResume)
	return in, verrs.Err()
}

// Education holds a coder's portfolio link and resume. One per coder.
type Education struct {
	shared.BaseEntity
	UserID uuid.UUID
	EducationInput
}

// NewEducation creates the education record of userID
func NewEducation(userID uuid.UUID, in EducationInput) (*Education, error) {
	in, err := in.validate(userID)
	if err != nil {
		return nil, err
	}
	return &Education{BaseEntity: shared.NewBaseEntity(), UserID: userID, EducationInput: in}, nil
}

// Update replaces every field
func (e *Education) Update(in EducationInput) error {
	in, err := in.validate(e.UserID)
	if err != nil {
		return err
	}
	e.EducationInput = in
	e.Touch()
	return nil
}
