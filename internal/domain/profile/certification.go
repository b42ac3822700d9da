package profile

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hirecoder/backend/internal/domain/shared"
)

// MinCertificationYear is the earliest accepted certification year
const MinCertificationYear = 1960

// Certification is a credential listed on a profile
type Certification struct {
	shared.BaseEntity
	UserID         uuid.UUID
	Name           string
	Year           int
	CertificateURL string
}

// NewCertification creates a certification entry; now bounds the year
func NewCertification(userID uuid.UUID, name string, year int, certificateURL string, now time.Time) (*Certification, error) {
	var verrs shared.ValidationErrors
	name = strings.TrimSpace(name)
	if name == "" {
		verrs.Add("name", "Name is required")
	} else if len(name) > 100 {
		verrs.Add("name", "Name cannot exceed 100 characters")
	}
	if year < MinCertificationYear || year > now.Year() {
		verrs.Add("year", fmt.Sprintf("Year must be between %d and %d", MinCertificationYear, now.Year()))
	}
	certificateURL = strings.TrimSpace(certificateURL)
	if certificateURL != "" && !isWebURL(certificateURL) {
		verrs.Add("certificate_url", "Enter a valid URL")
	}
	if err := verrs.Err(); err != nil {
		return nil, err
	}
	return &Certification{
		BaseEntity:     shared.NewBaseEntity(),
		UserID:         userID,
		Name:           name,
		Year:           year,
		CertificateURL: certificateURL,
	}, nil
}
