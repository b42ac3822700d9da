package profile

import (
	"github.com/google/uuid"
	"github.com/hirecoder/backend/internal/domain/shared"
)

// CompanyDetailsInput carries the editable company fields of a client
type CompanyDetailsInput struct {
	CompanyName    string
	CompanyWebsite string
	LinkedinURL    string
	LogoKey        string
}

func (in CompanyDetailsInput) validate(userID uuid.UUID) (CompanyDetailsInput, error) {
	var verrs shared.ValidationErrors
	in.CompanyName = checkText(&verrs, "company_name", in.CompanyName, 255, false)
	in.CompanyWebsite = checkURL(&verrs, "company_website", in.CompanyWebsite, 200, "")
	in.LinkedinURL = checkURL(&verrs, "linkedin_url", in.LinkedinURL, 200, "")
	in.LogoKey = checkFileKey(&verrs, "logo_key", in.LogoKey, userID, FileKindLogo)
	return in, verrs.Err()
}

// CompanyDetails describes the company a client hires for. One per client.
type CompanyDetails struct {
	shared.BaseEntity
	UserID uuid.UUID
	CompanyDetailsInput
}

// NewCompanyDetails creates the company details of userID
func NewCompanyDetails(userID uuid.UUID, in CompanyDetailsInput) (*CompanyDetails, error) {
	in, err := in.validate(userID)
	if err != nil {
		return nil, err
	}
	return &CompanyDetails{BaseEntity: shared.NewBaseEntity(), UserID: userID, CompanyDetailsInput: in}, nil
}

// Update replaces every field
func (c *CompanyDetails) Update(in CompanyDetailsInput) error {
	in, err := in.validate(c.UserID)
	if err != nil {
		return err
	}
	c.CompanyDetailsInput = in
	c.Touch()
	return nil
}
