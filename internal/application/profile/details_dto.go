package profile

import (
	"time"

	"github.com/google/uuid"
	"github.com/hirecoder/backend/internal/domain/profile"
)

// AddressRequest represents the caller's address. Omitted fields are cleared.
type AddressRequest struct {
	AddressLine1 string `json:"address_line_1" binding:"max=200"`
	AddressLine2 string `json:"address_line_2" binding:"max=200"`
	Country      string `json:"country" binding:"max=100"`
	City         string `json:"city" binding:"max=100"`
	State        string `json:"state" binding:"max=100"`
	ZipCode      string `json:"zip_code" binding:"max=10"`
}

func (r AddressRequest) toInput() profile.AddressInput {
	return profile.AddressInput{
		AddressLine1: r.AddressLine1,
		AddressLine2: r.AddressLine2,
		Country:      r.Country,
		City:         r.City,
		State:        r.State,
		ZipCode:      r.ZipCode,
	}
}

// AddressResponse represents an address in API responses
type AddressResponse struct {
	ID           uuid.UUID `json:"id"`
	AddressLine1 string    `json:"address_line_1"`
	AddressLine2 string    `json:"address_line_2"`
	Country      string    `json:"country"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	ZipCode      string    `json:"zip_code"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ToAddressResponse converts a domain Address to AddressResponse
func ToAddressResponse(a *profile.Address) AddressResponse {
	return AddressResponse{
		ID:           a.ID,
		AddressLine1: a.AddressLine1,
		AddressLine2: a.AddressLine2,
		Country:      a.Country,
		City:         a.City,
		State:        a.State,
		ZipCode:      a.ZipCode,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

// DigitalPresenceRequest represents the caller's profile links.
// Links the caller's role does not maintain are ignored.
type DigitalPresenceRequest struct {
	LinkedinURL      string `json:"linkedin_url" binding:"max=200"`
	GithubURL        string `json:"github_url" binding:"max=200"`
	StackoverflowURL string `json:"stackoverflow_url" binding:"max=200"`
	GlassdoorURL     string `json:"glassdoor_url" binding:"max=100"`
	CareerBlissURL   string `json:"career_bliss_url" binding:"max=100"`
	YoutubeURL       string `json:"youtube_url" binding:"max=200"`
	OtherSocialURL   string `json:"other_social_url" binding:"max=200"`
}

func (r DigitalPresenceRequest) toInput() profile.DigitalPresenceInput {
	return profile.DigitalPresenceInput{
		LinkedinURL:      r.LinkedinURL,
		GithubURL:        r.GithubURL,
		StackoverflowURL: r.StackoverflowURL,
		GlassdoorURL:     r.GlassdoorURL,
		CareerBlissURL:   r.CareerBlissURL,
		YoutubeURL:       r.YoutubeURL,
		OtherSocialURL:   r.OtherSocialURL,
	}
}

// DigitalPresenceResponse represents profile links in API responses
type DigitalPresenceResponse struct {
	ID               uuid.UUID `json:"id"`
	LinkedinURL      string    `json:"linkedin_url,omitempty"`
	GithubURL        string    `json:"github_url,omitempty"`
	StackoverflowURL string    `json:"stackoverflow_url,omitempty"`
	GlassdoorURL     string    `json:"glassdoor_url,omitempty"`
	CareerBlissURL   string    `json:"career_bliss_url,omitempty"`
	YoutubeURL       string    `json:"youtube_url,omitempty"`
	OtherSocialURL   string    `json:"other_social_url,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// ToDigitalPresenceResponse converts a domain DigitalPresence to DigitalPresenceResponse
func ToDigitalPresenceResponse(d *profile.DigitalPresence) DigitalPresenceResponse {
	return DigitalPresenceResponse{
		ID:               d.ID,
		LinkedinURL:      d.LinkedinURL,
		GithubURL:        d.GithubURL,
		StackoverflowURL: d.StackoverflowURL,
		GlassdoorURL:     d.GlassdoorURL,
		CareerBlissURL:   d.CareerBlissURL,
		YoutubeURL:       d.YoutubeURL,
		OtherSocialURL:   d.OtherSocialURL,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
}

// CompanyDetailsRequest represents a client's company
type CompanyDetailsRequest struct {
	CompanyName    string `json:"company_name" binding:"max=255"`
	CompanyWebsite string `json:"company_website" binding:"omitempty,url,max=200"`
	LinkedinURL    string `json:"linkedin_url" binding:"omitempty,url,max=200"`
	// LogoKey comes from a logo upload request
	LogoKey string `json:"logo_key" binding:"max=500"`
}

func (r CompanyDetailsRequest) toInput() profile.CompanyDetailsInput {
	return profile.CompanyDetailsInput{
		CompanyName:    r.CompanyName,
		CompanyWebsite: r.CompanyWebsite,
		LinkedinURL:    r.LinkedinURL,
		LogoKey:        r.LogoKey,
	}
}

// CompanyDetailsResponse represents a company in API responses
type CompanyDetailsResponse struct {
	ID             uuid.UUID `json:"id"`
	CompanyName    string    `json:"company_name"`
	CompanyWebsite string    `json:"company_website,omitempty"`
	LinkedinURL    string    `json:"linkedin_url,omitempty"`
	LogoKey        string    `json:"logo_key,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ToCompanyDetailsResponse converts domain CompanyDetails to CompanyDetailsResponse
func ToCompanyDetailsResponse(c *profile.CompanyDetails) CompanyDetailsResponse {
	return CompanyDetailsResponse{
		ID:             c.ID,
		CompanyName:    c.CompanyName,
		CompanyWebsite: c.CompanyWebsite,
		LinkedinURL:    c.LinkedinURL,
		LogoKey:        c.LogoKey,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

// ExperienceRequest represents a coder's skills-and-experience summary
type ExperienceRequest struct {
	Introduction           string `json:"introduction" binding:"max=5000"`
	TotalYearsOfExperience int    `json:"total_years_of_experience" binding:"min=0,max=50"`
	Identity               string `json:"identity" binding:"required,max=100"`
	HourlyRate             int    `json:"hourly_rate" binding:"required,min=5,max=999"`
	BriefWorkExperience    string `json:"brief_work_experience" binding:"required,max=1000"`
	ProfilePictureKey      string `json:"profile_picture_key" binding:"max=500"`
}

func (r ExperienceRequest) toInput() profile.ExperienceInput {
	return profile.ExperienceInput{
		Introduction:           r.Introduction,
		TotalYearsOfExperience: r.TotalYearsOfExperience,
		Identity:               r.Identity,
		HourlyRate:             r.HourlyRate,
		BriefWorkExperience:    r.BriefWorkExperience,
		ProfilePictureKey:      r.ProfilePictureKey,
	}
}

// ExperienceResponse represents a coder's summary together with their skills
type ExperienceResponse struct {
	ID                     uuid.UUID       `json:"id"`
	Introduction           string          `json:"introduction,omitempty"`
	TotalYearsOfExperience int             `json:"total_years_of_experience"`
	Identity               string          `json:"identity"`
	HourlyRate             int             `json:"hourly_rate"`
	BriefWorkExperience    string          `json:"brief_work_experience"`
	ProfilePictureKey      string          `json:"profile_picture_key,omitempty"`
	Skills                 []SkillResponse `json:"skills"`
	CreatedAt              time.Time       `json:"created_at"`
	UpdatedAt              time.Time       `json:"updated_at"`
}

// ToExperienceResponse converts a domain CoderExperience and its owner's skills
func ToExperienceResponse(e *profile.CoderExperience, skills []*profile.Skill) ExperienceResponse {
	out := ExperienceResponse{
		ID:                     e.ID,
		Introduction:           e.Introduction,
		TotalYearsOfExperience: e.TotalYearsOfExperience,
		Identity:               e.Identity,
		HourlyRate:             e.HourlyRate,
		BriefWorkExperience:    e.BriefWorkExperience,
		ProfilePictureKey:      e.ProfilePictureKey,
		Skills:                 make([]SkillResponse, len(skills)),
		CreatedAt:              e.CreatedAt,
		UpdatedAt:              e.UpdatedAt,
	}
	for i, s := range skills {
		out.Skills[i] = ToSkillResponse(s)
	}
	return out
}

// AddDegreeRequest represents a degree to list on the caller's profile
type AddDegreeRequest struct {
	University  string `json:"university" binding:"required,max=100"`
	Degree      string `json:"degree" binding:"required,max=100"`
	College     string `json:"college" binding:"required,max=100"`
	PassingYear int    `json:"passing_year" binding:"required"`
}

// DegreeResponse represents a degree in API responses
type DegreeResponse struct {
	ID          uuid.UUID `json:"id"`
	University  string    `json:"university"`
	Degree      string    `json:"degree"`
	College     string    `json:"college"`
	PassingYear int       `json:"passing_year"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToDegreeResponse converts a domain Degree to DegreeResponse
func ToDegreeResponse(d *profile.Degree) DegreeResponse {
	return DegreeResponse{
		ID:          d.ID,
		University:  d.University,
		Degree:      d.Degree,
		College:     d.College,
		PassingYear: d.PassingYear,
		CreatedAt:   d.CreatedAt,
	}
}

// EducationRequest represents a coder's portfolio and resume
type EducationRequest struct {
	PortfolioURL string `json:"portfolio_url" binding:"omitempty,url,max=200"`
	// ResumeKey comes from a resume upload request
	ResumeKey string `json:"resume_key" binding:"max=500"`
}

// EducationResponse represents education details with the listed degrees
type EducationResponse struct {
	ID           uuid.UUID        `json:"id"`
	PortfolioURL string           `json:"portfolio_url,omitempty"`
	ResumeKey    string           `json:"resume_key,omitempty"`
	Degrees      []DegreeResponse `json:"degrees"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// ToEducationResponse converts a domain Education and its owner's degrees
func ToEducationResponse(e *profile.Education, degrees []*profile.Degree) EducationResponse {
	out := EducationResponse{
		ID:           e.ID,
		PortfolioURL: e.PortfolioURL,
		ResumeKey:    e.ResumeKey,
		Degrees:      make([]DegreeResponse, len(degrees)),
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
	for i, d := range degrees {
		out.Degrees[i] = ToDegreeResponse(d)
	}
	return out
}

// FileUploadRequest asks for a presigned upload URL for a profile file
type FileUploadRequest struct {
	Kind        profile.FileKind `json:"kind" binding:"required,oneof=logo profile_picture resume"`
	FileName    string           `json:"file_name" binding:"required,max=255"`
	ContentType string           `json:"content_type" binding:"required,max=100"`
}

// FileURLResponse is a presigned transfer URL for a profile file
type FileURLResponse struct {
	URL       string    `json:"url"`
	Method    string    `json:"method"`
	Key       string    `json:"key"`
	ExpiresAt time.Time `json:"expires_at"`
}
