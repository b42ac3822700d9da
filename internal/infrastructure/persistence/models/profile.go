package models

import (
	"github.com/google/uuid"
	"github.com/hirecoder/backend/internal/domain/catalog"
	"github.com/hirecoder/backend/internal/domain/profile"
)

// SkillModel is the persistence model for a coder skill.
type SkillModel struct {
	BaseModel
	UserID            uuid.UUID              `gorm:"type:uuid;not null;index"`
	Technology        string                 `gorm:"type:varchar(255);not null"`
	YearsOfExperience int                    `gorm:"not null;default:0"`
	SkillType         profile.SkillType      `gorm:"type:varchar(20);not null"`
	ExpertiseLevel    catalog.ExpertiseLevel `gorm:"type:varchar(20);not null"`
}

// TableName returns the table name for GORM
func (SkillModel) TableName() string {
	return "skills"
}

// ToDomain converts the persistence model to a domain Skill.
func (m *SkillModel) ToDomain() *profile.Skill {
	return &profile.Skill{
		BaseEntity:        m.BaseModel.ToDomain(),
		UserID:            m.UserID,
		Technology:        m.Technology,
		YearsOfExperience: m.YearsOfExperience,
		SkillType:         m.SkillType,
		ExpertiseLevel:    m.ExpertiseLevel,
	}
}

// FromDomain populates the persistence model from a domain Skill.
func (m *SkillModel) FromDomain(s *profile.Skill) {
	m.FromDomainBaseEntity(s.BaseEntity)
	m.UserID = s.UserID
	m.Technology = s.Technology
	m.YearsOfExperience = s.YearsOfExperience
	m.SkillType = s.SkillType
	m.ExpertiseLevel = s.ExpertiseLevel
}

// CertificationModel is the persistence model for a certification.
type CertificationModel struct {
	BaseModel
	UserID         uuid.UUID `gorm:"type:uuid;not null;index"`
	Name           string    `gorm:"type:varchar(100);not null"`
	Year           int       `gorm:"not null"`
	CertificateURL string    `gorm:"type:varchar(500)"`
}

// TableName returns the table name for GORM
func (CertificationModel) TableName() string {
	return "certifications"
}

// ToDomain converts the persistence model to a domain Certification.
func (m *CertificationModel) ToDomain() *profile.Certification {
	return &profile.Certification{
		BaseEntity:     m.BaseModel.ToDomain(),
		UserID:         m.UserID,
		Name:           m.Name,
		Year:           m.Year,
		CertificateURL: m.CertificateURL,
	}
}

// FromDomain populates the persistence model from a domain Certification.
func (m *CertificationModel) FromDomain(c *profile.Certification) {
	m.FromDomainBaseEntity(c.BaseEntity)
	m.UserID = c.UserID
	m.Name = c.Name
	m.Year = c.Year
	m.CertificateURL = c.CertificateURL
}

// AddressModel is the persistence model for a user's address.
type AddressModel struct {
	BaseModel
	UserID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	AddressLine1 string    `gorm:"column:address_line_1;type:varchar(200)"`
	AddressLine2 string    `gorm:"column:address_line_2;type:varchar(200)"`
	Country      string    `gorm:"type:varchar(100)"`
	City         string    `gorm:"type:varchar(100)"`
	State        string    `gorm:"type:varchar(100)"`
	ZipCode      string    `gorm:"type:varchar(10)"`
}

// TableName returns the table name for GORM
func (AddressModel) TableName() string {
	return "addresses"
}

// ToDomain converts the persistence model to a domain Address.
func (m *AddressModel) ToDomain() *profile.Address {
	return &profile.Address{
		BaseEntity: m.BaseModel.ToDomain(),
		UserID:     m.UserID,
		AddressInput: profile.AddressInput{
			AddressLine1: m.AddressLine1,
			AddressLine2: m.AddressLine2,
			Country:      m.Country,
			City:         m.City,
			State:        m.State,
			ZipCode:      m.ZipCode,
		},
	}
}

// FromDomain populates the persistence model from a domain Address.
func (m *AddressModel) FromDomain(a *profile.Address) {
	m.FromDomainBaseEntity(a.BaseEntity)
	m.UserID = a.UserID
	m.AddressLine1 = a.AddressLine1
	m.AddressLine2 = a.AddressLine2
	m.Country = a.Country
	m.City = a.City
	m.State = a.State
	m.ZipCode = a.ZipCode
}

// DigitalPresenceModel is the persistence model for a user's profile links.
type DigitalPresenceModel struct {
	BaseModel
	UserID           uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	LinkedinURL      string    `gorm:"type:varchar(200)"`
	GithubURL        string    `gorm:"type:varchar(200)"`
	StackoverflowURL string    `gorm:"type:varchar(200)"`
	GlassdoorURL     string    `gorm:"type:varchar(100)"`
	CareerBlissURL   string    `gorm:"type:varchar(100)"`
	YoutubeURL       string    `gorm:"type:varchar(200)"`
	OtherSocialURL   string    `gorm:"type:varchar(200)"`
}

// TableName returns the table name for GORM
func (DigitalPresenceModel) TableName() string {
	return "digital_presences"
}

func (m *DigitalPresenceModel) ToDomain() *profile.DigitalPresence {
	return &profile.DigitalPresence{
		BaseEntity: m.BaseModel.ToDomain(),
		UserID:     m.UserID,
		DigitalPresenceInput: profile.DigitalPresenceInput{
			LinkedinURL:      m.LinkedinURL,
			GithubURL:        m.GithubURL,
			StackoverflowURL: m.StackoverflowURL,
			GlassdoorURL:     m.GlassdoorURL,
			CareerBlissURL:   m.CareerBlissURL,
			YoutubeURL:       m.YoutubeURL,
			OtherSocialURL:   m.OtherSocialURL,
		},
	}
}

func (m *DigitalPresenceModel) FromDomain(d *profile.DigitalPresence) {
	m.FromDomainBaseEntity(d.BaseEntity)
	m.UserID = d.UserID
	m.LinkedinURL = d.LinkedinURL
	m.GithubURL = d.GithubURL
	m.StackoverflowURL = d.StackoverflowURL
	m.GlassdoorURL = d.GlassdoorURL
	m.CareerBlissURL = d.CareerBlissURL
	m.YoutubeURL = d.YoutubeURL
	m.OtherSocialURL = d.OtherSocialURL
}

// CompanyDetailsModel is the persistence model for a client's company.
type CompanyDetailsModel struct {
	BaseModel
	UserID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	CompanyName    string    `gorm:"type:varchar(255)"`
	CompanyWebsite string    `gorm:"type:varchar(200)"`
	LinkedinURL    string    `gorm:"type:varchar(200)"`
	LogoKey        string    `gorm:"type:varchar(500)"`
}

// TableName returns the table name for GORM
func (CompanyDetailsModel) TableName() string {
	return "company_details"
}

func (m *CompanyDetailsModel) ToDomain() *profile.CompanyDetails {
	return &profile.CompanyDetails{
		BaseEntity: m.BaseModel.ToDomain(),
		UserID:     m.UserID,
		CompanyDetailsInput: profile.CompanyDetailsInput{
			CompanyName:    m.CompanyName,
			CompanyWebsite: m.CompanyWebsite,
			LinkedinURL:    m.LinkedinURL,
			LogoKey:        m.LogoKey,
		},
	}
}

func (m *CompanyDetailsModel) FromDomain(c *profile.CompanyDetails) {
	m.FromDomainBaseEntity(c.BaseEntity)
	m.UserID = c.UserID
	m.CompanyName = c.CompanyName
	m.CompanyWebsite = c.CompanyWebsite
	m.LinkedinURL = c.LinkedinURL
	m.LogoKey = c.LogoKey
}

// CoderExperienceModel is the persistence model for a coder's experience summary.
type CoderExperienceModel struct {
	BaseModel
	UserID                 uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Introduction           string    `gorm:"type:text"`
	TotalYearsOfExperience int       `gorm:"not null;default:0"`
	Identity               string    `gorm:"type:varchar(100);not null"`
	HourlyRate             int       `gorm:"not null"`
	BriefWorkExperience    string    `gorm:"type:text;not null"`
	ProfilePictureKey      string    `gorm:"type:varchar(500)"`
}

// TableName returns the table name for GORM
func (CoderExperienceModel) TableName() string {
	return "coder_experiences"
}

func (m *CoderExperienceModel) ToDomain() *profile.CoderExperience {
	return &profile.CoderExperience{
		BaseEntity: m.BaseModel.ToDomain(),
		UserID:     m.UserID,
		ExperienceInput: profile.ExperienceInput{
			Introduction:           m.Introduction,
			TotalYearsOfExperience: m.TotalYearsOfExperience,
			Identity:               m.Identity,
			HourlyRate:             m.HourlyRate,
			BriefWorkExperience:    m.BriefWorkExperience,
			ProfilePictureKey:      m.ProfilePictureKey,
		},
	}
}

func (m *CoderExperienceModel) FromDomain(e *profile.CoderExperience) {
	m.FromDomainBaseEntity(e.BaseEntity)
	m.UserID = e.UserID
	m.Introduction = e.Introduction
	m.TotalYearsOfExperience = e.TotalYearsOfExperience
	m.Identity = e.Identity
	m.HourlyRate = e.HourlyRate
	m.BriefWorkExperience = e.BriefWorkExperience
	m.ProfilePictureKey = e.ProfilePictureKey
}

// DegreeModel is the persistence model for a degree.
type DegreeModel struct {
	BaseModel
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	University  string    `gorm:"type:varchar(100);not null"`
	Degree      string    `gorm:"type:varchar(100);not null"`
	College     string    `gorm:"type:varchar(100);not null"`
	PassingYear int       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (DegreeModel) TableName() string {
	return "degrees"
}

func (m *DegreeModel) ToDomain() *profile.Degree {
	return &profile.Degree{
		BaseEntity:  m.BaseModel.ToDomain(),
		UserID:      m.UserID,
		University:  m.University,
		Degree:      m.Degree,
		College:     m.College,
		PassingYear: m.PassingYear,
	}
}

func (m *DegreeModel) FromDomain(d *profile.Degree) {
	m.FromDomainBaseEntity(d.BaseEntity)
	m.UserID = d.UserID
	m.University = d.University
	m.Degree = d.Degree
	m.College = d.College
	m.PassingYear = d.PassingYear
}

// EducationModel is the persistence model for a coder's education record.
type EducationModel struct {
	BaseModel
	UserID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	PortfolioURL string    `gorm:"type:varchar(200)"`
	ResumeKey    string    `gorm:"type:varchar(500)"`
}

// TableName returns the table name for GORM
func (EducationModel) TableName() string {
	return "educations"
}

func (m *EducationModel) ToDomain() *profile.Education {
	return &profile.Education{
		BaseEntity: m.BaseModel.ToDomain(),
		UserID:     m.UserID,
		EducationInput: profile.EducationInput{
			PortfolioURL: m.PortfolioURL,
			ResumeKey:    m.ResumeKey,
		},
	}
}

func (m *EducationModel) FromDomain(e *profile.Education) {
	m.FromDomainBaseEntity(e.BaseEntity)
	m.UserID = e.UserID
	m.PortfolioURL = e.PortfolioURL
	m.ResumeKey = e.ResumeKey
}
