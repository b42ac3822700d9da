package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/hirecoder/backend/internal/domain/catalog"
	"github.com/hirecoder/backend/internal/domain/job"
	"github.com/shopspring/decimal"
)

// JobPostingModel is the persistence model for the JobPosting aggregate.
// Technologies and time zones live in child tables keyed by posting.
type JobPostingModel struct {
	AggregateModel
	ClientID                uuid.UUID                   `gorm:"type:uuid;not null;index"`
	Title                   string                      `gorm:"type:varchar(255);not null"`
	Description             string                      `gorm:"type:text;not null"`
	ProjectSize             job.ProjectSize             `gorm:"type:varchar(10);not null"`
	BudgetType              job.BudgetType              `gorm:"type:varchar(10);not null;index"`
	ExpertiseBeginner       bool                        `gorm:"not null;default:false"`
	ExpertiseIntermediate   bool                        `gorm:"not null;default:false"`
	ExpertiseExpert         bool                        `gorm:"not null;default:false"`
	Duration                job.Duration                `gorm:"type:varchar(20);not null"`
	Status                  job.PostingStatus           `gorm:"type:varchar(10);not null;default:'OPEN';index"`
	MaximumBudget           *decimal.Decimal            `gorm:"type:decimal(18,2)"`
	MaximumHourlyRate       *int                        `gorm:"type:integer"`
	MinimumHourlyRate       *int                        `gorm:"type:integer"`
	PreferredCoderResidence job.Residence               `gorm:"type:varchar(30);not null"`
	Technologies            []JobPostingTechnologyModel `gorm:"foreignKey:JobPostingID;constraint:OnDelete:CASCADE"`
	TimeZones               []JobPostingTimeZoneModel   `gorm:"foreignKey:JobPostingID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (JobPostingModel) TableName() string {
	return "job_postings"
}

// JobPostingTechnologyModel links a posting to a technology name.
type JobPostingTechnologyModel struct {
	JobPostingID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	TechnologyName string    `gorm:"type:varchar(255);primaryKey;index"`
	Position       int       `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (JobPostingTechnologyModel) TableName() string {
	return "job_posting_technologies"
}

// JobPostingTimeZoneModel links a posting to a time zone name.
type JobPostingTimeZoneModel struct {
	JobPostingID uuid.UUID `gorm:"type:uuid;primaryKey"`
	TimeZoneName string    `gorm:"type:varchar(64);primaryKey;index"`
	Position     int       `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (JobPostingTimeZoneModel) TableName() string {
	return "job_posting_time_zones"
}

// ToDomain converts the persistence model to a domain JobPosting.
// Child rows must be preloaded in position order.
func (m *JobPostingModel) ToDomain() *job.JobPosting {
	p := &job.JobPosting{
		BaseAggregateRoot:       m.ToAggregateRoot(),
		ClientID:                m.ClientID,
		Title:                   m.Title,
		Description:             m.Description,
		Technologies:            make([]string, 0, len(m.Technologies)),
		TimeZones:               make([]string, 0, len(m.TimeZones)),
		ProjectSize:             m.ProjectSize,
		BudgetType:              m.BudgetType,
		ExpertiseLevels:         make([]catalog.ExpertiseLevel, 0, 3),
		Duration:                m.Duration,
		Status:                  m.Status,
		MaximumBudget:           m.MaximumBudget,
		MaximumHourlyRate:       m.MaximumHourlyRate,
		MinimumHourlyRate:       m.MinimumHourlyRate,
		PreferredCoderResidence: m.PreferredCoderResidence,
	}
	for _, t := range m.Technologies {
		p.Technologies = append(p.Technologies, t.TechnologyName)
	}
	for _, z := range m.TimeZones {
		p.TimeZones = append(p.TimeZones, z.TimeZoneName)
	}
	if m.ExpertiseBeginner {
		p.ExpertiseLevels = append(p.ExpertiseLevels, catalog.ExpertiseBeginner)
	}
	if m.ExpertiseIntermediate {
		p.ExpertiseLevels = append(p.ExpertiseLevels, catalog.ExpertiseIntermediate)
	}
	if m.ExpertiseExpert {
		p.ExpertiseLevels = append(p.ExpertiseLevels, catalog.ExpertiseExpert)
	}
	return p
}

// FromDomain populates the persistence model from a domain JobPosting.
func (m *JobPostingModel) FromDomain(p *job.JobPosting) {
	m.FromDomainAggregateRoot(p.BaseAggregateRoot)
	m.ClientID = p.ClientID
	m.Title = p.Title
	m.Description = p.Description
	m.ProjectSize = p.ProjectSize
	m.BudgetType = p.BudgetType
	m.ExpertiseBeginner = p.WantsExpertise(catalog.ExpertiseBeginner)
	m.ExpertiseIntermediate = p.WantsExpertise(catalog.ExpertiseIntermediate)
	m.ExpertiseExpert = p.WantsExpertise(catalog.ExpertiseExpert)
	m.Duration = p.Duration
	m.Status = p.Status
	m.MaximumBudget = p.MaximumBudget
	m.MaximumHourlyRate = p.MaximumHourlyRate
	m.MinimumHourlyRate = p.MinimumHourlyRate
	m.PreferredCoderResidence = p.PreferredCoderResidence

	m.Technologies = make([]JobPostingTechnologyModel, 0, len(p.Technologies))
	for i, name := range p.Technologies {
		m.Technologies = append(m.Technologies, JobPostingTechnologyModel{
			JobPostingID:   p.ID,
			TechnologyName: name,
			Position:       i,
		})
	}
	m.TimeZones = make([]JobPostingTimeZoneModel, 0, len(p.TimeZones))
	for i, name := range p.TimeZones {
		m.TimeZones = append(m.TimeZones, JobPostingTimeZoneModel{
			JobPostingID: p.ID,
			TimeZoneName: name,
			Position:     i,
		})
	}
}

// JobPostingModelFromDomain creates a new persistence model from a domain JobPosting.
func JobPostingModelFromDomain(p *job.JobPosting) *JobPostingModel {
	m := &JobPostingModel{}
	m.FromDomain(p)
	return m
}

// JobInvitationModel is the persistence model for a JobInvitation.
type JobInvitationModel struct {
	AggregateModel
	JobPostingID uuid.UUID            `gorm:"type:uuid;not null;uniqueIndex:idx_job_invitations_unique,priority:1"`
	ClientID     uuid.UUID            `gorm:"type:uuid;not null;uniqueIndex:idx_job_invitations_unique,priority:2;index"`
	CoderID      uuid.UUID            `gorm:"type:uuid;not null;uniqueIndex:idx_job_invitations_unique,priority:3;index"`
	Message      string               `gorm:"type:text"`
	Status       job.InvitationStatus `gorm:"type:varchar(30);not null;default:'SENT'"`
}

// TableName returns the table name for GORM
func (JobInvitationModel) TableName() string {
	return "job_invitations"
}

// ToDomain converts the persistence model to a domain JobInvitation.
func (m *JobInvitationModel) ToDomain() *job.JobInvitation {
	return &job.JobInvitation{
		BaseAggregateRoot: m.ToAggregateRoot(),
		JobPostingID:      m.JobPostingID,
		ClientID:          m.ClientID,
		CoderID:           m.CoderID,
		Message:           m.Message,
		Status:            m.Status,
	}
}

// FromDomain populates the persistence model from a domain JobInvitation.
func (m *JobInvitationModel) FromDomain(i *job.JobInvitation) {
	m.FromDomainAggregateRoot(i.BaseAggregateRoot)
	m.JobPostingID = i.JobPostingID
	m.ClientID = i.ClientID
	m.CoderID = i.CoderID
	m.Message = i.Message
	m.Status = i.Status
}

// JobProposalModel is the persistence model for a JobProposal.
type JobProposalModel struct {
	AggregateModel
	JobPostingID          uuid.UUID          `gorm:"type:uuid;not null;index"`
	ClientID              uuid.UUID          `gorm:"type:uuid;not null;index"`
	CoderID               uuid.UUID          `gorm:"type:uuid;not null;index"`
	Description           string             `gorm:"type:text;not null"`
	ProposalType          job.BudgetType     `gorm:"type:varchar(10);not null"`
	HourlyRate            *decimal.Decimal   `gorm:"type:decimal(18,2)"`
	AvailabilityPerWeek   *int               `gorm:"type:integer"`
	EstimateDays          *int               `gorm:"type:integer"`
	AttachmentKey         string             `gorm:"type:varchar(512)"`
	CoderFee              decimal.Decimal    `gorm:"type:decimal(18,2);not null;default:0"`
	PlatformFee           decimal.Decimal    `gorm:"type:decimal(18,2);not null;default:0"`
	PlatformFeePercentage decimal.Decimal    `gorm:"type:decimal(5,2);not null;default:0"`
	TotalProjectCost      decimal.Decimal    `gorm:"type:decimal(18,2);not null;default:0"`
	IsSubmitted           bool               `gorm:"not null;default:true"`
	Status                job.ProposalStatus `gorm:"type:varchar(30);not null;default:'SENT';index"`
}

// TableName returns the table name for GORM
func (JobProposalModel) TableName() string {
	return "job_proposals"
}

// ToDomain converts the persistence model to a domain JobProposal.
func (m *JobProposalModel) ToDomain() *job.JobProposal {
	return &job.JobProposal{
		BaseAggregateRoot:   m.ToAggregateRoot(),
		JobPostingID:        m.JobPostingID,
		ClientID:            m.ClientID,
		CoderID:             m.CoderID,
		Description:         m.Description,
		ProposalType:        m.ProposalType,
		HourlyRate:          m.HourlyRate,
		AvailabilityPerWeek: m.AvailabilityPerWeek,
		EstimateDays:        m.EstimateDays,
		AttachmentKey:       m.AttachmentKey,
		Fees: job.ProposalFees{
			CoderFee:              m.CoderFee,
			PlatformFee:           m.PlatformFee,
			PlatformFeePercentage: m.PlatformFeePercentage,
			TotalProjectCost:      m.TotalProjectCost,
		},
		IsSubmitted: m.IsSubmitted,
		Status:      m.Status,
	}
}

// FromDomain populates the persistence model from a domain JobProposal.
func (m *JobProposalModel) FromDomain(p *job.JobProposal) {
	m.FromDomainAggregateRoot(p.BaseAggregateRoot)
	m.JobPostingID = p.JobPostingID
	m.ClientID = p.ClientID
	m.CoderID = p.CoderID
	m.Description = p.Description
	m.ProposalType = p.ProposalType
	m.HourlyRate = p.HourlyRate
	m.AvailabilityPerWeek = p.AvailabilityPerWeek
	m.EstimateDays = p.EstimateDays
	m.AttachmentKey = p.AttachmentKey
	m.CoderFee = p.Fees.CoderFee
	m.PlatformFee = p.Fees.PlatformFee
	m.PlatformFeePercentage = p.Fees.PlatformFeePercentage
	m.TotalProjectCost = p.Fees.TotalProjectCost
	m.IsSubmitted = p.IsSubmitted
	m.Status = p.Status
}

// MilestoneModel is the persistence model for a Milestone.
type MilestoneModel struct {
	AggregateModel
	JobPostingID         uuid.UUID           `gorm:"type:uuid;not null;index"`
	ClientID             uuid.UUID           `gorm:"type:uuid;not null;index"`
	CoderID              uuid.UUID           `gorm:"type:uuid;not null;index"`
	Name                 string              `gorm:"type:varchar(255);not null"`
	Description          string              `gorm:"type:text"`
	Days                 int                 `gorm:"not null;default:0"`
	FundReleased         decimal.Decimal     `gorm:"type:decimal(18,2);not null;default:0"`
	Status               job.MilestoneStatus `gorm:"type:varchar(20);not null;default:'PROPOSED'"`
	CompletedDate        *time.Time
	CompletedDescription string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (MilestoneModel) TableName() string {
	return "milestones"
}

// ToDomain converts the persistence model to a domain Milestone.
func (m *MilestoneModel) ToDomain() *job.Milestone {
	return &job.Milestone{
		BaseAggregateRoot:    m.ToAggregateRoot(),
		JobPostingID:         m.JobPostingID,
		ClientID:             m.ClientID,
		CoderID:              m.CoderID,
		Name:                 m.Name,
		Description:          m.Description,
		Days:                 m.Days,
		FundReleased:         m.FundReleased,
		Status:               m.Status,
		CompletedDate:        m.CompletedDate,
		CompletedDescription: m.CompletedDescription,
	}
}

// FromDomain populates the persistence model from a domain Milestone.
func (m *MilestoneModel) FromDomain(ms *job.Milestone) {
	m.FromDomainAggregateRoot(ms.BaseAggregateRoot)
	m.JobPostingID = ms.JobPostingID
	m.ClientID = ms.ClientID
	m.CoderID = ms.CoderID
	m.Name = ms.Name
	m.Description = ms.Description
	m.Days = ms.Days
	m.FundReleased = ms.FundReleased
	m.Status = ms.Status
	m.CompletedDate = ms.CompletedDate
	m.CompletedDescription = ms.CompletedDescription
}
