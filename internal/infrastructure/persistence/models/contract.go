package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/hirecoder/backend/internal/domain/contract"
	"github.com/shopspring/decimal"
)

// JobContractModel is the persistence model for a JobContract.
// One contract per proposal and one per (posting, coder).
type JobContractModel struct {
	AggregateModel
	ProposalID            uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_job_contracts_proposal"`
	JobPostingID          uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_job_contracts_posting_coder,priority:1"`
	ClientID              uuid.UUID        `gorm:"type:uuid;not null;index"`
	CoderID               uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_job_contracts_posting_coder,priority:2;index"`
	Name                  string           `gorm:"type:varchar(600);not null"`
	StartDate             time.Time        `gorm:"type:date;not null"`
	EndDate               *time.Time       `gorm:"type:date"`
	IsActive              bool             `gorm:"not null;default:true"`
	Rating                *int             `gorm:"type:integer"`
	Feedback              string           `gorm:"type:text"`
	TotalAmountEarned     decimal.Decimal  `gorm:"type:decimal(18,2);not null;default:0"`
	TotalHoursWorked      decimal.Decimal  `gorm:"type:decimal(18,2);not null;default:0"`
	HourlyRate            *decimal.Decimal `gorm:"type:decimal(18,2)"`
	PlatformFeePercentage decimal.Decimal  `gorm:"type:decimal(5,2);not null;default:0"`
	IsHourlyRate          bool             `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (JobContractModel) TableName() string {
	return "job_contracts"
}

// ToDomain converts the persistence model to a domain JobContract.
func (m *JobContractModel) ToDomain() *contract.JobContract {
	return &contract.JobContract{
		BaseAggregateRoot:     m.ToAggregateRoot(),
		ProposalID:            m.ProposalID,
		JobPostingID:          m.JobPostingID,
		ClientID:              m.ClientID,
		CoderID:               m.CoderID,
		Name:                  m.Name,
		StartDate:             contract.DateOf(m.StartDate),
		EndDate:               dateOrNil(m.EndDate),
		IsActive:              m.IsActive,
		Rating:                m.Rating,
		Feedback:              m.Feedback,
		TotalAmountEarned:     m.TotalAmountEarned,
		TotalHoursWorked:      m.TotalHoursWorked,
		HourlyRate:            m.HourlyRate,
		PlatformFeePercentage: m.PlatformFeePercentage,
		IsHourlyRate:          m.IsHourlyRate,
	}
}

// FromDomain populates the persistence model from a domain JobContract.
func (m *JobContractModel) FromDomain(c *contract.JobContract) {
	m.FromDomainAggregateRoot(c.BaseAggregateRoot)
	m.ProposalID = c.ProposalID
	m.JobPostingID = c.JobPostingID
	m.ClientID = c.ClientID
	m.CoderID = c.CoderID
	m.Name = c.Name
	m.StartDate = c.StartDate
	m.EndDate = c.EndDate
	m.IsActive = c.IsActive
	m.Rating = c.Rating
	m.Feedback = c.Feedback
	m.TotalAmountEarned = c.TotalAmountEarned
	m.TotalHoursWorked = c.TotalHoursWorked
	m.HourlyRate = c.HourlyRate
	m.PlatformFeePercentage = c.PlatformFeePercentage
	m.IsHourlyRate = c.IsHourlyRate
}

// TimesheetModel is the persistence model for a Timesheet.
// Times of day are stored as zero-padded "HH:MM" so range filters compare lexically.
type TimesheetModel struct {
	AggregateModel
	ContractID      uuid.UUID                `gorm:"type:uuid;not null;index"`
	ContractName    string                   `gorm:"type:varchar(600);not null;index"`
	ClientID        uuid.UUID                `gorm:"type:uuid;not null;index"`
	CoderID         uuid.UUID                `gorm:"type:uuid;not null;index"`
	Date            time.Time                `gorm:"type:date;not null;index"`
	StartTime       string                   `gorm:"type:varchar(5);not null"`
	EndTime         string                   `gorm:"type:varchar(5);not null"`
	TotalHours      decimal.Decimal          `gorm:"type:decimal(8,2);not null;default:0"`
	Amount          decimal.Decimal          `gorm:"type:decimal(18,2);not null;default:0"`
	Description     string                   `gorm:"type:varchar(1000)"`
	PaymentStatus   contract.PaymentStatus   `gorm:"type:varchar(20);not null;default:'PAY_NOW'"`
	TimesheetStatus contract.TimesheetStatus `gorm:"type:varchar(20);not null;default:'PENDING';index"`
}

// TableName returns the table name for GORM
func (TimesheetModel) TableName() string {
	return "timesheets"
}

// ToDomain converts the persistence model to a domain Timesheet.
// Stored times were written by FromDomain and always parse.
func (m *TimesheetModel) ToDomain() *contract.Timesheet {
	start, _ := contract.ParseTimeOfDay(m.StartTime)
	end, _ := contract.ParseTimeOfDay(m.EndTime)
	return &contract.Timesheet{
		BaseAggregateRoot: m.ToAggregateRoot(),
		ContractID:        m.ContractID,
		ContractName:      m.ContractName,
		ClientID:          m.ClientID,
		CoderID:           m.CoderID,
		Date:              contract.DateOf(m.Date),
		StartTime:         start,
		EndTime:           end,
		TotalHours:        m.TotalHours,
		Amount:            m.Amount,
		Description:       m.Description,
		PaymentStatus:     m.PaymentStatus,
		TimesheetStatus:   m.TimesheetStatus,
	}
}

// FromDomain populates the persistence model from a domain Timesheet.
func (m *TimesheetModel) FromDomain(t *contract.Timesheet) {
	m.FromDomainAggregateRoot(t.BaseAggregateRoot)
	m.ContractID = t.ContractID
	m.ContractName = t.ContractName
	m.ClientID = t.ClientID
	m.CoderID = t.CoderID
	m.Date = t.Date
	m.StartTime = t.StartTime.String()
	m.EndTime = t.EndTime.String()
	m.TotalHours = t.TotalHours
	m.Amount = t.Amount
	m.Description = t.Description
	m.PaymentStatus = t.PaymentStatus
	m.TimesheetStatus = t.TimesheetStatus
}

func dateOrNil(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := contract.DateOf(*t)
	return &d
}

// AllModels returns every persistence model in dependency order
func AllModels() []any {
	return []any{
		&UserModel{},
		&TechnologyModel{},
		&TimeZoneModel{},
		&SkillModel{},
		&CertificationModel{},
		&AddressModel{},
		&DigitalPresenceModel{},
		&CompanyDetailsModel{},
		&CoderExperienceModel{},
		&DegreeModel{},
		&EducationModel{},
		&JobPostingModel{},
		&JobPostingTechnologyModel{},
		&JobPostingTimeZoneModel{},
		&JobInvitationModel{},
		&JobProposalModel{},
		&MilestoneModel{},
		&JobContractModel{},
		&TimesheetModel{},
	}
}
