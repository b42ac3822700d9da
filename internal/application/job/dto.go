package job

import (
	"time"

	"github.com/google/uuid"
	"github.com/hirecoder/backend/internal/domain/catalog"
	"github.com/hirecoder/backend/internal/domain/job"
	"github.com/shopspring/decimal"
)

// CreatePostingRequest represents a request to publish a job posting
type CreatePostingRequest struct {
	Title                   string                   `json:"title" binding:"required,max=255"`
	Description             string                   `json:"description" binding:"required"`
	Technologies            []string                 `json:"technologies" binding:"required,min=1,dive,required,max=255"`
	TimeZones               []string                 `json:"timezones" binding:"required,min=1,dive,required"`
	ProjectSize             job.ProjectSize          `json:"project_size" binding:"required,oneof=SMALL MEDIUM LARGE"`
	BudgetType              job.BudgetType           `json:"budget_type" binding:"required,oneof=FIXED HOURLY"`
	Expertise               []catalog.ExpertiseLevel `json:"expertise" binding:"omitempty,dive,oneof=BEGINNER INTERMEDIATE EXPERT"`
	Duration                job.Duration             `json:"duration" binding:"required,oneof=SHORT_TERM MEDIUM_TERM LONG_TERM"`
	MaximumBudget           *decimal.Decimal         `json:"maximum_budget"`
	MaximumHourlyRate       *int                     `json:"maximum_hourly_rate"`
	MinimumHourlyRate       *int                     `json:"minimum_hourly_rate"`
	PreferredCoderResidence job.Residence            `json:"preferred_coder_residence" binding:"omitempty,oneof=USA_ONLY ANYWHERE_IN_THE_WORLD"`
}

// UpdatePostingStatusRequest is the only accepted posting patch
type UpdatePostingStatusRequest struct {
	Status job.PostingStatus `json:"status" binding:"required,oneof=OPEN CLOSED ACTIVE COMPLETED"`
}

// PostingResponse represents a job posting in API responses
type PostingResponse struct {
	ID                      uuid.UUID                `json:"id"`
	ClientID                uuid.UUID                `json:"client_id"`
	Title                   string                   `json:"title"`
	Description             string                   `json:"description"`
	Technologies            []string                 `json:"technologies"`
	TimeZones               []string                 `json:"timezones"`
	ProjectSize             job.ProjectSize          `json:"project_size"`
	BudgetType              job.BudgetType           `json:"budget_type"`
	Expertise               []catalog.ExpertiseLevel `json:"expertise"`
	Duration                job.Duration             `json:"duration"`
	Status                  job.PostingStatus        `json:"status"`
	MaximumBudget           *decimal.Decimal         `json:"maximum_budget"`
	MaximumHourlyRate       *int                     `json:"maximum_hourly_rate"`
	MinimumHourlyRate       *int                     `json:"minimum_hourly_rate"`
	PreferredCoderResidence job.Residence            `json:"preferred_coder_residence"`
	CreatedAt               time.Time                `json:"created_at"`
	UpdatedAt               time.Time                `json:"updated_at"`
}

// ToPostingResponse converts a domain JobPosting to PostingResponse
func ToPostingResponse(p *job.JobPosting) PostingResponse {
	return PostingResponse{
		ID:                      p.ID,
		ClientID:                p.ClientID,
		Title:                   p.Title,
		Description:             p.Description,
		Technologies:            p.Technologies,
		TimeZones:               p.TimeZones,
		ProjectSize:             p.ProjectSize,
		BudgetType:              p.BudgetType,
		Expertise:               p.ExpertiseLevels,
		Duration:                p.Duration,
		Status:                  p.Status,
		MaximumBudget:           p.MaximumBudget,
		MaximumHourlyRate:       p.MaximumHourlyRate,
		MinimumHourlyRate:       p.MinimumHourlyRate,
		PreferredCoderResidence: p.PreferredCoderResidence,
		CreatedAt:               p.CreatedAt,
		UpdatedAt:               p.UpdatedAt,
	}
}

// SendInvitationRequest represents a client inviting a coder to bid
type SendInvitationRequest struct {
	CoderUsername string    `json:"coder_username" binding:"required,max=150"`
	JobPostingID  uuid.UUID `json:"job_posting_id" binding:"required"`
	Message       string    `json:"message" binding:"max=2000"`
}

// UpdateInvitationStatusRequest is the only accepted invitation patch
type UpdateInvitationStatusRequest struct {
	Status job.InvitationStatus `json:"status" binding:"required"`
}

// InvitationResponse represents an invitation in API responses
type InvitationResponse struct {
	ID           uuid.UUID            `json:"id"`
	JobPostingID uuid.UUID            `json:"job_posting_id"`
	ClientID     uuid.UUID            `json:"client_id"`
	CoderID      uuid.UUID            `json:"coder_id"`
	Message      string               `json:"message"`
	Status       job.InvitationStatus `json:"status"`
	CreatedAt    time.Time            `json:"created_at"`
	UpdatedAt    time.Time            `json:"updated_at"`
}

// ToInvitationResponse converts a domain JobInvitation to InvitationResponse
func ToInvitationResponse(i *job.JobInvitation) InvitationResponse {
	return InvitationResponse{
		ID:           i.ID,
		JobPostingID: i.JobPostingID,
		ClientID:     i.ClientID,
		CoderID:      i.CoderID,
		Message:      i.Message,
		Status:       i.Status,
		CreatedAt:    i.CreatedAt,
		UpdatedAt:    i.UpdatedAt,
	}
}

// SubmitProposalRequest represents a coder's bid. The proposal type is taken
// from the posting, never from the request.
type SubmitProposalRequest struct {
	JobPostingID        uuid.UUID        `json:"job_posting_id" binding:"required"`
	Description         string           `json:"proposal_description" binding:"required"`
	HourlyRate          *decimal.Decimal `json:"hourly_rate"`
	AvailabilityPerWeek *int             `json:"availability_per_week"`
	EstimateDays        *int             `json:"estimate_time"`
}

// UpdateProposalStatusRequest is the only accepted proposal patch for either role
type UpdateProposalStatusRequest struct {
	Status job.ProposalStatus `json:"status" binding:"required"`
}

// ProposalResponse represents a proposal in API responses
type ProposalResponse struct {
	ID                    uuid.UUID          `json:"id"`
	JobPostingID          uuid.UUID          `json:"job_posting_id"`
	ClientID              uuid.UUID          `json:"client_id"`
	CoderID               uuid.UUID          `json:"coder_id"`
	Description           string             `json:"proposal_description"`
	ProposalType          job.BudgetType     `json:"proposal_type"`
	HourlyRate            *decimal.Decimal   `json:"hourly_rate"`
	AvailabilityPerWeek   *int               `json:"availability_per_week"`
	EstimateDays          *int               `json:"estimate_time"`
	HasAttachment         bool               `json:"has_attachment"`
	CoderFee              decimal.Decimal    `json:"coder_fee"`
	PlatformFee           decimal.Decimal    `json:"platform_fee"`
	PlatformFeePercentage decimal.Decimal    `json:"platform_fee_percentage"`
	TotalProjectCost      decimal.Decimal    `json:"total_project_cost"`
	IsSubmitted           bool               `json:"is_submitted"`
	Status                job.ProposalStatus `json:"status"`
	CreatedAt             time.Time          `json:"created_at"`
	UpdatedAt             time.Time          `json:"updated_at"`
}

// ToProposalResponse converts a domain JobProposal to ProposalResponse
func ToProposalResponse(p *job.JobProposal) ProposalResponse {
	return ProposalResponse{
		ID:                    p.ID,
		JobPostingID:          p.JobPostingID,
		ClientID:              p.ClientID,
		CoderID:               p.CoderID,
		Description:           p.Description,
		ProposalType:          p.ProposalType,
		HourlyRate:            p.HourlyRate,
		AvailabilityPerWeek:   p.AvailabilityPerWeek,
		EstimateDays:          p.EstimateDays,
		HasAttachment:         p.AttachmentKey != "",
		CoderFee:              p.Fees.CoderFee,
		PlatformFee:           p.Fees.PlatformFee,
		PlatformFeePercentage: p.Fees.PlatformFeePercentage,
		TotalProjectCost:      p.Fees.TotalProjectCost,
		IsSubmitted:           p.IsSubmitted,
		Status:                p.Status,
		CreatedAt:             p.CreatedAt,
		UpdatedAt:             p.UpdatedAt,
	}
}

// ProposalStatusResult is the outcome of a proposal status change.
// ContractID is set when the change created a contract.
type ProposalStatusResult struct {
	Proposal   ProposalResponse `json:"proposal"`
	ContractID *uuid.UUID       `json:"contract_id,omitempty"`
}

// AttachmentUploadRequest asks for a presigned upload URL
type AttachmentUploadRequest struct {
	FileName    string `json:"file_name" binding:"required,max=255"`
	ContentType string `json:"content_type" binding:"required,max=100"`
}

// AttachmentURLResponse is a presigned transfer URL
type AttachmentURLResponse struct {
	URL       string    `json:"url"`
	Method    string    `json:"method"`
	Key       string    `json:"key"`
	ExpiresAt time.Time `json:"expires_at"`
}

// CreateMilestoneRequest represents a coder proposing a milestone
type CreateMilestoneRequest struct {
	JobPostingID uuid.UUID       `json:"job_posting_id" binding:"required"`
	Name         string          `json:"name" binding:"required,max=255"`
	Description  string          `json:"description"`
	Days         int             `json:"time" binding:"min=0"`
	FundReleased decimal.Decimal `json:"fund_released"`
}

// UpdateMilestoneStatusRequest moves a milestone
type UpdateMilestoneStatusRequest struct {
	Status               job.MilestoneStatus `json:"milestone_status" binding:"required"`
	CompletedDescription string              `json:"completed_description"`
}

// MilestoneResponse represents a milestone in API responses
type MilestoneResponse struct {
	ID                   uuid.UUID           `json:"id"`
	JobPostingID         uuid.UUID           `json:"job_posting_id"`
	ClientID             uuid.UUID           `json:"client_id"`
	CoderID              uuid.UUID           `json:"coder_id"`
	Name                 string              `json:"name"`
	Description          string              `json:"description"`
	Days                 int                 `json:"time"`
	FundReleased         decimal.Decimal     `json:"fund_released"`
	Status               job.MilestoneStatus `json:"milestone_status"`
	CompletedDate        *time.Time          `json:"completed_date"`
	CompletedDescription string              `json:"completed_description"`
	CreatedAt            time.Time           `json:"created_at"`
}

// ToMilestoneResponse converts a domain Milestone to MilestoneResponse
func ToMilestoneResponse(m *job.Milestone) MilestoneResponse {
	return MilestoneResponse{
		ID:                   m.ID,
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
		CreatedAt:            m.CreatedAt,
	}
}
