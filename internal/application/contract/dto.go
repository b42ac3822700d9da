package contract

import (
	"time"

	"github.com/google/uuid"
	"github.com/hirecoder/backend/internal/domain/contract"
	"github.com/shopspring/decimal"
)

// DateLayout is the wire format of calendar dates
const DateLayout = "2006-01-02"

// ContractResponse represents a contract in API responses
type ContractResponse struct {
	ID                    uuid.UUID        `json:"id"`
	ProposalID            uuid.UUID        `json:"proposal_id"`
	JobPostingID          uuid.UUID        `json:"job_posting_id"`
	ClientID              uuid.UUID        `json:"client_id"`
	CoderID               uuid.UUID        `json:"coder_id"`
	Name                  string           `json:"name"`
	StartDate             string           `json:"start_date"`
	EndDate               *string          `json:"end_date"`
	IsActive              bool             `json:"is_active"`
	Rating                *int             `json:"rating"`
	Feedback              string           `json:"feedback"`
	TotalAmountEarned     decimal.Decimal  `json:"total_amount_earned"`
	TotalHoursWorked      decimal.Decimal  `json:"total_hours_worked"`
	HourlyRate            *decimal.Decimal `json:"hourly_rate"`
	PlatformFeePercentage decimal.Decimal  `json:"platform_fee_percentage"`
	IsHourlyRate          bool             `json:"is_hourly_rate"`
	CreatedAt             time.Time        `json:"created_at"`
}

// ToContractResponse converts a domain JobContract to ContractResponse
func ToContractResponse(c *contract.JobContract) ContractResponse {
	resp := ContractResponse{
		ID:                    c.ID,
		ProposalID:            c.ProposalID,
		JobPostingID:          c.JobPostingID,
		ClientID:              c.ClientID,
		CoderID:               c.CoderID,
		Name:                  c.Name,
		StartDate:             c.StartDate.Format(DateLayout),
		IsActive:              c.IsActive,
		Rating:                c.Rating,
		Feedback:              c.Feedback,
		TotalAmountEarned:     c.TotalAmountEarned,
		TotalHoursWorked:      c.TotalHoursWorked,
		HourlyRate:            c.HourlyRate,
		PlatformFeePercentage: c.PlatformFeePercentage,
		IsHourlyRate:          c.IsHourlyRate,
		CreatedAt:             c.CreatedAt,
	}
	if c.EndDate != nil {
		end := c.EndDate.Format(DateLayout)
		resp.EndDate = &end
	}
	return resp
}

// RateContractRequest is the client's rating of a contract
type RateContractRequest struct {
	Rating   int    `json:"rating" binding:"required,min=1,max=5"`
	Feedback string `json:"feedback" binding:"max=2000"`
}

// SubmitTimesheetRequest logs a block of work. TotalHours and Amount are
// computed server side; sending either is an error.
type SubmitTimesheetRequest struct {
	ContractID  uuid.UUID        `json:"job_contract" binding:"required"`
	Date        string           `json:"date"`
	StartTime   string           `json:"start_time"`
	EndTime     string           `json:"end_time"`
	Description string           `json:"description"`
	TotalHours  *decimal.Decimal `json:"total_hours,omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
}

// ReviewTimesheetRequest is the only accepted timesheet update
type ReviewTimesheetRequest struct {
	TimesheetStatus contract.TimesheetStatus `json:"timesheet_status" binding:"required"`
}

// TimesheetResponse represents a timesheet in API responses
type TimesheetResponse struct {
	ID              uuid.UUID                `json:"id"`
	ContractID      uuid.UUID                `json:"job_contract"`
	ContractName    string                   `json:"contract_name"`
	ClientID        uuid.UUID                `json:"user"`
	CoderID         uuid.UUID                `json:"coder"`
	Date            string                   `json:"date"`
	StartTime       string                   `json:"start_time"`
	EndTime         string                   `json:"end_time"`
	TotalHours      decimal.Decimal          `json:"total_hours"`
	Amount          decimal.Decimal          `json:"amount"`
	Description     string                   `json:"description"`
	PaymentStatus   contract.PaymentStatus   `json:"payment_status"`
	TimesheetStatus contract.TimesheetStatus `json:"timesheet_status"`
	CreatedAt       time.Time                `json:"created_at"`
}

// ToTimesheetResponse converts a domain Timesheet to TimesheetResponse
func ToTimesheetResponse(t *contract.Timesheet) TimesheetResponse {
	return TimesheetResponse{
		ID:              t.ID,
		ContractID:      t.ContractID,
		ContractName:    t.ContractName,
		ClientID:        t.ClientID,
		CoderID:         t.CoderID,
		Date:            t.Date.Format(DateLayout),
		StartTime:       t.StartTime.String(),
		EndTime:         t.EndTime.String(),
		TotalHours:      t.TotalHours,
		Amount:          t.Amount,
		Description:     t.Description,
		PaymentStatus:   t.PaymentStatus,
		TimesheetStatus: t.TimesheetStatus,
		CreatedAt:       t.CreatedAt,
	}
}

// TimesheetQuery carries raw list filters from the query string
type TimesheetQuery struct {
	ContractName    string                   `form:"contract_name"`
	Date            string                   `form:"date"`
	Description     string                   `form:"description"`
	StartTime       string                   `form:"start_time"`
	EndTime         string                   `form:"end_time"`
	PaymentStatus   contract.PaymentStatus   `form:"payment_status"`
	TimesheetStatus contract.TimesheetStatus `form:"timesheet_status"`
}
