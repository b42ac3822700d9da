package contract

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hirecoder/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// PaymentStatus tracks payout of a timesheet
type PaymentStatus string

const (
	PaymentStatusPayNow    PaymentStatus = "PAY_NOW"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusFailed    PaymentStatus = "FAILED"
)

// IsValid reports whether s is a known payment status
func (s PaymentStatus) IsValid() bool {
	return s == PaymentStatusPayNow || s == PaymentStatusCompleted || s == PaymentStatusFailed
}

// TimesheetStatus is the client's review outcome
type TimesheetStatus string

const (
	TimesheetStatusPending  TimesheetStatus = "PENDING"
	TimesheetStatusApproved TimesheetStatus = "APPROVED"
	TimesheetStatusRejected TimesheetStatus = "REJECTED"
)

// IsValid reports whether s is a known timesheet status
func (s TimesheetStatus) IsValid() bool {
	return s == TimesheetStatusPending || s == TimesheetStatusApproved || s == TimesheetStatusRejected
}

// IsTerminal reports whether the client can no longer change the status
func (s TimesheetStatus) IsTerminal() bool {
	return s == TimesheetStatusApproved || s == TimesheetStatusRejected
}

// MaxDescriptionLength bounds timesheet descriptions
const MaxDescriptionLength = 1000

// TimeOfDay is a wall-clock time with minute precision
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay parses "HH:MM" or "HH:MM:SS"; seconds are dropped
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{"15:04", "15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}, nil
		}
	}
	return TimeOfDay{}, fmt.Errorf("invalid time of day %q, expected HH:MM", s)
}

// Minutes returns minutes since midnight
func (t TimeOfDay) Minutes() int {
	return t.Hour*60 + t.Minute
}

// String renders HH:MM
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// HoursBetween returns end minus start in fractional hours rounded to 2 places
func HoursBetween(start, end TimeOfDay) decimal.Decimal {
	return decimal.NewFromInt(int64(end.Minutes() - start.Minutes())).
		Div(decimal.NewFromInt(60)).
		Round(2)
}

// Timesheet is one block of hourly work logged against a contract
type Timesheet struct {
	shared.BaseAggregateRoot
	ContractID      uuid.UUID
	ContractName    string
	ClientID        uuid.UUID
	CoderID         uuid.UUID
	Date            time.Time
	StartTime       TimeOfDay
	EndTime         TimeOfDay
	TotalHours      decimal.Decimal
	Amount          decimal.Decimal
	Description     string
	PaymentStatus   PaymentStatus
	TimesheetStatus TimesheetStatus
}

// NewTimesheetInput carries the coder-supplied timesheet fields
type NewTimesheetInput struct {
	Date        *time.Time
	StartTime   *TimeOfDay
	EndTime     *TimeOfDay
	Description string
}

// NewTimesheet logs work on c for coderID. The billed user is the contract's
// client; hours and amount are always derived here.
func NewTimesheet(c *JobContract, coderID uuid.UUID, in NewTimesheetInput, today time.Time) (*Timesheet, error) {
	if c == nil || c.CoderID != coderID {
		return nil, shared.NewDomainError("CONTRACT_NOT_FOUND", "Job contract not found")
	}
	if !c.IsHourlyRate || c.HourlyRate == nil {
		return nil, shared.NewValidationError("job_contract", "Timesheet submission is only permitted for HOURLY budget jobs")
	}
	if !c.IsActive {
		return nil, shared.NewDomainError("INVALID_STATE", "Contract is no longer active")
	}

	var verrs shared.ValidationErrors
	if in.StartTime == nil {
		verrs.Add("start_time", "Please enter the start time")
	}
	if in.EndTime == nil {
		verrs.Add("end_time", "Please enter the end time")
	}
	if in.StartTime != nil && in.EndTime != nil && in.EndTime.Minutes() <= in.StartTime.Minutes() {
		verrs.Add("end_time", "End time must be after start time")
	}
	description := strings.TrimSpace(in.Description)
	if len(description) > MaxDescriptionLength {
		verrs.Add("description", fmt.Sprintf("Description cannot exceed %d characters", MaxDescriptionLength))
	}
	if err := verrs.Err(); err != nil {
		return nil, err
	}

	date := DateOf(today)
	if in.Date != nil {
		date = DateOf(*in.Date)
	}
	hours := HoursBetween(*in.StartTime, *in.EndTime)

	ts := &Timesheet{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ContractID:        c.ID,
		ContractName:      c.Name,
		ClientID:          c.ClientID,
		CoderID:           coderID,
		Date:              date,
		StartTime:         *in.StartTime,
		EndTime:           *in.EndTime,
		TotalHours:        hours,
		Amount:            hours.Mul(*c.HourlyRate).Round(2),
		Description:       description,
		PaymentStatus:     PaymentStatusPayNow,
		TimesheetStatus:   TimesheetStatusPending,
	}
	ts.AddDomainEvent(NewTimesheetSubmittedEvent(ts))
	return ts, nil
}

// Review sets the client's decision. APPROVED and REJECTED are final.
func (t *Timesheet) Review(clientID uuid.UUID, status TimesheetStatus) error {
	if t.ClientID != clientID {
		return shared.NewDomainError("TIMESHEET_NOT_FOUND", "Timesheet not found")
	}
	if !status.IsValid() {
		return shared.NewValidationError("timesheet_status", "Timesheet status must be PENDING, APPROVED or REJECTED")
	}
	if t.TimesheetStatus == TimesheetStatusApproved {
		return shared.NewDomainError("INVALID_STATE", "Not permitted to update status of approved timesheet")
	}
	if t.TimesheetStatus == TimesheetStatusRejected {
		return shared.NewDomainError("INVALID_STATE", "Not permitted to update status of rejected timesheet")
	}
	if t.TimesheetStatus == status {
		return nil
	}
	t.TimesheetStatus = status
	t.Touch()
	t.IncrementVersion()
	t.AddDomainEvent(NewTimesheetReviewedEvent(t, clientID))
	return nil
}

// IsApproved reports whether the client approved the timesheet
func (t *Timesheet) IsApproved() bool {
	return t.TimesheetStatus == TimesheetStatusApproved
}
