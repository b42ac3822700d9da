package contract

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hirecoder/backend/internal/domain/job"
	"github.com/hirecoder/backend/internal/domain/shared"
)

// JobContractRepository persists contracts. Create must fail with
// ALREADY_EXISTS when the (posting, coder) pair already has a contract.
// Update must fail with CONCURRENT_MODIFICATION when the stored row moved
// past the version the contract was read at.
type JobContractRepository interface {
	Create(ctx context.Context, c *JobContract) error
	Update(ctx context.Context, c *JobContract) error
	FindScoped(ctx context.Context, id uuid.UUID, scope job.Scope) (*JobContract, error)
	FindScopedForUpdate(ctx context.Context, id uuid.UUID, scope job.Scope) (*JobContract, error)
	FindByPostingAndCoder(ctx context.Context, postingID, coderID uuid.UUID) (*JobContract, error)
	FindAll(ctx context.Context, scope job.Scope, filter shared.Filter) ([]*JobContract, int64, error)
}

// TimesheetFilter narrows timesheet listings
type TimesheetFilter struct {
	shared.Filter
	ContractName    string
	Date            *time.Time
	Description     string
	StartTimeGTE    *TimeOfDay
	EndTimeLTE      *TimeOfDay
	PaymentStatus   PaymentStatus
	TimesheetStatus TimesheetStatus
}

// TimesheetRepository persists timesheets
type TimesheetRepository interface {
	Create(ctx context.Context, t *Timesheet) error
	Update(ctx context.Context, t *Timesheet) error
	FindScoped(ctx context.Context, id uuid.UUID, scope job.Scope) (*Timesheet, error)
	FindScopedForUpdate(ctx context.Context, id uuid.UUID, scope job.Scope) (*Timesheet, error)
	FindAll(ctx context.Context, scope job.Scope, filter TimesheetFilter) ([]*Timesheet, int64, error)
}
