package contract

import (
	"context"
	"time"

	"github.com/google/uuid"
	appshared "github.com/hirecoder/backend/internal/application/shared"
	"github.com/hirecoder/backend/internal/domain/contract"
	"github.com/hirecoder/backend/internal/domain/identity"
	"github.com/hirecoder/backend/internal/domain/job"
	"github.com/hirecoder/backend/internal/domain/shared"
	"github.com/hirecoder/backend/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

// TimesheetPatchMessage is reported for every key other than timesheet_status
const TimesheetPatchMessage = "Client can only update the timesheet status"

// RestrictTimesheetPatch rejects timesheet updates that touch anything but the status
func RestrictTimesheetPatch(keys []string) error {
	return appshared.RestrictPatch(keys, TimesheetPatchMessage, "timesheet_status")
}

// TimesheetService handles hourly work logged by coders and reviewed by clients
type TimesheetService struct {
	timesheetRepo contract.TimesheetRepository
	contractRepo  contract.JobContractRepository
	txScope       appshared.TransactionScope
	events        shared.EventPublisher
	metrics       appshared.MetricsRecorder
	pageLimits    appshared.PageLimits
	logger        *zap.Logger
	now           func() time.Time
}

// NewTimesheetService creates a new TimesheetService
func NewTimesheetService(
	timesheetRepo contract.TimesheetRepository,
	contractRepo contract.JobContractRepository,
	txScope appshared.TransactionScope,
	events shared.EventPublisher,
	metrics appshared.MetricsRecorder,
	pageLimits appshared.PageLimits,
	logger *zap.Logger,
) *TimesheetService {
	if metrics == nil {
		metrics = appshared.NoopMetrics{}
	}
	return &TimesheetService{
		timesheetRepo: timesheetRepo,
		contractRepo:  contractRepo,
		txScope:       txScope,
		events:        events,
		metrics:       metrics,
		pageLimits:    pageLimits,
		logger:        logger,
		now:           time.Now,
	}
}

// SubmitTimesheet logs work on one of the coder's active hourly contracts.
// Contract totals are left alone until the client approves.
func (s *TimesheetService) SubmitTimesheet(ctx context.Context, actor identity.Actor, req SubmitTimesheetRequest) (*TimesheetResponse, error) {
	if err := actor.Require(identity.RoleCoder); err != nil {
		return nil, err
	}

	var verrs shared.ValidationErrors
	if req.TotalHours != nil {
		verrs.Add("total_hours", "This field is read-only")
	}
	if req.Amount != nil {
		verrs.Add("amount", "This field is read-only")
	}
	in := contract.NewTimesheetInput{Description: req.Description}
	if req.Date != "" {
		d, err := time.Parse(DateLayout, req.Date)
		if err != nil {
			verrs.Add("date", "Date must be formatted as YYYY-MM-DD")
		} else {
			in.Date = &d
		}
	}
	in.StartTime = parseTimeField(&verrs, "start_time", req.StartTime)
	in.EndTime = parseTimeField(&verrs, "end_time", req.EndTime)
	if err := verrs.Err(); err != nil {
		return nil, err
	}

	c, err := s.contractRepo.FindScoped(ctx, req.ContractID, job.CoderParty{}.Scope(actor.UserID))
	if err != nil {
		return nil, err
	}
	ts, err := contract.NewTimesheet(c, actor.UserID, in, s.now())
	if err != nil {
		return nil, err
	}
	if err := s.timesheetRepo.Create(ctx, ts); err != nil {
		return nil, err
	}
	appshared.PublishEvents(ctx, s.events, s.logger, ts)

	s.logger.Info("Timesheet submitted",
		zap.String("timesheet_id", ts.ID.String()),
		zap.String("contract_id", c.ID.String()),
		zap.String("total_hours", ts.TotalHours.String()),
		zap.String("amount", ts.Amount.String()))

	resp := ToTimesheetResponse(ts)
	return &resp, nil
}

// parseTimeField parses an optional HH:MM value; empty yields nil
func parseTimeField(verrs *shared.ValidationErrors, field, value string) *contract.TimeOfDay {
	if value == "" {
		return nil
	}
	t, err := contract.ParseTimeOfDay(value)
	if err != nil {
		verrs.Add(field, "Time must be formatted as HH:MM")
		return nil
	}
	return &t
}

// ReviewTimesheet applies the client's decision. Approval adds the hours and
// amount to the contract in the same transaction. Both rows are locked, so a
// concurrent review of the same timesheet sees the first decision.
func (s *TimesheetService) ReviewTimesheet(ctx context.Context, actor identity.Actor, id uuid.UUID, req ReviewTimesheetRequest) (*TimesheetResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "timesheet", "review",
		"timesheet.id", id.String(),
		"timesheet.status", string(req.TimesheetStatus))
	defer span.End()

	if err := actor.Require(identity.RoleClient); err != nil {
		return nil, err
	}

	var (
		ts      *contract.Timesheet
		changed bool
		c       *contract.JobContract
	)
	err := s.txScope.Execute(ctx, func(repos appshared.TransactionalRepositories) error {
		var err error
		ts, err = repos.TimesheetRepo().FindScopedForUpdate(ctx, id, job.ClientParty{}.Scope(actor.UserID))
		if err != nil {
			return err
		}
		previous := ts.TimesheetStatus
		if err := ts.Review(actor.UserID, req.TimesheetStatus); err != nil {
			return err
		}
		if ts.TimesheetStatus == previous {
			return nil
		}
		changed = true
		if err := repos.TimesheetRepo().Update(ctx, ts); err != nil {
			return err
		}
		if !ts.IsApproved() {
			return nil
		}
		c, err = repos.ContractRepo().FindScopedForUpdate(ctx, ts.ContractID, job.ClientParty{}.Scope(actor.UserID))
		if err != nil {
			return err
		}
		c.RecordApprovedWork(ts.TotalHours, ts.Amount)
		return repos.ContractRepo().Update(ctx, c)
	})
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	if changed {
		s.metrics.TimesheetReviewed(ctx, string(ts.TimesheetStatus), ts.TotalHours)
		appshared.PublishEvents(ctx, s.events, s.logger, ts)
		s.logger.Info("Timesheet reviewed",
			zap.String("timesheet_id", ts.ID.String()),
			zap.String("status", string(ts.TimesheetStatus)))
	}
	if c != nil {
		s.logger.Debug("Contract totals updated",
			zap.String("contract_id", c.ID.String()),
			zap.String("total_hours_worked", c.TotalHoursWorked.String()),
			zap.String("total_amount_earned", c.TotalAmountEarned.String()))
	}

	resp := ToTimesheetResponse(ts)
	return &resp, nil
}

// GetTimesheet returns a timesheet the actor is party to
func (s *TimesheetService) GetTimesheet(ctx context.Context, actor identity.Actor, id uuid.UUID) (*TimesheetResponse, error) {
	party, err := partyOf(actor)
	if err != nil {
		return nil, err
	}
	ts, err := s.timesheetRepo.FindScoped(ctx, id, party.Scope(actor.UserID))
	if err != nil {
		return nil, err
	}
	resp := ToTimesheetResponse(ts)
	return &resp, nil
}

// ListTimesheets lists timesheets on the client's contracts, or the coder's own
func (s *TimesheetService) ListTimesheets(ctx context.Context, actor identity.Actor, base shared.Filter, query TimesheetQuery) (*shared.Paginated[TimesheetResponse], error) {
	party, err := partyOf(actor)
	if err != nil {
		return nil, err
	}
	filter, err := query.toFilter(s.pageLimits.Normalize(base))
	if err != nil {
		return nil, err
	}
	sheets, total, err := s.timesheetRepo.FindAll(ctx, party.Scope(actor.UserID), filter)
	if err != nil {
		return nil, err
	}
	items := make([]TimesheetResponse, len(sheets))
	for i, ts := range sheets {
		items[i] = ToTimesheetResponse(ts)
	}
	page := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &page, nil
}

func (q TimesheetQuery) toFilter(base shared.Filter) (contract.TimesheetFilter, error) {
	filter := contract.TimesheetFilter{
		Filter:          base,
		ContractName:    q.ContractName,
		Description:     q.Description,
		PaymentStatus:   q.PaymentStatus,
		TimesheetStatus: q.TimesheetStatus,
	}
	var verrs shared.ValidationErrors
	if q.Date != "" {
		d, err := time.Parse(DateLayout, q.Date)
		if err != nil {
			verrs.Add("date", "Date must be formatted as YYYY-MM-DD")
		} else {
			filter.Date = &d
		}
	}
	filter.StartTimeGTE = parseTimeField(&verrs, "start_time", q.StartTime)
	filter.EndTimeLTE = parseTimeField(&verrs, "end_time", q.EndTime)
	if q.PaymentStatus != "" && !q.PaymentStatus.IsValid() {
		verrs.Add("payment_status", "Invalid payment status")
	}
	if q.TimesheetStatus != "" && !q.TimesheetStatus.IsValid() {
		verrs.Add("timesheet_status", "Invalid timesheet status")
	}
	return filter, verrs.Err()
}
