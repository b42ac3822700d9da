package telemetry

import (
	"context"

	appshared "github.com/hirecoder/backend/internal/application/shared"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/metric"
)

var _ appshared.MetricsRecorder = (*MarketplaceMetrics)(nil)

// MarketplaceMeterName is the instrumentation scope of marketplace metrics
const MarketplaceMeterName = "hirecoder/marketplace"

// MarketplaceMetrics records business counters for proposals, contracts,
// invitations and timesheets
type MarketplaceMetrics struct {
	proposalsSubmitted *Counter
	contractsCreated   *Counter
	invitationsSent    *Counter
	timesheetsReviewed *Counter
	timesheetHours     *Histogram
}

// NewMarketplaceMetrics creates the instruments on meter
func NewMarketplaceMetrics(meter metric.Meter) (*MarketplaceMetrics, error) {
	var (
		m   MarketplaceMetrics
		err error
	)
	if m.proposalsSubmitted, err = NewCounter(meter, "marketplace.proposals.submitted",
		"Proposals submitted by coders", "{proposal}"); err != nil {
		return nil, err
	}
	if m.contractsCreated, err = NewCounter(meter, "marketplace.contracts.created",
		"Contracts created from accepted proposals", "{contract}"); err != nil {
		return nil, err
	}
	if m.invitationsSent, err = NewCounter(meter, "marketplace.invitations.sent",
		"Invitations sent by clients", "{invitation}"); err != nil {
		return nil, err
	}
	if m.timesheetsReviewed, err = NewCounter(meter, "marketplace.timesheets.reviewed",
		"Timesheets approved or rejected by clients", "{timesheet}"); err != nil {
		return nil, err
	}
	if m.timesheetHours, err = NewHistogram(meter, HistogramOpts{
		Name:        "marketplace.timesheet.hours",
		Description: "Hours on reviewed timesheets",
		Unit:        "h",
		Boundaries:  TimesheetHoursBuckets,
	}); err != nil {
		return nil, err
	}
	return &m, nil
}

func (m *MarketplaceMetrics) ProposalSubmitted(ctx context.Context, proposalType string) {
	m.proposalsSubmitted.Inc(ctx, AttrProposalType.String(proposalType))
}

func (m *MarketplaceMetrics) ContractCreated(ctx context.Context, hourly bool) {
	m.contractsCreated.Inc(ctx, AttrHourly.Bool(hourly))
}

func (m *MarketplaceMetrics) InvitationSent(ctx context.Context) {
	m.invitationsSent.Inc(ctx)
}

// TimesheetReviewed counts the decision and samples the hours
func (m *MarketplaceMetrics) TimesheetReviewed(ctx context.Context, status string, hours decimal.Decimal) {
	attr := AttrTimesheetStatus.String(status)
	m.timesheetsReviewed.Inc(ctx, attr)
	m.timesheetHours.Record(ctx, hours.InexactFloat64(), attr)
}
