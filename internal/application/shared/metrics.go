package shared

import (
	"context"

	"github.com/shopspring/decimal"
)

// MetricsRecorder receives marketplace business events for instrumentation.
type MetricsRecorder interface {
	ProposalSubmitted(ctx context.Context, proposalType string)
	ContractCreated(ctx context.Context, hourly bool)
	InvitationSent(ctx context.Context)
	TimesheetReviewed(ctx context.Context, status string, hours decimal.Decimal)
}

// NoopMetrics discards every measurement.
type NoopMetrics struct{}

func (NoopMetrics) ProposalSubmitted(context.Context, string) {}
func (NoopMetrics) ContractCreated(context.Context, bool) {}
func (NoopMetrics) InvitationSent(context.Context) {}
func (NoopMetrics) TimesheetReviewed(context.Context, string, decimal.Decimal) {}

var _ MetricsRecorder = NoopMetrics{}
