// Package contract exposes contracts and the timesheets logged against them.
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
	"go.uber.org/zap"
)

// ContractService serves contracts to their client and coder
type ContractService struct {
	contractRepo contract.JobContractRepository
	events       shared.EventPublisher
	pageLimits   appshared.PageLimits
	logger       *zap.Logger
	now          func() time.Time
}

// NewContractService creates a new ContractService
func NewContractService(
	contractRepo contract.JobContractRepository,
	events shared.EventPublisher,
	pageLimits appshared.PageLimits,
	logger *zap.Logger,
) *ContractService {
	return &ContractService{
		contractRepo: contractRepo,
		events:       events,
		pageLimits:   pageLimits,
		logger:       logger,
		now:          time.Now,
	}
}

// GetContract returns a contract the actor is party to
func (s *ContractService) GetContract(ctx context.Context, actor identity.Actor, id uuid.UUID) (*ContractResponse, error) {
	party, err := partyOf(actor)
	if err != nil {
		return nil, err
	}
	c, err := s.contractRepo.FindScoped(ctx, id, party.Scope(actor.UserID))
	if err != nil {
		return nil, err
	}
	resp := ToContractResponse(c)
	return &resp, nil
}

// ListContracts lists the actor's contracts. Filters may carry is_active.
func (s *ContractService) ListContracts(ctx context.Context, actor identity.Actor, filter shared.Filter) (*shared.Paginated[ContractResponse], error) {
	party, err := partyOf(actor)
	if err != nil {
		return nil, err
	}
	filter = s.pageLimits.Normalize(filter)
	contracts, total, err := s.contractRepo.FindAll(ctx, party.Scope(actor.UserID), filter)
	if err != nil {
		return nil, err
	}
	items := make([]ContractResponse, len(contracts))
	for i, c := range contracts {
		items[i] = ToContractResponse(c)
	}
	page := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &page, nil
}

// RateContract stores the client's rating
func (s *ContractService) RateContract(ctx context.Context, actor identity.Actor, id uuid.UUID, req RateContractRequest) (*ContractResponse, error) {
	c, err := s.ownedByClient(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if err := c.Rate(actor.UserID, req.Rating, req.Feedback); err != nil {
		return nil, err
	}
	if err := s.contractRepo.Update(ctx, c); err != nil {
		return nil, err
	}
	s.logger.Info("Contract rated",
		zap.String("contract_id", c.ID.String()),
		zap.Int("rating", req.Rating))

	resp := ToContractResponse(c)
	return &resp, nil
}

// CloseContract ends an active contract as of today
func (s *ContractService) CloseContract(ctx context.Context, actor identity.Actor, id uuid.UUID) (*ContractResponse, error) {
	c, err := s.ownedByClient(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if err := c.Close(actor.UserID, s.now()); err != nil {
		return nil, err
	}
	if err := s.contractRepo.Update(ctx, c); err != nil {
		return nil, err
	}
	appshared.PublishEvents(ctx, s.events, s.logger, c)
	s.logger.Info("Contract closed", zap.String("contract_id", c.ID.String()))

	resp := ToContractResponse(c)
	return &resp, nil
}

func (s *ContractService) ownedByClient(ctx context.Context, actor identity.Actor, id uuid.UUID) (*contract.JobContract, error) {
	if err := actor.Require(identity.RoleClient); err != nil {
		return nil, err
	}
	return s.contractRepo.FindScoped(ctx, id, job.ClientParty{}.Scope(actor.UserID))
}

// partyOf resolves the side a signed in actor works for
func partyOf(actor identity.Actor) (job.Party, error) {
	if err := actor.Require(identity.RoleClient, identity.RoleCoder); err != nil {
		return nil, err
	}
	return job.PartyFor(actor)
}
