package job

import (
	"context"
	"errors"
	"fmt"
	"path"
	"regexp"
	"strings"
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

var (
	errAttachmentNotFound = shared.NewDomainError("ATTACHMENT_NOT_FOUND", "Proposal has no attachment")
	unsafeFileChars       = regexp.MustCompile(`[^A-Za-z0-9._-]+`)
)

const maxFileNameLength = 100

// ProposalService manages coder proposals and creates the contract once a
// coder accepts.
type ProposalService struct {
	proposalRepo job.JobProposalRepository
	postingRepo  job.JobPostingRepository
	txScope      appshared.TransactionScope
	storage      AttachmentStorage
	events       shared.EventPublisher
	metrics      appshared.MetricsRecorder
	settings     Settings
	logger       *zap.Logger
	now          func() time.Time
}

// NewProposalService creates a new ProposalService
func NewProposalService(
	proposalRepo job.JobProposalRepository,
	postingRepo job.JobPostingRepository,
	txScope appshared.TransactionScope,
	storage AttachmentStorage,
	events shared.EventPublisher,
	metrics appshared.MetricsRecorder,
	settings Settings,
	logger *zap.Logger,
) *ProposalService {
	if metrics == nil {
		metrics = appshared.NoopMetrics{}
	}
	return &ProposalService{
		proposalRepo: proposalRepo,
		postingRepo:  postingRepo,
		txScope:      txScope,
		storage:      storage,
		events:       events,
		metrics:      metrics,
		settings:     settings,
		logger:       logger,
		now:          time.Now,
	}
}

// SubmitProposal records a coder's bid. Fees are computed from the configured
// platform fee percentage.
func (s *ProposalService) SubmitProposal(ctx context.Context, actor identity.Actor, req SubmitProposalRequest) (*ProposalResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "proposal", "submit",
		"proposal.job_posting_id", req.JobPostingID.String())
	defer span.End()

	if err := actor.RequireVerified(identity.RoleCoder); err != nil {
		return nil, err
	}
	posting, err := s.postingRepo.FindByID(ctx, req.JobPostingID)
	if err != nil {
		return nil, err
	}
	proposal, err := job.NewJobProposal(posting, actor.UserID, job.NewProposalInput{
		Description:         req.Description,
		HourlyRate:          req.HourlyRate,
		AvailabilityPerWeek: req.AvailabilityPerWeek,
		EstimateDays:        req.EstimateDays,
	}, s.settings.PlatformFeePercentage)
	if err != nil {
		return nil, err
	}
	if err := s.proposalRepo.Create(ctx, proposal); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	s.metrics.ProposalSubmitted(ctx, string(proposal.ProposalType))
	appshared.PublishEvents(ctx, s.events, s.logger, proposal)

	telemetry.SetAttributes(span,
		"proposal.id", proposal.ID.String(),
		"proposal.type", string(proposal.ProposalType))
	s.logger.Info("Proposal submitted",
		zap.String("proposal_id", proposal.ID.String()),
		zap.String("posting_id", posting.ID.String()),
		zap.String("coder_id", actor.UserID.String()),
		zap.String("total_project_cost", proposal.Fees.TotalProjectCost.String()))

	resp := ToProposalResponse(proposal)
	return &resp, nil
}

// UpdateProposalStatus applies the actor's decision on a proposal. When a coder
// accepts, the contract is created in the same transaction; an existing
// contract for the posting and coder rolls the status change back.
func (s *ProposalService) UpdateProposalStatus(ctx context.Context, actor identity.Actor, id uuid.UUID, req UpdateProposalStatusRequest) (*ProposalStatusResult, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "proposal", "update_status",
		"proposal.id", id.String(),
		"proposal.status", string(req.Status))
	defer span.End()

	party, err := verifiedParty(actor)
	if err != nil {
		return nil, err
	}

	var (
		proposal *job.JobProposal
		created  *contract.JobContract
	)
	err = s.txScope.Execute(ctx, func(repos appshared.TransactionalRepositories) error {
		var err error
		proposal, err = repos.ProposalRepo().FindScoped(ctx, id, party.Scope(actor.UserID))
		if err != nil {
			return err
		}
		previous := proposal.Status
		if err := proposal.ChangeStatus(party, actor.UserID, req.Status); err != nil {
			return err
		}
		if proposal.Status == previous {
			return nil
		}
		if err := repos.ProposalRepo().Update(ctx, proposal); err != nil {
			return err
		}
		if !proposal.IsAcceptedByCoder() {
			return nil
		}
		created, err = s.createContract(ctx, repos, proposal)
		return err
	})
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	result := &ProposalStatusResult{Proposal: ToProposalResponse(proposal)}
	if created != nil {
		s.metrics.ContractCreated(ctx, created.IsHourlyRate)
		appshared.PublishEvents(ctx, s.events, s.logger, proposal, created)
		contractID := created.ID
		result.ContractID = &contractID
		s.logger.Info("Contract created",
			zap.String("contract_id", created.ID.String()),
			zap.String("proposal_id", proposal.ID.String()),
			zap.String("contract_name", created.Name))
	} else {
		appshared.PublishEvents(ctx, s.events, s.logger, proposal)
	}
	return result, nil
}

// createContract inserts the contract for a proposal its coder just accepted
func (s *ProposalService) createContract(ctx context.Context, repos appshared.TransactionalRepositories, proposal *job.JobProposal) (*contract.JobContract, error) {
	existing, err := repos.ContractRepo().FindByPostingAndCoder(ctx, proposal.JobPostingID, proposal.CoderID)
	switch {
	case err == nil:
		return nil, s.duplicateContract(ctx, repos, existing)
	case !errors.Is(err, shared.ErrNotFound):
		return nil, err
	}

	posting, err := repos.PostingRepo().FindByID(ctx, proposal.JobPostingID)
	if err != nil {
		return nil, err
	}
	parties, err := contractParties(ctx, repos.UserRepo(), proposal, posting)
	if err != nil {
		return nil, err
	}
	c, err := contract.NewJobContract(proposal, parties, s.settings.PlatformFeePercentage, s.now())
	if err != nil {
		return nil, err
	}
	if err := repos.ContractRepo().Create(ctx, c); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			// lost a race with a concurrent acceptance
			return nil, contract.DuplicateContractError(job.ProposalStatusAcceptedByCoder).WithCause(err)
		}
		return nil, err
	}
	return c, nil
}

func (s *ProposalService) duplicateContract(ctx context.Context, repos appshared.TransactionalRepositories, existing *contract.JobContract) error {
	status := job.ProposalStatusAcceptedByCoder
	origin, err := repos.ProposalRepo().FindByID(ctx, existing.ProposalID)
	if err == nil {
		status = origin.Status
	} else if !errors.Is(err, shared.ErrNotFound) {
		return err
	}
	return contract.DuplicateContractError(status)
}

// contractParties loads the usernames the contract name is built from
func contractParties(ctx context.Context, userRepo identity.UserRepository, proposal *job.JobProposal, posting *job.JobPosting) (contract.Parties, error) {
	users, err := userRepo.FindByIDs(ctx, []uuid.UUID{proposal.ClientID, proposal.CoderID})
	if err != nil {
		return contract.Parties{}, err
	}
	parties := contract.Parties{PostingTitle: posting.Title}
	for _, u := range users {
		switch u.ID {
		case proposal.ClientID:
			parties.ClientUsername = u.Username
		case proposal.CoderID:
			parties.CoderUsername = u.Username
		}
	}
	if parties.ClientUsername == "" || parties.CoderUsername == "" {
		return contract.Parties{}, shared.NewDomainError("USER_NOT_FOUND", "Contract party not found")
	}
	return parties, nil
}

// GetProposal returns a proposal visible to the actor
func (s *ProposalService) GetProposal(ctx context.Context, actor identity.Actor, id uuid.UUID) (*ProposalResponse, error) {
	party, err := verifiedParty(actor)
	if err != nil {
		return nil, err
	}
	proposal, err := s.proposalRepo.FindScoped(ctx, id, party.Scope(actor.UserID))
	if err != nil {
		return nil, err
	}
	resp := ToProposalResponse(proposal)
	return &resp, nil
}

// ListProposals lists the coder's own proposals, or the proposals on a client's postings
func (s *ProposalService) ListProposals(ctx context.Context, actor identity.Actor, filter job.ProposalFilter) (*shared.Paginated[ProposalResponse], error) {
	party, err := verifiedParty(actor)
	if err != nil {
		return nil, err
	}
	filter.Filter = s.settings.PageLimits.Normalize(filter.Filter)
	proposals, total, err := s.proposalRepo.FindAll(ctx, party.Scope(actor.UserID), filter)
	if err != nil {
		return nil, err
	}
	items := make([]ProposalResponse, len(proposals))
	for i, p := range proposals {
		items[i] = ToProposalResponse(p)
	}
	page := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &page, nil
}

// RequestAttachmentUpload stores a new attachment key on the coder's proposal
// and returns a presigned PUT URL for it.
func (s *ProposalService) RequestAttachmentUpload(ctx context.Context, actor identity.Actor, id uuid.UUID, req AttachmentUploadRequest) (*AttachmentURLResponse, error) {
	if err := actor.RequireVerified(identity.RoleCoder); err != nil {
		return nil, err
	}
	proposal, err := s.proposalRepo.FindScoped(ctx, id, job.CoderParty{}.Scope(actor.UserID))
	if err != nil {
		return nil, err
	}

	key := AttachmentKey(proposal.ID, req.FileName)
	url, expiresAt, err := s.storage.GenerateUploadURL(ctx, key, req.ContentType, s.settings.attachmentExpiry())
	if err != nil {
		return nil, fmt.Errorf("presign attachment upload: %w", err)
	}

	previous := proposal.AttachmentKey
	if err := proposal.AttachFile(actor.UserID, key); err != nil {
		return nil, err
	}
	if err := s.proposalRepo.Update(ctx, proposal); err != nil {
		return nil, err
	}
	if previous != "" && previous != key {
		if err := s.storage.DeleteObject(ctx, previous); err != nil {
			s.logger.Warn("Failed to delete replaced attachment", zap.String("key", previous), zap.Error(err))
		}
	}

	return &AttachmentURLResponse{URL: url, Method: "PUT", Key: key, ExpiresAt: expiresAt}, nil
}

// GetAttachmentURL returns a presigned GET URL for a proposal's attachment
func (s *ProposalService) GetAttachmentURL(ctx context.Context, actor identity.Actor, id uuid.UUID) (*AttachmentURLResponse, error) {
	party, err := verifiedParty(actor)
	if err != nil {
		return nil, err
	}
	proposal, err := s.proposalRepo.FindScoped(ctx, id, party.Scope(actor.UserID))
	if err != nil {
		return nil, err
	}
	if proposal.AttachmentKey == "" {
		return nil, errAttachmentNotFound
	}
	exists, err := s.storage.ObjectExists(ctx, proposal.AttachmentKey)
	if err != nil {
		return nil, fmt.Errorf("check attachment: %w", err)
	}
	if !exists {
		return nil, errAttachmentNotFound
	}
	url, expiresAt, err := s.storage.GenerateDownloadURL(ctx, proposal.AttachmentKey, s.settings.attachmentExpiry())
	if err != nil {
		return nil, fmt.Errorf("presign attachment download: %w", err)
	}
	return &AttachmentURLResponse{URL: url, Method: "GET", Key: proposal.AttachmentKey, ExpiresAt: expiresAt}, nil
}

// AttachmentKey builds the storage key proposals/<id>/<uuid>-<name>
func AttachmentKey(proposalID uuid.UUID, fileName string) string {
	return fmt.Sprintf("proposals/%s/%s-%s", proposalID, uuid.New(), SanitizeFileName(fileName))
}

// SanitizeFileName keeps the base name and replaces anything outside [A-Za-z0-9._-]
func SanitizeFileName(name string) string {
	name = path.Base(strings.ReplaceAll(strings.TrimSpace(name), `\`, "/"))
	name = unsafeFileChars.ReplaceAllString(name, "-")
	name = strings.Trim(name, "-.")
	if len(name) > maxFileNameLength {
		name = name[len(name)-maxFileNameLength:]
	}
	if name == "" {
		return "file"
	}
	return name
}
