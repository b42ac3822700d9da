package shared

import (
	"context"

	"github.com/hirecoder/backend/internal/domain/contract"
	"github.com/hirecoder/backend/internal/domain/identity"
	"github.com/hirecoder/backend/internal/domain/job"
)

// TransactionScope provides transactional access to the marketplace repositories.
// All repository operations inside Execute share one database transaction and
// are committed or rolled back together.
type TransactionScope interface {
	// Execute runs fn within a database transaction.
	// If fn returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories exposes repositories bound to the current transaction.
type TransactionalRepositories interface {
	PostingRepo() job.JobPostingRepository
	InvitationRepo() job.JobInvitationRepository
	ProposalRepo() job.JobProposalRepository
	ContractRepo() contract.JobContractRepository
	TimesheetRepo() contract.TimesheetRepository
	UserRepo() identity.UserRepository
}

// NoOpTransactionScope runs fn against plain repositories without a transaction.
// Tests use it with mocked repositories.
type NoOpTransactionScope struct {
	repos noOpRepositories
}

// NoOpRepositories groups the repositories handed to fn by NoOpTransactionScope.
// Nil fields stay nil.
type NoOpRepositories struct {
	Postings    job.JobPostingRepository
	Invitations job.JobInvitationRepository
	Proposals   job.JobProposalRepository
	Contracts   contract.JobContractRepository
	Timesheets  contract.TimesheetRepository
	Users       identity.UserRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope over repos.
func NewNoOpTransactionScope(repos NoOpRepositories) *NoOpTransactionScope {
	return &NoOpTransactionScope{repos: noOpRepositories{r: repos}}
}

// Execute runs fn directly.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s.repos)
}

type noOpRepositories struct {
	r NoOpRepositories
}

func (n noOpRepositories) PostingRepo() job.JobPostingRepository { return n.r.Postings }
func (n noOpRepositories) InvitationRepo() job.JobInvitationRepository { return n.r.Invitations }
func (n noOpRepositories) ProposalRepo() job.JobProposalRepository { return n.r.Proposals }
func (n noOpRepositories) ContractRepo() contract.JobContractRepository { return n.r.Contracts }
func (n noOpRepositories) TimesheetRepo() contract.TimesheetRepository { return n.r.Timesheets }
func (n noOpRepositories) UserRepo() identity.UserRepository { return n.r.Users }

var (
	_ TransactionScope          = (*NoOpTransactionScope)(nil)
	_ TransactionalRepositories = noOpRepositories{}
)
