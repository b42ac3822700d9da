package job

import (
	"strings"

	"github.com/google/uuid"
	"github.com/hirecoder/backend/internal/domain/catalog"
	"github.com/hirecoder/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// BudgetType decides whether a job is billed per hour or as a fixed price
type BudgetType string

const (
	BudgetTypeFixed  BudgetType = "FIXED"
	BudgetTypeHourly BudgetType = "HOURLY"
)

// IsValid reports whether b is a known budget type
func (b BudgetType) IsValid() bool {
	return b == BudgetTypeFixed || b == BudgetTypeHourly
}

// PostingStatus is the lifecycle status of a job posting
type PostingStatus string

const (
	PostingStatusOpen      PostingStatus = "OPEN"
	PostingStatusClosed    PostingStatus = "CLOSED"
	PostingStatusActive    PostingStatus = "ACTIVE"
	PostingStatusCompleted PostingStatus = "COMPLETED"
)

// IsValid reports whether s is a known posting status
func (s PostingStatus) IsValid() bool {
	switch s {
	case PostingStatusOpen, PostingStatusClosed, PostingStatusActive, PostingStatusCompleted:
		return true
	}
	return false
}

// AcceptsApplicants reports whether invitations and proposals may target the posting
func (s PostingStatus) AcceptsApplicants() bool {
	return s == PostingStatusOpen || s == PostingStatusActive
}

// ProjectSize is the rough scope of a posting
type ProjectSize string

const (
	ProjectSizeSmall  ProjectSize = "SMALL"
	ProjectSizeMedium ProjectSize = "MEDIUM"
	ProjectSizeLarge  ProjectSize = "LARGE"
)

// IsValid reports whether p is a known project size
func (p ProjectSize) IsValid() bool {
	return p == ProjectSizeSmall || p == ProjectSizeMedium || p == ProjectSizeLarge
}

// Duration is the expected length of the engagement
type Duration string

const (
	DurationShortTerm  Duration = "SHORT_TERM"
	DurationMediumTerm Duration = "MEDIUM_TERM"
	DurationLongTerm   Duration = "LONG_TERM"
)

// IsValid reports whether d is a known duration
func (d Duration) IsValid() bool {
	return d == DurationShortTerm || d == DurationMediumTerm || d == DurationLongTerm
}

// Residence restricts where applicants may live
type Residence string

const (
	ResidenceUSAOnly  Residence = "USA_ONLY"
	ResidenceAnywhere Residence = "ANYWHERE_IN_THE_WORLD"
)

// IsValid reports whether r is a known residence preference
func (r Residence) IsValid() bool {
	return r == ResidenceUSAOnly || r == ResidenceAnywhere
}

// JobPosting is a client-authored listing that coders bid on
type JobPosting struct {
	shared.BaseAggregateRoot
	ClientID                uuid.UUID
	Title                   string
	Description             string
	Technologies            []string
	TimeZones               []string
	ProjectSize             ProjectSize
	BudgetType              BudgetType
	ExpertiseLevels         []catalog.ExpertiseLevel
	Duration                Duration
	Status                  PostingStatus
	MaximumBudget           *decimal.Decimal
	MaximumHourlyRate       *int
	MinimumHourlyRate       *int
	PreferredCoderResidence Residence
}

// NewPostingInput carries the client-supplied posting fields
type NewPostingInput struct {
	Title                   string
	Description             string
	Technologies            []string
	TimeZones               []string
	ProjectSize             ProjectSize
	BudgetType              BudgetType
	ExpertiseLevels         []catalog.ExpertiseLevel
	Duration                Duration
	MaximumBudget           *decimal.Decimal
	MaximumHourlyRate       *int
	MinimumHourlyRate       *int
	PreferredCoderResidence Residence
}

// NewJobPosting validates the input and creates an OPEN posting owned by clientID.
// Budget fields that do not apply to the budget type are rejected, never stored.
func NewJobPosting(clientID uuid.UUID, in NewPostingInput) (*JobPosting, error) {
	var verrs shared.ValidationErrors

	title := strings.TrimSpace(in.Title)
	if title == "" {
		verrs.Add("title", "Title is required")
	} else if len(title) > 255 {
		verrs.Add("title", "Title cannot exceed 255 characters")
	}
	description := strings.TrimSpace(in.Description)
	if description == "" {
		verrs.Add("description", "Description is required")
	}

	technologies := catalog.NormalizeTechnologyNames(in.Technologies)
	if len(technologies) == 0 {
		verrs.Add("technologies", "At least one technology is required")
	}
	timezones := uniqueTrimmed(in.TimeZones)
	if len(timezones) == 0 {
		verrs.Add("timezones", "At least one timezone is required")
	}

	if !in.ProjectSize.IsValid() {
		verrs.Add("project_size", "Project size must be SMALL, MEDIUM or LARGE")
	}
	if !in.Duration.IsValid() {
		verrs.Add("duration", "Duration must be SHORT_TERM, MEDIUM_TERM or LONG_TERM")
	}
	residence := in.PreferredCoderResidence
	if residence == "" {
		residence = ResidenceAnywhere
	}
	if !residence.IsValid() {
		verrs.Add("preferred_coder_residence", "Preferred coder residence must be USA_ONLY or ANYWHERE_IN_THE_WORLD")
	}
	for _, l := range in.ExpertiseLevels {
		if !l.IsValid() {
			verrs.Add("expertise", "Expertise must be BEGINNER, INTERMEDIATE or EXPERT")
			break
		}
	}

	posting := &JobPosting{
		BaseAggregateRoot:       shared.NewBaseAggregateRoot(),
		ClientID:                clientID,
		Title:                   title,
		Description:             description,
		Technologies:            technologies,
		TimeZones:               timezones,
		ProjectSize:             in.ProjectSize,
		BudgetType:              in.BudgetType,
		ExpertiseLevels:         uniqueLevels(in.ExpertiseLevels),
		Duration:                in.Duration,
		Status:                  PostingStatusOpen,
		PreferredCoderResidence: residence,
	}

	switch in.BudgetType {
	case BudgetTypeFixed:
		if in.MaximumHourlyRate != nil {
			verrs.Add("maximum_hourly_rate", "Hourly rate is not allowed for FIXED budget type")
		}
		if in.MinimumHourlyRate != nil {
			verrs.Add("minimum_hourly_rate", "Hourly rate is not allowed for FIXED budget type")
		}
		if in.MaximumBudget == nil {
			verrs.Add("maximum_budget", "Maximum budget is required for FIXED budget type")
		} else if !in.MaximumBudget.IsPositive() {
			verrs.Add("maximum_budget", "Maximum budget must be greater than 0")
		} else {
			budget := in.MaximumBudget.Round(2)
			posting.MaximumBudget = &budget
		}
	case BudgetTypeHourly:
		if in.MaximumHourlyRate == nil {
			verrs.Add("maximum_hourly_rate", "Maximum hourly rate is required for HOURLY budget type")
		} else if *in.MaximumHourlyRate <= 0 {
			verrs.Add("maximum_hourly_rate", "Maximum hourly rate must be a positive number")
		}
		if in.MinimumHourlyRate == nil {
			verrs.Add("minimum_hourly_rate", "Minimum hourly rate is required for HOURLY budget type")
		} else if *in.MinimumHourlyRate <= 0 {
			verrs.Add("minimum_hourly_rate", "Minimum hourly rate must be a positive number")
		}
		if in.MaximumHourlyRate != nil && in.MinimumHourlyRate != nil && *in.MaximumHourlyRate < *in.MinimumHourlyRate {
			verrs.Add("maximum_hourly_rate", "Maximum hourly rate must be greater than or equal to minimum hourly rate")
		}
		posting.MaximumHourlyRate = copyInt(in.MaximumHourlyRate)
		posting.MinimumHourlyRate = copyInt(in.MinimumHourlyRate)
	default:
		verrs.Add("budget_type", "Budget type must be FIXED or HOURLY")
	}

	if err := verrs.Err(); err != nil {
		return nil, err
	}

	posting.AddDomainEvent(NewJobPostingCreatedEvent(posting))
	return posting, nil
}

// IsOwnedBy reports whether clientID owns the posting
func (p *JobPosting) IsOwnedBy(clientID uuid.UUID) bool {
	return p.ClientID == clientID
}

// IsHourly reports whether the posting is billed per hour
func (p *JobPosting) IsHourly() bool {
	return p.BudgetType == BudgetTypeHourly
}

// ChangeStatus sets a new posting status
func (p *JobPosting) ChangeStatus(actorID uuid.UUID, status PostingStatus) error {
	if !status.IsValid() {
		return shared.NewValidationError("status", "Status must be OPEN, CLOSED, ACTIVE or COMPLETED")
	}
	if !p.IsOwnedBy(actorID) {
		return shared.NewDomainError("JOB_POSTING_NOT_FOUND", "Job posting not found")
	}
	if p.Status == status {
		return nil
	}
	old := p.Status
	p.Status = status
	p.Touch()
	p.IncrementVersion()
	p.AddDomainEvent(NewJobPostingStatusChangedEvent(p, old, actorID))
	return nil
}

// WantsExpertise reports whether the posting asks for level
func (p *JobPosting) WantsExpertise(level catalog.ExpertiseLevel) bool {
	for _, l := range p.ExpertiseLevels {
		if l == level {
			return true
		}
	}
	return false
}

func uniqueTrimmed(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func uniqueLevels(levels []catalog.ExpertiseLevel) []catalog.ExpertiseLevel {
	out := make([]catalog.ExpertiseLevel, 0, len(levels))
	for _, want := range catalog.AllExpertiseLevels() {
		for _, l := range levels {
			if l == want {
				out = append(out, want)
				break
			}
		}
	}
	return out
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
