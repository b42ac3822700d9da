// Package home serves the public landing-page recommendations.
package home

import (
	"context"
	"time"

	"github.com/google/uuid"
	jobapp "github.com/hirecoder/backend/internal/application/job"
	profileapp "github.com/hirecoder/backend/internal/application/profile"
	"github.com/hirecoder/backend/internal/domain/identity"
	"github.com/hirecoder/backend/internal/domain/job"
	"github.com/hirecoder/backend/internal/domain/profile"
	"github.com/hirecoder/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// RecommendationLimit is the number of postings or coders sampled per request
const RecommendationLimit = 5

var errRecommendedJobNotFound = shared.NewDomainError("JOB_POSTING_NOT_FOUND", "Job posting not found")

// RecommendedJobResponse is an open posting with its client's company
type RecommendedJobResponse struct {
	jobapp.PostingResponse
	CompanyName    string `json:"company_name,omitempty"`
	CompanyLogoURL string `json:"company_logo,omitempty"`
}

// RecommendedCoderExperience is the public part of a coder's summary
type RecommendedCoderExperience struct {
	HourlyRate             int                        `json:"hourly_rate"`
	Identity               string                     `json:"identity"`
	TotalYearsOfExperience int                        `json:"total_years_of_experience"`
	ProfilePictureURL      string                     `json:"profile_picture,omitempty"`
	Skills                 []profileapp.SkillResponse `json:"skills"`
}

// RecommendedCoderLocation is the public part of a coder's address
type RecommendedCoderLocation struct {
	City    string `json:"city"`
	Country string `json:"country"`
}

// RecommendedCoderResponse is a verified coder shown on the landing page
type RecommendedCoderResponse struct {
	Username   string                      `json:"id"`
	FirstName  string                      `json:"first_name"`
	LastName   string                      `json:"last_name"`
	Experience *RecommendedCoderExperience `json:"coderskillexperience"`
	Address    *RecommendedCoderLocation   `json:"address"`
	JoinedAt   time.Time                   `json:"created_at"`
}

// Repositories groups the stores the recommendations read
type Repositories struct {
	Postings   job.JobPostingRepository
	Users      identity.UserRepository
	Companies  profile.CompanyDetailsRepository
	Experience profile.CoderExperienceRepository
	Addresses  profile.AddressRepository
	Skills     profile.SkillRepository
}

// RecommendationService samples open postings and verified coders for
// anonymous visitors
type RecommendationService struct {
	repos     Repositories
	storage   profileapp.FileStorage
	urlExpiry time.Duration
	logger    *zap.Logger
}

// NewRecommendationService creates a new RecommendationService
func NewRecommendationService(repos Repositories, storage profileapp.FileStorage, urlExpiry time.Duration, logger *zap.Logger) *RecommendationService {
	if urlExpiry <= 0 {
		urlExpiry = 15 * time.Minute
	}
	return &RecommendationService{repos: repos, storage: storage, urlExpiry: urlExpiry, logger: logger}
}

// RecommendedJobs returns up to RecommendationLimit random OPEN postings
func (s *RecommendationService) RecommendedJobs(ctx context.Context) ([]RecommendedJobResponse, error) {
	postings, err := s.repos.Postings.SampleOpen(ctx, RecommendationLimit)
	if err != nil {
		return nil, err
	}
	return s.withCompanies(ctx, postings)
}

// RecommendedJob returns one OPEN posting. Postings in any other status are not found.
func (s *RecommendationService) RecommendedJob(ctx context.Context, id uuid.UUID) (*RecommendedJobResponse, error) {
	posting, err := s.repos.Postings.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if posting.Status != job.PostingStatusOpen {
		return nil, errRecommendedJobNotFound
	}
	out, err := s.withCompanies(ctx, []*job.JobPosting{posting})
	if err != nil {
		return nil, err
	}
	return &out[0], nil
}

func (s *RecommendationService) withCompanies(ctx context.Context, postings []*job.JobPosting) ([]RecommendedJobResponse, error) {
	clientIDs := make([]uuid.UUID, 0, len(postings))
	for _, p := range postings {
		clientIDs = append(clientIDs, p.ClientID)
	}
	companies, err := s.repos.Companies.FindByUsers(ctx, clientIDs)
	if err != nil {
		return nil, err
	}
	byClient := make(map[uuid.UUID]*profile.CompanyDetails, len(companies))
	for _, c := range companies {
		byClient[c.UserID] = c
	}

	out := make([]RecommendedJobResponse, len(postings))
	for i, p := range postings {
		out[i] = RecommendedJobResponse{PostingResponse: jobapp.ToPostingResponse(p)}
		if c, ok := byClient[p.ClientID]; ok {
			out[i].CompanyName = c.CompanyName
			out[i].CompanyLogoURL = s.downloadURL(ctx, c.LogoKey)
		}
	}
	return out, nil
}

// RecommendedCoders returns up to RecommendationLimit random verified coders
func (s *RecommendationService) RecommendedCoders(ctx context.Context) ([]RecommendedCoderResponse, error) {
	coders, err := s.repos.Users.SampleVerifiedCoders(ctx, RecommendationLimit)
	if err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, len(coders))
	for i, c := range coders {
		ids[i] = c.ID
	}

	experiences, err := s.repos.Experience.FindByUsers(ctx, ids)
	if err != nil {
		return nil, err
	}
	addresses, err := s.repos.Addresses.FindByUsers(ctx, ids)
	if err != nil {
		return nil, err
	}
	skills, err := s.repos.Skills.FindByUsers(ctx, ids)
	if err != nil {
		return nil, err
	}

	skillsByUser := make(map[uuid.UUID][]profileapp.SkillResponse)
	for _, sk := range skills {
		skillsByUser[sk.UserID] = append(skillsByUser[sk.UserID], profileapp.ToSkillResponse(sk))
	}
	experienceByUser := make(map[uuid.UUID]*RecommendedCoderExperience, len(experiences))
	for _, e := range experiences {
		userSkills := skillsByUser[e.UserID]
		if userSkills == nil {
			userSkills = []profileapp.SkillResponse{}
		}
		experienceByUser[e.UserID] = &RecommendedCoderExperience{
			HourlyRate:             e.HourlyRate,
			Identity:               e.Identity,
			TotalYearsOfExperience: e.TotalYearsOfExperience,
			ProfilePictureURL:      s.downloadURL(ctx, e.ProfilePictureKey),
			Skills:                 userSkills,
		}
	}
	addressByUser := make(map[uuid.UUID]*RecommendedCoderLocation, len(addresses))
	for _, a := range addresses {
		addressByUser[a.UserID] = &RecommendedCoderLocation{City: a.City, Country: a.Country}
	}

	out := make([]RecommendedCoderResponse, len(coders))
	for i, c := range coders {
		out[i] = RecommendedCoderResponse{
			Username:   c.Username,
			FirstName:  c.FirstName,
			LastName:   c.LastName,
			Experience: experienceByUser[c.ID],
			Address:    addressByUser[c.ID],
			JoinedAt:   c.CreatedAt,
		}
	}
	return out, nil
}

// downloadURL presigns key for display. Failures only drop the image.
func (s *RecommendationService) downloadURL(ctx context.Context, key string) string {
	if key == "" {
		return ""
	}
	url, _, err := s.storage.GenerateDownloadURL(ctx, key, s.urlExpiry)
	if err != nil {
		s.logger.Warn("Failed to presign profile image", zap.String("key", key), zap.Error(err))
		return ""
	}
	return url
}

