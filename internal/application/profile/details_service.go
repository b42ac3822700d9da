package profile

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/hirecoder/backend/internal/domain/identity"
	"github.com/hirecoder/backend/internal/domain/profile"
	"github.com/hirecoder/backend/internal/domain/shared"
	"go.uber.org/zap"
)

var errFileNotFound = shared.NewDomainError("FILE_NOT_FOUND", "No file has been stored for this slot")

// FileStorage presigns direct transfers of profile files
type FileStorage interface {
	GenerateUploadURL(ctx context.Context, key, contentType string, expiresIn time.Duration) (string, time.Time, error)
	GenerateDownloadURL(ctx context.Context, key string, expiresIn time.Duration) (string, time.Time, error)
}

// DetailsRepositories groups the stores behind DetailsService
type DetailsRepositories struct {
	Skills     profile.SkillRepository
	Addresses  profile.AddressRepository
	Presence   profile.DigitalPresenceRepository
	Companies  profile.CompanyDetailsRepository
	Experience profile.CoderExperienceRepository
	Degrees    profile.DegreeRepository
	Education  profile.EducationRepository
}

// DetailsService manages the one-per-user profile records, degrees and
// profile files of the acting user
type DetailsService struct {
	repos     DetailsRepositories
	storage   FileStorage
	urlExpiry time.Duration
	logger    *zap.Logger
	now       func() time.Time
}

// NewDetailsService creates a new DetailsService
func NewDetailsService(repos DetailsRepositories, storage FileStorage, urlExpiry time.Duration, logger *zap.Logger) *DetailsService {
	if urlExpiry <= 0 {
		urlExpiry = 15 * time.Minute
	}
	return &DetailsService{
		repos:     repos,
		storage:   storage,
		urlExpiry: urlExpiry,
		logger:    logger,
		now:       time.Now,
	}
}

// upsert loads the caller's record and either updates it or creates a new one.
// created reports which happened.
func upsert[T any](
	find func() (T, error),
	create func() (T, error),
	update func(T) error,
) (record T, created bool, err error) {
	record, err = find()
	switch {
	case err == nil:
		return record, false, update(record)
	case errors.Is(err, shared.ErrNotFound):
		record, err = create()
		return record, true, err
	}
	return record, false, err
}

// GetAddress returns the caller's address
func (s *DetailsService) GetAddress(ctx context.Context, actor identity.Actor) (*AddressResponse, error) {
	if actor.UserID == uuid.Nil {
		return nil, shared.ErrUnauthorized
	}
	a, err := s.repos.Addresses.FindByUser(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	resp := ToAddressResponse(a)
	return &resp, nil
}

// SaveAddress creates or replaces the caller's address
func (s *DetailsService) SaveAddress(ctx context.Context, actor identity.Actor, req AddressRequest) (*AddressResponse, bool, error) {
	if actor.UserID == uuid.Nil {
		return nil, false, shared.ErrUnauthorized
	}
	in := req.toInput()
	a, created, err := upsert(
		func() (*profile.Address, error) { return s.repos.Addresses.FindByUser(ctx, actor.UserID) },
		func() (*profile.Address, error) {
			a, err := profile.NewAddress(actor.UserID, in)
			if err != nil {
				return nil, err
			}
			return a, s.repos.Addresses.Create(ctx, a)
		},
		func(a *profile.Address) error {
			if err := a.Update(in); err != nil {
				return err
			}
			return s.repos.Addresses.Update(ctx, a)
		},
	)
	if err != nil {
		return nil, false, err
	}
	resp := ToAddressResponse(a)
	return &resp, created, nil
}

// GetDigitalPresence returns the caller's profile links
func (s *DetailsService) GetDigitalPresence(ctx context.Context, actor identity.Actor) (*DigitalPresenceResponse, error) {
	if err := actor.Require(identity.RoleClient, identity.RoleCoder); err != nil {
		return nil, err
	}
	d, err := s.repos.Presence.FindByUser(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	resp := ToDigitalPresenceResponse(d)
	return &resp, nil
}

// SaveDigitalPresence creates or replaces the links the caller's role maintains
func (s *DetailsService) SaveDigitalPresence(ctx context.Context, actor identity.Actor, req DigitalPresenceRequest) (*DigitalPresenceResponse, bool, error) {
	if err := actor.Require(identity.RoleClient, identity.RoleCoder); err != nil {
		return nil, false, err
	}
	in := req.toInput().ForRole(actor.Role)
	d, created, err := upsert(
		func() (*profile.DigitalPresence, error) { return s.repos.Presence.FindByUser(ctx, actor.UserID) },
		func() (*profile.DigitalPresence, error) {
			d, err := profile.NewDigitalPresence(actor.UserID, in)
			if err != nil {
				return nil, err
			}
			return d, s.repos.Presence.Create(ctx, d)
		},
		func(d *profile.DigitalPresence) error {
			if err := d.Update(in); err != nil {
				return err
			}
			return s.repos.Presence.Update(ctx, d)
		},
	)
	if err != nil {
		return nil, false, err
	}
	resp := ToDigitalPresenceResponse(d)
	return &resp, created, nil
}

// GetCompanyDetails returns the caller's company
func (s *DetailsService) GetCompanyDetails(ctx context.Context, actor identity.Actor) (*CompanyDetailsResponse, error) {
	if actor.UserID == uuid.Nil {
		return nil, shared.ErrUnauthorized
	}
	c, err := s.repos.Companies.FindByUser(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	resp := ToCompanyDetailsResponse(c)
	return &resp, nil
}

// SaveCompanyDetails creates or replaces the company of a client
func (s *DetailsService) SaveCompanyDetails(ctx context.Context, actor identity.Actor, req CompanyDetailsRequest) (*CompanyDetailsResponse, bool, error) {
	if err := actor.Require(identity.RoleClient); err != nil {
		return nil, false, err
	}
	in := req.toInput()
	c, created, err := upsert(
		func() (*profile.CompanyDetails, error) { return s.repos.Companies.FindByUser(ctx, actor.UserID) },
		func() (*profile.CompanyDetails, error) {
			c, err := profile.NewCompanyDetails(actor.UserID, in)
			if err != nil {
				return nil, err
			}
			return c, s.repos.Companies.Create(ctx, c)
		},
		func(c *profile.CompanyDetails) error {
			if err := c.Update(in); err != nil {
				return err
			}
			return s.repos.Companies.Update(ctx, c)
		},
	)
	if err != nil {
		return nil, false, err
	}
	resp := ToCompanyDetailsResponse(c)
	return &resp, created, nil
}

// GetExperience returns a coder's summary with their skills
func (s *DetailsService) GetExperience(ctx context.Context, actor identity.Actor) (*ExperienceResponse, error) {
	if err := actor.Require(identity.RoleCoder); err != nil {
		return nil, err
	}
	e, err := s.repos.Experience.FindByUser(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	return s.experienceResponse(ctx, e)
}

// SaveExperience creates or replaces a coder's summary
func (s *DetailsService) SaveExperience(ctx context.Context, actor identity.Actor, req ExperienceRequest) (*ExperienceResponse, bool, error) {
	if err := actor.Require(identity.RoleCoder); err != nil {
		return nil, false, err
	}
	in := req.toInput()
	e, created, err := upsert(
		func() (*profile.CoderExperience, error) { return s.repos.Experience.FindByUser(ctx, actor.UserID) },
		func() (*profile.CoderExperience, error) {
			e, err := profile.NewCoderExperience(actor.UserID, in)
			if err != nil {
				return nil, err
			}
			return e, s.repos.Experience.Create(ctx, e)
		},
		func(e *profile.CoderExperience) error {
			if err := e.Update(in); err != nil {
				return err
			}
			return s.repos.Experience.Update(ctx, e)
		},
	)
	if err != nil {
		return nil, false, err
	}
	resp, err := s.experienceResponse(ctx, e)
	return resp, created, err
}

func (s *DetailsService) experienceResponse(ctx context.Context, e *profile.CoderExperience) (*ExperienceResponse, error) {
	skills, err := s.repos.Skills.FindByUser(ctx, e.UserID)
	if err != nil {
		return nil, err
	}
	resp := ToExperienceResponse(e, skills)
	return &resp, nil
}

// AddDegree lists a degree on a coder's profile. Names are unique per coder
// ignoring case.
func (s *DetailsService) AddDegree(ctx context.Context, actor identity.Actor, req AddDegreeRequest) (*DegreeResponse, error) {
	if err := actor.Require(identity.RoleCoder); err != nil {
		return nil, err
	}
	degree, err := profile.NewDegree(actor.UserID, req.University, req.Degree, req.College, req.PassingYear, s.now())
	if err != nil {
		return nil, err
	}
	existing, err := s.repos.Degrees.FindByUser(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	if err := profile.CheckDegreeAllowed(existing, degree.Degree); err != nil {
		return nil, err
	}
	if err := s.repos.Degrees.Create(ctx, degree); err != nil {
		return nil, err
	}
	resp := ToDegreeResponse(degree)
	return &resp, nil
}

// ListDegrees returns a coder's degrees, latest first
func (s *DetailsService) ListDegrees(ctx context.Context, actor identity.Actor) ([]DegreeResponse, error) {
	if err := actor.Require(identity.RoleCoder); err != nil {
		return nil, err
	}
	degrees, err := s.repos.Degrees.FindByUser(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	out := make([]DegreeResponse, len(degrees))
	for i, d := range degrees {
		out[i] = ToDegreeResponse(d)
	}
	return out, nil
}

// RemoveDegree deletes one of a coder's degrees
func (s *DetailsService) RemoveDegree(ctx context.Context, actor identity.Actor, id uuid.UUID) error {
	if err := actor.Require(identity.RoleCoder); err != nil {
		return err
	}
	return s.repos.Degrees.DeleteForUser(ctx, actor.UserID, id)
}

// GetEducation returns a coder's education details with their degrees
func (s *DetailsService) GetEducation(ctx context.Context, actor identity.Actor) (*EducationResponse, error) {
	if err := actor.Require(identity.RoleCoder); err != nil {
		return nil, err
	}
	e, err := s.repos.Education.FindByUser(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	return s.educationResponse(ctx, e)
}

// SaveEducation creates or replaces a coder's education details
func (s *DetailsService) SaveEducation(ctx context.Context, actor identity.Actor, req EducationRequest) (*EducationResponse, bool, error) {
	if err := actor.Require(identity.RoleCoder); err != nil {
		return nil, false, err
	}
	in := profile.EducationInput{PortfolioURL: req.PortfolioURL, ResumeKey: req.ResumeKey}
	e, created, err := upsert(
		func() (*profile.Education, error) { return s.repos.Education.FindByUser(ctx, actor.UserID) },
		func() (*profile.Education, error) {
			e, err := profile.NewEducation(actor.UserID, in)
			if err != nil {
				return nil, err
			}
			return e, s.repos.Education.Create(ctx, e)
		},
		func(e *profile.Education) error {
			if err := e.Update(in); err != nil {
				return err
			}
			return s.repos.Education.Update(ctx, e)
		},
	)
	if err != nil {
		return nil, false, err
	}
	resp, err := s.educationResponse(ctx, e)
	return resp, created, err
}

func (s *DetailsService) educationResponse(ctx context.Context, e *profile.Education) (*EducationResponse, error) {
	degrees, err := s.repos.Degrees.FindByUser(ctx, e.UserID)
	if err != nil {
		return nil, err
	}
	resp := ToEducationResponse(e, degrees)
	return &resp, nil
}

// fileRole is the role allowed to fill each file slot
var fileRole = map[profile.FileKind]identity.Role{
	profile.FileKindLogo:           identity.RoleClient,
	profile.FileKindProfilePicture: identity.RoleCoder,
	profile.FileKindResume:         identity.RoleCoder,
}

// RequestFileUpload presigns an upload into one of the caller's file slots.
// The returned key is then saved on the matching record.
func (s *DetailsService) RequestFileUpload(ctx context.Context, actor identity.Actor, req FileUploadRequest) (*FileURLResponse, error) {
	role, ok := fileRole[req.Kind]
	if !ok {
		return nil, shared.NewValidationError("kind", "Kind must be logo, profile_picture or resume")
	}
	if err := actor.Require(role); err != nil {
		return nil, err
	}
	if err := profile.CheckUploadName(req.Kind, req.FileName); err != nil {
		return nil, err
	}
	key := profile.FileKey(actor.UserID, req.Kind, req.FileName)
	url, expiresAt, err := s.storage.GenerateUploadURL(ctx, key, req.ContentType, s.urlExpiry)
	if err != nil {
		s.logger.Error("Failed to presign profile upload", zap.String("key", key), zap.Error(err))
		return nil, err
	}
	s.logger.Info("Profile upload presigned",
		zap.String("user_id", actor.UserID.String()),
		zap.String("kind", string(req.Kind)))
	return &FileURLResponse{URL: url, Method: "PUT", Key: key, ExpiresAt: expiresAt}, nil
}

// GetFileURL presigns a download of the file stored in one of the caller's slots
func (s *DetailsService) GetFileURL(ctx context.Context, actor identity.Actor, kind profile.FileKind) (*FileURLResponse, error) {
	role, ok := fileRole[kind]
	if !ok {
		return nil, shared.NewValidationError("kind", "Kind must be logo, profile_picture or resume")
	}
	if err := actor.Require(role); err != nil {
		return nil, err
	}
	key, err := s.storedKey(ctx, actor.UserID, kind)
	if err != nil {
		return nil, err
	}
	if key == "" {
		return nil, errFileNotFound
	}
	url, expiresAt, err := s.storage.GenerateDownloadURL(ctx, key, s.urlExpiry)
	if err != nil {
		return nil, err
	}
	return &FileURLResponse{URL: url, Method: "GET", Key: key, ExpiresAt: expiresAt}, nil
}

func (s *DetailsService) storedKey(ctx context.Context, userID uuid.UUID, kind profile.FileKind) (string, error) {
	var (
		key string
		err error
	)
	switch kind {
	case profile.FileKindLogo:
		var c *profile.CompanyDetails
		if c, err = s.repos.Companies.FindByUser(ctx, userID); err == nil {
			key = c.LogoKey
		}
	case profile.FileKindProfilePicture:
		var e *profile.CoderExperience
		if e, err = s.repos.Experience.FindByUser(ctx, userID); err == nil {
			key = e.ProfilePictureKey
		}
	case profile.FileKindResume:
		var e *profile.Education
		if e, err = s.repos.Education.FindByUser(ctx, userID); err == nil {
			key = e.ResumeKey
		}
	}
	if errors.Is(err, shared.ErrNotFound) {
		return "", errFileNotFound
	}
	return key, err
}
