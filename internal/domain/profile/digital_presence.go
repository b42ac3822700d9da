package profile

import (
	"github.com/google/uuid"
	"github.com/hirecoder/backend/internal/domain/identity"
	"github.com/hirecoder/backend/internal/domain/shared"
)

// DigitalPresenceInput carries the profile links of a user.
// Coders maintain the LinkedIn, GitHub and Stack Overflow links; clients the rest.
type DigitalPresenceInput struct {
	LinkedinURL      string
	GithubURL        string
	StackoverflowURL string
	GlassdoorURL     string
	CareerBlissURL   string
	YoutubeURL       string
	OtherSocialURL   string
}

// ForRole keeps only the links role maintains
func (in DigitalPresenceInput) ForRole(role identity.Role) DigitalPresenceInput {
	switch role {
	case identity.RoleCoder:
		return DigitalPresenceInput{
			LinkedinURL:      in.LinkedinURL,
			GithubURL:        in.GithubURL,
			StackoverflowURL: in.StackoverflowURL,
		}
	case identity.RoleClient:
		return DigitalPresenceInput{
			GlassdoorURL:   in.GlassdoorURL,
			CareerBlissURL: in.CareerBlissURL,
			YoutubeURL:     in.YoutubeURL,
			OtherSocialURL: in.OtherSocialURL,
		}
	}
	return in
}

func (in DigitalPresenceInput) validate() (DigitalPresenceInput, error) {
	var verrs shared.ValidationErrors
	in.LinkedinURL = checkURL(&verrs, "linkedin_url", in.LinkedinURL, 200, "linkedin")
	in.GithubURL = checkURL(&verrs, "github_url", in.GithubURL, 200, "github")
	in.StackoverflowURL = checkURL(&verrs, "stackoverflow_url", in.StackoverflowURL, 200, "stackoverflow")
	in.GlassdoorURL = checkURL(&verrs, "glassdoor_url", in.GlassdoorURL, 100, "glassdoor")
	in.CareerBlissURL = checkURL(&verrs, "career_bliss_url", in.CareerBlissURL, 100, "careerbliss")
	in.YoutubeURL = checkURL(&verrs, "youtube_url", in.YoutubeURL, 200, "youtube")
	in.OtherSocialURL = checkURL(&verrs, "other_social_url", in.OtherSocialURL, 200, "")
	return in, verrs.Err()
}

// DigitalPresence is the single set of profile links of a user
type DigitalPresence struct {
	shared.BaseEntity
	UserID uuid.UUID
	DigitalPresenceInput
}

// NewDigitalPresence creates the links of userID
func NewDigitalPresence(userID uuid.UUID, in DigitalPresenceInput) (*DigitalPresence, error) {
	in, err := in.validate()
	if err != nil {
		return nil, err
	}
	return &DigitalPresence{BaseEntity: shared.NewBaseEntity(), UserID: userID, DigitalPresenceInput: in}, nil
}

// Update replaces every link
func (d *DigitalPresence) Update(in DigitalPresenceInput) error {
	in, err := in.validate()
	if err != nil {
		return err
	}
	d.DigitalPresenceInput = in
	d.Touch()
	return nil
}
