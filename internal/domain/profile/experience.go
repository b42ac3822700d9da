package profile

import (
	"github.com/google/uuid"
	"github.com/hirecoder/backend/internal/domain/shared"
)

const (
	MinHourlyRate = 5
	MaxHourlyRate = 999
)

// ExperienceInput carries a coder's headline profile
type ExperienceInput struct {
	Introduction           string
	TotalYearsOfExperience int
	Identity               string
	HourlyRate             int
	BriefWorkExperience    string
	ProfilePictureKey      string
}

func (in ExperienceInput) validate(userID uuid.UUID) (ExperienceInput, error) {
	var verrs shared.ValidationErrors
	in.Introduction = checkText(&verrs, "introduction", in.Introduction, 5000, false)
	if in.TotalYearsOfExperience < 0 || in.TotalYearsOfExperience > 50 {
		verrs.Add("total_years_of_experience", "Total years of experience must be between 0 and 50")
	}
	in.Identity = checkText(&verrs, "identity", in.Identity, 100, true)
	if in.HourlyRate < MinHourlyRate || in.HourlyRate > MaxHourlyRate {
		verrs.Add("hourly_rate", "Hourly rate must be between 5 and 999")
	}
	in.BriefWorkExperience = checkText(&verrs, "brief_work_experience", in.BriefWorkExperience, 1000, true)
	in.ProfilePictureKey = checkFileKey(&verrs, "profile_picture_key", in.ProfilePictureKey, userID, FileKindProfilePicture)
	return in, verrs.Err()
}

// CoderExperience is the skills-and-experience summary of a coder. One per coder.
type CoderExperience struct {
	shared.BaseEntity
	UserID uuid.UUID
	ExperienceInput
}

// NewCoderExperience creates the summary of userID
func NewCoderExperience(userID uuid.UUID, in ExperienceInput) (*CoderExperience, error) {
	in, err := in.validate(userID)
	if err != nil {
		return nil, err
	}
	return &CoderExperience{BaseEntity: shared.NewBaseEntity(), UserID: userID, ExperienceInput: in}, nil
}

// Update replaces every field
func (e *CoderExperience) Update(in ExperienceInput) error {
	in, err := in.validate(e.UserID)
	if err != nil {
		return err
	}
	e.ExperienceInput = in
	e.Touch()
	return nil
}
