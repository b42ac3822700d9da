package persistence

import (
	"errors"
	"strings"

	"github.com/hirecoder/backend/internal/domain/shared"
	"gorm.io/gorm"
)

var (
	errUserNotFound          = shared.NewDomainError("USER_NOT_FOUND", "User not found")
	errUserAlreadyExists     = shared.NewDomainError("USER_ALREADY_EXISTS", "A user with this email or username already exists")
	errTechnologyNotFound    = shared.NewDomainError("TECHNOLOGY_NOT_FOUND", "Technology not found")
	errTechnologyExists      = shared.NewDomainError("TECHNOLOGY_ALREADY_EXISTS", "Technology already exists")
	errTimeZoneExists        = shared.NewDomainError("TIMEZONE_ALREADY_EXISTS", "Time zone already exists")
	errSkillNotFound         = shared.NewDomainError("SKILL_NOT_FOUND", "Skill not found")
	errCertificationNotFound = shared.NewDomainError("CERTIFICATION_NOT_FOUND", "Certification not found")
	errDegreeNotFound        = shared.NewDomainError("DEGREE_NOT_FOUND", "Degree not found")
	errAddressNotFound       = shared.NewDomainError("ADDRESS_NOT_FOUND", "Address not found")
	errAddressExists         = shared.NewDomainError("ADDRESS_ALREADY_EXISTS", "Address details for this user already exists.")
	errPresenceNotFound      = shared.NewDomainError("DIGITAL_PRESENCE_NOT_FOUND", "Digital presence not found")
	errPresenceExists        = shared.NewDomainError("DIGITAL_PRESENCE_ALREADY_EXISTS", "Digital Presence for this user already exists.")
	errCompanyNotFound       = shared.NewDomainError("COMPANY_DETAILS_NOT_FOUND", "Company details not found")
	errCompanyExists         = shared.NewDomainError("COMPANY_DETAILS_ALREADY_EXISTS", "Company details for this user already exists.")
	errExperienceNotFound    = shared.NewDomainError("EXPERIENCE_NOT_FOUND", "Skills and experience not found")
	errExperienceExists      = shared.NewDomainError("EXPERIENCE_ALREADY_EXISTS", "Skills and Experience for this user already exists.")
	errEducationNotFound     = shared.NewDomainError("EDUCATION_NOT_FOUND", "Education details not found")
	errEducationExists       = shared.NewDomainError("EDUCATION_ALREADY_EXISTS", "Education details for this user already exists.")
	errPostingNotFound       = shared.NewDomainError("JOB_POSTING_NOT_FOUND", "Job posting not found")
	errInvitationNotFound    = shared.NewDomainError("INVITATION_NOT_FOUND", "Job invitation not found")
	errInvitationExists      = shared.NewDomainError("INVITATION_ALREADY_EXISTS", "Invitation already sent to this coder for this job posting")
	errProposalNotFound      = shared.NewDomainError("PROPOSAL_NOT_FOUND", "Job proposal not found")
	errMilestoneNotFound     = shared.NewDomainError("MILESTONE_NOT_FOUND", "Milestone not found")
	errContractNotFound      = shared.NewDomainError("CONTRACT_NOT_FOUND", "Job contract not found")
	errContractExists        = shared.NewDomainError("CONTRACT_ALREADY_EXISTS", "Contract already exists for this user and job posting")
	errTimesheetNotFound     = shared.NewDomainError("TIMESHEET_NOT_FOUND", "Timesheet not found")
)

// translateError maps driver errors onto domain errors. notFound and
// conflict replace gorm.ErrRecordNotFound and unique violations when set.
func translateError(err error, notFound, conflict *shared.DomainError) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		if notFound != nil {
			return notFound
		}
		return shared.ErrNotFound
	case IsUniqueViolation(err):
		if conflict != nil {
			return conflict.WithCause(err)
		}
		return shared.ErrAlreadyExists.WithCause(err)
	}
	return err
}

// IsUniqueViolation reports whether err came from a unique index.
// Dialects without an error translator are matched by message.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value violates unique constraint")
}
