package job

import (
	"strings"

	appshared "github.com/hirecoder/backend/internal/application/shared"
	"github.com/hirecoder/backend/internal/domain/job"
)

// PostingPatchMessage is reported for any posting patch key other than status
const PostingPatchMessage = "Can update status only"

// RestrictPostingPatch accepts only {status}
func RestrictPostingPatch(keys []string) error {
	return appshared.RestrictPatch(keys, PostingPatchMessage, "status")
}

// RestrictInvitationPatch accepts only {status}
func RestrictInvitationPatch(keys []string) error {
	return appshared.RestrictPatch(keys, "Can update invitation status only", "status")
}

// RestrictProposalPatch checks a proposal patch against what party may send.
// Either side may only send its decision.
func RestrictProposalPatch(party job.Party, keys []string) error {
	role := strings.ToLower(party.Role().String())
	return appshared.RestrictPatch(keys, strings.ToUpper(role[:1])+role[1:]+" can update status only", "status")
}

// RestrictMilestonePatch accepts the milestone status and its completion note
func RestrictMilestonePatch(keys []string) error {
	return appshared.RestrictPatch(keys, "Can update milestone status only", "milestone_status", "completed_description")
}
