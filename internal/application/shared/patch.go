package shared

import (
	"sort"

	domain "github.com/hirecoder/backend/internal/domain/shared"
)

// RestrictPatch rejects a partial update carrying any key outside allowed.
// keys are the top-level keys of the request body.
func RestrictPatch(keys []string, message string, allowed ...string) error {
	permitted := make(map[string]struct{}, len(allowed))
	for _, a := range allowed {
		permitted[a] = struct{}{}
	}
	var extra []string
	for _, k := range keys {
		if _, ok := permitted[k]; !ok {
			extra = append(extra, k)
		}
	}
	if len(extra) == 0 {
		return nil
	}
	sort.Strings(extra)
	var verrs domain.ValidationErrors
	for _, k := range extra {
		verrs.Add(k, message)
	}
	return verrs.Err()
}
