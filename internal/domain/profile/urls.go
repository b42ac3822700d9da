package profile

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/hirecoder/backend/internal/domain/shared"
)

// isWebURL accepts absolute http and https URLs with a host
func isWebURL(raw string) bool {
	u, err := url.ParseRequestURI(raw)
	return err == nil && u.Host != "" && (u.Scheme == "http" || u.Scheme == "https")
}

// onSite reports whether raw points at site.com or one of its subdomains
func onSite(raw, site string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	host := strings.ToLower(u.Hostname())
	return host == site+".com" || strings.HasSuffix(host, "."+site+".com")
}

// checkURL trims raw and records a field error when it is not a usable URL.
// An empty site accepts any host.
func checkURL(verrs *shared.ValidationErrors, field, raw string, maxLen int, site string) string {
	raw = strings.TrimSpace(raw)
	switch {
	case raw == "":
	case len(raw) > maxLen:
		verrs.Add(field, fmt.Sprintf("URL cannot exceed %d characters", maxLen))
	case !isWebURL(raw):
		verrs.Add(field, "Enter a valid URL")
	case site != "" && !onSite(raw, site):
		verrs.Add(field, fmt.Sprintf("Please enter a valid '%s' url.", site))
	}
	return raw
}

// checkText trims raw and records a field error above maxLen characters
func checkText(verrs *shared.ValidationErrors, field, raw string, maxLen int, required bool) string {
	raw = strings.TrimSpace(raw)
	switch {
	case raw == "" && required:
		verrs.Add(field, "This field is required")
	case len([]rune(raw)) > maxLen:
		verrs.Add(field, fmt.Sprintf("Cannot exceed %d characters", maxLen))
	}
	return raw
}
