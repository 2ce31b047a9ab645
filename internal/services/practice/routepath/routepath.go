// Package routepath centralizes practice route paths and builders.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root         = "/"
	APIPrefix    = "/api/"
	Health       = "/api/health"
	Metrics      = "/metrics"
	StaticPrefix = "/static/"

	FrontendPrefix = "/frontend/"
	ProblemPattern = "/frontend/{slug}"
	ProblemSlash   = "/frontend/{slug}/{$}"
	ActionPattern  = "/frontend/{slug}/actions/{action}"
	ResetPattern   = "/frontend/{slug}/reset"
)

// Problem returns the page path for a problem slug.
func Problem(slug string) string {
	return FrontendPrefix + escapeSegment(slug)
}

// ProblemAction returns the POST path for one problem action.
func ProblemAction(slug string, action string) string {
	return Problem(slug) + "/actions/" + escapeSegment(action)
}

// ProblemReset returns the POST path that remounts a problem.
func ProblemReset(slug string) string {
	return Problem(slug) + "/reset"
}

// Static returns the path for an embedded asset.
func Static(name string) string {
	return StaticPrefix + strings.TrimPrefix(name, "/")
}

func escapeSegment(raw string) string {
	return url.PathEscape(strings.TrimSpace(raw))
}
