package summary

import (
	"fmt"
	"net/url"

	"github.com/sofmeright/gradle-summary/src/results"
)

const (
	shieldsBaseURL = "https://img.shields.io/badge/"
	badgeLabel     = "Build Scan™"

	troubleshootingURL = "https://docs.gradle.com/enterprise/gradle-plugin/#troubleshooting"
	scansServiceURL    = "https://scans.gradle.com"
)

// Build scan outcomes, in the order they are checked.
const (
	OutcomePublishFailed = "PUBLISH_FAILED"
	OutcomePublished     = "PUBLISHED"
	OutcomeNotPublished  = "NOT_PUBLISHED"
)

// ScanBadge is a shields.io build scan badge wrapped in a link.
type ScanBadge struct {
	Outcome string // badge message
	Color   string // shields.io color name or hex without '#'
	Link    string // click target
}

// BuildScanBadge picks the badge for a result. A failed publish wins over
// any URI that happens to be present.
func BuildScanBadge(r results.BuildResult) ScanBadge {
	switch {
	case r.BuildScanFailed:
		return ScanBadge{Outcome: OutcomePublishFailed, Color: "orange", Link: troubleshootingURL}
	case r.BuildScanURI != "":
		return ScanBadge{Outcome: OutcomePublished, Color: "06A0CE", Link: r.BuildScanURI}
	default:
		return ScanBadge{Outcome: OutcomeNotPublished, Color: "lightgrey", Link: scansServiceURL}
	}
}

// ImageURL returns the shields.io static badge URL.
func (b ScanBadge) ImageURL() string {
	return fmt.Sprintf("%s%s-%s-%s?logo=Gradle",
		shieldsBaseURL,
		url.PathEscape(badgeLabel),
		url.PathEscape(b.Outcome),
		url.PathEscape(b.Color),
	)
}

// Render produces the inline HTML for this badge.
func (b ScanBadge) Render() string {
	img := fmt.Sprintf(`<img src="%s" alt="Build Scan %s" />`, b.ImageURL(), b.Outcome)
	return fmt.Sprintf(`<a href="%s" rel="nofollow">%s</a>`, b.Link, img)
}
