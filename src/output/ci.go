package output

import (
	"fmt"
	"io"
	"os"
	"time"
)

// CI environment detection.

func IsCI() bool {
	return os.Getenv("CI") == "true"
}

func IsGitHubActions() bool {
	return os.Getenv("GITHUB_ACTIONS") == "true"
}

func IsGitLabCI() bool {
	return os.Getenv("GITLAB_CI") == "true"
}

// Collapsible log groups. GitHub Actions uses ::group:: workflow commands,
// GitLab uses section_start/section_end markers. Elsewhere the title is
// printed as a plain line and the end marker is dropped.

func GroupStart(w io.Writer, id, name string) {
	switch {
	case IsGitHubActions():
		fmt.Fprintf(w, "::group::%s\n", name)
	case IsGitLabCI():
		ts := time.Now().Unix()
		fmt.Fprintf(w, "\033[0Ksection_start:%d:%s[collapsed=true]\r\033[0K%s\n", ts, id, name)
	default:
		fmt.Fprintln(w, name)
	}
}

func GroupEnd(w io.Writer, id string) {
	switch {
	case IsGitHubActions():
		fmt.Fprintln(w, "::endgroup::")
	case IsGitLabCI():
		ts := time.Now().Unix()
		fmt.Fprintf(w, "\033[0Ksection_end:%d:%s\r\033[0K\n", ts, id)
	}
}

// RunURL returns the web URL of the current GitHub Actions workflow run,
// or "" when the required env vars are missing.
func RunURL() string {
	server := os.Getenv("GITHUB_SERVER_URL")
	repo := os.Getenv("GITHUB_REPOSITORY")
	runID := os.Getenv("GITHUB_RUN_ID")
	if server == "" || repo == "" || runID == "" {
		return ""
	}
	url := fmt.Sprintf("%s/%s/actions/runs/%s", server, repo, runID)
	if attempt := os.Getenv("GITHUB_RUN_ATTEMPT"); attempt != "" && attempt != "1" {
		url += "/attempts/" + attempt
	}
	return url
}
