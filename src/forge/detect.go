package forge

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-git/go-git/v5"
)

// ErrNoRemote is returned when the repository has no origin remote.
var ErrNoRemote = errors.New("no origin remote")

// DetectProvider determines the forge platform from a git remote URL.
func DetectProvider(remoteURL string) Provider {
	lower := strings.ToLower(remoteURL)

	switch {
	case strings.Contains(lower, "github.com"):
		return GitHub
	case strings.Contains(lower, "gitlab"):
		return GitLab
	case strings.Contains(lower, "gitea") || strings.Contains(lower, "forgejo") || strings.Contains(lower, "codeberg"):
		return Gitea
	default:
		return Unknown
	}
}

// BaseURL extracts the forge base URL from a git remote URL.
// Handles SSH (git@host:path) and HTTPS (https://host/path) formats.
func BaseURL(remoteURL string) string {
	host, _ := splitRemote(remoteURL)
	if host == "" {
		return remoteURL
	}
	if strings.HasPrefix(remoteURL, "http://") {
		return "http://" + host
	}
	return "https://" + host
}

// OwnerRepo extracts "owner" and "repo" from a git remote URL.
func OwnerRepo(remoteURL string) (owner, repo string, err error) {
	_, path := splitRemote(remoteURL)
	path = strings.TrimSuffix(strings.Trim(path, "/"), ".git")

	idx := strings.LastIndex(path, "/")
	if idx <= 0 || idx == len(path)-1 {
		return "", "", fmt.Errorf("cannot determine owner/repo from remote %q", remoteURL)
	}
	return path[:idx], path[idx+1:], nil
}

// splitRemote returns host and path for SSH and HTTPS remote URLs.
func splitRemote(remoteURL string) (host, path string) {
	u := remoteURL

	for _, scheme := range []string{"https://", "http://", "ssh://"} {
		if strings.HasPrefix(u, scheme) {
			rest := strings.TrimPrefix(u, scheme)
			if at := strings.Index(rest, "@"); at >= 0 {
				rest = rest[at+1:]
			}
			slash := strings.Index(rest, "/")
			if slash < 0 {
				return stripPort(rest), ""
			}
			return stripPort(rest[:slash]), rest[slash+1:]
		}
	}

	// SCP-like: git@host:org/repo.git
	if at := strings.Index(u, "@"); at >= 0 {
		hostPath := u[at+1:]
		if colon := strings.Index(hostPath, ":"); colon >= 0 {
			return hostPath[:colon], hostPath[colon+1:]
		}
	}
	return "", ""
}

func stripPort(host string) string {
	if colon := strings.Index(host, ":"); colon >= 0 {
		return host[:colon]
	}
	return host
}

// OriginURL returns the first URL of the origin remote of the repository
// containing dir.
func OriginURL(dir string) (string, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", fmt.Errorf("opening git repo: %w", err)
	}

	remote, err := repo.Remote("origin")
	if err != nil {
		if errors.Is(err, git.ErrRemoteNotFound) {
			return "", ErrNoRemote
		}
		return "", fmt.Errorf("reading origin remote: %w", err)
	}

	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", ErrNoRemote
	}
	return urls[0], nil
}

// PullRequestNumber extracts the PR number from a GitHub ref such as
// "refs/pull/123/merge". ok is false for non-PR refs.
func PullRequestNumber(ref string) (n int, ok bool) {
	parts := strings.Split(ref, "/")
	if len(parts) != 4 || parts[0] != "refs" || parts[1] != "pull" {
		return 0, false
	}
	n, err := strconv.Atoi(parts[2])
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
