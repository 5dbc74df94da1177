// Package forge posts report content back to the git forge hosting the
// repository. Only GitHub is supported for now; detection still recognizes
// the other platforms so callers can say why nothing was posted.
package forge

import (
	"context"
	"fmt"
	"os"
)

// Provider identifies a git forge platform.
type Provider string

const (
	GitLab  Provider = "gitlab"
	GitHub  Provider = "github"
	Gitea   Provider = "gitea"
	Unknown Provider = "unknown"
)

// Forge is the interface every supported platform implements.
type Forge interface {
	// Provider returns which platform this forge represents.
	Provider() Provider

	// CreateComment adds a markdown/HTML comment to a pull request.
	CreateComment(ctx context.Context, opts CommentOptions) (*Comment, error)
}

// CommentOptions configures a pull request comment.
type CommentOptions struct {
	Number int    // pull request number
	Body   string // markdown body, HTML allowed
}

// Comment is a created comment on a forge.
type Comment struct {
	ID  string
	URL string
}

// Open returns the forge hosting the repository at dir. The instance URL
// comes from GITHUB_SERVER_URL, falling back to the origin remote's host.
func Open(dir string) (Forge, error) {
	serverURL := os.Getenv("GITHUB_SERVER_URL")
	if serverURL == "" {
		if remote, err := OriginURL(dir); err == nil {
			if p := DetectProvider(remote); p != GitHub && p != Unknown {
				return nil, fmt.Errorf("origin remote %s is hosted on %s, only GitHub is supported", remote, p)
			}
			serverURL = BaseURL(remote)
		}
	}

	gh := NewGitHub(serverURL)
	if err := gh.ResolveRepo(dir); err != nil {
		return nil, fmt.Errorf("resolving repository: %w", err)
	}
	return gh, nil
}
