package forge

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

// ErrNoToken is returned when no GitHub token is available.
var ErrNoToken = errors.New("no GitHub token (set GITHUB_TOKEN or GH_TOKEN)")

// GitHubForge implements the Forge interface for GitHub and GitHub Enterprise.
type GitHubForge struct {
	BaseURL string // "https://api.github.com" or "https://ghes.example.com/api/v3"
	Token   string
	Owner   string
	Repo    string
	Client  *http.Client
}

// NewGitHub creates a GitHub forge client.
// Token is resolved from env: GITHUB_TOKEN, GH_TOKEN.
// Owner/Repo is resolved from env: GITHUB_REPOSITORY (owner/repo).
// serverURL is the web URL of the instance (GITHUB_SERVER_URL); empty or
// github.com means the public API.
func NewGitHub(serverURL string) *GitHubForge {
	token := os.Getenv("GITHUB_TOKEN")
	if token == "" {
		token = os.Getenv("GH_TOKEN")
	}

	var owner, repo string
	if ghRepo := os.Getenv("GITHUB_REPOSITORY"); ghRepo != "" {
		if idx := strings.Index(ghRepo, "/"); idx >= 0 {
			owner = ghRepo[:idx]
			repo = ghRepo[idx+1:]
		}
	}

	apiBase := "https://api.github.com"
	if serverURL != "" && !strings.Contains(serverURL, "github.com") {
		// GitHub Enterprise Server
		apiBase = strings.TrimRight(serverURL, "/") + "/api/v3"
	}

	return &GitHubForge{
		BaseURL: apiBase,
		Token:   token,
		Owner:   owner,
		Repo:    repo,
		Client:  http.DefaultClient,
	}
}

func (g *GitHubForge) Provider() Provider { return GitHub }

// ResolveRepo fills Owner/Repo from the origin remote of the repository at
// dir when GITHUB_REPOSITORY did not provide them.
func (g *GitHubForge) ResolveRepo(dir string) error {
	if g.Owner != "" && g.Repo != "" {
		return nil
	}

	remote, err := OriginURL(dir)
	if err != nil {
		return err
	}
	if p := DetectProvider(remote); p != GitHub && p != Unknown {
		return fmt.Errorf("origin remote %s is hosted on %s, not GitHub", remote, p)
	}

	owner, repo, err := OwnerRepo(remote)
	if err != nil {
		return err
	}
	g.Owner, g.Repo = owner, repo
	return nil
}

func (g *GitHubForge) apiURL(path string) string {
	return fmt.Sprintf("%s/repos/%s/%s%s", g.BaseURL, g.Owner, g.Repo, path)
}

func (g *GitHubForge) doJSON(ctx context.Context, method, url string, body interface{}, result interface{}) error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+g.Token)
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-GitHub-Api-Version", "2022-11-28")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	client := g.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	if resp.StatusCode >= 400 {
		return fmt.Errorf("GitHub API %s %s: %d %s", method, url, resp.StatusCode, string(respBody))
	}

	if result != nil {
		return json.Unmarshal(respBody, result)
	}
	return nil
}

// CreateComment posts a comment on a pull request. GitHub treats pull
// request comments as issue comments.
func (g *GitHubForge) CreateComment(ctx context.Context, opts CommentOptions) (*Comment, error) {
	if g.Token == "" {
		return nil, ErrNoToken
	}
	if g.Owner == "" || g.Repo == "" {
		return nil, fmt.Errorf("GitHub repository not resolved")
	}

	payload := map[string]string{"body": opts.Body}

	var resp struct {
		ID      int64  `json:"id"`
		HTMLURL string `json:"html_url"`
	}

	err := g.doJSON(ctx, "POST", g.apiURL(fmt.Sprintf("/issues/%d/comments", opts.Number)), payload, &resp)
	if err != nil {
		return nil, err
	}

	return &Comment{
		ID:  fmt.Sprintf("%d", resp.ID),
		URL: resp.HTMLURL,
	}, nil
}
