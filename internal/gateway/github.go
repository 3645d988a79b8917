// Package gateway provides a gateway to the GitHub API,
// abstracting away the underlying REST and GraphQL clients.
package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/go-github/v62/github"
	"github.com/naka-gawa/git-spy/internal/config"
	"github.com/naka-gawa/git-spy/internal/domain"
	"golang.org/x/oauth2"
)

const userAgent = "git-spy-cli"

// Fetcher defines the behavior of a gateway for fetching information from GitHub.
type Fetcher interface {
	FetchProfile(ctx context.Context, handle string) (*domain.Profile, error)
	FetchRepositories(ctx context.Context, handle string) ([]domain.Repository, error)
}

// RESTGateway fetches profiles and repositories through the GitHub REST API.
type RESTGateway struct {
	client *github.Client
	logger *log.Logger
}

// NewFetcher picks a gateway for cfg. The GraphQL API only accepts authenticated
// requests, so it is used when a token is configured and REST otherwise.
func NewFetcher(cfg config.Config, logger *log.Logger) (Fetcher, error) {
	httpClient := newHTTPClient(cfg.Token)
	if cfg.Token != "" {
		logger.Debug("Using GraphQL gateway", "endpoint", cfg.GraphQLURL)
		return NewGraphQLGateway(httpClient, cfg.GraphQLURL, logger), nil
	}
	logger.Debug("Using REST gateway", "endpoint", cfg.APIURL)
	rest, err := NewRESTGateway(httpClient, cfg.APIURL, logger)
	if err != nil {
		return nil, err
	}
	return rest, nil
}

// newHTTPClient wraps the default transport with a static token source when a token is set.
func newHTTPClient(token string) *http.Client {
	if token == "" {
		return &http.Client{}
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	return &http.Client{
		Transport: &oauth2.Transport{
			Base:   http.DefaultTransport,
			Source: ts,
		},
	}
}

// NewRESTGateway creates a RESTGateway. An empty baseURL targets api.github.com.
func NewRESTGateway(httpClient *http.Client, baseURL string, logger *log.Logger) (*RESTGateway, error) {
	client := github.NewClient(httpClient)
	client.UserAgent = userAgent
	if baseURL != "" {
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		parsed, err := url.Parse(baseURL)
		if err != nil {
			return nil, fmt.Errorf("invalid GitHub API URL %q: %w", baseURL, err)
		}
		client.BaseURL = parsed
	}
	return &RESTGateway{client: client, logger: logger}, nil
}

// FetchProfile fetches the public profile of handle.
func (g *RESTGateway) FetchProfile(ctx context.Context, handle string) (*domain.Profile, error) {
	g.logger.Debug("Fetching profile", "user", handle)
	user, _, err := g.client.Users.Get(ctx, handle)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user %s: %w", handle, err)
	}
	return &domain.Profile{
		Login:       user.GetLogin(),
		Name:        user.Name,
		Bio:         user.Bio,
		Location:    user.Location,
		PublicRepos: user.GetPublicRepos(),
		Followers:   user.GetFollowers(),
		Following:   user.GetFollowing(),
	}, nil
}

// FetchRepositories fetches the first page of public repositories owned by handle.
func (g *RESTGateway) FetchRepositories(ctx context.Context, handle string) ([]domain.Repository, error) {
	g.logger.Debug("Fetching repositories", "user", handle)
	result, _, err := g.client.Repositories.ListByUser(ctx, handle, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list repositories of %s: %w", handle, err)
	}
	repos := make([]domain.Repository, 0, len(result))
	for _, r := range result {
		repos = append(repos, domain.Repository{
			Name:        r.GetName(),
			URL:         r.GetHTMLURL(),
			Description: r.Description,
			Stars:       r.GetStargazersCount(),
			Language:    r.Language,
		})
	}
	g.logger.Debug("Completed fetching repositories", "count", len(repos))
	return repos, nil
}
