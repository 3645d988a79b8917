package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/naka-gawa/git-spy/internal/domain"
	"github.com/shurcooL/githubv4"
)

// GraphQLGateway fetches profiles and repositories through the GitHub GraphQL API.
type GraphQLGateway struct {
	client *githubv4.Client
	logger *log.Logger
}

// profileQuery mirrors the fields the REST /users/{login} endpoint provides.
type profileQuery struct {
	User struct {
		Login     string
		Name      string
		Bio       string
		Location  string
		Followers struct {
			TotalCount int
		}
		Following struct {
			TotalCount int
		}
		Repositories struct {
			TotalCount int
		} `graphql:"repositories(privacy: PUBLIC, ownerAffiliations: OWNER)"`
	} `graphql:"user(login: $login)"`
}

// repositoriesQuery fetches a single page, the same size as the REST default.
type repositoriesQuery struct {
	User struct {
		Repositories struct {
			Nodes []struct {
				Name            string
				URL             string `graphql:"url"`
				Description     string
				StargazerCount  int
				PrimaryLanguage *struct {
					Name string
				}
			}
		} `graphql:"repositories(first: 30, privacy: PUBLIC, ownerAffiliations: OWNER, orderBy: {field: NAME, direction: ASC})"`
	} `graphql:"user(login: $login)"`
}

// NewGraphQLGateway creates a GraphQLGateway. An empty endpoint targets api.github.com.
func NewGraphQLGateway(httpClient *http.Client, endpoint string, logger *log.Logger) *GraphQLGateway {
	client := githubv4.NewClient(httpClient)
	if endpoint != "" {
		client = githubv4.NewEnterpriseClient(endpoint, httpClient)
	}
	return &GraphQLGateway{client: client, logger: logger}
}

func (g *GraphQLGateway) FetchProfile(ctx context.Context, handle string) (*domain.Profile, error) {
	g.logger.Debug("Fetching profile via GraphQL", "user", handle)
	var q profileQuery
	variables := map[string]interface{}{"login": githubv4.String(handle)}
	if err := g.client.Query(ctx, &q, variables); err != nil {
		return nil, fmt.Errorf("failed to execute GraphQL query for user %s: %w", handle, err)
	}
	u := q.User
	return &domain.Profile{
		Login:       u.Login,
		Name:        optional(u.Name),
		Bio:         optional(u.Bio),
		Location:    optional(u.Location),
		PublicRepos: u.Repositories.TotalCount,
		Followers:   u.Followers.TotalCount,
		Following:   u.Following.TotalCount,
	}, nil
}

func (g *GraphQLGateway) FetchRepositories(ctx context.Context, handle string) ([]domain.Repository, error) {
	g.logger.Debug("Fetching repositories via GraphQL", "user", handle)
	var q repositoriesQuery
	variables := map[string]interface{}{"login": githubv4.String(handle)}
	if err := g.client.Query(ctx, &q, variables); err != nil {
		return nil, fmt.Errorf("failed to execute GraphQL query for repositories of %s: %w", handle, err)
	}
	nodes := q.User.Repositories.Nodes
	repos := make([]domain.Repository, 0, len(nodes))
	for _, node := range nodes {
		repo := domain.Repository{
			Name:        node.Name,
			URL:         node.URL,
			Description: optional(node.Description),
			Stars:       node.StargazerCount,
		}
		if node.PrimaryLanguage != nil {
			repo.Language = optional(node.PrimaryLanguage.Name)
		}
		repos = append(repos, repo)
	}
	g.logger.Debug("Completed fetching repositories", "count", len(repos))
	return repos, nil
}

// optional maps GraphQL's empty or null strings to an absent value.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
