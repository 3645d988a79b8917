package gateway

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/naka-gawa/git-spy/internal/config"
	"github.com/naka-gawa/git-spy/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}

func ptr(s string) *string { return &s }

// setupRESTGateway creates a RESTGateway that communicates with a mock HTTP server.
func setupRESTGateway(t *testing.T, handler http.Handler) *RESTGateway {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	gateway, err := NewRESTGateway(server.Client(), server.URL, discardLogger())
	require.NoError(t, err)
	return gateway
}

func TestRESTGateway_FetchProfile(t *testing.T) {
	testCases := []struct {
		name           string
		handlerFunc    func(w http.ResponseWriter, r *http.Request)
		expected       *domain.Profile
		expectError    bool
		expectedErrMsg string
	}{
		{
			name: "happy path - optional fields present",
			handlerFunc: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/users/octocat", r.URL.Path)
				assert.Equal(t, userAgent, r.Header.Get("User-Agent"))
				fmt.Fprint(w, `{"login":"octocat","name":"The Octocat","bio":"cat","location":"SF","public_repos":8,"followers":100,"following":9,"extra":"ignored"}`)
			},
			expected: &domain.Profile{
				Login: "octocat", Name: ptr("The Octocat"), Bio: ptr("cat"), Location: ptr("SF"),
				PublicRepos: 8, Followers: 100, Following: 9,
			},
		},
		{
			name: "optional fields absent",
			handlerFunc: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"login":"octocat","name":null,"public_repos":0,"followers":0,"following":0}`)
			},
			expected: &domain.Profile{Login: "octocat"},
		},
		{
			name: "error case - user not found",
			handlerFunc: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
				fmt.Fprint(w, `{"message": "Not Found"}`)
			},
			expectError:    true,
			expectedErrMsg: "failed to fetch user octocat",
		},
		{
			name: "error case - malformed body",
			handlerFunc: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"login":`)
			},
			expectError:    true,
			expectedErrMsg: "failed to fetch user octocat",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gateway := setupRESTGateway(t, http.HandlerFunc(tc.handlerFunc))
			profile, err := gateway.FetchProfile(context.Background(), "octocat")
			if tc.expectError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedErrMsg)
				assert.Nil(t, profile)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, profile)
			}
		})
	}
}

func TestRESTGateway_FetchRepositories(t *testing.T) {
	testCases := []struct {
		name           string
		handlerFunc    func(w http.ResponseWriter, r *http.Request)
		expected       []domain.Repository
		expectError    bool
		expectedErrMsg string
	}{
		{
			name: "happy path - single page is returned as is",
			handlerFunc: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/users/octocat/repos", r.URL.Path)
				assert.Empty(t, r.URL.Query().Get("page"))
				w.Header().Set("Link", `<https://api.github.com/user/1/repos?page=2>; rel="next"`)
				fmt.Fprint(w, `[
					{"name":"spoon-knife","html_url":"https://github.com/octocat/spoon-knife","description":"fork me","stargazers_count":12,"language":"HTML"},
					{"name":"bare","html_url":"https://github.com/octocat/bare","description":null,"stargazers_count":0,"language":null}
				]`)
			},
			expected: []domain.Repository{
				{Name: "spoon-knife", URL: "https://github.com/octocat/spoon-knife", Description: ptr("fork me"), Stars: 12, Language: ptr("HTML")},
				{Name: "bare", URL: "https://github.com/octocat/bare"},
			},
		},
		{
			name: "empty list",
			handlerFunc: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `[]`)
			},
			expected: []domain.Repository{},
		},
		{
			name: "error case - GitHub API returns an error",
			handlerFunc: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				fmt.Fprint(w, `{"message": "Internal Server Error"}`)
			},
			expectError:    true,
			expectedErrMsg: "failed to list repositories of octocat",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			requests := 0
			handler := func(w http.ResponseWriter, r *http.Request) {
				requests++
				tc.handlerFunc(w, r)
			}
			gateway := setupRESTGateway(t, http.HandlerFunc(handler))
			repos, err := gateway.FetchRepositories(context.Background(), "octocat")
			if tc.expectError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedErrMsg)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, repos)
			}
			assert.Equal(t, 1, requests)
		})
	}
}

func TestNewFetcher(t *testing.T) {
	t.Run("anonymous configuration uses REST", func(t *testing.T) {
		fetcher, err := NewFetcher(config.Config{APIURL: config.DefaultAPIURL, GraphQLURL: config.DefaultGraphQLURL}, discardLogger())
		require.NoError(t, err)
		assert.IsType(t, &RESTGateway{}, fetcher)
	})

	t.Run("token switches to GraphQL", func(t *testing.T) {
		fetcher, err := NewFetcher(config.Config{Token: "t", GraphQLURL: config.DefaultGraphQLURL}, discardLogger())
		require.NoError(t, err)
		assert.IsType(t, &GraphQLGateway{}, fetcher)
	})

	t.Run("token is sent as a bearer header", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
			fmt.Fprint(w, `{"data":{"user":{"login":"octocat"}}}`)
		}))
		defer server.Close()

		fetcher, err := NewFetcher(config.Config{Token: "secret", GraphQLURL: server.URL}, discardLogger())
		require.NoError(t, err)
		profile, err := fetcher.FetchProfile(context.Background(), "octocat")
		require.NoError(t, err)
		assert.Equal(t, "octocat", profile.Login)
	})
}
