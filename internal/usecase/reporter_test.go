package usecase

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/naka-gawa/git-spy/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// mockFetcher is a mock implementation of the gateway.Fetcher interface.
type mockFetcher struct {
	mock.Mock
}

func (m *mockFetcher) FetchProfile(ctx context.Context, handle string) (*domain.Profile, error) {
	args := m.Called(ctx, handle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *mockFetcher) FetchRepositories(ctx context.Context, handle string) ([]domain.Repository, error) {
	args := m.Called(ctx, handle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Repository), args.Error(1)
}

func TestReporter_Build(t *testing.T) {
	profile := &domain.Profile{Login: "octocat", Name: ptr("The Octocat"), PublicRepos: 7, Followers: 3}
	errProfile := errors.New("dial tcp: connection refused")
	errRepos := errors.New("invalid character '<' looking for beginning of value")

	testCases := []struct {
		name          string
		mockProfile   *domain.Profile
		mockRepos     []domain.Repository
		mockProfErr   error
		mockReposErr  error
		expected      *domain.Report
		expectedError error
	}{
		{
			name:        "happy path - ranks, selects and summarizes",
			mockProfile: profile,
			mockRepos: []domain.Repository{
				repo("a", 10, "Go"), repo("b", 50, "Rust"), repo("c", 5, "Go"),
				repo("d", 1, ""), repo("e", 2, "Go"), repo("f", 7, "C"), repo("g", 0, ""),
			},
			expected: &domain.Report{
				Profile: *profile,
				TopLanguages: []domain.LanguageCount{
					{Name: "Go", Count: 3}, {Name: "Unknown", Count: 2}, {Name: "C", Count: 1},
				},
				TopRepositories: []domain.Repository{
					repo("b", 50, "Rust"), repo("a", 10, "Go"), repo("f", 7, "C"), repo("c", 5, "Go"), repo("e", 2, "Go"),
				},
				Rows: []domain.DisplayRow{
					{Name: "b", Stars: 50, Language: "Rust"},
					{Name: "a", Stars: 10, Language: "Go"},
					{Name: "f", Stars: 7, Language: "C"},
					{Name: "c", Stars: 5, Language: "Go"},
					{Name: "e", Stars: 2, Language: "Go"},
				},
				Stars: domain.StarSummary{Total: 75, Median: 5},
			},
		},
		{
			name:        "empty repositories",
			mockProfile: profile,
			mockRepos:   []domain.Repository{},
			expected: &domain.Report{
				Profile:         *profile,
				TopLanguages:    []domain.LanguageCount{},
				TopRepositories: []domain.Repository{},
				Rows:            []domain.DisplayRow{},
			},
		},
		{
			name:          "error case - profile fetch fails",
			mockProfErr:   errProfile,
			mockRepos:     []domain.Repository{repo("a", 1, "")},
			expectedError: errProfile,
		},
		{
			name:          "error case - repository fetch fails",
			mockProfile:   profile,
			mockReposErr:  errRepos,
			expectedError: errRepos,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// --- Arrange ---
			fetcher := new(mockFetcher)
			var profileRet, reposRet interface{}
			if tc.mockProfile != nil {
				profileRet = tc.mockProfile
			}
			if tc.mockRepos != nil {
				reposRet = tc.mockRepos
			}
			fetcher.On("FetchProfile", mock.Anything, "octocat").Return(profileRet, tc.mockProfErr).Maybe()
			fetcher.On("FetchRepositories", mock.Anything, "octocat").Return(reposRet, tc.mockReposErr).Maybe()

			reporter := NewReporter(fetcher, log.New(io.Discard))

			// --- Act ---
			report, err := reporter.Build(context.Background(), "octocat")

			// --- Assert ---
			if tc.expectedError != nil {
				require.Error(t, err)
				assert.Same(t, tc.expectedError, err)
				assert.Nil(t, report)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.expected, report)
			}
			fetcher.AssertExpectations(t)
		})
	}
}
