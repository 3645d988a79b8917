// Package usecase contains the business logic of the application.
package usecase

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/naka-gawa/git-spy/internal/domain"
	"github.com/naka-gawa/git-spy/internal/gateway"
	"golang.org/x/sync/errgroup"
)

// Reporter is the use case for building a user report.
// It orchestrates fetching and summarizing the data.
type Reporter struct {
	fetcher gateway.Fetcher
	logger  *log.Logger
}

// NewReporter creates a new Reporter instance.
func NewReporter(fetcher gateway.Fetcher, logger *log.Logger) *Reporter {
	return &Reporter{
		fetcher: fetcher,
		logger:  logger,
	}
}

// Build fetches the profile and repositories of handle concurrently and summarizes them.
// The first fetch error is returned as is and nothing is summarized.
func (r *Reporter) Build(ctx context.Context, handle string) (*domain.Report, error) {
	r.logger.Debug("Usecase: Starting report", "user", handle)

	var profile *domain.Profile
	var repos []domain.Repository

	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		var err error
		profile, err = r.fetcher.FetchProfile(egCtx, handle)
		return err
	})

	eg.Go(func() error {
		var err error
		repos, err = r.fetcher.FetchRepositories(egCtx, handle)
		return err
	})

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	r.logger.Debug("Usecase: All data fetched successfully.", "repositories", len(repos))

	// The tally must see the full collection, not just the displayed rows.
	tally := TallyLanguages(repos)
	RankRepositoriesByStars(repos)
	top := SelectTop(repos, TopRepositoryCount)

	report := &domain.Report{
		Profile:         *profile,
		TopLanguages:    TopLanguages(tally, TopLanguageCount),
		TopRepositories: top,
		Rows:            NewDisplayRows(top),
		Stars:           SummarizeStars(repos),
	}

	r.logger.Debug("Usecase: Report complete.", "languages", len(tally))
	return report, nil
}
