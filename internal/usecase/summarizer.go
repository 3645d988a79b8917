package usecase

import (
	"sort"

	"github.com/montanaflynn/stats"
	"github.com/naka-gawa/git-spy/internal/domain"
)

const (
	// UnknownLanguage labels repositories without a detected language in the tally.
	UnknownLanguage = "Unknown"
	// DescriptionLimit is the number of characters kept in a table description.
	DescriptionLimit = 50
	// TopLanguageCount is how many languages the report shows.
	TopLanguageCount = 3
	// TopRepositoryCount is how many repositories the report shows.
	TopRepositoryCount = 5

	missingLanguage = "-"
	ellipsis        = "..."
)

// TallyLanguages counts the repositories per language label.
// Every repository is counted exactly once; a missing language counts as UnknownLanguage.
func TallyLanguages(repos []domain.Repository) map[string]int {
	tally := make(map[string]int)
	for _, repo := range repos {
		label := UnknownLanguage
		if repo.Language != nil {
			label = *repo.Language
		}
		tally[label]++
	}
	return tally
}

// TopLanguages returns up to n tally entries ordered by descending count.
// Equal counts are ordered alphabetically so the result does not depend on map iteration.
func TopLanguages(tally map[string]int, n int) []domain.LanguageCount {
	ranked := make([]domain.LanguageCount, 0, len(tally))
	for name, count := range tally {
		ranked = append(ranked, domain.LanguageCount{Name: name, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Name < ranked[j].Name
	})
	if n < 0 {
		n = 0
	}
	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}

// RankRepositoriesByStars sorts repos in place by descending star count.
// Ties fall back to name and then URL, which makes the order total.
func RankRepositoriesByStars(repos []domain.Repository) {
	sort.SliceStable(repos, func(i, j int) bool {
		a, b := repos[i], repos[j]
		if a.Stars != b.Stars {
			return a.Stars > b.Stars
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.URL < b.URL
	})
}

// SelectTop returns the first n repositories, or all of them if there are fewer.
func SelectTop(repos []domain.Repository, n int) []domain.Repository {
	if n < 0 {
		n = 0
	}
	if n > len(repos) {
		n = len(repos)
	}
	return repos[:n:n]
}

// TruncateDescription shortens description to limit characters followed by "...".
// It counts runes, not bytes, so multi-byte characters are never split.
func TruncateDescription(description *string, limit int) *string {
	if description == nil {
		return nil
	}
	limit = max(limit, 0)
	runes := []rune(*description)
	if len(runes) <= limit {
		return description
	}
	short := string(runes[:limit]) + ellipsis
	return &short
}

// NewDisplayRows projects repos into table rows.
func NewDisplayRows(repos []domain.Repository) []domain.DisplayRow {
	rows := make([]domain.DisplayRow, 0, len(repos))
	for _, repo := range repos {
		row := domain.DisplayRow{
			Name:     repo.Name,
			Stars:    repo.Stars,
			Language: missingLanguage,
		}
		if repo.Language != nil {
			row.Language = *repo.Language
		}
		if desc := TruncateDescription(repo.Description, DescriptionLimit); desc != nil {
			row.Description = *desc
		}
		rows = append(rows, row)
	}
	return rows
}

// SummarizeStars returns the total and median star count of repos.
func SummarizeStars(repos []domain.Repository) domain.StarSummary {
	if len(repos) == 0 {
		return domain.StarSummary{}
	}
	counts := make(stats.Float64Data, 0, len(repos))
	total := 0
	for _, repo := range repos {
		counts = append(counts, float64(repo.Stars))
		total += repo.Stars
	}
	median, err := stats.Median(counts)
	if err != nil {
		median = 0
	}
	return domain.StarSummary{Total: total, Median: median}
}
