package domain

// LanguageCount is one entry of a ranked language list.
type LanguageCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// DisplayRow is the presentation-only projection of a Repository.
type DisplayRow struct {
	Name        string `json:"name"`
	Stars       int    `json:"stars"`
	Language    string `json:"language"`
	Description string `json:"description"`
}

// StarSummary aggregates star counts over every fetched repository.
type StarSummary struct {
	Total  int     `json:"total"`
	Median float64 `json:"median"`
}

// Report is everything the presenter needs to render a single run.
type Report struct {
	Profile         Profile         `json:"profile"`
	TopLanguages    []LanguageCount `json:"top_languages"`
	TopRepositories []Repository    `json:"top_repositories"`
	Rows            []DisplayRow    `json:"rows"`
	Stars           StarSummary     `json:"stars"`
}
