// Package domain contains the core data structures and domain logic for the application.
package domain

// Profile holds the public identity and counters of a GitHub user.
// Optional fields are nil when the remote service omits them.
type Profile struct {
	Login       string  `json:"login"`
	Name        *string `json:"name,omitempty"`
	Bio         *string `json:"bio,omitempty"`
	Location    *string `json:"location,omitempty"`
	PublicRepos int     `json:"public_repos"`
	Followers   int     `json:"followers"`
	Following   int     `json:"following"`
}

// URL returns the profile page of the user.
func (p Profile) URL() string {
	return "https://github.com/" + p.Login
}

// Repository is a single repository record as returned by the remote service.
type Repository struct {
	Name        string  `json:"name"`
	URL         string  `json:"html_url"`
	Description *string `json:"description,omitempty"`
	Stars       int     `json:"stargazers_count"`
	Language    *string `json:"language,omitempty"`
}
