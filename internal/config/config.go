// Package config loads runtime settings from the environment.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

const (
	// DefaultAPIURL is the public GitHub REST endpoint.
	DefaultAPIURL = "https://api.github.com/"
	// DefaultGraphQLURL is the public GitHub GraphQL endpoint.
	DefaultGraphQLURL = "https://api.github.com/graphql"
)

// Config holds the settings used to reach GitHub.
type Config struct {
	// Token is optional. Without it requests are anonymous and only the REST API is used.
	Token      string
	APIURL     string
	GraphQLURL string
}

// EnvFileVar names an optional dotenv file to seed the environment from.
const EnvFileVar = "GIT_SPY_ENV_FILE"

// Load reads the environment, seeding it first from the given dotenv files.
// Nothing is read from disk unless files are named, and a missing file is not an error.
// Variables already set in the environment win over file values.
func Load(envFiles ...string) Config {
	if len(envFiles) > 0 {
		_ = godotenv.Load(envFiles...)
	}
	return FromEnv(os.Getenv)
}

// EnvFiles returns the dotenv file named by EnvFileVar, if any.
func EnvFiles(getenv func(string) string) []string {
	if path := getenv(EnvFileVar); path != "" {
		return []string{path}
	}
	return nil
}

// FromEnv builds a Config from a lookup function such as os.Getenv.
func FromEnv(getenv func(string) string) Config {
	cfg := Config{
		Token:      getenv("GITHUB_TOKEN"),
		APIURL:     getenv("GITHUB_API_URL"),
		GraphQLURL: getenv("GITHUB_GRAPHQL_URL"),
	}
	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}
	if cfg.GraphQLURL == "" {
		cfg.GraphQLURL = DefaultGraphQLURL
	}
	return cfg
}
