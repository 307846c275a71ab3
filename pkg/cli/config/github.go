package config

import (
	"log/slog"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/reclaimer/pkg/domain/types"
	"github.com/secmon-lab/reclaimer/pkg/service/github"
	"github.com/urfave/cli/v3"
)

// GitHub holds GitHub API configuration
type GitHub struct {
	PAT     string
	APIURL  string
	Timeout time.Duration
}

// Flags returns CLI flags for GitHub configuration
func (g *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-pat",
			Usage:       "Personal access token of the target organization",
			Category:    "GitHub",
			Sources:     cli.EnvVars("GH_PAT"),
			Destination: &g.PAT,
		},
		&cli.StringFlag{
			Name:        "target-api-url",
			Usage:       "API URL of the target GitHub instance (for GHES, https://<host>/api/v3)",
			Category:    "GitHub",
			Value:       github.DefaultAPIURL,
			Sources:     cli.EnvVars("GH_API_URL"),
			Destination: &g.APIURL,
		},
		&cli.DurationFlag{
			Name:        "github-timeout",
			Usage:       "Timeout of a single GitHub API request",
			Category:    "GitHub",
			Value:       60 * time.Second,
			Destination: &g.Timeout,
		},
	}
}

// Secret returns the PAT as a masked secret
func (g *GitHub) Secret() types.Secret {
	return types.Secret(g.PAT)
}

// Validate validates the GitHub configuration
func (g *GitHub) Validate() error {
	if g.APIURL == "" {
		return goerr.New("--target-api-url must not be empty")
	}
	if g.Timeout <= 0 {
		return goerr.New("--github-timeout must be positive", goerr.V("timeout", g.Timeout))
	}
	return nil
}

// Configure creates a GitHub GraphQL client
func (g *GitHub) Configure() (*github.Client, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return github.NewClient(g.APIURL, g.Secret(), github.WithTimeout(g.Timeout)), nil
}

// LogValue returns structured log value
func (g GitHub) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("has_pat", g.PAT != ""),
		slog.String("api_url", g.APIURL),
		slog.Duration("timeout", g.Timeout),
	)
}
