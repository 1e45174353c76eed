package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/repoguard/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

// Placeholder sentinels from the deployment template. Starting with any of
// these means the configuration was never filled in.
var placeholders = map[string]string{
	"github-user": "GITHUB_USER",
	"git-email":   "GIT_EMAIL",
	"git-name":    "GIT_NAME",
}

// GitHub holds the credentials and identities used against GitHub: the access
// token, the webhook shared secret, the user tagged in notification issues,
// and the commit author for bootstrapped repositories. Resolved once per
// process lifetime; read-only afterwards.
type GitHub struct {
	token         types.GitHubToken   `masq:"secret"`
	webhookSecret types.WebhookSecret `masq:"secret"`
	user          string
	gitEmail      string
	gitName       string
}

func (x *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub access token",
			Category:    "GitHub",
			Destination: (*string)(&x.token),
			Sources:     cli.EnvVars("REPOGUARD_GITHUB_TOKEN"),
			Required:    true,
		},
		&cli.StringFlag{
			Name:        "webhook-secret",
			Usage:       "GitHub webhook shared secret",
			Category:    "GitHub",
			Destination: (*string)(&x.webhookSecret),
			Sources:     cli.EnvVars("REPOGUARD_WEBHOOK_SECRET"),
			Required:    true,
		},
		&cli.StringFlag{
			Name:        "github-user",
			Usage:       "GitHub user tagged in notification issues",
			Category:    "GitHub",
			Destination: &x.user,
			Sources:     cli.EnvVars("REPOGUARD_GITHUB_USER"),
			Required:    true,
		},
		&cli.StringFlag{
			Name:        "git-email",
			Usage:       "Commit author email for bootstrapped repositories",
			Category:    "GitHub",
			Destination: &x.gitEmail,
			Sources:     cli.EnvVars("REPOGUARD_GIT_EMAIL"),
			Required:    true,
		},
		&cli.StringFlag{
			Name:        "git-name",
			Usage:       "Commit author name for bootstrapped repositories",
			Category:    "GitHub",
			Destination: &x.gitName,
			Sources:     cli.EnvVars("REPOGUARD_GIT_NAME"),
			Required:    true,
		},
	}
}

// Validate fails fast when a value is missing or still equals a deployment
// placeholder.
func (x *GitHub) Validate() error {
	if x.token == "" {
		return goerr.Wrap(types.ErrInvalidOption, "github-token is empty")
	}
	if x.webhookSecret == "" {
		return goerr.Wrap(types.ErrInvalidOption, "webhook-secret is empty")
	}

	values := map[string]string{
		"github-user": x.user,
		"git-email":   x.gitEmail,
		"git-name":    x.gitName,
	}
	for name, value := range values {
		if value == "" {
			return goerr.Wrap(types.ErrInvalidOption, "required value is empty", goerr.V("flag", name))
		}
		if value == placeholders[name] {
			return goerr.Wrap(types.ErrInvalidOption, "value is still a placeholder", goerr.V("flag", name), goerr.V("value", value))
		}
	}

	return nil
}

func (x *GitHub) Token() types.GitHubToken {
	return x.token
}

func (x *GitHub) WebhookSecret() types.WebhookSecret {
	return x.webhookSecret
}

func (x *GitHub) User() string {
	return x.user
}

func (x *GitHub) GitEmail() string {
	return x.gitEmail
}

func (x *GitHub) GitName() string {
	return x.gitName
}

func (x GitHub) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("Token.len", len(x.token)),
		slog.Int("WebhookSecret.len", len(x.webhookSecret)),
		slog.String("User", x.user),
		slog.String("GitEmail", x.gitEmail),
		slog.String("GitName", x.gitName),
	)
}
