package config_test

import (
	"context"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/repoguard/pkg/cli/config"
	"github.com/urfave/cli/v3"
)

func parseGitHubFlags(t *testing.T, args ...string) (*config.GitHub, error) {
	t.Helper()
	cfg := &config.GitHub{}
	cmd := &cli.Command{
		Name:  "test",
		Flags: cfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			return nil
		},
	}
	err := cmd.Run(context.Background(), append([]string{"test"}, args...))
	return cfg, err
}

func validArgs() []string {
	return []string{
		"--github-token", "ghp_dummy_token",
		"--webhook-secret", "dummy-webhook-secret",
		"--github-user", "octocat",
		"--git-email", "octocat@example.com",
		"--git-name", "Octo Cat",
	}
}

func TestGitHubFlags(t *testing.T) {
	cfg := &config.GitHub{}
	flags := cfg.Flags()

	gt.V(t, len(flags)).Equal(5)

	flagNames := make(map[string]bool)
	for _, flag := range flags {
		flagNames[flag.Names()[0]] = true
	}

	gt.True(t, flagNames["github-token"])
	gt.True(t, flagNames["webhook-secret"])
	gt.True(t, flagNames["github-user"])
	gt.True(t, flagNames["git-email"])
	gt.True(t, flagNames["git-name"])
}

func TestGitHubValidate(t *testing.T) {
	t.Run("fully configured passes", func(t *testing.T) {
		cfg := gt.R1(parseGitHubFlags(t, validArgs()...)).NoError(t)
		gt.NoError(t, cfg.Validate())

		gt.V(t, cfg.Token().Unmask()).Equal("ghp_dummy_token")
		gt.V(t, cfg.WebhookSecret().Unmask()).Equal("dummy-webhook-secret")
		gt.V(t, cfg.User()).Equal("octocat")
		gt.V(t, cfg.GitEmail()).Equal("octocat@example.com")
		gt.V(t, cfg.GitName()).Equal("Octo Cat")
	})

	t.Run("zero value fails", func(t *testing.T) {
		cfg := &config.GitHub{}
		gt.Error(t, cfg.Validate())
	})

	t.Run("placeholder values fail fast", func(t *testing.T) {
		placeholderArgs := map[string][]string{
			"github-user": {"--github-user", "GITHUB_USER"},
			"git-email":   {"--git-email", "GIT_EMAIL"},
			"git-name":    {"--git-name", "GIT_NAME"},
		}

		for name, override := range placeholderArgs {
			t.Run(name, func(t *testing.T) {
				args := append(validArgs(), override...)
				cfg := gt.R1(parseGitHubFlags(t, args...)).NoError(t)
				gt.Error(t, cfg.Validate())
			})
		}
	})
}

func TestGitHubLogValueMasksSecrets(t *testing.T) {
	cfg := gt.R1(parseGitHubFlags(t, validArgs()...)).NoError(t)

	logged := cfg.LogValue().String()
	gt.False(t, strings.Contains(logged, "ghp_dummy_token"))
	gt.False(t, strings.Contains(logged, "dummy-webhook-secret"))
}
