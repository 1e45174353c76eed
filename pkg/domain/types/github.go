package types

import "log/slog"

type (
	GitHubToken   string
	WebhookSecret string
	BranchName    string
	RepoName      string
	RepoFullName  string
)

func (x GitHubToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubToken) String() string {
	return "***********"
}

// Unmask returns the raw token for request headers and credential-embedded
// URLs. Never log the returned value.
func (x GitHubToken) Unmask() string {
	return string(x)
}

func (x WebhookSecret) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x WebhookSecret) String() string {
	return "***********"
}

func (x WebhookSecret) Unmask() string {
	return string(x)
}
