package gitcmd

import (
	"bytes"
	"context"
	"net/url"
	"os/exec"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/repoguard/pkg/domain/types"
)

// Client runs git subcommands in a working directory. Each invocation is a
// subprocess with captured exit code and stderr.
type Client interface {
	Run(ctx context.Context, dir string, args ...string) error
}

type client struct {
	gitPath string
}

func New(gitPath string) Client {
	return &client{
		gitPath: gitPath,
	}
}

func (x *client) Run(ctx context.Context, dir string, args ...string) error {
	cmd := exec.CommandContext(ctx, x.gitPath, append([]string{"-C", dir}, args...)...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return goerr.Wrap(types.ErrGitCommand, "git command failed",
			goerr.V("args", redactArgs(args)),
			goerr.V("dir", dir),
			goerr.V("exitCode", cmd.ProcessState.ExitCode()),
			goerr.V("stderr", stderr.String()),
		)
	}

	return nil
}

// redactArgs strips userinfo from URL arguments so that credential-embedded
// clone/push URLs never appear in errors or logs.
func redactArgs(args []string) []string {
	redacted := make([]string, len(args))
	for i, arg := range args {
		redacted[i] = arg
		if u, err := url.Parse(arg); err == nil && u.User != nil {
			u.User = nil
			redacted[i] = u.Redacted()
		}
	}
	return redacted
}
