package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/secmon-lab/repoguard/pkg/cli/config"
	"github.com/secmon-lab/repoguard/pkg/controller/server"
	"github.com/secmon-lab/repoguard/pkg/infra"
	"github.com/secmon-lab/repoguard/pkg/infra/githubapi"
	"github.com/secmon-lab/repoguard/pkg/infra/gitcmd"
	"github.com/secmon-lab/repoguard/pkg/usecase"
	"github.com/secmon-lab/repoguard/pkg/utils/logging"

	"github.com/urfave/cli/v3"
)

func serveCommand() *cli.Command {
	var (
		addr    string
		gitPath string
		workDir string

		githubCfg config.GitHub
		sentryCfg config.Sentry
	)
	serveFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Binding address",
			Value:       "127.0.0.1:8000",
			Sources:     cli.EnvVars("REPOGUARD_ADDR"),
			Destination: &addr,
		},
		&cli.StringFlag{
			Name:        "git-path",
			Usage:       "Path to git binary",
			Value:       "git",
			Sources:     cli.EnvVars("REPOGUARD_GIT_PATH"),
			Destination: &gitPath,
		},
		&cli.StringFlag{
			Name:        "work-dir",
			Usage:       "Root directory for local clones (default: system temp dir)",
			Sources:     cli.EnvVars("REPOGUARD_WORK_DIR"),
			Destination: &workDir,
		},
	}

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Server mode",
		Flags: slice.Flatten(
			serveFlags,
			githubCfg.Flags(),
			sentryCfg.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting serve",
				slog.Any("Addr", addr),
				slog.Any("GitPath", gitPath),
				slog.Any("WorkDir", workDir),
				slog.Any("GitHub", githubCfg),
				slog.Any("Sentry", sentryCfg),
			)

			if err := githubCfg.Validate(); err != nil {
				return err
			}

			if err := sentryCfg.Configure(ctx); err != nil {
				return err
			}

			ghClient, err := githubapi.New(githubCfg.Token())
			if err != nil {
				return err
			}

			clients := infra.New(
				infra.WithGitHub(ghClient),
				infra.WithGit(gitcmd.New(gitPath)),
			)

			ucOptions := []usecase.Option{
				usecase.WithGitHubToken(githubCfg.Token()),
				usecase.WithGitHubUser(githubCfg.User()),
				usecase.WithCommitAuthor(githubCfg.GitEmail(), githubCfg.GitName()),
			}
			if workDir != "" {
				ucOptions = append(ucOptions, usecase.WithWorkDir(workDir))
			}

			uc := usecase.New(clients, ucOptions...)
			s := server.New(uc, server.WithWebhookSecret(githubCfg.WebhookSecret()))

			serverErr := make(chan error, 1)
			httpServer := &http.Server{
				Addr:    addr,
				Handler: s.Mux(),

				ReadHeaderTimeout: 10 * time.Second,
				ReadTimeout:       30 * time.Second,
				// The event pipeline runs synchronously within the request,
				// including the clone/commit/push of empty repositories.
				WriteTimeout: 120 * time.Second,
			}

			go func() {
				logging.Default().Info("starting http server", "addr", addr)
				if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
					serverErr <- goerr.Wrap(err, "failed to listen and serve")
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-serverErr:
				return err

			case sig := <-quit:
				logging.Default().Info("shutting down server", "signal", sig)

				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := httpServer.Shutdown(ctx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server")
				}
			}

			return nil
		},
	}
}
