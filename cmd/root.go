// Package cmd contains the CLI command for the application,
// built using the Cobra library.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/naka-gawa/git-spy/internal/config"
	"github.com/naka-gawa/git-spy/internal/gateway"
	"github.com/naka-gawa/git-spy/internal/presenter"
	"github.com/naka-gawa/git-spy/internal/usecase"
	"github.com/spf13/cobra"
)

// Set via ldflags: -X github.com/naka-gawa/git-spy/cmd.version=...
var version = "dev"

// exitInterrupted is the shell convention for a run stopped by SIGINT.
const exitInterrupted = 130

// deps are the collaborators of a run, replaced in tests.
type deps struct {
	stdout     io.Writer
	stderr     io.Writer
	loadConfig func() config.Config
	newFetcher func(config.Config, *log.Logger) (gateway.Fetcher, error)
	picker     presenter.Picker
	open       func(string) error
}

func defaultDeps() deps {
	return deps{
		stdout:     os.Stdout,
		stderr:     os.Stderr,
		loadConfig: func() config.Config { return config.Load(config.EnvFiles(os.Getenv)...) },
		newFetcher: gateway.NewFetcher,
		picker:     presenter.TeaPicker{},
		open:       presenter.OpenURL,
	}
}

// Execute runs the root command and exits with its status code.
// This is called by main.main().
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], defaultDeps())
	cancel()
	os.Exit(code)
}

// run executes the command with args and returns the process exit code.
func run(ctx context.Context, args []string, d deps) int {
	root := newRootCmd(d)
	root.SetArgs(args)
	root.SetOut(d.stdout)
	root.SetErr(d.stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		if ctx.Err() != nil {
			return exitInterrupted
		}
		presenter.PrintFailure(d.stderr, err)
		return 1
	}
	return 0
}

func newRootCmd(d deps) *cobra.Command {
	var (
		user    string
		verbose bool
	)

	root := &cobra.Command{
		Use:   "git-spy",
		Short: "A CLI tool to inspect a GitHub user at a glance.",
		Long: `git-spy fetches a GitHub user's profile and public repositories, ranks
their languages and most starred repositories, and renders the result as a
terminal report. Pick a repository at the end to open it in your browser.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if user == "" {
				return errors.New("user must not be empty")
			}
			logger := newLogger(d.stderr, verbose)
			return report(cmd.Context(), d, logger, user)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("git-spy %s\n", version))
	root.Flags().StringVarP(&user, "user", "u", "", "Target GitHub user name (required)")
	_ = root.MarkFlagRequired("user")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose/debug logging")

	return root
}

// report fetches and renders the report for user, then runs the picker.
func report(ctx context.Context, d deps, logger *log.Logger, user string) error {
	cfg := d.loadConfig()
	if cfg.Token == "" {
		logger.Debug("GITHUB_TOKEN is not set, using unauthenticated requests")
	}

	fetcher, err := d.newFetcher(cfg, logger)
	if err != nil {
		return err
	}
	reporter := usecase.NewReporter(fetcher, logger)

	spinner := presenter.NewSpinner(ctx, d.stderr, presenter.FetchMessage(user))
	spinner.Start()
	result, err := reporter.Build(ctx, user)
	spinner.Stop()
	if err != nil {
		return err
	}

	if err := presenter.RenderReport(d.stdout, result); err != nil {
		return err
	}

	if len(result.TopRepositories) == 0 {
		return nil
	}
	names := make([]string, len(result.TopRepositories))
	for i, repo := range result.TopRepositories {
		names[i] = repo.Name
	}

	index, ok, err := d.picker.Pick(presenter.PickerPrompt, names)
	if err != nil {
		logger.Debug("Picker failed", "err", err)
	}
	if err != nil || !ok {
		presenter.Terminated(d.stdout)
		return nil
	}
	presenter.Connect(d.stdout, d.stderr, result.TopRepositories[index].URL, d.open)
	return nil
}
