package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"os/exec"

	"github.com/fatih/color"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/ghrepo/pkg/domain"
	"github.com/m-mizutani/ghrepo/pkg/domain/model"
	"github.com/m-mizutani/ghrepo/pkg/usecase"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func RunInspect(ctx context.Context, cmd *cli.Command) error {
	ctx = setupContext(ctx, cmd)

	config, err := loadConfig(cmd, cmd.Args().First())
	if err != nil {
		return err
	}

	repo, err := resolveLocal(ctx, config)
	if err != nil {
		return err
	}

	return formatterFor(config).Format(os.Stdout, repo)
}

func RunParse(ctx context.Context, cmd *cli.Command) error {
	_ = setupContext(ctx, cmd)

	spec := cmd.Args().First()
	if spec == "" {
		return goerr.New("missing SPEC argument")
	}

	config, err := loadConfig(cmd, "")
	if err != nil {
		return err
	}

	repo, err := parseSpec(config, spec)
	if err != nil {
		return err
	}

	return formatterFor(config).Format(os.Stdout, repo)
}

func RunURLs(ctx context.Context, cmd *cli.Command) error {
	ctx = setupContext(ctx, cmd)

	kind := cmd.String("kind")
	if kind != "" && !KnownURLKind(kind) {
		return goerr.New("unknown URL kind: " + kind)
	}

	config, err := loadConfig(cmd, cmd.Args().First())
	if err != nil {
		return err
	}

	repo, err := resolveArgument(ctx, config, cmd.Args().First())
	if err != nil {
		return err
	}

	return NewURLFormatter(kind).Format(os.Stdout, repo)
}

// resolveArgument turns the optional argument of urls into a repository.
// A parseable argument wins; otherwise an argument naming an existing
// directory is inspected as a checkout, and no argument means the
// configured directory.
func resolveArgument(ctx context.Context, config *Config, arg string) (model.Repository, error) {
	if arg == "" {
		return resolveLocal(ctx, config)
	}

	repo, err := parseSpec(config, arg)
	if err == nil {
		return repo, nil
	}

	if info, statErr := os.Stat(arg); statErr == nil && info.IsDir() {
		dirConfig := *config
		dirConfig.Dir = arg
		return resolveLocal(ctx, &dirConfig)
	}
	return model.Repository{}, err
}

func resolveLocal(ctx context.Context, config *Config) (model.Repository, error) {
	git := usecase.NewGitService(config.Dir)
	resolver := usecase.NewResolveService(git, config.Parser())

	if config.Upstream {
		return resolver.FromUpstream(ctx)
	}
	return resolver.FromRemote(ctx, config.Remote)
}

// parseSpec applies the bare-name policy: a configured default owner
// enables bare names, otherwise they are rejected.
func parseSpec(config *Config, spec string) (model.Repository, error) {
	parser := config.Parser()
	if config.Owner != "" {
		return parser.ParseWithOwner(spec, config.Owner)
	}
	return parser.Parse(spec)
}

// loadConfig merges the built-in defaults, the configuration file, and
// the command flags into the runtime settings. The file comes from
// --config when given, else a project-local file in the inspected
// directory, else the default path.
func loadConfig(cmd *cli.Command, dir string) (*Config, error) {
	config := NewConfig()
	if dir != "" {
		config.Dir = dir
	}

	service := usecase.NewConfigService()

	var file *model.Config
	var err error
	if path := cmd.String("config"); path != "" {
		file, err = service.Load(path)
	} else {
		var found string
		file, found, err = service.LoadFromDirectory(config.Dir)
		if err == nil && found == "" {
			file, err = service.LoadDefault()
		}
	}
	if err != nil {
		return nil, err
	}

	config.ApplyFile(file)
	config.ApplyCommand(cmd)
	return config, nil
}

func setupContext(ctx context.Context, cmd *cli.Command) context.Context {
	// NO_COLOR is a presence convention, not a boolean value
	if cmd.Bool("no-color") || os.Getenv("NO_COLOR") != "" {
		color.NoColor = true
	}

	logLevel := slog.LevelWarn
	if cmd.Bool("debug") {
		logLevel = slog.LevelDebug
	} else if cmd.Bool("verbose") {
		logLevel = slog.LevelInfo
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	return ctxlog.With(ctx, logger)
}

// Report writes the user-facing account of err. A failed git command
// already produced its own diagnostics, so its captured stderr is
// replayed verbatim instead of the ghrepo banner.
func Report(w io.Writer, err error) {
	var exitErr *exec.ExitError
	if errors.Is(err, domain.ErrGitCommand) && errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
		_, _ = w.Write(exitErr.Stderr)
		return
	}
	color.New(color.FgRed).Fprintf(w, "ghrepo: %v\n", err)
}

// ExitCode maps an error to the process exit status: a missing remote
// exits 2 and a failed git command propagates git's own status, matching
// the exit contract of git itself; anything else exits 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if errors.Is(err, domain.ErrNoSuchRemote) {
		return 2
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
		return exitErr.ExitCode()
	}
	return 1
}
