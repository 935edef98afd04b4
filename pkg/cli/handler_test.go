package cli_test

import (
	"bytes"
	"errors"
	"os/exec"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/m-mizutani/ghrepo/pkg/cli"
	"github.com/m-mizutani/ghrepo/pkg/domain"
	"github.com/m-mizutani/gt"
)

func TestExitCode(t *testing.T) {
	t.Run("no error", func(t *testing.T) {
		gt.Equal(t, cli.ExitCode(nil), 0)
	})

	t.Run("missing remote exits 2", func(t *testing.T) {
		err := domain.ErrNoSuchRemote.Wrap(errors.New("origin"))
		gt.Equal(t, cli.ExitCode(err), 2)
	})

	t.Run("other errors exit 1", func(t *testing.T) {
		gt.Equal(t, cli.ExitCode(errors.New("boom")), 1)
		gt.Equal(t, cli.ExitCode(domain.ErrMalformedInput), 1)
	})

	t.Run("git exit status propagates", func(t *testing.T) {
		if _, err := exec.LookPath("git"); err != nil {
			t.Skip("git command is not available")
		}

		runErr := exec.Command("git", "--no-such-flag").Run()
		var exitErr *exec.ExitError
		gt.True(t, errors.As(runErr, &exitErr))
		gt.True(t, exitErr.ExitCode() > 0)

		wrapped := domain.ErrGitCommand.Wrap(runErr)
		gt.Equal(t, cli.ExitCode(wrapped), exitErr.ExitCode())
	})
}

func TestReport(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = noColor })

	t.Run("banner for ordinary errors", func(t *testing.T) {
		var buf bytes.Buffer
		cli.Report(&buf, errors.New("boom"))
		gt.Equal(t, buf.String(), "ghrepo: boom\n")
	})

	t.Run("missing remote keeps the banner", func(t *testing.T) {
		var buf bytes.Buffer
		cli.Report(&buf, domain.ErrNoSuchRemote.Wrap(errors.New(`"origin"`)))
		gt.True(t, strings.HasPrefix(buf.String(), "ghrepo: "))
	})

	t.Run("failed git command replays its stderr", func(t *testing.T) {
		if _, err := exec.LookPath("git"); err != nil {
			t.Skip("git command is not available")
		}

		// Output captures stderr on the ExitError, as GitService does
		_, runErr := exec.Command("git", "--no-such-flag").Output()
		var exitErr *exec.ExitError
		gt.True(t, errors.As(runErr, &exitErr))
		gt.True(t, len(exitErr.Stderr) > 0)

		var buf bytes.Buffer
		cli.Report(&buf, domain.ErrGitCommand.Wrap(runErr))
		gt.Equal(t, buf.String(), string(exitErr.Stderr))
	})
}
