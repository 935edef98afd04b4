package cli

import (
	"github.com/urfave/cli/v3"
)

func NewCommand() *cli.Command {
	flags := append(DefineFlags(),
		&cli.BoolFlag{
			Name:  "debug",
			Usage: "Enable debug logging",
			Value: false,
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "Enable verbose logging",
			Value: false,
		},
	)

	return &cli.Command{
		Name:    "ghrepo",
		Usage:   "Identify the GitHub repository a string or checkout refers to",
		Version: "0.1.0",
		Description: `ghrepo resolves the GitHub repository (owner and name) referenced by a
local git checkout and prints it as "owner/name" or as a JSON record with
the canonical URLs.

By default it reads the "origin" remote of the current directory. Pass a
DIRPATH argument to inspect another checkout, -r/--remote to use a
different remote, or -u/--upstream to follow the current branch's
upstream remote instead.`,
		ArgsUsage: "[DIRPATH]",
		Flags:     flags,
		Action:    RunInspect,
		Commands: []*cli.Command{
			NewParseCommand(),
			NewURLsCommand(),
			NewConfigCommand(),
		},
	}
}

func NewParseCommand() *cli.Command {
	return &cli.Command{
		Name:  "parse",
		Usage: "Parse a repository specifier or URL",
		Description: `parse accepts a bare "owner/name" specifier or any GitHub URL form
(https, git, ssh, scp-style, REST API) and prints the repository it
names. With --owner a bare repository name is accepted as well, paired
with the given owner.`,
		ArgsUsage: "SPEC",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "owner",
				Aliases: []string{"o"},
				Usage:   "Default owner paired with a bare repository name",
			},
		},
		Action: RunParse,
	}
}

func NewURLsCommand() *cli.Command {
	return &cli.Command{
		Name:  "urls",
		Usage: "Print the canonical URLs of a repository",
		Description: `urls prints the five canonical URL forms of a repository, one per line.
The argument may be any specifier or URL accepted by parse; an argument
naming an existing directory is inspected as a local checkout instead,
as is no argument at all.`,
		ArgsUsage: "[SPEC|DIRPATH]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "kind",
				Aliases: []string{"k"},
				Usage:   "Print one bare URL: html, api, clone, git, or ssh",
			},
			&cli.StringFlag{
				Name:    "owner",
				Aliases: []string{"o"},
				Usage:   "Default owner paired with a bare repository name",
			},
		},
		Action: RunURLs,
	}
}
