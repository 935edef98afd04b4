package cli

import (
	"github.com/m-mizutani/ghrepo/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

// Config carries the settings an action runs with after merging flags,
// environment variables, the configuration file, and built-in defaults.
// Flags win over the environment (urfave resolves that order), both win
// over the file, and the file wins over the defaults.
type Config struct {
	Dir      string // directory inspected as a local checkout
	Remote   string // git remote consulted for the repository URL
	Upstream bool   // resolve via the current branch's upstream instead
	JSON     bool   // emit the structured record instead of plain text
	Owner    string // default owner paired with bare repository names
	Host     string // extra GitHub Enterprise host accepted by the parser
}

func NewConfig() *Config {
	return &Config{
		Dir:    ".",
		Remote: "origin",
	}
}

// ApplyFile overlays settings from the configuration file. Empty fields
// leave the current value alone; a false json key does too, so the file
// can only turn JSON output on.
func (c *Config) ApplyFile(file *model.Config) {
	if file == nil {
		return
	}
	if file.Remote != "" {
		c.Remote = file.Remote
	}
	if file.Host != "" {
		c.Host = file.Host
	}
	if file.Owner != "" {
		c.Owner = file.Owner
	}
	if file.JSON {
		c.JSON = true
	}
}

// ApplyCommand overlays flag and environment values. Only flags the user
// actually set override the file, so flag defaults do not mask it.
func (c *Config) ApplyCommand(cmd *cli.Command) {
	if cmd.IsSet("remote") {
		c.Remote = cmd.String("remote")
	}
	if cmd.IsSet("upstream") {
		c.Upstream = cmd.Bool("upstream")
	}
	if cmd.IsSet("json") {
		c.JSON = cmd.Bool("json")
	}
	if cmd.IsSet("owner") {
		c.Owner = cmd.String("owner")
	}
	if cmd.IsSet("host") {
		c.Host = cmd.String("host")
	}
}

// Parser returns the URL parser configured for the accepted hosts.
func (c *Config) Parser() model.Parser {
	return model.Parser{Host: c.Host}
}

// DefineFlags declares the shared flags. urfave applies them to
// subcommands as well unless a flag is marked local, so they may appear
// after a subcommand name too.
func DefineFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "remote",
			Aliases: []string{"r"},
			Usage:   "Git remote to read the repository URL from",
			Value:   "origin",
			Sources: cli.EnvVars("GHREPO_REMOTE"),
		},
		&cli.BoolFlag{
			Name:    "upstream",
			Aliases: []string{"u"},
			Usage:   "Resolve via the current branch's upstream remote",
		},
		&cli.BoolFlag{
			Name:    "json",
			Aliases: []string{"J"},
			Usage:   "Emit a JSON record instead of plain text",
			Sources: cli.EnvVars("GHREPO_JSON"),
		},
		&cli.StringFlag{
			Name:    "config",
			Usage:   "Path to configuration file",
			Sources: cli.EnvVars("GHREPO_CONFIG"),
		},
		&cli.StringFlag{
			Name:    "host",
			Usage:   "GitHub Enterprise host accepted in addition to github.com",
			Sources: cli.EnvVars("GH_HOST"),
		},
		&cli.BoolFlag{
			Name:  "no-color",
			Usage: "Disable colored output",
		},
	}
}
