package model

import (
	"strconv"
	"strings"

	"github.com/m-mizutani/ghrepo/pkg/domain"
	"github.com/m-mizutani/goerr/v2"
)

// Config represents the persistent CLI preferences loaded from the TOML
// configuration file. Every field is optional and defaults to the zero
// value, which means "use the built-in default".
type Config struct {
	Remote string `toml:"remote"` // git remote consulted when no flag is given
	Host   string `toml:"host"`   // extra GitHub Enterprise host to accept
	Owner  string `toml:"owner"`  // default owner paired with bare names
	JSON   bool   `toml:"json"`   // emit JSON instead of plain text
}

// Validate checks the fields that constrain later parsing. Empty values are
// always acceptable.
func (c *Config) Validate() error {
	if c.Owner != "" && !IsValidOwner(c.Owner) {
		return domain.ErrConfig.Wrap(goerr.New("invalid default owner " + strconv.Quote(c.Owner)))
	}
	if c.Host != "" && !validHost(c.Host) {
		return domain.ErrConfig.Wrap(goerr.New("invalid enterprise host " + strconv.Quote(c.Host)))
	}
	return nil
}

// validHost accepts a plain DNS host name without a port. Anything else
// would collide with the URL shapes the parser matches host names against.
func validHost(s string) bool {
	if len(s) == 0 || len(s) > 253 {
		return false
	}
	for _, label := range strings.Split(s, ".") {
		if label == "" {
			return false
		}
		for i := 0; i < len(label); i++ {
			if c := label[i]; !isAlnum(c) && c != '-' {
				return false
			}
		}
	}
	return true
}
