package model

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/m-mizutani/ghrepo/pkg/domain"
	"github.com/m-mizutani/goerr/v2"
)

// Parser recognizes GitHub repository specifiers and URLs. The zero value
// accepts github.com forms only. Setting Host additionally accepts the same
// URL shapes on a GitHub Enterprise host, e.g. "github.example.com", along
// with its "www." and "api." counterparts. Setting Host to "github.com"
// adds nothing.
type Parser struct {
	Host string
}

// Parse extracts a repository from either a bare "owner/name" specifier or
// any URL form accepted by ParseURL. A specifier is recognized by shape
// first: exactly one slash and no "@" or ":" anywhere. A single trailing
// ".git" on the name is dropped before validation.
func (p Parser) Parse(s string) (Repository, error) {
	if owner, name, ok := splitSpecifier(s); ok {
		return New(owner, trimGitSuffix(name))
	}
	return p.ParseURL(s)
}

// ParseURL extracts a repository from a GitHub URL. The accepted shapes are
//
//	[https://[userinfo@]|http://[userinfo@]][www.]HOST/OWNER/NAME[.git][/...]
//	[https://|http://]api.HOST/repos/OWNER/NAME[.git]
//	git://HOST/OWNER/NAME[.git]
//	git@HOST:OWNER/NAME[.git]
//	ssh://git@HOST/OWNER/NAME[.git]
//
// where HOST is github.com or the configured enterprise host. Scheme and
// host comparisons ignore letter case; the "git@" marker, the "/repos/"
// path, and the ".git" suffix are matched literally.
func (p Parser) ParseURL(s string) (Repository, error) {
	if repo, ok, err := p.matchURL(s); ok {
		return repo, err
	}
	return Repository{}, p.classify(s)
}

// ParseWithOwner behaves like Parse but additionally accepts a bare
// repository name, which is paired with the given default owner. A name is
// recognized by shape: no "/", "@", or ":" anywhere in the input.
func (p Parser) ParseWithOwner(s, owner string) (Repository, error) {
	if !strings.ContainsAny(s, "/@:") {
		return New(owner, trimGitSuffix(s))
	}
	return p.Parse(s)
}

// Parse extracts a repository from a bare "owner/name" specifier or a
// GitHub URL, using the default github.com-only Parser.
func Parse(s string) (Repository, error) {
	return Parser{}.Parse(s)
}

// ParseURL extracts a repository from a GitHub URL, using the default
// github.com-only Parser.
func ParseURL(s string) (Repository, error) {
	return Parser{}.ParseURL(s)
}

// ParseWithOwner extracts a repository from a bare name, a specifier, or a
// URL, using the default github.com-only Parser.
func ParseWithOwner(s, owner string) (Repository, error) {
	return Parser{}.ParseWithOwner(s, owner)
}

func (p Parser) hostNames() []string {
	if p.Host == "" || p.Host == "github.com" {
		return []string{"github.com"}
	}
	return []string{"github.com", p.Host}
}

// matchURL tries each URL shape in turn. ok reports whether some shape
// claimed the input; err then carries the validation verdict for it.
func (p Parser) matchURL(s string) (Repository, bool, error) {
	if rest, ok := cutPrefixFold(s, "https://"); ok {
		return p.matchAfterScheme(s, rest)
	}
	if rest, ok := cutPrefixFold(s, "http://"); ok {
		return p.matchAfterScheme(s, rest)
	}
	if repo, ok, err := p.matchAPI(s, s); ok {
		return repo, true, err
	}
	for _, h := range p.hostNames() {
		if rest, ok := cutPrefixFold(s, "git://"+h+"/"); ok {
			repo, err := p.ownerName(s, rest)
			return repo, true, err
		}
	}
	if rest, ok := strings.CutPrefix(s, "git@"); ok {
		for _, h := range p.hostNames() {
			if rem, ok := cutPrefixFold(rest, h+":"); ok {
				repo, err := p.ownerName(s, rem)
				return repo, true, err
			}
		}
	}
	if rest, ok := cutPrefixFold(s, "ssh://"); ok {
		if rest, ok := strings.CutPrefix(rest, "git@"); ok {
			for _, h := range p.hostNames() {
				if rem, ok := cutPrefixFold(rest, h+"/"); ok {
					repo, err := p.ownerName(s, rem)
					return repo, true, err
				}
			}
		}
	}
	return p.matchWeb(s, s)
}

// matchAfterScheme handles the part after "https://" or "http://". The API
// host is tried before userinfo because api.HOST URLs never carry any.
func (p Parser) matchAfterScheme(input, rest string) (Repository, bool, error) {
	if repo, ok, err := p.matchAPI(input, rest); ok {
		return repo, true, err
	}
	if ui, after, found := strings.Cut(rest, "@"); found && isUserinfo(ui) {
		rest = after
	}
	return p.matchWeb(input, rest)
}

func (p Parser) matchAPI(input, s string) (Repository, bool, error) {
	for _, h := range p.hostNames() {
		if rest, ok := cutPrefixFold(s, "api."+h); ok {
			if rem, ok := strings.CutPrefix(rest, "/repos/"); ok {
				repo, err := p.ownerName(input, rem)
				return repo, true, err
			}
		}
	}
	return Repository{}, false, nil
}

func (p Parser) matchWeb(input, s string) (Repository, bool, error) {
	if rest, ok := cutPrefixFold(s, "www."); ok {
		s = rest
	}
	for _, h := range p.hostNames() {
		if rest, ok := cutPrefixFold(s, h+"/"); ok {
			repo, err := p.webPath(input, rest)
			return repo, true, err
		}
	}
	return Repository{}, false, nil
}

// ownerName parses the strict "OWNER/NAME[.git]" remainder used by the API,
// git, SCP, and ssh shapes. Nothing may follow the name.
func (p Parser) ownerName(input, rem string) (Repository, error) {
	owner, name, ok := strings.Cut(rem, "/")
	if !ok || strings.Contains(name, "/") {
		return Repository{}, malformed(input)
	}
	return New(owner, trimGitSuffix(name))
}

// webPath parses the "OWNER/NAME[.git][/...]" remainder of a web URL. Path
// segments past the name, such as "/tree/main", are ignored.
func (p Parser) webPath(input, rem string) (Repository, error) {
	owner, rest, ok := strings.Cut(rem, "/")
	if !ok {
		return Repository{}, malformed(input)
	}
	name, _, _ := strings.Cut(rest, "/")
	return New(owner, trimGitSuffix(name))
}

// classify decides which failure to report for an input no shape claimed.
// Inputs without URL scheme syntax are malformed outright. A recognized
// scheme pointing at a non-GitHub host, or an unrecognized scheme, is
// unsupported rather than malformed.
func (p Parser) classify(input string) error {
	scheme, ok := cutScheme(input)
	if !ok {
		return malformed(input)
	}
	switch scheme {
	case "http", "https", "git", "ssh":
	default:
		return unsupported(input)
	}
	u, err := url.Parse(input)
	if err != nil {
		return malformed(input)
	}
	if p.knownHost(u.Hostname()) {
		return malformed(input)
	}
	return unsupported(input)
}

func (p Parser) knownHost(h string) bool {
	for _, base := range p.hostNames() {
		for _, known := range []string{base, "www." + base, "api." + base} {
			if strings.EqualFold(h, known) {
				return true
			}
		}
	}
	return false
}

func splitSpecifier(s string) (owner, name string, ok bool) {
	if strings.Count(s, "/") != 1 || strings.ContainsAny(s, "@:") {
		return "", "", false
	}
	owner, name, _ = strings.Cut(s, "/")
	return owner, name, true
}

// trimGitSuffix drops a single trailing ".git". Only the lowercase literal
// is a suffix; other casings are left for name validation to reject.
func trimGitSuffix(s string) string {
	return strings.TrimSuffix(s, ".git")
}

func cutPrefixFold(s, prefix string) (string, bool) {
	if len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix) {
		return s[len(prefix):], true
	}
	return s, false
}

// cutScheme extracts a lowercased RFC 3986 scheme followed by "://".
func cutScheme(s string) (string, bool) {
	i := strings.Index(s, "://")
	if i <= 0 {
		return "", false
	}
	scheme := s[:i]
	if !isAlpha(scheme[0]) {
		return "", false
	}
	for j := 1; j < len(scheme); j++ {
		c := scheme[j]
		if !isAlnum(c) && c != '+' && c != '-' && c != '.' {
			return "", false
		}
	}
	return strings.ToLower(scheme), true
}

// isUserinfo reports whether s is acceptable URL userinfo: unreserved and
// sub-delimiter characters plus ":" and "%", with every percent escape
// decodable. Invalid userinfo is left in place for the host match to fail.
func isUserinfo(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !isAlnum(c) && strings.IndexByte("-._~!$&'()*+,;=%:", c) < 0 {
			return false
		}
	}
	_, err := url.PathUnescape(s)
	return err == nil
}

func isAlpha(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func malformed(input string) error {
	return domain.ErrMalformedInput.Wrap(goerr.New(strconv.Quote(input)))
}

func unsupported(input string) error {
	return domain.ErrUnsupportedHost.Wrap(goerr.New(strconv.Quote(input)))
}
