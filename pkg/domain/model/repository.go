package model

import (
	"strconv"
	"strings"

	"github.com/google/go-github/v74/github"
	"github.com/m-mizutani/ghrepo/pkg/domain"
	"github.com/m-mizutani/goerr/v2"
)

// Repository identifies a GitHub repository by its owner and name. The zero
// value identifies nothing; non-zero values are only produced by New and the
// parse functions, so both fields are always valid.
type Repository struct {
	owner string
	name  string
}

// New builds a Repository after validating both parts. The owner is checked
// first, so an input broken on both sides reports the owner.
func New(owner, name string) (Repository, error) {
	if !IsValidOwner(owner) {
		return Repository{}, domain.ErrInvalidOwner.Wrap(goerr.New(strconv.Quote(owner)))
	}
	if !IsValidName(name) {
		return Repository{}, domain.ErrInvalidName.Wrap(goerr.New(strconv.Quote(name)))
	}
	return Repository{owner: owner, name: name}, nil
}

// FromGitHub converts a repository record returned by the GitHub API.
func FromGitHub(src *github.Repository) (Repository, error) {
	if src == nil {
		return Repository{}, goerr.New("nil GitHub repository record")
	}
	return New(src.GetOwner().GetLogin(), src.GetName())
}

func (r Repository) Owner() string { return r.owner }
func (r Repository) Name() string  { return r.name }

// FullName returns the "owner/name" form.
func (r Repository) FullName() string {
	return r.owner + "/" + r.name
}

func (r Repository) String() string {
	return r.FullName()
}

func (r Repository) IsZero() bool {
	return r.owner == "" && r.name == ""
}

// Equal reports whether two repositories identify the same owner and name.
// Comparison is case-sensitive since GitHub preserves case.
func (r Repository) Equal(other Repository) bool {
	return r == other
}

// Compare orders repositories lexicographically by their "owner/name" form,
// for deterministic sorting and display.
func (r Repository) Compare(other Repository) int {
	return strings.Compare(r.FullName(), other.FullName())
}

// APIURL returns the base REST endpoint for the repository,
// e.g. "https://api.github.com/repos/octocat/Hello-World".
func (r Repository) APIURL() string {
	return "https://api.github.com/repos/" + r.FullName()
}

// CloneURL returns the HTTPS clone URL, which carries a ".git" suffix.
func (r Repository) CloneURL() string {
	return "https://github.com/" + r.FullName() + ".git"
}

// GitURL returns the clone URL for the git protocol.
func (r Repository) GitURL() string {
	return "git://github.com/" + r.FullName() + ".git"
}

// HTMLURL returns the web page URL, without a ".git" suffix.
func (r Repository) HTMLURL() string {
	return "https://github.com/" + r.FullName()
}

// SSHURL returns the SCP-style SSH clone URL.
func (r Repository) SSHURL() string {
	return "git@github.com:" + r.FullName() + ".git"
}

// MarshalText encodes the repository as "owner/name".
func (r Repository) MarshalText() ([]byte, error) {
	if r.IsZero() {
		return nil, goerr.New("empty repository")
	}
	return []byte(r.FullName()), nil
}

// UnmarshalText accepts anything Parse does, so serialized repositories may
// round-trip through the full-name form or any accepted URL.
func (r *Repository) UnmarshalText(text []byte) error {
	repo, err := Parse(string(text))
	if err != nil {
		return err
	}
	*r = repo
	return nil
}
