package model_test

import (
	"encoding/json"
	"errors"
	"sort"
	"testing"

	"github.com/google/go-github/v74/github"
	"github.com/m-mizutani/ghrepo/pkg/domain"
	"github.com/m-mizutani/ghrepo/pkg/domain/model"
	"github.com/m-mizutani/gt"
)

func TestNew(t *testing.T) {
	t.Run("valid pair", func(t *testing.T) {
		repo, err := model.New("octocat", "Hello-World")
		gt.NoError(t, err)
		gt.Equal(t, repo.Owner(), "octocat")
		gt.Equal(t, repo.Name(), "Hello-World")
		gt.False(t, repo.IsZero())
	})

	t.Run("invalid owner reported before invalid name", func(t *testing.T) {
		_, err := model.New("None-", "repo.git")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, domain.ErrInvalidOwner))
	})

	t.Run("invalid name", func(t *testing.T) {
		_, err := model.New("Noners", "repo.git")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, domain.ErrInvalidName))
	})

	t.Run("zero value", func(t *testing.T) {
		var repo model.Repository
		gt.True(t, repo.IsZero())
	})
}

func TestRepositoryStrings(t *testing.T) {
	repo, err := model.New("octocat", "repository")
	gt.NoError(t, err)

	gt.Equal(t, repo.FullName(), "octocat/repository")
	gt.Equal(t, repo.String(), "octocat/repository")
}

func TestRepositoryURLs(t *testing.T) {
	repo, err := model.New("octocat", "repository")
	gt.NoError(t, err)

	testCases := []struct {
		name     string
		rendered string
	}{
		{name: "APIURL", rendered: repo.APIURL()},
		{name: "CloneURL", rendered: repo.CloneURL()},
		{name: "GitURL", rendered: repo.GitURL()},
		{name: "HTMLURL", rendered: repo.HTMLURL()},
		{name: "SSHURL", rendered: repo.SSHURL()},
	}

	gt.Equal(t, repo.APIURL(), "https://api.github.com/repos/octocat/repository")
	gt.Equal(t, repo.CloneURL(), "https://github.com/octocat/repository.git")
	gt.Equal(t, repo.GitURL(), "git://github.com/octocat/repository.git")
	gt.Equal(t, repo.HTMLURL(), "https://github.com/octocat/repository")
	gt.Equal(t, repo.SSHURL(), "git@github.com:octocat/repository.git")

	// every rendered form must parse back to the same identity
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			parsed, err := model.ParseURL(tc.rendered)
			gt.NoError(t, err)
			gt.Equal(t, parsed, repo)
		})
	}

	t.Run("FullName round-trip", func(t *testing.T) {
		parsed, err := model.Parse(repo.FullName())
		gt.NoError(t, err)
		gt.Equal(t, parsed, repo)
	})
}

func TestRepositoryCompare(t *testing.T) {
	testCases := []struct {
		lesser  string
		greater string
	}{
		{lesser: "Zoctocat/hello-world", greater: "octocat/hello-world"},
		{lesser: "n/z", greater: "octocat/hello-world"},
		{lesser: "octoca-t/hello-world", greater: "octocat/hello-world"},
		{lesser: "octocat/Zello-world", greater: "octocat/hello-world"},
		{lesser: "octocat/hello-world", greater: "octocat/repository"},
		{lesser: "octocat/hello-world", greater: "p/a"},
	}

	for _, tc := range testCases {
		t.Run(tc.lesser+" < "+tc.greater, func(t *testing.T) {
			lesser, err := model.Parse(tc.lesser)
			gt.NoError(t, err)
			greater, err := model.Parse(tc.greater)
			gt.NoError(t, err)

			gt.True(t, lesser.Compare(greater) < 0)
			gt.True(t, greater.Compare(lesser) > 0)
			gt.Equal(t, lesser.Compare(lesser), 0)
		})
	}

	t.Run("sorting", func(t *testing.T) {
		repos := make([]model.Repository, 0, 3)
		for _, s := range []string{"p/a", "n/z", "octocat/hello-world"} {
			repo, err := model.Parse(s)
			gt.NoError(t, err)
			repos = append(repos, repo)
		}
		sort.Slice(repos, func(i, j int) bool { return repos[i].Compare(repos[j]) < 0 })

		gt.Equal(t, repos[0].FullName(), "n/z")
		gt.Equal(t, repos[1].FullName(), "octocat/hello-world")
		gt.Equal(t, repos[2].FullName(), "p/a")
	})
}

func TestRepositoryJSON(t *testing.T) {
	t.Run("marshal as fullname string", func(t *testing.T) {
		repo, err := model.New("jwodder", "headerparser")
		gt.NoError(t, err)

		raw, err := json.Marshal(repo)
		gt.NoError(t, err)
		gt.Equal(t, string(raw), `"jwodder/headerparser"`)
	})

	t.Run("unmarshal fullname", func(t *testing.T) {
		var repo model.Repository
		gt.NoError(t, json.Unmarshal([]byte(`"jwodder/headerparser"`), &repo))
		gt.Equal(t, repo.Owner(), "jwodder")
		gt.Equal(t, repo.Name(), "headerparser")
	})

	t.Run("unmarshal URL form", func(t *testing.T) {
		var repo model.Repository
		gt.NoError(t, json.Unmarshal([]byte(`"https://github.com/jwodder/headerparser"`), &repo))
		gt.Equal(t, repo.FullName(), "jwodder/headerparser")
	})

	t.Run("unmarshal rejects invalid spec", func(t *testing.T) {
		var repo model.Repository
		err := json.Unmarshal([]byte(`"https://github.com/-Jerry-/geshi-1.0"`), &repo)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, domain.ErrInvalidOwner))
	})

	t.Run("marshal of zero value fails", func(t *testing.T) {
		var repo model.Repository
		_, err := json.Marshal(repo)
		gt.Error(t, err)
	})

	t.Run("struct field round-trip", func(t *testing.T) {
		type record struct {
			Repo model.Repository `json:"repo"`
			N    int              `json:"n"`
		}
		src, err := model.New("octocat", "Hello-World")
		gt.NoError(t, err)

		raw, err := json.Marshal(record{Repo: src, N: 42})
		gt.NoError(t, err)
		gt.Equal(t, string(raw), `{"repo":"octocat/Hello-World","n":42}`)

		var dst record
		gt.NoError(t, json.Unmarshal(raw, &dst))
		gt.Equal(t, dst.Repo, src)
		gt.Equal(t, dst.N, 42)
	})
}

func TestFromGitHub(t *testing.T) {
	t.Run("valid record", func(t *testing.T) {
		src := &github.Repository{
			Name:  github.Ptr("Hello-World"),
			Owner: &github.User{Login: github.Ptr("octocat")},
		}
		repo, err := model.FromGitHub(src)
		gt.NoError(t, err)
		gt.Equal(t, repo.FullName(), "octocat/Hello-World")
	})

	t.Run("nil record", func(t *testing.T) {
		_, err := model.FromGitHub(nil)
		gt.Error(t, err)
	})

	t.Run("missing owner", func(t *testing.T) {
		_, err := model.FromGitHub(&github.Repository{Name: github.Ptr("x")})
		gt.Error(t, err)
		gt.True(t, errors.Is(err, domain.ErrInvalidOwner))
	})
}
