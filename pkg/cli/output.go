package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/m-mizutani/ghrepo/pkg/domain/interfaces"
	"github.com/m-mizutani/ghrepo/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

func formatterFor(config *Config) interfaces.Formatter {
	if config.JSON {
		return NewJSONFormatter()
	}
	return NewTextFormatter()
}

type TextFormatter struct{}

func NewTextFormatter() interfaces.Formatter {
	return &TextFormatter{}
}

func (f *TextFormatter) Format(w io.Writer, repo model.Repository) error {
	_, err := fmt.Fprintln(w, repo.FullName())
	return err
}

type JSONFormatter struct{}

func NewJSONFormatter() interfaces.Formatter {
	return &JSONFormatter{}
}

// repoRecord is the structured output shape. Field order follows the
// alphabetical URL key order GitHub's own API uses.
type repoRecord struct {
	Owner    string `json:"owner"`
	Name     string `json:"name"`
	FullName string `json:"fullname"`
	APIURL   string `json:"api_url"`
	CloneURL string `json:"clone_url"`
	GitURL   string `json:"git_url"`
	HTMLURL  string `json:"html_url"`
	SSHURL   string `json:"ssh_url"`
}

func (f *JSONFormatter) Format(w io.Writer, repo model.Repository) error {
	record := repoRecord{
		Owner:    repo.Owner(),
		Name:     repo.Name(),
		FullName: repo.FullName(),
		APIURL:   repo.APIURL(),
		CloneURL: repo.CloneURL(),
		GitURL:   repo.GitURL(),
		HTMLURL:  repo.HTMLURL(),
		SSHURL:   repo.SSHURL(),
	}

	encoded, err := json.MarshalIndent(record, "", "    ")
	if err != nil {
		return goerr.Wrap(err, "failed to encode repository record")
	}
	_, err = fmt.Fprintln(w, string(encoded))
	return err
}

// urlKinds lists the renderable URL kinds in output order.
var urlKinds = []struct {
	kind   string
	render func(model.Repository) string
}{
	{kind: "api", render: model.Repository.APIURL},
	{kind: "clone", render: model.Repository.CloneURL},
	{kind: "git", render: model.Repository.GitURL},
	{kind: "html", render: model.Repository.HTMLURL},
	{kind: "ssh", render: model.Repository.SSHURL},
}

func KnownURLKind(kind string) bool {
	for _, entry := range urlKinds {
		if entry.kind == kind {
			return true
		}
	}
	return false
}

// URLFormatter prints repository URLs. With a kind it prints that one URL
// bare; otherwise all five as "kind<TAB>url" lines with the kind colored.
type URLFormatter struct {
	kind string
}

func NewURLFormatter(kind string) interfaces.Formatter {
	return &URLFormatter{kind: kind}
}

func (f *URLFormatter) Format(w io.Writer, repo model.Repository) error {
	label := color.New(color.FgCyan).SprintFunc()

	for _, entry := range urlKinds {
		if f.kind != "" && f.kind != entry.kind {
			continue
		}
		var err error
		if f.kind != "" {
			_, err = fmt.Fprintln(w, entry.render(repo))
		} else {
			_, err = fmt.Fprintf(w, "%s\t%s\n", label(entry.kind), entry.render(repo))
		}
		if err != nil {
			return err
		}
	}
	return nil
}
