package interfaces

import (
	"io"

	"github.com/m-mizutani/ghrepo/pkg/domain/model"
)

// Formatter renders a resolved repository identity.
type Formatter interface {
	Format(w io.Writer, repo model.Repository) error
}
