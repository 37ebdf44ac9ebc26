package explorer

import (
	"embed"
	"html/template"
	"strings"

	"hatch-egg-webapp/internal/common/errors"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

// RenderRegion renders the explorer result region for the given view snapshot.
func RenderRegion(v View) (string, error) {
	var b strings.Builder
	if err := templates.ExecuteTemplate(&b, "region", v); err != nil {
		return "", errors.Wrap(err, errors.ErrCodeInternal, "failed to render explorer region")
	}
	return b.String(), nil
}

// RenderMyEggs renders the "my eggs" block. A suppressed view renders empty
// so the client can hide the section entirely.
func RenderMyEggs(v MyEggsView) (string, error) {
	var b strings.Builder
	if err := templates.ExecuteTemplate(&b, "my_eggs", v); err != nil {
		return "", errors.Wrap(err, errors.ErrCodeInternal, "failed to render my eggs")
	}
	return b.String(), nil
}
