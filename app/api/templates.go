package api

import (
	"embed"
	"errors"
	"fmt"
	"html/template"

	"github.com/zamwe/zamwe-web/app/feed"
)

//go:embed templates/*.html
var templatesFS embed.FS

func parseTemplates(gate *feed.Gate, presenter *feed.Presenter) (*template.Template, error) {
	money := gate.Formatter()

	tmpl, err := template.New("").Funcs(template.FuncMap{
		"money":         money.Format,
		"compact":       money.Compact,
		"number":        money.Number,
		"kindLabel":     presenter.KindLabel,
		"categoryLabel": presenter.CategoryLabel,
		"percent":       func(r feed.Ratio) int { return r.Rounded() },
		"width":         func(r feed.Ratio) string { return fmt.Sprintf("%.1f%%", r.Display()) },
		"active":        func(path, current string) bool { return path == current },
		"dict":          dict,
	}).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	return tmpl, nil
}

// dict builds a map from key/value pairs so a sub-template can take several
// arguments.
func dict(pairs ...any) (map[string]any, error) {
	if len(pairs)%2 != 0 {
		return nil, errors.New("dict needs key/value pairs")
	}
	m := make(map[string]any, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict key %v is not a string", pairs[i])
		}
		m[key] = pairs[i+1]
	}
	return m, nil
}
