// Package ui holds the HTML templates, static assets and UI labels.
//
// Everything is embedded so the binary runs without a checkout. Each piece
// can be replaced from disk (see config.UI) for local template work.
package ui

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

//go:embed lang/hu.yaml
var defaultLabels []byte

// Labels maps label keys (e.g. "TITLE") to display text.
type Labels map[string]string

// Get returns the label for key, or the key itself when it is missing.
func (l Labels) Get(key string) string {
	if v, ok := l[key]; ok {
		return v
	}
	return key
}

// LoadLabels reads a YAML label file. An empty path loads the embedded
// Hungarian labels.
func LoadLabels(path string) (Labels, error) {
	data := defaultLabels
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read labels: %w", err)
		}
	}

	labels := Labels{}
	if err := yaml.Unmarshal(data, &labels); err != nil {
		return nil, fmt.Errorf("parse labels: %w", err)
	}
	return labels, nil
}

// Templates parses the page and fragment templates. An empty dir uses the
// embedded set.
func Templates(dir string, funcs template.FuncMap) (*template.Template, error) {
	tmpl := template.New("").Funcs(funcs)
	if dir != "" {
		return tmpl.ParseGlob(filepath.Join(dir, "*.html"))
	}
	return tmpl.ParseFS(templatesFS, "templates/*.html")
}

// Static returns the static asset tree. An empty dir uses the embedded
// assets.
func Static(dir string) (fs.FS, error) {
	if dir != "" {
		return os.DirFS(dir), nil
	}
	return fs.Sub(staticFS, "static")
}
