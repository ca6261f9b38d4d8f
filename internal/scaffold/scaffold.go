// Package scaffold provides an embedded example roots file.
package scaffold

import (
	"bytes"
	_ "embed"
	"os"
	"path/filepath"
	"text/template"
)

// RootsTemplate contains the example roots file.
//
//go:embed roots.tmpl
var RootsTemplate string

// Render renders the example roots file for the current user.
func Render() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	cache, err := os.UserCacheDir()
	if err != nil {
		cache = filepath.Join(home, ".cache")
	}

	tmpl, err := template.New("roots").Parse(RootsTemplate)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, map[string]any{
		"Home":  home,
		"Cache": cache,
		"Sep":   string(filepath.Separator),
	}); err != nil {
		return "", err
	}

	return buf.String(), nil
}
