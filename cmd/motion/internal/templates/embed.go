// Package templates provides embedded template files for project
// scaffolding.
package templates

import (
	"embed"
	"fmt"
	"strings"
	"text/template"
)

//go:embed init/*
var FS embed.FS

// Data contains the values substituted into scaffold templates.
type Data struct {
	ModulePath string // e.g., "github.com/acme/notify"
	ModuleName string // e.g., "notify"
}

// Render loads the named embedded template and substitutes data.
func Render(name string, data *Data) (string, error) {
	raw, err := FS.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("failed to read template %s: %w", name, err)
	}

	tmpl, err := template.New(name).Parse(string(raw))
	if err != nil {
		return "", fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("failed to render template %s: %w", name, err)
	}
	return sb.String(), nil
}
