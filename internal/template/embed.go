package template

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed all:templates
var embedded embed.FS

// EmbeddedTemplates returns the built-in template root. Each top-level
// directory is one template.
func EmbeddedTemplates() (fs.FS, error) {
	sub, err := fs.Sub(embedded, "templates")
	if err != nil {
		return nil, fmt.Errorf("embedded templates: %w", err)
	}
	return sub, nil
}
