package template

import (
	"github.com/silence-cli/create-silence/internal/defs"
	"github.com/silence-cli/create-silence/pkg/models"
)

// Descriptor locates a template inside the template root.
type Descriptor struct {
	Dir        string // Template directory, e.g. "vue-typescript"
	ConfigFile string // silence config file name, empty for library
}

// HasConfig reports whether the template carries a silence config file.
func (d Descriptor) HasConfig() bool {
	return d.ConfigFile != ""
}

// Resolve maps a selection onto its template. Applications live in
// "<framework>" or "<framework>-typescript"; the library template has a
// single variant and no silence config.
func Resolve(sel *models.Selection) Descriptor {
	if !sel.Framework.IsApplication() {
		return Descriptor{Dir: string(sel.Framework)}
	}
	if sel.Language == models.LanguageTypeScript {
		return Descriptor{
			Dir:        string(sel.Framework) + "-" + string(models.LanguageTypeScript),
			ConfigFile: defs.SilenceConfigTS,
		}
	}
	return Descriptor{Dir: string(sel.Framework), ConfigFile: defs.SilenceConfigJS}
}
