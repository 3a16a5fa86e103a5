package template

import (
	"testing"

	"github.com/silence-cli/create-silence/pkg/models"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		sel  models.Selection
		want Descriptor
	}{
		{
			"vue_javascript",
			models.Selection{Framework: models.FrameworkVue, Language: models.LanguageJavaScript},
			Descriptor{Dir: "vue", ConfigFile: "silence.config.js"},
		},
		{
			"vue_typescript",
			models.Selection{Framework: models.FrameworkVue, Language: models.LanguageTypeScript},
			Descriptor{Dir: "vue-typescript", ConfigFile: "silence.config.ts"},
		},
		{
			"react_javascript",
			models.Selection{Framework: models.FrameworkReact, Language: models.LanguageJavaScript},
			Descriptor{Dir: "react", ConfigFile: "silence.config.js"},
		},
		{
			"react_typescript",
			models.Selection{Framework: models.FrameworkReact, Language: models.LanguageTypeScript},
			Descriptor{Dir: "react-typescript", ConfigFile: "silence.config.ts"},
		},
		{
			"library",
			models.Selection{Framework: models.FrameworkLibrary},
			Descriptor{Dir: "library"},
		},
		{
			"library_ignores_language",
			models.Selection{Framework: models.FrameworkLibrary, Language: models.LanguageTypeScript},
			Descriptor{Dir: "library"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(&tt.sel)
			if got != tt.want {
				t.Errorf("Resolve() = %+v, want %+v", got, tt.want)
			}
			if got.HasConfig() != (tt.want.ConfigFile != "") {
				t.Errorf("HasConfig() = %v", got.HasConfig())
			}
		})
	}
}
