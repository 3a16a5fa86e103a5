package template

import (
	"testing"

	"github.com/silence-cli/create-silence/pkg/models"
)

func TestPatchConfig(t *testing.T) {
	const src = "css: {\n    preprocessor: \"none\"\n}\n"

	tests := []struct {
		name string
		in   string
		pre  models.Preprocessor
		want string
	}{
		{"sass", src, models.PreprocessorSass, "css: {\n    preprocessor: \"sass\"\n}\n"},
		{"less", src, models.PreprocessorLess, "css: {\n    preprocessor: \"less\"\n}\n"},
		{"none_unchanged", src, models.PreprocessorNone, src},
		{"empty_unchanged", src, "", src},
		{"no_placeholder", "css: {}\n", models.PreprocessorSass, "css: {}\n"},
		{
			"first_occurrence_only",
			`preprocessor: "none" // preprocessor: "none"`,
			models.PreprocessorLess,
			`preprocessor: "less" // preprocessor: "none"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := string(PatchConfig([]byte(tt.in), tt.pre))
			if got != tt.want {
				t.Errorf("PatchConfig() = %q, want %q", got, tt.want)
			}
		})
	}
}
