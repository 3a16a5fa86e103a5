package template

import (
	"bytes"

	"github.com/silence-cli/create-silence/pkg/models"
)

// preprocessorPlaceholder is the preprocessor setting shipped in every
// application template.
const preprocessorPlaceholder = `preprocessor: "none"`

// PatchConfig replaces the first preprocessor placeholder in a silence
// config file with the chosen preprocessor. Content is returned unchanged
// when no preprocessor is enabled or the placeholder is absent.
func PatchConfig(data []byte, pre models.Preprocessor) []byte {
	if !pre.Enabled() {
		return data
	}
	replacement := []byte(`preprocessor: "` + string(pre) + `"`)
	return bytes.Replace(data, []byte(preprocessorPlaceholder), replacement, 1)
}
