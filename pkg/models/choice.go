package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidChoice indicates a value outside of an enumeration.
var ErrInvalidChoice = errors.New("invalid choice")

// Framework identifies the kind of project to scaffold.
type Framework string

const (
	FrameworkVue     Framework = "vue"
	FrameworkReact   Framework = "react"
	FrameworkLibrary Framework = "library"
)

// Frameworks returns all frameworks in prompt order.
func Frameworks() []Framework {
	return []Framework{FrameworkVue, FrameworkReact, FrameworkLibrary}
}

// IsValid reports whether f is a known framework.
func (f Framework) IsValid() bool {
	switch f {
	case FrameworkVue, FrameworkReact, FrameworkLibrary:
		return true
	}
	return false
}

// IsApplication reports whether the framework produces an application with
// a silence config file, as opposed to a plain library bundle.
func (f Framework) IsApplication() bool {
	return f == FrameworkVue || f == FrameworkReact
}

// ParseFramework converts a CLI value into a Framework.
func ParseFramework(s string) (Framework, error) {
	f := Framework(strings.TrimSpace(s))
	if !f.IsValid() {
		return "", fmt.Errorf("%w: framework %q", ErrInvalidChoice, s)
	}
	return f, nil
}

// Language is the source language variant of an application template.
type Language string

const (
	LanguageJavaScript Language = "javascript"
	LanguageTypeScript Language = "typescript"
)

// Languages returns all language variants in prompt order.
func Languages() []Language {
	return []Language{LanguageJavaScript, LanguageTypeScript}
}

// IsValid reports whether l is a known language variant.
func (l Language) IsValid() bool {
	return l == LanguageJavaScript || l == LanguageTypeScript
}

// ParseLanguage converts a CLI value into a Language.
func ParseLanguage(s string) (Language, error) {
	l := Language(strings.TrimSpace(s))
	if !l.IsValid() {
		return "", fmt.Errorf("%w: language %q", ErrInvalidChoice, s)
	}
	return l, nil
}

// Preprocessor is the CSS preprocessor wired into an application template.
type Preprocessor string

const (
	PreprocessorSass Preprocessor = "sass"
	PreprocessorLess Preprocessor = "less"
	PreprocessorNone Preprocessor = "none"
)

// Preprocessors returns all preprocessors in prompt order.
func Preprocessors() []Preprocessor {
	return []Preprocessor{PreprocessorSass, PreprocessorLess, PreprocessorNone}
}

// IsValid reports whether p is a known preprocessor.
func (p Preprocessor) IsValid() bool {
	switch p {
	case PreprocessorSass, PreprocessorLess, PreprocessorNone:
		return true
	}
	return false
}

// Enabled reports whether p adds anything to the generated project.
// The zero value behaves like PreprocessorNone.
func (p Preprocessor) Enabled() bool {
	return p == PreprocessorSass || p == PreprocessorLess
}

// ParsePreprocessor converts a CLI value into a Preprocessor.
func ParsePreprocessor(s string) (Preprocessor, error) {
	p := Preprocessor(strings.TrimSpace(s))
	if !p.IsValid() {
		return "", fmt.Errorf("%w: preprocessor %q", ErrInvalidChoice, s)
	}
	return p, nil
}

// Strings converts a slice of string-based enum values to plain strings.
func Strings[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
