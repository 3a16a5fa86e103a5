// Package template materializes embedded project templates into a target
// directory. Every file is copied verbatim except package.json, whose name
// and devDependencies are rewritten, and the silence config file, whose
// preprocessor setting is rewritten.
package template

import "errors"

// Sentinel errors for the template package.
var (
	// ErrTemplateNotFound indicates the requested template or template file is missing.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrInvalidManifest indicates package.json could not be parsed as a JSON object.
	ErrInvalidManifest = errors.New("invalid package.json")

	// ErrPathTraversal indicates a template path escapes the project root.
	ErrPathTraversal = errors.New("path traversal detected")
)
