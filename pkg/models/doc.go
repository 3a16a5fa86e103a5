// Package models provides the shared data models for create-silence.
//
// # Choices
//
// A scaffold is described by three enumerations:
//   - [Framework]: vue, react or library
//   - [Language]: javascript or typescript (not used by library)
//   - [Preprocessor]: sass, less or none (not used by library)
//
// Each enumeration has a Parse function that accepts the CLI spelling:
//
//	lang, err := models.ParseLanguage("typescript")
//	if err != nil {
//	    return err
//	}
//
// # Selection
//
// [Selection] aggregates all answers gathered for a single invocation.
// It is built once and consumed immediately by the template materializer.
package models
