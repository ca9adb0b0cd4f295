// Package errors provides classified error primitives used across the site builder.
//
// A ClassifiedError carries a category (config, validation, render, links, ...),
// a severity and structured context. The CLI adapter turns categories into exit
// codes so that a malformed navigation entry and a failed file write are
// distinguishable from a shell script.
//
// Example usage:
//
//	err := errors.ValidationError("navbar entry sets both path and url").
//		WithContext("field", "navbar.items[2]").
//		Build()
package errors
