// Package validation is a declarative, pure form-validation engine.
//
// Callers describe per-field constraints with a [Schema] and evaluate it
// against a flat string-keyed value map. Evaluation has no side effects and
// no hidden state: identical inputs always produce identical error maps.
// Localized error text is resolved through the [Messages] collaborator so the
// engine itself carries no locale content.
package validation
