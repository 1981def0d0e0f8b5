// Package internal contains helper utilities that are intentionally private
// to soilauth, including secure challenge-code generation.
//
// # Sub-packages
//
//   - audit — async event dispatch (Dispatcher + Sink implementations)
//   - stores — key-value-backed challenge-code records for the reset and
//     verification flows
//
// # What this package must NOT do
//
//   - Export types that appear in the public soilauth API.
//   - Be imported by any package outside the soilauth module.
package internal
