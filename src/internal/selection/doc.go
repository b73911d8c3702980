// Package selection models one submission of per-interface network choices.
//
// The presentation layer (web form or CLI input file) collects raw field
// values for up to three interface kinds: ethernet, wifi and cellular. This
// package holds the typed model of that submission plus the rules that make
// it internally consistent: strict IPv4/CIDR address validation, per-mode
// completeness checks and route-metric priority uniqueness.
//
// # Data Model
//
//   - InterfaceKind / AddressingMode: closed enums with strict text decoding
//   - InterfaceSelection: raw choices for one interface
//   - SelectionSet: one complete submission, at most one selection per kind
//   - PriorityRegistry: uniqueness tracking for route-metric priorities
//
// # Validation
//
// SelectionSet.Validate aggregates every problem in the submission into one
// errors.ValidationErrors value instead of failing fast, so the caller can
// display all offending fields at once. A valid set is the precondition for
// document assembly; assembly never starts on a set that failed validation.
//
// The package is stateless between submissions. A fresh PriorityRegistry is
// used per validation pass and nothing is retained after Validate returns.
package selection
