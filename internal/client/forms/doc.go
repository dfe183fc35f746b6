// Package forms implements field-level validation for the login and
// registration forms.
//
// # Overview
//
// Two independent rule sets exist on purpose:
//
//  1. Login rules are deliberately loose: the password check enforces only
//     length bounds so the login screen never reveals the complexity policy.
//  2. Registration rules are strict: names are pattern-checked, passwords must
//     satisfy all four character classes, and the confirmation must match.
//
// Every validator is a pure function returning an error message, where the
// empty string means "valid". Form-level helpers aggregate per-field results
// into fixed-shape error records (LoginErrors, RegisterErrors); a validation
// pass always recomputes the whole record, never merges into a previous one.
//
// The email pattern is shared between both rule sets, but only the login rules
// apply length bounds to it.
package forms
