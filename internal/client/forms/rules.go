package forms

import "regexp"

// Field bounds shared by the login and registration rule sets.
const (
	EmailMinLength = 3
	EmailMaxLength = 255

	PasswordMinLength = 8
	PasswordMaxLength = 128

	NameMinLength = 2
	NameMaxLength = 50
)

// emailPattern is an RFC-5322-style check: a permissive local part, then
// one or more dot-separated DNS labels of 1-63 alphanumeric characters with
// optional internal hyphens.
var emailPattern = regexp.MustCompile(
	"^[a-zA-Z0-9.!#$%&'*+/=?^_`{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?" +
		`(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$`)

// namePattern allows letters, whitespace, hyphens and apostrophes.
var namePattern = regexp.MustCompile(`^[a-zA-Z\s'-]+$`)

// Password character classes. RE2 has no lookahead, so each class is checked
// on its own; registration requires all four.
var (
	hasLowercase   = regexp.MustCompile(`[a-z]`)
	hasUppercase   = regexp.MustCompile(`[A-Z]`)
	hasDigit       = regexp.MustCompile(`\d`)
	hasSpecialChar = regexp.MustCompile(`[!@#$%^&*(),.?":{}|<>]`)
)
