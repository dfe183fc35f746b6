package forms

import (
	"fmt"
	"strings"
)

// Registration form error messages.
const (
	MsgFirstNameRequired       = "First name is required"
	MsgLastNameRequired        = "Last name is required"
	MsgRegisterEmailRequired   = "Email address is required"
	MsgRegisterEmailInvalid    = "Please enter a valid email address"
	MsgPasswordRequired        = "Password is required"
	MsgConfirmRequired         = "Password confirmation is required"
	MsgConfirmMismatch         = "Passwords do not match"
	MsgTermsRequired           = "You must accept the Terms of Service and Privacy Policy to continue"
	MsgFirstNameInvalid        = "First name must contain only letters, spaces, hyphens, and apostrophes"
	MsgLastNameInvalid         = "Last name must contain only letters, spaces, hyphens, and apostrophes"
	MsgPasswordComplexity      = "Password must include uppercase letters, lowercase letters, numbers, and special characters"
)

var (
	MsgPasswordLength = fmt.Sprintf("Password must be between %d and %d characters", PasswordMinLength, PasswordMaxLength)
	MsgNameTooShort   = fmt.Sprintf("Name must be at least %d characters", NameMinLength)
	MsgNameTooLong    = fmt.Sprintf("Name must not exceed %d characters", NameMaxLength)
)

// NameField selects which field name appears in name validation messages.
// It is a message-selection parameter only, never a behavioral branch.
type NameField int

const (
	FirstName NameField = iota
	LastName
)

// RegisterForm carries raw registration input. ConfirmPassword and AcceptTerms
// are client-side only and never leave the process.
type RegisterForm struct {
	FirstName       string
	LastName        string
	Email           string
	Password        string
	ConfirmPassword string
	AcceptTerms     bool
}

// RegisterErrors is the fixed-shape validation result for the registration
// form. An empty string means the field is valid. General holds non-field
// errors such as the terms-acceptance failure.
type RegisterErrors struct {
	FirstName       string
	LastName        string
	Email           string
	Password        string
	ConfirmPassword string
	General         string
}

// Ok reports whether the form passed validation.
func (e RegisterErrors) Ok() bool {
	return e == RegisterErrors{}
}

// ValidateName trims the value and checks: required, trimmed length within
// [NameMinLength, NameMaxLength], and the name character set.
func ValidateName(value string, which NameField) string {
	trimmed := strings.TrimSpace(value)

	if trimmed == "" {
		if which == FirstName {
			return MsgFirstNameRequired
		}
		return MsgLastNameRequired
	}
	if len(trimmed) < NameMinLength {
		return MsgNameTooShort
	}
	if len(trimmed) > NameMaxLength {
		return MsgNameTooLong
	}
	if !namePattern.MatchString(trimmed) {
		if which == FirstName {
			return MsgFirstNameInvalid
		}
		return MsgLastNameInvalid
	}
	return ""
}

// ValidateRegisterEmail trims the value and checks it against the shared email
// pattern. Unlike the login rules there are no length bounds; the asymmetry is
// inherited behavior, kept as-is.
func ValidateRegisterEmail(value string) string {
	trimmed := strings.TrimSpace(value)

	if trimmed == "" {
		return MsgRegisterEmailRequired
	}
	if !emailPattern.MatchString(trimmed) {
		return MsgRegisterEmailInvalid
	}
	return ""
}

// ValidateRegisterPassword checks: required, length within
// [PasswordMinLength, PasswordMaxLength], then complexity. All four character
// classes are evaluated independently but reported as one combined message.
func ValidateRegisterPassword(value string) string {
	if value == "" {
		return MsgPasswordRequired
	}
	if len(value) < PasswordMinLength || len(value) > PasswordMaxLength {
		return MsgPasswordLength
	}

	lower := hasLowercase.MatchString(value)
	upper := hasUppercase.MatchString(value)
	digit := hasDigit.MatchString(value)
	special := hasSpecialChar.MatchString(value)

	if !lower || !upper || !digit || !special {
		return MsgPasswordComplexity
	}
	return ""
}

// ValidateConfirmPassword checks that the confirmation is present and equal to
// the password. Comparison is exact and case-sensitive.
func ValidateConfirmPassword(password, confirm string) string {
	if confirm == "" {
		return MsgConfirmRequired
	}
	if confirm != password {
		return MsgConfirmMismatch
	}
	return ""
}

// ValidateRegisterForm runs every registration field validator and returns the
// full error record. A missing terms acceptance is a general error, not a
// field error. The result replaces any previous one.
func ValidateRegisterForm(f RegisterForm) RegisterErrors {
	errs := RegisterErrors{
		FirstName:       ValidateName(f.FirstName, FirstName),
		LastName:        ValidateName(f.LastName, LastName),
		Email:           ValidateRegisterEmail(f.Email),
		Password:        ValidateRegisterPassword(f.Password),
		ConfirmPassword: ValidateConfirmPassword(f.Password, f.ConfirmPassword),
	}
	if !f.AcceptTerms {
		errs.General = MsgTermsRequired
	}
	return errs
}
