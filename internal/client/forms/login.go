package forms

// Login form error messages.
const (
	MsgLoginEmailRequired    = "Email is required"
	MsgLoginEmailInvalid     = "Please enter a valid email address"
	MsgLoginPasswordRequired = "Password is required"
	MsgLoginPasswordInvalid  = "Password must be at least 8 characters long"
)

// LoginForm carries raw login input. Remember travels with the login request
// and never affects validation.
type LoginForm struct {
	Email    string
	Password string
	Remember bool
}

// LoginErrors is the fixed-shape validation result for the login form.
// An empty string means the field is valid.
type LoginErrors struct {
	Email    string
	Password string
	General  string
}

// Ok reports whether the form passed validation.
func (e LoginErrors) Ok() bool {
	return e == LoginErrors{}
}

// ValidateLoginEmail checks the login email: required, length within
// [EmailMinLength, EmailMaxLength], and matching the email pattern.
func ValidateLoginEmail(email string) string {
	if email == "" {
		return MsgLoginEmailRequired
	}
	if len(email) < EmailMinLength || len(email) > EmailMaxLength {
		return MsgLoginEmailInvalid
	}
	if !emailPattern.MatchString(email) {
		return MsgLoginEmailInvalid
	}
	return ""
}

// ValidateLoginPassword checks the login password: required and length within
// [PasswordMinLength, PasswordMaxLength]. No complexity rules here, see the
// package doc.
func ValidateLoginPassword(password string) string {
	if password == "" {
		return MsgLoginPasswordRequired
	}
	if len(password) < PasswordMinLength || len(password) > PasswordMaxLength {
		return MsgLoginPasswordInvalid
	}
	return ""
}

// ValidateLoginForm runs every login field validator and returns the full
// error record. The result replaces any previous one.
func ValidateLoginForm(f LoginForm) LoginErrors {
	return LoginErrors{
		Email:    ValidateLoginEmail(f.Email),
		Password: ValidateLoginPassword(f.Password),
	}
}
