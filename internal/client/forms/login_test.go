package forms

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateLoginEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  string
	}{
		{"empty returns required", "", MsgLoginEmailRequired},
		{"valid address", "a@b.com", ""},
		{"valid with plus tag", "user+tag@example.co.uk", ""},
		{"no at sign", "not-an-email", MsgLoginEmailInvalid},
		{"too short", "a@", MsgLoginEmailInvalid},
		{"too long", strings.Repeat("a", 250) + "@example.com", MsgLoginEmailInvalid},
		{"label starts with hyphen", "user@-example.com", MsgLoginEmailInvalid},
		{"label ends with hyphen", "user@example-.com", MsgLoginEmailInvalid},
		{"internal hyphen ok", "user@my-site.com", ""},
		{"empty label", "user@example..com", MsgLoginEmailInvalid},
		{"space in local part", "us er@example.com", MsgLoginEmailInvalid},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ValidateLoginEmail(tc.email))
		})
	}
}

func TestValidateLoginPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     string
	}{
		{"empty returns required", "", MsgLoginPasswordRequired},
		{"seven chars too short", "1234567", MsgLoginPasswordInvalid},
		{"eight chars ok", "12345678", ""},
		{"no complexity enforced at login", "aaaaaaaa", ""},
		{"128 chars ok", strings.Repeat("x", 128), ""},
		{"129 chars too long", strings.Repeat("x", 129), MsgLoginPasswordInvalid},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ValidateLoginPassword(tc.password))
		})
	}
}

func TestValidateLoginForm(t *testing.T) {
	t.Run("valid form has no errors", func(t *testing.T) {
		errs := ValidateLoginForm(LoginForm{Email: "a@b.com", Password: "password1"})
		assert.True(t, errs.Ok())
	})

	t.Run("all fields validated", func(t *testing.T) {
		errs := ValidateLoginForm(LoginForm{})
		assert.Equal(t, MsgLoginEmailRequired, errs.Email)
		assert.Equal(t, MsgLoginPasswordRequired, errs.Password)
		assert.False(t, errs.Ok())
	})

	t.Run("remember flag does not affect validation", func(t *testing.T) {
		errs := ValidateLoginForm(LoginForm{Email: "a@b.com", Password: "password1", Remember: true})
		assert.True(t, errs.Ok())
	})
}
