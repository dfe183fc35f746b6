package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/storedash/internal/client/forms"
)

// getSimpleText, getPassword and getYesNo are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getYesNo      = GetYesNo
)

// printFieldError shows one inline validation message next to its field.
func printFieldError(field, msg string) {
	if msg != "" {
		printlnFn(fmt.Sprintf("  %s: %s", field, msg))
	}
}

// Login prompts for credentials, validates them with the login rules, and
// only on a clean form dispatches the network login. Field errors are shown
// inline; operation failures become a single banner line.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	defer wipeBytes(password)

	remember, err := getYesNo(a.reader, "Remember me?", os.Stdout)
	if err != nil {
		return err
	}

	form := forms.LoginForm{Email: email, Password: string(password), Remember: remember}
	if errs := forms.ValidateLoginForm(form); !errs.Ok() {
		printFieldError("email", errs.Email)
		printFieldError("password", errs.Password)
		return nil
	}

	if err := a.store.Login(ctx, form.Email, form.Password, form.Remember); err != nil {
		printlnFn(err.Error())
		return nil
	}

	printlnFn("Welcome back!")
	return nil
}

// Register prompts for the registration fields, validates them with the
// stricter registration rules, and dispatches on a clean form. The password
// confirmation and the terms flag never leave the client.
func (a *App) Register(ctx context.Context) error {
	firstName, err := getSimpleText(a.reader, "Enter first name", os.Stdout)
	if err != nil {
		return err
	}
	lastName, err := getSimpleText(a.reader, "Enter last name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	defer wipeBytes(password)

	confirm, err := getPassword("Confirm password", os.Stdout)
	if err != nil {
		return err
	}
	defer wipeBytes(confirm)

	terms, err := getYesNo(a.reader, "Accept the Terms of Service and Privacy Policy?", os.Stdout)
	if err != nil {
		return err
	}

	form := forms.RegisterForm{
		FirstName:       firstName,
		LastName:        lastName,
		Email:           email,
		Password:        string(password),
		ConfirmPassword: string(confirm),
		AcceptTerms:     terms,
	}
	if errs := forms.ValidateRegisterForm(form); !errs.Ok() {
		printFieldError("first name", errs.FirstName)
		printFieldError("last name", errs.LastName)
		printFieldError("email", errs.Email)
		printFieldError("password", errs.Password)
		printFieldError("confirm password", errs.ConfirmPassword)
		if errs.General != "" {
			printlnFn(errs.General)
		}
		return nil
	}

	if err := a.store.Register(ctx, form.FirstName, form.LastName, form.Email, form.Password); err != nil {
		printlnFn(err.Error())
		return nil
	}

	printlnFn("Account created, you are signed in.")
	return nil
}

// Logout clears the session, best-effort-notifying the server. It never fails.
func (a *App) Logout(ctx context.Context) error {
	a.store.Logout(ctx)
	printlnFn("Signed out.")
	return nil
}

// Refresh exchanges the refresh token for a fresh pair. Failures drop the
// session, so the user lands back at the anonymous prompt.
func (a *App) Refresh(ctx context.Context) error {
	if err := a.store.Refresh(ctx); err != nil {
		printlnFn(err.Error())
		return nil
	}
	printlnFn("Session refreshed.")
	return nil
}
