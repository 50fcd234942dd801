package cli

import (
	"context"
	"errors"
	"os"

	"github.com/arfidakai/Rapihin.ai/internal/common"
)

// getSimpleText, getPassword and chooseOption are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var chooseOption = ChooseOption

// Register prompts for a name, email and password (twice) and creates a new
// account. On success the user is logged in right away; the server issues a
// token with the registration response.
//
// Password bytes are wiped before returning. Validation failures are printed
// for the user and returned to the caller.
func (a *App) Register(ctx context.Context) error {
	fullName, err := getSimpleText(a.reader, "Enter your full name", os.Stdout)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password: ", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword("Repeat password: ", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	session, err := a.auth.Register(ctx, email, password, confirm, fullName)
	if err != nil {
		printlnFn(registerFailureMessage(err))
		return err
	}

	printlnFn("Welcome,", session.User.FullName)
	return nil
}

// Login prompts for credentials and authenticates against the server.
// The password is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password: ", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	session, err := a.auth.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			printlnFn("Incorrect email or password.")
		} else {
			printlnFn("Login failed:", err.Error())
		}
		return err
	}

	printlnFn("Welcome back,", session.User.FullName)
	return nil
}

// Logout drops the session locally. The server keeps no session state, so
// no request is made.
func (a *App) Logout(ctx context.Context) error {
	a.auth.Logout(ctx)
	printlnFn("Logged out.")
	return nil
}

func registerFailureMessage(err error) string {
	switch {
	case errors.Is(err, common.ErrPasswordTooShort):
		return "Password must be at least 6 characters."
	case errors.Is(err, common.ErrPasswordMismatch):
		return "Passwords do not match."
	case errors.Is(err, common.ErrEmailTaken):
		return "This email is already registered."
	default:
		return "Registration failed: " + err.Error()
	}
}
