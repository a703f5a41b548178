package cli

import (
	"context"
	"os"
)

// getSimpleText, getPassword, and getOptionalCoordinate are indirections
// used to facilitate testing. They point to interactive input helpers and
// can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getOptionalCoordinate = GetOptionalCoordinate

// Register prompts for a name, email, and password and creates a new
// account. Success or failure is reported to the user; the error is also
// returned for callers that care.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.auth.Register(ctx, name, email, string(password)); err != nil {
		printlnFn("Registration failed:", err.Error())
		return err
	}

	printlnFn("Registered! You can log in now.")
	return nil
}

// Login prompts for credentials and authenticates against the server.
// There is no offline login: without a server round trip there is no
// token to store.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	name, err := a.auth.Login(ctx, email, string(password))
	if err != nil {
		printlnFn("Login failed:", err.Error())
		return err
	}

	// Mode is owned by the online status watcher; a successful login
	// implies the next probe will flip it.
	printlnFn("Welcome,", name)
	return nil
}

// Logout clears the stored credential. Local data (drafts, cache,
// favorites) stays on disk.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		printlnFn("Logout failed:", err.Error())
		return err
	}
	printlnFn("Logged out.")
	return nil
}
