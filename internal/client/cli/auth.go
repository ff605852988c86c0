package cli

import (
	"context"
	"os"

	"github.com/sunvoyage/portal/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts the user for an email and password and authenticates against
// the portal. On success the session is persisted, bound to the API client,
// and the heartbeat monitor is started. The password byte slice is securely
// wiped before returning.
func (a *App) Login(ctx context.Context) error {
	if a.isLoggedIn() {
		printlnFn("Already logged in, use 'logout' first.")
		return nil
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	s, err := a.authService.Login(ctx, email, string(password))
	if err != nil {
		a.logger.Warn(ctx, "login unsuccessful", "error", err.Error())
		printlnFn("Login failed.")
		return err
	}

	a.setSession(s)
	if err := a.monitor.Start(ctx); err != nil {
		a.logger.Warn(ctx, "failed to start session monitor", "error", err.Error())
	}
	printlnFn("Login successful!")
	return nil
}

// Logout runs the shared logout routine: the same path the heartbeat monitor
// takes when the server invalidates the session.
func (a *App) Logout(ctx context.Context) error {
	a.logout.Run(ctx)
	return nil
}
