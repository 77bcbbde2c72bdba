package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/Fyandono/project-maintenance-system/internal/client/gateway"
	"github.com/Fyandono/project-maintenance-system/internal/client/perm"
)

// Login prompts for credentials, exchanges them for a token, and installs
// the session. A rejected login is reported as-is: the 401 policy does
// not apply to the login endpoint.
func (a *App) Login(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out, "Password")
	if err != nil {
		return err
	}

	token, err := a.auth.Login(ctx, username, password)
	if err != nil {
		msg := gateway.ServerMessage(err)
		if msg == "" {
			msg = "Login failed."
		}
		fmt.Fprintln(a.out, msg)
		return err
	}

	principal, err := a.session.Login(ctx, token)
	if err != nil {
		fmt.Fprintln(a.out, "Login failed: the server issued an unusable token.")
		return err
	}

	fmt.Fprintf(a.out, "Logged in as %s.\n", principal.Username)
	return nil
}

// Logout drops the session and the persisted token, and leaves any view.
func (a *App) Logout(ctx context.Context) error {
	a.stopSearch()
	a.current = nil
	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

// ChangePassword rotates the password. The backend invalidates the
// current token on success, so the console logs out immediately instead
// of waiting for the next 401.
func (a *App) ChangePassword(ctx context.Context) error {
	current, err := GetPassword(a.out, "Current password")
	if err != nil {
		return err
	}
	next, err := GetPassword(a.out, "New password")
	if err != nil {
		return err
	}
	confirm, err := GetPassword(a.out, "Repeat new password")
	if err != nil {
		return err
	}
	if next != confirm {
		fmt.Fprintln(a.out, "Passwords do not match.")
		return nil
	}

	if err := a.auth.ChangePassword(ctx, current, next); err != nil {
		msg := gateway.ServerMessage(err)
		if msg == "" {
			msg = "Could not change the password."
		}
		fmt.Fprintln(a.out, msg)
		return err
	}

	fmt.Fprintln(a.out, "Password changed. Please log in with the new password.")
	return a.Logout(ctx)
}

// WhoAmI prints the principal and its granted capabilities.
func (a *App) WhoAmI() {
	principal := a.session.Principal()
	if principal == nil {
		fmt.Fprintln(a.out, "Not logged in.")
		return
	}

	fmt.Fprintf(a.out, "%s (%s)\n", principal.Username, principal.Name)

	granted := make([]string, 0, len(principal.Capabilities))
	for c, ok := range principal.Capabilities {
		if ok {
			granted = append(granted, string(c))
		}
	}
	sort.Strings(granted)
	for _, c := range granted {
		fmt.Fprintf(a.out, "  %s\n", c)
	}
}

// can reports whether the logged-in principal holds the capability.
func (a *App) can(c perm.Capability) bool {
	return a.session.Principal().Can(c)
}
