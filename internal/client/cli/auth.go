package cli

import (
	"context"
	"fmt"
)

// Login reads an access token and opens a session for its subject. The
// token comes from the myGaadi web sign-in; this client never sees the
// user's password.
func (a *App) Login(ctx context.Context) error {
	token, err := GetToken(a.out)
	if err != nil {
		a.log.Error(ctx, "reading token failed", "err", err)
		return err
	}

	userID, err := a.session.Login(ctx, token)
	if err != nil {
		fmt.Fprintf(a.out, "Login unsuccessful: %s\n", err.Error())
		return err
	}

	fmt.Fprintf(a.out, "Welcome back, %s (%s)\n", a.session.Store().Profile().Name, userID)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		a.log.Error(ctx, "logout failed", "err", err)
		return err
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}
