package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/moonui/moonui/internal/client/auth"
	"github.com/moonui/moonui/internal/client/validation"
	"github.com/moonui/moonui/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped in
// tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for a username and password (with confirmation),
// validates the form locally, and creates an account. On success the new
// account is immediately logged in. Password buffers are wiped before
// returning.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword("Confirm password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	if r := validation.RegisterForm(username, string(password), string(confirm)); !r.Valid {
		return a.dialog.Error(ctx, r.Message)
	}

	ok, msg := a.session.Register(ctx, auth.RegisterCredentials{
		Username:        username,
		Password:        string(password),
		ConfirmPassword: string(confirm),
	})
	if !ok {
		return a.dialog.Error(ctx, msg)
	}
	return a.dialog.Info(ctx, msg)
}

// Login prompts for credentials and a remember-me choice and starts a
// session on success.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if r := validation.LoginForm(username, string(password)); !r.Valid {
		return a.dialog.Error(ctx, r.Message)
	}

	remember, err := a.dialog.Ask(ctx, "Stay logged in?")
	if err != nil {
		return err
	}

	ok, msg := a.session.Login(ctx, auth.LoginCredentials{
		Username:   username,
		Password:   string(password),
		RememberMe: remember,
	})
	if !ok {
		return a.dialog.Error(ctx, msg)
	}
	return a.dialog.Info(ctx, msg)
}

// ChangePassword prompts for a new password and updates the stored account
// record through the session, keeping the persisted copy and the in-memory
// snapshot in step.
func (a *App) ChangePassword(ctx context.Context) error {
	user := a.session.CurrentUser()
	if user == nil {
		return a.dialog.Error(ctx, "not logged in")
	}

	password, err := getPassword("New password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword("Confirm new password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	if r := validation.Password(string(password)); !r.Valid {
		return a.dialog.Error(ctx, r.Message)
	}
	if r := validation.PasswordMatch(string(password), string(confirm)); !r.Valid {
		return a.dialog.Error(ctx, r.Message)
	}

	updated := *user
	updated.PasswordHash = auth.EncodePassword(string(password))
	if err := a.session.UpdateUser(ctx, updated); err != nil {
		return a.dialog.Error(ctx, "failed to update password, please try again")
	}
	return a.dialog.Info(ctx, "password updated")
}

// Logout ends the session. Safe to call when not logged in.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	return a.dialog.Info(ctx, "logged out")
}

// Whoami prints the authenticated user.
func (a *App) Whoami(ctx context.Context) error {
	user := a.session.CurrentUser()
	if user == nil {
		return a.dialog.Info(ctx, "not logged in")
	}
	created := time.UnixMilli(user.CreatedAt).Format("2006-01-02 15:04")
	return a.dialog.Info(ctx, fmt.Sprintf("%s (id %s, registered %s)", user.Username, user.ID, created))
}

// TokenInfo prints how long the session token stays valid.
func (a *App) TokenInfo(ctx context.Context) error {
	token := a.session.Token()
	if token == "" {
		return a.dialog.Info(ctx, "not logged in")
	}

	remaining := auth.TokenRemainingTime(token)
	msg := fmt.Sprintf("token valid for %s", remaining.Round(time.Minute))
	if auth.IsTokenExpiringSoon(token) {
		msg += " (expiring soon, consider logging in again)"
	}
	return a.dialog.Info(ctx, msg)
}
