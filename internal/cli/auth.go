package cli

import (
	"context"
	"fmt"

	"github.com/neximprove/portal/internal/models"
	"github.com/neximprove/portal/internal/portal"
)

func (a *App) Register(ctx context.Context) {
	fullName, err := GetSimpleText(a.reader, "Enter full name", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	password, err := GetPassword(a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	if fullName == "" || email == "" || password == "" {
		fmt.Fprintln(a.out, "All fields are required")
		return
	}

	res := a.facade.Service().RegisterUser(ctx, portal.RegisterData{
		FullName: fullName,
		Email:    email,
		Password: password,
	})
	fmt.Fprintln(a.out, res.Message)
}

func (a *App) Login(ctx context.Context) {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	password, err := GetPassword(a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	res := a.facade.Login(ctx, email, password)
	if !res.Success {
		fmt.Fprintln(a.out, res.Message)
		return
	}
	fmt.Fprintf(a.out, "Welcome back, %s!\n", res.User.FullName)
}

func (a *App) Logout(ctx context.Context) {
	a.facade.Logout(ctx)
	fmt.Fprintln(a.out, "Logged out")
}

func (a *App) Whoami(ctx context.Context) {
	session := a.facade.Service().GetCurrentUser(ctx)
	if session == nil {
		fmt.Fprintln(a.out, "Not logged in")
		return
	}
	fmt.Fprintf(a.out, "%s <%s> (logged in at %s)\n", session.FullName, session.Email, session.LoggedInAt)
}

// Profile updates the logged-in user's details. Empty answers keep the
// current value.
func (a *App) Profile(ctx context.Context) {
	session := a.facade.Service().GetCurrentUser(ctx)
	if session == nil {
		fmt.Fprintln(a.out, "Not logged in")
		return
	}

	upd := models.UserUpdate{}
	if v, err := GetSimpleText(a.reader, fmt.Sprintf("Full name [%s] (empty to keep)", session.FullName), a.out); err == nil && v != "" {
		upd.FullName = &v
	}
	if v, err := GetSimpleText(a.reader, fmt.Sprintf("Email [%s] (empty to keep)", session.Email), a.out); err == nil && v != "" {
		upd.Email = &v
	}
	if v, err := GetSimpleText(a.reader, "New password (empty to keep)", a.out); err == nil && v != "" {
		upd.Password = &v
	}

	res := a.facade.Service().UpdateUser(ctx, session.ID, upd)
	if !res.Success {
		fmt.Fprintln(a.out, res.Message)
		return
	}
	fmt.Fprintln(a.out, "Profile updated")
}
