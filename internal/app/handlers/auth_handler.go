package handlers

import (
	"context"
	"flag"

	"mobile-recharge-client/internal/pkg/models"
	"mobile-recharge-client/internal/pkg/validation"
)

// Login validates credentials locally, exchanges them for a session and
// reports who is now logged in.
func (h *Handler) Login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	fs.SetOutput(h.Out)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	role := fs.String("role", "", "optional role hint (user or admin)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := h.Validator.ValidateLogin(validation.LoginForm{
		Email:    *email,
		Password: *password,
	}); err != nil {
		return err
	}

	user, err := h.Session.Login(ctx, *email, *password, *role)
	if err != nil {
		return err
	}

	h.printf("Logged in as %s (%s)\n", user.Username, user.Role)
	return nil
}

// Register creates an account and reminds the user to log in; registration
// never establishes a session.
func (h *Handler) Register(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	fs.SetOutput(h.Out)
	username := fs.String("username", "", "desired username")
	name := fs.String("name", "", "full name")
	email := fs.String("email", "", "account email")
	phone := fs.String("phone", "", "10-digit mobile number")
	password := fs.String("password", "", "account password")
	confirm := fs.String("confirm", "", "password confirmation")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := h.Validator.ValidateSignup(validation.SignupForm{
		Username:        *username,
		Name:            *name,
		Email:           *email,
		PhoneNumber:     *phone,
		Password:        *password,
		ConfirmPassword: *confirm,
	}); err != nil {
		return err
	}

	resp, err := h.Session.Register(ctx, models.RegisterRequest{
		Username: *username,
		Name:     *name,
		Email:    *email,
		Phone:    *phone,
		Password: *password,
		Role:     "user",
	})
	if err != nil {
		return err
	}
	if !resp.Success && resp.Message != "" {
		h.printf("Registration failed: %s\n", resp.Message)
		return nil
	}

	h.printf("Account created. Log in to continue.\n")
	return nil
}

// Logout clears the session. Succeeds even when no session exists.
func (h *Handler) Logout(ctx context.Context, args []string) error {
	if err := h.Session.Logout(ctx); err != nil {
		return err
	}
	h.printf("Logged out.\n")
	return nil
}

// Whoami prints the cached session identity without a network call.
func (h *Handler) Whoami(ctx context.Context, args []string) error {
	user := h.Session.CurrentUser()
	if user == nil {
		h.printf("Not logged in.\n")
		return nil
	}
	h.printf("%s <%s> role=%s\n", user.Username, user.Email, user.Role)
	return nil
}

// Profile fetches the authoritative profile from the backend.
func (h *Handler) Profile(ctx context.Context, args []string) error {
	if _, err := h.requireLogin(); err != nil {
		return err
	}
	user, err := h.Users.GetProfile(ctx)
	if err != nil {
		return err
	}
	h.printf("Username: %s\nName:     %s\nEmail:    %s\nPhone:    %s\nRole:     %s\n",
		user.Username, user.Name, user.Email, user.Phone, user.Role)
	return nil
}

// Theme flips the persisted appearance preference.
func (h *Handler) Theme(ctx context.Context, args []string) error {
	next, err := h.Session.ToggleTheme(ctx)
	if err != nil {
		return err
	}
	h.printf("Theme set to %s.\n", next)
	return nil
}
