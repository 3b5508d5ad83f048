// Package validation holds the client-side form rules. The server re-validates
// everything; these checks only exist to fail fast before a network call.
package validation

import (
	"errors"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	phoneRegex    = regexp.MustCompile(`^[6-9]\d{9}$`)
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	nameRegex     = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	upperRegex    = regexp.MustCompile(`[A-Z]`)
	lowerRegex    = regexp.MustCompile(`[a-z]`)
	digitRegex    = regexp.MustCompile(`\d`)
)

// LoginForm carries the login credentials as typed by the user.
type LoginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

// SignupForm carries the registration fields as typed by the user.
type SignupForm struct {
	Username        string `validate:"required,min=3,max=20,username_chars"`
	Name            string `validate:"required,min=2,max=50,name_chars"`
	Email           string `validate:"required,email"`
	PhoneNumber     string `validate:"required,indian_mobile"`
	Password        string `validate:"required,min=8,strong_password"`
	ConfirmPassword string `validate:"required,eqfield=Password"`
}

var loginMessages = map[string]string{
	"Email.required":    "Email is required",
	"Email.email":       "Invalid email address",
	"Password.required": "Password is required",
	"Password.min":      "Password must be at least 6 characters",
}

var signupMessages = map[string]string{
	"Username.required":         "Username is required",
	"Username.min":              "Username must be at least 3 characters",
	"Username.max":              "Username must be at most 20 characters",
	"Username.username_chars":   "Username can only contain letters, numbers and underscores",
	"Name.required":             "Name is required",
	"Name.min":                  "Name must be at least 2 characters",
	"Name.max":                  "Name must be at most 50 characters",
	"Name.name_chars":           "Name can only contain letters and spaces",
	"Email.required":            "Email is required",
	"Email.email":               "Invalid email address",
	"PhoneNumber.required":      "Phone number is required",
	"PhoneNumber.indian_mobile": "Enter a valid 10-digit mobile number",
	"Password.required":         "Password is required",
	"Password.min":              "Password must be at least 8 characters",
	"Password.strong_password":  "Password must contain an uppercase letter, a lowercase letter and a number",
	"ConfirmPassword.required":  "Please confirm your password",
	"ConfirmPassword.eqfield":   "Passwords do not match",
}

// Validator validates the login and signup forms and maps validator failures
// to the user-facing messages.
type Validator struct {
	validate *validator.Validate
}

func New() (*Validator, error) {
	v := validator.New(validator.WithRequiredStructEnabled())

	registrations := map[string]validator.Func{
		"indian_mobile": func(fl validator.FieldLevel) bool {
			return phoneRegex.MatchString(fl.Field().String())
		},
		"username_chars": func(fl validator.FieldLevel) bool {
			return usernameRegex.MatchString(fl.Field().String())
		},
		"name_chars": func(fl validator.FieldLevel) bool {
			return nameRegex.MatchString(fl.Field().String())
		},
		"strong_password": func(fl validator.FieldLevel) bool {
			pw := fl.Field().String()
			return upperRegex.MatchString(pw) && lowerRegex.MatchString(pw) && digitRegex.MatchString(pw)
		},
	}
	for tag, fn := range registrations {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return nil, err
		}
	}

	return &Validator{validate: v}, nil
}

// ValidateLogin returns the message for the first failing login field.
func (v *Validator) ValidateLogin(form LoginForm) error {
	return v.firstError(v.validate.Struct(form), loginMessages)
}

// ValidateSignup returns the message for the first failing signup field.
func (v *Validator) ValidateSignup(form SignupForm) error {
	return v.firstError(v.validate.Struct(form), signupMessages)
}

func (v *Validator) firstError(err error, messages map[string]string) error {
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}

	fe := fieldErrs[0]
	if msg, ok := messages[fe.Field()+"."+fe.Tag()]; ok {
		return errors.New(msg)
	}
	return fe
}
