// Package validation checks credential input before any service call.
// Failures are human-readable messages, never errors.
package validation

import (
	"regexp"
	"strings"
)

// Result reports whether input passed validation and, if not, why.
type Result struct {
	Valid   bool
	Message string
}

func ok() Result { return Result{Valid: true} }

func fail(message string) Result { return Result{Message: message} }

var usernameRe = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]*$`)

// Username rules: 3-20 characters, starts with a letter, letters/digits/
// underscores only.
func Username(username string) Result {
	if strings.TrimSpace(username) == "" {
		return fail("username must not be empty")
	}
	if len(username) < 3 {
		return fail("username needs at least 3 characters")
	}
	if len(username) > 20 {
		return fail("username must not exceed 20 characters")
	}
	if !usernameRe.MatchString(username) {
		if username[0] < 'A' || (username[0] > 'Z' && username[0] < 'a') || username[0] > 'z' {
			return fail("username must start with a letter")
		}
		return fail("username may only contain letters, digits and underscores")
	}
	return ok()
}

// Password rules: 6-50 characters with at least one letter and one digit.
func Password(password string) Result {
	if strings.TrimSpace(password) == "" {
		return fail("password must not be empty")
	}
	if len(password) < 6 {
		return fail("password needs at least 6 characters")
	}
	if len(password) > 50 {
		return fail("password must not exceed 50 characters")
	}
	if !strings.ContainsFunc(password, isLetter) {
		return fail("password must contain at least one letter")
	}
	if !strings.ContainsAny(password, "0123456789") {
		return fail("password must contain at least one digit")
	}
	return ok()
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// PasswordMatch checks the confirmation field.
func PasswordMatch(password, confirm string) Result {
	if password != confirm {
		return fail("passwords do not match")
	}
	return ok()
}

// RegisterForm validates all registration fields, reporting the first
// failure.
func RegisterForm(username, password, confirm string) Result {
	if r := Username(username); !r.Valid {
		return r
	}
	if r := Password(password); !r.Valid {
		return r
	}
	return PasswordMatch(password, confirm)
}

// LoginForm only requires both fields to be present; detailed rules apply
// at registration time.
func LoginForm(username, password string) Result {
	if strings.TrimSpace(username) == "" {
		return fail("please enter a username")
	}
	if strings.TrimSpace(password) == "" {
		return fail("please enter a password")
	}
	return ok()
}
