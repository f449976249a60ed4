package entity

import (
	"strings"
	"time"
)

// User is the aggregate root for the account domain.
// Passwords are stored as bcrypt hashes in PasswordHash.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Profile      string
	Occupation   string
	Position     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Registration carries the proposed fields of a signup submission.
// Password and its confirmation travel in clear text only up to the
// workflow, where the hash is produced.
type Registration struct {
	Email                string
	Password             string
	PasswordConfirmation string
	Name                 string
	Profile              string
	Occupation           string
	Position             string
}

// MinPasswordLength is the minimum accepted credential length.
const MinPasswordLength = 6

// NormalizeEmail lower-cases and trims an email address. Uniqueness is
// enforced on the normalized form, so comparison is case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Validate collects every violated registration rule. Email uniqueness is
// a store concern and is checked by the workflow, not here.
func (r Registration) Validate() ValidationErrors {
	var errs ValidationErrors
	if blank(r.Email) {
		errs = append(errs, FieldError{Field: "email", Message: "can't be blank"})
	} else if !strings.Contains(r.Email, "@") {
		errs = append(errs, FieldError{Field: "email", Message: "is invalid"})
	}
	if blank(r.Password) {
		errs = append(errs, FieldError{Field: "password", Message: "can't be blank"})
	} else if len(r.Password) < MinPasswordLength {
		errs = append(errs, FieldError{Field: "password", Message: "is too short (minimum is 6 characters)"})
	}
	if r.PasswordConfirmation != r.Password {
		errs = append(errs, FieldError{Field: "password_confirmation", Message: "doesn't match Password"})
	}
	if blank(r.Name) {
		errs = append(errs, FieldError{Field: "name", Message: "can't be blank"})
	}
	if blank(r.Profile) {
		errs = append(errs, FieldError{Field: "profile", Message: "can't be blank"})
	}
	if blank(r.Occupation) {
		errs = append(errs, FieldError{Field: "occupation", Message: "can't be blank"})
	}
	if blank(r.Position) {
		errs = append(errs, FieldError{Field: "position", Message: "can't be blank"})
	}
	return errs
}
