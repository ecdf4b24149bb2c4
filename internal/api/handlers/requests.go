package handlers

import (
	"net/mail"
	"strings"
)

const minPasswordLen = 6

type RegisterRequest struct {
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
}

func (r RegisterRequest) Validate() []FieldError {
	var errs []FieldError
	if !validEmail(r.Email) {
		errs = append(errs, FieldError{Field: "email", Message: "Valid email is required"})
	}
	if len(r.Password) < minPasswordLen {
		errs = append(errs, FieldError{Field: "password", Message: "Password must be at least 6 characters"})
	}
	return errs
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() []FieldError {
	var errs []FieldError
	if !validEmail(r.Email) {
		errs = append(errs, FieldError{Field: "email", Message: "Valid email is required"})
	}
	if r.Password == "" {
		errs = append(errs, FieldError{Field: "password", Message: "Password is required"})
	}
	return errs
}

type SSOLoginRequest struct {
	Token string `json:"token"`
}

func (r SSOLoginRequest) Validate() []FieldError {
	if strings.TrimSpace(r.Token) == "" {
		return []FieldError{{Field: "token", Message: "Token is required"}}
	}
	return nil
}

type ContactRequest struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   *string `json:"phone,omitempty"`
	Service *string `json:"service,omitempty"`
	Message *string `json:"message,omitempty"`
}

func (r ContactRequest) Validate() []FieldError {
	var errs []FieldError
	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: "Name is required"})
	}
	if !validEmail(r.Email) {
		errs = append(errs, FieldError{Field: "email", Message: "Valid email is required"})
	}
	return errs
}

type NewsletterRequest struct {
	Email string `json:"email"`
}

func (r NewsletterRequest) Validate() []FieldError {
	if !validEmail(r.Email) {
		return []FieldError{{Field: "email", Message: "Valid email is required"}}
	}
	return nil
}

// validEmail accepts a bare RFC 5322 address with a dotted domain.
// mail.ParseAddress alone admits forms like "a@b" and display names,
// which the web clients never send.
func validEmail(email string) bool {
	email = strings.TrimSpace(email)
	if email == "" {
		return false
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return false
	}
	at := strings.LastIndex(email, "@")
	return strings.Contains(email[at+1:], ".")
}
