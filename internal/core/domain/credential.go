package domain

import "errors"

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")
var ErrForbidden = errors.New("access forbidden")

// Credential models a provisioned user able to authenticate.
// The hash never leaves the credential store layer.
type Credential struct {
	UserID       string `json:"user_id"`
	PasswordHash string `json:"-"`
	DisplayName  string `json:"nome"`
}
