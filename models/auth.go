// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LoginRequest is the body of POST /api/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the body returned by POST /api/login.
// User carries the display name of the authenticated visitor.
type LoginResponse struct {
	Success bool   `json:"success"`
	User    string `json:"user,omitempty"`
	Message string `json:"message,omitempty"`
}

// RegisterRequest is the body of POST /api/register.
type RegisterRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// PasswordsMatch reports whether the password and its confirmation are equal.
func (r RegisterRequest) PasswordsMatch() bool {
	return r.Password == r.ConfirmPassword
}

// RegisterResponse is the body returned by POST /api/register.
type RegisterResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
