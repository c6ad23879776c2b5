// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

// Response messages. They match what the page shows verbatim.
const (
	msgInvalidJSON        = "Invalid JSON was passed"
	msgRegistered         = "User registered successfully!"
	msgLoginSuccessful    = "Login successful"
	msgAllFieldsRequired  = "All fields are required"
	msgLoginFieldsMissing = "Email and password are required"
	msgInvalidEmail       = "Invalid email format"
	msgPasswordsMismatch  = "Passwords do not match"
	msgEmailExists        = "Email already exists"
	msgInvalidCredentials = "Invalid credentials"
	msgInternal           = "Internal server error"
)
