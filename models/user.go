// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Credentials is the login form buffer and the body of the login request.
// Fields are sent as typed; the client performs no validation.
type Credentials struct {
	// Email identifies the account.
	Email string `json:"email"`

	// Password is sent in plaintext over the transport; hashing is the
	// remote service's concern.
	Password string `json:"password"`
}

// RegistrationRequest is the registration form buffer and the body of the
// register request.
//
// ConfirmPassword is never compared with Password on the client; the remote
// service performs that check and reports the outcome in its response.
type RegistrationRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}
