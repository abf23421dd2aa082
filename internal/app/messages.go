// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// Calmora client controllers and the development server handlers.
//
// All Msg* constants are human-readable strings shown to the user, either as
// a status line in the login and registration views, as a synthetic chat
// turn, or as the "message" field of a service response body. Keeping them
// in one place ensures consistent wording on both sides of the wire.
package app

// Client status lines. The "failed" variants are fallbacks for a service
// failure that carried no message; the "error" variants mean no response
// was received at all.
const (
	MsgLoginSuccessful = "Login successful."
	MsgLoginFailed     = "Login failed."
	MsgLoginError      = "Login error."

	MsgRegistrationSuccessful = "Registration successful. Please log in."
	MsgRegistrationFailed     = "Registration failed."
	MsgRegistrationError      = "Registration error."

	MsgLogoutFailed = "Logout failed."
	MsgLogoutError  = "Logout error."
)

// Synthetic chat turns.
const (
	// MsgChatGreeting seeds an empty conversation when the chat view opens.
	MsgChatGreeting = "Hello, how are you feeling?"

	// MsgChatUnavailable stands in for the responder's reply when none could
	// be obtained.
	MsgChatUnavailable = "Error: Unable to fetch response."
)

// Service response messages.
const (
	MsgAllRegistrationFieldsRequired = "All fields (name, email, password, confirm password) are required."
	MsgInvalidEmail                  = "Please provide a valid email address."
	MsgPasswordTooShort              = "Password must be at least 6 characters long."
	MsgPasswordsDoNotMatch           = "Passwords do not match."
	MsgEmailAlreadyRegistered        = "A user with this email already exists."
	MsgUserRegistered                = "User registered successfully."

	MsgEmailAndPasswordRequired = "Email and password are required."
	MsgInvalidEmailOrPassword   = "Invalid email or password."

	MsgLoggedOut = "Logged out successfully."

	MsgUnauthorized        = "Unauthorized. Please log in."
	MsgInvalidChatMessage  = "Please provide a valid message."
	MsgInvalidDataProvided = "Invalid data provided."
	MsgInternalServerError = "Internal server error."
)

// MinPasswordLength is the shortest password the service accepts.
const MinPasswordLength = 6
