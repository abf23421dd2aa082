// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Account is a user record held by the development stub server.
type Account struct {
	Name         string
	Email        string
	PasswordHash []byte
}
