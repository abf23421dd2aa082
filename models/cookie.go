// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// StoredCookie is a persisted entry of the client's session cookie jar.
// Cookies are grouped by the host of the URL that set them.
type StoredCookie struct {
	Host     string
	Name     string
	Value    string
	Path     string
	Domain   string
	Expires  time.Time
	Secure   bool
	HTTPOnly bool
}
