// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "errors"

var (
	ErrNothingToCopy   = errors.New("no advisor reply to copy")
	ErrUnexpectedModel = errors.New("unexpected final model")
)
