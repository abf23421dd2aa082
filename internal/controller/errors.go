package controller

import "errors"

// ErrInvalidTransition is returned by SwitchView for any move other than
// Login to Register or back.
var ErrInvalidTransition = errors.New("invalid view transition")
