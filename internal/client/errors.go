package client

import "errors"

var ErrMissingDependency = errors.New("client app requires a controller and a ui")
