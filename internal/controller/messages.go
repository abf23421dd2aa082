package controller

import "github.com/MKhiriev/calmora/models"

// Result messages produced by the commands of this package. They are opaque
// to callers and must be fed back through SessionController.Update.

type bootstrapResultMsg struct {
	status models.SessionStatus
	err    error
}

type loginResultMsg struct {
	email string
	err   error
}

type registerResultMsg struct {
	err error
}

type logoutResultMsg struct {
	message string
	err     error
}

type chatReplyMsg struct {
	epoch uint64
	reply string
	err   error
}
