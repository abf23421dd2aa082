package tui

type copiedMsg struct{}

type copyFailedMsg struct {
	err error
}

type clearNoteMsg struct{}
