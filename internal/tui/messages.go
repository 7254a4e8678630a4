package tui

import "time"

// NavigateTo switches the root router to another page. Payload, when
// non-nil, is re-delivered to the target page as its first message.
type NavigateTo struct {
	Page    string
	Payload any
}

// tickMsg drives the once-per-tick work: session expiry check and the
// non-blocking balance poll.
type tickMsg time.Time

type setupDoneMsg struct {
	err error
}

type loginDoneMsg struct {
	status string
	err    error
}

type importDoneMsg struct {
	address string
	status  string
	err     error
}

type copiedMsg struct {
	err error
}

// sessionEndedMsg tells the login page why the user landed back on it:
// a manual logout or an expired session.
type sessionEndedMsg struct {
	text string
}
