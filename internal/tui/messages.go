package tui

import "github.com/matheuskafuri/newsportal/internal/lifecycle"

type fetchDoneMsg struct {
	result lifecycle.Result
}

// refreshTickMsg fires when a refresh timer elapses. gen identifies the
// timer so ticks from a cancelled one can be dropped.
type refreshTickMsg struct {
	gen uint64
}

type noticeMsg struct {
	text string
}
