package tui

import "github.com/thenoetrevino/fleetboard/internal/services/workorder"

// boardLoadedMsg carries a freshly materialized board
type boardLoadedMsg struct {
	loaded *workorder.Loaded
}

// errMsg reports a failed load
type errMsg struct {
	err error
}

func (e errMsg) Error() string {
	return e.err.Error()
}
