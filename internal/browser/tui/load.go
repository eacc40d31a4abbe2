package tui

import (
	"go.uber.org/zap"

	"github.com/muurk/mylibrarybook/internal/logging"
)

// loadStatus is the tri-state every fetching screen renders.
type loadStatus int

const (
	statusLoading loadStatus = iota
	statusError
	statusLoaded
)

// loadState tracks one screen's fetch. requestID increases with every
// fetch; a response is applied only if it carries the current id.
type loadState struct {
	status    loadStatus
	message   string
	requestID uint64
}

// begin enters Loading and returns the id for the new request.
func (l *loadState) begin() uint64 {
	l.requestID++
	l.status = statusLoading
	l.message = ""
	return l.requestID
}

// current reports whether a response for id should be applied.
func (l loadState) current(id uint64) bool {
	return id == l.requestID
}

func (l *loadState) done() {
	l.status = statusLoaded
}

// fail enters the error state with the screen's fixed message and logs
// the underlying error.
func (l *loadState) fail(message string, err error, fields ...zap.Field) {
	l.status = statusError
	l.message = message
	logging.Warn(message, append(fields, zap.Error(err))...)
}

// view renders Loading and Error. ok is false when the screen is loaded
// and must render its data instead.
func (l loadState) view(spinner string) (string, bool) {
	switch l.status {
	case statusLoading:
		return "\n  " + spinner + " Loading...", true
	case statusError:
		return RenderError(l.message) + "\n" + SubtitleStyle.Render("  press r to try again"), true
	default:
		return "", false
	}
}
