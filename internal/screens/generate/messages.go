package generate

import (
	"time"

	gen "github.com/abhisek/educator/internal/generate"
)

// resultMsg is sent when a generation request completes. Seq ties the
// response to the request that produced it so stale results are dropped.
type resultMsg struct {
	Seq  int
	Resp *gen.Response
	Err  error
}

// spinnerTickMsg is sent at short intervals to animate the loading spinner.
type spinnerTickMsg time.Time

// copiedMsg is sent after a clipboard copy attempt.
type copiedMsg struct {
	Err error
}

// savedMsg is sent after writing the result to a file.
type savedMsg struct {
	Path string
	Err  error
}

// noticeExpiredMsg clears the transient copy/save notice.
type noticeExpiredMsg struct{}

// modelReadyMsg carries the result of the startup health probe.
type modelReadyMsg struct {
	Ready bool
}
