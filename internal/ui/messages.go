package ui

// pagerMsg is sent when the pager has been closed
type pagerMsg struct {
	title string
	err   error
}

// clipboardMsg reports the outcome of copying a match location
type clipboardMsg struct {
	location string
	err      error
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
