package ui

import (
	"fmt"
	"io"
	"sync"
	"time"

	"charm.land/lipgloss/v2"
)

var (
	spinnerFrames = []string{"⣾ ", "⣽ ", "⣻ ", "⢿ ", "⡿ ", "⣟ ", "⣯ ", "⣷ "}
	spinnerFPS    = time.Second / 10
)

// Spinner is an animated "waiting" line drawn on a terminal while a request
// is in flight. It writes directly to its writer from a goroutine.
type Spinner struct {
	out     io.Writer
	message string
	theme   Theme
	done    chan struct{}
	exited  chan struct{}
	once    sync.Once
}

// NewSpinner creates a spinner that draws message to out.
func NewSpinner(out io.Writer, message string, theme Theme) *Spinner {
	return &Spinner{
		out:     out,
		message: message,
		theme:   theme,
		done:    make(chan struct{}),
		exited:  make(chan struct{}),
	}
}

// Start begins the animation.
func (s *Spinner) Start() {
	go s.run()
}

// Stop ends the animation and clears the line. It blocks until the
// animation goroutine has exited and is safe to call more than once.
func (s *Spinner) Stop() {
	s.once.Do(func() { close(s.done) })
	<-s.exited
}

func (s *Spinner) run() {
	defer close(s.exited)

	frameStyle := lipgloss.NewStyle().Foreground(s.theme.Primary).Bold(true)
	messageStyle := lipgloss.NewStyle().Foreground(s.theme.Text).Italic(true)

	ticker := time.NewTicker(spinnerFPS)
	defer ticker.Stop()

	var frame int
	for {
		select {
		case <-s.done:
			fmt.Fprint(s.out, "\r\033[K")
			return
		case <-ticker.C:
			fmt.Fprintf(s.out, "\r %s %s",
				frameStyle.Render(spinnerFrames[frame%len(spinnerFrames)]),
				messageStyle.Render(s.message))
			frame++
		}
	}
}
