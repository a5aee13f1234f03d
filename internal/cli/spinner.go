package cli

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// spinner renders an animated progress indicator on a TTY. On non-TTY
// output it prints the message once and stays silent until Stop.
type spinner struct {
	message string
	tty     bool

	mu   sync.Mutex
	stop chan struct{}
	done chan struct{}
}

func newSpinner(message string) *spinner {
	return &spinner{
		message: message,
		tty:     isatty.IsTerminal(os.Stderr.Fd()),
	}
}

// Start begins the animation. Calling Start on a running spinner is a no-op.
func (s *spinner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stop != nil {
		return
	}
	s.stop = make(chan struct{})
	s.done = make(chan struct{})

	if !s.tty {
		fmt.Fprintln(os.Stderr, styleIconSpinner.Render(iconInfo)+" "+s.message)
		close(s.done)
		return
	}

	go func() {
		defer close(s.done)
		ticker := time.NewTicker(80 * time.Millisecond)
		defer ticker.Stop()
		frame := 0
		for {
			select {
			case <-s.stop:
				fmt.Fprint(os.Stderr, "\r\033[K")
				return
			case <-ticker.C:
				fmt.Fprintf(os.Stderr, "\r%s %s", styleIconSpinner.Render(spinnerFrames[frame]), s.message)
				frame = (frame + 1) % len(spinnerFrames)
			}
		}
	}()
}

// Stop halts the animation and clears the line.
func (s *spinner) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stop == nil {
		return
	}
	if s.tty {
		close(s.stop)
	}
	<-s.done
	s.stop = nil
	s.done = nil
}
