package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// spinnerFrames is the braille animation cycle.
var spinnerFrames = [...]string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// spinner animates a progress indicator on stderr so piped stdout output
// stays clean. start and stop are meant for a single goroutine.
type spinner struct {
	message string
	w       io.Writer
	quit    chan struct{}
	done    chan struct{}
	once    sync.Once
}

func newSpinner(message string) *spinner {
	return &spinner{
		message: message,
		w:       os.Stderr,
		quit:    make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// start launches the animation goroutine. stop must be called afterwards to
// reclaim the terminal line.
func (s *spinner) start() {
	go func() {
		defer close(s.done)
		tick := time.NewTicker(80 * time.Millisecond)
		defer tick.Stop()
		for frame := 0; ; frame++ {
			select {
			case <-s.quit:
				fmt.Fprintf(s.w, "\r%s\r", strings.Repeat(" ", len(s.message)+4))
				return
			case <-tick.C:
				glyph := spinnerFrames[frame%len(spinnerFrames)]
				fmt.Fprintf(s.w, "\r%s %s", styleIconSpinner.Render(glyph), StyleDim.Render(s.message))
			}
		}
	}()
}

// stop halts the animation and clears the line. Safe to call more than once.
func (s *spinner) stop() {
	s.once.Do(func() { close(s.quit) })
	<-s.done
}
