package testhelpers

import (
	"io"
	"strings"
	"testing"
)

// Writer is an io.Writer that forwards log output to t.Log, so server logs
// show up only when a test fails.
type Writer struct {
	t    *testing.T
	done chan struct{}
}

// NewWriter returns a writer for the given test. Writes after the test has
// finished panic, which surfaces goroutines that outlive their test.
func NewWriter(t *testing.T) io.Writer {
	w := &Writer{
		t:    t,
		done: make(chan struct{}),
	}
	t.Cleanup(func() {
		close(w.done)
	})
	return w
}

func (w *Writer) Write(p []byte) (int, error) {
	select {
	case <-w.done:
		panic("testhelpers: write to a finished test's log. Did you forget to t.Cleanup the server shutdown?")
	default:
		// t.Log adds its own newline.
		line := strings.TrimSuffix(string(p), "\n")
		if line != "" {
			w.t.Log(line)
		}
		return len(p), nil
	}
}
