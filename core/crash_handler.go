package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"

	"github.com/gdamore/tcell/v2"
)

var (
	crashMu     sync.Mutex
	crashScreen tcell.Screen

	// Replaced in tests
	crashOut  io.Writer = os.Stderr
	crashExit           = os.Exit
)

// Reset sequences for a terminal left in raw/alt-screen/mouse mode
var resetSequence = []byte(
	"\x1b[?1003l\x1b[?1002l\x1b[?1000l\x1b[?1006l" + // mouse tracking off
		"\x1b[?25h" + // cursor on
		"\x1b[?1049l" + // leave alt screen
		"\x1b[0m" + // SGR reset
		"\x1b[?7h", // auto wrap on
)

// RegisterScreen sets the screen finalized on crash, nil clears it
func RegisterScreen(s tcell.Screen) {
	crashMu.Lock()
	crashScreen = s
	crashMu.Unlock()
}

// EmergencyReset writes the terminal reset sequences to w
func EmergencyReset(w io.Writer) {
	w.Write(resetSequence)
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}
}

// HandleCrash is the unified panic handler that restores the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	s := crashScreen
	crashScreen = nil
	crashMu.Unlock()

	if s != nil {
		s.Fini()
	} else {
		EmergencyReset(os.Stdout)
	}

	fmt.Fprintf(crashOut, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(crashOut, "Stack Trace:\r\n%s\r\n", debug.Stack())

	crashExit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
