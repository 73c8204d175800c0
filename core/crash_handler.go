package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"
)

// CrashTerminal is the minimal terminal surface restored before a crash report
type CrashTerminal interface {
	Fini()
}

var (
	crashMu       sync.Mutex
	crashTerminal CrashTerminal
	crashExit     = os.Exit
)

// SetCrashTerminal registers the terminal to restore when a goroutine panics
func SetCrashTerminal(t CrashTerminal) {
	crashMu.Lock()
	crashTerminal = t
	crashMu.Unlock()
}

// HandleCrash restores the terminal, prints the panic with its stack and exits
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	t := crashTerminal
	crashMu.Unlock()
	if t != nil {
		t.Fini()
	}

	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

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
