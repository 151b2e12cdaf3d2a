package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"
)

// escapesSupported tells whether formatting escape sequences can be written to the given output.
func escapesSupported(w io.Writer) bool {
	file, isFile := w.(*os.File)
	if !isFile {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}

// interruptibleContext is cancelled on the first interrupt or termination signal.
func interruptibleContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
