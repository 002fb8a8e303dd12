package errors

import (
	"fmt"
	"io"
	"os"
)

// LogHandler is an ErrorHandler that logs errors to stderr.
type LogHandler struct {
	// Verbose enables detailed output including stack traces.
	Verbose bool
	// Out overrides the output destination. Defaults to os.Stderr.
	Out io.Writer
}

func (h *LogHandler) out() io.Writer {
	if h.Out != nil {
		return h.Out
	}
	return os.Stderr
}

// HandleError logs a VistaError.
func (h *LogHandler) HandleError(err *VistaError) {
	if err == nil {
		return
	}
	if h.Verbose {
		fmt.Fprintf(h.out(), "[vista error] %s [%s]", err.Op, err.Kind)
		if err.View != "" {
			fmt.Fprintf(h.out(), " view=%s", err.View)
		}
		fmt.Fprintf(h.out(), ": %v\n", err.Err)
		if err.StackTrace != "" {
			fmt.Fprintf(h.out(), "Stack trace:\n%s\n", err.StackTrace)
		}
	} else {
		fmt.Fprintf(h.out(), "[vista error] %s: %v\n", err.Op, err.Err)
	}
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	if err.Op != "" {
		fmt.Fprintf(h.out(), "[vista panic] %s: %v\n", err.Op, err.Value)
	} else {
		fmt.Fprintf(h.out(), "[vista panic] %v\n", err.Value)
	}
	if h.Verbose && err.StackTrace != "" {
		fmt.Fprintf(h.out(), "Stack trace:\n%s\n", err.StackTrace)
	}
}
