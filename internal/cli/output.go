package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0
	ExitFailure      = 1 // at least one computation failed
	ExitCommandError = 2 // bad flags, unreadable input or config
)

// ExitError carries the process exit code for an error returned by a command.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure if the error is not an ExitError.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// OutputFormatter writes command results as JSON or plain text.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer
	Verbose   bool
}

// Response is the JSON envelope of every command.
type Response struct {
	Status string `json:"status"` // "ok" or "error"
	Data   any    `json:"data,omitempty"`
	Error  string `json:"error,omitempty"`
}

// Success writes data. In text mode text is printed instead, when given.
func (f *OutputFormatter) Success(data any, text string) error {
	if f.Format == "json" {
		if err := json.NewEncoder(f.Writer).Encode(Response{Status: "ok", Data: data}); err != nil {
			return WrapExitError(ExitCommandError, "encode output", err)
		}
		return nil
	}
	if text == "" {
		_, err := fmt.Fprintln(f.Writer, data)
		return err
	}
	_, err := fmt.Fprint(f.Writer, text)
	return err
}

// Fail writes err and returns it wrapped with code.
func (f *OutputFormatter) Fail(code int, message string, err error) error {
	if f.Format == "json" {
		_ = json.NewEncoder(f.Writer).Encode(Response{Status: "error", Error: fmt.Sprintf("%s: %v", message, err)})
	} else {
		fmt.Fprintf(f.GetErrWriter(), "Error: %s: %v\n", message, err)
	}
	return WrapExitError(code, message, err)
}

// GetErrWriter returns ErrWriter if set, otherwise Writer.
func (f *OutputFormatter) GetErrWriter() io.Writer {
	if f.ErrWriter != nil {
		return f.ErrWriter
	}
	return f.Writer
}
