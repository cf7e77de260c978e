// Package jsonout switches command output between human text and JSON.
package jsonout

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Enabled is set when --json is active.
var Enabled bool

// Concise is set when --concise is active (modifier for --json).
var Concise bool

// stdout receives JSON documents and primary command output.
var stdout io.Writer = os.Stdout

// stderr receives JSON error objects.
var stderr io.Writer = os.Stderr

// msgOut receives human progress messages: io.Discard in JSON mode, os.Stderr
// when stdout is piped, os.Stdout otherwise.
var msgOut io.Writer = os.Stdout

// Configure picks the progress writer for the current mode.
func Configure(jsonMode, stdoutTTY bool) {
	Enabled = jsonMode
	switch {
	case jsonMode:
		msgOut = io.Discard
	case !stdoutTTY:
		msgOut = os.Stderr
	default:
		msgOut = os.Stdout
	}
}

// SetMsgOut sets the writer for human progress messages.
func SetMsgOut(w io.Writer) {
	msgOut = w
}

// MsgOut returns the writer for human progress messages. Use it instead of
// fmt.Printf for anything that must stay out of JSON output.
func MsgOut() io.Writer {
	return msgOut
}

// SetOutput redirects JSON documents and errors, returning a restore func.
func SetOutput(out, errOut io.Writer) func() {
	prevOut, prevErr := stdout, stderr
	stdout, stderr = out, errOut
	return func() { stdout, stderr = prevOut, prevErr }
}

// Stdout returns the writer for primary command output.
func Stdout() io.Writer {
	return stdout
}

// Conciser is implemented by types that can return a minimal representation.
type Conciser interface {
	Concise() any
}

// Write marshals v as one line of JSON. With Concise set, a Conciser's short
// form is written instead.
func Write(v any) error {
	if Concise {
		if c, ok := v.(Conciser); ok {
			v = c.Concise()
		}
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	_, err = fmt.Fprintln(stdout, string(data))
	return err
}

// WriteError writes a structured JSON error.
func WriteError(code, msg string, exitCode int) {
	v := struct {
		Error    string `json:"error"`
		Code     string `json:"code"`
		ExitCode int    `json:"exit_code"`
	}{
		Error:    msg,
		Code:     code,
		ExitCode: exitCode,
	}
	data, _ := json.Marshal(v)
	fmt.Fprintln(stderr, string(data))
}
