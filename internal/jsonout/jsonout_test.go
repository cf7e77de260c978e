package jsonout

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"testing"
)

// capture redirects JSON output into buffers for the duration of the test.
func capture(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, errOut bytes.Buffer
	restore := SetOutput(&out, &errOut)
	t.Cleanup(restore)
	return &out, &errOut
}

func TestConfigure(t *testing.T) {
	origEnabled, origMsg := Enabled, msgOut
	defer func() { Enabled, msgOut = origEnabled, origMsg }()

	tests := []struct {
		name     string
		jsonMode bool
		tty      bool
		wantMsg  io.Writer
		wantJSON bool
	}{
		{"json", true, true, io.Discard, true},
		{"piped", false, false, os.Stderr, false},
		{"terminal", false, true, os.Stdout, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Configure(tt.jsonMode, tt.tty)
			if MsgOut() != tt.wantMsg {
				t.Errorf("MsgOut() = %v, want %v", MsgOut(), tt.wantMsg)
			}
			if Enabled != tt.wantJSON {
				t.Errorf("Enabled = %v, want %v", Enabled, tt.wantJSON)
			}
		})
	}
}

func TestSetMsgOut(t *testing.T) {
	orig := msgOut
	defer func() { msgOut = orig }()

	var buf bytes.Buffer
	SetMsgOut(&buf)
	if MsgOut() != &buf {
		t.Error("MsgOut should return the writer set by SetMsgOut")
	}
}

// namesOnly is a test type implementing the Conciser interface.
type namesOnly struct {
	Names []string `json:"names"`
	Extra string   `json:"extra"`
}

func (n namesOnly) Concise() any {
	return n.Names
}

func TestWrite(t *testing.T) {
	out, _ := capture(t)

	if err := Write(map[string]string{"name": "supabase"}); err != nil {
		t.Fatal(err)
	}

	var got map[string]string
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON output: %v\nraw: %s", err, out)
	}
	if got["name"] != "supabase" {
		t.Errorf("got %v", got)
	}
}

func TestWriteConcise(t *testing.T) {
	origConcise := Concise
	defer func() { Concise = origConcise }()
	Concise = true
	out, _ := capture(t)

	if err := Write(namesOnly{Names: []string{"a", "b"}, Extra: "dropped"}); err != nil {
		t.Fatal(err)
	}
	var got []string
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v\nraw: %s", err, out)
	}
	if len(got) != 2 || got[0] != "a" {
		t.Errorf("concise output = %v", got)
	}
}

func TestWriteConciseDisabled(t *testing.T) {
	origConcise := Concise
	defer func() { Concise = origConcise }()
	Concise = false
	out, _ := capture(t)

	if err := Write(namesOnly{Names: []string{"a"}, Extra: "kept"}); err != nil {
		t.Fatal(err)
	}
	var got namesOnly
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got.Extra != "kept" {
		t.Error("with Concise=false, full output should include 'extra'")
	}
}

func TestWriteError(t *testing.T) {
	_, errOut := capture(t)

	WriteError("not_found", "mcp \"ghost\" not found", 1)

	var got struct {
		Error    string `json:"error"`
		Code     string `json:"code"`
		ExitCode int    `json:"exit_code"`
	}
	if err := json.Unmarshal(errOut.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v\nraw: %s", err, errOut)
	}
	if got.Code != "not_found" || got.ExitCode != 1 || got.Error != `mcp "ghost" not found` {
		t.Errorf("got %+v", got)
	}
}

func TestWriteMarshalError(t *testing.T) {
	capture(t)
	if err := Write(func() {}); err == nil {
		t.Error("expected error when marshaling a function")
	}
}
