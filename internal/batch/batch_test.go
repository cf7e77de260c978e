package batch

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/protocollar/mcpm/internal/mcpstore"
)

// fakeRegistrar records calls and returns scripted exit statuses by name.
type fakeRegistrar struct {
	calls    [][]string
	statuses map[string]int
	errs     map[string]error
}

func (f *fakeRegistrar) Register(argv []string) (int, error) {
	f.calls = append(f.calls, argv)
	name := argv[3]
	if err := f.errs[name]; err != nil {
		return -1, err
	}
	return f.statuses[name], nil
}

func threeRecords() []mcpstore.Record {
	return []mcpstore.Record{
		{Name: "one", Kind: mcpstore.KindNpx, Path: "a/one"},
		{Name: "two", Kind: mcpstore.KindNpx, Path: "a/two"},
		{Name: "three", Kind: mcpstore.KindEnv, Path: "K=V", Options: "node srv.js"},
	}
}

func TestRunContinuesAfterFailure(t *testing.T) {
	reg := &fakeRegistrar{statuses: map[string]int{"two": 1}}
	var out bytes.Buffer

	sum, err := Run(threeRecords(), reg, Options{Out: &out})
	if err != nil {
		t.Fatal(err)
	}
	if len(reg.calls) != 3 {
		t.Fatalf("expected 3 registrations, got %d", len(reg.calls))
	}
	if len(sum.Results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(sum.Results))
	}
	want := []Status{StatusAdded, StatusFailed, StatusAdded}
	for i, r := range sum.Results {
		if r.Status != want[i] {
			t.Errorf("result %d (%s) = %s, want %s", i, r.Name, r.Status, want[i])
		}
	}
	if sum.Added != 2 || sum.Failed != 1 || sum.Skipped != 0 {
		t.Errorf("summary = %+v", sum)
	}
	if sum.Results[1].ExitCode != 1 {
		t.Errorf("exit code = %d, want 1", sum.Results[1].ExitCode)
	}
	if !strings.Contains(out.String(), "Done: 2 added, 1 failed, 0 skipped") {
		t.Errorf("missing summary line in output:\n%s", out.String())
	}
}

func TestRunPreservesOrder(t *testing.T) {
	reg := &fakeRegistrar{}
	if _, err := Run(threeRecords(), reg, Options{}); err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, c := range reg.calls {
		names = append(names, c[3])
	}
	if strings.Join(names, ",") != "one,two,three" {
		t.Errorf("order = %v", names)
	}
}

func TestRunRegistrarError(t *testing.T) {
	reg := &fakeRegistrar{errs: map[string]error{"one": errors.New("exec: not found")}}
	sum, err := Run(threeRecords(), reg, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if sum.Results[0].Status != StatusFailed || sum.Results[0].Error == "" {
		t.Errorf("first result = %+v", sum.Results[0])
	}
	if len(reg.calls) != 3 {
		t.Errorf("run should continue after a registrar error, got %d calls", len(reg.calls))
	}
}

func TestRunSkipsUnknownKind(t *testing.T) {
	records := []mcpstore.Record{
		{Name: "ok", Kind: mcpstore.KindNpx, Path: "p"},
		{Name: "legacy", Kind: "ftp", Path: "host"},
		{Name: "after", Kind: mcpstore.KindNpx, Path: "q"},
	}
	reg := &fakeRegistrar{}
	var out, warn bytes.Buffer

	sum, err := Run(records, reg, Options{Out: &out, Warn: &warn})
	if err != nil {
		t.Fatal(err)
	}
	if len(reg.calls) != 2 {
		t.Errorf("expected unknown kind to be skipped, got %d calls", len(reg.calls))
	}
	if sum.Skipped != 1 || sum.Results[1].Status != StatusSkipped {
		t.Errorf("summary = %+v", sum)
	}
	if !strings.Contains(warn.String(), "legacy") || !strings.Contains(warn.String(), "ftp") {
		t.Errorf("warning should name record and kind: %q", warn.String())
	}
}

func TestRunDelayBetweenInvocations(t *testing.T) {
	var slept []time.Duration
	reg := &fakeRegistrar{}

	_, err := Run(threeRecords(), reg, Options{
		Delay: DefaultDelay,
		Sleep: func(d time.Duration) { slept = append(slept, d) },
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(slept) != 2 {
		t.Fatalf("expected 2 pauses between 3 invocations, got %d", len(slept))
	}
	for _, d := range slept {
		if d != DefaultDelay {
			t.Errorf("slept %v, want %v", d, DefaultDelay)
		}
	}
}

func TestRunDryRun(t *testing.T) {
	reg := &fakeRegistrar{}
	var out bytes.Buffer

	sum, err := Run(threeRecords(), reg, Options{DryRun: true, Out: &out})
	if err != nil {
		t.Fatal(err)
	}
	if len(reg.calls) != 0 {
		t.Errorf("dry run must not register, got %d calls", len(reg.calls))
	}
	if !strings.Contains(out.String(), "claude mcp add one -- npx -y @a/one") {
		t.Errorf("dry run output missing command:\n%s", out.String())
	}
	for _, r := range sum.Results {
		if r.Status != StatusDryRun {
			t.Errorf("%s status = %s, want dry_run", r.Name, r.Status)
		}
	}
}

func TestRunFilter(t *testing.T) {
	reg := &fakeRegistrar{}
	sum, err := Run(threeRecords(), reg, Options{Filter: "t*"})
	if err != nil {
		t.Fatal(err)
	}
	if len(sum.Results) != 2 || sum.Results[0].Name != "two" || sum.Results[1].Name != "three" {
		t.Errorf("filtered results = %+v", sum.Results)
	}
}

func TestRunInvalidFilter(t *testing.T) {
	if _, err := Run(threeRecords(), &fakeRegistrar{}, Options{Filter: "[a-"}); err == nil {
		t.Error("expected error for invalid pattern")
	}
}

func TestRunEmpty(t *testing.T) {
	var out bytes.Buffer
	sum, err := Run(nil, &fakeRegistrar{}, Options{Out: &out})
	if err != nil {
		t.Fatal(err)
	}
	if len(sum.Results) != 0 {
		t.Errorf("expected no results, got %d", len(sum.Results))
	}
	if !strings.Contains(out.String(), "Done: 0 added") {
		t.Errorf("output = %q", out.String())
	}
}

func TestMatch(t *testing.T) {
	tests := []struct {
		pattern, name string
		want          bool
	}{
		{"", "anything", true},
		{"supa*", "supabase", true},
		{"supa*", "memory", false},
		{"{memory,github}", "github", true},
		{"server-?", "server-1", true},
	}
	for _, tt := range tests {
		if got := Match(tt.pattern, tt.name); got != tt.want {
			t.Errorf("Match(%q, %q) = %v, want %v", tt.pattern, tt.name, got, tt.want)
		}
	}
}
