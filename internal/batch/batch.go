// Package batch registers every stored MCP with claude, one after another.
package batch

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/protocollar/mcpm/internal/claude"
	"github.com/protocollar/mcpm/internal/mcpstore"
	"github.com/protocollar/mcpm/internal/ui"
)

// DefaultDelay is the pause between registrations.
const DefaultDelay = 500 * time.Millisecond

// Status is the outcome for a single record.
type Status string

const (
	StatusAdded   Status = "added"
	StatusFailed  Status = "failed"
	StatusSkipped Status = "skipped"
	StatusDryRun  Status = "dry_run"
)

// Result describes what happened to one record.
type Result struct {
	Name     string   `json:"name"`
	Status   Status   `json:"status"`
	Command  []string `json:"command,omitempty"`
	ExitCode int      `json:"exit_code"`
	Error    string   `json:"error,omitempty"`
}

// Summary is the outcome of a whole run.
type Summary struct {
	Results []Result `json:"results"`
	Added   int      `json:"added"`
	Failed  int      `json:"failed"`
	Skipped int      `json:"skipped"`
}

// Options tune a run. The zero value registers every record with no pause.
type Options struct {
	Delay  time.Duration
	DryRun bool
	// Filter is a doublestar pattern matched against record names.
	Filter string
	// Out receives per-record progress lines. Nil discards them.
	Out io.Writer
	// Warn receives unknown-type warnings. Nil uses Out.
	Warn io.Writer
	// Sleep replaces time.Sleep in tests.
	Sleep func(time.Duration)
}

// ValidateFilter checks a name pattern before a run starts.
func ValidateFilter(pattern string) error {
	if pattern != "" && !doublestar.ValidatePattern(pattern) {
		return fmt.Errorf("invalid pattern %q", pattern)
	}
	return nil
}

// Match reports whether name matches pattern; an empty pattern matches all.
func Match(pattern, name string) bool {
	if pattern == "" {
		return true
	}
	ok, err := doublestar.Match(pattern, name)
	return err == nil && ok
}

// Run registers each record in order. A failure never stops the run and
// earlier registrations are never undone.
func Run(records []mcpstore.Record, reg claude.Registrar, opts Options) (*Summary, error) {
	if err := ValidateFilter(opts.Filter); err != nil {
		return nil, err
	}
	out := opts.Out
	if out == nil {
		out = io.Discard
	}
	warn := opts.Warn
	if warn == nil {
		warn = out
	}
	sleep := opts.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}

	sum := &Summary{Results: []Result{}}
	invoked := false
	for _, r := range records {
		if !Match(opts.Filter, r.Name) {
			continue
		}

		argv, err := claude.AddArgs(r)
		if err != nil {
			var uk *claude.UnknownKindWarning
			if !errors.As(err, &uk) {
				return sum, err
			}
			fmt.Fprintln(warn, ui.Warn(uk.Error()))
			sum.Results = append(sum.Results, Result{Name: r.Name, Status: StatusSkipped, Error: uk.Error()})
			sum.Skipped++
			continue
		}

		if opts.DryRun {
			fmt.Fprintln(out, claude.FormatArgs(argv))
			sum.Results = append(sum.Results, Result{Name: r.Name, Status: StatusDryRun, Command: argv})
			continue
		}

		if invoked && opts.Delay > 0 {
			sleep(opts.Delay)
		}
		invoked = true

		fmt.Fprintf(out, "Adding %s...\n", ui.Name(r.Name))
		status, err := reg.Register(argv)
		res := Result{Name: r.Name, Command: argv, ExitCode: status}
		switch {
		case err != nil:
			res.Status = StatusFailed
			res.Error = err.Error()
			sum.Failed++
			fmt.Fprintln(out, ui.Failure(fmt.Sprintf("%s: %v", r.Name, err)))
		case status != 0:
			res.Status = StatusFailed
			res.Error = fmt.Sprintf("exit status %d", status)
			sum.Failed++
			fmt.Fprintln(out, ui.Failure(fmt.Sprintf("%s failed (exit status %d)", r.Name, status)))
		default:
			res.Status = StatusAdded
			sum.Added++
			fmt.Fprintln(out, ui.Success(fmt.Sprintf("%s added", r.Name)))
		}
		sum.Results = append(sum.Results, res)
	}

	fmt.Fprintf(out, "Done: %d added, %d failed, %d skipped\n", sum.Added, sum.Failed, sum.Skipped)
	return sum, nil
}
