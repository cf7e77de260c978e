package claude

import (
	"fmt"
	"strings"

	"github.com/protocollar/mcpm/internal/mcpstore"
)

// Binary is the executable registrations are sent to.
const Binary = "claude"

// UnknownKindWarning is returned for records whose type has no launch form.
// It is not fatal: callers report it and move on.
type UnknownKindWarning struct {
	Name string
	Kind mcpstore.Kind
}

func (w *UnknownKindWarning) Error() string {
	return fmt.Sprintf("unknown type %q for mcp %q, skipping", w.Kind, w.Name)
}

// AddArgs returns the argv that registers r with claude:
//
//	claude mcp add <name> -- npx -y @<path> [options...]
//	claude mcp add <name> -- env <path> [options...]
//
// Options are split on whitespace, the way an unquoted shell expansion would be.
func AddArgs(r mcpstore.Record) ([]string, error) {
	argv := []string{Binary, "mcp", "add", r.Name, "--"}
	switch r.Kind {
	case mcpstore.KindNpx:
		argv = append(argv, "npx", "-y", "@"+r.Path)
	case mcpstore.KindEnv:
		argv = append(argv, "env", r.Path)
	default:
		return nil, &UnknownKindWarning{Name: r.Name, Kind: r.Kind}
	}
	return append(argv, strings.Fields(r.Options)...), nil
}

// Preview renders the one-line listing form of r. It is shown for every
// record regardless of type and always carries "@" and "--" markers, so it
// is not a runnable command; use AddArgs for that.
func Preview(r mcpstore.Record) string {
	return fmt.Sprintf("%s -- %s -y @%s --%s", r.Name, r.Kind, r.Path, r.Options)
}

// FormatArgs joins argv for display, single-quoting words a shell would split.
func FormatArgs(argv []string) string {
	parts := make([]string, len(argv))
	for i, a := range argv {
		parts[i] = quote(a)
	}
	return strings.Join(parts, " ")
}

func quote(s string) string {
	if s == "" {
		return "''"
	}
	if !strings.ContainsAny(s, " \t\n'\"\\$`|&;<>()*?[]#~!{}") {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'"'"'`) + "'"
}
