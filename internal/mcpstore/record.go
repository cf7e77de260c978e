package mcpstore

import "fmt"

// ValidationError reports a required field left empty.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// BuildRecord assembles a record from raw answers. Name, type and path are
// required; the type is not checked against known kinds.
func BuildRecord(name, kind, path, options string) (Record, error) {
	r := Record{
		Name:    trim(name),
		Kind:    Kind(trim(kind)),
		Path:    trim(path),
		Options: trim(options),
	}
	switch {
	case r.Name == "":
		return Record{}, &ValidationError{Field: "name"}
	case r.Kind == "":
		return Record{}, &ValidationError{Field: "type"}
	case r.Path == "":
		return Record{}, &ValidationError{Field: "path"}
	}
	return r, nil
}

// Known reports whether k is a kind claude registration understands.
func (k Kind) Known() bool {
	return k == KindNpx || k == KindEnv
}

// Samples is the starter set written by "mcpm init".
func Samples() []Record {
	return []Record{
		{Name: "supabase", Kind: KindNpx, Path: "supabase/mcp-server-supabase@latest", Options: "--read-only"},
		{Name: "context7", Kind: KindNpx, Path: "upstash/context7-mcp@latest"},
		{Name: "playwright", Kind: KindNpx, Path: "playwright/mcp@latest"},
		{Name: "sequential-thinking", Kind: KindNpx, Path: "modelcontextprotocol/server-sequential-thinking"},
		{Name: "memory", Kind: KindNpx, Path: "modelcontextprotocol/server-memory"},
		{Name: "filesystem", Kind: KindNpx, Path: "modelcontextprotocol/server-filesystem", Options: "~/Documents"},
		{Name: "github", Kind: KindEnv, Path: "GITHUB_PERSONAL_ACCESS_TOKEN=<your-token>", Options: "npx -y @modelcontextprotocol/server-github"},
	}
}
