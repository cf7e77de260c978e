package main

import (
	"testing"

	"github.com/protocollar/mcpm/cmd"
)

func TestRootCommandExists(t *testing.T) {
	root := cmd.RootCommand()
	if root == nil {
		t.Fatal("root command is nil")
	}
	if root.Use != "mcpm" {
		t.Errorf("root command Use = %q, want %q", root.Use, "mcpm")
	}
}

func TestSubcommandsRegistered(t *testing.T) {
	root := cmd.RootCommand()
	want := []string{"list", "add", "add-all", "remove", "show", "export", "import", "init", "setup-auto", "config", "mcp"}
	for _, name := range want {
		c, _, err := root.Find([]string{name})
		if err != nil || c == root {
			t.Errorf("missing %q subcommand", name)
		}
	}
}

func TestAliases(t *testing.T) {
	root := cmd.RootCommand()
	for alias, want := range map[string]string{"ls": "list", "rm": "remove"} {
		c, _, err := root.Find([]string{alias})
		if err != nil {
			t.Fatalf("Find(%q): %v", alias, err)
		}
		if c.Name() != want {
			t.Errorf("%s resolves to %q, want %q", alias, c.Name(), want)
		}
	}
}

func TestMCPSubcommandRegistered(t *testing.T) {
	root := cmd.RootCommand()
	found := false
	for _, c := range root.Commands() {
		if c.Use == "mcp" {
			found = true
			hasServe := false
			for _, sub := range c.Commands() {
				if sub.Use == "serve" {
					hasServe = true
				}
			}
			if !hasServe {
				t.Error("mcp command missing 'serve' subcommand")
			}
		}
	}
	if !found {
		t.Error("root command missing 'mcp' subcommand")
	}
}
