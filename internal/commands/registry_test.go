package commands_test

import (
	"context"
	"flag"
	"io"
	"testing"

	"taskdeck/internal/commands"
	"taskdeck/internal/config"
	"taskdeck/internal/exitcode"
	"taskdeck/internal/service"
	"taskdeck/internal/session"
)

// stubCmd is a minimal Command for registry tests.
type stubCmd struct {
	name    string
	aliases []string
}

func (c *stubCmd) Name() string                   { return c.name }
func (c *stubCmd) Aliases() []string              { return c.aliases }
func (c *stubCmd) Synopsis() string               { return "" }
func (c *stubCmd) Usage() string                  { return "" }
func (c *stubCmd) NeedsAuth() bool                { return false }
func (c *stubCmd) RegisterFlags(fs *flag.FlagSet) {}
func (c *stubCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Store, svc service.Service, args []string, out, errOut io.Writer) int {
	return exitcode.Success
}

func TestRegistryFindByNameAndAlias(t *testing.T) {
	r := commands.NewRegistry()
	cmd := &stubCmd{name: "list", aliases: []string{"ls"}}
	if err := r.Register(cmd); err != nil {
		t.Fatalf("register: %v", err)
	}

	for _, name := range []string{"list", "ls"} {
		got, ok := r.Find(name)
		if !ok || got != cmd {
			t.Errorf("Find(%q) did not return the registered command", name)
		}
	}
	if _, ok := r.Find("missing"); ok {
		t.Error("Find of an unregistered name must fail")
	}
}

func TestRegistryRejectsCollisions(t *testing.T) {
	r := commands.NewRegistry()
	if err := r.Register(&stubCmd{name: "list", aliases: []string{"ls"}}); err != nil {
		t.Fatalf("register: %v", err)
	}

	if err := r.Register(&stubCmd{name: "list"}); err == nil {
		t.Error("expected a name collision error")
	}
	if err := r.Register(&stubCmd{name: "show", aliases: []string{"ls"}}); err == nil {
		t.Error("expected an alias collision error")
	}
}

func TestRegistryAllSortedWithoutAliasDuplicates(t *testing.T) {
	r := commands.NewRegistry()
	for _, c := range []*stubCmd{
		{name: "rm", aliases: []string{"delete"}},
		{name: "add", aliases: []string{"create"}},
		{name: "list", aliases: []string{"ls"}},
	} {
		if err := r.Register(c); err != nil {
			t.Fatalf("register %s: %v", c.name, err)
		}
	}

	all := r.All()
	want := []string{"add", "list", "rm"}
	if len(all) != len(want) {
		t.Fatalf("expected %d commands, got %d", len(want), len(all))
	}
	for i, name := range want {
		if all[i].Name() != name {
			t.Errorf("All()[%d] = %s, want %s", i, all[i].Name(), name)
		}
	}
}
