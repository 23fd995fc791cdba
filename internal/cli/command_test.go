package cli

import (
	"testing"

	"github.com/spf13/pflag"
)

func TestCreateRootCommand(t *testing.T) {
	flags := NewFlags()
	cmd := CreateRootCommand(flags)

	if cmd == nil {
		t.Fatal("CreateRootCommand returned nil")
	}
	if cmd.Use != "telatin [word]" {
		t.Errorf("Use = %q, want %q", cmd.Use, "telatin [word]")
	}

	for _, name := range []string{"batch", "csv", "column", "permissive", "allow-digits", "json", "csv-out", "sqlite", "verbose"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Errorf("flag --%s not registered", name)
		}
	}
	if cmd.PersistentFlags().Lookup("config") == nil {
		t.Error("persistent flag --config not registered")
	}

	// Every flag must carry a usage string.
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Usage == "" {
			t.Errorf("flag --%s has no usage text", f.Name)
		}
	})
}

func TestRootCommandArgs(t *testing.T) {
	cmd := CreateRootCommand(NewFlags())

	if err := cmd.Args(cmd, []string{"నమస్కారం"}); err != nil {
		t.Errorf("one positional arg should be accepted: %v", err)
	}
	if err := cmd.Args(cmd, []string{"ఒకటి", "రెండు"}); err == nil {
		t.Error("two positional args should be rejected")
	}
}
