package commands

import (
	"errors"
	"flag"
	"reflect"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		line string
		want []string
	}{
		{"compile", []string{"compile"}},
		{"  compile   --slot custom ", []string{"compile", "--slot", "custom"}},
		{"", nil},
		{"   ", nil},
		{"# a comment", nil},
	}
	for _, tt := range tests {
		if got := Parse(tt.line); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Parse(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestExecuteFlagsDoNotLeak(t *testing.T) {
	r := NewRegistry()
	var got []string
	r.Register("compile", "compile a slot", func(fs *flag.FlagSet) func() error {
		slot := fs.String("slot", "active", "slot")
		return func() error {
			got = append(got, *slot)
			return nil
		}
	})
	for _, line := range []string{"compile --slot custom", "compile"} {
		if err := r.Run(line); err != nil {
			t.Fatalf("Run(%q): %v", line, err)
		}
	}
	if want := []string{"custom", "active"}; !reflect.DeepEqual(got, want) {
		t.Errorf("slots = %v, want %v", got, want)
	}
}

func TestExecuteErrors(t *testing.T) {
	r := NewRegistry()
	boom := errors.New("boom")
	r.Register("fail", "always fails", func(*flag.FlagSet) func() error {
		return func() error { return boom }
	})
	if err := r.Execute(nil); err == nil {
		t.Error("Execute(nil) = nil")
	}
	if err := r.Run("nope"); !errors.Is(err, ErrUnknown) {
		t.Errorf("unknown: %v", err)
	}
	if err := r.Run("fail --bad"); err == nil || !strings.HasPrefix(err.Error(), "fail:") {
		t.Errorf("bad flag: %v", err)
	}
	if err := r.Run("fail"); !errors.Is(err, boom) {
		t.Errorf("run error: %v", err)
	}
	if err := r.Run("# nothing"); err != nil {
		t.Errorf("comment: %v", err)
	}
}

func TestNamesAndHelp(t *testing.T) {
	r := NewRegistry()
	r.Register("quit", "exit", func(*flag.FlagSet) func() error { return nil })
	r.Register("compile", "compile", func(*flag.FlagSet) func() error { return nil })
	if got := r.Names(); !reflect.DeepEqual(got, []string{"compile", "quit"}) {
		t.Errorf("Names() = %v", got)
	}
	if got := r.Help(); len(got) != 2 || got[1] != "quit - exit" {
		t.Errorf("Help() = %v", got)
	}
	if err := r.Run("quit"); err != nil {
		t.Errorf("nil run func: %v", err)
	}
}
