// Package commands maps command lines such as "compile --slot custom" to actions.
// The control panel, the keyboard shortcuts and startup scripts all go through the same registry.
package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"
)

// ErrUnknown is wrapped by Execute when no command has the requested name.
var ErrUnknown = errors.New("unknown command")

// Setup defines a command's flags on fs and returns the function run after fs.Parse succeeds.
// It is called for every execution, so flag values never leak from one run to the next.
type Setup func(fs *flag.FlagSet) func() error

// Command is a subcommand with its own flags.
type Command struct {
	Name  string
	Usage string
	setup Setup
}

// Registry holds subcommands by name. Add commands with Register; run with Execute or Run.
type Registry struct {
	cmds map[string]*Command
}

// NewRegistry returns an empty command registry.
func NewRegistry() *Registry {
	return &Registry{cmds: make(map[string]*Command)}
}

// Register adds a subcommand, replacing any command with the same name.
func (r *Registry) Register(name, usage string, setup Setup) {
	r.cmds[name] = &Command{Name: name, Usage: usage, setup: setup}
}

// Names returns the registered command names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.cmds))
	for n := range r.cmds {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Help returns one "name - usage" line per command.
func (r *Registry) Help() []string {
	var out []string
	for _, n := range r.Names() {
		out = append(out, fmt.Sprintf("%s - %s", n, r.cmds[n].Usage))
	}
	return out
}

// Parse splits line into fields. Blank lines and lines starting with '#' yield no args.
func Parse(line string) []string {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}
	return strings.Fields(line)
}

// Execute runs the subcommand in args[0] with args[1:] as flag/positional arguments.
// Returns an error for unknown command, parse error, or from the command itself.
func (r *Registry) Execute(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing subcommand")
	}
	name := args[0]
	cmd, ok := r.cmds[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknown, name)
	}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	run := cmd.setup(fs)
	if err := fs.Parse(args[1:]); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if run == nil {
		return nil
	}
	return run()
}

// Run parses line and executes it. An empty or comment line is a no-op.
func (r *Registry) Run(line string) error {
	args := Parse(line)
	if args == nil {
		return nil
	}
	return r.Execute(args)
}
