package main

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
)

// errUsage means devtool was called without a command or with one it does
// not know; the caller prints help and exits non-zero
var errUsage = errors.New("usage")

// Command is one devtool subcommand. Run receives the arguments after the
// command name.
type Command interface {
	Name() string
	Description() string
	Run(args []string) error
}

// Registry maps command names to commands
type Registry struct {
	commands map[string]Command
}

// NewRegistry returns an empty registry
func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]Command)}
}

// Register adds cmd. Registering the same name twice is a programming error.
func (r *Registry) Register(cmd Command) {
	if _, dup := r.commands[cmd.Name()]; dup {
		panic("devtool: duplicate command " + cmd.Name())
	}
	r.commands[cmd.Name()] = cmd
}

// Get looks a command up by name
func (r *Registry) Get(name string) (Command, bool) {
	cmd, ok := r.commands[name]
	return cmd, ok
}

// List returns the commands ordered by name
func (r *Registry) List() []Command {
	cmds := make([]Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		cmds = append(cmds, cmd)
	}
	slices.SortFunc(cmds, func(a, b Command) int {
		return strings.Compare(a.Name(), b.Name())
	})
	return cmds
}

// Dispatch runs the command named by args[0]. A missing or unknown name
// returns an error wrapping errUsage.
func (r *Registry) Dispatch(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: no command given", errUsage)
	}
	cmd, ok := r.Get(args[0])
	if !ok {
		return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}
	if err := cmd.Run(args[1:]); err != nil {
		return fmt.Errorf("%s failed: %w", cmd.Name(), err)
	}
	return nil
}

// PrintHelp writes usage and one aligned line per command to w
func (r *Registry) PrintHelp(w io.Writer) {
	cmds := r.List()
	width := 0
	for _, cmd := range cmds {
		width = max(width, len(cmd.Name()))
	}

	fmt.Fprintln(w, "Usage: devtool <command> [args...]")
	fmt.Fprintln(w, "\nAvailable Commands:")
	for _, cmd := range cmds {
		fmt.Fprintf(w, "  %-*s  %s\n", width, cmd.Name(), cmd.Description())
	}
}
