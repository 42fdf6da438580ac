package main

import (
	"errors"
	"os"
)

func newRegistry() *Registry {
	r := NewRegistry()
	r.Register(&MigrateCommand{})
	r.Register(&WaitForDBCommand{})
	r.Register(&HealthCheckCommand{})
	r.Register(&CatalogCommand{})
	r.Register(&TokenCommand{})
	return r
}

func main() {
	registry := newRegistry()

	err := registry.Dispatch(os.Args[1:])
	if err == nil {
		return
	}
	PrintError("%v", err)
	if errors.Is(err, errUsage) {
		registry.PrintHelp(os.Stdout)
	}
	os.Exit(1)
}
