package main

import (
	"fmt"
	"io"
	"os"

	compinject "github.com/alnah/go-compinject"
	"github.com/alnah/go-compinject/internal/config"
	"github.com/alnah/go-compinject/internal/yamlutil"
)

// registryDump is the YAML shape printed by "list --yaml". It matches the
// components section of the config file, so the output can be pasted there.
type registryDump struct {
	Components []compinject.Component `yaml:"components"`
}

// runListCmd prints the built-in components plus any from the config file.
func runListCmd(args []string, env *Environment) int {
	flags, _, err := parseListFlags(args, env.Stderr)
	if err != nil {
		return ExitUsage
	}

	registry, err := listRegistry(flags.config)
	if err != nil {
		fmt.Fprintln(env.Stderr, err.Error()+errorHint(err, flags.config, os.Getenv))
		return exitCodeFor(err)
	}

	if flags.yaml {
		out, err := yamlutil.Marshal(registryDump{Components: registry.Components()})
		if err != nil {
			fmt.Fprintln(env.Stderr, err)
			return ExitGeneral
		}
		_, _ = env.Stdout.Write(out)
		return ExitSuccess
	}

	printRegistry(env.Stdout, registry)
	return ExitSuccess
}

func listRegistry(configName string) (*compinject.Registry, error) {
	registry := compinject.DefaultRegistry()
	if configName == "" {
		return registry, nil
	}

	cfg, err := config.LoadConfig(configName)
	if err != nil {
		return nil, err
	}
	for _, e := range cfg.Components {
		registry = registry.With(compinject.Component{Name: e.Name, Assets: e.Assets})
	}
	return registry, nil
}

// printRegistry writes one block per component, sorted by name.
func printRegistry(w io.Writer, r *compinject.Registry) {
	for _, name := range r.Names() {
		assets, _ := r.Lookup(name)
		fmt.Fprintln(w, name)
		for _, a := range assets {
			fmt.Fprintf(w, "  %-11s %s\n", compinject.KindOf(a), a)
		}
	}
}
