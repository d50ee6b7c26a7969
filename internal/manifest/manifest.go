// Package manifest holds the built-in component table, embedded at compile
// time as YAML, and the parser shared with user-supplied component lists.
package manifest

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/alnah/go-compinject/internal/yamlutil"
)

//go:embed components.yaml
var builtin []byte

// Sentinel errors for manifest operations.
var (
	// ErrInvalidManifest indicates the manifest could not be decoded.
	ErrInvalidManifest = errors.New("invalid component manifest")

	// ErrEmptyName indicates an entry without a component name.
	ErrEmptyName = errors.New("component name cannot be empty")

	// ErrDuplicateName indicates two entries share a component name.
	ErrDuplicateName = errors.New("duplicate component name")

	// ErrNoAssets indicates an entry that lists no assets.
	ErrNoAssets = errors.New("component has no assets")
)

// Entry is one named bundle of asset paths, in injection order.
type Entry struct {
	Name   string   `yaml:"name"`
	Assets []string `yaml:"assets"`
}

type document struct {
	Components []Entry `yaml:"components"`
}

// Builtin returns the embedded component table.
// Panics if the embedded manifest is malformed (programmer error).
func Builtin() []Entry {
	entries, err := Parse(builtin)
	if err != nil {
		panic("failed to parse embedded component manifest: " + err.Error())
	}
	return entries
}

// Parse decodes and validates a manifest document.
func Parse(data []byte) ([]Entry, error) {
	var doc document
	if err := yamlutil.UnmarshalStrict(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}
	if err := Validate(doc.Components); err != nil {
		return nil, err
	}
	return doc.Components, nil
}

// Validate checks names are present and unique and every entry has assets.
// Asset paths themselves are not checked: unknown extensions are skipped at
// import time rather than rejected here.
func Validate(entries []Entry) error {
	seen := make(map[string]struct{}, len(entries))
	for i, e := range entries {
		name := strings.TrimSpace(e.Name)
		if name == "" {
			return fmt.Errorf("%w: entry %d", ErrEmptyName, i)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateName, name)
		}
		seen[name] = struct{}{}
		if len(e.Assets) == 0 {
			return fmt.Errorf("%w: %q", ErrNoAssets, name)
		}
	}
	return nil
}
