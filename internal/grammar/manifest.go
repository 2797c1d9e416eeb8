// Package grammar loads and verifies the AST grammar manifest. The
// grammar is externally versioned; the traversal and its per-field hook
// inventory are written against one grammar version, and this package
// detects drift between the manifest and the compiled node definitions
// before a stale hook set can silently skip a field.
package grammar

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/Masterminds/semver/v3"
)

// SupportedConstraint is the semver range of grammar versions the
// compiled hook inventory was written against.
const SupportedConstraint = ">= 1.4.0, < 2.0.0"

// Manifest is the decoded grammar manifest.
type Manifest struct {
	Version string          `toml:"version"`
	Kinds   map[string]Kind `toml:"kinds"`
}

// Kind is one composite node kind with its recursive field inventory,
// in field declaration order.
type Kind struct {
	Fields []string `toml:"fields"`
}

// Load reads and decodes a grammar manifest from path.
func Load(path string) (*Manifest, error) {
	var m Manifest
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return nil, fmt.Errorf("decoding grammar manifest %s: %w", path, err)
	}
	if m.Version == "" {
		return nil, fmt.Errorf("grammar manifest %s: missing version", path)
	}
	if _, err := semver.NewVersion(m.Version); err != nil {
		return nil, fmt.Errorf("grammar manifest %s: bad version %q: %w", path, m.Version, err)
	}
	return &m, nil
}

// CheckVersion reports an error when the manifest's grammar version
// falls outside the given semver constraint.
func (m *Manifest) CheckVersion(constraint string) error {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return fmt.Errorf("bad version constraint %q: %w", constraint, err)
	}

	v, err := semver.NewVersion(m.Version)
	if err != nil {
		return fmt.Errorf("bad manifest version %q: %w", m.Version, err)
	}

	if !c.Check(v) {
		return fmt.Errorf("grammar version %s outside supported range %s; regenerate the hook inventory", m.Version, constraint)
	}
	return nil
}
