package models

import "fmt"

// PrimaryRelease is the release token that marks the canonical build of a version
const PrimaryRelease = "1"

// PackageRef is one catalog record: an opaque id and the RPM filename it points at
type PackageRef struct {
	ID       string
	Filename string
}

// ParsedName holds the structural tokens of an RPM filename
type ParsedName struct {
	Name    string
	Version string
	Release string // empty when the filename carries no release
	Arch    string
}

// IsPrimary reports whether this is the canonical build of its version.
// Any release other than "1" is a snapshot or rebuild.
func (p ParsedName) IsPrimary() bool {
	return p.Release == "" || p.Release == PrimaryRelease
}

// String renders the name back as name-version[-release].arch
func (p ParsedName) String() string {
	if p.Release == "" {
		return fmt.Sprintf("%s-%s.%s", p.Name, p.Version, p.Arch)
	}
	return fmt.Sprintf("%s-%s-%s.%s", p.Name, p.Version, p.Release, p.Arch)
}
