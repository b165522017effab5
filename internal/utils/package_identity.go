package utils

import (
	"fmt"

	"github.com/ralt/rpmring/internal/models"
)

// PackageIdentity returns a unique identifier for a parsed RPM build
func PackageIdentity(p models.ParsedName) string {
	release := p.Release
	if release == "" {
		release = models.PrimaryRelease
	}
	return fmt.Sprintf("%s:%s:%s:%s", p.Name, p.Version, release, p.Arch)
}

// DuplicateTracker remembers which id first claimed each build identity
type DuplicateTracker struct {
	seen map[string]string
}

// NewDuplicateTracker creates an empty tracker
func NewDuplicateTracker() *DuplicateTracker {
	return &DuplicateTracker{seen: make(map[string]string)}
}

// Observe records id as carrying build p. If another id already carried the
// same build, that id is returned with ok set.
func (d *DuplicateTracker) Observe(id string, p models.ParsedName) (string, bool) {
	key := PackageIdentity(p)
	if first, ok := d.seen[key]; ok {
		return first, true
	}
	d.seen[key] = id
	return "", false
}
