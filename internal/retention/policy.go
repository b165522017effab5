// Package retention decides which RPM builds in a catalog are stale.
//
// A catalog is first grouped into a NameIndex (package name, then version),
// then Select walks each name applying a two-tier Policy: whole versions
// beyond VersionsToKeep are retired, and inside each kept version only the
// newest ReleasesPerVersionToKeep snapshot builds and the lowest-sorted
// primary build survive.
package retention

import (
	"errors"
	"fmt"

	"github.com/ralt/rpmring/internal/models"
)

// ErrNoInput is returned when there is nothing to decide over. It is not a
// failure: callers treat it as an empty retirement list.
var ErrNoInput = errors.New("no input records")

const (
	DefaultVersionsToKeep           = 5
	DefaultReleasesPerVersionToKeep = 1
)

// Policy is the keep window applied per package name
type Policy struct {
	VersionsToKeep           int
	ReleasesPerVersionToKeep int
}

// DefaultPolicy returns the default keep window
func DefaultPolicy() Policy {
	return Policy{
		VersionsToKeep:           DefaultVersionsToKeep,
		ReleasesPerVersionToKeep: DefaultReleasesPerVersionToKeep,
	}
}

// Validate rejects negative windows
func (p Policy) Validate() error {
	if p.VersionsToKeep < 0 {
		return &models.RingError{
			Type: models.ErrInvalidConfig,
			Err:  fmt.Errorf("versions to keep must not be negative, got %d", p.VersionsToKeep),
		}
	}
	if p.ReleasesPerVersionToKeep < 0 {
		return &models.RingError{
			Type: models.ErrInvalidConfig,
			Err:  fmt.Errorf("releases per version to keep must not be negative, got %d", p.ReleasesPerVersionToKeep),
		}
	}
	return nil
}
