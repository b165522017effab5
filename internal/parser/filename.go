// Package parser splits RPM filenames into name, version, release and arch.
//
// Only plain numeric versions of three to five components are recognized.
// Epochs (2:1.2.3) and qualifiers fused into the version (1.2.3rc1) are
// rejected rather than guessed at.
package parser

import (
	"errors"
	"regexp"
	"strings"

	"github.com/ralt/rpmring/internal/models"
	"github.com/sirupsen/logrus"
)

// ErrUnrecognized is wrapped by every parse failure
var ErrUnrecognized = errors.New("unrecognized rpm filename")

// name-version[-release].arch.rpm
var filenameRe = regexp.MustCompile(
	`^(?P<name>.+)-(?P<version>\d+\.\d+\.\d+(?:\.\d+){0,2})(?P<release>-.*)?\.(?P<arch>\w+)\.(?P<ext>rpm)$`,
)

var (
	nameIdx    = filenameRe.SubexpIndex("name")
	versionIdx = filenameRe.SubexpIndex("version")
	releaseIdx = filenameRe.SubexpIndex("release")
	archIdx    = filenameRe.SubexpIndex("arch")
)

// Parse extracts the structural tokens from an RPM filename.
// It returns either a complete ParsedName or an error, never a partial result.
func Parse(filename string) (*models.ParsedName, error) {
	m := filenameRe.FindStringSubmatch(filename)
	if m == nil || m[nameIdx] == "" || m[versionIdx] == "" || m[archIdx] == "" {
		logrus.Warnf("Error parsing package %q", filename)
		return nil, &models.RingError{
			Type:    models.ErrPackageParse,
			Package: filename,
			Err:     ErrUnrecognized,
		}
	}

	return &models.ParsedName{
		Name:    m[nameIdx],
		Version: m[versionIdx],
		Release: strings.TrimLeft(m[releaseIdx], "-"),
		Arch:    m[archIdx],
	}, nil
}
