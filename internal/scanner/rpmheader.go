package scanner

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sassoftware/go-rpmutils"
)

// packageFilename returns the canonical name-version-release.arch.rpm of the
// RPM at path, read from its header
func packageFilename(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	rpm, err := rpmutils.ReadRpm(f)
	if err != nil {
		return "", fmt.Errorf("failed to read RPM: %w", err)
	}

	name := getStringTag(rpm, rpmutils.NAME)
	version := getStringTag(rpm, rpmutils.VERSION)
	release := getStringTag(rpm, rpmutils.RELEASE)
	arch := getStringTag(rpm, rpmutils.ARCH)
	if name == "" || version == "" || arch == "" {
		return "", fmt.Errorf("RPM header of %s lacks name, version or arch", filepath.Base(path))
	}

	if release == "" {
		return fmt.Sprintf("%s-%s.%s.rpm", name, version, arch), nil
	}
	return fmt.Sprintf("%s-%s-%s.%s.rpm", name, version, release, arch), nil
}

// getStringTag safely gets a string tag from RPM
func getStringTag(rpm *rpmutils.Rpm, tag int) string {
	val, err := rpm.Header.Get(tag)
	if err != nil {
		return ""
	}

	// Handle different types that might be returned
	switch v := val.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case []string:
		if len(v) > 0 {
			return v[0]
		}
	default:
		return fmt.Sprintf("%v", v)
	}

	return ""
}
