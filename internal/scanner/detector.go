package scanner

import (
	"bytes"
	"os"
	"path/filepath"
)

// RPM packages start with 0xED 0xAB 0xEE 0xDB
var rpmMagic = []byte{0xED, 0xAB, 0xEE, 0xDB}

// IsRPM reports whether path looks like an RPM, by lead magic or extension
func IsRPM(path string) (bool, error) {
	if filepath.Ext(path) == ".rpm" {
		return true, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	header := make([]byte, len(rpmMagic))
	n, err := f.Read(header)
	if err != nil && n == 0 {
		// Empty files are simply not RPMs
		return false, nil
	}

	return bytes.HasPrefix(header[:n], rpmMagic), nil
}
