package scanner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ralt/rpmring/internal/models"
	"github.com/ralt/rpmring/internal/utils"
	"github.com/sirupsen/logrus"
)

// FileSystemScanner implements Scanner interface for filesystem scanning
type FileSystemScanner struct{}

var _ Scanner = (*FileSystemScanner)(nil)

// NewFileSystemScanner creates a new filesystem scanner
func NewFileSystemScanner() *FileSystemScanner {
	return &FileSystemScanner{}
}

// Scan recursively scans a directory for RPM files in lexical order
func (s *FileSystemScanner) Scan(ctx context.Context, dir string) ([]ScannedPackage, error) {
	var packages []ScannedPackage

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		// Check context cancellation
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if info.IsDir() {
			return nil
		}

		ok, err := IsRPM(path)
		if err != nil {
			logrus.Warnf("Failed to detect type for %s: %v", path, err)
			return nil
		}
		if !ok {
			return nil
		}

		logrus.Debugf("Found rpm package: %s", path)

		packages = append(packages, ScannedPackage{
			Path: path,
			Size: info.Size(),
		})

		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to scan directory: %w", err)
	}

	logrus.Infof("Found %d packages in %s", len(packages), dir)
	return packages, nil
}

// Catalog scans dir and maps each RPM's path relative to dir to its package
// filename. The filename comes from the RPM header when it can be read, so
// renamed files are still grouped correctly; otherwise the base name is used.
func (s *FileSystemScanner) Catalog(ctx context.Context, dir string) (*models.Catalog, error) {
	scanned, err := s.Scan(ctx, dir)
	if err != nil {
		return nil, &models.RingError{
			Type:    models.ErrInputLoad,
			Package: dir,
			Err:     err,
		}
	}

	catalog := models.NewCatalog()
	for _, pkg := range scanned {
		id, err := utils.RelativeID(dir, pkg.Path)
		if err != nil {
			return nil, &models.RingError{
				Type:    models.ErrInputLoad,
				Package: pkg.Path,
				Err:     err,
			}
		}

		filename, err := packageFilename(pkg.Path)
		if err != nil {
			logrus.Debugf("Using file name for %s: %v", pkg.Path, err)
			filename = filepath.Base(pkg.Path)
		}

		catalog.Put(id, filename)
	}

	return catalog, nil
}
