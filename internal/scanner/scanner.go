package scanner

import (
	"context"

	"github.com/ralt/rpmring/internal/models"
)

// ScannedPackage represents an RPM file found during scanning
type ScannedPackage struct {
	Path string
	Size int64
}

// Scanner interface for building a catalog from package files on disk
type Scanner interface {
	// Scan recursively scans a directory for RPM files
	Scan(ctx context.Context, dir string) ([]ScannedPackage, error)

	// Catalog maps every RPM under dir to its package filename
	Catalog(ctx context.Context, dir string) (*models.Catalog, error)
}
