// Package loader reads id,filename catalogs exported from a repository
// manager (for example `hammer --csv`).
package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ralt/rpmring/internal/models"
	"github.com/ralt/rpmring/internal/utils"
	"github.com/sirupsen/logrus"
)

// LoadCSV reads a two column id,filename file. Files ending in .gz or .xz
// are decompressed on the fly.
func LoadCSV(path string) (*models.Catalog, error) {
	if path == "" {
		return nil, &models.RingError{
			Type: models.ErrInputLoad,
			Err:  fmt.Errorf("no csv file given"),
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &models.RingError{
			Type:    models.ErrInputLoad,
			Package: path,
			Err:     fmt.Errorf("failed to open file: %w", err),
		}
	}
	defer f.Close()

	r, err := utils.NewDecompressingReader(f, path)
	if err != nil {
		return nil, &models.RingError{
			Type:    models.ErrInputLoad,
			Package: path,
			Err:     err,
		}
	}
	defer r.Close()

	catalog, err := ReadCSV(r)
	if err != nil {
		return nil, &models.RingError{
			Type:    models.ErrInputLoad,
			Package: path,
			Err:     err,
		}
	}

	logrus.Debugf("Loaded %d records from %s", catalog.Len(), path)
	return catalog, nil
}

// ReadCSV reads id,filename records from r. A repeated id replaces the
// earlier filename and keeps the earlier position.
func ReadCSV(r io.Reader) (*models.Catalog, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	catalog := models.NewCatalog()
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv: %w", err)
		}
		if len(row) < 2 {
			line, _ := cr.FieldPos(0)
			return nil, fmt.Errorf("line %d: expected id,filename, got %d field(s)", line, len(row))
		}

		if prev, ok := catalog.Get(row[0]); ok {
			logrus.Debugf("Duplicate id %s: %s replaces %s", row[0], row[1], prev)
		}
		catalog.Put(row[0], row[1])
	}

	return catalog, nil
}
