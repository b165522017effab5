package retention

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ralt/rpmring/internal/models"
)

// VersionOrder ranks the versions of one package name, newest first.
// The input is in encounter order.
type VersionOrder interface {
	Order(versions []string) []string
}

// InsertionOrder treats the most recently encountered version as the newest.
// No version comparison is done; catalogs exported in upload order rank
// correctly with it.
type InsertionOrder struct{}

// Order returns versions reversed
func (InsertionOrder) Order(versions []string) []string {
	out := make([]string, len(versions))
	for i, v := range versions {
		out[len(versions)-1-i] = v
	}
	return out
}

// NumericOrder compares dotted numeric versions component by component.
// Versions that compare equal keep reverse encounter order.
type NumericOrder struct{}

// Order returns versions sorted highest first
func (NumericOrder) Order(versions []string) []string {
	out := InsertionOrder{}.Order(versions)
	sort.SliceStable(out, func(i, j int) bool {
		return compareVersions(out[i], out[j]) > 0
	})
	return out
}

const (
	OrderInsertion = "insertion"
	OrderNumeric   = "numeric"
)

// OrderByName resolves a strategy name as used in flags and config files
func OrderByName(name string) (VersionOrder, error) {
	switch strings.ToLower(name) {
	case "", OrderInsertion:
		return InsertionOrder{}, nil
	case OrderNumeric:
		return NumericOrder{}, nil
	default:
		return nil, &models.RingError{
			Type: models.ErrInvalidConfig,
			Err:  fmt.Errorf("unknown version order %q (want %s or %s)", name, OrderInsertion, OrderNumeric),
		}
	}
}

// compareVersions compares two dotted digit strings. A missing component
// counts as lower, so 1.2.3.1 > 1.2.3.
func compareVersions(a, b string) int {
	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")
	for i := 0; i < len(as) && i < len(bs); i++ {
		if c := compareDigits(as[i], bs[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(as) > len(bs):
		return 1
	case len(as) < len(bs):
		return -1
	}
	return 0
}

// compareDigits compares digit runs of any length without converting them
func compareDigits(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		if len(a) > len(b) {
			return 1
		}
		return -1
	}
	return strings.Compare(a, b)
}
