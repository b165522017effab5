package retention

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/ralt/rpmring/internal/models"
	"github.com/ralt/rpmring/internal/parser"
	"github.com/ralt/rpmring/internal/utils"
	"github.com/sirupsen/logrus"
)

// ReleaseEntry is a non-primary build of a version
type ReleaseEntry struct {
	ID    string
	Label string
}

// VersionBucket collects every id seen for one (name, version)
type VersionBucket struct {
	Version    string
	PrimaryIDs []string
	Releases   []ReleaseEntry
}

// ReleaseIDs returns the ids of the release entries in encounter order
func (b *VersionBucket) ReleaseIDs() []string {
	ids := make([]string, 0, len(b.Releases))
	for _, r := range b.Releases {
		ids = append(ids, r.ID)
	}
	return ids
}

// IDs returns every id in the bucket, primaries first
func (b *VersionBucket) IDs() []string {
	ids := make([]string, 0, len(b.PrimaryIDs)+len(b.Releases))
	ids = append(ids, b.PrimaryIDs...)
	return append(ids, b.ReleaseIDs()...)
}

// NameIndex groups catalog ids by package name, then by version.
// Both levels keep encounter order.
type NameIndex struct {
	// name -> *linkedhashmap.Map of version -> *VersionBucket
	names   *linkedhashmap.Map
	skipped []string
}

func newNameIndex() *NameIndex {
	return &NameIndex{names: linkedhashmap.New()}
}

// Len returns the number of package names
func (x *NameIndex) Len() int {
	return x.names.Size()
}

// Names returns package names in encounter order
func (x *NameIndex) Names() []string {
	names := make([]string, 0, x.names.Size())
	for _, k := range x.names.Keys() {
		names = append(names, k.(string))
	}
	return names
}

// Versions returns the version keys of name in encounter order
func (x *NameIndex) Versions(name string) []string {
	versions, ok := x.versions(name)
	if !ok {
		return nil
	}
	keys := make([]string, 0, versions.Size())
	for _, k := range versions.Keys() {
		keys = append(keys, k.(string))
	}
	return keys
}

// Bucket returns the bucket for (name, version)
func (x *NameIndex) Bucket(name, version string) (*VersionBucket, bool) {
	versions, ok := x.versions(name)
	if !ok {
		return nil, false
	}
	b, ok := versions.Get(version)
	if !ok {
		return nil, false
	}
	return b.(*VersionBucket), true
}

// Skipped returns the ids whose filename could not be parsed
func (x *NameIndex) Skipped() []string {
	return x.skipped
}

func (x *NameIndex) versions(name string) (*linkedhashmap.Map, bool) {
	v, ok := x.names.Get(name)
	if !ok {
		return nil, false
	}
	return v.(*linkedhashmap.Map), true
}

func (x *NameIndex) add(id string, p *models.ParsedName) {
	versions, ok := x.versions(p.Name)
	if !ok {
		logrus.Debugf("New package name %s (version %s, release %q)", p.Name, p.Version, p.Release)
		versions = linkedhashmap.New()
		x.names.Put(p.Name, versions)
	}

	var bucket *VersionBucket
	if b, ok := versions.Get(p.Version); ok {
		bucket = b.(*VersionBucket)
	} else {
		logrus.Debugf("New version %s for package %s", p.Version, p.Name)
		bucket = &VersionBucket{Version: p.Version}
		versions.Put(p.Version, bucket)
	}

	if p.IsPrimary() {
		bucket.PrimaryIDs = append(bucket.PrimaryIDs, id)
	} else {
		bucket.Releases = append(bucket.Releases, ReleaseEntry{ID: id, Label: p.Release})
	}
}

// BuildIndex parses every catalog filename and groups the ids by name and
// version. Entries whose filename does not parse are logged and skipped.
//
// An empty or nil catalog returns ErrNoInput. A catalog in which nothing
// parses returns an index with no names and a nil error.
func BuildIndex(catalog *models.Catalog) (*NameIndex, error) {
	if catalog.Len() == 0 {
		logrus.Warn("Got empty catalog")
		return nil, ErrNoInput
	}

	idx := newNameIndex()
	dups := utils.NewDuplicateTracker()

	for _, ref := range catalog.Refs() {
		parsed, err := parser.Parse(ref.Filename)
		if err != nil {
			logrus.Debugf("Omitting package %s (id %s): %v", ref.Filename, ref.ID, err)
			idx.skipped = append(idx.skipped, ref.ID)
			continue
		}

		if first, dup := dups.Observe(ref.ID, *parsed); dup {
			logrus.Debugf("Id %s duplicates build %s already held by id %s", ref.ID, parsed, first)
		}

		idx.add(ref.ID, parsed)
	}

	if idx.Len() == 0 {
		logrus.Warnf("None of the %d catalog entries could be parsed", catalog.Len())
	}

	return idx, nil
}
