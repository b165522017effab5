package models

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// Catalog is an insertion-ordered id -> filename mapping.
//
// Writing an id that is already present replaces its filename but keeps the
// position where the id was first seen, so duplicate ids in an input file
// resolve to the last value.
type Catalog struct {
	entries *linkedhashmap.Map
}

// NewCatalog creates an empty catalog
func NewCatalog() *Catalog {
	return &Catalog{entries: linkedhashmap.New()}
}

// Put records filename under id
func (c *Catalog) Put(id, filename string) {
	c.entries.Put(id, filename)
}

// Get returns the filename recorded for id
func (c *Catalog) Get(id string) (string, bool) {
	v, ok := c.entries.Get(id)
	if !ok {
		return "", false
	}
	return v.(string), true
}

// Len returns the number of distinct ids
func (c *Catalog) Len() int {
	if c == nil || c.entries == nil {
		return 0
	}
	return c.entries.Size()
}

// Refs returns the records in insertion order
func (c *Catalog) Refs() []PackageRef {
	if c.Len() == 0 {
		return nil
	}
	refs := make([]PackageRef, 0, c.entries.Size())
	it := c.entries.Iterator()
	for it.Next() {
		refs = append(refs, PackageRef{
			ID:       it.Key().(string),
			Filename: it.Value().(string),
		})
	}
	return refs
}
