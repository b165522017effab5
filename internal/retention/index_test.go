package retention

import (
	"errors"
	"reflect"
	"testing"

	"github.com/ralt/rpmring/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

// catalogOf builds a catalog from alternating id, filename arguments
func catalogOf(pairs ...string) *models.Catalog {
	c := models.NewCatalog()
	for i := 0; i+1 < len(pairs); i += 2 {
		c.Put(pairs[i], pairs[i+1])
	}
	return c
}

func TestBuildIndexGroupsByNameAndVersion(t *testing.T) {
	idx, err := BuildIndex(catalogOf(
		"1", "foo-1.0.0-1.x86_64.rpm",
		"2", "foo-1.0.0-2.x86_64.rpm",
		"3", "bar-2.0.0-1.noarch.rpm",
		"4", "foo-1.1.0.x86_64.rpm",
		"5", "foo-1.0.0-0.3.snapshot.x86_64.rpm",
	))
	if err != nil {
		t.Fatalf("BuildIndex failed: %v", err)
	}

	if got := idx.Names(); !reflect.DeepEqual(got, []string{"foo", "bar"}) {
		t.Errorf("Names() = %v", got)
	}
	if got := idx.Versions("foo"); !reflect.DeepEqual(got, []string{"1.0.0", "1.1.0"}) {
		t.Errorf("Versions(foo) = %v", got)
	}

	b, ok := idx.Bucket("foo", "1.0.0")
	if !ok {
		t.Fatal("Missing bucket foo 1.0.0")
	}
	if !reflect.DeepEqual(b.PrimaryIDs, []string{"1"}) {
		t.Errorf("PrimaryIDs = %v", b.PrimaryIDs)
	}
	wantReleases := []ReleaseEntry{{ID: "2", Label: "2"}, {ID: "5", Label: "0.3.snapshot"}}
	if !reflect.DeepEqual(b.Releases, wantReleases) {
		t.Errorf("Releases = %+v, want %+v", b.Releases, wantReleases)
	}

	// A missing release counts as the primary build
	b, _ = idx.Bucket("foo", "1.1.0")
	if !reflect.DeepEqual(b.PrimaryIDs, []string{"4"}) || len(b.Releases) != 0 {
		t.Errorf("foo 1.1.0 bucket = %+v", b)
	}

	if _, ok := idx.Bucket("foo", "9.9.9"); ok {
		t.Error("Unexpected bucket for unknown version")
	}
	if idx.Versions("baz") != nil {
		t.Error("Unexpected versions for unknown name")
	}
}

func TestBuildIndexEmptyInput(t *testing.T) {
	if _, err := BuildIndex(nil); !errors.Is(err, ErrNoInput) {
		t.Errorf("BuildIndex(nil) error = %v, want ErrNoInput", err)
	}
	if _, err := BuildIndex(models.NewCatalog()); !errors.Is(err, ErrNoInput) {
		t.Errorf("BuildIndex(empty) error = %v, want ErrNoInput", err)
	}
}

func TestBuildIndexNothingParses(t *testing.T) {
	idx, err := BuildIndex(catalogOf("1", "garbage", "2", "package-2:1.2.3-4.x86_64.rpm"))
	if err != nil {
		t.Fatalf("BuildIndex failed: %v", err)
	}
	if idx.Len() != 0 {
		t.Errorf("Len() = %d, want 0", idx.Len())
	}
	if !reflect.DeepEqual(idx.Skipped(), []string{"1", "2"}) {
		t.Errorf("Skipped() = %v", idx.Skipped())
	}
}

func TestBuildIndexEveryIDInOneBucket(t *testing.T) {
	catalog := catalogOf(
		"1", "foo-1.0.0-1.x86_64.rpm",
		"2", "foo-1.0.0-2.x86_64.rpm",
		"3", "foo-1.0.0-1.x86_64.rpm",
		"4", "foo-2.0.0-7.x86_64.rpm",
		"5", "not-an-rpm",
		"6", "bar-0.0.1.noarch.rpm",
	)
	idx, err := BuildIndex(catalog)
	if err != nil {
		t.Fatalf("BuildIndex failed: %v", err)
	}

	seen := make(map[string]int)
	for _, name := range idx.Names() {
		for _, v := range idx.Versions(name) {
			b, _ := idx.Bucket(name, v)
			for _, id := range b.IDs() {
				seen[id]++
			}
		}
	}
	for _, id := range []string{"1", "2", "3", "4", "6"} {
		if seen[id] != 1 {
			t.Errorf("id %s appears %d times in the index", id, seen[id])
		}
	}
	if seen["5"] != 0 {
		t.Error("Unparseable id 5 was indexed")
	}
}

func TestBuildIndexWarnsOncePerSkippedEntry(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	_, err := BuildIndex(catalogOf(
		"1", "foo-1.0.0-1.x86_64.rpm",
		"2", "foo-1.2.3rc1-4.x86_64.rpm",
	))
	if err != nil {
		t.Fatalf("BuildIndex failed: %v", err)
	}

	warnings := 0
	for _, e := range hook.AllEntries() {
		if e.Level <= logrus.WarnLevel {
			warnings++
		}
	}
	if warnings != 1 {
		t.Errorf("Got %d warnings for one unparseable entry, want 1", warnings)
	}
}
