package loader

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/ralt/rpmring/internal/models"
	"github.com/ralt/rpmring/internal/utils"
)

const sample = `38778815,foo-1.0.0-1.x86_64.rpm
39188647,foo-1.0.0-20240101.x86_64.rpm
34609336,bar-2.1.0-1.noarch.rpm
`

func TestReadCSV(t *testing.T) {
	catalog, err := ReadCSV(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("ReadCSV failed: %v", err)
	}

	want := []models.PackageRef{
		{ID: "38778815", Filename: "foo-1.0.0-1.x86_64.rpm"},
		{ID: "39188647", Filename: "foo-1.0.0-20240101.x86_64.rpm"},
		{ID: "34609336", Filename: "bar-2.1.0-1.noarch.rpm"},
	}
	if got := catalog.Refs(); !reflect.DeepEqual(got, want) {
		t.Errorf("Refs() = %+v, want %+v", got, want)
	}
}

func TestReadCSVDuplicateIDLastWins(t *testing.T) {
	input := "1,a-1.0.0-1.x86_64.rpm\n2,b-1.0.0-1.x86_64.rpm\n1,c-1.0.0-1.x86_64.rpm\n"
	catalog, err := ReadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadCSV failed: %v", err)
	}

	want := []models.PackageRef{
		{ID: "1", Filename: "c-1.0.0-1.x86_64.rpm"},
		{ID: "2", Filename: "b-1.0.0-1.x86_64.rpm"},
	}
	if got := catalog.Refs(); !reflect.DeepEqual(got, want) {
		t.Errorf("Refs() = %+v, want %+v", got, want)
	}
}

func TestReadCSVEmpty(t *testing.T) {
	catalog, err := ReadCSV(strings.NewReader(""))
	if err != nil {
		t.Fatalf("ReadCSV failed: %v", err)
	}
	if catalog.Len() != 0 {
		t.Errorf("Len() = %d, want 0", catalog.Len())
	}
}

func TestReadCSVRejectsShortRows(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("1,foo-1.0.0-1.x86_64.rpm\n2\n"))
	if err == nil {
		t.Fatal("Expected error for single-field row")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("Error %q does not name the line", err)
	}
}

func TestLoadCSVCompressed(t *testing.T) {
	dir := t.TempDir()

	gz, err := utils.GzipCompress([]byte(sample))
	if err != nil {
		t.Fatalf("GzipCompress failed: %v", err)
	}
	xz, err := utils.XzCompress([]byte(sample))
	if err != nil {
		t.Fatalf("XzCompress failed: %v", err)
	}

	files := map[string][]byte{
		"plain.csv":     []byte(sample),
		"export.csv.gz": gz,
		"export.csv.xz": xz,
	}

	var want []models.PackageRef
	for name, data := range files {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, data, 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}

		catalog, err := LoadCSV(path)
		if err != nil {
			t.Fatalf("LoadCSV(%s) failed: %v", name, err)
		}
		if want == nil {
			want = catalog.Refs()
			continue
		}
		if got := catalog.Refs(); !reflect.DeepEqual(got, want) {
			t.Errorf("LoadCSV(%s) = %+v, want %+v", name, got, want)
		}
	}
	if len(want) != 3 {
		t.Errorf("Expected 3 records, got %d", len(want))
	}
}

func TestLoadCSVMissingFile(t *testing.T) {
	_, err := LoadCSV(filepath.Join(t.TempDir(), "missing.csv"))
	if !models.IsType(err, models.ErrInputLoad) {
		t.Errorf("LoadCSV(missing) error = %v, want InputLoad", err)
	}

	_, err = LoadCSV("")
	if !models.IsType(err, models.ErrInputLoad) {
		t.Errorf("LoadCSV(\"\") error = %v, want InputLoad", err)
	}
}
