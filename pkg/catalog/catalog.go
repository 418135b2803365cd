// Package catalog folds skill descriptors into the consolidated catalog and
// writes it out as a single JSON document.
package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/rogpeppe/go-internal/lockedfile"

	"github.com/jingkaihe/skillindex/pkg/skills"
)

// TimestampFormat is the UTC, millisecond precision layout of UpdatedAt.
const TimestampFormat = "2006-01-02T15:04:05.000Z"

// Catalog is the serialized index of every kept skill.
type Catalog struct {
	Skills     []skills.Descriptor `json:"skills"`
	Categories []string            `json:"categories"`
	UpdatedAt  string              `json:"updatedAt"`
}

// Build assembles a catalog from descriptors in the order given. Descriptors
// without a name are dropped, and categories are derived only from the ones kept.
func Build(descriptors []skills.Descriptor, now time.Time) *Catalog {
	kept := make([]skills.Descriptor, 0, len(descriptors))
	for _, d := range descriptors {
		if d.Name == "" {
			continue
		}
		if d.Tags == nil {
			d.Tags = []string{}
		}
		kept = append(kept, d)
	}

	return &Catalog{
		Skills:     kept,
		Categories: Categories(kept),
		UpdatedAt:  now.UTC().Format(TimestampFormat),
	}
}

// Categories returns the sorted, deduplicated set of non-empty categories.
func Categories(descriptors []skills.Descriptor) []string {
	seen := make(map[string]struct{})
	categories := []string{}

	for _, d := range descriptors {
		if d.Category == "" {
			continue
		}
		if _, ok := seen[d.Category]; ok {
			continue
		}
		seen[d.Category] = struct{}{}
		categories = append(categories, d.Category)
	}

	sort.Strings(categories)
	return categories
}

// Equivalent reports whether a and b list the same skills and categories.
// UpdatedAt is ignored.
func Equivalent(a, b *Catalog) bool {
	return reflect.DeepEqual(a.Skills, b.Skills) && reflect.DeepEqual(a.Categories, b.Categories)
}

// Summary is the one-line report printed after a run.
func (c *Catalog) Summary() string {
	return fmt.Sprintf("Indexed %d skills across %d categories", len(c.Skills), len(c.Categories))
}

// Marshal renders the catalog as two-space indented JSON with a trailing newline.
func Marshal(c *Catalog) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	if err := enc.Encode(c); err != nil {
		return nil, errors.Wrap(err, "failed to marshal catalog")
	}
	return buf.Bytes(), nil
}

// Write replaces the file at path with the serialized catalog. The data is
// written to a temporary file in the same directory and renamed into place,
// so a failure at any point leaves the previous file untouched.
func Write(path string, c *Catalog) error {
	data, err := Marshal(c)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "failed to create directory for %s", path)
	}

	tempFile, err := os.CreateTemp(dir, "."+filepath.Base(path)+"-*.tmp")
	if err != nil {
		return errors.Wrapf(err, "failed to create temporary file for %s", path)
	}
	tempPath := tempFile.Name()

	success := false
	defer func() {
		if !success {
			os.Remove(tempPath)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		tempFile.Close()
		return errors.Wrapf(err, "failed to write catalog to %s", tempPath)
	}
	if err := tempFile.Sync(); err != nil {
		tempFile.Close()
		return errors.Wrapf(err, "failed to sync catalog %s", tempPath)
	}
	if err := tempFile.Close(); err != nil {
		return errors.Wrapf(err, "failed to close catalog %s", tempPath)
	}

	// CreateTemp uses 0600.
	if err := os.Chmod(tempPath, 0o644); err != nil {
		return errors.Wrapf(err, "failed to set permissions on %s", tempPath)
	}

	if err := os.Rename(tempPath, path); err != nil {
		return errors.Wrapf(err, "failed to write catalog to %s", path)
	}

	success = true
	return nil
}

// Read loads a previously written catalog under a shared file lock.
func Read(path string) (*Catalog, error) {
	data, err := lockedfile.Read(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read catalog %s", path)
	}

	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, errors.Wrapf(err, "failed to parse catalog %s", path)
	}
	return &c, nil
}
