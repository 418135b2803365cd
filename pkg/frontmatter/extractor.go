package frontmatter

import (
	"sort"

	"github.com/pkg/errors"
)

// Extractor pulls individual field values out of a header block. Missing or
// malformed fields degrade to "" or an empty slice, never to an error.
type Extractor interface {
	// Scalar returns the value of a top-level key.
	Scalar(header, key string) string
	// IndentedScalar returns the value of a key that may be nested one level deep.
	IndentedScalar(header, key string) string
	// List returns the items of an inline list value.
	List(header, key string) []string
}

// Extractor names accepted by NewExtractor.
const (
	ExtractorLine = "line"
	ExtractorYAML = "yaml"
)

var extractors = map[string]Extractor{
	ExtractorLine: LineExtractor{},
	ExtractorYAML: YAMLExtractor{},
}

// NewExtractor returns the extractor registered under name. An empty name
// selects the line scanner.
func NewExtractor(name string) (Extractor, error) {
	if name == "" {
		name = ExtractorLine
	}

	ex, ok := extractors[name]
	if !ok {
		return nil, errors.Errorf("unknown extractor %q, expected one of %v", name, ExtractorNames())
	}
	return ex, nil
}

// ExtractorNames lists the registered extractor names in sorted order.
func ExtractorNames() []string {
	names := make([]string, 0, len(extractors))
	for name := range extractors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LineExtractor is the default Extractor. It scans the header line by line
// and uses indentation as the only structural signal.
type LineExtractor struct{}

// Scalar implements Extractor.
func (LineExtractor) Scalar(header, key string) string { return Scalar(header, key) }

// IndentedScalar implements Extractor.
func (LineExtractor) IndentedScalar(header, key string) string { return IndentedScalar(header, key) }

// List implements Extractor.
func (LineExtractor) List(header, key string) []string { return List(header, key) }
