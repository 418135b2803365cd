package frontmatter

import (
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// nestedKey is the parent mapping IndentedScalar falls back to when a key
// has no top-level value. Both extractors use it.
const nestedKey = "metadata"

// YAMLExtractor decodes the header with a real YAML parser. Multi-line
// string values are folded to single spaces so the output matches
// LineExtractor for well-formed headers. A header that is not valid YAML
// yields empty values for every key.
type YAMLExtractor struct{}

// Scalar implements Extractor.
func (y YAMLExtractor) Scalar(header, key string) string {
	return stringValue(y.decode(header)[key])
}

// IndentedScalar implements Extractor.
func (y YAMLExtractor) IndentedScalar(header, key string) string {
	doc := y.decode(header)
	if v := stringValue(doc[key]); v != "" {
		return v
	}

	nested, ok := doc[nestedKey].(map[string]interface{})
	if !ok {
		return ""
	}
	return stringValue(nested[key])
}

// List implements Extractor. A scalar value is treated as a one item list.
func (y YAMLExtractor) List(header, key string) []string {
	items := []string{}

	raw, ok := y.decode(header)[key]
	if !ok || raw == nil {
		return items
	}

	var decoded []string
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &decoded,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return items
	}
	if err := decoder.Decode(raw); err != nil {
		return items
	}

	for _, item := range decoded {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func (YAMLExtractor) decode(header string) map[string]interface{} {
	var doc map[string]interface{}
	if err := yaml.Unmarshal([]byte(header), &doc); err != nil {
		return nil
	}
	return doc
}

func stringValue(v interface{}) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return fold(value)
	case map[string]interface{}, []interface{}:
		return ""
	default:
		return fmt.Sprint(value)
	}
}

// fold joins the non-blank lines of s with single spaces.
func fold(s string) string {
	var parts []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			parts = append(parts, line)
		}
	}
	return strings.Join(parts, " ")
}
