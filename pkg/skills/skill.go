// Package skills discovers skill directories under a single root and turns
// the SKILL.md header of each one into a Descriptor. A skill directory is an
// immediate child of the root; its name becomes the descriptor's slug.
package skills

// Descriptor is the catalog record extracted from one skill directory.
// Field order matches the serialized catalog.
type Descriptor struct {
	Name        string   `json:"name"`
	Slug        string   `json:"slug"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
}

// Skip records why a directory contributed no descriptor.
type Skip struct {
	Slug   string
	Reason error
}
