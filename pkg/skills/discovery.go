package skills

import (
	"context"
	"os"
	"path/filepath"

	"github.com/gobwas/glob"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/jingkaihe/skillindex/pkg/frontmatter"
	"github.com/jingkaihe/skillindex/pkg/logger"
)

const (
	// DefaultSkillFile is the metadata file looked up inside every skill directory.
	DefaultSkillFile = "SKILL.md"
	// DefaultRoot is the skills root used when none is configured.
	DefaultRoot = "skills"
)

var (
	// ErrNoHeader is reported for a skill file without a complete header block.
	ErrNoHeader = errors.New("missing frontmatter header")
	// ErrMissingName is reported for a header without a name.
	ErrMissingName = errors.New("skill name is required in frontmatter")
)

// Discovery scans one root directory for skill directories.
type Discovery struct {
	root      string
	skillFile string
	exclude   []glob.Glob
	extractor frontmatter.Extractor
}

// Option is a function that configures a Discovery
type Option func(*Discovery) error

// WithRoot sets the directory whose immediate children are skill directories
func WithRoot(dir string) Option {
	return func(d *Discovery) error {
		if dir == "" {
			return errors.New("skills root must not be empty")
		}
		d.root = dir
		return nil
	}
}

// WithSkillFile sets the metadata file name looked up in each skill directory
func WithSkillFile(name string) Option {
	return func(d *Discovery) error {
		if name == "" {
			return errors.New("skill file name must not be empty")
		}
		d.skillFile = name
		return nil
	}
}

// WithExclude skips skill directories whose name matches any of the glob patterns
func WithExclude(patterns ...string) Option {
	return func(d *Discovery) error {
		for _, pattern := range patterns {
			if pattern == "" {
				continue
			}
			g, err := glob.Compile(pattern)
			if err != nil {
				return errors.Wrapf(err, "invalid exclude pattern %q", pattern)
			}
			d.exclude = append(d.exclude, g)
		}
		return nil
	}
}

// WithExtractor sets the strategy used to read header fields
func WithExtractor(ex frontmatter.Extractor) Option {
	return func(d *Discovery) error {
		if ex == nil {
			return errors.New("extractor must not be nil")
		}
		d.extractor = ex
		return nil
	}
}

// NewDiscovery creates a new skill discovery instance
func NewDiscovery(opts ...Option) (*Discovery, error) {
	d := &Discovery{
		root:      DefaultRoot,
		skillFile: DefaultSkillFile,
		extractor: frontmatter.LineExtractor{},
	}

	for _, opt := range opts {
		if err := opt(d); err != nil {
			return nil, err
		}
	}

	return d, nil
}

// Root returns the configured skills root
func (d *Discovery) Root() string {
	return d.root
}

// Result is the outcome of a discovery run.
type Result struct {
	// Descriptors holds one entry per kept directory, in directory name order.
	Descriptors []Descriptor
	// Skipped holds the directories that contributed nothing, in directory name order.
	Skipped []Skip
}

// Err combines the skip reasons into a single error, or returns nil when
// nothing was skipped.
func (r *Result) Err() error {
	var result *multierror.Error
	for _, skip := range r.Skipped {
		result = multierror.Append(result, errors.Wrap(skip.Reason, skip.Slug))
	}
	return result.ErrorOrNil()
}

// ListSkillDirs returns the sorted names of the root's immediate child
// directories. An unreadable root yields an empty list.
func (d *Discovery) ListSkillDirs() []string {
	dirs, err := d.readSkillDirs()
	if err != nil {
		return []string{}
	}
	return dirs
}

func (d *Discovery) readSkillDirs() ([]string, error) {
	entries, err := os.ReadDir(d.root)
	if err != nil {
		return nil, err
	}

	dirs := []string{}

	for _, entry := range entries {
		// Stat rather than entry.IsDir so symlinked skill directories count.
		info, err := os.Stat(filepath.Join(d.root, entry.Name()))
		if err != nil || !info.IsDir() {
			continue
		}
		if d.excluded(entry.Name()) {
			continue
		}
		dirs = append(dirs, entry.Name())
	}

	return dirs, nil
}

func (d *Discovery) excluded(name string) bool {
	for _, g := range d.exclude {
		if g.Match(name) {
			return true
		}
	}
	return false
}

// Discover loads a descriptor from every skill directory under the root.
// It fails only when the root itself cannot be listed; a directory whose
// skill file is missing, unreadable, headerless or nameless is recorded in
// Result.Skipped and the scan carries on.
func (d *Discovery) Discover(ctx context.Context) (*Result, error) {
	info, err := os.Stat(d.root)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to access skills root %s", d.root)
	}
	if !info.IsDir() {
		return nil, errors.Errorf("skills root %s is not a directory", d.root)
	}

	slugs, err := d.readSkillDirs()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list skills root %s", d.root)
	}

	log := logger.G(ctx).WithField("root", d.root)
	result := &Result{Descriptors: []Descriptor{}}

	for _, slug := range slugs {
		descriptor, err := d.LoadDescriptor(slug)
		if err != nil {
			log.WithField("dir", slug).WithError(err).Debug("skipping skill directory")
			result.Skipped = append(result.Skipped, Skip{Slug: slug, Reason: err})
			continue
		}
		result.Descriptors = append(result.Descriptors, *descriptor)
	}

	log.WithField("kept", len(result.Descriptors)).
		WithField("skipped", len(result.Skipped)).
		Debug("skill discovery finished")

	return result, nil
}

// LoadDescriptor reads the skill file of the named directory under the root.
func (d *Discovery) LoadDescriptor(slug string) (*Descriptor, error) {
	content, err := os.ReadFile(filepath.Join(d.root, slug, d.skillFile))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read skill file")
	}

	return Parse(string(content), slug, d.extractor)
}

// Parse builds a descriptor from the text of a skill file. Only a missing
// header or a missing name is an error; every other field defaults to empty.
func Parse(content, slug string, ex frontmatter.Extractor) (*Descriptor, error) {
	header, ok := frontmatter.Header(content)
	if !ok {
		return nil, ErrNoHeader
	}

	name := ex.Scalar(header, "name")
	if name == "" {
		return nil, ErrMissingName
	}

	tags := ex.List(header, "tags")
	if tags == nil {
		tags = []string{}
	}

	return &Descriptor{
		Name:        name,
		Slug:        slug,
		Description: ex.Scalar(header, "description"),
		Category:    ex.IndentedScalar(header, "category"),
		Tags:        tags,
	}, nil
}
