// Package config resolves skillindex settings from flags, SKILLINDEX_*
// environment variables and an optional .skillindex.yaml file via viper.
// With nothing set, the tool indexes the skills directory that sits next to
// the directory holding the executable.
package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/jingkaihe/skillindex/pkg/frontmatter"
	"github.com/jingkaihe/skillindex/pkg/skills"
)

// EnvPrefix is the prefix of every environment variable read by viper.
const EnvPrefix = "SKILLINDEX"

// DefaultOutput is the catalog file name used when no output is configured.
const DefaultOutput = "skills.json"

// Config holds the settings of one run.
type Config struct {
	Root      string   `mapstructure:"root"`
	Output    string   `mapstructure:"output"`
	SkillFile string   `mapstructure:"skill_file"`
	Exclude   []string `mapstructure:"exclude"`
	Extractor string   `mapstructure:"extractor"`
	LogLevel  string   `mapstructure:"log_level"`
	LogFormat string   `mapstructure:"log_format"`
	Quiet     bool     `mapstructure:"quiet"`
}

// Init sets up environment variable and config file lookup on the global
// viper instance. A missing config file is not an error.
func Init() {
	viper.SetEnvPrefix(EnvPrefix)
	viper.AutomaticEnv()

	viper.SetConfigName(".skillindex")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	SetDefaults(viper.GetViper())

	_ = viper.ReadInConfig()
}

// SetDefaults registers every key so that environment variables are picked
// up by Unmarshal even when no flag or file sets them.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("root", "")
	v.SetDefault("output", "")
	v.SetDefault("skill_file", skills.DefaultSkillFile)
	v.SetDefault("exclude", []string{})
	v.SetDefault("extractor", frontmatter.ExtractorLine)
	v.SetDefault("log_level", "warn")
	v.SetDefault("log_format", "fmt")
	v.SetDefault("quiet", false)
}

// LoadFrom decodes v and resolves an unset root or output against baseDir.
func LoadFrom(v *viper.Viper, baseDir string) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, errors.Wrap(err, "failed to unmarshal configuration")
	}

	if cfg.Root == "" {
		cfg.Root = filepath.Join(baseDir, skills.DefaultRoot)
	}
	if cfg.Output == "" {
		cfg.Output = filepath.Join(baseDir, DefaultOutput)
	}
	if cfg.SkillFile == "" {
		cfg.SkillFile = skills.DefaultSkillFile
	}

	if _, err := frontmatter.NewExtractor(cfg.Extractor); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// BaseDir is the directory the default paths are resolved against: the
// parent of the directory holding the executable, so a binary built into
// <repo>/bin indexes <repo>/skills. It falls back to the working directory
// when the executable cannot be located.
func BaseDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(filepath.Dir(exe))
}

// DiscoveryOptions translates the config into skills.Discovery options.
func (c Config) DiscoveryOptions() ([]skills.Option, error) {
	ex, err := frontmatter.NewExtractor(c.Extractor)
	if err != nil {
		return nil, err
	}

	return []skills.Option{
		skills.WithRoot(c.Root),
		skills.WithSkillFile(c.SkillFile),
		skills.WithExclude(c.Exclude...),
		skills.WithExtractor(ex),
	}, nil
}
