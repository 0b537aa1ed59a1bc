// Package config loads the optional YAML configuration of the interpreter.
package config

import (
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/mlang/evaluator"
	"github.com/lyraproj/semver/semver"
	"gopkg.in/yaml.v2"
)

// DefaultFile is the name of the configuration file that is picked up from
// the working directory when no file is given explicitly
const DefaultFile = `mlang.yaml`

// LanguageVersion is the version of the language implemented by this interpreter
var LanguageVersion = semver.MustParseVersion(`1.0.0`)

// Config is the content of a configuration file. Zero values mean that the
// setting is absent.
type Config struct {
	BaseDir  string `yaml:"base_dir"`
	LogLevel string `yaml:"log_level"`
	Banner   *bool  `yaml:"banner"`
	Requires string `yaml:"requires"`

	path string
}

// Load reads and checks the configuration file at path
func Load(path string) (*Config, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		if pe, ok := err.(*os.PathError); ok {
			err = pe.Err
		}
		return nil, configError(ConfigReadFailed, issue.H{`path`: path, `detail`: err.Error()})
	}
	return Parse(path, data)
}

// LoadDefault loads DefaultFile from the given directory. An empty
// configuration is returned when there is no such file.
func LoadDefault(dir string) (*Config, error) {
	path := filepath.Join(dir, DefaultFile)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &Config{}, nil
	}
	return Load(path)
}

// Parse unmarshals the YAML data, rejecting unknown keys, and checks the result.
// The path is only used in error messages.
func Parse(path string, data []byte) (*Config, error) {
	c := &Config{}
	if err := yaml.UnmarshalStrict(data, c); err != nil {
		return nil, configError(ConfigParseFailed, issue.H{`path`: path, `detail`: err.Error()})
	}
	c.path = path
	if err := c.Check(); err != nil {
		return nil, err
	}
	return c, nil
}

// Check validates the log level and verifies that LanguageVersion satisfies
// the required version range.
func (c *Config) Check() error {
	if c.LogLevel != `` {
		if _, err := evaluator.ParseLogLevel(c.LogLevel); err != nil {
			return configError(ConfigInvalidLogLevel, issue.H{`level`: c.LogLevel, `path`: c.source()})
		}
	}
	if c.Requires == `` {
		return nil
	}
	r, err := semver.ParseVersionRange(c.Requires)
	if err != nil {
		return configError(ConfigInvalidRequirement, issue.H{`requires`: c.Requires, `path`: c.source(), `detail`: err.Error()})
	}
	if !r.Includes(LanguageVersion) {
		return configError(ConfigVersionMismatch, issue.H{`version`: LanguageVersion.String(), `requires`: c.Requires, `path`: c.source()})
	}
	return nil
}

func (c *Config) source() string {
	if c.path == `` {
		return `configuration`
	}
	return c.path
}

// Level returns the configured log level or def when none is configured
func (c *Config) Level(def evaluator.LogLevel) evaluator.LogLevel {
	if l, err := evaluator.ParseLogLevel(c.LogLevel); err == nil {
		return l
	}
	return def
}

// ShowBanner returns true unless the banner has been turned off
func (c *Config) ShowBanner() bool {
	return c.Banner == nil || *c.Banner
}
