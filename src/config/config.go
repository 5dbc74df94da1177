package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

const defaultConfigFile = ".gradle-summary.yml"

// Config is the top-level configuration.
type Config struct {
	// ResultsDir is the results subdirectory under RUNNER_TEMP.
	ResultsDir string `yaml:"results_dir" toml:"results_dir" validate:"required,localpath"`

	// CacheListener is the recorded cache activity file. Relative paths
	// resolve against RUNNER_TEMP.
	CacheListener string `yaml:"cache_listener" toml:"cache_listener" validate:"required"`

	JobSummary     Policy `yaml:"job_summary" toml:"job_summary" validate:"policy"`
	PRComment      Policy `yaml:"pr_comment" toml:"pr_comment" validate:"policy"`
	LogCacheReport bool   `yaml:"log_cache_report" toml:"log_cache_report"`
}

// Load reads configuration from a YAML or TOML file (by extension).
// If path is empty, it tries the default file.
// Returns sensible defaults if the file doesn't exist.
func Load(path string) (*Config, error) {
	if path == "" {
		path = defaultConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return defaults(), nil
		}
		return nil, err
	}

	cfg := defaults()
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = toml.Unmarshal(data, cfg)
	} else {
		err = yaml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		ResultsDir:     ".build-results",
		CacheListener:  filepath.Join(".gradle-actions", "cache-listener.json"),
		JobSummary:     PolicyAlways,
		PRComment:      PolicyNever,
		LogCacheReport: true,
	}
}

// CacheListenerPath resolves the cache listener file against tempDir.
func (c *Config) CacheListenerPath(tempDir string) string {
	if filepath.IsAbs(c.CacheListener) {
		return c.CacheListener
	}
	return filepath.Join(tempDir, c.CacheListener)
}
