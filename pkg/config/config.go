// Package config loads and validates application configuration from YAML
// files with environment-variable overrides. It provides typed structs for
// every subsystem (WordCount, Books, Comments, HTTP, Logging).
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	WordCount WordCountConfig `yaml:"wordcount"`
	Books     BooksConfig     `yaml:"books"`
	Comments  CommentsConfig  `yaml:"comments"`
	Measure   MeasureConfig   `yaml:"measure"`
	HTTP      HTTPConfig      `yaml:"http"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// WordCountConfig holds word-count pipeline settings.
type WordCountConfig struct {
	// SourcePath is the default text file summarised when the command line
	// does not name one.
	SourcePath string `yaml:"sourcePath"`
}

// BooksConfig holds book-catalog rendering settings.
type BooksConfig struct {
	TitleWrapWidth int `yaml:"titleWrapWidth"`
}

// CommentsConfig holds the comment feed endpoint and rendering widths.
type CommentsConfig struct {
	URL            string `yaml:"url"`
	BodyWrapWidth  int    `yaml:"bodyWrapWidth"`
	PreviewNameLen int    `yaml:"previewNameLen"`
	PreviewBodyLen int    `yaml:"previewBodyLen"`
}

// MeasureConfig holds the defaults for algorithm measurement runs.
type MeasureConfig struct {
	Steps    int `yaml:"steps"`
	StepSize int `yaml:"stepSize"`
}

// HTTPConfig controls the outbound JSON client.
type HTTPConfig struct {
	Timeout time.Duration `yaml:"timeout"`
}

// LoggingConfig controls structured logging level and output format.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load reads a YAML config file (if provided) and applies environment-variable
// overrides. It returns a Config populated with sensible defaults for any
// missing values.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}
	applyEnvOverrides(cfg)
	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Books: BooksConfig{
			TitleWrapWidth: 18,
		},
		Comments: CommentsConfig{
			URL:            "https://jsonplaceholder.typicode.com/comments",
			BodyWrapWidth:  24,
			PreviewNameLen: 16,
			PreviewBodyLen: 26,
		},
		Measure: MeasureConfig{
			Steps:    5,
			StepSize: 50,
		},
		HTTP: HTTPConfig{
			Timeout: 10 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// applyEnvOverrides reads TK_* environment variables and overrides the
// corresponding config fields.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("TK_WORDCOUNT_SOURCE"); v != "" {
		cfg.WordCount.SourcePath = v
	}
	if v := os.Getenv("TK_BOOKS_TITLE_WRAP_WIDTH"); v != "" {
		if width, err := strconv.Atoi(v); err == nil {
			cfg.Books.TitleWrapWidth = width
		}
	}
	if v := os.Getenv("TK_COMMENTS_URL"); v != "" {
		cfg.Comments.URL = v
	}
	if v := os.Getenv("TK_COMMENTS_BODY_WRAP_WIDTH"); v != "" {
		if width, err := strconv.Atoi(v); err == nil {
			cfg.Comments.BodyWrapWidth = width
		}
	}
	if v := os.Getenv("TK_MEASURE_STEPS"); v != "" {
		if steps, err := strconv.Atoi(v); err == nil {
			cfg.Measure.Steps = steps
		}
	}
	if v := os.Getenv("TK_MEASURE_STEP_SIZE"); v != "" {
		if size, err := strconv.Atoi(v); err == nil {
			cfg.Measure.StepSize = size
		}
	}
	if v := os.Getenv("TK_HTTP_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.HTTP.Timeout = d
		}
	}
	if v := os.Getenv("TK_LOGGING_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("TK_LOGGING_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
}
