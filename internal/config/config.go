package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the persisted search settings. The search engine itself only
// consumes CaseSensitive; the remaining fields steer the index builder.
type Config struct {
	// MaxDepth bounds directory traversal. Zero means unlimited.
	MaxDepth int `yaml:"max_depth"       json:"max_depth"`
	// IgnoreHidden skips dotfiles and dot-directories while indexing.
	IgnoreHidden bool `yaml:"ignore_hidden"   json:"ignore_hidden"`
	// IgnorePatterns are glob patterns or literal names excluded from the
	// index.
	IgnorePatterns []string `yaml:"ignore_patterns" json:"ignore_patterns"`
	// CaseSensitive controls case folding for both indexing and matching.
	CaseSensitive bool `yaml:"case_sensitive"  json:"case_sensitive"`
	// MaxFileSize excludes files above this many bytes. Zero means no
	// limit.
	MaxFileSize int64 `yaml:"max_file_size"   json:"max_file_size"`
	// Opener overrides the file manager used to reveal results.
	Opener string `yaml:"opener"          json:"opener"`

	path      string `yaml:"-" json:"-"`
	hiddenSet bool   `yaml:"-" json:"-"`
}

// UnmarshalYAML tracks whether ignore_hidden was present so an absent key
// can keep its default of true while an explicit false is honored.
func (cfg *Config) UnmarshalYAML(value *yaml.Node) error {
	type plain Config
	var raw plain
	if err := value.Decode(&raw); err != nil {
		return err
	}
	*cfg = Config(raw)
	if value.Kind == yaml.MappingNode {
		for i := 0; i < len(value.Content); i += 2 {
			if strings.EqualFold(value.Content[i].Value, "ignore_hidden") {
				cfg.hiddenSet = true
				break
			}
		}
	}
	return nil
}

var defaultIgnorePatterns = []string{"*.tmp", "*.log", ".git", "node_modules", "target"}

var validOpenerNames = []string{"explorer", "open", "nautilus", "dolphin", "thunar", "pcmanfm", "xdg-open", "custom"}

var ValidOpeners = func() map[string]bool {
	openers := make(map[string]bool, len(validOpenerNames))
	for _, opener := range validOpenerNames {
		openers[opener] = true
	}

	return openers
}()

func ValidateOpener(opener string) error {
	if _, valid := ValidOpeners[opener]; valid {
		return nil
	}

	return fmt.Errorf(
		"invalid opener: %q. Please choose from %s.",
		opener,
		validOpenerList(),
	)
}

func validOpenerList() string {
	quoted := make([]string, len(validOpenerNames))
	for i, name := range validOpenerNames {
		quoted[i] = fmt.Sprintf("'%s'", name)
	}

	if len(quoted) == 1 {
		return quoted[0]
	}

	return strings.Join(quoted[:len(quoted)-1], ", ") + ", or " + quoted[len(quoted)-1]
}

// NewConfig returns the default settings: case-insensitive, hidden files
// skipped, the usual build and scratch directories ignored, no depth or
// size limits.
func NewConfig() *Config {
	return &Config{
		IgnoreHidden:   true,
		IgnorePatterns: append([]string(nil), defaultIgnorePatterns...),
	}
}

func (cfg *Config) ensureDefaults() {
	if !cfg.hiddenSet {
		cfg.IgnoreHidden = true
	}
	if cfg.IgnorePatterns == nil {
		cfg.IgnorePatterns = append([]string(nil), defaultIgnorePatterns...)
	}
	if cfg.MaxDepth < 0 {
		cfg.MaxDepth = 0
	}
	if cfg.MaxFileSize < 0 {
		cfg.MaxFileSize = 0
	}
}

// Load reads the config file under the provided home directory. An empty
// file yields the defaults; a missing file is an error so callers can run
// EnsureConfigExists first.
func Load(home string) (*Config, error) {
	path := GetConfigPath(home)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	if len(strings.TrimSpace(string(data))) != 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parsing %s: %w", path, err)
		}
	}
	cfg.path = path
	cfg.ensureDefaults()

	if cfg.Opener != "" {
		if err := ValidateOpener(cfg.Opener); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// FromFile loads a config from an explicit path, bypassing the home
// directory convention.
func FromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	if len(strings.TrimSpace(string(data))) != 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parsing %s: %w", path, err)
		}
	}
	cfg.path = path
	cfg.ensureDefaults()
	return cfg, nil
}

// Save writes the settings back to the file they were loaded from.
func (cfg *Config) Save() error {
	if cfg.Opener != "" {
		if err := ValidateOpener(cfg.Opener); err != nil {
			return err
		}
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(cfg.path), 0o755); err != nil {
		return err
	}

	return os.WriteFile(cfg.path, data, 0o644)
}

// GetConfigPath reports the file these settings were loaded from.
func (cfg *Config) GetConfigPath() string {
	return cfg.path
}

func (cfg *Config) SetCaseSensitive(v bool) error {
	cfg.CaseSensitive = v
	return cfg.Save()
}

func (cfg *Config) SetIgnoreHidden(v bool) error {
	cfg.IgnoreHidden = v
	cfg.hiddenSet = true
	return cfg.Save()
}

func (cfg *Config) SetMaxDepth(depth int) error {
	if depth < 0 {
		return fmt.Errorf("max depth must be zero or positive, got %d", depth)
	}
	cfg.MaxDepth = depth
	return cfg.Save()
}

func (cfg *Config) SetMaxFileSize(size int64) error {
	if size < 0 {
		return fmt.Errorf("max file size must be zero or positive, got %d", size)
	}
	cfg.MaxFileSize = size
	return cfg.Save()
}

func (cfg *Config) ChangeOpener(opener string) error {
	if err := ValidateOpener(opener); err != nil {
		return err
	}
	cfg.Opener = opener
	return cfg.Save()
}

// AddIgnorePattern appends a pattern unless it is already present.
func (cfg *Config) AddIgnorePattern(pattern string) error {
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		return fmt.Errorf("ignore pattern must not be empty")
	}
	for _, existing := range cfg.IgnorePatterns {
		if existing == pattern {
			return nil
		}
	}
	cfg.IgnorePatterns = append(cfg.IgnorePatterns, pattern)
	return cfg.Save()
}

// RemoveIgnorePattern deletes a pattern; removing an absent pattern is an
// error so typos surface.
func (cfg *Config) RemoveIgnorePattern(pattern string) error {
	for i, existing := range cfg.IgnorePatterns {
		if existing == pattern {
			cfg.IgnorePatterns = append(cfg.IgnorePatterns[:i], cfg.IgnorePatterns[i+1:]...)
			return cfg.Save()
		}
	}
	return fmt.Errorf("ignore pattern %q is not configured", pattern)
}
