package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gobwas/glob"
	"gopkg.in/yaml.v3"
)

// ErrInvalid marks a configuration file that parsed but failed validation.
// Callers treat it as fatal; other load failures fall back to defaults.
var ErrInvalid = errors.New("invalid configuration")

// Config represents the application configuration structure.
// It defines where the browser roots its tree, which entries the walker
// skips, and how the two panes are presented.
type Config struct {
	Browse struct {
		Root    string   `yaml:"root"`    // Directory the tree is built from
		Exclude []string `yaml:"exclude"` // Glob patterns for entry names to skip
	} `yaml:"browse"`
	Display struct {
		Title        string `yaml:"title"`         // Header title
		SidebarWidth int    `yaml:"sidebar_width"` // Tree pane width as percent of the terminal
		NoIcons      bool   `yaml:"no_icons"`      // Disable file-type icons in the tree
	} `yaml:"display"`
	Theme struct {
		Name     string `yaml:"name"`     // Theme name (default, dark, light, etc.)
		Primary  string `yaml:"primary"`  // Primary color for the header title
		Success  string `yaml:"success"`  // Directory entries
		Warning  string `yaml:"warning"`  // Pending key-sequence indicator
		Error    string `yaml:"error"`    // Error buffers
		Info     string `yaml:"info"`     // Help footer
		Emphasis string `yaml:"emphasis"` // Cursor row
		Border   string `yaml:"border"`   // Pane borders
	} `yaml:"theme"`
	Logging struct {
		File  string `yaml:"file"`  // Debug log file; empty disables logging
		Debug bool   `yaml:"debug"` // Emit debug-level lines
	} `yaml:"logging"`
}

// Palette is one named set of terminal colors.
type Palette struct {
	Primary  string
	Success  string
	Warning  string
	Error    string
	Info     string
	Emphasis string
	Border   string
}

// LoadConfig loads configuration from the default location
// (~/.config/peruse/config.yaml).
func LoadConfig() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	configPath := filepath.Join(home, ".config", "peruse", "config.yaml")
	return LoadConfigFile(configPath)
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	// Start with default configuration
	cfg := defaultConfig()

	// Try to read the config file
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if file doesn't exist
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Unmarshal into a temporary config to preserve defaults for unset fields
	var tempCfg Config
	if err := yaml.Unmarshal(data, &tempCfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	// Merge the loaded config with defaults
	if tempCfg.Browse.Root != "" {
		cfg.Browse.Root = tempCfg.Browse.Root
	}
	if len(tempCfg.Browse.Exclude) > 0 {
		cfg.Browse.Exclude = tempCfg.Browse.Exclude
	}

	if tempCfg.Display.Title != "" {
		cfg.Display.Title = tempCfg.Display.Title
	}
	if tempCfg.Display.SidebarWidth > 0 {
		cfg.Display.SidebarWidth = tempCfg.Display.SidebarWidth
	}
	cfg.Display.NoIcons = tempCfg.Display.NoIcons

	if tempCfg.Theme.Name != "" {
		cfg.ApplyTheme(tempCfg.Theme.Name)
	}
	// Individual colors override whatever the named theme picked
	if tempCfg.Theme.Primary != "" {
		cfg.Theme.Primary = tempCfg.Theme.Primary
	}
	if tempCfg.Theme.Success != "" {
		cfg.Theme.Success = tempCfg.Theme.Success
	}
	if tempCfg.Theme.Warning != "" {
		cfg.Theme.Warning = tempCfg.Theme.Warning
	}
	if tempCfg.Theme.Error != "" {
		cfg.Theme.Error = tempCfg.Theme.Error
	}
	if tempCfg.Theme.Info != "" {
		cfg.Theme.Info = tempCfg.Theme.Info
	}
	if tempCfg.Theme.Emphasis != "" {
		cfg.Theme.Emphasis = tempCfg.Theme.Emphasis
	}
	if tempCfg.Theme.Border != "" {
		cfg.Theme.Border = tempCfg.Theme.Border
	}

	if tempCfg.Logging.File != "" {
		cfg.Logging.File = tempCfg.Logging.File
	}
	cfg.Logging.Debug = tempCfg.Logging.Debug

	// Validate the final configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return cfg, nil
}

// defaultConfig returns the default configuration with safe defaults.
func defaultConfig() *Config {
	cfg := &Config{}

	// The original viewer was rooted at its submissions directory
	cfg.Browse.Root = "assets"
	cfg.Browse.Exclude = []string{".*", "__pycache__"}

	cfg.Display.Title = "Peruse"
	cfg.Display.SidebarWidth = 30
	cfg.Display.NoIcons = false

	cfg.ApplyTheme("default")

	// Logging is off unless a file is configured; a TUI cannot log to stdout
	cfg.Logging.File = ""
	cfg.Logging.Debug = false

	return cfg
}

// SaveConfig saves the configuration to the specified file.
// It creates parent directories if they don't exist.
func SaveConfig(cfg *Config, path string) error {
	// Create parent directories if they don't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Marshal the config to YAML
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Write the data to the file
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid.
// Returns error if any settings are invalid.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("nil config")
	}

	if c.Browse.Root == "" {
		return fmt.Errorf("browse root is required")
	}

	// Exclude patterns must be compilable globs
	for _, pattern := range c.Browse.Exclude {
		if _, err := glob.Compile(pattern); err != nil {
			return fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}
	}

	// Keep both panes usable at any terminal width
	if c.Display.SidebarWidth < 10 || c.Display.SidebarWidth > 90 {
		return fmt.Errorf("sidebar width must be between 10 and 90 percent")
	}

	return nil
}

// NewTestConfig creates a configuration instance for testing purposes.
func NewTestConfig() *Config {
	cfg := defaultConfig()
	cfg.Browse.Root = "."
	cfg.Display.Title = "Peruse Test"
	return cfg
}

// New creates a new configuration instance with default values.
func New() *Config {
	return defaultConfig()
}

// GetTheme returns a predefined theme palette by name.
// If the theme doesn't exist, returns the default palette.
func GetTheme(name string) Palette {
	themes := map[string]Palette{
		"default": {
			Primary:  "213", // Purple
			Success:  "114", // Green
			Warning:  "220", // Yellow
			Error:    "196", // Red
			Info:     "39",  // Blue
			Emphasis: "212", // Light Pink
			Border:   "213", // Purple
		},
		"dark": {
			Primary:  "105", // Dark Blue
			Success:  "78",  // Dark Green
			Warning:  "214", // Dark Yellow
			Error:    "160", // Dark Red
			Info:     "33",  // Dark Blue
			Emphasis: "147", // Light Blue
			Border:   "105", // Dark Blue
		},
		"light": {
			Primary:  "135", // Light Purple
			Success:  "150", // Light Green
			Warning:  "222", // Light Yellow
			Error:    "210", // Light Red
			Info:     "117", // Light Blue
			Emphasis: "219", // Very Light Pink
			Border:   "135", // Light Purple
		},
		"monochrome": {
			Primary:  "245", // Light Grey
			Success:  "252", // White
			Warning:  "241", // Medium Grey
			Error:    "232", // Black
			Info:     "248", // Grey
			Emphasis: "255", // Bright White
			Border:   "245", // Light Grey
		},
		"ocean": {
			Primary:  "31",  // Teal
			Success:  "36",  // Green-Blue
			Warning:  "220", // Yellow
			Error:    "196", // Red
			Info:     "33",  // Blue
			Emphasis: "51",  // Cyan
			Border:   "31",  // Teal
		},
		"sunset": {
			Primary:  "208", // Orange
			Success:  "154", // Green
			Warning:  "214", // Dark Yellow
			Error:    "196", // Red
			Info:     "69",  // Light Green
			Emphasis: "203", // Pink-Orange
			Border:   "208", // Orange
		},
	}

	if theme, exists := themes[name]; exists {
		return theme
	}

	return themes["default"]
}

// ApplyTheme sets the theme in the configuration.
// It updates the theme colors based on the theme name.
func (c *Config) ApplyTheme(name string) {
	theme := GetTheme(name)

	c.Theme.Name = name
	c.Theme.Primary = theme.Primary
	c.Theme.Success = theme.Success
	c.Theme.Warning = theme.Warning
	c.Theme.Error = theme.Error
	c.Theme.Info = theme.Info
	c.Theme.Emphasis = theme.Emphasis
	c.Theme.Border = theme.Border
}

// Palette returns the effective colors from the theme section, including
// any per-color overrides applied on top of the named theme.
func (c *Config) Palette() Palette {
	return Palette{
		Primary:  c.Theme.Primary,
		Success:  c.Theme.Success,
		Warning:  c.Theme.Warning,
		Error:    c.Theme.Error,
		Info:     c.Theme.Info,
		Emphasis: c.Theme.Emphasis,
		Border:   c.Theme.Border,
	}
}

// ListThemes returns a list of available theme names.
func ListThemes() []string {
	return []string{"default", "dark", "light", "monochrome", "ocean", "sunset"}
}
