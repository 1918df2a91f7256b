package config

import "os"

// Config defines the image filter and layout parameters of the browser window.
type Config struct {
	Extension    string
	IconSize     float32
	CellWidth    float32
	CellHeight   float32
	WindowWidth  float32
	WindowHeight float32
	SplitOffset  float64
	StartDir     string
}

// DefaultConfig returns a configuration with sensible defaults: ".JPG" images, 100x100 icons in 200x100 cells.
func DefaultConfig() *Config {
	return &Config{
		Extension:    ".JPG", // Case-sensitive suffix
		IconSize:     100,
		CellWidth:    200,
		CellHeight:   100,
		WindowWidth:  800,
		WindowHeight: 600,
		SplitOffset:  0.5,
		StartDir:     "", // Empty means the user's home directory
	}
}

// StartDirectory resolves the directory the folder dialog opens in.
func (c *Config) StartDirectory() string {
	if c.StartDir != "" {
		return c.StartDir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home
}
