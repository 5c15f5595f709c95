package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Defaults used when neither the config file nor flags say otherwise.
const (
	DefaultListingURL   = "https://www.gsea-msigdb.org/gsea/msigdb/human/genesets.jsp?letter=A"
	DefaultOutput       = "msigdb_genesets.tsv"
	DefaultDatabase     = "msigdump.db"
	DefaultDelaySeconds = 0.5
)

// FileConfig represents the structure of ~/.msigdump/config.yaml. All fields
// are optional; zero values mean "use the default".
type FileConfig struct {
	ListingURL   string   `yaml:"listing_url"`
	Output       string   `yaml:"output"`
	Database     string   `yaml:"database"`
	DelaySeconds *float64 `yaml:"delay_seconds"`
	SkipErrors   bool     `yaml:"skip_errors"`
	Dedupe       bool     `yaml:"dedupe"`
}

// LoadConfigFile loads configuration from ~/.msigdump/config.yaml. Returns
// nil if the file doesn't exist (not an error). Returns error if the file
// exists but cannot be parsed.
func LoadConfigFile() (*FileConfig, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user home directory: %w", err)
	}

	configPath := filepath.Join(homeDir, ".msigdump", "config.yaml")

	// Check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, nil // File doesn't exist -- not an error
	}

	// Read file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse YAML
	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}
