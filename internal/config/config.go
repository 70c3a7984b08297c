package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the config filename looked up at the project root.
const DefaultFile = "site.yaml"

type Serve struct {
	Port int `yaml:"port"`
}

type Config struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	BaseURL     string `yaml:"base-url"`
	Lang        string `yaml:"lang"`
	OutputDir   string `yaml:"output-dir"`
	Stylesheet  string `yaml:"stylesheet"`
	Author      string `yaml:"author"`
	Serve       Serve  `yaml:"serve"`
}

// Load reads a YAML config file and returns a validated Config. A missing
// file is not an error: the page content is compiled in, so the config only
// tunes presentation chrome and every field has a default. Environment
// variables (optionally from a .env file) override the file:
// CNOTES_OUTPUT_DIR, CNOTES_BASE_URL, and CNOTES_PORT.
func Load(path, projectRoot string) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// defaults only
	case err != nil:
		return nil, err
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("config: %s: %w", path, err)
		}
	}

	cfg.OutputDir = getEnv("CNOTES_OUTPUT_DIR", cfg.OutputDir)
	cfg.BaseURL = getEnv("CNOTES_BASE_URL", cfg.BaseURL)
	if raw, ok := os.LookupEnv("CNOTES_PORT"); ok {
		port, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("config: CNOTES_PORT %q is not a number", raw)
		}
		cfg.Serve.Port = port
	}

	if err := Validate(&cfg, projectRoot); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
