package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Supported generation providers.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

const (
	defaultHost              = "127.0.0.1"
	defaultGenerationTimeout = 60 * time.Second
	defaultShutdownTimeout   = 5 * time.Second
)

// DefaultPorts is the ordered list of candidate ports tried at startup.
var DefaultPorts = []int{7861, 8080, 8000, 5000, 3000, 9000, 8888, 7860}

var defaultModels = map[string]string{
	ProviderGemini: "gemini-2.0-flash",
	ProviderOpenAI: "gpt-4o-mini",
}

var apiKeyVars = map[string]string{
	ProviderGemini: "GEMINI_API_KEY",
	ProviderOpenAI: "OPENAI_API_KEY",
}

var (
	// ErrMissingAPIKey is returned when the provider credential is not configured.
	ErrMissingAPIKey = errors.New("missing API key")
	// ErrUnsupportedProvider is returned for a provider other than gemini or openai.
	ErrUnsupportedProvider = errors.New("unsupported provider")
)

// Config is the fully resolved runtime configuration.
type Config struct {
	Provider          string
	APIKey            string
	Model             string
	Temperature       float32
	MaxTokens         int
	BaseURL           string
	Host              string
	Ports             []int
	GenerationTimeout time.Duration
	ShutdownTimeout   time.Duration
	OpenBrowser       bool
}

// Options carries command-line overrides. Zero values mean "not set".
type Options struct {
	Path      string
	EnvFiles  []string
	Provider  string
	Model     string
	Ports     []int
	NoBrowser bool
}

// fileConfig mirrors the optional YAML config file.
type fileConfig struct {
	Provider          string  `yaml:"provider"`
	Model             string  `yaml:"model"`
	Temperature       float32 `yaml:"temperature"`
	MaxTokens         int     `yaml:"max_tokens"`
	BaseURL           string  `yaml:"base_url"`
	Host              string  `yaml:"host"`
	Ports             []int   `yaml:"ports"`
	GenerationTimeout string  `yaml:"generation_timeout"`
	ShutdownTimeout   string  `yaml:"shutdown_timeout"`
	OpenBrowser       *bool   `yaml:"open_browser"`
}

// Load resolves the configuration from defaults, the optional YAML file,
// the environment (including .env files) and command-line overrides, in
// that order of increasing precedence.
func Load(opts Options, logger *zap.Logger) (*Config, error) {
	envFiles := opts.EnvFiles
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	if err := godotenv.Load(envFiles...); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Info("No .env file found, using environment variables", zap.Strings("files", envFiles))
		} else {
			logger.Warn("Failed to load .env file, using environment variables", zap.Strings("files", envFiles), zap.Error(err))
		}
	}

	cfg := &Config{
		Provider:          ProviderGemini,
		Host:              defaultHost,
		Ports:             append([]int(nil), DefaultPorts...),
		GenerationTimeout: defaultGenerationTimeout,
		ShutdownTimeout:   defaultShutdownTimeout,
		OpenBrowser:       true,
	}

	if opts.Path != "" {
		if err := applyFile(cfg, opts.Path); err != nil {
			return nil, err
		}
	}
	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if opts.Provider != "" {
		cfg.Provider = opts.Provider
	}
	if opts.Model != "" {
		cfg.Model = opts.Model
	}
	if len(opts.Ports) > 0 {
		cfg.Ports = append([]int(nil), opts.Ports...)
	}
	if opts.NoBrowser {
		cfg.OpenBrowser = false
	}

	cfg.Provider = strings.ToLower(strings.TrimSpace(cfg.Provider))
	keyVar, ok := apiKeyVars[cfg.Provider]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedProvider, cfg.Provider)
	}
	if cfg.Model == "" {
		cfg.Model = defaultModels[cfg.Provider]
	}

	cfg.APIKey = strings.TrimSpace(os.Getenv(keyVar))
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: %s must be set in the environment or .env file", ErrMissingAPIKey, keyVar)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyFile(cfg *Config, path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to get absolute path for %s: %w", path, err)
	}
	data, err := os.ReadFile(absPath)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", absPath, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", absPath, err)
	}

	if fc.Provider != "" {
		cfg.Provider = fc.Provider
	}
	if fc.Model != "" {
		cfg.Model = fc.Model
	}
	if fc.Temperature != 0 {
		cfg.Temperature = fc.Temperature
	}
	if fc.MaxTokens != 0 {
		cfg.MaxTokens = fc.MaxTokens
	}
	if fc.BaseURL != "" {
		cfg.BaseURL = fc.BaseURL
	}
	if fc.Host != "" {
		cfg.Host = fc.Host
	}
	if len(fc.Ports) > 0 {
		cfg.Ports = fc.Ports
	}
	if fc.GenerationTimeout != "" {
		d, err := time.ParseDuration(fc.GenerationTimeout)
		if err != nil {
			return fmt.Errorf("invalid generation_timeout %q: %w", fc.GenerationTimeout, err)
		}
		cfg.GenerationTimeout = d
	}
	if fc.ShutdownTimeout != "" {
		d, err := time.ParseDuration(fc.ShutdownTimeout)
		if err != nil {
			return fmt.Errorf("invalid shutdown_timeout %q: %w", fc.ShutdownTimeout, err)
		}
		cfg.ShutdownTimeout = d
	}
	if fc.OpenBrowser != nil {
		cfg.OpenBrowser = *fc.OpenBrowser
	}
	return nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("COFOUNDER_PROVIDER"); v != "" {
		cfg.Provider = v
	}
	if v := os.Getenv("COFOUNDER_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("COFOUNDER_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("COFOUNDER_PORTS"); v != "" {
		ports, err := ParsePorts(v)
		if err != nil {
			return fmt.Errorf("COFOUNDER_PORTS: %w", err)
		}
		cfg.Ports = ports
	}
	if v := os.Getenv("COFOUNDER_GENERATION_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("COFOUNDER_GENERATION_TIMEOUT: %w", err)
		}
		cfg.GenerationTimeout = d
	}
	return nil
}

// ParsePorts parses a comma-separated port list such as "7861,8080".
func ParsePorts(s string) ([]int, error) {
	var ports []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		p, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid port %q: %w", part, err)
		}
		ports = append(ports, p)
	}
	if len(ports) == 0 {
		return nil, errors.New("empty port list")
	}
	return ports, nil
}

func (c *Config) validate() error {
	if len(c.Ports) == 0 {
		return errors.New("at least one candidate port is required")
	}
	for _, p := range c.Ports {
		if p < 1 || p > 65535 {
			return fmt.Errorf("port %d out of range", p)
		}
	}
	if c.GenerationTimeout <= 0 {
		return errors.New("generation_timeout must be positive")
	}
	if c.ShutdownTimeout <= 0 {
		return errors.New("shutdown_timeout must be positive")
	}
	return nil
}
