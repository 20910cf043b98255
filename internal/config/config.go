package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultModel is used when neither a flag nor a config file names a model.
const DefaultModel = "openai:gpt-3.5-turbo-0125"

const (
	envPrefix  = "HOMEINFO"
	configName = ".homeinfo"
)

// Output formats accepted by --format.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// credentialEnv maps each provider to the environment variable holding its
// API key. An empty value means the provider needs no key.
var credentialEnv = map[string]string{
	"openai":    "OPENAI_API_KEY",
	"anthropic": "ANTHROPIC_API_KEY",
	"gemini":    "GEMINI_API_KEY",
	"ollama":    "",
}

// Config is the resolved runtime configuration for a single lookup.
type Config struct {
	Model          string
	ProviderURL    string
	ProviderAPIKey string
	MaxTokens      int
	Temperature    float32
	Timeout        time.Duration
	Format         string
	Detailed       bool
	Debug          bool
	TLSSkipVerify  bool

	// Address fields supplied up front; empty ones are prompted for.
	Street string
	City   string
	State  string
	Zip    string
}

// SetDefaults registers the defaults the CLI flags would otherwise provide, so
// a Config loaded without cobra behaves the same way.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("model", DefaultModel)
	v.SetDefault("max-tokens", 1024)
	v.SetDefault("temperature", 0.7)
	v.SetDefault("format", FormatText)
}

// Init loads .env, then the config file (explicit path, or .homeinfo.* in the
// working directory and then the home directory), and finally enables
// HOMEINFO_* environment overrides.
func Init(v *viper.Viper, configFile string) error {
	if err := godotenv.Load(".env"); err == nil {
		log.Debug("loaded environment file", "path", ".env")
	}

	if configFile != "" {
		if err := LoadFile(v, configFile); err != nil {
			return err
		}
	} else if err := loadDefaultFile(v); err != nil {
		return err
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return nil
}

func loadDefaultFile(v *viper.Viper) error {
	v.SetConfigName(configName)
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			log.Debug("no config file found")
			return nil
		}
		return fmt.Errorf("error reading config file: %w", err)
	}

	path := v.ConfigFileUsed()
	if err := LoadFile(v, path); err != nil {
		return fmt.Errorf("error reading config file '%s': %w", path, err)
	}
	return nil
}

// LoadFile reads a YAML or JSON config file, expands ${env://VAR} references
// and merges the result into v.
func LoadFile(v *viper.Viper, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	content, err := substitute(string(raw))
	if err != nil {
		return err
	}

	configType := "yaml"
	if strings.EqualFold(filepath.Ext(path), ".json") {
		configType = "json"
	}
	v.SetConfigType(configType)
	if err := v.ReadConfig(strings.NewReader(content)); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	log.Debug("loaded config file", "path", path)
	return nil
}

// Load builds a Config from v and checks the values that can be checked
// without contacting a provider.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Model:          v.GetString("model"),
		ProviderURL:    v.GetString("provider-url"),
		ProviderAPIKey: v.GetString("provider-api-key"),
		MaxTokens:      v.GetInt("max-tokens"),
		Temperature:    float32(v.GetFloat64("temperature")),
		Timeout:        v.GetDuration("timeout"),
		Format:         strings.ToLower(v.GetString("format")),
		Detailed:       v.GetBool("detailed"),
		Debug:          v.GetBool("debug"),
		TLSSkipVerify:  v.GetBool("tls-skip-verify"),
		Street:         v.GetString("street"),
		City:           v.GetString("city"),
		State:          v.GetString("state"),
		Zip:            v.GetString("zip"),
	}

	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Format == "" {
		cfg.Format = FormatText
	}

	switch cfg.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return nil, &ConfigurationError{
			Key:    "format",
			Reason: fmt.Sprintf("unsupported format %q (expected text, json or yaml)", cfg.Format),
		}
	}

	if _, _, err := ParseModel(cfg.Model); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ParseModel splits a "provider:model" string.
func ParseModel(s string) (provider, model string, err error) {
	provider, model, ok := strings.Cut(s, ":")
	if !ok || provider == "" || model == "" {
		return "", "", &ConfigurationError{
			Key:    "model",
			Reason: fmt.Sprintf("invalid model format. Expected provider:model, got %s", s),
		}
	}
	provider = strings.ToLower(provider)
	if _, known := credentialEnv[provider]; !known {
		return "", "", &ConfigurationError{
			Key:    "model",
			Reason: fmt.Sprintf("unsupported provider: %s. Supported: anthropic, gemini, ollama, openai", provider),
		}
	}
	return provider, model, nil
}

// CredentialEnv returns the environment variable that holds the API key for
// provider, or "" when the provider does not use one.
func CredentialEnv(provider string) string {
	return credentialEnv[provider]
}

// ResolveAPIKey picks the credential for provider: an explicit key wins,
// otherwise the provider's environment variable is consulted. The returned
// source describes where the key came from, for debug logging.
func ResolveAPIKey(provider, explicit string) (key, source string, err error) {
	if explicit != "" {
		return explicit, "--provider-api-key", nil
	}

	name := CredentialEnv(provider)
	if name == "" {
		return "", "none required", nil
	}
	if key := os.Getenv(name); key != "" {
		return key, "env " + name, nil
	}
	return "", "", &ConfigurationError{
		Key:    name,
		Reason: fmt.Sprintf("%s API key not found; set %s or pass --provider-api-key", provider, name),
		Err:    ErrMissingCredential,
	}
}
