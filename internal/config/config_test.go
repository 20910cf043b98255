package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestParseModel(t *testing.T) {
	tests := []struct {
		input    string
		provider string
		model    string
		wantErr  bool
	}{
		{input: "openai:gpt-3.5-turbo-0125", provider: "openai", model: "gpt-3.5-turbo-0125"},
		{input: "Anthropic:claude-3-5-haiku-latest", provider: "anthropic", model: "claude-3-5-haiku-latest"},
		{input: "gemini:gemini-2.0-flash", provider: "gemini", model: "gemini-2.0-flash"},
		{input: "ollama:llama3.2:3b", provider: "ollama", model: "llama3.2:3b"},
		{input: "gpt-4o", wantErr: true},
		{input: "openai:", wantErr: true},
		{input: "bedrock:claude", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			provider, model, err := ParseModel(tt.input)
			if tt.wantErr {
				var cfgErr *ConfigurationError
				if !errors.As(err, &cfgErr) {
					t.Fatalf("expected *ConfigurationError, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if provider != tt.provider || model != tt.model {
				t.Errorf("ParseModel(%q) = %q, %q; want %q, %q", tt.input, provider, model, tt.provider, tt.model)
			}
		})
	}
}

func TestResolveAPIKey(t *testing.T) {
	t.Run("explicit key wins", func(t *testing.T) {
		t.Setenv("OPENAI_API_KEY", "from-env")
		key, source, err := ResolveAPIKey("openai", "from-flag")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if key != "from-flag" || source != "--provider-api-key" {
			t.Errorf("got %q from %q", key, source)
		}
	})

	t.Run("environment fallback", func(t *testing.T) {
		t.Setenv("ANTHROPIC_API_KEY", "sk-ant")
		key, _, err := ResolveAPIKey("anthropic", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if key != "sk-ant" {
			t.Errorf("key = %q, want sk-ant", key)
		}
	})

	t.Run("missing credential", func(t *testing.T) {
		t.Setenv("OPENAI_API_KEY", "")
		_, _, err := ResolveAPIKey("openai", "")
		if !errors.Is(err, ErrMissingCredential) {
			t.Fatalf("expected ErrMissingCredential, got %v", err)
		}
		var cfgErr *ConfigurationError
		if !errors.As(err, &cfgErr) || cfgErr.Key != "OPENAI_API_KEY" {
			t.Errorf("expected ConfigurationError for OPENAI_API_KEY, got %v", err)
		}
	})

	t.Run("ollama needs no key", func(t *testing.T) {
		key, _, err := ResolveAPIKey("ollama", "")
		if err != nil || key != "" {
			t.Errorf("got %q, %v", key, err)
		}
	})
}

func TestLoad_Defaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Model != DefaultModel {
		t.Errorf("Model = %q, want %q", cfg.Model, DefaultModel)
	}
	if cfg.Format != FormatText {
		t.Errorf("Format = %q, want text", cfg.Format)
	}
	if cfg.Detailed {
		t.Error("Detailed should default to false")
	}
}

func TestLoad_RejectsUnknownFormat(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set("format", "xml")

	_, err := Load(v)
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) || cfgErr.Key != "format" {
		t.Fatalf("expected format ConfigurationError, got %v", err)
	}
}

func TestLoadFile_SubstitutesEnv(t *testing.T) {
	t.Setenv("HOMEINFO_TEST_KEY", "sk-test")

	path := filepath.Join(t.TempDir(), "homeinfo.yml")
	content := "model: anthropic:claude-3-5-haiku-latest\nprovider-api-key: ${env://HOMEINFO_TEST_KEY}\nformat: ${env://HOMEINFO_TEST_FORMAT:-json}\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	v := viper.New()
	SetDefaults(v)
	if err := LoadFile(v, path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ProviderAPIKey != "sk-test" {
		t.Errorf("ProviderAPIKey = %q, want sk-test", cfg.ProviderAPIKey)
	}
	if cfg.Format != FormatJSON {
		t.Errorf("Format = %q, want json", cfg.Format)
	}
	if cfg.Model != "anthropic:claude-3-5-haiku-latest" {
		t.Errorf("Model = %q", cfg.Model)
	}
}

func TestLoadFile_MissingVariable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "homeinfo.json")
	if err := os.WriteFile(path, []byte(`{"provider-api-key": "${env://HOMEINFO_UNSET_VAR}"}`), 0o600); err != nil {
		t.Fatal(err)
	}

	err := LoadFile(viper.New(), path)
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigurationError, got %v", err)
	}
}
