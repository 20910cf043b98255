package models

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/cloudwego/eino-ext/components/model/claude"
	"github.com/cloudwego/eino-ext/components/model/gemini"
	"github.com/cloudwego/eino-ext/components/model/ollama"
	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"google.golang.org/genai"

	"github.com/mark3labs/homeinfo/internal/config"
)

const defaultOllamaURL = "http://localhost:11434"

// ProviderConfig holds configuration for creating a Completer.
type ProviderConfig struct {
	ModelString    string
	ProviderAPIKey string
	ProviderURL    string
	MaxTokens      int
	Temperature    *float32
	Timeout        time.Duration
	TLSSkipVerify  bool
	Logger         *log.Logger
}

// ProviderInfo describes a supported provider for the providers command.
type ProviderInfo struct {
	ID           string
	DefaultModel string
	Env          string
}

// Providers lists the supported providers in display order.
func Providers() []ProviderInfo {
	return []ProviderInfo{
		{ID: "openai", DefaultModel: "gpt-3.5-turbo-0125", Env: config.CredentialEnv("openai")},
		{ID: "anthropic", DefaultModel: "claude-3-5-haiku-latest", Env: config.CredentialEnv("anthropic")},
		{ID: "gemini", DefaultModel: "gemini-2.0-flash", Env: config.CredentialEnv("gemini")},
		{ID: "ollama", DefaultModel: "llama3.2", Env: config.CredentialEnv("ollama")},
	}
}

// CreateCompleter builds a Completer for cfg.ModelString ("provider:model").
// The credential is resolved first; when it is missing a
// *config.ConfigurationError is returned and no client is constructed, so no
// request can be made. Construction itself never touches the network.
//
// Supported providers: openai, anthropic, gemini, ollama
func CreateCompleter(ctx context.Context, cfg *ProviderConfig) (Completer, error) {
	provider, modelName, err := config.ParseModel(cfg.ModelString)
	if err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	apiKey, source, err := config.ResolveAPIKey(provider, cfg.ProviderAPIKey)
	if err != nil {
		return nil, err
	}
	logger.Debug("resolved credential", "provider", provider, "source", source)

	var chat model.BaseChatModel
	switch provider {
	case "openai":
		chat, err = createOpenAIModel(ctx, cfg, modelName, apiKey)
	case "anthropic":
		chat, err = createAnthropicModel(ctx, cfg, modelName, apiKey)
	case "gemini":
		chat, err = createGeminiModel(ctx, cfg, modelName, apiKey)
	case "ollama":
		chat, err = createOllamaModel(ctx, cfg, modelName)
	default:
		return nil, &config.ConfigurationError{Key: "model", Reason: "unsupported provider: " + provider}
	}
	if err != nil {
		return nil, err
	}

	return &chatCompleter{
		provider: provider,
		model:    modelName,
		chat:     chat,
		timeout:  cfg.Timeout,
		logger:   logger,
	}, nil
}

func createOpenAIModel(ctx context.Context, cfg *ProviderConfig, modelName, apiKey string) (model.BaseChatModel, error) {
	mc := &openai.ChatModelConfig{
		APIKey:      apiKey,
		Model:       modelName,
		BaseURL:     cfg.ProviderURL,
		Temperature: cfg.Temperature,
		Timeout:     cfg.Timeout,
	}
	if cfg.MaxTokens > 0 {
		mc.MaxTokens = &cfg.MaxTokens
	}
	if cfg.TLSSkipVerify {
		mc.HTTPClient = createHTTPClientWithTLSConfig(cfg.Timeout)
	}

	chat, err := openai.NewChatModel(ctx, mc)
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenAI model: %w", err)
	}
	return chat, nil
}

func createAnthropicModel(ctx context.Context, cfg *ProviderConfig, modelName, apiKey string) (model.BaseChatModel, error) {
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 1024
	}

	mc := &claude.Config{
		APIKey:      apiKey,
		Model:       modelName,
		MaxTokens:   maxTokens,
		Temperature: cfg.Temperature,
	}
	if cfg.ProviderURL != "" {
		mc.BaseURL = &cfg.ProviderURL
	}

	// The Anthropic SDK retries 408, 409, 429 and 5xx responses on its own.
	// Every response is final here, so a failed lookup is a single request.
	httpClient := &http.Client{Timeout: cfg.Timeout}
	if cfg.TLSSkipVerify {
		httpClient = createHTTPClientWithTLSConfig(cfg.Timeout)
	}
	httpClient.Transport = &noRetryTransport{base: httpClient.Transport}
	mc.HTTPClient = httpClient

	chat, err := claude.NewChatModel(ctx, mc)
	if err != nil {
		return nil, fmt.Errorf("failed to create Anthropic model: %w", err)
	}
	return chat, nil
}

func createGeminiModel(ctx context.Context, cfg *ProviderConfig, modelName, apiKey string) (model.BaseChatModel, error) {
	cc := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.ProviderURL != "" {
		cc.HTTPOptions.BaseURL = cfg.ProviderURL
	}
	if cfg.TLSSkipVerify {
		cc.HTTPClient = createHTTPClientWithTLSConfig(cfg.Timeout)
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	mc := &gemini.Config{
		Client:      client,
		Model:       modelName,
		Temperature: cfg.Temperature,
	}
	if cfg.MaxTokens > 0 {
		mc.MaxTokens = &cfg.MaxTokens
	}

	chat, err := gemini.NewChatModel(ctx, mc)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini model: %w", err)
	}
	return chat, nil
}

func createOllamaModel(ctx context.Context, cfg *ProviderConfig, modelName string) (model.BaseChatModel, error) {
	baseURL := cfg.ProviderURL
	if baseURL == "" {
		baseURL = defaultOllamaURL
	}

	mc := &ollama.ChatModelConfig{
		BaseURL: baseURL,
		Model:   modelName,
		Timeout: cfg.Timeout,
	}
	if cfg.TLSSkipVerify {
		mc.HTTPClient = createHTTPClientWithTLSConfig(cfg.Timeout)
	}

	chat, err := ollama.NewChatModel(ctx, mc)
	if err != nil {
		return nil, fmt.Errorf("failed to create Ollama model: %w", err)
	}
	return chat, nil
}

// createHTTPClientWithTLSConfig returns a client that skips certificate
// verification, for self-signed provider endpoints.
func createHTTPClientWithTLSConfig(timeout time.Duration) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec
	return &http.Client{Transport: transport, Timeout: timeout}
}

// noRetryTransport marks every response as not retryable for SDKs that honor
// the x-should-retry header.
type noRetryTransport struct {
	base http.RoundTripper
}

func (t *noRetryTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	resp, err := base.RoundTrip(req)
	if resp != nil {
		resp.Header.Set("x-should-retry", "false")
	}
	return resp, err
}
