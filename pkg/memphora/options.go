package memphora

import (
	"net/http"
	"os"

	v "github.com/cohesivestack/valgo"

	"github.com/sanyogitamemphora-maker/memphora-sdk/pkg/client"
	apierrors "github.com/sanyogitamemphora-maker/memphora-sdk/pkg/errors"
)

// Environment variables recognized during configuration resolution.
const (
	EnvUserID = "MEMPHORA_USER_ID"
	EnvAPIKey = "MEMPHORA_API_KEY"
	EnvAPIURL = "MEMPHORA_API_URL"
)

// Defaults applied when neither an option nor an environment variable
// supplies a value.
const (
	DefaultMaxTokens = 500
)

// Config is the resolved SDK configuration. Resolution runs once at
// construction with the precedence: explicit option, then environment
// variable, then documented default, then construction failure.
type Config struct {
	UserID       string
	APIKey       string
	APIURL       string
	AutoCompress bool
	MaxTokens    int
	EnableCache  bool
	HTTPClient   *http.Client
	ClientOpts   []client.Option
}

// Option configures the SDK at construction.
type Option func(*Config)

// WithUserID sets the user namespace all facade calls operate on.
func WithUserID(userID string) Option {
	return func(c *Config) { c.UserID = userID }
}

// WithAPIKey sets the API key used as a bearer token.
func WithAPIKey(apiKey string) Option {
	return func(c *Config) { c.APIKey = apiKey }
}

// WithAPIURL overrides the base URL, for custom or self-hosted endpoints.
func WithAPIURL(apiURL string) Option {
	return func(c *Config) { c.APIURL = apiURL }
}

// WithAutoCompress toggles context compression on the context retrieval
// paths. Enabled by default.
func WithAutoCompress(enabled bool) Option {
	return func(c *Config) { c.AutoCompress = enabled }
}

// WithMaxTokens sets the default token budget for context retrieval.
func WithMaxTokens(maxTokens int) Option {
	return func(c *Config) { c.MaxTokens = maxTokens }
}

// WithCaching toggles the local context cache. Disabled by default.
func WithCaching(enabled bool) Option {
	return func(c *Config) { c.EnableCache = enabled }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(conn *http.Client) Option {
	return func(c *Config) { c.HTTPClient = conn }
}

// WithClientOptions passes options through to the underlying REST client.
func WithClientOptions(opts ...client.Option) Option {
	return func(c *Config) { c.ClientOpts = append(c.ClientOpts, opts...) }
}

// resolve applies options, falls back to the environment and defaults, and
// validates that the required fields ended up populated.
func resolve(opts []Option) (*Config, error) {
	config := &Config{
		AutoCompress: true,
		MaxTokens:    DefaultMaxTokens,
	}

	for _, opt := range opts {
		opt(config)
	}

	if config.UserID == "" {
		config.UserID = os.Getenv(EnvUserID)
	}
	if config.APIKey == "" {
		config.APIKey = os.Getenv(EnvAPIKey)
	}
	if config.APIURL == "" {
		config.APIURL = os.Getenv(EnvAPIURL)
	}
	if config.APIURL == "" {
		config.APIURL = client.DefaultBaseURL
	}
	if config.MaxTokens <= 0 {
		config.MaxTokens = DefaultMaxTokens
	}

	val := v.Is(
		v.String(config.UserID, "user_id").Not().Blank(),
		v.String(config.APIKey, "api_key").Not().Blank(),
	)
	if !val.Valid() {
		return nil, apierrors.NewValidationError(val.Error().Error())
	}

	return config, nil
}
