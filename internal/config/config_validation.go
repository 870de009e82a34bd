package config

import (
	"errors"
	"time"
)

const (
	defaultHTTPAddress    = "localhost:8080"
	defaultServerURL      = "http://localhost:8080"
	defaultTokenIssuer    = "comms-server"
	defaultTokenDuration  = time.Hour
	defaultRefreshMaxAge  = 30 * 24 * time.Hour
	defaultRequestTimeout = 30 * time.Second
	defaultCachePath      = ":memory:"
	defaultAIModel        = "gemini-2.5-flash"
	defaultChatPoll       = 5 * time.Second
	defaultRefreshLeeway  = 2 * time.Minute
)

// applyDefaults fills zero-valued fields that have a sensible default.
// Secrets (TokenSignKey, AI.APIKey) are deliberately left empty: their
// absence is a validation or feature-gating concern, not a default.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout <= 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Auth.TokenIssuer == "" {
		cfg.Auth.TokenIssuer = defaultTokenIssuer
	}
	if cfg.Auth.TokenDuration <= 0 {
		cfg.Auth.TokenDuration = defaultTokenDuration
	}
	if cfg.Auth.RefreshDuration <= 0 {
		cfg.Auth.RefreshDuration = defaultRefreshMaxAge
	}
	if cfg.Client.ServerURL == "" {
		cfg.Client.ServerURL = defaultServerURL
	}
	if cfg.Client.RequestTimeout <= 0 {
		cfg.Client.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Client.CachePath == "" {
		cfg.Client.CachePath = defaultCachePath
	}
	if cfg.AI.Model == "" {
		cfg.AI.Model = defaultAIModel
	}
	if cfg.Workers.ChatPollInterval <= 0 {
		cfg.Workers.ChatPollInterval = defaultChatPoll
	}
	if cfg.Workers.SessionRefreshLeeway <= 0 {
		cfg.Workers.SessionRefreshLeeway = defaultRefreshLeeway
	}
}

// validate checks invariants that cannot be defaulted away.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if cfg.Auth.TokenDuration < 0 {
		errs = append(errs, errNegativeTokenDuration)
	}
	if cfg.Server.RequestTimeout < 0 {
		errs = append(errs, errNegativeRequestTimeout)
	}

	return errors.Join(errs...)
}
