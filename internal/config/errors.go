package config

import "errors"

var (
	errNegativeTokenDuration  = errors.New("token duration must not be negative")
	errNegativeRequestTimeout = errors.New("request timeout must not be negative")
)
