package config

import "time"

// Built-in defaults, applied after every other source.
const (
	DefaultNetwork           = "sepolia"
	DefaultVersion           = "dev"
	DefaultTokenIssuer       = "go-fhevm"
	DefaultTokenDuration     = time.Hour
	DefaultHTTPAddress       = "localhost:8080"
	DefaultRequestTimeout    = 30 * time.Second
	DefaultInitTimeout       = 30 * time.Second
	DefaultRateLimitRequests = 100
	DefaultRateLimitWindow   = time.Minute
	DefaultJournalCapacity   = 1000
	DefaultCleanupInterval   = 5 * time.Minute
	DefaultJournalRetention  = 24 * time.Hour
	DefaultAdapterTimeout    = 15 * time.Second
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		FHEVM: FHEVM{
			Network:     DefaultNetwork,
			InitTimeout: DefaultInitTimeout,
		},
		App: App{
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
			Version:       DefaultVersion,
		},
		Storage: Storage{
			JournalCapacity: DefaultJournalCapacity,
		},
		Server: Server{
			HTTPAddress:       DefaultHTTPAddress,
			RequestTimeout:    DefaultRequestTimeout,
			RateLimitRequests: DefaultRateLimitRequests,
			RateLimitWindow:   DefaultRateLimitWindow,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultAdapterTimeout,
		},
		Workers: Workers{
			CleanupInterval:  DefaultCleanupInterval,
			JournalRetention: DefaultJournalRetention,
		},
	}
}
