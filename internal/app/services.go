package app

import (
	"clientctl/internal/api"
	"clientctl/internal/auth"
)

// Services holds the initialized collaborators shared by every mode
type Services struct {
	Auth         *auth.Provider
	SessionStore auth.Store
	API          *api.Client
}

// InitializeServices wires the auth provider and the records client. The
// records client takes its bearer token from the provider, so requests made
// close to expiry refresh the session first.
func InitializeServices(cfg *Config) (*Services, error) {
	c := cfg.ClientctlConfig

	var store auth.Store
	if c.Auth.SessionFile != "" {
		store = auth.NewFileStore(c.Auth.SessionFile)
	} else {
		// No home directory; the session lasts for this process only.
		store = auth.NewMemoryStore(nil)
	}

	provider := auth.NewProvider(auth.NewClient(c.Auth.URL, c.Auth.APIKey), store)
	client := api.NewClient(c.API.BaseURL, provider, c.API.RequestTimeout)

	return &Services{
		Auth:         provider,
		SessionStore: store,
		API:          client,
	}, nil
}

// Close releases the provider's subscribers.
func (s *Services) Close() {
	if s.Auth != nil {
		s.Auth.Close()
	}
}
