// Package auth is a small client for the hosted authentication provider
// that gates the application.
//
// Client speaks the provider's token endpoints (password sign-in, refresh,
// logout). Provider layers session state on top: it holds the current
// Session, persists it through a Store so the next run can restore it,
// refreshes the access token shortly before it expires, and publishes
// lifecycle Events (INITIAL_SESSION, SIGNED_IN, TOKEN_REFRESHED,
// SIGNED_OUT) to subscribers. The TUI's session gate is driven entirely by
// those events.
//
// Provider is safe for concurrent use; API requests read tokens from
// command goroutines while the UI loop signs in and out.
//
// Example:
//
//	client := auth.NewClient(cfg.Auth.URL, cfg.Auth.APIKey)
//	provider := auth.NewProvider(client, auth.NewFileStore(cfg.Auth.SessionFile))
//	events := provider.Subscribe()
//	if _, err := provider.Restore(ctx); err != nil {
//		logging.Warn("Auth", "could not restore session: %v", err)
//	}
//	token, err := provider.AccessToken(ctx)
package auth
