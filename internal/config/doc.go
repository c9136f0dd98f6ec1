// Package config provides configuration management for clientctl.
//
// Configuration is layered. Later sources override earlier ones:
//
//  1. Defaults compiled into the binary (see GetDefaultConfig)
//  2. User configuration (~/.config/clientctl/config.yaml)
//  3. Project configuration (./.clientctl/config.yaml), or an explicit
//     file passed with --config instead of layers 2 and 3
//  4. Environment variables prefixed with CLIENTCTL_
//
// # Configuration Structure
//
//	api:
//	  baseURL: "https://crud-app-backend-n0wq.onrender.com/api"
//	  requestTimeout: 15s
//	auth:
//	  url: "https://example.supabase.co/auth/v1"
//	  apiKey: "public-anon-key"
//	  sessionFile: "~/.config/clientctl/session.yaml"
//	logging:
//	  level: info
//	  format: text
//
// # Environment Overrides
//
//	CLIENTCTL_API_URL, CLIENTCTL_REQUEST_TIMEOUT,
//	CLIENTCTL_AUTH_URL, CLIENTCTL_AUTH_API_KEY, CLIENTCTL_SESSION_FILE,
//	CLIENTCTL_LOG_LEVEL, CLIENTCTL_LOG_FORMAT
package config
