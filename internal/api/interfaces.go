package api

import (
	"context"

	"clientctl/internal/clients"
)

// ClientService is the CRUD surface the application controller uses.
type ClientService interface {
	List(ctx context.Context) ([]clients.Client, error)
	Create(ctx context.Context, p clients.Payload) (clients.Client, error)
	Update(ctx context.Context, id int64, p clients.Payload) (clients.Client, error)
	Delete(ctx context.Context, id int64) error
}

// TokenSource supplies the bearer token for each request. Implementations
// may refresh the token as a side effect.
type TokenSource interface {
	AccessToken(ctx context.Context) (string, error)
}

// TokenSourceFunc adapts a function to TokenSource.
type TokenSourceFunc func(ctx context.Context) (string, error)

// AccessToken calls f.
func (f TokenSourceFunc) AccessToken(ctx context.Context) (string, error) {
	return f(ctx)
}
