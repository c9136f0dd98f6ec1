// Package api is the HTTP client for the remote client-records backend.
//
// The backend is a conventional resource API rooted at one collection path:
//
//	GET    {base}/clients        list all records
//	POST   {base}/clients        create, returns the record with its id
//	PUT    {base}/clients/{id}   update, returns the updated record
//	DELETE {base}/clients/{id}   delete
//
// Every request carries a bearer token obtained from a TokenSource (the auth
// provider). Failures come back as plain errors: transport failures are
// wrapped, non-2xx responses are *StatusError, and bodies that do not match
// the record schema wrap ErrMalformedResponse. The client never retries.
//
// Callers depend on the ClientService interface so the TUI controller and
// the MCP tools can be tested against fakes.
package api
